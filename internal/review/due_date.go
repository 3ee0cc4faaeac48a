package review

import (
	"time"

	"meeting-task-extractor/pkg/datemath"
)

// DateParser resolves due-date phrases. *datemath.Parser satisfies it.
type DateParser interface {
	Parse(text, timezone string) (time.Time, error)
}

// DueDateInput renders a due-date phrase as a datetime-local widget value in
// timezone. Phrases the parser cannot resolve yield "", so the widget shows
// nothing even though the phrase itself is kept.
func DueDateInput(p DateParser, text, timezone string) string {
	if p == nil || text == "" {
		return ""
	}
	t, err := p.Parse(text, timezone)
	if err != nil {
		return ""
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		loc = time.UTC
	}
	return t.In(loc).Format(datemath.InputLayout)
}
