package datemath

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"
)

// ErrUnparseable is returned when a phrase cannot be turned into an instant.
// Callers decide the fallback.
var ErrUnparseable = errors.New("datemath: unparseable date phrase")

// InputLayout is the value format of an HTML datetime-local widget.
const InputLayout = "2006-01-02T15:04"

var (
	inDurationRe = regexp.MustCompile(`^in (\d+) (hour|hours|day|days|week|weeks|month|months)$`)

	leadingPrepositions = []string{"by ", "before ", "until ", "due "}

	weekdays = map[string]time.Weekday{
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
		"sunday":    time.Sunday,
	}

	// Layouts that carry a time of day.
	dateTimeLayouts = []string{
		InputLayout,
		"2006-01-02 15:04",
		"2006-01-02 15:04:05",
	}

	// Layouts that name a whole day; the result is the end of that day.
	dateLayouts = []string{
		"2006-01-02",
		"January 2, 2006",
		"January 2 2006",
		"Jan 2, 2006",
		"Jan 2 2006",
		"2 January 2006",
		"01/02/2006",
	}

	// Day-and-month layouts without a year resolve to the next occurrence.
	monthDayLayouts = []string{
		"January 2",
		"Jan 2",
		"2 January",
	}
)

// Parser converts due-date phrases to absolute instants.
type Parser struct {
	location *time.Location
	now      func() time.Time
}

// NewParser creates a parser whose default timezone is the given IANA name.
// e.g. "UTC", "Europe/Berlin"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc, now: time.Now}, nil
}

// Parse interprets text relative to the current instant in the given timezone.
// An empty or invalid timezone uses the parser default.
func (p *Parser) Parse(text, timezone string) (time.Time, error) {
	return p.ParseAt(text, timezone, p.now())
}

// ParseAt is Parse with an explicit reference instant.
func (p *Parser) ParseAt(text, timezone string, base time.Time) (time.Time, error) {
	loc := p.resolveLocation(timezone)
	base = base.In(loc)

	raw := strings.TrimSpace(text)
	if raw == "" {
		return time.Time{}, ErrUnparseable
	}

	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	for _, layout := range dateTimeLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t, nil
		}
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return p.EndOfDay(t), nil
		}
	}
	for _, layout := range monthDayLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return p.nextMonthDay(t, base), nil
		}
	}

	return p.parseRelative(normalize(raw), base)
}

func (p *Parser) resolveLocation(timezone string) *time.Location {
	if timezone == "" {
		return p.location
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return p.location
	}
	return loc
}

func normalize(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = strings.TrimSuffix(s, ".")
	for _, prefix := range leadingPrepositions {
		if strings.HasPrefix(s, prefix) {
			s = strings.TrimSpace(strings.TrimPrefix(s, prefix))
			break
		}
	}
	return strings.Join(strings.Fields(s), " ")
}

func (p *Parser) parseRelative(s string, base time.Time) (time.Time, error) {
	switch s {
	case "today", "tonight", "end of day", "end of today", "eod":
		return p.EndOfDay(base), nil
	case "tomorrow":
		return p.EndOfDay(base.AddDate(0, 0, 1)), nil
	case "yesterday":
		return p.EndOfDay(base.AddDate(0, 0, -1)), nil
	case "next week":
		return p.EndOfDay(base.AddDate(0, 0, 7)), nil
	case "next month":
		return p.EndOfDay(base.AddDate(0, 1, 0)), nil
	case "end of week", "end of the week", "eow":
		return p.EndOfDay(p.weekday(base, time.Friday, false)), nil
	case "end of month", "end of the month", "eom":
		first := time.Date(base.Year(), base.Month(), 1, 0, 0, 0, 0, base.Location())
		return p.EndOfDay(first.AddDate(0, 1, -1)), nil
	}

	if strings.HasPrefix(s, "in ") {
		return p.parseInDuration(s, base)
	}

	if strings.HasPrefix(s, "next ") {
		wd, ok := weekdays[strings.TrimPrefix(s, "next ")]
		if !ok {
			return time.Time{}, ErrUnparseable
		}
		return p.EndOfDay(p.weekday(base, wd, true)), nil
	}

	if wd, ok := weekdays[strings.TrimPrefix(s, "this ")]; ok {
		return p.EndOfDay(p.weekday(base, wd, false)), nil
	}

	return time.Time{}, ErrUnparseable
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month", "in 4 hours".
func (p *Parser) parseInDuration(s string, base time.Time) (time.Time, error) {
	matches := inDurationRe.FindStringSubmatch(s)
	if len(matches) != 3 {
		return time.Time{}, ErrUnparseable
	}

	amount, err := strconv.Atoi(matches[1])
	if err != nil {
		return time.Time{}, ErrUnparseable
	}

	switch unit := matches[2]; {
	case strings.HasPrefix(unit, "hour"):
		return base.Add(time.Duration(amount) * time.Hour), nil
	case strings.HasPrefix(unit, "day"):
		return p.EndOfDay(base.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"):
		return p.EndOfDay(base.AddDate(0, 0, amount*7)), nil
	default:
		return p.EndOfDay(base.AddDate(0, amount, 0)), nil
	}
}

// weekday returns the next day falling on target. With strict set the
// same weekday as base rolls over to the following week.
func (p *Parser) weekday(base time.Time, target time.Weekday, strict bool) time.Time {
	daysUntil := int(target - base.Weekday())
	if daysUntil < 0 || (strict && daysUntil == 0) {
		daysUntil += 7
	}
	return base.AddDate(0, 0, daysUntil)
}

func (p *Parser) nextMonthDay(t, base time.Time) time.Time {
	candidate := time.Date(base.Year(), t.Month(), t.Day(), 0, 0, 0, 0, base.Location())
	if p.EndOfDay(candidate).Before(base) {
		candidate = candidate.AddDate(1, 0, 0)
	}
	return p.EndOfDay(candidate)
}

// EndOfDay returns 23:59:59 on the calendar day of t, in t's location.
func (p *Parser) EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}
