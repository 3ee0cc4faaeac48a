package usecase

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"meeting-task-extractor/internal/model"
)

var (
	codeFenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

	leadingPrepositionRe = regexp.MustCompile(`(?i)^(by|before|until)\s+`)

	errNotObject = errors.New("model output is not a JSON object")
)

// rawResponse is the envelope the model is told to produce.
type rawResponse struct {
	Tasks json.RawMessage `json:"tasks"`
}

// parseCandidates decodes the model output. Records that fail validation are dropped and counted.
// An error means the output as a whole was unusable.
func parseCandidates(text string) ([]model.Candidate, int, error) {
	cleaned := sanitizeJSONResponse(text)
	if !strings.HasPrefix(cleaned, "{") {
		return nil, 0, errNotObject
	}

	var env rawResponse
	if err := json.Unmarshal([]byte(cleaned), &env); err != nil {
		return nil, 0, fmt.Errorf("decode model output: %w", err)
	}

	tasks := bytes.TrimSpace(env.Tasks)
	if len(tasks) == 0 || bytes.Equal(tasks, []byte("null")) {
		return []model.Candidate{}, 0, nil
	}

	var records []json.RawMessage
	if err := json.Unmarshal(tasks, &records); err != nil {
		return nil, 0, fmt.Errorf("tasks is not an array: %w", err)
	}

	candidates := make([]model.Candidate, 0, len(records))
	dropped := 0
	for _, raw := range records {
		c, ok := validateRecord(raw)
		if !ok {
			dropped++
			continue
		}
		candidates = append(candidates, c)
	}
	return candidates, dropped, nil
}

// validateRecord checks one element. task_description, assignee and due_date must be strings;
// priority may be absent or null (defaults to P3) but must otherwise be in the enum.
func validateRecord(raw json.RawMessage) (model.Candidate, bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return model.Candidate{}, false
	}

	description, ok := requiredString(fields, "task_description")
	if !ok || strings.TrimSpace(description) == "" {
		return model.Candidate{}, false
	}
	assignee, ok := requiredString(fields, "assignee")
	if !ok {
		return model.Candidate{}, false
	}
	dueDate, ok := requiredString(fields, "due_date")
	if !ok {
		return model.Candidate{}, false
	}

	priority := model.DefaultPriority
	if p, present := fields["priority"]; present && !bytes.Equal(bytes.TrimSpace(p), []byte("null")) {
		var s string
		if err := json.Unmarshal(p, &s); err != nil {
			return model.Candidate{}, false
		}
		parsed, valid := model.ParsePriority(s)
		if !valid {
			return model.Candidate{}, false
		}
		priority = parsed
	}

	return model.Candidate{
		Description: strings.TrimSpace(description),
		Assignee:    strings.TrimSpace(assignee),
		DueDateText: stripLeadingPreposition(dueDate),
		Priority:    priority,
	}, true
}

func requiredString(fields map[string]json.RawMessage, key string) (string, bool) {
	raw, ok := fields[key]
	if !ok {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// stripLeadingPreposition removes one leading "by", "before" or "until".
func stripLeadingPreposition(s string) string {
	s = strings.TrimSpace(s)
	return leadingPrepositionRe.ReplaceAllString(s, "")
}

// sanitizeJSONResponse removes markdown code fences and prose around the JSON object.
func sanitizeJSONResponse(text string) string {
	if m := codeFenceRe.FindStringSubmatch(text); len(m) > 1 {
		return strings.TrimSpace(m[1])
	}

	start := strings.IndexAny(text, "[{")
	if start == -1 {
		return strings.TrimSpace(text)
	}
	end := strings.LastIndexAny(text, "]}")
	if end == -1 || end < start {
		return strings.TrimSpace(text)
	}
	return strings.TrimSpace(text[start : end+1])
}
