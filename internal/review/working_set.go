package review

import (
	"context"
	"encoding/json"

	"meeting-task-extractor/internal/model"
)

// Editable candidate fields.
const (
	FieldDescription = "description"
	FieldAssignee    = "assignee"
	FieldDueDateText = "due_date_text"
	FieldPriority    = "priority"
)

// Submitter receives the approved candidates, typically a bulk create.
type Submitter interface {
	Submit(ctx context.Context, candidates []model.Candidate) error
}

// SubmitterFunc adapts a function to Submitter.
type SubmitterFunc func(ctx context.Context, candidates []model.Candidate) error

func (f SubmitterFunc) Submit(ctx context.Context, candidates []model.Candidate) error {
	return f(ctx, candidates)
}

// WorkingSet is the ordered, editable batch of candidates under review.
// The zero value is an empty set. It is not safe for concurrent use.
type WorkingSet struct {
	items []model.Candidate
}

// NewWorkingSet seeds a set with a copy of candidates.
func NewWorkingSet(candidates []model.Candidate) *WorkingSet {
	items := make([]model.Candidate, len(candidates))
	copy(items, candidates)
	return &WorkingSet{items: items}
}

func (ws *WorkingSet) Len() int { return len(ws.items) }

// Items returns a copy of the current candidates.
func (ws *WorkingSet) Items() []model.Candidate {
	out := make([]model.Candidate, len(ws.items))
	copy(out, ws.items)
	return out
}

// Edit replaces one field of one candidate. Values are not validated here;
// validation happens when the tasks are created.
func (ws *WorkingSet) Edit(index int, field, value string) error {
	if index < 0 || index >= len(ws.items) {
		return ErrIndexOutOfRange
	}

	c := &ws.items[index]
	switch field {
	case FieldDescription:
		c.Description = value
	case FieldAssignee:
		c.Assignee = value
	case FieldDueDateText:
		c.DueDateText = value
	case FieldPriority:
		c.Priority = model.Priority(value)
	default:
		return ErrUnknownField
	}
	return nil
}

// Remove deletes one candidate; later candidates shift down by one.
func (ws *WorkingSet) Remove(index int) error {
	if index < 0 || index >= len(ws.items) {
		return ErrIndexOutOfRange
	}
	ws.items = append(ws.items[:index], ws.items[index+1:]...)
	return nil
}

// Append adds a blank candidate at the end.
func (ws *WorkingSet) Append() {
	ws.items = append(ws.items, model.BlankCandidate())
}

// Approve hands every candidate to s in one call. An empty set never reaches s.
// The set is cleared on success and left untouched on failure.
func (ws *WorkingSet) Approve(ctx context.Context, s Submitter) error {
	if len(ws.items) == 0 {
		return ErrEmptyWorkingSet
	}
	if err := s.Submit(ctx, ws.Items()); err != nil {
		return err
	}
	ws.items = nil
	return nil
}

type candidateJSON struct {
	Description string `json:"description"`
	Assignee    string `json:"assignee"`
	DueDateText string `json:"due_date_text"`
	Priority    string `json:"priority"`
}

func (ws *WorkingSet) MarshalJSON() ([]byte, error) {
	out := make([]candidateJSON, len(ws.items))
	for i, c := range ws.items {
		out[i] = candidateJSON{
			Description: c.Description,
			Assignee:    c.Assignee,
			DueDateText: c.DueDateText,
			Priority:    string(c.Priority),
		}
	}
	return json.Marshal(out)
}

func (ws *WorkingSet) UnmarshalJSON(data []byte) error {
	var in []candidateJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	ws.items = make([]model.Candidate, len(in))
	for i, c := range in {
		ws.items[i] = model.Candidate{
			Description: c.Description,
			Assignee:    c.Assignee,
			DueDateText: c.DueDateText,
			Priority:    model.Priority(c.Priority),
		}
	}
	return nil
}
