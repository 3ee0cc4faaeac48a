package http

import (
	"strings"
	"time"

	"meeting-task-extractor/internal/model"
	"meeting-task-extractor/internal/review"
)

const noTasksMessage = "No action items were found in this transcript. You can add tasks by hand."

// --- Request DTOs ---

type createReq struct {
	Transcript string `json:"transcript"`
}

func (r createReq) validate() error {
	if strings.TrimSpace(r.Transcript) == "" {
		return errWrongBody
	}
	return nil
}

func (r createReq) toInput() review.CreateInput {
	return review.CreateInput{Transcript: r.Transcript}
}

type editItemReq struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

// --- Response DTOs ---

type itemResp struct {
	Index        int    `json:"index"`
	Description  string `json:"description"`
	Assignee     string `json:"assignee"`
	DueDateText  string `json:"due_date_text"`
	DueDateInput string `json:"due_date_input"`
	Priority     string `json:"priority"`
}

type draftResp struct {
	ID        string     `json:"id"`
	Items     []itemResp `json:"items"`
	Count     int        `json:"count"`
	Dropped   int        `json:"dropped"`
	ExpiresAt time.Time  `json:"expires_at"`
	Message   string     `json:"message,omitempty"`
}

func (h *handler) newDraftResp(sc model.Scope, d review.Draft) draftResp {
	cs := d.Set.Items()
	items := make([]itemResp, len(cs))
	for i, c := range cs {
		items[i] = itemResp{
			Index:        i,
			Description:  c.Description,
			Assignee:     c.Assignee,
			DueDateText:  c.DueDateText,
			DueDateInput: review.DueDateInput(h.dateMath, c.DueDateText, sc.Location()),
			Priority:     string(c.Priority),
		}
	}
	return draftResp{
		ID:        d.ID,
		Items:     items,
		Count:     len(items),
		Dropped:   d.Dropped,
		ExpiresAt: d.ExpiresAt,
	}
}

type createdTaskResp struct {
	ID                  string    `json:"id"`
	Description         string    `json:"description"`
	Assignee            string    `json:"assignee"`
	DueDateAbsolute     time.Time `json:"due_date_absolute"`
	DueDateOriginalText string    `json:"due_date_original_text"`
	Priority            string    `json:"priority"`
}

type approveResp struct {
	Tasks   []createdTaskResp `json:"tasks"`
	Count   int               `json:"count"`
	Skipped int               `json:"skipped"`
}

func (h *handler) newApproveResp(out review.ApproveOutput) approveResp {
	tasks := make([]createdTaskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = createdTaskResp{
			ID:                  t.ID,
			Description:         t.Description,
			Assignee:            t.Assignee,
			DueDateAbsolute:     t.DueDateAbsolute,
			DueDateOriginalText: t.DueDateOriginalText,
			Priority:            string(t.Priority),
		}
	}
	return approveResp{Tasks: tasks, Count: len(tasks), Skipped: out.Skipped}
}
