package http

import (
	"encoding/json"
	"time"

	"meeting-task-extractor/internal/model"
	"meeting-task-extractor/internal/task"
)

// --- Request DTOs ---

type listReq struct {
	Completed *bool `form:"completed"`
}

func (r listReq) toInput() task.ListInput {
	return task.ListInput{Completed: r.Completed}
}

// ---

type bulkItemReq struct {
	Description *string `json:"description"`
	Assignee    *string `json:"assignee"`
	DueDateText *string `json:"due_date_text"`
	Priority    *string `json:"priority"`
}

// bulkReq keeps items raw so one malformed element cannot reject the whole batch.
type bulkReq struct {
	Tasks []json.RawMessage `json:"tasks"`
}

func (r bulkReq) validate() error {
	if len(r.Tasks) == 0 {
		return task.ErrNoItems
	}
	return nil
}

func (r bulkReq) toInput() task.CreateBulkInput {
	items := make([]task.BulkItem, len(r.Tasks))
	for i, raw := range r.Tasks {
		var item bulkItemReq
		if err := json.Unmarshal(raw, &item); err != nil {
			// Left zero; the use case skips it for lacking a description.
			continue
		}
		items[i] = task.BulkItem{
			Description: item.Description,
			Assignee:    item.Assignee,
			DueDateText: item.DueDateText,
			Priority:    item.Priority,
		}
	}
	return task.CreateBulkInput{Items: items, Source: task.SourceBulk}
}

// ---

type updateReq struct {
	ID          string  `json:"-"`
	Description *string `json:"description"`
	Assignee    *string `json:"assignee"`
	DueDateText *string `json:"due_date_text"`
	Priority    *string `json:"priority"`
	Completed   *bool   `json:"completed"`
}

func (r updateReq) toInput() task.UpdateInput {
	return task.UpdateInput{
		ID:          r.ID,
		Description: r.Description,
		Assignee:    r.Assignee,
		DueDateText: r.DueDateText,
		Priority:    r.Priority,
		Completed:   r.Completed,
	}
}

// --- Response DTOs ---

type taskResp struct {
	ID                  string    `json:"id"`
	Description         string    `json:"description"`
	Assignee            string    `json:"assignee"`
	DueDateAbsolute     time.Time `json:"due_date_absolute"`
	DueDateLocal        string    `json:"due_date_local"`
	DueDateOriginalText string    `json:"due_date_original_text"`
	Priority            string    `json:"priority"`
	Completed           bool      `json:"completed"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func newTaskResp(t model.Task, loc *time.Location) taskResp {
	return taskResp{
		ID:                  t.ID,
		Description:         t.Description,
		Assignee:            t.Assignee,
		DueDateAbsolute:     t.DueDateAbsolute,
		DueDateLocal:        t.DueDateAbsolute.In(loc).Format(time.RFC3339),
		DueDateOriginalText: t.DueDateOriginalText,
		Priority:            string(t.Priority),
		Completed:           t.Completed,
		CreatedAt:           t.CreatedAt,
		UpdatedAt:           t.UpdatedAt,
	}
}

func newTaskResps(tasks []model.Task, loc *time.Location) []taskResp {
	out := make([]taskResp, len(tasks))
	for i, t := range tasks {
		out[i] = newTaskResp(t, loc)
	}
	return out
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Count int        `json:"count"`
}

func (h *handler) newListResp(sc model.Scope, out task.ListOutput) listResp {
	return listResp{
		Tasks: newTaskResps(out.Tasks, location(sc)),
		Count: len(out.Tasks),
	}
}

type createBulkResp struct {
	Tasks   []taskResp `json:"tasks"`
	Count   int        `json:"count"`
	Skipped int        `json:"skipped"`
}

func (h *handler) newCreateBulkResp(sc model.Scope, out task.CreateBulkOutput) createBulkResp {
	return createBulkResp{
		Tasks:   newTaskResps(out.Tasks, location(sc)),
		Count:   len(out.Tasks),
		Skipped: out.Skipped,
	}
}

type taskItemResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newTaskItemResp(sc model.Scope, t model.Task) taskItemResp {
	return taskItemResp{Task: newTaskResp(t, location(sc))}
}

func location(sc model.Scope) *time.Location {
	loc, err := time.LoadLocation(sc.Location())
	if err != nil {
		return time.UTC
	}
	return loc
}
