package task

import (
	"time"

	"meeting-task-extractor/internal/model"
)

const (
	SourceBulk  = "bulk"
	SourceDraft = "draft"
)

type ListInput struct {
	Completed *bool
}

type ListOutput struct {
	Tasks []model.Task
}

// BulkItem is one submitted candidate. Nil means the field was absent from the request.
type BulkItem struct {
	Description *string
	Assignee    *string
	DueDateText *string
	Priority    *string
}

type CreateBulkInput struct {
	Items  []BulkItem
	Source string
}

// CreateBulkOutput lists the created tasks in submission order. Skipped counts dropped items.
type CreateBulkOutput struct {
	Tasks   []model.Task
	Skipped int
}

// UpdateInput is a partial update. Nil fields are left unchanged.
type UpdateInput struct {
	ID          string
	Description *string
	Assignee    *string
	DueDateText *string
	Priority    *string
	Completed   *bool
}

// CreatedEvent is published on task.created.
type CreatedEvent struct {
	TaskID      string    `json:"task_id"`
	OwnerID     string    `json:"owner_id"`
	Description string    `json:"description"`
	Assignee    string    `json:"assignee"`
	DueDate     time.Time `json:"due_date"`
	DueDateText string    `json:"due_date_text"`
	Priority    string    `json:"priority"`
	Source      string    `json:"source"`
	CreatedAt   time.Time `json:"created_at"`
}
