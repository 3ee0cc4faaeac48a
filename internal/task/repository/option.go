package repository

import (
	"time"

	"meeting-task-extractor/internal/model"
)

type CreateOptions struct {
	OwnerID             string
	Description         string
	Assignee            string
	DueDateAbsolute     time.Time
	DueDateOriginalText string
	Priority            model.Priority
}

type GetOneOptions struct {
	ID      string
	OwnerID string
}

type ListOptions struct {
	OwnerID   string
	Completed *bool
}

// UpdateOptions carries the full new row state; the use case merges partial input first.
type UpdateOptions struct {
	ID                  string
	OwnerID             string
	Description         string
	Assignee            string
	DueDateAbsolute     time.Time
	DueDateOriginalText string
	Priority            model.Priority
	Completed           bool
}

type DeleteOptions struct {
	ID      string
	OwnerID string
}
