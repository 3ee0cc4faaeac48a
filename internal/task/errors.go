package task

import "errors"

var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrEmptyDescription = errors.New("description must not be empty")
	ErrInvalidPriority  = errors.New("priority must be one of P1, P2, P3, P4")
	ErrNoItems          = errors.New("no tasks submitted")
	ErrMissingAssignee  = errors.New("assignee is required")
)
