package task

import (
	"context"

	"meeting-task-extractor/internal/model"
)

// UseCase defines the task store operations. Every call is scoped to sc.UserID;
// a task owned by someone else behaves exactly like a missing one.
type UseCase interface {
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (model.Task, error)
	// CreateBulk persists every well-formed item and silently skips the rest.
	CreateBulk(ctx context.Context, sc model.Scope, input CreateBulkInput) (CreateBulkOutput, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (model.Task, error)
	Delete(ctx context.Context, sc model.Scope, id string) error
}
