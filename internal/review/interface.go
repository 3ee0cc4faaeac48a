package review

import (
	"context"

	"meeting-task-extractor/internal/model"
)

// UseCase manages server-held review drafts. Every draft is scoped to sc.UserID.
type UseCase interface {
	// Create extracts candidates from a transcript and seeds a new draft. A transcript
	// with no action items still yields an (empty) draft.
	Create(ctx context.Context, sc model.Scope, input CreateInput) (Draft, error)
	Get(ctx context.Context, sc model.Scope, id string) (Draft, error)
	EditItem(ctx context.Context, sc model.Scope, input EditItemInput) (Draft, error)
	RemoveItem(ctx context.Context, sc model.Scope, id string, index int) (Draft, error)
	AppendItem(ctx context.Context, sc model.Scope, id string) (Draft, error)
	// Approve bulk-creates the draft's tasks and discards the draft. On failure the draft is kept.
	Approve(ctx context.Context, sc model.Scope, id string) (ApproveOutput, error)
	Cancel(ctx context.Context, sc model.Scope, id string) error
}
