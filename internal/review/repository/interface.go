package repository

import (
	"context"
	"time"

	"meeting-task-extractor/internal/review"
)

// Repository stores drafts until they expire.
type Repository interface {
	Save(ctx context.Context, draft review.Draft, ttl time.Duration) error
	// Get returns a zero Draft (ID == "") when nothing matches owner and id.
	Get(ctx context.Context, ownerID, id string) (review.Draft, error)
	Delete(ctx context.Context, ownerID, id string) (bool, error)
}
