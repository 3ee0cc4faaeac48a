// Package memory keeps drafts in process, for single-instance deployments without Redis.
package memory

import (
	"context"
	"encoding/json"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"meeting-task-extractor/internal/review"
	"meeting-task-extractor/internal/review/repository"
)

const defaultSize = 10000

type implRepository struct {
	cache *expirable.LRU[string, []byte]
}

// New creates an in-memory Repository. Entries expire after ttl regardless of the
// ttl passed to Save, since the cache has one lifetime for all keys.
func New(ttl time.Duration) repository.Repository {
	return &implRepository{
		cache: expirable.NewLRU[string, []byte](defaultSize, nil, ttl),
	}
}

// Drafts are stored serialized so callers never share a WorkingSet.
func (r *implRepository) Save(ctx context.Context, draft review.Draft, ttl time.Duration) error {
	raw, err := json.Marshal(draft)
	if err != nil {
		return repository.ErrFailedToSave
	}
	r.cache.Add(repository.Key(draft.OwnerID, draft.ID), raw)
	return nil
}

func (r *implRepository) Get(ctx context.Context, ownerID, id string) (review.Draft, error) {
	raw, ok := r.cache.Get(repository.Key(ownerID, id))
	if !ok {
		return review.Draft{}, nil
	}
	var draft review.Draft
	if err := json.Unmarshal(raw, &draft); err != nil {
		return review.Draft{}, repository.ErrFailedToGet
	}
	if draft.Set == nil {
		draft.Set = review.NewWorkingSet(nil)
	}
	return draft, nil
}

func (r *implRepository) Delete(ctx context.Context, ownerID, id string) (bool, error) {
	return r.cache.Remove(repository.Key(ownerID, id)), nil
}
