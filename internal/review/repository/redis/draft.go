package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"meeting-task-extractor/internal/review"
	"meeting-task-extractor/internal/review/repository"
)

// Save stores the draft as JSON under draft:{owner}:{id}, refreshing its TTL.
func (r *implRepository) Save(ctx context.Context, draft review.Draft, ttl time.Duration) error {
	raw, err := json.Marshal(draft)
	if err != nil {
		r.l.Errorf(ctx, "%s marshal: %v", r.dsn("Save"), err)
		return repository.ErrFailedToSave
	}

	if err := r.rdb.Set(ctx, repository.Key(draft.OwnerID, draft.ID), raw, ttl).Err(); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Save"), err)
		return repository.ErrFailedToSave
	}
	return nil
}

func (r *implRepository) Get(ctx context.Context, ownerID, id string) (review.Draft, error) {
	raw, err := r.rdb.Get(ctx, repository.Key(ownerID, id)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return review.Draft{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Get"), err)
		return review.Draft{}, repository.ErrFailedToGet
	}

	var draft review.Draft
	if err := json.Unmarshal(raw, &draft); err != nil {
		r.l.Errorf(ctx, "%s unmarshal: %v", r.dsn("Get"), err)
		return review.Draft{}, repository.ErrFailedToGet
	}
	if draft.Set == nil {
		draft.Set = review.NewWorkingSet(nil)
	}
	return draft, nil
}

func (r *implRepository) Delete(ctx context.Context, ownerID, id string) (bool, error) {
	n, err := r.rdb.Del(ctx, repository.Key(ownerID, id)).Result()
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Delete"), err)
		return false, repository.ErrFailedToDelete
	}
	return n > 0, nil
}
