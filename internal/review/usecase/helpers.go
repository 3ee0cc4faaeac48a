package usecase

import (
	"context"

	"meeting-task-extractor/internal/model"
	"meeting-task-extractor/internal/review"
)

// ownedDraft loads a draft of the caller. Other users' drafts are reported as missing.
func (uc *implUseCase) ownedDraft(ctx context.Context, sc model.Scope, id string) (review.Draft, error) {
	if id == "" {
		return review.Draft{}, review.ErrDraftNotFound
	}

	draft, err := uc.repo.Get(ctx, sc.UserID, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ownedDraft Get: %v", err)
		return review.Draft{}, err
	}
	if draft.ID == "" || draft.OwnerID != sc.UserID {
		return review.Draft{}, review.ErrDraftNotFound
	}
	return draft, nil
}

// mutate applies fn to the draft's working set and saves it with the remaining lifetime.
func (uc *implUseCase) mutate(ctx context.Context, sc model.Scope, id string, fn func(ws *review.WorkingSet) error) (review.Draft, error) {
	draft, err := uc.ownedDraft(ctx, sc, id)
	if err != nil {
		return review.Draft{}, err
	}
	if err := fn(draft.Set); err != nil {
		return review.Draft{}, err
	}

	ttl := draft.ExpiresAt.Sub(uc.now())
	if ttl <= 0 {
		return review.Draft{}, review.ErrDraftNotFound
	}
	if err := uc.repo.Save(ctx, draft, ttl); err != nil {
		uc.l.Errorf(ctx, "uc.mutate Save: %v", err)
		return review.Draft{}, err
	}
	return draft, nil
}
