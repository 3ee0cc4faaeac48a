package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"meeting-task-extractor/internal/extraction"
	"meeting-task-extractor/internal/model"
	"meeting-task-extractor/internal/review"
)

// Create extracts candidates and stores them as a new draft.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input review.CreateInput) (review.Draft, error) {
	out, err := uc.extractor.Extract(ctx, sc, extraction.ExtractInput{Transcript: input.Transcript})
	if err != nil && !errors.Is(err, extraction.ErrNoTasksFound) {
		return review.Draft{}, err
	}

	now := uc.now().UTC()
	draft := review.Draft{
		ID:        uuid.NewString(),
		OwnerID:   sc.UserID,
		Set:       review.NewWorkingSet(out.Candidates),
		Dropped:   out.Dropped,
		CreatedAt: now,
		ExpiresAt: now.Add(uc.draftTTL),
	}
	if err := uc.repo.Save(ctx, draft, uc.draftTTL); err != nil {
		uc.l.Errorf(ctx, "uc.Create Save: %v", err)
		return review.Draft{}, err
	}

	uc.l.Infof(ctx, "review.Create: user=%s draft=%s candidates=%d dropped=%d", sc.UserID, draft.ID, draft.Set.Len(), draft.Dropped)
	return draft, nil
}

func (uc *implUseCase) Get(ctx context.Context, sc model.Scope, id string) (review.Draft, error) {
	return uc.ownedDraft(ctx, sc, id)
}

func (uc *implUseCase) EditItem(ctx context.Context, sc model.Scope, input review.EditItemInput) (review.Draft, error) {
	return uc.mutate(ctx, sc, input.DraftID, func(ws *review.WorkingSet) error {
		return ws.Edit(input.Index, input.Field, input.Value)
	})
}

func (uc *implUseCase) RemoveItem(ctx context.Context, sc model.Scope, id string, index int) (review.Draft, error) {
	return uc.mutate(ctx, sc, id, func(ws *review.WorkingSet) error {
		return ws.Remove(index)
	})
}

func (uc *implUseCase) AppendItem(ctx context.Context, sc model.Scope, id string) (review.Draft, error) {
	return uc.mutate(ctx, sc, id, func(ws *review.WorkingSet) error {
		ws.Append()
		return nil
	})
}

func (uc *implUseCase) Cancel(ctx context.Context, sc model.Scope, id string) error {
	deleted, err := uc.repo.Delete(ctx, sc.UserID, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Cancel Delete: %v", err)
		return err
	}
	if !deleted {
		return review.ErrDraftNotFound
	}
	return nil
}
