package usecase

import (
	"context"
	"strings"

	"meeting-task-extractor/internal/model"
	"meeting-task-extractor/internal/task"
	repo "meeting-task-extractor/internal/task/repository"
)

// Detail returns one of the caller's tasks.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (model.Task, error) {
	return uc.ownedTask(ctx, sc, id)
}

// Update applies a partial update. A changed due-date phrase recomputes the absolute date.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input task.UpdateInput) (model.Task, error) {
	existing, err := uc.ownedTask(ctx, sc, input.ID)
	if err != nil {
		return model.Task{}, err
	}

	opt := repo.UpdateOptions{
		ID:                  existing.ID,
		OwnerID:             existing.OwnerID,
		Description:         existing.Description,
		Assignee:            existing.Assignee,
		DueDateAbsolute:     existing.DueDateAbsolute,
		DueDateOriginalText: existing.DueDateOriginalText,
		Priority:            existing.Priority,
		Completed:           existing.Completed,
	}

	if input.Description != nil {
		desc := strings.TrimSpace(*input.Description)
		if desc == "" {
			return model.Task{}, task.ErrEmptyDescription
		}
		opt.Description = desc
	}
	if input.Assignee != nil {
		opt.Assignee = strings.TrimSpace(*input.Assignee)
	}
	if input.Priority != nil {
		p, err := parsePriority(input.Priority)
		if err != nil {
			return model.Task{}, err
		}
		opt.Priority = p
	}
	if input.Completed != nil {
		opt.Completed = *input.Completed
	}
	if input.DueDateText != nil && *input.DueDateText != existing.DueDateOriginalText {
		opt.DueDateOriginalText = *input.DueDateText
		opt.DueDateAbsolute = uc.resolveDueDate(ctx, sc, *input.DueDateText)
	}

	t, err := uc.repo.Update(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update Update: %v", err)
		return model.Task{}, err
	}
	if t.ID == "" {
		// Deleted between the ownership check and the write.
		return model.Task{}, task.ErrTaskNotFound
	}
	return t, nil
}

// Delete removes one of the caller's tasks.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	existing, err := uc.ownedTask(ctx, sc, id)
	if err != nil {
		return err
	}

	deleted, err := uc.repo.Delete(ctx, repo.DeleteOptions{ID: existing.ID, OwnerID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete Delete: %v", err)
		return err
	}
	if !deleted {
		return task.ErrTaskNotFound
	}
	return nil
}
