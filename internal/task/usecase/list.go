package usecase

import (
	"context"

	"meeting-task-extractor/internal/model"
	"meeting-task-extractor/internal/task"
	repo "meeting-task-extractor/internal/task/repository"
)

// List returns the caller's tasks ordered by due date.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input task.ListInput) (task.ListOutput, error) {
	tasks, err := uc.repo.List(ctx, repo.ListOptions{
		OwnerID:   sc.UserID,
		Completed: input.Completed,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List List: %v", err)
		return task.ListOutput{}, err
	}
	if tasks == nil {
		tasks = []model.Task{}
	}
	return task.ListOutput{Tasks: tasks}, nil
}
