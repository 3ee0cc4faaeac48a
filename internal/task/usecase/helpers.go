package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"meeting-task-extractor/internal/model"
	"meeting-task-extractor/internal/task"
	repo "meeting-task-extractor/internal/task/repository"
)

// ownedTask is the single ownership gate for detail, update and delete.
// A malformed id or a task owned by someone else is reported as ErrTaskNotFound.
func (uc *implUseCase) ownedTask(ctx context.Context, sc model.Scope, id string) (model.Task, error) {
	if _, err := uuid.Parse(id); err != nil {
		return model.Task{}, task.ErrTaskNotFound
	}

	t, err := uc.repo.GetOne(ctx, repo.GetOneOptions{ID: id, OwnerID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ownedTask GetOne: %v", err)
		return model.Task{}, err
	}
	if t.ID == "" || t.OwnerID != sc.UserID {
		return model.Task{}, task.ErrTaskNotFound
	}
	return t, nil
}

// resolveDueDate turns a phrase into a UTC instant in the caller's timezone.
// Unparseable phrases fall back to now + FallbackDueAfter.
func (uc *implUseCase) resolveDueDate(ctx context.Context, sc model.Scope, text string) time.Time {
	if strings.TrimSpace(text) != "" && uc.dateMath != nil {
		due, err := uc.dateMath.Parse(text, sc.Location())
		if err == nil {
			return due.UTC()
		}
		uc.l.Debugf(ctx, "uc.resolveDueDate: %q unparseable, using fallback: %v", text, err)
	}
	return uc.now().Add(uc.cfg.FallbackDueAfter).UTC()
}

// parsePriority accepts nil as the default priority.
func parsePriority(p *string) (model.Priority, error) {
	if p == nil {
		return model.DefaultPriority, nil
	}
	priority, ok := model.ParsePriority(*p)
	if !ok {
		return "", task.ErrInvalidPriority
	}
	return priority, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
