package usecase

import (
	"context"

	"meeting-task-extractor/internal/model"
	"meeting-task-extractor/internal/review"
	"meeting-task-extractor/internal/task"
)

// Approve submits the whole working set as one bulk create. The draft is
// discarded on success and kept as-is on failure so the user can retry.
func (uc *implUseCase) Approve(ctx context.Context, sc model.Scope, id string) (review.ApproveOutput, error) {
	draft, err := uc.ownedDraft(ctx, sc, id)
	if err != nil {
		return review.ApproveOutput{}, err
	}

	var created task.CreateBulkOutput
	submit := review.SubmitterFunc(func(ctx context.Context, cs []model.Candidate) error {
		out, err := uc.tasks.CreateBulk(ctx, sc, task.CreateBulkInput{
			Items:  toBulkItems(cs),
			Source: task.SourceDraft,
		})
		if err != nil {
			return err
		}
		created = out
		return nil
	})

	if err := draft.Set.Approve(ctx, submit); err != nil {
		uc.l.Warnf(ctx, "uc.Approve draft=%s: %v", id, err)
		return review.ApproveOutput{}, err
	}

	if _, err := uc.repo.Delete(ctx, sc.UserID, id); err != nil {
		// Tasks are already committed; a leftover draft expires on its own.
		uc.l.Warnf(ctx, "uc.Approve Delete draft=%s: %v", id, err)
	}

	return review.ApproveOutput{
		Tasks:   created.Tasks,
		Skipped: created.Skipped,
	}, nil
}

func toBulkItems(cs []model.Candidate) []task.BulkItem {
	items := make([]task.BulkItem, len(cs))
	for i := range cs {
		c := cs[i]
		priority := string(c.Priority)
		items[i] = task.BulkItem{
			Description: &c.Description,
			Assignee:    &c.Assignee,
			DueDateText: &c.DueDateText,
			Priority:    &priority,
		}
	}
	return items
}
