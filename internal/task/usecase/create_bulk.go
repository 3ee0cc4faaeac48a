package usecase

import (
	"context"
	"strings"

	"meeting-task-extractor/internal/model"
	"meeting-task-extractor/internal/task"
	repo "meeting-task-extractor/internal/task/repository"
	"meeting-task-extractor/pkg/gcalendar"
	"meeting-task-extractor/pkg/metrics"
	"meeting-task-extractor/pkg/mq"
)

// CreateBulk persists each well-formed item for the caller. Items without a description or
// assignee, with an invalid priority, or whose insert fails are skipped; the rest still commit.
func (uc *implUseCase) CreateBulk(ctx context.Context, sc model.Scope, input task.CreateBulkInput) (task.CreateBulkOutput, error) {
	if len(input.Items) == 0 {
		return task.CreateBulkOutput{}, task.ErrNoItems
	}

	source := input.Source
	if source == "" {
		source = task.SourceBulk
	}

	uc.l.Infof(ctx, "CreateBulk: user=%s items=%d source=%s", sc.UserID, len(input.Items), source)

	created := make([]model.Task, 0, len(input.Items))
	skipped := 0

	for i, item := range input.Items {
		opt, err := uc.buildCreateOptions(ctx, sc, item)
		if err != nil {
			uc.l.Warnf(ctx, "CreateBulk: skipping item %d: %v", i, err)
			skipped++
			continue
		}

		t, err := uc.repo.Create(ctx, opt)
		if err != nil {
			uc.l.Errorf(ctx, "CreateBulk: failed to create task %q: %v", opt.Description, err)
			skipped++
			continue
		}

		uc.tryCreateCalendarEvent(ctx, sc, t)
		uc.tryPublishCreated(ctx, t, source)

		created = append(created, t)
	}

	metrics.IncrementTasksCreated(source, len(created))
	uc.l.Infof(ctx, "CreateBulk: created=%d skipped=%d", len(created), skipped)

	return task.CreateBulkOutput{
		Tasks:   created,
		Skipped: skipped,
	}, nil
}

func (uc *implUseCase) buildCreateOptions(ctx context.Context, sc model.Scope, item task.BulkItem) (repo.CreateOptions, error) {
	if item.Description == nil || strings.TrimSpace(*item.Description) == "" {
		return repo.CreateOptions{}, task.ErrEmptyDescription
	}
	if item.Assignee == nil {
		return repo.CreateOptions{}, task.ErrMissingAssignee
	}
	priority, err := parsePriority(item.Priority)
	if err != nil {
		return repo.CreateOptions{}, err
	}

	text := deref(item.DueDateText)
	return repo.CreateOptions{
		OwnerID:             sc.UserID,
		Description:         strings.TrimSpace(*item.Description),
		Assignee:            strings.TrimSpace(*item.Assignee),
		DueDateAbsolute:     uc.resolveDueDate(ctx, sc, text),
		DueDateOriginalText: text,
		Priority:            priority,
	}, nil
}

// tryCreateCalendarEvent adds an event ending at the due date (non-fatal on failure).
func (uc *implUseCase) tryCreateCalendarEvent(ctx context.Context, sc model.Scope, t model.Task) {
	if uc.calendar == nil {
		return
	}

	summary := t.Description
	if t.Assignee != "" {
		summary = t.Assignee + ": " + t.Description
	}

	_, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.cfg.CalendarID,
		Summary:     summary,
		Description: "Priority " + string(t.Priority) + ". Due: " + t.DueDateOriginalText,
		StartTime:   t.DueDateAbsolute.Add(-uc.cfg.EventDuration),
		EndTime:     t.DueDateAbsolute,
		Timezone:    sc.Location(),
		TaskID:      t.ID,
	})
	if err != nil {
		uc.l.Warnf(ctx, "CreateBulk: calendar event creation failed for %q (non-fatal): %v", t.ID, err)
	}
}

func (uc *implUseCase) tryPublishCreated(ctx context.Context, t model.Task, source string) {
	err := uc.publisher.Publish(ctx, mq.RoutingKeyTaskCreated, task.CreatedEvent{
		TaskID:      t.ID,
		OwnerID:     t.OwnerID,
		Description: t.Description,
		Assignee:    t.Assignee,
		DueDate:     t.DueDateAbsolute,
		DueDateText: t.DueDateOriginalText,
		Priority:    string(t.Priority),
		Source:      source,
		CreatedAt:   t.CreatedAt,
	})
	if err != nil {
		uc.l.Warnf(ctx, "CreateBulk: publish %s failed for %q (non-fatal): %v", mq.RoutingKeyTaskCreated, t.ID, err)
	}
}
