package usecase

import (
	"time"

	"meeting-task-extractor/internal/extraction"
	"meeting-task-extractor/internal/review"
	"meeting-task-extractor/internal/review/repository"
	"meeting-task-extractor/internal/task"
	pkgLog "meeting-task-extractor/pkg/log"
)

type implUseCase struct {
	l         pkgLog.Logger
	extractor extraction.UseCase
	tasks     task.UseCase
	repo      repository.Repository
	draftTTL  time.Duration
	now       func() time.Time
}

// New creates a new review UseCase instance.
func New(l pkgLog.Logger, extractor extraction.UseCase, tasks task.UseCase, repo repository.Repository, draftTTL time.Duration) review.UseCase {
	if draftTTL <= 0 {
		draftTTL = 24 * time.Hour
	}
	return &implUseCase{
		l:         l,
		extractor: extractor,
		tasks:     tasks,
		repo:      repo,
		draftTTL:  draftTTL,
		now:       time.Now,
	}
}
