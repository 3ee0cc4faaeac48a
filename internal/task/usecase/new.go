package usecase

import (
	"time"

	"meeting-task-extractor/internal/task"
	"meeting-task-extractor/internal/task/repository"
	"meeting-task-extractor/pkg/gcalendar"
	pkgLog "meeting-task-extractor/pkg/log"
	"meeting-task-extractor/pkg/mq"
)

// DateParser resolves due-date phrases. *datemath.Parser satisfies it.
type DateParser interface {
	Parse(text, timezone string) (time.Time, error)
}

type Config struct {
	FallbackDueAfter time.Duration
	CalendarID       string
	EventDuration    time.Duration
}

type implUseCase struct {
	l         pkgLog.Logger
	repo      repository.Repository
	dateMath  DateParser
	calendar  gcalendar.Calendar
	publisher mq.Publisher
	cfg       Config
	now       func() time.Time
}

// New creates a new task UseCase instance. calendar may be nil; publisher defaults to a no-op.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	dateMath DateParser,
	calendar gcalendar.Calendar,
	publisher mq.Publisher,
	cfg Config,
) task.UseCase {
	if publisher == nil {
		publisher = mq.NopPublisher{}
	}
	if cfg.FallbackDueAfter <= 0 {
		cfg.FallbackDueAfter = 24 * time.Hour
	}
	if cfg.CalendarID == "" {
		cfg.CalendarID = "primary"
	}
	if cfg.EventDuration <= 0 {
		cfg.EventDuration = 30 * time.Minute
	}
	return &implUseCase{
		l:         l,
		repo:      repo,
		dateMath:  dateMath,
		calendar:  calendar,
		publisher: publisher,
		cfg:       cfg,
		now:       time.Now,
	}
}
