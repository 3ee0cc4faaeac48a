package usecase

import (
	"context"
	"time"

	"meeting-task-extractor/internal/extraction"
	"meeting-task-extractor/pkg/llmprovider"
	pkgLog "meeting-task-extractor/pkg/log"
)

// Generator is the model boundary. *llmprovider.Manager satisfies it.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

type Config struct {
	Timeout            time.Duration
	MaxTranscriptChars int
	Temperature        float64
}

type implUseCase struct {
	l   pkgLog.Logger
	llm Generator
	cfg Config
}

// New creates a new extraction UseCase instance.
func New(l pkgLog.Logger, llm Generator, cfg Config) extraction.UseCase {
	return &implUseCase{
		l:   l,
		llm: llm,
		cfg: cfg,
	}
}
