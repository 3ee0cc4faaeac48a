package http

import (
	"meeting-task-extractor/internal/extraction"
	"meeting-task-extractor/pkg/log"
)

type handler struct {
	l  log.Logger
	uc extraction.UseCase
}

// New creates a new HTTP handler for transcript extraction.
func New(l log.Logger, uc extraction.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
