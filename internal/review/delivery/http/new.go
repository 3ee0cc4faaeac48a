package http

import (
	"meeting-task-extractor/internal/review"
	"meeting-task-extractor/pkg/log"
)

type handler struct {
	l        log.Logger
	uc       review.UseCase
	dateMath review.DateParser
}

// New creates a new HTTP handler for review drafts. dateMath renders due_date_input.
func New(l log.Logger, uc review.UseCase, dateMath review.DateParser) *handler {
	return &handler{
		l:        l,
		uc:       uc,
		dateMath: dateMath,
	}
}
