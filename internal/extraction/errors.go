package extraction

import "errors"

var (
	ErrEmptyTranscript   = errors.New("transcript is empty")
	ErrTranscriptTooLong = errors.New("transcript is too long")
	ErrNoTasksFound      = errors.New("no tasks found in transcript")
	ErrExtractionFailed  = errors.New("failed to extract tasks")
)
