package extraction

import (
	"context"

	"meeting-task-extractor/internal/model"
)

// UseCase turns a meeting transcript into validated task candidates.
type UseCase interface {
	// Extract calls the language model once. It never retries and keeps no state between calls.
	// When every record is dropped it returns ErrNoTasksFound together with a populated output.
	Extract(ctx context.Context, sc model.Scope, input ExtractInput) (ExtractOutput, error)
}
