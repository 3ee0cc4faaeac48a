package extraction

import "meeting-task-extractor/internal/model"

type ExtractInput struct {
	Transcript string
}

// ExtractOutput carries the surviving candidates in model order.
// Dropped counts records that failed validation.
type ExtractOutput struct {
	Candidates []model.Candidate
	Count      int
	Dropped    int
}
