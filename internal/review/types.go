package review

import (
	"time"

	"meeting-task-extractor/internal/model"
)

// Draft is a server-held working set owned by one user.
type Draft struct {
	ID        string      `json:"id"`
	OwnerID   string      `json:"owner_id"`
	Set       *WorkingSet `json:"items"`
	Dropped   int         `json:"dropped"`
	CreatedAt time.Time   `json:"created_at"`
	ExpiresAt time.Time   `json:"expires_at"`
}

type CreateInput struct {
	Transcript string
}

type EditItemInput struct {
	DraftID string
	Index   int
	Field   string
	Value   string
}

type ApproveOutput struct {
	Tasks   []model.Task
	Skipped int
}
