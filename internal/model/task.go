package model

import "time"

// Task is a persisted action item owned by exactly one user.
type Task struct {
	ID                  string
	OwnerID             string
	Description         string
	Assignee            string
	DueDateAbsolute     time.Time // always UTC
	DueDateOriginalText string
	Priority            Priority
	Completed           bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Candidate is an extracted action item awaiting review. It has no owner
// and is never written to storage directly.
type Candidate struct {
	Description string
	Assignee    string
	DueDateText string
	Priority    Priority
}

// BlankCandidate returns the empty row a reviewer appends by hand.
func BlankCandidate() Candidate {
	return Candidate{Priority: DefaultPriority}
}
