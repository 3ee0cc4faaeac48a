package repository

import (
	"context"

	"meeting-task-extractor/internal/model"
)

// Repository is the task store. Every method filters by owner.
type Repository interface {
	Create(ctx context.Context, opt CreateOptions) (model.Task, error)
	// GetOne returns a zero Task (ID == "") when nothing matches.
	GetOne(ctx context.Context, opt GetOneOptions) (model.Task, error)
	List(ctx context.Context, opt ListOptions) ([]model.Task, error)
	// Update returns a zero Task when nothing matches.
	Update(ctx context.Context, opt UpdateOptions) (model.Task, error)
	Delete(ctx context.Context, opt DeleteOptions) (bool, error)
}
