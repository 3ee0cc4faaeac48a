package postgre

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"meeting-task-extractor/internal/model"
	repo "meeting-task-extractor/internal/task/repository"
)

const taskColumns = `id, owner_id, description, assignee, due_date_absolute, due_date_original_text, priority, completed, created_at, updated_at`

// Create inserts a new task row owned by opt.OwnerID.
func (r *implRepository) Create(ctx context.Context, opt repo.CreateOptions) (model.Task, error) {
	query := `
		INSERT INTO tasks (` + taskColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, FALSE, $8, $8)
		RETURNING ` + taskColumns

	now := time.Now().UTC()
	row := r.db.QueryRow(ctx, query,
		uuid.NewString(), opt.OwnerID, opt.Description, opt.Assignee,
		opt.DueDateAbsolute.UTC(), opt.DueDateOriginalText, string(opt.Priority), now,
	)

	t, err := scanTask(row)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Create"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	return t, nil
}

// GetOne returns a zero Task when no row matches both id and owner.
func (r *implRepository) GetOne(ctx context.Context, opt repo.GetOneOptions) (model.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1 AND owner_id = $2 LIMIT 1`

	t, err := scanTask(r.db.QueryRow(ctx, query, opt.ID, opt.OwnerID))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOne"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return t, nil
}

// List returns the owner's tasks, earliest due first.
func (r *implRepository) List(ctx context.Context, opt repo.ListOptions) ([]model.Task, error) {
	where, args := buildListQuery(opt)
	query := fmt.Sprintf(`SELECT %s FROM tasks WHERE %s ORDER BY due_date_absolute ASC, created_at ASC`, taskColumns, where)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("List"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	tasks := make([]model.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("List"), err)
			return nil, repo.ErrFailedToList
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("List"), err)
		return nil, repo.ErrFailedToList
	}
	return tasks, nil
}

// Update overwrites the mutable columns. Returns a zero Task when nothing matches.
func (r *implRepository) Update(ctx context.Context, opt repo.UpdateOptions) (model.Task, error) {
	query := `
		UPDATE tasks
		SET description = $1, assignee = $2, due_date_absolute = $3, due_date_original_text = $4,
		    priority = $5, completed = $6, updated_at = $7
		WHERE id = $8 AND owner_id = $9
		RETURNING ` + taskColumns

	row := r.db.QueryRow(ctx, query,
		opt.Description, opt.Assignee, opt.DueDateAbsolute.UTC(), opt.DueDateOriginalText,
		string(opt.Priority), opt.Completed, time.Now().UTC(), opt.ID, opt.OwnerID,
	)

	t, err := scanTask(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Update"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	return t, nil
}

// Delete reports whether a row was removed.
func (r *implRepository) Delete(ctx context.Context, opt repo.DeleteOptions) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM tasks WHERE id = $1 AND owner_id = $2`, opt.ID, opt.OwnerID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Delete"), err)
		return false, repo.ErrFailedToDelete
	}
	return tag.RowsAffected() > 0, nil
}

func scanTask(row pgx.Row) (model.Task, error) {
	var (
		t        model.Task
		priority string
	)
	err := row.Scan(
		&t.ID, &t.OwnerID, &t.Description, &t.Assignee, &t.DueDateAbsolute,
		&t.DueDateOriginalText, &priority, &t.Completed, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return model.Task{}, err
	}
	t.Priority = model.Priority(priority)
	t.DueDateAbsolute = t.DueDateAbsolute.UTC()
	t.CreatedAt = t.CreatedAt.UTC()
	t.UpdatedAt = t.UpdatedAt.UTC()
	return t, nil
}
