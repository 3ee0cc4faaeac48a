package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"meeting-task-extractor/internal/model"
	repo "meeting-task-extractor/internal/task/repository"
)

const taskColumns = `id, owner_id, description, assignee, due_date_absolute, due_date_original_text, priority, completed, created_at, updated_at`

type scanner interface {
	Scan(dest ...any) error
}

func (r *implRepository) Create(ctx context.Context, opt repo.CreateOptions) (model.Task, error) {
	now := time.Now().UTC()
	t := model.Task{
		ID:                  uuid.NewString(),
		OwnerID:             opt.OwnerID,
		Description:         opt.Description,
		Assignee:            opt.Assignee,
		DueDateAbsolute:     opt.DueDateAbsolute.UTC(),
		DueDateOriginalText: opt.DueDateOriginalText,
		Priority:            opt.Priority,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO tasks (`+taskColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, 0, ?, ?)`,
		t.ID, t.OwnerID, t.Description, t.Assignee, t.DueDateAbsolute,
		t.DueDateOriginalText, string(t.Priority), t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Create"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	return t, nil
}

func (r *implRepository) GetOne(ctx context.Context, opt repo.GetOneOptions) (model.Task, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE id = ? AND owner_id = ? LIMIT 1`,
		opt.ID, opt.OwnerID,
	)

	t, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOne"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return t, nil
}

func (r *implRepository) List(ctx context.Context, opt repo.ListOptions) ([]model.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE owner_id = ?`
	args := []any{opt.OwnerID}
	if opt.Completed != nil {
		query += ` AND completed = ?`
		args = append(args, *opt.Completed)
	}
	query += ` ORDER BY due_date_absolute ASC, created_at ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
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

func (r *implRepository) Update(ctx context.Context, opt repo.UpdateOptions) (model.Task, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE tasks
		SET description = ?, assignee = ?, due_date_absolute = ?, due_date_original_text = ?,
		    priority = ?, completed = ?, updated_at = ?
		WHERE id = ? AND owner_id = ?`,
		opt.Description, opt.Assignee, opt.DueDateAbsolute.UTC(), opt.DueDateOriginalText,
		string(opt.Priority), opt.Completed, time.Now().UTC(), opt.ID, opt.OwnerID,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Update"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.Task{}, nil
	}

	return r.GetOne(ctx, repo.GetOneOptions{ID: opt.ID, OwnerID: opt.OwnerID})
}

func (r *implRepository) Delete(ctx context.Context, opt repo.DeleteOptions) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ? AND owner_id = ?`, opt.ID, opt.OwnerID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Delete"), err)
		return false, repo.ErrFailedToDelete
	}
	n, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s rows affected: %v", r.dsn("Delete"), err)
		return false, repo.ErrFailedToDelete
	}
	return n > 0, nil
}

func scanTask(row scanner) (model.Task, error) {
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
