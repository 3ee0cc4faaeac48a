package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	sqlite3 "github.com/mattn/go-sqlite3"

	"meeting-task-extractor/internal/model"
	repo "meeting-task-extractor/internal/user/repository"
)

func (r *implRepository) Create(ctx context.Context, opt repo.CreateOptions) (model.User, error) {
	u := model.User{
		ID:           uuid.NewString(),
		Username:     opt.Username,
		PasswordHash: opt.PasswordHash,
		Timezone:     opt.Timezone,
		CreatedAt:    time.Now().UTC(),
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, username, password_hash, timezone, created_at) VALUES (?, ?, ?, ?, ?)`,
		u.ID, u.Username, u.PasswordHash, u.Timezone, u.CreatedAt,
	)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return model.User{}, repo.ErrDuplicateUsername
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("Create"), err)
		return model.User{}, repo.ErrFailedToInsert
	}
	return u, nil
}

func (r *implRepository) GetOne(ctx context.Context, opt repo.GetOneOptions) (model.User, error) {
	var (
		conditions []string
		args       []any
	)
	if opt.ID != "" {
		conditions = append(conditions, "id = ?")
		args = append(args, opt.ID)
	}
	if opt.Username != "" {
		conditions = append(conditions, "username = ?")
		args = append(args, opt.Username)
	}
	if len(conditions) == 0 {
		return model.User{}, nil
	}

	row := r.db.QueryRowContext(ctx,
		`SELECT id, username, password_hash, timezone, created_at FROM users WHERE `+strings.Join(conditions, " AND ")+` LIMIT 1`,
		args...,
	)

	var u model.User
	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Timezone, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOne"), err)
		return model.User{}, repo.ErrFailedToGet
	}
	u.CreatedAt = u.CreatedAt.UTC()
	return u, nil
}
