package postgre

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"meeting-task-extractor/internal/model"
	repo "meeting-task-extractor/internal/user/repository"
)

const uniqueViolation = "23505"

const userColumns = `id, username, password_hash, timezone, created_at`

func (r *implRepository) Create(ctx context.Context, opt repo.CreateOptions) (model.User, error) {
	query := `
		INSERT INTO users (id, username, password_hash, timezone, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING ` + userColumns

	u, err := scanUser(r.db.QueryRow(ctx, query, uuid.NewString(), opt.Username, opt.PasswordHash, opt.Timezone))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return model.User{}, repo.ErrDuplicateUsername
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("Create"), err)
		return model.User{}, repo.ErrFailedToInsert
	}
	return u, nil
}

func (r *implRepository) GetOne(ctx context.Context, opt repo.GetOneOptions) (model.User, error) {
	where, args := buildGetOneQuery(opt)
	query := fmt.Sprintf(`SELECT %s FROM users WHERE %s LIMIT 1`, userColumns, where)

	u, err := scanUser(r.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOne"), err)
		return model.User{}, repo.ErrFailedToGet
	}
	return u, nil
}

// buildGetOneQuery ANDs every non-empty filter. With no filters nothing matches.
func buildGetOneQuery(opt repo.GetOneOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.ID != "" {
		conditions = append(conditions, fmt.Sprintf("id = $%d", idx))
		args = append(args, opt.ID)
		idx++
	}
	if opt.Username != "" {
		conditions = append(conditions, fmt.Sprintf("username = $%d", idx))
		args = append(args, opt.Username)
	}

	if len(conditions) == 0 {
		return "1=0", args
	}
	return strings.Join(conditions, " AND "), args
}

func scanUser(row pgx.Row) (model.User, error) {
	var u model.User
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Timezone, &u.CreatedAt); err != nil {
		return model.User{}, err
	}
	u.CreatedAt = u.CreatedAt.UTC()
	return u, nil
}
