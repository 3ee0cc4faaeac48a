package user

import (
	"context"

	"meeting-task-extractor/internal/model"
)

// UseCase covers account registration and session lifecycle.
type UseCase interface {
	Register(ctx context.Context, input RegisterInput) (model.User, error)
	Login(ctx context.Context, input LoginInput) (LoginOutput, error)
	// Logout revokes the session in sc until its token would have expired.
	Logout(ctx context.Context, sc model.Scope) error
	Me(ctx context.Context, sc model.Scope) (model.User, error)
}
