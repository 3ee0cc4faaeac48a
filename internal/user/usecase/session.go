package usecase

import (
	"context"
	"fmt"
	"strings"

	"meeting-task-extractor/internal/model"
	"meeting-task-extractor/internal/user"
	"meeting-task-extractor/internal/user/repository"
	"meeting-task-extractor/pkg/scope"
)

func (uc *implUseCase) Login(ctx context.Context, input user.LoginInput) (user.LoginOutput, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" || input.Password == "" {
		return user.LoginOutput{}, user.ErrInvalidCredentials
	}

	u, err := uc.repo.GetOne(ctx, repository.GetOneOptions{Username: username})
	if err != nil {
		return user.LoginOutput{}, fmt.Errorf("repo.GetOne: %w", err)
	}
	// Unknown users and wrong passwords are indistinguishable to the caller.
	if u.ID == "" || !uc.encrypter.CheckPassword(input.Password, u.PasswordHash) {
		uc.l.Warnf(ctx, "user.usecase.Login: rejected login for %q", username)
		return user.LoginOutput{}, user.ErrInvalidCredentials
	}

	token, expiresAt, err := uc.jwtManager.CreateToken(scope.Payload{
		UserID:   u.ID,
		Username: u.Username,
		Timezone: u.Timezone,
	})
	if err != nil {
		return user.LoginOutput{}, fmt.Errorf("jwtManager.CreateToken: %w", err)
	}

	return user.LoginOutput{User: u, Token: token, ExpiresAt: expiresAt}, nil
}

func (uc *implUseCase) Logout(ctx context.Context, sc model.Scope) error {
	if sc.SessionID == "" {
		return nil
	}
	if err := uc.sessions.Revoke(ctx, sc.SessionID, uc.jwtTTL); err != nil {
		return fmt.Errorf("sessions.Revoke: %w", err)
	}
	return nil
}

func (uc *implUseCase) Me(ctx context.Context, sc model.Scope) (model.User, error) {
	u, err := uc.repo.GetOne(ctx, repository.GetOneOptions{ID: sc.UserID})
	if err != nil {
		return model.User{}, fmt.Errorf("repo.GetOne: %w", err)
	}
	if u.ID == "" {
		return model.User{}, user.ErrUserNotFound
	}
	return u, nil
}
