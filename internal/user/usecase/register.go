package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"
	"unicode/utf8"

	"meeting-task-extractor/internal/model"
	"meeting-task-extractor/internal/user"
	"meeting-task-extractor/internal/user/repository"
)

const (
	minUsernameLen = 3
	maxUsernameLen = 64
	minPasswordLen = 8
)

func (uc *implUseCase) Register(ctx context.Context, input user.RegisterInput) (model.User, error) {
	username := strings.TrimSpace(input.Username)
	if n := utf8.RuneCountInString(username); n < minUsernameLen || n > maxUsernameLen {
		return model.User{}, user.ErrInvalidUsername
	}
	if utf8.RuneCountInString(input.Password) < minPasswordLen {
		return model.User{}, user.ErrWeakPassword
	}

	tz := strings.TrimSpace(input.Timezone)
	if tz == "" {
		tz = model.DefaultTimezone
	}
	if _, err := time.LoadLocation(tz); err != nil {
		return model.User{}, user.ErrInvalidTimezone
	}

	hash, err := uc.encrypter.HashPassword(input.Password)
	if err != nil {
		return model.User{}, fmt.Errorf("encrypter.HashPassword: %w", err)
	}

	u, err := uc.repo.Create(ctx, repository.CreateOptions{
		Username:     username,
		PasswordHash: hash,
		Timezone:     tz,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return model.User{}, user.ErrUsernameTaken
		}
		return model.User{}, fmt.Errorf("repo.Create: %w", err)
	}

	uc.l.Infof(ctx, "user.usecase.Register: registered user %s", u.ID)
	return u, nil
}
