package usecase

import (
	"time"

	"meeting-task-extractor/internal/user"
	"meeting-task-extractor/internal/user/repository"
	"meeting-task-extractor/pkg/encrypter"
	pkgLog "meeting-task-extractor/pkg/log"
	"meeting-task-extractor/pkg/scope"
)

type implUseCase struct {
	l          pkgLog.Logger
	repo       repository.Repository
	sessions   repository.SessionRepository
	encrypter  encrypter.Encrypter
	jwtManager scope.Manager
	jwtTTL     time.Duration
}

// New creates a new user UseCase instance. jwtTTL bounds how long a logout revocation is kept.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	sessions repository.SessionRepository,
	enc encrypter.Encrypter,
	jwtManager scope.Manager,
	jwtTTL time.Duration,
) user.UseCase {
	return &implUseCase{
		l:          l,
		repo:       repo,
		sessions:   sessions,
		encrypter:  enc,
		jwtManager: jwtManager,
		jwtTTL:     jwtTTL,
	}
}
