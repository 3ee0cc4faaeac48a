package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"meeting-task-extractor/internal/model"
	"meeting-task-extractor/internal/user"
	"meeting-task-extractor/internal/user/repository"
	"meeting-task-extractor/internal/user/repository/memory"
	"meeting-task-extractor/pkg/encrypter"
	"meeting-task-extractor/pkg/log"
	"meeting-task-extractor/pkg/scope"
)

type fakeRepo struct {
	users  map[string]model.User
	getErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{users: map[string]model.User{}}
}

func (r *fakeRepo) Create(ctx context.Context, opt repository.CreateOptions) (model.User, error) {
	for _, u := range r.users {
		if u.Username == opt.Username {
			return model.User{}, repository.ErrDuplicateUsername
		}
	}
	u := model.User{
		ID:           "user-" + opt.Username,
		Username:     opt.Username,
		PasswordHash: opt.PasswordHash,
		Timezone:     opt.Timezone,
		CreatedAt:    time.Now().UTC(),
	}
	r.users[u.ID] = u
	return u, nil
}

func (r *fakeRepo) GetOne(ctx context.Context, opt repository.GetOneOptions) (model.User, error) {
	if r.getErr != nil {
		return model.User{}, r.getErr
	}
	for _, u := range r.users {
		if opt.ID != "" && u.ID != opt.ID {
			continue
		}
		if opt.Username != "" && u.Username != opt.Username {
			continue
		}
		if opt.ID == "" && opt.Username == "" {
			continue
		}
		return u, nil
	}
	return model.User{}, nil
}

type testDeps struct {
	uc       user.UseCase
	repo     *fakeRepo
	sessions repository.SessionRepository
	jwt      scope.Manager
}

func newTestUseCase() testDeps {
	repo := newFakeRepo()
	sessions := memory.NewSessionRepository(time.Hour)
	jwt := scope.New("test-secret", time.Hour)
	return testDeps{
		uc:       New(log.NewNop(), repo, sessions, encrypter.New(bcrypt.MinCost), jwt, time.Hour),
		repo:     repo,
		sessions: sessions,
		jwt:      jwt,
	}
}

func TestRegister(t *testing.T) {
	tcs := map[string]struct {
		input  user.RegisterInput
		wantTZ string
		err    error
	}{
		"valid":            {input: user.RegisterInput{Username: "ana", Password: "correct-horse", Timezone: "Europe/Berlin"}, wantTZ: "Europe/Berlin"},
		"utc when empty":   {input: user.RegisterInput{Username: "carl", Password: "correct-horse"}, wantTZ: "UTC"},
		"short username":   {input: user.RegisterInput{Username: "bo", Password: "correct-horse"}, err: user.ErrInvalidUsername},
		"blank username":   {input: user.RegisterInput{Username: "   ", Password: "correct-horse"}, err: user.ErrInvalidUsername},
		"short password":   {input: user.RegisterInput{Username: "dana", Password: "short"}, err: user.ErrWeakPassword},
		"unknown timezone": {input: user.RegisterInput{Username: "eve", Password: "correct-horse", Timezone: "Mars/Olympus"}, err: user.ErrInvalidTimezone},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			d := newTestUseCase()
			u, err := d.uc.Register(context.Background(), tc.input)
			if !errors.Is(err, tc.err) {
				t.Fatalf("expected error %v, got %v", tc.err, err)
			}
			if tc.err != nil {
				return
			}
			if u.Timezone != tc.wantTZ {
				t.Errorf("expected timezone %q, got %q", tc.wantTZ, u.Timezone)
			}
			if u.PasswordHash == tc.input.Password {
				t.Error("password stored in plaintext")
			}
		})
	}
}

func TestRegister_DuplicateUsername(t *testing.T) {
	d := newTestUseCase()
	ctx := context.Background()

	if _, err := d.uc.Register(ctx, user.RegisterInput{Username: "ana", Password: "correct-horse"}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, err := d.uc.Register(ctx, user.RegisterInput{Username: "ana", Password: "another-pass"}); !errors.Is(err, user.ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	d := newTestUseCase()
	ctx := context.Background()
	if _, err := d.uc.Register(ctx, user.RegisterInput{Username: "ana", Password: "correct-horse", Timezone: "Asia/Tokyo"}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	tcs := map[string]struct {
		input user.LoginInput
		err   error
	}{
		"valid":          {input: user.LoginInput{Username: "ana", Password: "correct-horse"}},
		"wrong password": {input: user.LoginInput{Username: "ana", Password: "battery-staple"}, err: user.ErrInvalidCredentials},
		"unknown user":   {input: user.LoginInput{Username: "zed", Password: "correct-horse"}, err: user.ErrInvalidCredentials},
		"empty":          {input: user.LoginInput{}, err: user.ErrInvalidCredentials},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			out, err := d.uc.Login(ctx, tc.input)
			if !errors.Is(err, tc.err) {
				t.Fatalf("expected error %v, got %v", tc.err, err)
			}
			if tc.err != nil {
				return
			}

			p, err := d.jwt.Verify(out.Token)
			if err != nil {
				t.Fatalf("Verify: %v", err)
			}
			if p.UserID != out.User.ID || p.Timezone != "Asia/Tokyo" {
				t.Errorf("unexpected claims %+v", p)
			}
			if !out.ExpiresAt.After(time.Now()) {
				t.Errorf("expected future expiry, got %v", out.ExpiresAt)
			}
		})
	}
}

func TestLogin_RepoError(t *testing.T) {
	d := newTestUseCase()
	d.repo.getErr = repository.ErrFailedToGet

	_, err := d.uc.Login(context.Background(), user.LoginInput{Username: "ana", Password: "correct-horse"})
	if err == nil || errors.Is(err, user.ErrInvalidCredentials) {
		t.Fatalf("expected a store error, got %v", err)
	}
}

func TestLogout(t *testing.T) {
	d := newTestUseCase()
	ctx := context.Background()
	if _, err := d.uc.Register(ctx, user.RegisterInput{Username: "ana", Password: "correct-horse"}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	out, err := d.uc.Login(ctx, user.LoginInput{Username: "ana", Password: "correct-horse"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	p, err := d.jwt.Verify(out.Token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	sc := scope.NewScope(p)

	if err := d.uc.Logout(ctx, sc); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	revoked, err := d.sessions.IsRevoked(ctx, sc.SessionID)
	if err != nil {
		t.Fatalf("IsRevoked: %v", err)
	}
	if !revoked {
		t.Error("expected session to be revoked")
	}
}

func TestMe(t *testing.T) {
	d := newTestUseCase()
	ctx := context.Background()
	u, err := d.uc.Register(ctx, user.RegisterInput{Username: "ana", Password: "correct-horse"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	got, err := d.uc.Me(ctx, model.Scope{UserID: u.ID})
	if err != nil {
		t.Fatalf("Me: %v", err)
	}
	if got.Username != "ana" {
		t.Errorf("expected ana, got %q", got.Username)
	}

	if _, err := d.uc.Me(ctx, model.Scope{UserID: "deleted"}); !errors.Is(err, user.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}
