package scope

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"meeting-task-extractor/internal/model"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrMissingScope = errors.New("missing scope")
)

// Payload is the JWT claim set for an authenticated session.
type Payload struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Timezone string `json:"timezone"`
	jwt.RegisteredClaims
}

// Manager issues and verifies session tokens.
type Manager interface {
	CreateToken(p Payload) (string, time.Time, error)
	Verify(token string) (Payload, error)
}

type implManager struct {
	secretKey []byte
	ttl       time.Duration
}

// New returns an HS256 Manager.
func New(secretKey string, ttl time.Duration) Manager {
	return &implManager{
		secretKey: []byte(secretKey),
		ttl:       ttl,
	}
}

// CreateToken signs p. A fresh token id is assigned, which doubles as the session id.
func (m *implManager) CreateToken(p Payload) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(m.ttl)

	p.RegisteredClaims = jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   p.UserID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, p)
	signed, err := token.SignedString(m.secretKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("scope.CreateToken: %w", err)
	}
	return signed, expiresAt, nil
}

func (m *implManager) Verify(tokenStr string) (Payload, error) {
	var p Payload
	token, err := jwt.ParseWithClaims(tokenStr, &p, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secretKey, nil
	})
	if err != nil || !token.Valid {
		return Payload{}, ErrInvalidToken
	}
	if p.UserID == "" || p.ID == "" {
		return Payload{}, ErrInvalidToken
	}
	return p, nil
}

// NewScope converts verified claims into the request scope.
func NewScope(p Payload) model.Scope {
	return model.Scope{
		UserID:    p.UserID,
		Username:  p.Username,
		Timezone:  p.Timezone,
		SessionID: p.ID,
	}
}

type scopeKey struct{}

func SetScopeToContext(ctx context.Context, sc model.Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, sc)
}

func GetScopeFromContext(ctx context.Context) (model.Scope, bool) {
	sc, ok := ctx.Value(scopeKey{}).(model.Scope)
	return sc, ok
}
