package middleware

import (
	"context"

	"meeting-task-extractor/config"
	"meeting-task-extractor/pkg/log"
	"meeting-task-extractor/pkg/scope"
)

// SessionChecker reports whether a session was revoked by logout.
type SessionChecker interface {
	IsRevoked(ctx context.Context, sessionID string) (bool, error)
}

type Middleware struct {
	l            log.Logger
	jwtManager   scope.Manager
	sessions     SessionChecker
	cookieConfig config.CookieConfig
	limiter      *rateLimiter
}

// New builds the shared middleware set. sessions may be nil when Redis is not configured.
// extractionPerMin <= 0 disables the extraction rate limit.
func New(l log.Logger, jwtManager scope.Manager, sessions SessionChecker, cookieConfig config.CookieConfig, extractionPerMin int) Middleware {
	m := Middleware{
		l:            l,
		jwtManager:   jwtManager,
		sessions:     sessions,
		cookieConfig: cookieConfig,
	}
	if extractionPerMin > 0 {
		m.limiter = newRateLimiter(extractionPerMin)
	}
	return m
}
