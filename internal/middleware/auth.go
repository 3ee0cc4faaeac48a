package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"meeting-task-extractor/pkg/response"
	"meeting-task-extractor/pkg/scope"
)

// Auth accepts the session cookie or an "Authorization: Bearer" header, rejects
// revoked sessions and stores the caller's scope in the request context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		token := m.extractToken(c)
		if token == "" {
			response.Unauthorized(c)
			return
		}

		payload, err := m.jwtManager.Verify(token)
		if err != nil {
			m.l.Debugf(ctx, "middleware.Auth: %v", err)
			response.Unauthorized(c)
			return
		}

		if m.sessions != nil {
			revoked, err := m.sessions.IsRevoked(ctx, payload.ID)
			if err != nil {
				m.l.Errorf(ctx, "middleware.Auth: session check: %v", err)
				response.InternalError(c, err)
				return
			}
			if revoked {
				response.Unauthorized(c)
				return
			}
		}

		c.Request = c.Request.WithContext(scope.SetScopeToContext(ctx, scope.NewScope(payload)))
		c.Next()
	}
}

func (m Middleware) extractToken(c *gin.Context) string {
	if m.cookieConfig.Name != "" {
		if v, err := c.Cookie(m.cookieConfig.Name); err == nil && v != "" {
			return v
		}
	}

	h := c.GetHeader("Authorization")
	if len(h) > 7 && strings.EqualFold(h[:7], "bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return ""
}
