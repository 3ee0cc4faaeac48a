package http

import (
	"meeting-task-extractor/config"
	"meeting-task-extractor/internal/user"
	"meeting-task-extractor/pkg/log"
)

type handler struct {
	l            log.Logger
	uc           user.UseCase
	cookieConfig config.CookieConfig
}

// New creates a new HTTP handler for accounts and sessions.
func New(l log.Logger, uc user.UseCase, cookieConfig config.CookieConfig) *handler {
	return &handler{
		l:            l,
		uc:           uc,
		cookieConfig: cookieConfig,
	}
}
