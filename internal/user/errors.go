package user

import "errors"

var (
	ErrInvalidUsername    = errors.New("username must be 3 to 64 characters")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
	ErrInvalidTimezone    = errors.New("timezone must be an IANA name such as Europe/Berlin")
	ErrUsernameTaken      = errors.New("username is already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserNotFound       = errors.New("user not found")
)
