package model

import "time"

const DefaultTimezone = "UTC"

// User is an account holder. PasswordHash is never serialized to clients.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	Timezone     string
	CreatedAt    time.Time
}
