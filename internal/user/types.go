package user

import (
	"time"

	"meeting-task-extractor/internal/model"
)

type RegisterInput struct {
	Username string
	Password string
	Timezone string
}

type LoginInput struct {
	Username string
	Password string
}

type LoginOutput struct {
	User      model.User
	Token     string
	ExpiresAt time.Time
}
