package http

import (
	"time"

	"meeting-task-extractor/internal/model"
	"meeting-task-extractor/internal/user"
)

type registerReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Timezone string `json:"timezone"`
}

func (r registerReq) toInput() user.RegisterInput {
	return user.RegisterInput{
		Username: r.Username,
		Password: r.Password,
		Timezone: r.Timezone,
	}
}

type loginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r loginReq) toInput() user.LoginInput {
	return user.LoginInput{Username: r.Username, Password: r.Password}
}

// ---

type userResp struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Timezone  string `json:"timezone"`
	CreatedAt string `json:"created_at"`
}

func newUserResp(u model.User) userResp {
	return userResp{
		ID:        u.ID,
		Username:  u.Username,
		Timezone:  u.Timezone,
		CreatedAt: u.CreatedAt.UTC().Format(time.RFC3339),
	}
}

type loginResp struct {
	User      userResp `json:"user"`
	Token     string   `json:"token"`
	ExpiresAt string   `json:"expires_at"`
}

func newLoginResp(o user.LoginOutput) loginResp {
	return loginResp{
		User:      newUserResp(o.User),
		Token:     o.Token,
		ExpiresAt: o.ExpiresAt.UTC().Format(time.RFC3339),
	}
}
