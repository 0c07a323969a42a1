package dto

import (
	"time"

	"authboard/app/models"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserView is the public projection of a user; the password hash never
// leaves the service layer.
type UserView struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	IsActive  bool      `json:"is_active"`
}

func NewUserView(u *models.User) UserView {
	return UserView{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		IsActive:  u.IsActive,
	}
}

type ProfileView struct {
	ID       string `json:"id"`
	UserID   string `json:"user_id"`
	FullName string `json:"full_name"`
	Bio      string `json:"bio"`
}

func NewProfileView(p *models.UserProfile) *ProfileView {
	if p == nil {
		return nil
	}
	return &ProfileView{ID: p.ID, UserID: p.UserID, FullName: p.FullName, Bio: p.Bio}
}

// MeView extends the public user projection with the paired profile.
type MeView struct {
	UserView
	Profile *ProfileView `json:"profile,omitempty"`
}

type TokenPayload struct {
	AccessToken string   `json:"access_token"`
	TokenType   string   `json:"token_type"`
	User        UserView `json:"user"`
}
