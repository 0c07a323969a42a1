package dto

import (
	"time"

	"authboard/app/models"
)

type DashboardStats struct {
	TotalUsers int64 `json:"total_users"`
	TotalPosts int64 `json:"total_posts"`
	YourPosts  int64 `json:"your_posts"`
}

// DashboardUser is the trimmed listing of an active user on the dashboard.
type DashboardUser struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type DashboardView struct {
	Stats       DashboardStats  `json:"stats"`
	RecentPosts []PostView      `json:"recent_posts"`
	Users       []DashboardUser `json:"users"`
}

func NewDashboardUser(u *models.User) DashboardUser {
	return DashboardUser{ID: u.ID, Username: u.Username, Email: u.Email, CreatedAt: u.CreatedAt}
}
