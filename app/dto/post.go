package dto

import (
	"time"

	"authboard/app/models"
)

type CreatePostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type PostView struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	AuthorID       string    `json:"user_id"`
	AuthorUsername string    `json:"author_username"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	IsPublished    bool      `json:"is_published"`
}

// NewPostView projects a post; authorUsername overrides the preloaded
// association when the caller already knows it.
func NewPostView(p *models.Post, authorUsername string) PostView {
	if authorUsername == "" && p.Author != nil {
		authorUsername = p.Author.Username
	}
	return PostView{
		ID:             p.ID,
		Title:          p.Title,
		Content:        p.Content,
		AuthorID:       p.AuthorID,
		AuthorUsername: authorUsername,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
		IsPublished:    p.IsPublished,
	}
}
