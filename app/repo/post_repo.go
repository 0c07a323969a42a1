package repo

import (
	"authboard/app/models"

	"gorm.io/gorm"
)

type PostRepository struct{ db *gorm.DB }

func NewPostRepository(db *gorm.DB) *PostRepository { return &PostRepository{db: db} }

func (r *PostRepository) Create(p *models.Post) error { return r.db.Create(p).Error }

func (r *PostRepository) Count() (int64, error) {
	var count int64
	return count, r.db.Model(&models.Post{}).Count(&count).Error
}

func (r *PostRepository) CountByAuthor(authorID string) (int64, error) {
	var count int64
	return count, r.db.Model(&models.Post{}).Where("author_id = ?", authorID).Count(&count).Error
}

// RecentPublished returns the newest published posts with authors preloaded.
// Ties on created_at fall back to id so the ordering stays deterministic.
func (r *PostRepository) RecentPublished(limit int) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Preload("Author").
		Where("is_published = ?", true).
		Order("created_at DESC, id").
		Limit(limit).
		Find(&posts).Error
	return posts, err
}

func (r *PostRepository) ListByAuthor(authorID string) ([]models.Post, error) {
	var posts []models.Post
	return posts, r.db.Where("author_id = ?", authorID).Order("created_at").Find(&posts).Error
}
