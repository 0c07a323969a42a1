package services

import (
	"errors"
	"unicode/utf8"

	"authboard/app/apperr"
	"authboard/app/models"
	"authboard/app/repo"

	"gorm.io/gorm"
)

const (
	maxTitleLen      = 200
	recentPostsLimit = 5
)

type PostService struct {
	posts *repo.PostRepository
	users *repo.UserRepository
}

func NewPostService(posts *repo.PostRepository, users *repo.UserRepository) *PostService {
	return &PostService{posts: posts, users: users}
}

// Create persists a post owned by authorID; the author is fixed at creation
// and never reassigned.
func (s *PostService) Create(authorID, title, content string) (*models.Post, error) {
	if title == "" || content == "" {
		return nil, apperr.New(apperr.KindBadRequest, "Title and content are required")
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return nil, apperr.New(apperr.KindBadRequest, "Title too long (max 200 characters)")
	}

	post := &models.Post{Title: title, Content: content, AuthorID: authorID, IsPublished: true}
	if err := s.posts.Create(post); err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "creating post", err)
	}
	return post, nil
}

func (s *PostService) RecentPublished() ([]models.Post, error) {
	posts, err := s.posts.RecentPublished(recentPostsLimit)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "listing recent posts", err)
	}
	return posts, nil
}

// DashboardData aggregates independently queried counts and listings; there
// is no transactional requirement across them.
type DashboardData struct {
	TotalUsers  int64
	TotalPosts  int64
	YourPosts   int64
	RecentPosts []models.Post
	ActiveUsers []models.User
}

func (s *PostService) Dashboard(currentUserID string) (*DashboardData, error) {
	if _, err := s.users.FindByID(currentUserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "User not found")
		}
		return nil, apperr.Wrap(apperr.KindInternal, "looking up user", err)
	}

	data := &DashboardData{}
	var err error
	if data.TotalUsers, err = s.users.Count(); err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "counting users", err)
	}
	if data.TotalPosts, err = s.posts.Count(); err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "counting posts", err)
	}
	if data.YourPosts, err = s.posts.CountByAuthor(currentUserID); err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "counting own posts", err)
	}
	if data.RecentPosts, err = s.posts.RecentPublished(recentPostsLimit); err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "listing recent posts", err)
	}
	if data.ActiveUsers, err = s.users.ListActive(); err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "listing active users", err)
	}
	return data, nil
}
