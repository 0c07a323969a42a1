package services

import (
	"authboard/app/models"
	"authboard/app/password"
	"authboard/app/repo"

	"github.com/rs/zerolog"
)

// Seeder populates an empty store with demo accounts and posts so a fresh
// deployment is immediately usable.
type Seeder struct {
	users *repo.UserRepository
	posts *repo.PostRepository
	log   zerolog.Logger
}

func NewSeeder(users *repo.UserRepository, posts *repo.PostRepository, log zerolog.Logger) *Seeder {
	return &Seeder{users: users, posts: posts, log: log}
}

// Run is a no-op when any user already exists.
func (s *Seeder) Run() error {
	count, err := s.users.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	admin, err := s.seedUser("admin", "admin@example.com", "admin123")
	if err != nil {
		return err
	}
	tester, err := s.seedUser("testuser", "test@example.com", "test123")
	if err != nil {
		return err
	}

	demo := []*models.Post{
		{Title: "Welcome to authboard!", Content: "This is the first demo post. Glad to have you here!", AuthorID: admin.ID, IsPublished: true},
		{Title: "Second demo post", Content: "This post was created by the test user.", AuthorID: tester.ID, IsPublished: true},
	}
	for _, p := range demo {
		if err := s.posts.Create(p); err != nil {
			return err
		}
	}

	s.log.Info().Msg("seed data created: admin/admin123, testuser/test123")
	return nil
}

func (s *Seeder) seedUser(username, email, plain string) (*models.User, error) {
	hash, err := password.Hash(plain)
	if err != nil {
		return nil, err
	}
	u := &models.User{Username: username, Email: email, PasswordHash: hash, IsActive: true}
	if err := s.users.Create(u); err != nil {
		return nil, err
	}
	return u, nil
}
