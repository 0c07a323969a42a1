package repo

import (
	"testing"
	"time"

	"authboard/app/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, gdb.AutoMigrate(&models.User{}, &models.UserProfile{}, &models.Post{}))
	return gdb
}

func newUser(username, email string) *models.User {
	return &models.User{Username: username, Email: email, PasswordHash: "x", IsActive: true}
}

func TestCreateWithProfileAtomic(t *testing.T) {
	gdb := newTestDB(t)
	users := NewUserRepository(gdb)

	u1 := newUser("alice", "alice@x.com")
	require.NoError(t, users.CreateWithProfile(u1, &models.UserProfile{}))

	// same username, different email: the whole transaction must roll back
	u2 := newUser("alice", "alice2@x.com")
	err := users.CreateWithProfile(u2, &models.UserProfile{})
	require.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	var profiles int64
	require.NoError(t, gdb.Model(&models.UserProfile{}).Count(&profiles).Error)
	require.EqualValues(t, 1, profiles)

	var userCount int64
	require.NoError(t, gdb.Model(&models.User{}).Count(&userCount).Error)
	require.EqualValues(t, 1, userCount)
}

func TestUniqueEmail(t *testing.T) {
	gdb := newTestDB(t)
	users := NewUserRepository(gdb)

	require.NoError(t, users.Create(newUser("alice", "alice@x.com")))
	err := users.Create(newUser("bob", "alice@x.com"))
	require.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestDeleteCascadesOwnership(t *testing.T) {
	gdb := newTestDB(t)
	users := NewUserRepository(gdb)
	posts := NewPostRepository(gdb)

	alice := newUser("alice", "alice@x.com")
	require.NoError(t, users.CreateWithProfile(alice, &models.UserProfile{}))
	bob := newUser("bob", "bob@x.com")
	require.NoError(t, users.CreateWithProfile(bob, &models.UserProfile{}))

	require.NoError(t, posts.Create(&models.Post{Title: "a1", Content: "c", AuthorID: alice.ID, IsPublished: true}))
	require.NoError(t, posts.Create(&models.Post{Title: "a2", Content: "c", AuthorID: alice.ID, IsPublished: true}))
	require.NoError(t, posts.Create(&models.Post{Title: "b1", Content: "c", AuthorID: bob.ID, IsPublished: true}))

	require.NoError(t, users.Delete(alice.ID))

	aliceCount, err := posts.CountByAuthor(alice.ID)
	require.NoError(t, err)
	require.EqualValues(t, 0, aliceCount)

	bobCount, err := posts.CountByAuthor(bob.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, bobCount)

	_, err = users.ProfileByUserID(alice.ID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
	_, err = users.FindByID(alice.ID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.ErrorIs(t, users.Delete("no-such-id"), gorm.ErrRecordNotFound)
}

func TestDeactivate(t *testing.T) {
	gdb := newTestDB(t)
	users := NewUserRepository(gdb)

	alice := newUser("alice", "alice@x.com")
	require.NoError(t, users.Create(alice))

	require.NoError(t, users.Deactivate(alice.ID))
	got, err := users.FindByID(alice.ID)
	require.NoError(t, err)
	require.False(t, got.IsActive)

	require.ErrorIs(t, users.Deactivate("no-such-id"), gorm.ErrRecordNotFound)
}

func TestRecentPublished(t *testing.T) {
	gdb := newTestDB(t)
	users := NewUserRepository(gdb)
	posts := NewPostRepository(gdb)

	alice := newUser("alice", "alice@x.com")
	require.NoError(t, users.Create(alice))

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		p := &models.Post{
			Title:       string(rune('a' + i)),
			Content:     "c",
			AuthorID:    alice.ID,
			IsPublished: true,
			CreatedAt:   base.Add(time.Duration(i) * time.Hour),
		}
		require.NoError(t, posts.Create(p))
	}
	require.NoError(t, posts.Create(&models.Post{
		Title: "draft", Content: "c", AuthorID: alice.ID,
		IsPublished: false, CreatedAt: base.Add(100 * time.Hour),
	}))

	recent, err := posts.RecentPublished(5)
	require.NoError(t, err)
	require.Len(t, recent, 5)
	require.Equal(t, "g", recent[0].Title)
	require.Equal(t, "c", recent[4].Title)
	for _, p := range recent {
		require.True(t, p.IsPublished)
		require.NotNil(t, p.Author)
		require.Equal(t, "alice", p.Author.Username)
	}
}
