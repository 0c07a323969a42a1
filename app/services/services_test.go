package services

import (
	"testing"
	"time"

	jwtutil "authboard/app/jwt"
	"authboard/app/models"
	"authboard/app/repo"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testEnv struct {
	db     *gorm.DB
	users  *repo.UserRepository
	posts  *repo.PostRepository
	signer *jwtutil.Signer
	auth   *AuthService
	postsS *PostService
}

func newTestEnv(t *testing.T) *testEnv {
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

	users := repo.NewUserRepository(gdb)
	posts := repo.NewPostRepository(gdb)
	signer := &jwtutil.Signer{Secret: []byte("test-secret"), Issuer: "authboard", TTL: time.Hour}
	return &testEnv{
		db:     gdb,
		users:  users,
		posts:  posts,
		signer: signer,
		auth:   NewAuthService(users, signer),
		postsS: NewPostService(posts, users),
	}
}

func seederLogger() zerolog.Logger { return zerolog.Nop() }
