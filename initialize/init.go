package initialize

import (
	"fmt"
	"net/http"

	"authboard/app/controllers"
	"authboard/app/db"
	jwtutil "authboard/app/jwt"
	"authboard/app/middleware"
	"authboard/app/models"
	"authboard/app/repo"
	"authboard/app/services"
	"authboard/config"
	"authboard/router"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// App holds everything constructed at startup. All state mutated after boot
// lives in the store; the signer secret and config are read-only from here on.
type App struct {
	Cfg    *config.Config
	Log    zerolog.Logger
	DB     *gorm.DB
	Router http.Handler
	Auth   *services.AuthService
	Posts  *services.PostService
}

func Build(configPath string) (*App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	logger := NewLogger()

	gdb, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	if err := gdb.AutoMigrate(&models.User{}, &models.UserProfile{}, &models.Post{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	userRepo := repo.NewUserRepository(gdb)
	postRepo := repo.NewPostRepository(gdb)

	signer := &jwtutil.Signer{Secret: []byte(cfg.JWT.Secret), Issuer: cfg.JWT.Issuer, TTL: cfg.JWT.TTL}
	authSvc := services.NewAuthService(userRepo, signer)
	postSvc := services.NewPostService(postRepo, userRepo)

	if cfg.Seed {
		if err := services.NewSeeder(userRepo, postRepo, logger).Run(); err != nil {
			return nil, fmt.Errorf("seed: %w", err)
		}
	}

	authCtrl := controllers.NewAuthController(authSvc, logger)
	postCtrl := controllers.NewPostController(postSvc, logger)
	adminCtrl := controllers.NewAdminController(authSvc, logger)
	mw := &middleware.Auth{Signer: signer}

	h := router.New(authCtrl, postCtrl, adminCtrl, mw)
	h = middleware.CORS(cfg.CORS.Origins)(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recover(logger)(h)

	return &App{Cfg: cfg, Log: logger, DB: gdb, Router: h, Auth: authSvc, Posts: postSvc}, nil
}
