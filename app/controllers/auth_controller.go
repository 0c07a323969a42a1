package controllers

import (
	"encoding/json"
	"net/http"

	"authboard/app/dto"
	"authboard/app/middleware"
	"authboard/app/services"

	"github.com/rs/zerolog"
)

type AuthController struct {
	Auth *services.AuthService
	Log  zerolog.Logger
}

func NewAuthController(auth *services.AuthService, log zerolog.Logger) *AuthController {
	return &AuthController{Auth: auth, Log: log}
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		dto.WriteError(w, http.StatusBadRequest, "No JSON data provided")
		return
	}
	res, err := c.Auth.Login(req.Username, req.Password)
	if err != nil {
		respondError(w, c.Log, err)
		return
	}
	c.Log.Info().Str("username", req.Username).Msg("user logged in")
	dto.WriteSuccess(w, http.StatusOK, "Login successful", dto.TokenPayload{
		AccessToken: res.Token,
		TokenType:   "bearer",
		User:        dto.NewUserView(res.User),
	})
}

func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		dto.WriteError(w, http.StatusBadRequest, "No JSON data provided")
		return
	}
	res, err := c.Auth.Register(req.Username, req.Email, req.Password)
	if err != nil {
		respondError(w, c.Log, err)
		return
	}
	c.Log.Info().Str("username", req.Username).Msg("user registered")
	dto.WriteSuccess(w, http.StatusCreated, "User registered successfully", dto.TokenPayload{
		AccessToken: res.Token,
		TokenType:   "bearer",
		User:        dto.NewUserView(res.User),
	})
}

func (c *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	user, profile, err := c.Auth.CurrentUser(claims.Subject)
	if err != nil {
		respondError(w, c.Log, err)
		return
	}
	view := dto.MeView{UserView: dto.NewUserView(user), Profile: dto.NewProfileView(profile)}
	dto.WriteSuccess(w, http.StatusOK, "User data retrieved successfully", view)
}
