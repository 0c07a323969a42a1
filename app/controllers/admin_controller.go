package controllers

import (
	"net/http"

	"authboard/app/dto"
	"authboard/app/services"

	"github.com/rs/zerolog"
)

type AdminController struct {
	Auth *services.AuthService
	Log  zerolog.Logger
}

func NewAdminController(auth *services.AuthService, log zerolog.Logger) *AdminController {
	return &AdminController{Auth: auth, Log: log}
}

func (c *AdminController) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := c.Auth.ListUsers()
	if err != nil {
		respondError(w, c.Log, err)
		return
	}
	views := make([]dto.UserView, 0, len(users))
	for i := range users {
		views = append(views, dto.NewUserView(&users[i]))
	}
	dto.WriteSuccess(w, http.StatusOK, "Users retrieved successfully", views)
}

func (c *AdminController) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := c.Auth.DeleteUser(id); err != nil {
		respondError(w, c.Log, err)
		return
	}
	c.Log.Info().Str("user_id", id).Msg("user deleted")
	dto.WriteSuccess(w, http.StatusOK, "User deleted successfully", nil)
}

func (c *AdminController) DeactivateUser(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := c.Auth.DeactivateUser(id); err != nil {
		respondError(w, c.Log, err)
		return
	}
	c.Log.Info().Str("user_id", id).Msg("user deactivated")
	dto.WriteSuccess(w, http.StatusOK, "User deactivated successfully", nil)
}
