package router

import (
	"net/http"

	"authboard/app/controllers"
	"authboard/app/dto"
	"authboard/app/middleware"
)

func New(authCtrl *controllers.AuthController, postCtrl *controllers.PostController, adminCtrl *controllers.AdminController, mw *middleware.Auth) http.Handler {
	mux := http.NewServeMux()

	// public
	mux.HandleFunc("POST /auth/login", authCtrl.Login)
	mux.HandleFunc("POST /auth/register", authCtrl.Register)

	// bearer-protected
	mux.Handle("GET /auth/me", mw.RequireAuth(http.HandlerFunc(authCtrl.Me)))
	mux.Handle("GET /api/data", mw.RequireAuth(http.HandlerFunc(postCtrl.Data)))
	mux.Handle("POST /api/posts", mw.RequireAuth(http.HandlerFunc(postCtrl.Create)))

	// admin-only
	mux.Handle("GET /admin/users", mw.RequireAdmin(http.HandlerFunc(adminCtrl.ListUsers)))
	mux.Handle("DELETE /admin/users/{id}", mw.RequireAdmin(http.HandlerFunc(adminCtrl.DeleteUser)))
	mux.Handle("PATCH /admin/users/{id}/deactivate", mw.RequireAdmin(http.HandlerFunc(adminCtrl.DeactivateUser)))

	// unknown routes answer with the same envelope as everything else
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		dto.WriteError(w, http.StatusNotFound, "Endpoint not found")
	})

	return mux
}
