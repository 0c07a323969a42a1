package controllers

import (
	"encoding/json"
	"net/http"

	"authboard/app/dto"
	"authboard/app/middleware"
	"authboard/app/services"

	"github.com/rs/zerolog"
)

type PostController struct {
	Posts *services.PostService
	Log   zerolog.Logger
}

func NewPostController(posts *services.PostService, log zerolog.Logger) *PostController {
	return &PostController{Posts: posts, Log: log}
}

func (c *PostController) Create(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	var req dto.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		dto.WriteError(w, http.StatusBadRequest, "No JSON data provided")
		return
	}
	post, err := c.Posts.Create(claims.Subject, req.Title, req.Content)
	if err != nil {
		respondError(w, c.Log, err)
		return
	}
	c.Log.Info().Str("user_id", claims.Subject).Str("title", post.Title).Msg("post created")
	dto.WriteSuccess(w, http.StatusCreated, "Post created successfully", dto.NewPostView(post, claims.Username))
}

// Data serves the dashboard aggregate for the authenticated user.
func (c *PostController) Data(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	data, err := c.Posts.Dashboard(claims.Subject)
	if err != nil {
		respondError(w, c.Log, err)
		return
	}

	view := dto.DashboardView{
		Stats: dto.DashboardStats{
			TotalUsers: data.TotalUsers,
			TotalPosts: data.TotalPosts,
			YourPosts:  data.YourPosts,
		},
		RecentPosts: make([]dto.PostView, 0, len(data.RecentPosts)),
		Users:       make([]dto.DashboardUser, 0, len(data.ActiveUsers)),
	}
	for i := range data.RecentPosts {
		view.RecentPosts = append(view.RecentPosts, dto.NewPostView(&data.RecentPosts[i], ""))
	}
	for i := range data.ActiveUsers {
		view.Users = append(view.Users, dto.NewDashboardUser(&data.ActiveUsers[i]))
	}
	dto.WriteSuccess(w, http.StatusOK, "Data retrieved successfully", view)
}
