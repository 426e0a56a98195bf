package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/socially-app/backend/internal/models"
	"github.com/socially-app/backend/internal/repositories"
	"github.com/socially-app/backend/internal/revalidate"
)

const feedLimit = 50

// PostHandler handles post creation and the recent-posts feed
type PostHandler struct {
	postRepository repositories.PostRepository
	userRepository repositories.UserRepository
	revalidator    revalidate.Revalidator
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postRepo repositories.PostRepository, userRepo repositories.UserRepository, revalidator revalidate.Revalidator) *PostHandler {
	return &PostHandler{
		postRepository: postRepo,
		userRepository: userRepo,
		revalidator:    revalidator,
	}
}

// RegisterPostRoutes registers post-related routes
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.POST("/posts", h.CreatePost)
	g.GET("/posts", h.GetRecentPosts)
	g.GET("/users/:id/posts", h.GetUserPosts)
}

// CreatePost creates a new post for the authenticated user
func (h *PostHandler) CreatePost(c echo.Context) error {
	current, err := resolveCurrentUser(c, h.userRepository)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if current == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post := &models.Post{
		AuthorID: current.ID,
		Content:  req.Content,
		Image:    req.Image,
	}
	if err := h.postRepository.CreatePost(post); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if err := h.revalidator.Revalidate(c.Request().Context(), "/"); err != nil {
		log.Printf("create post: revalidate failed: %v", err)
	}

	return c.JSON(http.StatusCreated, post)
}

// GetRecentPosts returns the most recent posts across all users
func (h *PostHandler) GetRecentPosts(c echo.Context) error {
	posts, err := h.postRepository.GetRecent(feedLimit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, posts)
}

// GetUserPosts returns one user's posts, newest first
func (h *PostHandler) GetUserPosts(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	posts, err := h.postRepository.GetByAuthorID(uint(id))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, posts)
}
