package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/socially-app/backend/internal/identity"
	"github.com/socially-app/backend/internal/models"
	"github.com/socially-app/backend/internal/repositories"
)

const suggestionLimit = 3

// UserHandler handles identity sync, profile lookups and follow suggestions
type UserHandler struct {
	userRepository   repositories.UserRepository
	followRepository repositories.FollowRepository
	postRepository   repositories.PostRepository
	profiles         identity.Fetcher
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userRepo repositories.UserRepository, followRepo repositories.FollowRepository, postRepo repositories.PostRepository, profiles identity.Fetcher) *UserHandler {
	return &UserHandler{
		userRepository:   userRepo,
		followRepository: followRepo,
		postRepository:   postRepo,
		profiles:         profiles,
	}
}

// RegisterPublicRoutes registers the routes that tolerate anonymous sessions
func (h *UserHandler) RegisterPublicRoutes(g *echo.Group) {
	g.POST("/auth/sync", h.SyncUser)
	g.GET("/users/suggestions", h.GetSuggestions)
}

// RegisterProfileRoutes registers the authenticated profile routes
func (h *UserHandler) RegisterProfileRoutes(g *echo.Group) {
	g.GET("/profile", h.GetProfile)
	g.GET("/users/:id", h.GetUser)
	g.GET("/users/:id/followers", h.GetFollowers)
	g.GET("/users/:id/following", h.GetFollowing)
}

// SyncUser makes sure a local user row exists for the caller's external
// identity. It is called opportunistically on every page load, so every
// failure path degrades to a silent no-op rather than an error response.
func (h *UserHandler) SyncUser(c echo.Context) error {
	uid := firebaseUIDFromContext(c)
	if uid == "" {
		return c.NoContent(http.StatusNoContent)
	}

	// Repeat visits return the existing row unchanged; provider profile
	// fields are not re-synced here.
	existing, err := h.userRepository.GetUserByFirebaseUID(uid)
	if err == nil {
		return c.JSON(http.StatusOK, existing)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("sync: user lookup failed for %s: %v", uid, err)
		return c.NoContent(http.StatusNoContent)
	}

	profile, err := h.profiles.Fetch(c.Request().Context(), uid)
	if err != nil {
		log.Printf("sync: profile fetch failed for %s: %v", uid, err)
		return c.NoContent(http.StatusNoContent)
	}

	username := profile.Username
	if username == "" {
		username = profile.FallbackUsername()
	}

	user := &models.User{
		Name:        profile.DisplayName,
		Username:    username,
		Email:       profile.PrimaryEmail(),
		Image:       profile.PhotoURL,
		FirebaseUID: uid,
	}
	if err := h.userRepository.CreateUser(user); err != nil {
		log.Printf("sync: user create failed for %s: %v", uid, err)
		return c.NoContent(http.StatusNoContent)
	}

	return c.JSON(http.StatusCreated, user)
}

// GetProfile retrieves the authenticated user's profile with derived counts
func (h *UserHandler) GetProfile(c echo.Context) error {
	uid := firebaseUIDFromContext(c)

	user, err := h.userRepository.GetUserByFirebaseUID(uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "User profile not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return h.respondWithCounts(c, user)
}

// GetUser retrieves another user's profile by local ID, with derived counts
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	user, err := h.userRepository.GetUserByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "User profile not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return h.respondWithCounts(c, user)
}

func (h *UserHandler) respondWithCounts(c echo.Context, user *models.User) error {
	followers, err := h.followRepository.GetFollowersCount(user.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	following, err := h.followRepository.GetFollowingCount(user.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	posts, err := h.postRepository.CountByAuthorID(user.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, models.UserWithCounts{
		User: *user,
		Counts: models.UserCounts{
			Followers: followers,
			Following: following,
			Posts:     posts,
		},
	})
}

// GetSuggestions returns up to 3 users the caller might want to follow,
// excluding the caller and everyone they already follow. Signed-out visitors
// and query failures both get an empty list, never an error.
func (h *UserHandler) GetSuggestions(c echo.Context) error {
	suggestions := []models.SuggestedUser{}

	user, err := resolveCurrentUser(c, h.userRepository)
	if err != nil {
		log.Printf("suggestions: resolving current user failed: %v", err)
		return c.JSON(http.StatusOK, suggestions)
	}
	if user == nil {
		return c.JSON(http.StatusOK, suggestions)
	}

	candidates, err := h.userRepository.GetSuggestedUsers(user.ID, suggestionLimit)
	if err != nil {
		log.Printf("suggestions: query failed for user %d: %v", user.ID, err)
		return c.JSON(http.StatusOK, suggestions)
	}

	for _, candidate := range candidates {
		followers, err := h.followRepository.GetFollowersCount(candidate.ID)
		if err != nil {
			log.Printf("suggestions: follower count failed for user %d: %v", candidate.ID, err)
			return c.JSON(http.StatusOK, []models.SuggestedUser{})
		}
		suggestions = append(suggestions, models.SuggestedUser{
			ID:        candidate.ID,
			Name:      candidate.Name,
			Username:  candidate.Username,
			Image:     candidate.Image,
			Followers: followers,
		})
	}

	return c.JSON(http.StatusOK, suggestions)
}

// GetFollowers lists the users following the given user
func (h *UserHandler) GetFollowers(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	users, err := h.followRepository.GetFollowers(uint(id))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, users)
}

// GetFollowing lists the users the given user follows
func (h *UserHandler) GetFollowing(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	users, err := h.followRepository.GetFollowing(uint(id))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, users)
}
