package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/socially-app/backend/internal/models"
	"github.com/socially-app/backend/internal/repositories"
	"github.com/socially-app/backend/internal/revalidate"
)

// FollowHandler handles the follow/unfollow toggle
type FollowHandler struct {
	followRepository repositories.FollowRepository
	userRepository   repositories.UserRepository
	revalidator      revalidate.Revalidator
}

// NewFollowHandler creates a new FollowHandler
func NewFollowHandler(followRepo repositories.FollowRepository, userRepo repositories.UserRepository, revalidator revalidate.Revalidator) *FollowHandler {
	return &FollowHandler{
		followRepository: followRepo,
		userRepository:   userRepo,
		revalidator:      revalidator,
	}
}

// RegisterFollowRoutes registers follow-related routes
func (h *FollowHandler) RegisterFollowRoutes(g *echo.Group) {
	g.POST("/users/:id/toggle-follow", h.ToggleFollow)
}

// ToggleFollow flips the follow edge between the caller and the target user.
// Creating the edge also creates a FOLLOW notification in the same database
// transaction; deleting it has no notification side effect. The response
// carries a success flag only, never the resulting state.
func (h *FollowHandler) ToggleFollow(c echo.Context) error {
	targetID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	current, err := resolveCurrentUser(c, h.userRepository)
	if err != nil {
		log.Printf("toggle follow: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false})
	}
	if current == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	if current.ID == uint(targetID) {
		log.Printf("toggle follow: user %d attempted to follow themselves", current.ID)
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false})
	}

	isFollowing, err := h.followRepository.IsFollowing(current.ID, uint(targetID))
	if err != nil {
		log.Printf("toggle follow: state check failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false})
	}

	if isFollowing {
		if err := h.followRepository.Unfollow(current.ID, uint(targetID)); err != nil {
			log.Printf("toggle follow: unfollow of %d by %d failed: %v", targetID, current.ID, err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"success": false})
		}
	} else {
		follow := &models.Follow{
			FollowerID:  current.ID,
			FollowingID: uint(targetID),
		}
		notification := &models.Notification{
			Type:        models.NotificationTypeFollow,
			ActorID:     current.ID,
			RecipientID: uint(targetID),
			Message:     current.Name + " started following you",
		}
		if err := h.followRepository.FollowAndNotify(follow, notification); err != nil {
			log.Printf("toggle follow: follow of %d by %d failed: %v", targetID, current.ID, err)
			// A concurrent toggle can win the race to create the edge; the
			// unique index rejects the loser here.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return c.JSON(http.StatusConflict, echo.Map{"success": false})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"success": false})
		}
	}

	if err := h.revalidator.Revalidate(c.Request().Context(), "/"); err != nil {
		log.Printf("toggle follow: revalidate failed: %v", err)
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
