package handlers

import (
	"errors"
	"fmt"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/socially-app/backend/internal/models"
	"github.com/socially-app/backend/internal/repositories"
)

// firebaseUIDFromContext returns the verified external identity id for this
// request, or an empty string when the route allows anonymous access and no
// token was presented.
func firebaseUIDFromContext(c echo.Context) string {
	uid, _ := c.Get("firebaseUID").(string)
	return uid
}

// resolveCurrentUser maps the request's session to the local user row. A
// missing session yields (nil, nil) and callers must handle that explicitly.
// A session with no matching local row is an error, because it means the
// identity was never synced and every downstream operation would misbehave.
func resolveCurrentUser(c echo.Context, users repositories.UserRepository) (*models.User, error) {
	uid := firebaseUIDFromContext(c)
	if uid == "" {
		return nil, nil
	}

	user, err := users.GetUserByFirebaseUID(uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("no local user for identity %s", uid)
		}
		return nil, err
	}
	return user, nil
}
