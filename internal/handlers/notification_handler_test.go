package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/socially-app/backend/internal/models"
)

func TestGetNotificationsListsOwnOnly(t *testing.T) {
	users := newFakeUserRepo()
	alice := users.mustAdd("Alice", "alice", "uid-alice")
	bob := users.mustAdd("Bob", "bob", "uid-bob")

	notifications := &fakeNotificationRepo{notifications: []models.Notification{
		{ID: 1, Type: models.NotificationTypeFollow, ActorID: bob.ID, RecipientID: alice.ID},
		{ID: 2, Type: models.NotificationTypeFollow, ActorID: alice.ID, RecipientID: bob.ID},
	}}
	h := NewNotificationHandler(notifications, users)

	c, rec := newGetContext(t, "uid-alice")
	if err := h.GetNotifications(c); err != nil {
		t.Fatalf("GetNotifications: %v", err)
	}

	var body struct {
		Notifications []models.Notification `json:"notifications"`
		Total         int64                 `json:"total"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Total != 1 || len(body.Notifications) != 1 {
		t.Fatalf("got %d/%d notifications, want 1", len(body.Notifications), body.Total)
	}
	if body.Notifications[0].RecipientID != alice.ID {
		t.Fatalf("listed a notification for someone else")
	}
}

func TestUnreadCountAndMarkAllAsRead(t *testing.T) {
	users := newFakeUserRepo()
	alice := users.mustAdd("Alice", "alice", "uid-alice")

	notifications := &fakeNotificationRepo{notifications: []models.Notification{
		{ID: 1, RecipientID: alice.ID},
		{ID: 2, RecipientID: alice.ID},
		{ID: 3, RecipientID: alice.ID, IsRead: true},
	}}
	h := NewNotificationHandler(notifications, users)

	c, rec := newGetContext(t, "uid-alice")
	if err := h.GetUnreadCount(c); err != nil {
		t.Fatalf("GetUnreadCount: %v", err)
	}
	var count struct {
		Unread int64 `json:"unread"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &count); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if count.Unread != 2 {
		t.Fatalf("unread = %d, want 2", count.Unread)
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/", nil)
	rec = httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	ctx.Set("firebaseUID", "uid-alice")
	if err := h.MarkAllAsRead(ctx); err != nil {
		t.Fatalf("MarkAllAsRead: %v", err)
	}

	remaining, _ := notifications.GetUnreadCount(alice.ID)
	if remaining != 0 {
		t.Fatalf("unread after mark-all = %d, want 0", remaining)
	}
}

func TestNotificationsRequireSession(t *testing.T) {
	h := NewNotificationHandler(&fakeNotificationRepo{}, newFakeUserRepo())

	c, _ := newGetContext(t, "")
	err := h.GetNotifications(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("error = %v, want *echo.HTTPError", err)
	}
	if httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", httpErr.Code, http.StatusUnauthorized)
	}
}
