package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adithya2152/devconnect/internal/service"
)

// NotificationHandler serves the caller's notification feed.
type NotificationHandler struct {
	notificationService *service.NotificationService
}

func NewNotificationHandler(notificationService *service.NotificationService) *NotificationHandler {
	if notificationService == nil {
		panic("NotificationService cannot be nil for NotificationHandler")
	}
	return &NotificationHandler{notificationService: notificationService}
}

// List handles GET /notifications.
func (h *NotificationHandler) List(c *gin.Context) {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return
	}
	notifications, unread, err := h.notificationService.List(c.Request.Context(), userID)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, gin.H{
		"notifications": notifications,
		"unread_count":  unread,
	})
}

// MarkAllRead handles PATCH /notifications/mark-all-read.
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return
	}
	if err := h.notificationService.MarkAllRead(c.Request.Context(), userID); err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, gin.H{"message": "All notifications marked read"})
}
