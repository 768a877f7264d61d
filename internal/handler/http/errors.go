package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/adithya2152/devconnect/internal/service"
)

// HandleServiceError maps service-layer sentinel errors to HTTP responses.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUnauthenticated),
		errors.Is(err, service.ErrTokenExpired),
		errors.Is(err, service.ErrInvalidToken):
		ErrorResponse(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrNotMember),
		errors.Is(err, service.ErrPendingApproval),
		errors.Is(err, service.ErrNotAdmin):
		ErrorResponse(c, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrProfileNotFound),
		errors.Is(err, service.ErrRoomNotFound),
		errors.Is(err, service.ErrCommunityNotFound),
		errors.Is(err, service.ErrMembershipNotFound),
		errors.Is(err, service.ErrOTPNotFound):
		ErrorResponse(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrAlreadyFollowing),
		errors.Is(err, service.ErrAlreadyMember):
		ErrorResponse(c, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrSelfFollow),
		errors.Is(err, service.ErrInvalidOTP),
		errors.Is(err, service.ErrInvalidInput):
		ErrorResponse(c, http.StatusBadRequest, err.Error())
	default:
		logrus.WithError(err).Error("Unhandled internal server error")
		ErrorResponse(c, http.StatusInternalServerError, "An unexpected error occurred")
	}
}

// authenticatedUserID pulls the subject set by the auth middleware.
func authenticatedUserID(c *gin.Context) (string, bool) {
	userIDAny, exists := c.Get("user_id")
	if !exists {
		ErrorResponse(c, http.StatusUnauthorized, "User not authenticated")
		return "", false
	}
	userID, ok := userIDAny.(string)
	if !ok || userID == "" {
		ErrorResponse(c, http.StatusInternalServerError, "Internal server error")
		return "", false
	}
	return userID, true
}
