package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adithya2152/devconnect/internal/service"
)

// ProfileHandler serves profiles and the follow graph.
type ProfileHandler struct {
	profileService *service.ProfileService
}

func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	if profileService == nil {
		panic("ProfileService cannot be nil for ProfileHandler")
	}
	return &ProfileHandler{profileService: profileService}
}

// Get handles GET /chat/profile/:userId.
func (h *ProfileHandler) Get(c *gin.Context) {
	if _, ok := authenticatedUserID(c); !ok {
		return
	}
	profile, err := h.profileService.Get(c.Request.Context(), c.Param("userId"))
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, profile)
}

// Detailed handles GET /chat/profile/:userId/detailed.
func (h *ProfileHandler) Detailed(c *gin.Context) {
	viewerID, ok := authenticatedUserID(c)
	if !ok {
		return
	}
	detail, err := h.profileService.Detailed(c.Request.Context(), c.Param("userId"), viewerID)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, detail)
}

type followRequest struct {
	FollowingID string `json:"following_id" binding:"required"`
}

// Follow handles POST /chat/follow.
func (h *ProfileHandler) Follow(c *gin.Context) {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return
	}
	var req followRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := h.profileService.Follow(c.Request.Context(), userID, req.FollowingID); err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, gin.H{"message": "Followed successfully"})
}

// Unfollow handles POST /chat/unfollow.
func (h *ProfileHandler) Unfollow(c *gin.Context) {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return
	}
	var req followRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := h.profileService.Unfollow(c.Request.Context(), userID, req.FollowingID); err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, gin.H{"message": "Unfollowed successfully"})
}
