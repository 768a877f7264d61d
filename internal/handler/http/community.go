package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adithya2152/devconnect/internal/service"
)

// CommunityHandler serves community discovery and membership management.
type CommunityHandler struct {
	communityService *service.CommunityService
}

func NewCommunityHandler(communityService *service.CommunityService) *CommunityHandler {
	if communityService == nil {
		panic("CommunityService cannot be nil for CommunityHandler")
	}
	return &CommunityHandler{communityService: communityService}
}

// Explore handles GET /communities/explore.
func (h *CommunityHandler) Explore(c *gin.Context) {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return
	}
	rooms, err := h.communityService.Explore(c.Request.Context(), userID)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, rooms)
}

// Joined handles GET /communities/joined.
func (h *CommunityHandler) Joined(c *gin.Context) {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return
	}
	rooms, err := h.communityService.Joined(c.Request.Context(), userID)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, rooms)
}

// Hosted handles GET /communities/hosted.
func (h *CommunityHandler) Hosted(c *gin.Context) {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return
	}
	rooms, err := h.communityService.Hosted(c.Request.Context(), userID)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, rooms)
}

type createCommunityRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// Create handles POST /communities/add.
func (h *CommunityHandler) Create(c *gin.Context) {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return
	}
	var req createCommunityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	room, err := h.communityService.Create(c.Request.Context(), userID, req.Name, req.Description)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusCreated, room)
}

// Join handles POST /communities/:id/join.
func (h *CommunityHandler) Join(c *gin.Context) {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return
	}
	membership, err := h.communityService.Join(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, membership)
}

type moderationRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

// Approve handles POST /communities/:id/approve.
func (h *CommunityHandler) Approve(c *gin.Context) {
	adminID, ok := authenticatedUserID(c)
	if !ok {
		return
	}
	var req moderationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := h.communityService.Approve(c.Request.Context(), c.Param("id"), adminID, req.UserID); err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, gin.H{"message": "Membership approved"})
}

// Reject handles POST /communities/:id/reject.
func (h *CommunityHandler) Reject(c *gin.Context) {
	adminID, ok := authenticatedUserID(c)
	if !ok {
		return
	}
	var req moderationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := h.communityService.Reject(c.Request.Context(), c.Param("id"), adminID, req.UserID); err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, gin.H{"message": "Membership rejected"})
}

// Leave handles POST /communities/:id/leave.
func (h *CommunityHandler) Leave(c *gin.Context) {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return
	}
	if err := h.communityService.Leave(c.Request.Context(), c.Param("id"), userID); err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, gin.H{"message": "Left community"})
}

// Members handles GET /communities/:id/members.
func (h *CommunityHandler) Members(c *gin.Context) {
	if _, ok := authenticatedUserID(c); !ok {
		return
	}
	members, err := h.communityService.Members(c.Request.Context(), c.Param("id"))
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, members)
}
