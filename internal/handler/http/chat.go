package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/adithya2152/devconnect/internal/service"
)

// ChatHandler serves conversations, direct rooms and message history.
type ChatHandler struct {
	chatService *service.ChatService
}

func NewChatHandler(chatService *service.ChatService) *ChatHandler {
	if chatService == nil {
		panic("ChatService cannot be nil for ChatHandler")
	}
	return &ChatHandler{chatService: chatService}
}

// Conversations handles GET /chat/conversations.
func (h *ChatHandler) Conversations(c *gin.Context) {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return
	}
	conversations, err := h.chatService.Conversations(c.Request.Context(), userID)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, conversations)
}

type createRoomRequest struct {
	OtherUserID string `json:"other_user_id" binding:"required"`
}

// CreateRoom handles POST /chat/create-room. Creating a room that already
// exists between the two users returns the existing one.
func (h *ChatHandler) CreateRoom(c *gin.Context) {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return
	}
	var req createRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	room, err := h.chatService.CreateDirectRoom(c.Request.Context(), userID, req.OtherUserID)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, gin.H{"room_id": room.RoomID})
}

// History handles GET /chat/rooms/:roomId/messages?limit=&offset=.
func (h *ChatHandler) History(c *gin.Context) {
	if _, ok := authenticatedUserID(c); !ok {
		return
	}
	roomID := c.Param("roomId")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	messages, err := h.chatService.History(c.Request.Context(), roomID, limit, offset)
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, messages)
}
