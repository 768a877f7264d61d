package websocket

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/adithya2152/devconnect/internal/hub"
)

// WebSocketHandler upgrades chat connections and walks each one through
// the session lifecycle before handing it to the hub.
type WebSocketHandler struct {
	upgrader   websocket.Upgrader
	hub        *hub.Hub
	verifier   hub.CredentialVerifier
	authorizer hub.Authorizer
}

func NewWebSocketHandler(h *hub.Hub, verifier hub.CredentialVerifier, authorizer hub.Authorizer, allowedOrigin string) *WebSocketHandler {
	if h == nil || verifier == nil || authorizer == nil {
		panic("WebSocketHandler dependencies cannot be nil")
	}

	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			if allowedOrigin == "" || allowedOrigin == "*" {
				return true
			}
			return r.Header.Get("Origin") == allowedOrigin
		},
	}

	return &WebSocketHandler{
		upgrader:   upgrader,
		hub:        h,
		verifier:   verifier,
		authorizer: authorizer,
	}
}

// HandleConnection serves GET /ws/:roomId?token=...
//
// The connection is upgraded before credentials are checked so that a
// rejection can be delivered as a policy-violation close frame instead of
// an opaque HTTP failure. The close frame carries no reason text; the
// close code is the only signal a rejected caller gets.
func (h *WebSocketHandler) HandleConnection(c *gin.Context) {
	roomID := c.Param("roomId")
	credential := c.Query("token")
	logCtx := logrus.WithField("room_id", roomID)

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logCtx.WithError(err).Error("Failed to upgrade connection")
		return
	}

	session := hub.NewSession(roomID, h.verifier, h.authorizer)

	if err := session.Authenticate(credential); err != nil {
		logCtx.WithError(err).Warn("WebSocket authentication rejected")
		closeWithPolicyViolation(conn)
		return
	}
	logCtx = logCtx.WithField("user_id", session.Subject())

	if err := session.Authorize(c.Request.Context()); err != nil {
		logCtx.WithError(err).Warn("WebSocket authorization rejected")
		closeWithPolicyViolation(conn)
		return
	}

	client := hub.NewClient(h.hub, conn, session)
	h.hub.Attach(client)
	logCtx.Info("WebSocket client subscribed")
}

// closeWithPolicyViolation sends a bare 1008 close frame and drops the
// connection. No reason text is attached, so a rejected caller cannot tell
// a forged token from an expired one or a missing membership from a
// pending request.
func closeWithPolicyViolation(conn *websocket.Conn) {
	frame := websocket.FormatCloseMessage(websocket.ClosePolicyViolation, "")
	_ = conn.WriteControl(websocket.CloseMessage, frame, time.Now().Add(time.Second))
	conn.Close()
}
