package websocket_test

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adithya2152/devconnect/internal/domain"
	wsHandler "github.com/adithya2152/devconnect/internal/handler/websocket"
	"github.com/adithya2152/devconnect/internal/hub"
	"github.com/adithya2152/devconnect/internal/service"
)

type stubSaver struct{}

func (stubSaver) SaveMessage(context.Context, string, string, string) (*domain.Message, error) {
	return &domain.Message{}, nil
}

type stubVerifier struct {
	subject string
	err     error
}

func (s *stubVerifier) VerifyCredential(string) (string, error) {
	return s.subject, s.err
}

type stubAuthorizer struct {
	decision service.Decision
	err      error
}

func (s *stubAuthorizer) Authorize(context.Context, string, string, service.Access) (service.Decision, error) {
	return s.decision, s.err
}

func newTestServer(t *testing.T, verifier hub.CredentialVerifier, authorizer hub.Authorizer) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := wsHandler.NewWebSocketHandler(hub.NewHub(stubSaver{}), verifier, authorizer, "")
	router := gin.New()
	router.GET("/ws/:roomId", h.HandleConnection)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func dialRoom(t *testing.T, srv *httptest.Server, token string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/room-1?token=" + token
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

// A rejected connection gets a bare 1008 close frame. The frame text must
// stay empty so callers cannot probe why they were turned away.
func TestHandleConnection_AuthenticationFailureClosesWithoutReason(t *testing.T) {
	srv := newTestServer(t,
		&stubVerifier{err: service.ErrTokenExpired},
		&stubAuthorizer{decision: service.DecisionAllowed})
	conn := dialRoom(t, srv, "stale-token")

	_, _, err := conn.ReadMessage()

	var closeErr *websocket.CloseError
	require.ErrorAs(t, err, &closeErr)
	assert.Equal(t, websocket.ClosePolicyViolation, closeErr.Code)
	assert.Empty(t, closeErr.Text)
}

func TestHandleConnection_MembershipDenialClosesWithoutReason(t *testing.T) {
	srv := newTestServer(t,
		&stubVerifier{subject: "alice"},
		&stubAuthorizer{decision: service.DecisionDeniedPending})
	conn := dialRoom(t, srv, "token")

	_, _, err := conn.ReadMessage()

	var closeErr *websocket.CloseError
	require.ErrorAs(t, err, &closeErr)
	assert.Equal(t, websocket.ClosePolicyViolation, closeErr.Code)
	assert.Empty(t, closeErr.Text)
}
