package hub

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adithya2152/devconnect/internal/service"
)

type stubVerifier struct {
	subject string
	err     error
}

func (s *stubVerifier) VerifyCredential(string) (string, error) {
	return s.subject, s.err
}

type stubAuthorizer struct {
	decision   service.Decision
	err        error
	lastAccess service.Access
}

func (s *stubAuthorizer) Authorize(_ context.Context, _, _ string, access service.Access) (service.Decision, error) {
	s.lastAccess = access
	return s.decision, s.err
}

func TestSession_HappyPath(t *testing.T) {
	sess := NewSession("room-1",
		&stubVerifier{subject: "alice"},
		&stubAuthorizer{decision: service.DecisionAllowed})

	assert.Equal(t, StateConnecting, sess.State())

	require.NoError(t, sess.Authenticate("token"))
	assert.Equal(t, StateAuthorizing, sess.State())
	assert.Equal(t, "alice", sess.Subject())

	require.NoError(t, sess.Authorize(context.Background()))
	assert.Equal(t, StateSubscribed, sess.State())
}

func TestSession_AuthorizesWithWriteAccess(t *testing.T) {
	authorizer := &stubAuthorizer{decision: service.DecisionAllowed}
	sess := NewSession("room-1", &stubVerifier{subject: "alice"}, authorizer)

	require.NoError(t, sess.Authenticate("token"))
	require.NoError(t, sess.Authorize(context.Background()))

	assert.Equal(t, service.AccessWrite, authorizer.lastAccess)
}

func TestSession_AuthenticationFailureCloses(t *testing.T) {
	sess := NewSession("room-1",
		&stubVerifier{err: service.ErrInvalidToken},
		&stubAuthorizer{decision: service.DecisionAllowed})

	err := sess.Authenticate("bad-token")

	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrInvalidToken))
	assert.Equal(t, StateClosed, sess.State())
}

func TestSession_AuthorizationDenialCloses(t *testing.T) {
	sess := NewSession("room-1",
		&stubVerifier{subject: "alice"},
		&stubAuthorizer{decision: service.DecisionDeniedPending})

	require.NoError(t, sess.Authenticate("token"))
	err := sess.Authorize(context.Background())

	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrPendingApproval))
	assert.Equal(t, StateClosed, sess.State())
}

func TestSession_AuthorizationStoreErrorCloses(t *testing.T) {
	storeErr := errors.New("connection reset")
	sess := NewSession("room-1",
		&stubVerifier{subject: "alice"},
		&stubAuthorizer{err: storeErr})

	require.NoError(t, sess.Authenticate("token"))
	err := sess.Authorize(context.Background())

	require.Error(t, err)
	assert.True(t, errors.Is(err, storeErr))
	assert.Equal(t, StateClosed, sess.State())
}

func TestSession_AuthorizeBeforeAuthenticate(t *testing.T) {
	sess := NewSession("room-1",
		&stubVerifier{subject: "alice"},
		&stubAuthorizer{decision: service.DecisionAllowed})

	err := sess.Authorize(context.Background())

	assert.True(t, errors.Is(err, ErrInvalidTransition))
}

func TestSession_AuthenticateTwice(t *testing.T) {
	sess := NewSession("room-1",
		&stubVerifier{subject: "alice"},
		&stubAuthorizer{decision: service.DecisionAllowed})

	require.NoError(t, sess.Authenticate("token"))
	err := sess.Authenticate("token")

	assert.True(t, errors.Is(err, ErrInvalidTransition))
}

func TestSession_CloseIsIdempotent(t *testing.T) {
	sess := NewSession("room-1",
		&stubVerifier{subject: "alice"},
		&stubAuthorizer{decision: service.DecisionAllowed})

	sess.Close()
	sess.Close()

	assert.Equal(t, StateClosed, sess.State())
	assert.True(t, errors.Is(sess.Authenticate("token"), ErrInvalidTransition))
}
