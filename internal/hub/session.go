package hub

import (
	"context"
	"errors"
	"sync"

	"github.com/adithya2152/devconnect/internal/service"
)

// State is the lifecycle phase of a room session.
type State int

const (
	StateConnecting State = iota
	StateAuthenticating
	StateAuthorizing
	StateSubscribed
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateAuthenticating:
		return "authenticating"
	case StateAuthorizing:
		return "authorizing"
	case StateSubscribed:
		return "subscribed"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// ErrInvalidTransition is returned when a session method is called out of
// order, for example subscribing before authorization.
var ErrInvalidTransition = errors.New("invalid session state transition")

// CredentialVerifier validates a bearer credential and returns the subject
// it identifies.
type CredentialVerifier interface {
	VerifyCredential(credential string) (string, error)
}

// Authorizer decides whether a subject may access a room.
type Authorizer interface {
	Authorize(ctx context.Context, roomID, subjectID string, access service.Access) (service.Decision, error)
}

// Session walks one websocket connection through authentication and
// authorization before it may join a room. Once subscribed, the identity
// and the grant are fixed for the session's lifetime; later membership
// changes do not affect it.
type Session struct {
	mu      sync.Mutex
	state   State
	roomID  string
	subject string

	verifier   CredentialVerifier
	authorizer Authorizer
}

func NewSession(roomID string, verifier CredentialVerifier, authorizer Authorizer) *Session {
	if verifier == nil || authorizer == nil {
		panic("Session dependencies cannot be nil")
	}
	return &Session{
		state:      StateConnecting,
		roomID:     roomID,
		verifier:   verifier,
		authorizer: authorizer,
	}
}

// Authenticate verifies the credential and binds its subject to the
// session. Any verification failure closes the session.
func (s *Session) Authenticate(credential string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateConnecting {
		return ErrInvalidTransition
	}
	s.state = StateAuthenticating

	subject, err := s.verifier.VerifyCredential(credential)
	if err != nil {
		s.state = StateClosed
		return err
	}
	s.subject = subject
	s.state = StateAuthorizing
	return nil
}

// Authorize checks the authenticated subject against the room's membership.
// A denial closes the session.
func (s *Session) Authorize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateAuthorizing {
		return ErrInvalidTransition
	}

	// Subscribed clients post messages, so the session needs write access.
	decision, err := s.authorizer.Authorize(ctx, s.roomID, s.subject, service.AccessWrite)
	if err != nil {
		s.state = StateClosed
		return err
	}
	if err := service.DecisionError(decision); err != nil {
		s.state = StateClosed
		return err
	}
	s.state = StateSubscribed
	return nil
}

// Close moves the session to its terminal state. Closing twice is a no-op.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateClosed
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) RoomID() string { return s.roomID }

// Subject returns the authenticated user id, or "" before authentication.
func (s *Session) Subject() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.subject
}
