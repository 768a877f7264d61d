package hub

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adithya2152/devconnect/internal/service"
)

func subscribedClient(roomID, userID string) *Client {
	sess := NewSession(roomID,
		&stubVerifier{subject: userID},
		&stubAuthorizer{decision: service.DecisionAllowed})
	_ = sess.Authenticate("token")
	return &Client{session: sess, send: make(chan []byte, 256)}
}

func TestRegistry_RegisterAndSnapshot(t *testing.T) {
	reg := NewRegistry()
	a := subscribedClient("room-1", "alice")
	b := subscribedClient("room-1", "bob")

	reg.Register(a)
	reg.Register(b)

	snapshot := reg.Snapshot("room-1")
	assert.Len(t, snapshot, 2)
	assert.Contains(t, snapshot, a)
	assert.Contains(t, snapshot, b)
	assert.Nil(t, reg.Snapshot("room-2"))
}

func TestRegistry_DeregisterIsIdempotent(t *testing.T) {
	reg := NewRegistry()
	a := subscribedClient("room-1", "alice")

	reg.Register(a)
	reg.Deregister(a)
	reg.Deregister(a)

	assert.Empty(t, reg.Snapshot("room-1"))
	assert.Equal(t, 0, reg.RoomCount())
}

func TestRegistry_DeregisterUnknownClient(t *testing.T) {
	reg := NewRegistry()
	a := subscribedClient("room-1", "alice")

	assert.NotPanics(t, func() { reg.Deregister(a) })
}

func TestRegistry_SnapshotIsolatedFromLaterMutation(t *testing.T) {
	reg := NewRegistry()
	a := subscribedClient("room-1", "alice")
	b := subscribedClient("room-1", "bob")
	reg.Register(a)
	reg.Register(b)

	snapshot := reg.Snapshot("room-1")
	reg.Deregister(a)
	reg.Deregister(b)

	assert.Len(t, snapshot, 2, "an earlier snapshot must not observe later deregistrations")
	assert.Empty(t, reg.Snapshot("room-1"))
}

func TestRegistry_ConcurrentAccessOneRoom(t *testing.T) {
	reg := NewRegistry()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c := subscribedClient("room-1", "user")
			reg.Register(c)
			reg.Snapshot("room-1")
			reg.Deregister(c)
		}()
	}
	wg.Wait()

	assert.Empty(t, reg.Snapshot("room-1"))
}
