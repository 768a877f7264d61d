package hub

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adithya2152/devconnect/internal/domain"
)

type stubSaver struct {
	err   error
	saved []domain.Message
}

func (s *stubSaver) SaveMessage(_ context.Context, roomID, senderID, content string) (*domain.Message, error) {
	if s.err != nil {
		return nil, s.err
	}
	msg := domain.Message{
		ID:        "msg-1",
		RoomID:    roomID,
		SenderID:  senderID,
		Content:   content,
		CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	s.saved = append(s.saved, msg)
	return &msg, nil
}

func hubClient(h *Hub, roomID, userID string, sendBuffer int) *Client {
	c := subscribedClient(roomID, userID)
	c.hub = h
	c.send = make(chan []byte, sendBuffer)
	return c
}

func TestHub_DispatchBroadcastsToAllIncludingSender(t *testing.T) {
	saver := &stubSaver{}
	h := NewHub(saver)
	sender := hubClient(h, "room-1", "alice", 8)
	peer := hubClient(h, "room-1", "bob", 8)
	elsewhere := hubClient(h, "room-2", "carol", 8)
	h.registry.Register(sender)
	h.registry.Register(peer)
	h.registry.Register(elsewhere)

	h.dispatchMessage(HubMessage{Type: "message", Client: sender, RawData: []byte(`{"content":"hello"}`)})

	require.Len(t, saver.saved, 1)
	assert.Equal(t, "hello", saver.saved[0].Content)

	for _, c := range []*Client{sender, peer} {
		select {
		case frame := <-c.send:
			var env Envelope
			require.NoError(t, json.Unmarshal(frame, &env))
			assert.Equal(t, "alice", env.SenderID)
			assert.Equal(t, "hello", env.Content)
			assert.Equal(t, "room-1", env.RoomID)
			assert.Equal(t, "2025-06-01T12:00:00Z", env.CreatedAt)
		default:
			t.Fatalf("client %s did not receive the broadcast", c.UserID())
		}
	}
	assert.Empty(t, elsewhere.send, "other rooms must not receive the frame")
}

func TestHub_PersistenceFailureDropsSilently(t *testing.T) {
	saver := &stubSaver{err: errors.New("db down")}
	h := NewHub(saver)
	sender := hubClient(h, "room-1", "alice", 8)
	h.registry.Register(sender)

	h.dispatchMessage(HubMessage{Type: "message", Client: sender, RawData: []byte(`{"content":"hello"}`)})

	assert.Empty(t, sender.send, "no frame and no error report on persistence failure")
	assert.Len(t, h.registry.Snapshot("room-1"), 1, "the session stays registered")
}

func TestHub_MalformedPayloadDisconnectsClient(t *testing.T) {
	saver := &stubSaver{}
	h := NewHub(saver)
	sender := hubClient(h, "room-1", "alice", 8)
	h.registry.Register(sender)

	h.dispatchMessage(HubMessage{Type: "message", Client: sender, RawData: []byte(`not json`)})

	assert.Empty(t, h.registry.Snapshot("room-1"))
	assert.Empty(t, saver.saved)
	_, open := <-sender.send
	assert.False(t, open, "send channel must be closed on disconnect")
}

func TestHub_FullRecipientIsDropped(t *testing.T) {
	saver := &stubSaver{}
	h := NewHub(saver)
	sender := hubClient(h, "room-1", "alice", 8)
	stuck := hubClient(h, "room-1", "bob", 0)
	h.registry.Register(sender)
	h.registry.Register(stuck)

	h.dispatchMessage(HubMessage{Type: "message", Client: sender, RawData: []byte(`{"content":"hello"}`)})

	snapshot := h.registry.Snapshot("room-1")
	require.Len(t, snapshot, 1, "the blocked recipient must be gone")
	assert.Equal(t, sender, snapshot[0])

	select {
	case <-sender.send:
	default:
		t.Fatal("delivery to healthy clients must continue")
	}
}

func TestHub_EnvelopeFallsBackToNowForZeroTimestamp(t *testing.T) {
	frame, err := encodeEnvelope(&domain.Message{
		RoomID:   "room-1",
		SenderID: "alice",
		Content:  "hi",
	})
	require.NoError(t, err)

	var env Envelope
	require.NoError(t, json.Unmarshal(frame, &env))
	parsed, err := time.Parse(time.RFC3339, env.CreatedAt)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), parsed, 5*time.Second)
}

func TestHub_RunProcessesRegistrationAndStop(t *testing.T) {
	h := NewHub(&stubSaver{})
	done := make(chan struct{})
	go func() {
		h.Run()
		close(done)
	}()

	c := hubClient(h, "room-1", "alice", 8)
	h.messageChan <- HubMessage{Type: "register", Client: c}

	assert.Eventually(t, func() bool {
		return len(h.registry.Snapshot("room-1")) == 1
	}, time.Second, 10*time.Millisecond)

	h.Stop()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("hub did not stop")
	}
}
