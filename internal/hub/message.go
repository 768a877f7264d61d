package hub

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/adithya2152/devconnect/internal/domain"
)

// ErrMalformedPayload is returned when an inbound frame is not valid JSON
// or lacks the content field.
var ErrMalformedPayload = errors.New("malformed message payload")

// inboundFrame is what a client sends over the socket.
type inboundFrame struct {
	Content string `json:"content"`
}

// Envelope is the frame fanned out to every client in a room.
type Envelope struct {
	SenderID  string `json:"sender_id"`
	Content   string `json:"content"`
	RoomID    string `json:"room_id"`
	CreatedAt string `json:"created_at"`
}

func decodeInbound(raw []byte) (string, error) {
	var frame inboundFrame
	if err := json.Unmarshal(raw, &frame); err != nil {
		return "", ErrMalformedPayload
	}
	if frame.Content == "" {
		return "", ErrMalformedPayload
	}
	return frame.Content, nil
}

// encodeEnvelope serializes a stored message for broadcast. A zero
// created_at falls back to the current time.
func encodeEnvelope(msg *domain.Message) ([]byte, error) {
	createdAt := msg.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	return json.Marshal(Envelope{
		SenderID:  msg.SenderID,
		Content:   msg.Content,
		RoomID:    msg.RoomID,
		CreatedAt: createdAt.Format(time.RFC3339),
	})
}
