package hub

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/adithya2152/devconnect/internal/domain"
)

// MessageSaver persists a chat message before fan-out.
type MessageSaver interface {
	SaveMessage(ctx context.Context, roomID, senderID, content string) (*domain.Message, error)
}

// HubMessage is the event type passed on the hub's internal channel.
type HubMessage struct {
	Type    string // "register", "unregister", "message"
	Client  *Client
	RawData []byte
}

// Hub routes chat messages between clients sharing a room. Registration,
// deregistration and message handling all flow through one channel so the
// event loop serializes registry mutations with fan-out.
type Hub struct {
	messageChan chan HubMessage
	registry    *Registry
	messages    MessageSaver
	quit        chan struct{}
}

func NewHub(messages MessageSaver) *Hub {
	if messages == nil {
		panic("MessageSaver cannot be nil for Hub")
	}
	return &Hub{
		messageChan: make(chan HubMessage, 512),
		registry:    NewRegistry(),
		messages:    messages,
		quit:        make(chan struct{}),
	}
}

func (h *Hub) Registry() *Registry { return h.registry }

// Run drives the hub's event loop. It should run in its own goroutine and
// exits when Stop is called. The message channel stays open so late pump
// sends during shutdown never panic.
func (h *Hub) Run() {
	log := logrus.WithField("component", "hub")
	log.Info("Hub is running")

	for {
		select {
		case <-h.quit:
			log.Info("Hub is shutting down")
			return
		case msg := <-h.messageChan:
			switch msg.Type {
			case "register":
				h.registerClient(msg.Client)
			case "unregister":
				h.unregisterClient(msg.Client)
			case "message":
				h.dispatchMessage(msg)
			default:
				log.Warnf("Received unknown hub message type: %s", msg.Type)
			}
		}
	}
}

// Stop ends the event loop. Calling it more than once panics; shutdown
// owns the single call.
func (h *Hub) Stop() {
	close(h.quit)
}

// Attach queues a subscribed client for registration and starts its pumps.
func (h *Hub) Attach(client *Client) {
	h.messageChan <- HubMessage{Type: "register", Client: client}
	client.Run()
}

func (h *Hub) registerClient(client *Client) {
	if client == nil {
		return
	}
	h.registry.Register(client)
	logrus.WithFields(logrus.Fields{
		"room_id": client.RoomID(),
		"user_id": client.UserID(),
	}).Info("Client registered to hub")
}

func (h *Hub) unregisterClient(client *Client) {
	if client == nil {
		return
	}
	h.registry.Deregister(client)
	client.closeSend()
	logrus.WithFields(logrus.Fields{
		"room_id": client.RoomID(),
		"user_id": client.UserID(),
	}).Info("Client unregistered from hub")
}

// dispatchMessage persists an inbound frame and fans it out to every client
// in the room, the sender included. A persistence failure drops the message
// without surfacing an error to the sender; the session stays open.
func (h *Hub) dispatchMessage(msg HubMessage) {
	client := msg.Client
	if client == nil {
		return
	}
	logCtx := logrus.WithFields(logrus.Fields{
		"room_id": client.RoomID(),
		"user_id": client.UserID(),
	})

	content, err := decodeInbound(msg.RawData)
	if err != nil {
		if errors.Is(err, ErrMalformedPayload) {
			logCtx.Warn("Malformed inbound frame, disconnecting client")
			h.unregisterClient(client)
			return
		}
		logCtx.WithError(err).Error("Failed to decode inbound frame")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stored, err := h.messages.SaveMessage(ctx, client.RoomID(), client.UserID(), content)
	if err != nil {
		logCtx.WithError(err).Error("Failed to persist message, dropping")
		return
	}

	frame, err := encodeEnvelope(stored)
	if err != nil {
		logCtx.WithError(err).Error("Failed to encode broadcast frame")
		return
	}
	h.broadcast(client.RoomID(), frame)
}

// broadcast delivers a frame to every client in the room. A recipient whose
// send queue is full is dropped from the room; delivery to the rest
// continues.
func (h *Hub) broadcast(roomID string, frame []byte) {
	clients := h.registry.Snapshot(roomID)
	if len(clients) == 0 {
		return
	}

	logCtx := logrus.WithFields(logrus.Fields{
		"room_id":         roomID,
		"recipient_count": len(clients),
	})
	logCtx.Debug("Broadcasting message to room")

	for _, client := range clients {
		select {
		case client.send <- frame:
		default:
			logCtx.WithField("receiver_user_id", client.UserID()).
				Warn("Client send queue full, dropping client")
			h.registry.Deregister(client)
			client.closeSend()
		}
	}
}
