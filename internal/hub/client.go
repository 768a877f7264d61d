package hub

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 4096
)

// Client binds a websocket connection to its subscribed session.
type Client struct {
	hub     *Hub
	conn    *websocket.Conn
	session *Session
	send    chan []byte

	closeOnce sync.Once
}

func NewClient(h *Hub, conn *websocket.Conn, session *Session) *Client {
	return &Client{
		hub:     h,
		conn:    conn,
		session: session,
		send:    make(chan []byte, 256),
	}
}

func (c *Client) RoomID() string { return c.session.RoomID() }
func (c *Client) UserID() string { return c.session.Subject() }

// Run starts the read and write pumps.
func (c *Client) Run() {
	go c.WritePump()
	go c.ReadPump()
}

// closeSend closes the send channel exactly once, releasing WritePump.
func (c *Client) closeSend() {
	c.closeOnce.Do(func() { close(c.send) })
}

// ReadPump pumps inbound frames from the websocket into the hub. It runs in
// its own goroutine; exit triggers deregistration.
func (c *Client) ReadPump() {
	defer func() {
		msg := HubMessage{Type: "unregister", Client: c}
		select {
		case c.hub.messageChan <- msg:
		case <-time.After(time.Second):
			logrus.WithFields(logrus.Fields{"user_id": c.UserID(), "room_id": c.RoomID()}).
				Warn("Timeout sending unregister message to hub channel")
		}
		c.session.Close()
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		messageType, message, err := c.conn.ReadMessage()
		if err != nil {
			logCtx := logrus.WithFields(logrus.Fields{"user_id": c.UserID(), "room_id": c.RoomID()})
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logCtx.WithError(err).Warn("WebSocket read error (unexpected close)")
			} else {
				logCtx.Debug("WebSocket connection closed")
			}
			break
		}
		if messageType != websocket.TextMessage {
			continue
		}

		msg := HubMessage{
			Type:    "message",
			Client:  c,
			RawData: message,
		}
		select {
		case c.hub.messageChan <- msg:
		default:
			logrus.WithFields(logrus.Fields{"user_id": c.UserID(), "room_id": c.RoomID()}).
				Warn("Hub message channel full, dropping client message")
		}
	}
}

// WritePump pumps frames from the send channel to the websocket and keeps
// the connection alive with periodic pings.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				logrus.WithFields(logrus.Fields{"user_id": c.UserID(), "room_id": c.RoomID()}).
					WithError(err).Warn("Failed to write message to websocket")
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
