package hub

import (
	"sync"
)

// Registry tracks which clients are attached to which room. All methods are
// safe for concurrent use; a single lock guards the whole table so a
// snapshot taken during a broadcast never observes a half-applied update.
type Registry struct {
	mu    sync.RWMutex
	rooms map[string][]*Client
}

func NewRegistry() *Registry {
	return &Registry{rooms: make(map[string][]*Client)}
}

// Register attaches a client to its room.
func (r *Registry) Register(client *Client) {
	if client == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rooms[client.RoomID()] = append(r.rooms[client.RoomID()], client)
}

// Deregister detaches a client from its room. Deregistering a client that
// was never registered, or was already removed, is a no-op.
func (r *Registry) Deregister(client *Client) {
	if client == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	roomID := client.RoomID()
	clients, ok := r.rooms[roomID]
	if !ok {
		return
	}
	for i, c := range clients {
		if c == client {
			r.rooms[roomID] = append(clients[:i], clients[i+1:]...)
			break
		}
	}
	if len(r.rooms[roomID]) == 0 {
		delete(r.rooms, roomID)
	}
}

// Snapshot returns a copy of the room's client list. Callers may iterate it
// while other goroutines register and deregister freely.
func (r *Registry) Snapshot(roomID string) []*Client {
	r.mu.RLock()
	defer r.mu.RUnlock()

	clients := r.rooms[roomID]
	if len(clients) == 0 {
		return nil
	}
	out := make([]*Client, len(clients))
	copy(out, clients)
	return out
}

// RoomCount reports how many rooms currently have at least one client.
func (r *Registry) RoomCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rooms)
}
