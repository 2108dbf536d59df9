package hub

import (
	"encoding/json"
	"log"
	"sync"
)

// RoomBusTracking is the group the location simulator publishes to.
const RoomBusTracking = "bus-tracking"

type Client struct {
	ID   string
	Send chan []byte
}

// Hub maps room names to their current members. Membership is mutated by
// Join/Leave/Unregister and iterated by Broadcast; the mutex serializes the
// two so a broadcast always sees a consistent snapshot.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]struct{}
	rooms   map[string]map[*Client]struct{}
}

type ClientMessage struct {
	Action string `json:"action"`
	UserID int    `json:"user_id"`
}

const (
	ActionJoinBusTracking  = "join-bus-tracking"
	ActionLeaveBusTracking = "leave-bus-tracking"
)

func New() *Hub {
	return &Hub{
		clients: make(map[*Client]struct{}),
		rooms:   make(map[string]map[*Client]struct{}),
	}
}

func (h *Hub) Register(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[client] = struct{}{}
}

// Unregister drops the client from every room and closes its send channel.
// Called once when the connection terminates.
func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[client]; !ok {
		return
	}
	delete(h.clients, client)
	for _, members := range h.rooms {
		delete(members, client)
	}
	close(client.Send)
}

// Join is idempotent: joining a room twice leaves the client a member once.
func (h *Hub) Join(client *Client, room string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[client]; !ok {
		return
	}
	members, ok := h.rooms[room]
	if !ok {
		members = make(map[*Client]struct{})
		h.rooms[room] = members
	}
	members[client] = struct{}{}
}

func (h *Hub) Leave(client *Client, room string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.rooms[room], client)
}

// Broadcast delivers payload to every current member of the room,
// best-effort. A member whose send buffer is full misses this message;
// an unknown or empty room means zero recipients, not an error.
func (h *Hub) Broadcast(room string, payload []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.rooms[room] {
		select {
		case client.Send <- payload:
		default:
			log.Printf("drop message for client %s room=%s", client.ID, room)
		}
	}
}

func ParseClientMessage(data []byte) (ClientMessage, bool) {
	var msg ClientMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return ClientMessage{}, false
	}
	if msg.Action != ActionJoinBusTracking && msg.Action != ActionLeaveBusTracking {
		return ClientMessage{}, false
	}
	return msg, true
}
