package hub

import (
	"sync"

	model "live-auction/internal/models"
	"live-auction/internal/monitoring"
	"live-auction/utils"
)

// RoomKey identifies the broadcast scope of one auction or one stream
type RoomKey struct {
	Kind model.RoomKind
	ID   string
}

// AuctionRoom is the room key for an auction
func AuctionRoom(auctionID string) RoomKey {
	return RoomKey{Kind: model.RoomAuction, ID: auctionID}
}

// StreamRoom is the room key for a live stream
func StreamRoom(streamID string) RoomKey {
	return RoomKey{Kind: model.RoomStream, ID: streamID}
}

func (k RoomKey) String() string {
	return string(k.Kind) + ":" + k.ID
}

// Subscriber is one connected client as seen by the hub.
// Enqueue must never block; it reports false when the frame could not be queued.
// Close must be idempotent.
type Subscriber interface {
	ID() string
	Enqueue(frame []byte) bool
	Close()
}

type room struct {
	mu          sync.Mutex
	members     map[string]Subscriber
	lastVersion int64
}

// Hub keeps the live membership of every room and fans events out to it.
// Lock order is hub then room. Publishing holds the hub read lock, so
// publishes to different rooms proceed in parallel.
type Hub struct {
	mu    sync.RWMutex
	rooms map[RoomKey]*room
}

// New creates an empty Hub
func New() *Hub {
	return &Hub{rooms: make(map[RoomKey]*room)}
}

// Join registers sub in the room, creating the room on first use
func (h *Hub) Join(key RoomKey, sub Subscriber) {
	h.mu.Lock()
	r, ok := h.rooms[key]
	if !ok {
		r = &room{members: make(map[string]Subscriber)}
		h.rooms[key] = r
	}
	r.mu.Lock()
	_, already := r.members[sub.ID()]
	r.members[sub.ID()] = sub
	r.mu.Unlock()
	rooms := len(h.rooms)
	h.mu.Unlock()

	if !already {
		monitoring.SubscriberJoined(string(key.Kind))
	}
	monitoring.SetActiveRooms(rooms)
	utils.Debug("hub: subscriber joined", map[string]any{"room": key.String(), "client_id": sub.ID()})
}

// Leave removes sub from the room and drops the room once it is empty.
// It reports whether sub was a member.
func (h *Hub) Leave(key RoomKey, sub Subscriber) bool {
	h.mu.Lock()
	removed := h.removeLocked(key, sub.ID())
	rooms := len(h.rooms)
	h.mu.Unlock()

	if removed {
		monitoring.SubscriberLeft(string(key.Kind))
		monitoring.SetActiveRooms(rooms)
		utils.Debug("hub: subscriber left", map[string]any{"room": key.String(), "client_id": sub.ID()})
	}
	return removed
}

// removeLocked must be called with h.mu held for writing
func (h *Hub) removeLocked(key RoomKey, subID string) bool {
	r, ok := h.rooms[key]
	if !ok {
		return false
	}
	r.mu.Lock()
	_, member := r.members[subID]
	delete(r.members, subID)
	empty := len(r.members) == 0
	r.mu.Unlock()

	if empty {
		delete(h.rooms, key)
	}
	return member
}

// Publish queues frame for every current member of the room and returns how
// many accepted it. Later joiners never see it.
func (h *Hub) Publish(key RoomKey, frame []byte) int {
	delivered, _ := h.publish(key, frame, nil)
	return delivered
}

// PublishVersioned is Publish for entity snapshots. A snapshot older than the
// last one fanned out to the room is skipped, so a publisher that lost the race
// after releasing the entity lock cannot move clients backwards. Equal versions
// are delivered. It reports whether the frame was fanned out.
func (h *Hub) PublishVersioned(key RoomKey, version int64, frame []byte) (int, bool) {
	return h.publish(key, frame, &version)
}

func (h *Hub) publish(key RoomKey, frame []byte, version *int64) (int, bool) {
	h.mu.RLock()
	r, ok := h.rooms[key]
	if !ok {
		h.mu.RUnlock()
		return 0, false
	}

	r.mu.Lock()
	if version != nil {
		if *version < r.lastVersion {
			r.mu.Unlock()
			h.mu.RUnlock()
			return 0, false
		}
		r.lastVersion = *version
	}

	var failed []Subscriber
	delivered := 0
	for _, sub := range r.members {
		if sub.Enqueue(frame) {
			delivered++
			continue
		}
		failed = append(failed, sub)
	}
	r.mu.Unlock()
	h.mu.RUnlock()

	monitoring.EventPublished(string(key.Kind))
	h.drop(key, failed)
	return delivered, true
}

// drop removes subscribers whose queue failed and closes them outside every lock
func (h *Hub) drop(key RoomKey, subs []Subscriber) {
	if len(subs) == 0 {
		return
	}
	for _, sub := range subs {
		if h.Leave(key, sub) {
			monitoring.SubscriberDropped(string(key.Kind))
		}
		sub.Close()
		utils.Warn("hub: dropped slow subscriber", map[string]any{"room": key.String(), "client_id": sub.ID()})
	}
}

// CloseRoom removes every member of the room and closes them. Frames already
// queued are still flushed by the subscriber before its transport closes.
func (h *Hub) CloseRoom(key RoomKey) int {
	h.mu.Lock()
	r, ok := h.rooms[key]
	if !ok {
		h.mu.Unlock()
		return 0
	}
	delete(h.rooms, key)
	r.mu.Lock()
	members := make([]Subscriber, 0, len(r.members))
	for _, sub := range r.members {
		members = append(members, sub)
	}
	r.members = map[string]Subscriber{}
	r.mu.Unlock()
	rooms := len(h.rooms)
	h.mu.Unlock()

	for _, sub := range members {
		monitoring.SubscriberLeft(string(key.Kind))
		sub.Close()
	}
	monitoring.SetActiveRooms(rooms)
	utils.Info("hub: room closed", map[string]any{"room": key.String(), "members": len(members)})
	return len(members)
}

// Members returns the number of subscribers in the room
func (h *Hub) Members(key RoomKey) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	r, ok := h.rooms[key]
	if !ok {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.members)
}

// RoomCount returns the number of rooms with at least one subscriber
func (h *Hub) RoomCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms)
}
