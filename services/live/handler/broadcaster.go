package handler

import (
	"encoding/json"

	"live-auction/internal/hub"
	model "live-auction/internal/models"
	"live-auction/internal/session"
	"live-auction/services/live/helpers"
	"live-auction/utils"
)

// Broadcaster renders ledger snapshots into room events
type Broadcaster struct {
	hub *hub.Hub
}

func NewBroadcaster(h *hub.Hub) *Broadcaster {
	return &Broadcaster{hub: h}
}

// PublishAuction fans an auction_update out to the auction's room
func (b *Broadcaster) PublishAuction(snap model.AuctionSnapshot) int {
	frame, ok := marshalFrame(helpers.NewAuctionUpdate(snap))
	if !ok {
		return 0
	}
	n, _ := b.hub.PublishVersioned(hub.AuctionRoom(snap.AuctionID), snap.Version, frame)
	return n
}

// PublishStream fans a stream_status out to the stream's room
func (b *Broadcaster) PublishStream(snap model.StreamSnapshot) int {
	frame, ok := marshalFrame(helpers.NewStreamStatus(snap))
	if !ok {
		return 0
	}
	n, _ := b.hub.PublishVersioned(hub.StreamRoom(snap.StreamID), snap.Version, frame)
	return n
}

// PublishChat relays a chat message to the room verbatim
func (b *Broadcaster) PublishChat(room hub.RoomKey, msg helpers.ChatMessageOut) int {
	frame, ok := marshalFrame(msg)
	if !ok {
		return 0
	}
	return b.hub.Publish(room, frame)
}

// CloseAuction sends the final state and closes the auction's room
func (b *Broadcaster) CloseAuction(snap model.AuctionSnapshot) {
	b.PublishAuction(snap)
	b.hub.CloseRoom(hub.AuctionRoom(snap.AuctionID))
}

// CloseStream sends the final state and closes the stream's room
func (b *Broadcaster) CloseStream(snap model.StreamSnapshot) {
	b.PublishStream(snap)
	b.hub.CloseRoom(hub.StreamRoom(snap.StreamID))
}

// AuctionEnded lets the expiry sweeper close rooms of auctions it ended
func (b *Broadcaster) AuctionEnded(auctionID string, result session.AuctionResult) {
	utils.Info("broadcaster: closing room of expired auction", map[string]any{
		"auction_id": auctionID,
		"winner":     result.Winner,
	})
	b.CloseAuction(result.Snapshot)
}

func marshalFrame(v any) ([]byte, bool) {
	frame, err := json.Marshal(v)
	if err != nil {
		utils.Error("broadcaster: failed to marshal event", map[string]any{"error": err.Error()})
		return nil, false
	}
	return frame, true
}
