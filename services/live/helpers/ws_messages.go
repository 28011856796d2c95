package helpers

import (
	"encoding/json"
	"fmt"
	"time"

	model "live-auction/internal/models"

	"github.com/shopspring/decimal"
)

// WebSocket message types from client.
const (
	MsgTypePlaceBid    = "place_bid"
	MsgTypeViewerCount = "viewer_count"
	MsgTypeChatMessage = "chat_message"
	MsgTypePing        = "ping"
)

// WebSocket message types to client.
const (
	MsgTypeBidResponse   = "bid_response"
	MsgTypeAuctionUpdate = "auction_update"
	MsgTypeStreamStatus  = "stream_status"
	MsgTypeError         = "error"
	MsgTypePong          = "pong"
)

// Error codes
const (
	ErrCodeBadRequest    = "BAD_REQUEST"
	ErrCodeUnauthorized  = "UNAUTHORIZED"
	ErrCodeNotLive       = "NOT_LIVE"
	ErrCodeChatDisabled  = "CHAT_DISABLED"
	ErrCodeInternalError = "INTERNAL_ERROR"
)

// BaseMessage is the base structure for all WebSocket messages.
type BaseMessage struct {
	Type string `json:"type"`
}

// FlexibleID accepts an identifier sent either as a JSON string or a number
type FlexibleID string

func (id *FlexibleID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = FlexibleID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or a number: %w", err)
	}
	*id = FlexibleID(n.String())
	return nil
}

// Client -> Server messages

type PlaceBidMessage struct {
	Type   string           `json:"type"`
	Amount *decimal.Decimal `json:"amount"`
	UserID FlexibleID       `json:"user_id"`
}

type ViewerCountMessage struct {
	Type  string `json:"type"`
	Count *int   `json:"count"`
}

type ChatMessageIn struct {
	Type     string `json:"type"`
	Message  string `json:"message"`
	Username string `json:"username"`
}

// Server -> Client messages

type BidResponseMessage struct {
	Type         string  `json:"type"`
	Success      bool    `json:"success"`
	Message      string  `json:"message"`
	CurrentPrice float64 `json:"current_price"`
}

type AuctionUpdateMessage struct {
	Type          string   `json:"type"`
	AuctionID     string   `json:"auction_id"`
	CurrentPrice  float64  `json:"current_price"`
	HighestBidder *string  `json:"highest_bidder"`
	TimeRemaining *float64 `json:"time_remaining"`
	EndTime       string   `json:"end_time"`
	Active        bool     `json:"active"`
	AboutToEnd    bool     `json:"about_to_end"`
	TotalBids     int      `json:"total_bids"`
	Version       int64    `json:"version"`
}

type StreamStatusMessage struct {
	Type        string   `json:"type"`
	StreamID    string   `json:"stream_id"`
	Status      string   `json:"status"`
	Viewers     int      `json:"viewers"`
	PeakViewers int      `json:"peak_viewers"`
	Duration    *float64 `json:"duration"`
	Version     int64    `json:"version"`
}

type ChatMessageOut struct {
	Type      string `json:"type"`
	Message   string `json:"message"`
	Username  string `json:"username"`
	UserID    string `json:"user_id,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

type ErrorMessage struct {
	Type    string `json:"type"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type PongMessage struct {
	Type string `json:"type"`
}

func NewBidResponse(success bool, message string, currentPrice decimal.Decimal) BidResponseMessage {
	return BidResponseMessage{
		Type:         MsgTypeBidResponse,
		Success:      success,
		Message:      message,
		CurrentPrice: currentPrice.InexactFloat64(),
	}
}

// NewAuctionUpdate renders an auction snapshot for the room
func NewAuctionUpdate(snap model.AuctionSnapshot) AuctionUpdateMessage {
	return AuctionUpdateMessage{
		Type:          MsgTypeAuctionUpdate,
		AuctionID:     snap.AuctionID,
		CurrentPrice:  snap.CurrentPrice.InexactFloat64(),
		HighestBidder: snap.HighestBidder,
		TimeRemaining: snap.TimeRemaining,
		EndTime:       snap.EndTime.UTC().Format(time.RFC3339),
		Active:        snap.Active,
		AboutToEnd:    snap.AboutToEnd,
		TotalBids:     snap.TotalBids,
		Version:       snap.Version,
	}
}

// NewStreamStatus renders a stream snapshot for the room
func NewStreamStatus(snap model.StreamSnapshot) StreamStatusMessage {
	return StreamStatusMessage{
		Type:        MsgTypeStreamStatus,
		StreamID:    snap.StreamID,
		Status:      string(snap.Status),
		Viewers:     snap.Viewers,
		PeakViewers: snap.PeakViewers,
		Duration:    snap.Duration,
		Version:     snap.Version,
	}
}

func NewChatMessage(message, username, userID string, at time.Time) ChatMessageOut {
	return ChatMessageOut{
		Type:      MsgTypeChatMessage,
		Message:   message,
		Username:  username,
		UserID:    userID,
		Timestamp: at.UnixMilli(),
	}
}

func NewErrorMessage(code, message string) ErrorMessage {
	return ErrorMessage{
		Type:    MsgTypeError,
		Code:    code,
		Message: message,
	}
}

func NewPongMessage() PongMessage {
	return PongMessage{Type: MsgTypePong}
}
