package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RoomKind identifies what kind of entity a room broadcasts for
type RoomKind string

const (
	RoomAuction RoomKind = "auction"
	RoomStream  RoomKind = "stream"
)

// User represents a participant in an auction or live session
type User struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

// Artwork is the sellable item behind an auction
type Artwork struct {
	ArtworkID    string          `json:"artwork_id"`
	Title        string          `json:"title"`
	Price        decimal.Decimal `json:"price"`
	IsForAuction bool            `json:"is_for_auction"`
	IsSold       bool            `json:"is_sold"`
	SoldTo       string          `json:"sold_to,omitempty"`
	SoldAt       *time.Time      `json:"sold_at,omitempty"`
}

// Auction is the authoritative ledger for one artwork listed for bidding
type Auction struct {
	AuctionID       string          `json:"auction_id"`
	ArtworkID       string          `json:"artwork_id"`
	LiveStreamID    string          `json:"live_stream_id,omitempty"`
	StartingPrice   decimal.Decimal `json:"starting_price"`
	CurrentPrice    decimal.Decimal `json:"current_price"`
	MinBidIncrement decimal.Decimal `json:"min_bid_increment"`
	HighestBidder   string          `json:"highest_bidder,omitempty"`
	StartTime       time.Time       `json:"start_time"`
	EndTime         time.Time       `json:"end_time"`
	LastBidTime     *time.Time      `json:"last_bid_time,omitempty"`
	Active          bool            `json:"active"`
	TotalBids       int             `json:"total_bids"`
	Version         int64           `json:"version"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// Bid represents an accepted bid on an auction
type Bid struct {
	BidID     string          `json:"bid_id"`
	AuctionID string          `json:"auction_id"`
	UserID    string          `json:"user_id"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
}

// StreamStatus is the lifecycle state of a live session
type StreamStatus string

const (
	StreamScheduled StreamStatus = "scheduled"
	StreamLive      StreamStatus = "live"
	StreamEnded     StreamStatus = "ended"
	StreamCancelled StreamStatus = "cancelled"
)

// Stream is the authoritative ledger for one scheduled broadcast
type Stream struct {
	StreamID       string         `json:"stream_id"`
	Title          string         `json:"title"`
	ArtistID       string         `json:"artist_id"`
	ArtworkID      string         `json:"artwork_id,omitempty"`
	Status         StreamStatus   `json:"status"`
	ScheduledStart time.Time      `json:"scheduled_start"`
	StartedAt      *time.Time     `json:"started_at,omitempty"`
	EndedAt        *time.Time     `json:"ended_at,omitempty"`
	Duration       *time.Duration `json:"duration,omitempty"`
	ViewersCount   int            `json:"viewers_count"`
	PeakViewers    int            `json:"peak_viewers"`
	IsPublic       bool           `json:"is_public"`
	AllowChat      bool           `json:"allow_chat"`
	Version        int64          `json:"version"`
}
