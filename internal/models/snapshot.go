package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AuctionSnapshot is a read-only view of an auction taken under its entity lock
type AuctionSnapshot struct {
	AuctionID     string          `json:"auction_id"`
	CurrentPrice  decimal.Decimal `json:"current_price"`
	HighestBidder *string         `json:"highest_bidder"`
	TimeRemaining *float64        `json:"time_remaining"`
	EndTime       time.Time       `json:"end_time"`
	Active        bool            `json:"active"`
	AboutToEnd    bool            `json:"about_to_end"`
	TotalBids     int             `json:"total_bids"`
	UniqueBidders int             `json:"unique_bidders"`
	Version       int64           `json:"version"`
}

// NewAuctionSnapshot captures the auction state at now.
// Remaining time is reported in seconds and never goes below zero.
func NewAuctionSnapshot(a Auction, now time.Time) AuctionSnapshot {
	snap := AuctionSnapshot{
		AuctionID:    a.AuctionID,
		CurrentPrice: a.CurrentPrice,
		EndTime:      a.EndTime,
		Active:       a.Active,
		AboutToEnd:   a.IsAboutToEnd(now),
		TotalBids:    a.TotalBids,
		Version:      a.Version,
	}
	if a.HasLeader() {
		leader := a.HighestBidder
		snap.HighestBidder = &leader
	}
	if remaining := a.TimeRemaining(now); remaining != nil {
		secs := remaining.Seconds()
		if secs < 0 {
			secs = 0
		}
		snap.TimeRemaining = &secs
	}
	return snap
}

// StreamSnapshot is a read-only view of a stream
type StreamSnapshot struct {
	StreamID    string       `json:"stream_id"`
	Status      StreamStatus `json:"status"`
	Viewers     int          `json:"viewers"`
	PeakViewers int          `json:"peak_viewers"`
	Duration    *float64     `json:"duration"`
	AllowChat   bool         `json:"allow_chat"`
	Version     int64        `json:"version"`
}

// NewStreamSnapshot captures the stream state at now, duration in seconds
func NewStreamSnapshot(s Stream, now time.Time) StreamSnapshot {
	snap := StreamSnapshot{
		StreamID:    s.StreamID,
		Status:      s.Status,
		Viewers:     s.ViewersCount,
		PeakViewers: s.PeakViewers,
		AllowChat:   s.AllowChat,
		Version:     s.Version,
	}
	if elapsed := s.Elapsed(now); elapsed != nil {
		secs := elapsed.Seconds()
		snap.Duration = &secs
	}
	return snap
}
