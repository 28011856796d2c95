package helpers

import (
	"time"

	model "live-auction/internal/models"
)

// Request/Response DTOs
type ExtendAuctionRequest struct {
	Minutes int `json:"minutes" binding:"required,gt=0"`
}

type BidResponse struct {
	BidID     string  `json:"bid_id"`
	AuctionID string  `json:"auction_id"`
	UserID    string  `json:"user_id"`
	Amount    float64 `json:"amount"`
	CreatedAt string  `json:"created_at"`
}

type AuctionResponse struct {
	AuctionID     string   `json:"auction_id"`
	CurrentPrice  float64  `json:"current_price"`
	HighestBidder *string  `json:"highest_bidder"`
	TimeRemaining *float64 `json:"time_remaining"`
	EndTime       string   `json:"end_time"`
	Active        bool     `json:"active"`
	AboutToEnd    bool     `json:"about_to_end"`
	TotalBids     int      `json:"total_bids"`
	UniqueBidders int      `json:"unique_bidders"`
	Version       int64    `json:"version"`
}

type AuctionSummary struct {
	AuctionID     string  `json:"auction_id"`
	ArtworkID     string  `json:"artwork_id"`
	CurrentPrice  float64 `json:"current_price"`
	HighestBidder string  `json:"highest_bidder,omitempty"`
	EndTime       string  `json:"end_time"`
	Active        bool    `json:"active"`
}

type StreamResponse struct {
	StreamID    string   `json:"stream_id"`
	Status      string   `json:"status"`
	Viewers     int      `json:"viewers"`
	PeakViewers int      `json:"peak_viewers"`
	Duration    *float64 `json:"duration"`
	AllowChat   bool     `json:"allow_chat"`
	Version     int64    `json:"version"`
}

func ToBidResponse(bid model.Bid) BidResponse {
	return BidResponse{
		BidID:     bid.BidID,
		AuctionID: bid.AuctionID,
		UserID:    bid.UserID,
		Amount:    bid.Amount.InexactFloat64(),
		CreatedAt: bid.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func ToAuctionResponse(snap model.AuctionSnapshot) AuctionResponse {
	return AuctionResponse{
		AuctionID:     snap.AuctionID,
		CurrentPrice:  snap.CurrentPrice.InexactFloat64(),
		HighestBidder: snap.HighestBidder,
		TimeRemaining: snap.TimeRemaining,
		EndTime:       snap.EndTime.UTC().Format(time.RFC3339),
		Active:        snap.Active,
		AboutToEnd:    snap.AboutToEnd,
		TotalBids:     snap.TotalBids,
		UniqueBidders: snap.UniqueBidders,
		Version:       snap.Version,
	}
}

func ToAuctionSummary(a model.Auction) AuctionSummary {
	return AuctionSummary{
		AuctionID:     a.AuctionID,
		ArtworkID:     a.ArtworkID,
		CurrentPrice:  a.CurrentPrice.InexactFloat64(),
		HighestBidder: a.HighestBidder,
		EndTime:       a.EndTime.UTC().Format(time.RFC3339),
		Active:        a.Active,
	}
}

func ToStreamResponse(snap model.StreamSnapshot) StreamResponse {
	return StreamResponse{
		StreamID:    snap.StreamID,
		Status:      string(snap.Status),
		Viewers:     snap.Viewers,
		PeakViewers: snap.PeakViewers,
		Duration:    snap.Duration,
		AllowChat:   snap.AllowChat,
		Version:     snap.Version,
	}
}

type AuctionTransitionResponse struct {
	Changed    bool            `json:"changed"`
	Sold       bool            `json:"sold"`
	Winner     string          `json:"winner,omitempty"`
	FinalPrice *float64        `json:"final_price,omitempty"`
	Auction    AuctionResponse `json:"auction"`
}

type StreamTransitionResponse struct {
	Changed bool           `json:"changed"`
	Stream  StreamResponse `json:"stream"`
}
