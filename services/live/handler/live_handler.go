package handler

import (
	"context"
	"net/http"
	"time"

	bidding "live-auction/internal/biddingService"
	"live-auction/internal/config"
	"live-auction/internal/hub"
	"live-auction/internal/identity"
	model "live-auction/internal/models"
	"live-auction/internal/session"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -destination=mock_services.go -package=handler live-auction/services/live/handler BiddingServiceInterface,SessionControllerInterface

type BiddingServiceInterface interface {
	PlaceBid(ctx context.Context, auctionID, userID string, amount decimal.Decimal) (bidding.BidResult, error)
	GetAuctionSnapshot(ctx context.Context, auctionID string) (model.AuctionSnapshot, error)
	GetBidsForAuction(ctx context.Context, auctionID string) ([]model.Bid, error)
	GetAuctionsByUser(ctx context.Context, userID string) ([]model.Auction, error)
}

type SessionControllerInterface interface {
	StartStream(ctx context.Context, streamID string) (session.StreamResult, error)
	EndStream(ctx context.Context, streamID string) (session.StreamResult, error)
	CancelStream(ctx context.Context, streamID string) (session.StreamResult, error)
	UpdateViewers(ctx context.Context, streamID string, count int) (session.StreamResult, error)
	GetStreamSnapshot(ctx context.Context, streamID string) (model.StreamSnapshot, error)
	EndAuction(ctx context.Context, auctionID string) (session.AuctionResult, error)
	ExtendAuction(ctx context.Context, auctionID string, d time.Duration) (session.AuctionResult, error)
}

type IdentityResolver interface {
	Resolve(req *http.Request) (identity.Identity, error)
	Anonymous() bool
}

// messageTimeout bounds the work done for one inbound websocket frame
const messageTimeout = 5 * time.Second

// LiveHandler serves the room websockets and the HTTP control surface
type LiveHandler struct {
	hub                    *hub.Hub
	broadcaster            *Broadcaster
	bidding                BiddingServiceInterface
	sessions               SessionControllerInterface
	identity               IdentityResolver
	wsCfg                  config.WebSocketConfig
	broadcastViewerUpdates bool
	now                    func() time.Time
}

type Option func(*LiveHandler)

// WithViewerBroadcast publishes stream_status after every viewer_count update
func WithViewerBroadcast(enabled bool) Option {
	return func(h *LiveHandler) {
		h.broadcastViewerUpdates = enabled
	}
}

func NewLiveHandler(
	h *hub.Hub,
	biddingService BiddingServiceInterface,
	sessions SessionControllerInterface,
	resolver IdentityResolver,
	wsCfg config.WebSocketConfig,
	opts ...Option,
) *LiveHandler {
	lh := &LiveHandler{
		hub:         h,
		broadcaster: NewBroadcaster(h),
		bidding:     biddingService,
		sessions:    sessions,
		identity:    resolver,
		wsCfg:       wsCfg,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(lh)
	}
	return lh
}

// Broadcaster exposes the room publisher, e.g. for the expiry sweeper
func (h *LiveHandler) Broadcaster() *Broadcaster {
	return h.broadcaster
}

// Hub returns the room hub this handler publishes to
func (h *LiveHandler) Hub() *hub.Hub {
	return h.hub
}
