package session

import (
	"context"
	"fmt"
	"time"

	"live-auction/internal/entitylock"
	"live-auction/internal/liveerrors"
	"live-auction/internal/models"
	"live-auction/internal/monitoring"
	"live-auction/internal/repository"
	"live-auction/utils"

	"github.com/shopspring/decimal"
)

// Settlement triggers
const (
	TriggerManual = "manual"
	TriggerExpiry = "expiry"
)

// StreamResult reports whether a stream operation changed the ledger
type StreamResult struct {
	Changed  bool
	Snapshot models.StreamSnapshot
}

// AuctionResult reports whether an auction operation changed the ledger.
// Sold is set only for the single call that settled the auction with a leader.
type AuctionResult struct {
	Changed    bool
	Sold       bool
	Winner     string
	FinalPrice decimal.Decimal
	Snapshot   models.AuctionSnapshot
}

// Controller applies lifecycle transitions to stream and auction ledgers.
// It shares the entity locker with the bidding service.
type Controller struct {
	repo   repository.LiveDB
	locker *entitylock.Locker
	now    func() time.Time
}

// Option configures a Controller
type Option func(*Controller)

// WithClock replaces time.Now, for tests
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		c.now = now
	}
}

// NewController creates a Controller over the given stores
func NewController(repo repository.LiveDB, locker *entitylock.Locker, opts ...Option) *Controller {
	c := &Controller{
		repo:   repo,
		locker: locker,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// StartStream moves a scheduled stream to live
func (c *Controller) StartStream(ctx context.Context, streamID string) (StreamResult, error) {
	return c.mutateStream(ctx, streamID, "start", func(s *models.Stream, now time.Time) bool {
		return s.Start(now)
	})
}

// EndStream moves a live stream to ended
func (c *Controller) EndStream(ctx context.Context, streamID string) (StreamResult, error) {
	return c.mutateStream(ctx, streamID, "end", func(s *models.Stream, now time.Time) bool {
		return s.End(now)
	})
}

// CancelStream cancels a scheduled or live stream
func (c *Controller) CancelStream(ctx context.Context, streamID string) (StreamResult, error) {
	return c.mutateStream(ctx, streamID, "cancel", func(s *models.Stream, _ time.Time) bool {
		return s.Cancel()
	})
}

// UpdateViewers records the audience reported for a live stream
func (c *Controller) UpdateViewers(ctx context.Context, streamID string, count int) (StreamResult, error) {
	if count < 0 {
		return StreamResult{}, fmt.Errorf("session: %w - negative viewer count %d", liveerrors.ErrInvalidRequest, count)
	}

	var notLive bool
	result, err := c.mutateStream(ctx, streamID, "viewers", func(s *models.Stream, _ time.Time) bool {
		if !s.IsLive() {
			notLive = true
			return false
		}
		s.UpdateViewers(count)
		return true
	})
	if err != nil {
		return StreamResult{}, err
	}
	if notLive {
		return result, fmt.Errorf("session: %w - stream %s is %s", liveerrors.ErrNotLive, streamID, result.Snapshot.Status)
	}
	return result, nil
}

// mutateStream runs one guard-then-mutate step inside the stream's critical section
func (c *Controller) mutateStream(ctx context.Context, streamID, op string, apply func(*models.Stream, time.Time) bool) (StreamResult, error) {
	if streamID == "" {
		return StreamResult{}, fmt.Errorf("session: %w - empty stream ID", liveerrors.ErrInvalidRequest)
	}

	unlock := c.locker.Lock(entitylock.StreamKey(streamID))
	defer unlock()

	stream, err := c.repo.GetStream(ctx, streamID)
	if err != nil {
		return StreamResult{}, fmt.Errorf("session: failed to load stream %s: %w", streamID, err)
	}

	now := c.now().UTC()
	changed := apply(&stream, now)
	if changed {
		if err := c.repo.SaveStream(ctx, stream); err != nil {
			return StreamResult{}, fmt.Errorf("session: failed to save stream %s after %s: %w", streamID, op, err)
		}
		if op != "viewers" {
			monitoring.RecordStreamTransition(string(stream.Status))
			utils.Info("session: stream transition", map[string]any{
				"stream_id": streamID,
				"op":        op,
				"status":    string(stream.Status),
			})
		}
	}

	return StreamResult{Changed: changed, Snapshot: models.NewStreamSnapshot(stream, now)}, nil
}

// GetStreamSnapshot returns the current view of a stream
func (c *Controller) GetStreamSnapshot(ctx context.Context, streamID string) (models.StreamSnapshot, error) {
	if streamID == "" {
		return models.StreamSnapshot{}, fmt.Errorf("session: %w - empty stream ID", liveerrors.ErrInvalidRequest)
	}

	stream, err := c.repo.GetStream(ctx, streamID)
	if err != nil {
		return models.StreamSnapshot{}, fmt.Errorf("session: failed to load stream %s: %w", streamID, err)
	}
	return models.NewStreamSnapshot(stream, c.now().UTC()), nil
}

// EndAuction closes the auction and settles it. Calling it on an ended auction
// is a no-op.
func (c *Controller) EndAuction(ctx context.Context, auctionID string) (AuctionResult, error) {
	return c.endAuction(ctx, auctionID, TriggerManual)
}

// ExpireAuction ends the auction only if its end time has passed
func (c *Controller) ExpireAuction(ctx context.Context, auctionID string) (AuctionResult, error) {
	return c.endAuction(ctx, auctionID, TriggerExpiry)
}

// endAuction settles inside the critical section: the artwork is handed over
// before the ended ledger is saved, so a failed settlement or save leaves the
// auction active and the next sweep retries it. settle skips artworks already
// handed to the winner, so a retry never settles twice.
func (c *Controller) endAuction(ctx context.Context, auctionID, trigger string) (AuctionResult, error) {
	if auctionID == "" {
		return AuctionResult{}, fmt.Errorf("session: %w - empty auction ID", liveerrors.ErrInvalidRequest)
	}

	unlock := c.locker.Lock(entitylock.AuctionKey(auctionID))
	defer unlock()

	auction, err := c.repo.GetAuction(ctx, auctionID)
	if err != nil {
		return AuctionResult{}, fmt.Errorf("session: failed to load auction %s: %w", auctionID, err)
	}

	now := c.now().UTC()
	if trigger == TriggerExpiry && !auction.IsEnded(now) {
		return AuctionResult{Snapshot: models.NewAuctionSnapshot(auction, now)}, nil
	}

	if !auction.End(now) {
		return AuctionResult{Snapshot: models.NewAuctionSnapshot(auction, now)}, nil
	}

	result := AuctionResult{Changed: true, FinalPrice: auction.CurrentPrice}

	if auction.HasLeader() {
		if auction.ArtworkID == "" {
			utils.Warn("session: auction has a winner but no artwork to settle", map[string]any{"auction_id": auctionID})
		} else {
			if err := c.settle(ctx, auction); err != nil {
				return AuctionResult{}, fmt.Errorf("session: failed to settle auction %s: %w", auctionID, err)
			}
			result.Sold = true
		}
		result.Winner = auction.HighestBidder
	}

	if err := c.repo.SaveAuction(ctx, auction); err != nil {
		return AuctionResult{}, fmt.Errorf("session: failed to save ended auction %s: %w", auctionID, err)
	}

	monitoring.RecordSettlement(trigger, result.Sold)
	utils.Info("session: auction ended", map[string]any{
		"auction_id":  auctionID,
		"trigger":     trigger,
		"winner":      result.Winner,
		"final_price": result.FinalPrice.String(),
	})

	result.Snapshot = models.NewAuctionSnapshot(auction, now)
	return result, nil
}

// settle hands the artwork to the leader unless an earlier attempt already did
func (c *Controller) settle(ctx context.Context, auction models.Auction) error {
	artwork, err := c.repo.GetArtwork(ctx, auction.ArtworkID)
	if err != nil {
		return err
	}
	if artwork.IsSold && artwork.SoldTo == auction.HighestBidder {
		utils.Info("session: artwork already settled, skipping", map[string]any{
			"auction_id": auction.AuctionID,
			"artwork_id": auction.ArtworkID,
		})
		return nil
	}
	return c.repo.MarkArtworkSold(ctx, auction.ArtworkID, auction.HighestBidder, auction.CurrentPrice)
}

// ExtendAuction pushes the end time of an active auction back by d
func (c *Controller) ExtendAuction(ctx context.Context, auctionID string, d time.Duration) (AuctionResult, error) {
	if auctionID == "" {
		return AuctionResult{}, fmt.Errorf("session: %w - empty auction ID", liveerrors.ErrInvalidRequest)
	}
	if d <= 0 {
		return AuctionResult{}, fmt.Errorf("session: %w - extension must be positive", liveerrors.ErrInvalidRequest)
	}

	unlock := c.locker.Lock(entitylock.AuctionKey(auctionID))
	defer unlock()

	auction, err := c.repo.GetAuction(ctx, auctionID)
	if err != nil {
		return AuctionResult{}, fmt.Errorf("session: failed to load auction %s: %w", auctionID, err)
	}

	now := c.now().UTC()
	changed := auction.ExtendTime(d, now)
	if changed {
		if err := c.repo.SaveAuction(ctx, auction); err != nil {
			return AuctionResult{}, fmt.Errorf("session: failed to save extended auction %s: %w", auctionID, err)
		}
	}

	return AuctionResult{Changed: changed, Snapshot: models.NewAuctionSnapshot(auction, now)}, nil
}
