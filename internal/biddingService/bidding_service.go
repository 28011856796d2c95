package bidding

import (
	"context"
	"errors"
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

// AntiSnipePolicy extends an auction that receives a bid close to its end
type AntiSnipePolicy struct {
	Enabled   bool
	Window    time.Duration
	Extension time.Duration
}

// BidResult is the arbitration outcome. A rejected bid is a normal result
// carrying the reason and the current authoritative state.
type BidResult struct {
	Accepted bool
	Code     models.RejectCode
	Reason   string
	Bid      models.Bid
	Extended bool
	Snapshot models.AuctionSnapshot
}

// BiddingService defines the business logic for auction bidding
type BiddingService struct {
	repo      repository.AuctionStore
	locker    *entitylock.Locker
	now       func() time.Time
	antiSnipe AntiSnipePolicy
}

// Option configures a BiddingService
type Option func(*BiddingService)

// WithClock replaces time.Now, for tests
func WithClock(now func() time.Time) Option {
	return func(s *BiddingService) {
		s.now = now
	}
}

func WithAntiSnipe(policy AntiSnipePolicy) Option {
	return func(s *BiddingService) {
		s.antiSnipe = policy
	}
}

// NewBiddingService creates a new BiddingService instance. The locker must be
// the one shared with every other writer of auction ledgers.
func NewBiddingService(repo repository.AuctionStore, locker *entitylock.Locker, opts ...Option) *BiddingService {
	s := &BiddingService{
		repo:   repo,
		locker: locker,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PlaceBid evaluates a bid inside the auction's critical section and, when it
// is accepted, commits the new ledger together with the bid before releasing
// the lock
func (s *BiddingService) PlaceBid(ctx context.Context, auctionID, userID string, amount decimal.Decimal) (BidResult, error) {
	if err := validateBid(auctionID, userID); err != nil {
		return BidResult{}, err
	}

	started := time.Now()
	unlock := s.locker.Lock(entitylock.AuctionKey(auctionID))
	defer unlock()

	auction, err := s.repo.GetAuction(ctx, auctionID)
	if err != nil {
		return BidResult{}, fmt.Errorf("service: failed to load auction %s: %w", auctionID, err)
	}

	now := s.now().UTC()

	var outcome models.BidOutcome
	if auction.Active && auction.IsEnded(now) {
		// past end time but not swept yet
		outcome = models.BidOutcome{Code: models.RejectNotActive, Reason: "auction not active"}
	} else {
		outcome = auction.PlaceBid(userID, amount, now)
	}

	if !outcome.Accepted {
		monitoring.RecordBid(string(outcome.Code), time.Since(started).Seconds())
		return BidResult{
			Code:     outcome.Code,
			Reason:   outcome.Reason,
			Snapshot: models.NewAuctionSnapshot(auction, now),
		}, nil
	}

	extended := false
	if s.antiSnipe.Enabled && auction.IsAboutToEndWithin(s.antiSnipe.Window, now) {
		extended = auction.ExtendTime(s.antiSnipe.Extension, now)
	}

	bid := models.Bid{
		BidID:     utils.GenerateID(),
		AuctionID: auctionID,
		UserID:    userID,
		Amount:    amount,
		CreatedAt: now,
	}

	// ledger and bid history move together or not at all
	if err := s.repo.CommitBid(ctx, auction, bid); err != nil {
		return BidResult{}, fmt.Errorf("service: failed to commit bid for auction %s by user %s: %w", auctionID, userID, err)
	}

	if extended {
		utils.Info("service: auction extended by late bid", map[string]any{
			"auction_id": auctionID,
			"end_time":   auction.EndTime.Format(time.RFC3339),
		})
	}
	monitoring.RecordBid("accepted", time.Since(started).Seconds())

	return BidResult{
		Accepted: true,
		Reason:   outcome.Reason,
		Bid:      bid,
		Extended: extended,
		Snapshot: models.NewAuctionSnapshot(auction, now),
	}, nil
}

// validateBid rejects requests that name no auction or bidder. Amounts are
// judged against the ledger, so a non-positive one is rejected as too low.
func validateBid(auctionID, userID string) error {
	if auctionID == "" || userID == "" {
		return fmt.Errorf("service: %w - missing auctionID or userID", liveerrors.ErrInvalidBid)
	}
	return nil
}

// GetAuctionSnapshot returns the current authoritative view of an auction,
// including the number of distinct bidders
func (s *BiddingService) GetAuctionSnapshot(ctx context.Context, auctionID string) (models.AuctionSnapshot, error) {
	if auctionID == "" {
		return models.AuctionSnapshot{}, fmt.Errorf("service: %w - empty auction ID", liveerrors.ErrInvalidRequest)
	}

	unlock := s.locker.Lock(entitylock.AuctionKey(auctionID))
	defer unlock()

	auction, err := s.repo.GetAuction(ctx, auctionID)
	if err != nil {
		return models.AuctionSnapshot{}, fmt.Errorf("service: failed to load auction %s: %w", auctionID, err)
	}

	snap := models.NewAuctionSnapshot(auction, s.now().UTC())

	bids, err := s.repo.GetBidsByAuction(ctx, auctionID)
	if err != nil && !errors.Is(err, liveerrors.ErrNoBids) {
		return models.AuctionSnapshot{}, fmt.Errorf("service: failed to get bids for auction %s: %w", auctionID, err)
	}
	snap.UniqueBidders = countUniqueBidders(bids)

	return snap, nil
}

func countUniqueBidders(bids []models.Bid) int {
	seen := make(map[string]struct{}, len(bids))
	for _, bid := range bids {
		seen[bid.UserID] = struct{}{}
	}
	return len(seen)
}

// GetBidsForAuction returns all accepted bids for an auction, oldest first
func (s *BiddingService) GetBidsForAuction(ctx context.Context, auctionID string) ([]models.Bid, error) {
	if auctionID == "" {
		return nil, fmt.Errorf("service: %w - empty auction ID", liveerrors.ErrInvalidRequest)
	}

	bids, err := s.repo.GetBidsByAuction(ctx, auctionID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for auction %s: %w", auctionID, err)
	}

	return bids, nil
}

// GetAuctionsByUser returns all auctions a user has placed bids on
func (s *BiddingService) GetAuctionsByUser(ctx context.Context, userID string) ([]models.Auction, error) {
	if userID == "" {
		return nil, fmt.Errorf("service: %w - empty user ID", liveerrors.ErrInvalidRequest)
	}

	auctions, err := s.repo.GetAuctionsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get auctions for user %s: %w", userID, err)
	}

	return auctions, nil
}
