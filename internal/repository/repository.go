package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"live-auction/internal/liveerrors"
	model "live-auction/internal/models"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -destination=mock_repository.go -package=repository live-auction/internal/repository LiveDB

// AuctionStore persists auction ledgers and their accepted bids
type AuctionStore interface {
	GetAuction(ctx context.Context, auctionID string) (model.Auction, error)
	SaveAuction(ctx context.Context, auction model.Auction) error
	ListActiveAuctionIDs(ctx context.Context) ([]string, error)
	CommitBid(ctx context.Context, auction model.Auction, bid model.Bid) error
	GetBidsByAuction(ctx context.Context, auctionID string) ([]model.Bid, error)
	GetAuctionsByUser(ctx context.Context, userID string) ([]model.Auction, error)
}

// StreamStore persists live session ledgers
type StreamStore interface {
	GetStream(ctx context.Context, streamID string) (model.Stream, error)
	SaveStream(ctx context.Context, stream model.Stream) error
}

// ArtworkStore is the settlement collaborator for sold artworks
type ArtworkStore interface {
	GetArtwork(ctx context.Context, artworkID string) (model.Artwork, error)
	MarkArtworkSold(ctx context.Context, artworkID, buyerID string, price decimal.Decimal) error
}

// LiveDB groups every store the live rooms depend on
type LiveDB interface {
	AuctionStore
	StreamStore
	ArtworkStore
}

// MemoryRepo is a concurrency-safe in-memory implementation of LiveDB
type MemoryRepo struct {
	mu           sync.RWMutex
	auctions     map[string]model.Auction // key: auctionID -> value: auction
	streams      map[string]model.Stream  // key: streamID -> value: stream
	artworks     map[string]model.Artwork // key: artworkID -> value: artwork
	bids         map[string][]model.Bid   // key: auctionID -> value: accepted bids
	userAuctions map[string][]string      // key: userID -> value: auctionIDs the user bid on
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		auctions:     make(map[string]model.Auction),
		streams:      make(map[string]model.Stream),
		artworks:     make(map[string]model.Artwork),
		bids:         make(map[string][]model.Bid),
		userAuctions: make(map[string][]string),
	}
}

// GetAuction returns a copy of the stored auction
func (r *MemoryRepo) GetAuction(_ context.Context, auctionID string) (model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	auction, ok := r.auctions[auctionID]
	if !ok {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, liveerrors.ErrAuctionNotFound)
	}
	return copyAuction(auction), nil
}

// SaveAuction stores the auction, replacing any previous version
func (r *MemoryRepo) SaveAuction(_ context.Context, auction model.Auction) error {
	if auction.AuctionID == "" {
		return fmt.Errorf("save auction: %w - empty auction ID", liveerrors.ErrInvalidRequest)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.auctions[auction.AuctionID] = copyAuction(auction)
	return nil
}

// ListActiveAuctionIDs returns the ids of auctions still marked active, sorted
func (r *MemoryRepo) ListActiveAuctionIDs(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.auctions))
	for id, auction := range r.auctions {
		if auction.Active {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

// CommitBid stores the updated ledger and appends the accepted bid in one step.
// The auction must already exist.
func (r *MemoryRepo) CommitBid(_ context.Context, auction model.Auction, bid model.Bid) error {
	if bid.AuctionID != auction.AuctionID {
		return fmt.Errorf("commit bid: %w - bid for %s against ledger %s", liveerrors.ErrInvalidRequest, bid.AuctionID, auction.AuctionID)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.auctions[bid.AuctionID]; !ok {
		return fmt.Errorf("commit bid for auction %s: %w", bid.AuctionID, liveerrors.ErrAuctionNotFound)
	}

	r.auctions[auction.AuctionID] = copyAuction(auction)
	r.bids[bid.AuctionID] = append(r.bids[bid.AuctionID], bid)

	for _, id := range r.userAuctions[bid.UserID] {
		if id == bid.AuctionID {
			return nil
		}
	}
	r.userAuctions[bid.UserID] = append(r.userAuctions[bid.UserID], bid.AuctionID)

	return nil
}

// GetBidsByAuction returns all accepted bids for an auction, oldest first
func (r *MemoryRepo) GetBidsByAuction(_ context.Context, auctionID string) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bids, ok := r.bids[auctionID]
	if !ok || len(bids) == 0 {
		return nil, fmt.Errorf("get bids for auction %s: %w", auctionID, liveerrors.ErrNoBids)
	}
	return append([]model.Bid(nil), bids...), nil
}

// GetAuctionsByUser returns all auctions a user has bid on
func (r *MemoryRepo) GetAuctionsByUser(_ context.Context, userID string) ([]model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	auctionIDs, ok := r.userAuctions[userID]
	if !ok || len(auctionIDs) == 0 {
		return nil, fmt.Errorf("get auctions for user %s: %w", userID, liveerrors.ErrUserNoBids)
	}

	auctions := make([]model.Auction, 0, len(auctionIDs))
	for _, id := range auctionIDs {
		if auction, exists := r.auctions[id]; exists {
			auctions = append(auctions, copyAuction(auction))
		}
	}
	return auctions, nil
}

// GetStream returns a copy of the stored stream
func (r *MemoryRepo) GetStream(_ context.Context, streamID string) (model.Stream, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stream, ok := r.streams[streamID]
	if !ok {
		return model.Stream{}, fmt.Errorf("get stream %s: %w", streamID, liveerrors.ErrStreamNotFound)
	}
	return copyStream(stream), nil
}

// SaveStream stores the stream, replacing any previous version
func (r *MemoryRepo) SaveStream(_ context.Context, stream model.Stream) error {
	if stream.StreamID == "" {
		return fmt.Errorf("save stream: %w - empty stream ID", liveerrors.ErrInvalidRequest)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.streams[stream.StreamID] = copyStream(stream)
	return nil
}

// GetArtwork returns the stored artwork
func (r *MemoryRepo) GetArtwork(_ context.Context, artworkID string) (model.Artwork, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	artwork, ok := r.artworks[artworkID]
	if !ok {
		return model.Artwork{}, fmt.Errorf("get artwork %s: %w", artworkID, liveerrors.ErrArtworkNotFound)
	}
	return artwork, nil
}

// MarkArtworkSold hands the artwork over to the winning bidder. Repeating the
// call for the same buyer is a no-op.
func (r *MemoryRepo) MarkArtworkSold(_ context.Context, artworkID, buyerID string, price decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	artwork, ok := r.artworks[artworkID]
	if !ok {
		return fmt.Errorf("mark artwork %s sold: %w", artworkID, liveerrors.ErrArtworkNotFound)
	}
	if artwork.IsSold {
		if artwork.SoldTo == buyerID {
			return nil
		}
		return fmt.Errorf("mark artwork %s sold to %s: %w", artworkID, buyerID, liveerrors.ErrArtworkSold)
	}

	soldAt := time.Now().UTC()
	artwork.IsSold = true
	artwork.IsForAuction = false
	artwork.SoldTo = buyerID
	artwork.SoldAt = &soldAt
	if price.IsPositive() {
		artwork.Price = price
	}
	r.artworks[artworkID] = artwork
	return nil
}

// AddArtwork adds an artwork to the repository. This method is intended for seeding and tests.
func (r *MemoryRepo) AddArtwork(artwork model.Artwork) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.artworks[artwork.ArtworkID] = artwork
}

// SaveArtwork stores an artwork so auctions can settle against it
func (r *MemoryRepo) SaveArtwork(_ context.Context, artwork model.Artwork) error {
	r.AddArtwork(artwork)
	return nil
}

// copyAuction detaches pointer fields so callers never share ledger memory
func copyAuction(a model.Auction) model.Auction {
	if a.LastBidTime != nil {
		t := *a.LastBidTime
		a.LastBidTime = &t
	}
	return a
}

func copyStream(s model.Stream) model.Stream {
	if s.StartedAt != nil {
		t := *s.StartedAt
		s.StartedAt = &t
	}
	if s.EndedAt != nil {
		t := *s.EndedAt
		s.EndedAt = &t
	}
	if s.Duration != nil {
		d := *s.Duration
		s.Duration = &d
	}
	return s
}
