package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"live-auction/internal/liveerrors"
	model "live-auction/internal/models"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

// RedisRepo is a Redis-backed implementation of LiveDB.
// Ledgers are stored as JSON strings; the entity lock held by the caller
// serializes read-modify-write cycles on a single entity.
type RedisRepo struct {
	client *redis.Client
	prefix string
	now    func() time.Time
}

// NewRedisClient connects to Redis and verifies the connection
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return client, nil
}

// NewRedisRepo wraps an existing client; keys are namespaced under prefix
func NewRedisRepo(client *redis.Client, prefix string) *RedisRepo {
	if prefix == "" {
		prefix = "live"
	}
	return &RedisRepo{client: client, prefix: prefix, now: time.Now}
}

func (r *RedisRepo) auctionKey(auctionID string) string {
	return fmt.Sprintf("%s:auction:%s", r.prefix, auctionID)
}

func (r *RedisRepo) activeAuctionsKey() string {
	return fmt.Sprintf("%s:auctions:active", r.prefix)
}

func (r *RedisRepo) bidsKey(auctionID string) string {
	return fmt.Sprintf("%s:auction:%s:bids", r.prefix, auctionID)
}

func (r *RedisRepo) userAuctionsKey(userID string) string {
	return fmt.Sprintf("%s:user:%s:auctions", r.prefix, userID)
}

func (r *RedisRepo) streamKey(streamID string) string {
	return fmt.Sprintf("%s:stream:%s", r.prefix, streamID)
}

func (r *RedisRepo) artworkKey(artworkID string) string {
	return fmt.Sprintf("%s:artwork:%s", r.prefix, artworkID)
}

// GetAuction loads an auction ledger
func (r *RedisRepo) GetAuction(ctx context.Context, auctionID string) (model.Auction, error) {
	var auction model.Auction
	if err := r.getJSON(ctx, r.auctionKey(auctionID), &auction); err != nil {
		if errors.Is(err, redis.Nil) {
			return model.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, liveerrors.ErrAuctionNotFound)
		}
		return model.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, err)
	}
	return auction, nil
}

// SaveAuction writes the ledger and keeps the active index in step with it
func (r *RedisRepo) SaveAuction(ctx context.Context, auction model.Auction) error {
	if auction.AuctionID == "" {
		return fmt.Errorf("save auction: %w - empty auction ID", liveerrors.ErrInvalidRequest)
	}

	data, err := json.Marshal(auction)
	if err != nil {
		return fmt.Errorf("save auction %s: marshal: %w", auction.AuctionID, err)
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, r.auctionKey(auction.AuctionID), data, 0)
		if auction.Active {
			pipe.SAdd(ctx, r.activeAuctionsKey(), auction.AuctionID)
		} else {
			pipe.SRem(ctx, r.activeAuctionsKey(), auction.AuctionID)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("save auction %s: %w", auction.AuctionID, err)
	}
	return nil
}

// ListActiveAuctionIDs returns the active index, sorted
func (r *RedisRepo) ListActiveAuctionIDs(ctx context.Context) ([]string, error) {
	ids, err := r.client.SMembers(ctx, r.activeAuctionsKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("list active auctions: %w", err)
	}
	sort.Strings(ids)
	return ids, nil
}

// CommitBid writes the updated ledger, appends the accepted bid and indexes the
// auction under the bidder in a single MULTI/EXEC
func (r *RedisRepo) CommitBid(ctx context.Context, auction model.Auction, bid model.Bid) error {
	if bid.AuctionID != auction.AuctionID {
		return fmt.Errorf("commit bid: %w - bid for %s against ledger %s", liveerrors.ErrInvalidRequest, bid.AuctionID, auction.AuctionID)
	}

	exists, err := r.client.Exists(ctx, r.auctionKey(bid.AuctionID)).Result()
	if err != nil {
		return fmt.Errorf("commit bid for auction %s: %w", bid.AuctionID, err)
	}
	if exists == 0 {
		return fmt.Errorf("commit bid for auction %s: %w", bid.AuctionID, liveerrors.ErrAuctionNotFound)
	}

	ledger, err := json.Marshal(auction)
	if err != nil {
		return fmt.Errorf("commit bid for auction %s: marshal ledger: %w", bid.AuctionID, err)
	}
	data, err := json.Marshal(bid)
	if err != nil {
		return fmt.Errorf("commit bid for auction %s: marshal bid: %w", bid.AuctionID, err)
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, r.auctionKey(auction.AuctionID), ledger, 0)
		pipe.RPush(ctx, r.bidsKey(bid.AuctionID), data)
		pipe.SAdd(ctx, r.userAuctionsKey(bid.UserID), bid.AuctionID)
		return nil
	})
	if err != nil {
		return fmt.Errorf("commit bid for auction %s: %w", bid.AuctionID, err)
	}
	return nil
}

// GetBidsByAuction returns the bid history, oldest first
func (r *RedisRepo) GetBidsByAuction(ctx context.Context, auctionID string) ([]model.Bid, error) {
	raw, err := r.client.LRange(ctx, r.bidsKey(auctionID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("get bids for auction %s: %w", auctionID, err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("get bids for auction %s: %w", auctionID, liveerrors.ErrNoBids)
	}

	bids := make([]model.Bid, 0, len(raw))
	for _, item := range raw {
		var bid model.Bid
		if err := json.Unmarshal([]byte(item), &bid); err != nil {
			return nil, fmt.Errorf("get bids for auction %s: unmarshal: %w", auctionID, err)
		}
		bids = append(bids, bid)
	}
	return bids, nil
}

// GetAuctionsByUser returns every auction the user has bid on
func (r *RedisRepo) GetAuctionsByUser(ctx context.Context, userID string) ([]model.Auction, error) {
	ids, err := r.client.SMembers(ctx, r.userAuctionsKey(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("get auctions for user %s: %w", userID, err)
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("get auctions for user %s: %w", userID, liveerrors.ErrUserNoBids)
	}
	sort.Strings(ids)

	auctions := make([]model.Auction, 0, len(ids))
	for _, id := range ids {
		auction, err := r.GetAuction(ctx, id)
		if errors.Is(err, liveerrors.ErrAuctionNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("get auctions for user %s: %w", userID, err)
		}
		auctions = append(auctions, auction)
	}
	return auctions, nil
}

// GetStream loads a stream ledger
func (r *RedisRepo) GetStream(ctx context.Context, streamID string) (model.Stream, error) {
	var stream model.Stream
	if err := r.getJSON(ctx, r.streamKey(streamID), &stream); err != nil {
		if errors.Is(err, redis.Nil) {
			return model.Stream{}, fmt.Errorf("get stream %s: %w", streamID, liveerrors.ErrStreamNotFound)
		}
		return model.Stream{}, fmt.Errorf("get stream %s: %w", streamID, err)
	}
	return stream, nil
}

// SaveStream writes a stream ledger
func (r *RedisRepo) SaveStream(ctx context.Context, stream model.Stream) error {
	if stream.StreamID == "" {
		return fmt.Errorf("save stream: %w - empty stream ID", liveerrors.ErrInvalidRequest)
	}
	if err := r.setJSON(ctx, r.streamKey(stream.StreamID), stream); err != nil {
		return fmt.Errorf("save stream %s: %w", stream.StreamID, err)
	}
	return nil
}

// GetArtwork loads an artwork record
func (r *RedisRepo) GetArtwork(ctx context.Context, artworkID string) (model.Artwork, error) {
	var artwork model.Artwork
	if err := r.getJSON(ctx, r.artworkKey(artworkID), &artwork); err != nil {
		if errors.Is(err, redis.Nil) {
			return model.Artwork{}, fmt.Errorf("get artwork %s: %w", artworkID, liveerrors.ErrArtworkNotFound)
		}
		return model.Artwork{}, fmt.Errorf("get artwork %s: %w", artworkID, err)
	}
	return artwork, nil
}

// SaveArtwork writes an artwork record
func (r *RedisRepo) SaveArtwork(ctx context.Context, artwork model.Artwork) error {
	if err := r.setJSON(ctx, r.artworkKey(artwork.ArtworkID), artwork); err != nil {
		return fmt.Errorf("save artwork %s: %w", artwork.ArtworkID, err)
	}
	return nil
}

// MarkArtworkSold hands the artwork over to the winning bidder. Repeating the
// call for the same buyer is a no-op.
func (r *RedisRepo) MarkArtworkSold(ctx context.Context, artworkID, buyerID string, price decimal.Decimal) error {
	artwork, err := r.GetArtwork(ctx, artworkID)
	if err != nil {
		return fmt.Errorf("mark artwork sold: %w", err)
	}
	if artwork.IsSold {
		if artwork.SoldTo == buyerID {
			return nil
		}
		return fmt.Errorf("mark artwork %s sold to %s: %w", artworkID, buyerID, liveerrors.ErrArtworkSold)
	}

	soldAt := r.now().UTC()
	artwork.IsSold = true
	artwork.IsForAuction = false
	artwork.SoldTo = buyerID
	artwork.SoldAt = &soldAt
	if price.IsPositive() {
		artwork.Price = price
	}

	return r.SaveArtwork(ctx, artwork)
}

func (r *RedisRepo) getJSON(ctx context.Context, key string, v any) error {
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("unmarshal %s: %w", key, err)
	}
	return nil
}

func (r *RedisRepo) setJSON(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	return r.client.Set(ctx, key, data, 0).Err()
}
