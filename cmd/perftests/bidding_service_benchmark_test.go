package perftests

import (
	"context"
	"fmt"
	"math/rand"
	"sync/atomic"
	"testing"
	"time"

	bidding "live-auction/internal/biddingService"
	"live-auction/internal/entitylock"
	"live-auction/internal/hub"
	model "live-auction/internal/models"
	repository "live-auction/internal/repository"

	"github.com/shopspring/decimal"
)

func newAuction(auctionID string, start int64) model.Auction {
	now := time.Now().UTC()
	return model.Auction{
		AuctionID:       auctionID,
		ArtworkID:       "art_" + auctionID,
		StartingPrice:   decimal.NewFromInt(start),
		CurrentPrice:    decimal.NewFromInt(start),
		MinBidIncrement: decimal.NewFromInt(1),
		StartTime:       now,
		EndTime:         now.Add(24 * time.Hour),
		Active:          true,
	}
}

// Benchmark 1: PlaceBid - Isolated Auctions (Low Contention - Micro Benchmark)
func Benchmark_PlaceBid_Isolated(b *testing.B) {
	ctx := context.Background()
	repo := repository.NewMemoryRepo()
	svc := bidding.NewBiddingService(repo, entitylock.New())

	for i := 0; i < b.N; i++ {
		if err := repo.SaveAuction(ctx, newAuction(fmt.Sprintf("auction_%d", i), 50)); err != nil {
			b.Fatalf("failed to seed auction: %v", err)
		}
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		userID := fmt.Sprintf("user_%d", i)
		auctionID := fmt.Sprintf("auction_%d", i)
		amount := decimal.NewFromInt(int64(51 + rand.Intn(100)))
		if _, err := svc.PlaceBid(ctx, auctionID, userID, amount); err != nil {
			b.Fatalf("failed to place bid: %v", err)
		}
	}
}

// Benchmark 2: PlaceBid - Shared Auction (High Contention - Concurrency Benchmark)
func Benchmark_PlaceBid_ConcurrentSharedAuction(b *testing.B) {
	ctx := context.Background()
	repo := repository.NewMemoryRepo()
	svc := bidding.NewBiddingService(repo, entitylock.New())

	auction := newAuction("shared_auction_1", 50)
	if err := repo.SaveAuction(ctx, auction); err != nil {
		b.Fatalf("failed to seed auction: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	var lastBid int64 = 50

	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
		for pb.Next() {
			userID := fmt.Sprintf("user_parallel_%d", rnd.Int())

			nextBid := atomic.AddInt64(&lastBid, int64(rnd.Intn(5)+1))
			_, _ = svc.PlaceBid(ctx, auction.AuctionID, userID, decimal.NewFromInt(nextBid))
		}
	})
}

// Benchmark 3: GetAuctionSnapshot - Concurrent readers on one auction
func Benchmark_GetAuctionSnapshot_ConcurrentSharedAuction(b *testing.B) {
	ctx := context.Background()
	repo := repository.NewMemoryRepo()
	svc := bidding.NewBiddingService(repo, entitylock.New())

	auction := newAuction("shared_auction_1", 50)
	if err := repo.SaveAuction(ctx, auction); err != nil {
		b.Fatalf("failed to seed auction: %v", err)
	}
	for j := 0; j < 100; j++ {
		_, _ = svc.PlaceBid(ctx, auction.AuctionID, fmt.Sprintf("user_%d", j), decimal.NewFromInt(int64(51+j)))
	}

	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := svc.GetAuctionSnapshot(ctx, auction.AuctionID); err != nil {
				b.Fatalf("failed to get snapshot: %v", err)
			}
		}
	})
}

type discardSubscriber struct {
	id       string
	received int64
}

func (d *discardSubscriber) ID() string { return d.id }

func (d *discardSubscriber) Enqueue([]byte) bool {
	atomic.AddInt64(&d.received, 1)
	return true
}

func (d *discardSubscriber) Close() {}

// Benchmark 4: Hub fan-out to a crowded room
func Benchmark_Hub_PublishFanout(b *testing.B) {
	for _, members := range []int{10, 100, 1000} {
		b.Run(fmt.Sprintf("members_%d", members), func(b *testing.B) {
			h := hub.New()
			room := hub.AuctionRoom("fanout")
			for i := 0; i < members; i++ {
				h.Join(room, &discardSubscriber{id: fmt.Sprintf("sub_%d", i)})
			}
			frame := []byte(`{"type":"auction_update","auction_id":"fanout","current_price":150}`)

			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				h.Publish(room, frame)
			}
		})
	}
}

// Benchmark 5: Hub publishes to independent rooms in parallel
func Benchmark_Hub_ParallelRooms(b *testing.B) {
	h := hub.New()
	const rooms = 64
	for r := 0; r < rooms; r++ {
		for i := 0; i < 10; i++ {
			h.Join(hub.StreamRoom(fmt.Sprintf("stream_%d", r)), &discardSubscriber{id: fmt.Sprintf("sub_%d_%d", r, i)})
		}
	}
	frame := []byte(`{"type":"stream_status","status":"live"}`)

	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
		for pb.Next() {
			h.Publish(hub.StreamRoom(fmt.Sprintf("stream_%d", rnd.Intn(rooms))), frame)
		}
	})
}
