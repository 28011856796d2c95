package bidding

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"live-auction/internal/entitylock"
	"live-auction/internal/liveerrors"
	model "live-auction/internal/models"
	"live-auction/internal/repository"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// Helper to create an active auction priced at 100 with an increment of 10
func newTestAuction(auctionID string) model.Auction {
	return model.Auction{
		AuctionID:       auctionID,
		ArtworkID:       "art-" + auctionID,
		StartingPrice:   dec("100"),
		CurrentPrice:    dec("100"),
		MinBidIncrement: dec("10"),
		StartTime:       fixedNow.Add(-time.Hour),
		EndTime:         fixedNow.Add(time.Hour),
		Active:          true,
		CreatedAt:       fixedNow.Add(-time.Hour),
		UpdatedAt:       fixedNow.Add(-time.Hour),
	}
}

func newMemoryService(t *testing.T, auctions ...model.Auction) (*BiddingService, *repository.MemoryRepo) {
	t.Helper()
	repo := repository.NewMemoryRepo()
	for _, a := range auctions {
		require.NoError(t, repo.SaveAuction(context.Background(), a))
	}
	return NewBiddingService(repo, entitylock.New(), WithClock(fixedClock)), repo
}

// Tests PlaceBid
func TestBiddingService_PlaceBid(t *testing.T) {
	expired := newTestAuction("a-expired")
	expired.EndTime = fixedNow.Add(-time.Second)

	closed := newTestAuction("a-closed")
	closed.Active = false

	// Table-driven test cases
	tests := []struct {
		name          string
		auctionID     string
		userID        string
		amount        decimal.Decimal
		mockSetup     func(m *repository.MockLiveDB)
		expectError   bool
		expectedError error
		wantAccepted  bool
		wantCode      model.RejectCode
	}{
		{
			name:      "valid_first_bid",
			auctionID: "a1",
			userID:    "user1",
			amount:    dec("110"),
			mockSetup: func(m *repository.MockLiveDB) {
				m.EXPECT().GetAuction(gomock.Any(), "a1").Return(newTestAuction("a1"), nil)
				m.EXPECT().CommitBid(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a model.Auction, b model.Bid) error {
					if !a.CurrentPrice.Equal(dec("110")) || a.HighestBidder != "user1" || a.TotalBids != 1 {
						return fmt.Errorf("unexpected ledger saved: %+v", a)
					}
					if b.AuctionID != "a1" || b.UserID != "user1" || !b.Amount.Equal(dec("110")) {
						return fmt.Errorf("unexpected bid recorded: %+v", b)
					}
					return nil
				})
			},
			wantAccepted: true,
		},
		{
			name:          "empty_auctionID",
			auctionID:     "",
			userID:        "user1",
			amount:        dec("110"),
			mockSetup:     func(m *repository.MockLiveDB) {},
			expectError:   true,
			expectedError: liveerrors.ErrInvalidBid,
		},
		{
			name:          "empty_userID",
			auctionID:     "a1",
			userID:        "",
			amount:        dec("110"),
			mockSetup:     func(m *repository.MockLiveDB) {},
			expectError:   true,
			expectedError: liveerrors.ErrInvalidBid,
		},
		{
			name:      "zero_amount",
			auctionID: "a1",
			userID:    "user1",
			amount:    decimal.Zero,
			mockSetup: func(m *repository.MockLiveDB) {
				m.EXPECT().GetAuction(gomock.Any(), "a1").Return(newTestAuction("a1"), nil)
			},
			wantCode: model.RejectTooLow,
		},
		{
			name:      "negative_amount",
			auctionID: "a1",
			userID:    "user1",
			amount:    dec("-50"),
			mockSetup: func(m *repository.MockLiveDB) {
				m.EXPECT().GetAuction(gomock.Any(), "a1").Return(newTestAuction("a1"), nil)
			},
			wantCode: model.RejectTooLow,
		},
		{
			name:      "negative_amount_on_closed_auction",
			auctionID: "a-closed",
			userID:    "user1",
			amount:    dec("-50"),
			mockSetup: func(m *repository.MockLiveDB) {
				m.EXPECT().GetAuction(gomock.Any(), "a-closed").Return(closed, nil)
			},
			wantCode: model.RejectNotActive,
		},
		{
			name:      "auction_not_found",
			auctionID: "missing",
			userID:    "user1",
			amount:    dec("110"),
			mockSetup: func(m *repository.MockLiveDB) {
				m.EXPECT().GetAuction(gomock.Any(), "missing").
					Return(model.Auction{}, fmt.Errorf("get auction missing: %w", liveerrors.ErrAuctionNotFound))
			},
			expectError:   true,
			expectedError: liveerrors.ErrAuctionNotFound,
		},
		{
			name:      "bid_too_low",
			auctionID: "a1",
			userID:    "user2",
			amount:    dec("80"),
			mockSetup: func(m *repository.MockLiveDB) {
				m.EXPECT().GetAuction(gomock.Any(), "a1").Return(newTestAuction("a1"), nil)
			},
			wantCode: model.RejectTooLow,
		},
		{
			name:      "below_min_increment",
			auctionID: "a1",
			userID:    "user2",
			amount:    dec("105"),
			mockSetup: func(m *repository.MockLiveDB) {
				m.EXPECT().GetAuction(gomock.Any(), "a1").Return(newTestAuction("a1"), nil)
			},
			wantCode: model.RejectMinIncrement,
		},
		{
			name:      "auction_closed",
			auctionID: "a-closed",
			userID:    "user2",
			amount:    dec("500"),
			mockSetup: func(m *repository.MockLiveDB) {
				m.EXPECT().GetAuction(gomock.Any(), "a-closed").Return(closed, nil)
			},
			wantCode: model.RejectNotActive,
		},
		{
			name:      "auction_past_end_time",
			auctionID: "a-expired",
			userID:    "user2",
			amount:    dec("500"),
			mockSetup: func(m *repository.MockLiveDB) {
				m.EXPECT().GetAuction(gomock.Any(), "a-expired").Return(expired, nil)
			},
			wantCode: model.RejectNotActive,
		},
		{
			name:      "repo_commit_fails",
			auctionID: "a1",
			userID:    "user3",
			amount:    dec("120"),
			mockSetup: func(m *repository.MockLiveDB) {
				m.EXPECT().GetAuction(gomock.Any(), "a1").Return(newTestAuction("a1"), nil)
				m.EXPECT().CommitBid(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("repo write failed"))
			},
			expectError:   true,
			expectedError: nil, // Service wraps repo error, we don’t match specific error here
		},
	}

	for _, tc := range tests {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel() // Run tests concurrently

			ctrl := gomock.NewController(t)
			mockRepo := repository.NewMockLiveDB(ctrl)
			tc.mockSetup(mockRepo)

			service := NewBiddingService(mockRepo, entitylock.New(), WithClock(fixedClock))
			result, err := service.PlaceBid(context.Background(), tc.auctionID, tc.userID, tc.amount)

			if tc.expectError {
				require.Error(t, err)
				if tc.expectedError != nil {
					require.True(t, errors.Is(err, tc.expectedError), "expected error: %v, got: %v", tc.expectedError, err)
				}
				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.wantAccepted, result.Accepted)
			require.Equal(t, tc.wantCode, result.Code)
			require.NotEmpty(t, result.Reason)

			if !tc.wantAccepted {
				require.Empty(t, result.Bid.BidID)
				return
			}

			// Validate generated BidID
			_, parseErr := uuid.Parse(result.Bid.BidID)
			require.NoError(t, parseErr, "BidID should be a valid UUID")

			require.Equal(t, tc.auctionID, result.Bid.AuctionID)
			require.Equal(t, tc.userID, result.Bid.UserID)
			require.True(t, tc.amount.Equal(result.Bid.Amount))
			require.Equal(t, fixedNow, result.Bid.CreatedAt)
			require.True(t, tc.amount.Equal(result.Snapshot.CurrentPrice))
			require.NotNil(t, result.Snapshot.HighestBidder)
			require.Equal(t, tc.userID, *result.Snapshot.HighestBidder)
		})
	}
}

func TestBiddingService_PlaceBid_RejectionCarriesCurrentPrice(t *testing.T) {
	service, _ := newMemoryService(t, newTestAuction("a1"))
	ctx := context.Background()

	_, err := service.PlaceBid(ctx, "a1", "u1", dec("150"))
	require.NoError(t, err)

	result, err := service.PlaceBid(ctx, "a1", "u2", dec("140"))
	require.NoError(t, err)
	require.False(t, result.Accepted)
	require.True(t, result.Snapshot.CurrentPrice.Equal(dec("150")))
	require.Equal(t, "u1", *result.Snapshot.HighestBidder)
}

// failingCommitRepo refuses every bid commit
type failingCommitRepo struct {
	*repository.MemoryRepo
}

func (r failingCommitRepo) CommitBid(context.Context, model.Auction, model.Bid) error {
	return errors.New("store down")
}

// A failed commit must leave neither a moved price nor a recorded bid behind
func TestBiddingService_PlaceBid_FailedCommitLeavesLedgerUnchanged(t *testing.T) {
	ctx := context.Background()
	memory := repository.NewMemoryRepo()
	require.NoError(t, memory.SaveAuction(ctx, newTestAuction("a1")))
	service := NewBiddingService(failingCommitRepo{memory}, entitylock.New(), WithClock(fixedClock))

	_, err := service.PlaceBid(ctx, "a1", "u1", dec("110"))
	require.Error(t, err)

	auction, err := memory.GetAuction(ctx, "a1")
	require.NoError(t, err)
	require.True(t, auction.CurrentPrice.Equal(dec("100")))
	require.Empty(t, auction.HighestBidder)
	require.Equal(t, 0, auction.TotalBids)
	require.Equal(t, int64(0), auction.Version)

	_, err = memory.GetBidsByAuction(ctx, "a1")
	require.True(t, errors.Is(err, liveerrors.ErrNoBids))

	snap, err := service.GetAuctionSnapshot(ctx, "a1")
	require.NoError(t, err)
	require.True(t, snap.CurrentPrice.Equal(dec("100")))
	require.Nil(t, snap.HighestBidder)
}

// Auction{price:100, increment:10}: 70, 105, 110, 110, 125
func TestBiddingService_BidSequenceScenario(t *testing.T) {
	service, repo := newMemoryService(t, newTestAuction("a1"))
	ctx := context.Background()

	steps := []struct {
		amount    string
		accepted  bool
		code      model.RejectCode
		wantPrice string
	}{
		{"70", false, model.RejectTooLow, "100"},
		{"105", false, model.RejectMinIncrement, "100"},
		{"110", true, model.RejectNone, "110"},
		{"110", false, model.RejectTooLow, "110"},
		{"125", true, model.RejectNone, "125"},
	}

	for i, step := range steps {
		result, err := service.PlaceBid(ctx, "a1", fmt.Sprintf("user%d", i), dec(step.amount))
		require.NoError(t, err)
		require.Equal(t, step.accepted, result.Accepted, "bid %s", step.amount)
		require.Equal(t, step.code, result.Code, "bid %s", step.amount)
		require.True(t, result.Snapshot.CurrentPrice.Equal(dec(step.wantPrice)), "bid %s", step.amount)
	}

	auction, err := repo.GetAuction(ctx, "a1")
	require.NoError(t, err)
	require.True(t, auction.CurrentPrice.Equal(dec("125")))
	require.Equal(t, "user4", auction.HighestBidder)
	require.Equal(t, 2, auction.TotalBids)

	bids, err := repo.GetBidsByAuction(ctx, "a1")
	require.NoError(t, err)
	require.Len(t, bids, 2)
}

func TestBiddingService_MinIncrementBoundary(t *testing.T) {
	service, _ := newMemoryService(t, newTestAuction("a1"))
	ctx := context.Background()

	result, err := service.PlaceBid(ctx, "a1", "u1", dec("109.99"))
	require.NoError(t, err)
	require.False(t, result.Accepted)
	require.Equal(t, model.RejectMinIncrement, result.Code)
	require.Contains(t, result.Reason, "10.00")

	result, err = service.PlaceBid(ctx, "a1", "u1", dec("110"))
	require.NoError(t, err)
	require.True(t, result.Accepted)

	// the boundary moves with the price
	result, err = service.PlaceBid(ctx, "a1", "u2", dec("119.99"))
	require.NoError(t, err)
	require.False(t, result.Accepted)

	result, err = service.PlaceBid(ctx, "a1", "u2", dec("120.00"))
	require.NoError(t, err)
	require.True(t, result.Accepted)
}

// N strictly increasing bids launched at once: the highest always wins and
// no two evaluations share a baseline price
func TestBiddingService_ConcurrentIncreasingBids(t *testing.T) {
	service, repo := newMemoryService(t, newTestAuction("a1"))
	ctx := context.Background()

	const n = 100
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted []decimal.Decimal
	)

	start := make(chan struct{})
	for i := 1; i <= n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			amount := decimal.NewFromInt(int64(100 + 10*i))
			result, err := service.PlaceBid(ctx, "a1", fmt.Sprintf("user%d", i), amount)
			require.NoError(t, err)
			if result.Accepted {
				mu.Lock()
				accepted = append(accepted, amount)
				mu.Unlock()
			}
		}(i)
	}
	close(start)
	wg.Wait()

	maxAmount := decimal.NewFromInt(int64(100 + 10*n))

	auction, err := repo.GetAuction(ctx, "a1")
	require.NoError(t, err)
	require.True(t, auction.CurrentPrice.Equal(maxAmount))
	require.Equal(t, fmt.Sprintf("user%d", n), auction.HighestBidder)
	require.Equal(t, len(accepted), auction.TotalBids)

	// history order is evaluation order: strictly increasing, no lost update
	bids, err := repo.GetBidsByAuction(ctx, "a1")
	require.NoError(t, err)
	require.Len(t, bids, len(accepted))
	for i := 1; i < len(bids); i++ {
		require.True(t, bids[i].Amount.GreaterThan(bids[i-1].Amount), "price went backwards at %d", i)
	}

	sort.Slice(accepted, func(i, j int) bool { return accepted[i].LessThan(accepted[j]) })
	require.True(t, accepted[len(accepted)-1].Equal(maxAmount))
}

// Many bidders on many auctions at once; each auction ends at its own maximum
func TestBiddingService_IndependentAuctions(t *testing.T) {
	auctions := make([]model.Auction, 0, 5)
	for i := 0; i < 5; i++ {
		auctions = append(auctions, newTestAuction(fmt.Sprintf("a%d", i)))
	}
	service, repo := newMemoryService(t, auctions...)
	ctx := context.Background()

	var wg sync.WaitGroup
	for _, a := range auctions {
		for i := 1; i <= 20; i++ {
			wg.Add(1)
			go func(auctionID string, i int) {
				defer wg.Done()
				_, err := service.PlaceBid(ctx, auctionID, fmt.Sprintf("u%d", i), decimal.NewFromInt(int64(100+10*i)))
				require.NoError(t, err)
			}(a.AuctionID, i)
		}
	}
	wg.Wait()

	for _, a := range auctions {
		got, err := repo.GetAuction(ctx, a.AuctionID)
		require.NoError(t, err)
		require.True(t, got.CurrentPrice.Equal(decimal.NewFromInt(300)), "auction %s", a.AuctionID)
	}
}

func TestBiddingService_AntiSnipe(t *testing.T) {
	closing := newTestAuction("a1")
	closing.EndTime = fixedNow.Add(time.Minute)

	tests := []struct {
		name         string
		policy       AntiSnipePolicy
		wantExtended bool
		wantEnd      time.Time
	}{
		{
			name:    "disabled_by_default",
			policy:  AntiSnipePolicy{},
			wantEnd: closing.EndTime,
		},
		{
			name:         "late_bid_extends",
			policy:       AntiSnipePolicy{Enabled: true, Window: 5 * time.Minute, Extension: 2 * time.Minute},
			wantExtended: true,
			wantEnd:      closing.EndTime.Add(2 * time.Minute),
		},
		{
			name:    "outside_window",
			policy:  AntiSnipePolicy{Enabled: true, Window: 30 * time.Second, Extension: 2 * time.Minute},
			wantEnd: closing.EndTime,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			repo := repository.NewMemoryRepo()
			require.NoError(t, repo.SaveAuction(context.Background(), closing))
			service := NewBiddingService(repo, entitylock.New(), WithClock(fixedClock), WithAntiSnipe(tc.policy))

			result, err := service.PlaceBid(context.Background(), "a1", "sniper", dec("200"))
			require.NoError(t, err)
			require.True(t, result.Accepted)
			require.Equal(t, tc.wantExtended, result.Extended)
			require.True(t, result.Snapshot.EndTime.Equal(tc.wantEnd))

			stored, err := repo.GetAuction(context.Background(), "a1")
			require.NoError(t, err)
			require.True(t, stored.EndTime.Equal(tc.wantEnd))
		})
	}
}

func TestBiddingService_GetAuctionSnapshot(t *testing.T) {
	service, _ := newMemoryService(t, newTestAuction("a1"))
	ctx := context.Background()

	snap, err := service.GetAuctionSnapshot(ctx, "a1")
	require.NoError(t, err)
	require.Nil(t, snap.HighestBidder)
	require.Equal(t, 0, snap.UniqueBidders)
	require.NotNil(t, snap.TimeRemaining)
	require.InDelta(t, 3600, *snap.TimeRemaining, 0.001)
	require.False(t, snap.AboutToEnd)

	for _, bid := range []struct {
		user   string
		amount string
	}{{"u1", "110"}, {"u2", "120"}, {"u1", "130"}} {
		_, err := service.PlaceBid(ctx, "a1", bid.user, dec(bid.amount))
		require.NoError(t, err)
	}

	snap, err = service.GetAuctionSnapshot(ctx, "a1")
	require.NoError(t, err)
	require.Equal(t, 3, snap.TotalBids)
	require.Equal(t, 2, snap.UniqueBidders)
	require.Equal(t, "u1", *snap.HighestBidder)

	_, err = service.GetAuctionSnapshot(ctx, "")
	require.True(t, errors.Is(err, liveerrors.ErrInvalidRequest))

	_, err = service.GetAuctionSnapshot(ctx, "missing")
	require.True(t, errors.Is(err, liveerrors.ErrAuctionNotFound))
}

// Tests GetBidsForAuction
func TestBiddingService_GetBidsForAuction(t *testing.T) {
	bidsExample := []model.Bid{
		{BidID: "bid1", AuctionID: "a1", UserID: "user1", Amount: dec("110"), CreatedAt: fixedNow},
		{BidID: "bid2", AuctionID: "a1", UserID: "user2", Amount: dec("150"), CreatedAt: fixedNow.Add(time.Second)},
	}

	tests := []struct {
		name          string
		auctionID     string
		mockSetup     func(m *repository.MockLiveDB)
		expectedError error
		expectedBids  []model.Bid
	}{
		{
			name:      "auction_with_bids",
			auctionID: "a1",
			mockSetup: func(m *repository.MockLiveDB) {
				m.EXPECT().GetBidsByAuction(gomock.Any(), "a1").Return(bidsExample, nil)
			},
			expectedBids: bidsExample,
		},
		{
			name:      "auction_without_bids",
			auctionID: "a2",
			mockSetup: func(m *repository.MockLiveDB) {
				m.EXPECT().GetBidsByAuction(gomock.Any(), "a2").Return(nil, liveerrors.ErrNoBids)
			},
			expectedError: liveerrors.ErrNoBids,
		},
		{
			name:          "empty_auctionID",
			auctionID:     "",
			mockSetup:     func(m *repository.MockLiveDB) {},
			expectedError: liveerrors.ErrInvalidRequest,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			mockRepo := repository.NewMockLiveDB(ctrl)
			tc.mockSetup(mockRepo)
			service := NewBiddingService(mockRepo, entitylock.New())

			bids, err := service.GetBidsForAuction(context.Background(), tc.auctionID)
			if tc.expectedError != nil {
				require.True(t, errors.Is(err, tc.expectedError), "expected error: %v, got: %v", tc.expectedError, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expectedBids, bids)
		})
	}
}

// Tests GetAuctionsByUser
func TestBiddingService_GetAuctionsByUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := repository.NewMockLiveDB(ctrl)
	service := NewBiddingService(mockRepo, entitylock.New())

	auctions := []model.Auction{newTestAuction("a1"), newTestAuction("a2")}
	mockRepo.EXPECT().GetAuctionsByUser(gomock.Any(), "user1").Return(auctions, nil)
	mockRepo.EXPECT().GetAuctionsByUser(gomock.Any(), "ghost").Return(nil, liveerrors.ErrUserNoBids)

	got, err := service.GetAuctionsByUser(context.Background(), "user1")
	require.NoError(t, err)
	require.Len(t, got, 2)

	_, err = service.GetAuctionsByUser(context.Background(), "ghost")
	require.True(t, errors.Is(err, liveerrors.ErrUserNoBids))

	_, err = service.GetAuctionsByUser(context.Background(), "")
	require.True(t, errors.Is(err, liveerrors.ErrInvalidRequest))
}
