package session

import (
	"context"
	"time"

	"live-auction/utils"
)

// Notifier is told about auctions the sweeper ended, so their rooms can be
// updated and closed even when no client request caused the change
type Notifier interface {
	AuctionEnded(auctionID string, result AuctionResult)
}

// Sweeper ends auctions whose end time has passed, independently of connections
type Sweeper struct {
	controller *Controller
	interval   time.Duration
	notifier   Notifier
}

// NewSweeper creates a Sweeper; notifier may be nil
func NewSweeper(controller *Controller, interval time.Duration, notifier Notifier) *Sweeper {
	if interval <= 0 {
		interval = time.Second
	}
	return &Sweeper{controller: controller, interval: interval, notifier: notifier}
}

// Run sweeps every interval until ctx is cancelled
func (s *Sweeper) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	utils.Info("sweeper: started", map[string]any{"interval": s.interval.String()})
	for {
		select {
		case <-ctx.Done():
			utils.Info("sweeper: stopped", nil)
			return nil
		case <-ticker.C:
			s.SweepOnce(ctx)
		}
	}
}

// SweepOnce ends every active auction past its end time and returns how many it ended
func (s *Sweeper) SweepOnce(ctx context.Context) int {
	ids, err := s.controller.repo.ListActiveAuctionIDs(ctx)
	if err != nil {
		utils.Error("sweeper: failed to list active auctions", map[string]any{"error": err.Error()})
		return 0
	}

	ended := 0
	for _, id := range ids {
		if ctx.Err() != nil {
			break
		}
		result, err := s.controller.ExpireAuction(ctx, id)
		if err != nil {
			utils.Error("sweeper: failed to expire auction", map[string]any{"auction_id": id, "error": err.Error()})
			continue
		}
		if !result.Changed {
			continue
		}
		ended++
		if s.notifier != nil {
			s.notifier.AuctionEnded(id, result)
		}
	}
	return ended
}
