package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// AboutToEndThreshold is the remaining time under which an active auction is considered about to end
const AboutToEndThreshold = 5 * time.Minute

// RejectCode classifies why a bid was not accepted
type RejectCode string

const (
	RejectNone         RejectCode = ""
	RejectNotActive    RejectCode = "auction_not_active"
	RejectTooLow       RejectCode = "bid_too_low"
	RejectMinIncrement RejectCode = "below_min_increment"
)

// BidOutcome is the result of applying a bid to an auction ledger.
// A rejection is a normal outcome, not an error.
type BidOutcome struct {
	Accepted bool
	Code     RejectCode
	Reason   string
}

// PlaceBid applies a bid to the ledger. Callers must hold the auction's entity lock.
func (a *Auction) PlaceBid(bidder string, amount decimal.Decimal, now time.Time) BidOutcome {
	if !a.Active {
		return BidOutcome{Code: RejectNotActive, Reason: "auction not active"}
	}

	if !amount.IsPositive() || amount.LessThanOrEqual(a.CurrentPrice) {
		return BidOutcome{Code: RejectTooLow, Reason: "bid too low"}
	}

	if amount.LessThan(a.CurrentPrice.Add(a.MinBidIncrement)) {
		return BidOutcome{
			Code:   RejectMinIncrement,
			Reason: fmt.Sprintf("bid must exceed the current price by at least the minimum increment of %s", a.MinBidIncrement.StringFixed(2)),
		}
	}

	bidTime := now
	a.CurrentPrice = amount
	a.HighestBidder = bidder
	a.LastBidTime = &bidTime
	a.TotalBids++
	a.touch(now)

	return BidOutcome{Accepted: true, Reason: "bid accepted"}
}

// End moves the auction to its terminal state.
// It reports whether this call performed the transition; only that caller may settle.
func (a *Auction) End(now time.Time) bool {
	if !a.Active {
		return false
	}
	a.Active = false
	a.touch(now)
	return true
}

// ExtendTime pushes the end time back while the auction is active
func (a *Auction) ExtendTime(d time.Duration, now time.Time) bool {
	if !a.Active || d <= 0 {
		return false
	}
	a.EndTime = a.EndTime.Add(d)
	a.touch(now)
	return true
}

// HasLeader reports whether at least one bid was accepted
func (a Auction) HasLeader() bool {
	return a.HighestBidder != ""
}

// TimeRemaining returns nil once the auction is no longer active
func (a Auction) TimeRemaining(now time.Time) *time.Duration {
	if !a.Active {
		return nil
	}
	remaining := a.EndTime.Sub(now)
	return &remaining
}

// IsEnded is true when the auction was closed or its end time has passed
func (a Auction) IsEnded(now time.Time) bool {
	return !a.Active || now.After(a.EndTime)
}

// IsAboutToEnd is true for an active auction with at most AboutToEndThreshold remaining
func (a Auction) IsAboutToEnd(now time.Time) bool {
	return a.IsAboutToEndWithin(AboutToEndThreshold, now)
}

// IsAboutToEndWithin is IsAboutToEnd with a caller supplied window
func (a Auction) IsAboutToEndWithin(window time.Duration, now time.Time) bool {
	remaining := a.TimeRemaining(now)
	if remaining == nil {
		return false
	}
	return *remaining <= window
}

func (a *Auction) touch(now time.Time) {
	a.Version++
	a.UpdatedAt = now
}
