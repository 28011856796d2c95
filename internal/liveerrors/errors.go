package liveerrors

import "errors"

// Repository-level errors
var (
	ErrAuctionNotFound = errors.New("auction not found")
	ErrStreamNotFound  = errors.New("stream not found")
	ErrArtworkNotFound = errors.New("artwork not found")
	ErrNoBids          = errors.New("no bids found for auction")
	ErrUserNoBids      = errors.New("user has not placed any bids")
)

// business logic errors
var (
	ErrInvalidBid     = errors.New("invalid bid")
	ErrInvalidRequest = errors.New("invalid request")
	ErrNotLive        = errors.New("room is not open")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrArtworkSold    = errors.New("artwork already sold to another buyer")
)
