package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"live-auction/internal/liveerrors"
	"live-auction/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, liveerrors.ErrAuctionNotFound):
		return http.StatusNotFound, "auction not found"
	case errors.Is(err, liveerrors.ErrStreamNotFound):
		return http.StatusNotFound, "stream not found"
	case errors.Is(err, liveerrors.ErrArtworkNotFound):
		return http.StatusNotFound, "artwork not found"
	case errors.Is(err, liveerrors.ErrArtworkSold):
		return http.StatusConflict, "artwork already sold"
	case errors.Is(err, liveerrors.ErrInvalidBid):
		return http.StatusBadRequest, "invalid bid details"
	case errors.Is(err, liveerrors.ErrInvalidRequest):
		return http.StatusBadRequest, "invalid request"
	case errors.Is(err, liveerrors.ErrNotLive):
		return http.StatusConflict, "room is not open"
	case errors.Is(err, liveerrors.ErrUnauthorized):
		return http.StatusUnauthorized, "unauthorized"
	case errors.Is(err, liveerrors.ErrNoBids):
		return http.StatusOK, "no bids found for auction"
	case errors.Is(err, liveerrors.ErrUserNoBids):
		return http.StatusOK, "no auctions found for user"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// MapErrorToWS maps the same errors to a websocket error frame code
func MapErrorToWS(err error) (string, string) {
	status, message := MapErrorToHTTP(err)
	switch status {
	case http.StatusBadRequest, http.StatusNotFound:
		return ErrCodeBadRequest, message
	case http.StatusConflict:
		return ErrCodeNotLive, message
	case http.StatusUnauthorized:
		return ErrCodeUnauthorized, message
	default:
		return ErrCodeInternalError, message
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
