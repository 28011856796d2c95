package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"live-auction/internal/liveerrors"
	"live-auction/internal/session"
	"live-auction/services/live/helpers"
	"live-auction/utils"

	"github.com/gin-gonic/gin"
)

// GetAuctionHandler handles GET /auctions/:auction_id
func (h *LiveHandler) GetAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	snap, err := h.bidding.GetAuctionSnapshot(c.Request.Context(), auctionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetAuctionHandler: error retrieving auction", map[string]any{"auction_id": auctionID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToAuctionResponse(snap), "auction retrieved successfully")
}

// GetBidsByAuctionHandler handles GET /auctions/:auction_id/bids
func (h *LiveHandler) GetBidsByAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	bids, err := h.bidding.GetBidsForAuction(c.Request.Context(), auctionID)
	if err != nil && !errors.Is(err, liveerrors.ErrNoBids) {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetBidsByAuctionHandler: error retrieving bids", map[string]any{"auction_id": auctionID, "error": err.Error()})
		return
	}

	resp := make([]helpers.BidResponse, 0, len(bids))
	for _, bid := range bids {
		resp = append(resp, helpers.ToBidResponse(bid))
	}

	utils.JSONResponse(c, http.StatusOK, resp, "bids retrieved successfully")
	helpers.LogSuccess("GetBidsByAuctionHandler", "bids retrieved successfully", map[string]any{
		"auction_id": auctionID,
		"count":      len(resp),
	})
}

// GetAuctionsByUserHandler handles GET /users/:user_id/auctions
func (h *LiveHandler) GetAuctionsByUserHandler(c *gin.Context) {
	userID := c.Param("user_id")
	auctions, err := h.bidding.GetAuctionsByUser(c.Request.Context(), userID)
	if err != nil && !errors.Is(err, liveerrors.ErrUserNoBids) {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetAuctionsByUserHandler: error retrieving auctions", map[string]any{"user_id": userID, "error": err.Error()})
		return
	}

	resp := make([]helpers.AuctionSummary, 0, len(auctions))
	for _, auction := range auctions {
		resp = append(resp, helpers.ToAuctionSummary(auction))
	}

	utils.JSONResponse(c, http.StatusOK, resp, "auctions retrieved successfully")
	helpers.LogSuccess("GetAuctionsByUserHandler", "auctions retrieved successfully", map[string]any{
		"user_id":        userID,
		"auctions_count": len(resp),
	})
}

// EndAuctionHandler handles POST /auctions/:auction_id/end
func (h *LiveHandler) EndAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	result, err := h.sessions.EndAuction(c.Request.Context(), auctionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("EndAuctionHandler: failed to end auction", map[string]any{"auction_id": auctionID, "error": err.Error()})
		return
	}

	message := "auction already ended"
	if result.Changed {
		h.broadcaster.CloseAuction(result.Snapshot)
		message = "auction ended"
	}

	utils.JSONResponse(c, http.StatusOK, auctionTransition(result), message)
	helpers.LogSuccess("EndAuctionHandler", message, map[string]any{
		"auction_id": auctionID,
		"sold":       result.Sold,
		"winner":     result.Winner,
	})
}

// ExtendAuctionHandler handles POST /auctions/:auction_id/extend
func (h *LiveHandler) ExtendAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	var req helpers.ExtendAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "ExtendAuctionHandler", err)
		return
	}

	result, err := h.sessions.ExtendAuction(c.Request.Context(), auctionID, time.Duration(req.Minutes)*time.Minute)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ExtendAuctionHandler: failed to extend auction", map[string]any{"auction_id": auctionID, "error": err.Error()})
		return
	}

	message := "auction not active, end time unchanged"
	if result.Changed {
		h.broadcaster.PublishAuction(result.Snapshot)
		message = "auction extended"
	}

	utils.JSONResponse(c, http.StatusOK, auctionTransition(result), message)
	helpers.LogSuccess("ExtendAuctionHandler", message, map[string]any{
		"auction_id": auctionID,
		"minutes":    req.Minutes,
	})
}

// GetStreamHandler handles GET /streams/:stream_id
func (h *LiveHandler) GetStreamHandler(c *gin.Context) {
	streamID := c.Param("stream_id")
	snap, err := h.sessions.GetStreamSnapshot(c.Request.Context(), streamID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetStreamHandler: error retrieving stream", map[string]any{"stream_id": streamID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToStreamResponse(snap), "stream retrieved successfully")
}

// StartStreamHandler handles POST /streams/:stream_id/start
func (h *LiveHandler) StartStreamHandler(c *gin.Context) {
	h.streamTransition(c, "StartStreamHandler", h.sessions.StartStream, false)
}

// EndStreamHandler handles POST /streams/:stream_id/end
func (h *LiveHandler) EndStreamHandler(c *gin.Context) {
	h.streamTransition(c, "EndStreamHandler", h.sessions.EndStream, true)
}

// CancelStreamHandler handles POST /streams/:stream_id/cancel
func (h *LiveHandler) CancelStreamHandler(c *gin.Context) {
	h.streamTransition(c, "CancelStreamHandler", h.sessions.CancelStream, true)
}

// streamTransition applies op and, when it took effect, tells the room.
// Terminal transitions close the room after the final status.
func (h *LiveHandler) streamTransition(
	c *gin.Context,
	handlerName string,
	op func(context.Context, string) (session.StreamResult, error),
	closesRoom bool,
) {
	streamID := c.Param("stream_id")
	result, err := op(c.Request.Context(), streamID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn(handlerName+": transition failed", map[string]any{"stream_id": streamID, "error": err.Error()})
		return
	}

	message := fmt.Sprintf("stream unchanged, status is %s", result.Snapshot.Status)
	if result.Changed {
		if closesRoom {
			h.broadcaster.CloseStream(result.Snapshot)
		} else {
			h.broadcaster.PublishStream(result.Snapshot)
		}
		message = fmt.Sprintf("stream is now %s", result.Snapshot.Status)
	}

	utils.JSONResponse(c, http.StatusOK, helpers.StreamTransitionResponse{
		Changed: result.Changed,
		Stream:  helpers.ToStreamResponse(result.Snapshot),
	}, message)
	helpers.LogSuccess(handlerName, message, map[string]any{
		"stream_id": streamID,
		"changed":   result.Changed,
	})
}

// HealthHandler handles GET /health
func (h *LiveHandler) HealthHandler(c *gin.Context) {
	utils.JSONResponse(c, http.StatusOK, gin.H{"rooms": h.hub.RoomCount()}, "ok")
}

func auctionTransition(result session.AuctionResult) helpers.AuctionTransitionResponse {
	resp := helpers.AuctionTransitionResponse{
		Changed: result.Changed,
		Sold:    result.Sold,
		Winner:  result.Winner,
		Auction: helpers.ToAuctionResponse(result.Snapshot),
	}
	if result.Sold {
		price := result.FinalPrice.InexactFloat64()
		resp.FinalPrice = &price
	}
	return resp
}
