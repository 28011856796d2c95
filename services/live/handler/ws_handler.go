package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"live-auction/internal/hub"
	"live-auction/internal/liveerrors"
	model "live-auction/internal/models"
	"live-auction/services/live/helpers"
	"live-auction/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// AuctionSocketHandler handles GET /ws/auction/:auction_id
func (h *LiveHandler) AuctionSocketHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	ident, err := h.identity.Resolve(c.Request)
	if err != nil {
		h.refuse(c, "AuctionSocketHandler", err, map[string]any{"auction_id": auctionID})
		return
	}

	snap, err := h.bidding.GetAuctionSnapshot(c.Request.Context(), auctionID)
	if err != nil {
		h.refuse(c, "AuctionSocketHandler", err, map[string]any{"auction_id": auctionID})
		return
	}
	if !snap.Active {
		h.refuse(c, "AuctionSocketHandler", fmt.Errorf("auction %s: %w", auctionID, liveerrors.ErrNotLive), map[string]any{"auction_id": auctionID})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.Warn("AuctionSocketHandler: websocket upgrade failed", map[string]any{"auction_id": auctionID, "error": err.Error()})
		return
	}

	client := newClient(h.hub, hub.AuctionRoom(auctionID), ident, conn, h.wsCfg)
	h.hub.Join(client.room, client)
	go client.WritePump()

	// initial state goes to the whole room, read after joining so the
	// versioned publish cannot hide a newer update from the joiner
	ctx, cancel := context.WithTimeout(context.Background(), messageTimeout)
	current, err := h.bidding.GetAuctionSnapshot(ctx, auctionID)
	cancel()
	switch {
	case err != nil:
		utils.Warn("AuctionSocketHandler: initial snapshot failed", map[string]any{"auction_id": auctionID, "error": err.Error()})
	case !current.Active:
		// ended between the check and the join; its room may already be closed
		h.broadcaster.CloseAuction(current)
		utils.Info("AuctionSocketHandler: auction ended while joining", map[string]any{"auction_id": auctionID, "client_id": client.ID()})
		return
	default:
		h.broadcaster.PublishAuction(current)
	}

	helpers.LogSuccess("AuctionSocketHandler", "client joined auction room", map[string]any{
		"auction_id": auctionID,
		"client_id":  client.ID(),
		"user_id":    ident.UserID,
		"guest":      ident.Guest,
	})

	go client.ReadPump(h.handleAuctionMessage)
}

// StreamSocketHandler handles GET /ws/live/:stream_id
func (h *LiveHandler) StreamSocketHandler(c *gin.Context) {
	streamID := c.Param("stream_id")

	ident, err := h.identity.Resolve(c.Request)
	if err != nil {
		h.refuse(c, "StreamSocketHandler", err, map[string]any{"stream_id": streamID})
		return
	}

	snap, err := h.sessions.GetStreamSnapshot(c.Request.Context(), streamID)
	if err != nil {
		h.refuse(c, "StreamSocketHandler", err, map[string]any{"stream_id": streamID})
		return
	}
	if snap.Status != model.StreamLive {
		h.refuse(c, "StreamSocketHandler", fmt.Errorf("stream %s is %s: %w", streamID, snap.Status, liveerrors.ErrNotLive), map[string]any{"stream_id": streamID})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.Warn("StreamSocketHandler: websocket upgrade failed", map[string]any{"stream_id": streamID, "error": err.Error()})
		return
	}

	client := newClient(h.hub, hub.StreamRoom(streamID), ident, conn, h.wsCfg)
	h.hub.Join(client.room, client)
	go client.WritePump()

	ctx, cancel := context.WithTimeout(context.Background(), messageTimeout)
	current, err := h.sessions.GetStreamSnapshot(ctx, streamID)
	cancel()
	switch {
	case err != nil:
		utils.Warn("StreamSocketHandler: initial snapshot failed", map[string]any{"stream_id": streamID, "error": err.Error()})
	case current.Status != model.StreamLive:
		h.broadcaster.CloseStream(current)
		utils.Info("StreamSocketHandler: stream closed while joining", map[string]any{"stream_id": streamID, "client_id": client.ID()})
		return
	default:
		h.broadcaster.PublishStream(current)
	}

	helpers.LogSuccess("StreamSocketHandler", "client joined stream room", map[string]any{
		"stream_id": streamID,
		"client_id": client.ID(),
		"user_id":   ident.UserID,
		"guest":     ident.Guest,
	})

	go client.ReadPump(h.handleStreamMessage)
}

// refuse answers a connect attempt without upgrading, so nothing joins
func (h *LiveHandler) refuse(c *gin.Context, handlerName string, err error, fields map[string]any) {
	status, message := helpers.MapErrorToHTTP(err)
	if status == http.StatusOK {
		status = http.StatusNotFound
	}
	utils.AbortJSONError(c, status, err, message)
	fields["error"] = err.Error()
	utils.Warn(handlerName+": connect refused", fields)
}

func (h *LiveHandler) handleAuctionMessage(client *Client, raw []byte) {
	var base helpers.BaseMessage
	if err := json.Unmarshal(raw, &base); err != nil {
		client.SendMessage(helpers.NewErrorMessage(helpers.ErrCodeBadRequest, "Invalid message format"))
		return
	}

	switch base.Type {
	case helpers.MsgTypePlaceBid:
		h.handlePlaceBid(client, raw)
	case helpers.MsgTypePing:
		client.SendMessage(helpers.NewPongMessage())
	default:
		client.SendMessage(helpers.NewErrorMessage(helpers.ErrCodeBadRequest, "Unknown message type"))
	}
}

func (h *LiveHandler) handlePlaceBid(client *Client, raw []byte) {
	var msg helpers.PlaceBidMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		client.SendMessage(helpers.NewErrorMessage(helpers.ErrCodeBadRequest, "Invalid place_bid message"))
		return
	}
	if msg.Amount == nil {
		client.SendMessage(helpers.NewErrorMessage(helpers.ErrCodeBadRequest, "amount is required"))
		return
	}

	userID := strings.TrimSpace(string(msg.UserID))
	switch {
	case client.identity.Guest && !h.identity.Anonymous():
		client.SendMessage(helpers.NewErrorMessage(helpers.ErrCodeUnauthorized, "sign in to bid"))
		return
	case userID == "" && client.identity.Guest:
		client.SendMessage(helpers.NewErrorMessage(helpers.ErrCodeUnauthorized, "user_id is required to bid"))
		return
	case userID == "":
		userID = client.identity.UserID
	case !client.identity.Guest && userID != client.identity.UserID:
		client.SendMessage(helpers.NewErrorMessage(helpers.ErrCodeUnauthorized, "cannot bid on behalf of another user"))
		return
	}

	auctionID := client.room.ID
	ctx, cancel := context.WithTimeout(context.Background(), messageTimeout)
	defer cancel()

	result, err := h.bidding.PlaceBid(ctx, auctionID, userID, *msg.Amount)
	if err != nil {
		code, message := helpers.MapErrorToWS(err)
		client.SendMessage(helpers.NewErrorMessage(code, message))
		utils.Error("handlePlaceBid: failed to place bid", map[string]any{
			"auction_id": auctionID,
			"user_id":    userID,
			"client_id":  client.ID(),
			"error":      err.Error(),
		})
		return
	}

	client.SendMessage(helpers.NewBidResponse(result.Accepted, result.Reason, result.Snapshot.CurrentPrice))
	if !result.Accepted {
		utils.Debug("handlePlaceBid: bid rejected", map[string]any{
			"auction_id": auctionID,
			"user_id":    userID,
			"amount":     msg.Amount.String(),
			"reason":     result.Reason,
		})
		return
	}

	h.broadcaster.PublishAuction(result.Snapshot)
	helpers.LogSuccess("handlePlaceBid", "bid accepted", map[string]any{
		"auction_id": auctionID,
		"user_id":    userID,
		"bid_id":     result.Bid.BidID,
		"amount":     msg.Amount.String(),
		"extended":   result.Extended,
	})
}

func (h *LiveHandler) handleStreamMessage(client *Client, raw []byte) {
	var base helpers.BaseMessage
	if err := json.Unmarshal(raw, &base); err != nil {
		client.SendMessage(helpers.NewErrorMessage(helpers.ErrCodeBadRequest, "Invalid message format"))
		return
	}

	switch base.Type {
	case helpers.MsgTypeViewerCount:
		h.handleViewerCount(client, raw)
	case helpers.MsgTypeChatMessage:
		h.handleChat(client, raw)
	case helpers.MsgTypePing:
		client.SendMessage(helpers.NewPongMessage())
	default:
		client.SendMessage(helpers.NewErrorMessage(helpers.ErrCodeBadRequest, "Unknown message type"))
	}
}

func (h *LiveHandler) handleViewerCount(client *Client, raw []byte) {
	var msg helpers.ViewerCountMessage
	if err := json.Unmarshal(raw, &msg); err != nil || msg.Count == nil {
		client.SendMessage(helpers.NewErrorMessage(helpers.ErrCodeBadRequest, "Invalid viewer_count message"))
		return
	}

	streamID := client.room.ID
	ctx, cancel := context.WithTimeout(context.Background(), messageTimeout)
	defer cancel()

	result, err := h.sessions.UpdateViewers(ctx, streamID, *msg.Count)
	if err != nil {
		code, message := helpers.MapErrorToWS(err)
		client.SendMessage(helpers.NewErrorMessage(code, message))
		utils.Warn("handleViewerCount: update failed", map[string]any{"stream_id": streamID, "error": err.Error()})
		return
	}

	if h.broadcastViewerUpdates {
		h.broadcaster.PublishStream(result.Snapshot)
	}
}

func (h *LiveHandler) handleChat(client *Client, raw []byte) {
	var msg helpers.ChatMessageIn
	if err := json.Unmarshal(raw, &msg); err != nil {
		client.SendMessage(helpers.NewErrorMessage(helpers.ErrCodeBadRequest, "Invalid chat_message"))
		return
	}
	if strings.TrimSpace(msg.Message) == "" {
		client.SendMessage(helpers.NewErrorMessage(helpers.ErrCodeBadRequest, "message is required"))
		return
	}

	streamID := client.room.ID
	ctx, cancel := context.WithTimeout(context.Background(), messageTimeout)
	defer cancel()

	snap, err := h.sessions.GetStreamSnapshot(ctx, streamID)
	if err != nil {
		code, message := helpers.MapErrorToWS(err)
		client.SendMessage(helpers.NewErrorMessage(code, message))
		return
	}
	if !snap.AllowChat {
		client.SendMessage(helpers.NewErrorMessage(helpers.ErrCodeChatDisabled, "chat is disabled for this stream"))
		return
	}

	username := msg.Username
	if username == "" {
		username = client.identity.Username
	}

	h.broadcaster.PublishChat(client.room, helpers.NewChatMessage(msg.Message, username, client.identity.UserID, h.now()))
}
