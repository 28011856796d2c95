package server

import (
	"live-auction/services/live/handler"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(liveHandler *handler.LiveHandler) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	auctions := router.Group("/auctions")
	{
		auctions.GET("/:auction_id", liveHandler.GetAuctionHandler)
		auctions.GET("/:auction_id/bids", liveHandler.GetBidsByAuctionHandler)
		auctions.POST("/:auction_id/end", liveHandler.EndAuctionHandler)
		auctions.POST("/:auction_id/extend", liveHandler.ExtendAuctionHandler)
	}

	users := router.Group("/users")
	{
		users.GET("/:user_id/auctions", liveHandler.GetAuctionsByUserHandler)
	}

	streams := router.Group("/streams")
	{
		streams.GET("/:stream_id", liveHandler.GetStreamHandler)
		streams.POST("/:stream_id/start", liveHandler.StartStreamHandler)
		streams.POST("/:stream_id/end", liveHandler.EndStreamHandler)
		streams.POST("/:stream_id/cancel", liveHandler.CancelStreamHandler)
	}

	ws := router.Group("/ws")
	{
		ws.GET("/auction/:auction_id", liveHandler.AuctionSocketHandler)
		ws.GET("/live/:stream_id", liveHandler.StreamSocketHandler)
	}

	router.GET("/health", liveHandler.HealthHandler)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}
