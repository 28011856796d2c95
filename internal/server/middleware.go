package server

import (
	"strings"
	"time"

	"live-auction/utils"

	"github.com/gin-gonic/gin"
)

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()
	path := c.Request.URL.Path

	c.Next() // process request

	fields := map[string]any{
		"method":  c.Request.Method,
		"path":    path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	}

	// websocket requests return once the connection is handed off
	if strings.HasPrefix(path, "/ws/") {
		utils.Debug("WebSocket handshake", fields)
		return
	}
	if path == "/metrics" || path == "/health" {
		utils.Debug("HTTP Request", fields)
		return
	}
	utils.Info("HTTP Request", fields)
}
