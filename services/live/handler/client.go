package handler

import (
	"encoding/json"
	"sync"
	"time"

	"live-auction/internal/config"
	"live-auction/internal/hub"
	"live-auction/internal/identity"
	"live-auction/utils"

	"github.com/gorilla/websocket"
)

// Client is one websocket connection joined to exactly one room
type Client struct {
	id       string
	room     hub.RoomKey
	identity identity.Identity
	hub      *hub.Hub
	conn     *websocket.Conn
	send     chan []byte
	done     chan struct{}
	once     sync.Once
	config   config.WebSocketConfig
}

func newClient(h *hub.Hub, room hub.RoomKey, ident identity.Identity, conn *websocket.Conn, cfg config.WebSocketConfig) *Client {
	buffer := cfg.SendBuffer
	if buffer <= 0 {
		buffer = 256
	}
	if cfg.PingInterval <= 0 {
		cfg.PingInterval = 30 * time.Second
	}
	if cfg.PongWait <= 0 {
		cfg.PongWait = 60 * time.Second
	}
	if cfg.WriteWait <= 0 {
		cfg.WriteWait = 10 * time.Second
	}
	return &Client{
		id:       utils.GenerateID(),
		room:     room,
		identity: ident,
		hub:      h,
		conn:     conn,
		send:     make(chan []byte, buffer),
		done:     make(chan struct{}),
		config:   cfg,
	}
}

func (c *Client) ID() string { return c.id }

// Enqueue queues a frame without blocking; false means the queue is full or closed
func (c *Client) Enqueue(frame []byte) bool {
	select {
	case <-c.done:
		return false
	default:
	}

	select {
	case c.send <- frame:
		return true
	default:
		return false
	}
}

// Close stops the client; the write pump flushes what is queued and closes the socket
func (c *Client) Close() {
	c.once.Do(func() {
		close(c.done)
	})
}

// SendMessage unicasts a message to this client only. A full queue drops it.
func (c *Client) SendMessage(message any) {
	data, err := json.Marshal(message)
	if err != nil {
		utils.Error("client: failed to marshal message", map[string]any{"client_id": c.id, "error": err.Error()})
		return
	}
	if !c.Enqueue(data) {
		utils.Debug("client: dropped unicast to closed or full client", map[string]any{"client_id": c.id})
	}
}

// ReadPump reads frames until the connection fails, then leaves the room
func (c *Client) ReadPump(handle func(*Client, []byte)) {
	defer func() {
		c.hub.Leave(c.room, c)
		c.Close()
		c.conn.Close()
	}()

	if c.config.MaxMessageSize > 0 {
		c.conn.SetReadLimit(c.config.MaxMessageSize)
	}
	c.conn.SetReadDeadline(time.Now().Add(c.config.PongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(c.config.PongWait))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure, websocket.CloseNormalClosure) {
				utils.Warn("client: websocket read error", map[string]any{
					"client_id": c.id,
					"room":      c.room.String(),
					"error":     err.Error(),
				})
			}
			return
		}

		handle(c, message)
	}
}

// WritePump owns every write on the connection
func (c *Client) WritePump() {
	ticker := time.NewTicker(c.config.PingInterval)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message := <-c.send:
			if err := c.write(message); err != nil {
				c.Close()
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(c.config.WriteWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.Close()
				return
			}

		case <-c.done:
			c.flush()
			c.conn.SetWriteDeadline(time.Now().Add(c.config.WriteWait))
			c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		}
	}
}

// flush writes frames that were queued before the client was closed
func (c *Client) flush() {
	for {
		select {
		case message := <-c.send:
			if err := c.write(message); err != nil {
				return
			}
		default:
			return
		}
	}
}

func (c *Client) write(message []byte) error {
	c.conn.SetWriteDeadline(time.Now().Add(c.config.WriteWait))
	return c.conn.WriteMessage(websocket.TextMessage, message)
}
