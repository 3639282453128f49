package server

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/sirupsen/logrus"

	"github.com/SAMIC97/Christmas-Jeopardy/internal/game"
)

const (
	// clientSendBuffer is how many queued events a client may fall behind
	// before it is dropped.
	clientSendBuffer = 64

	writeTimeout = 5 * time.Second
)

// client is one connected display or controller.
type client struct {
	conn *websocket.Conn
	send chan []byte
}

// writePump drains the client's send queue onto its connection. It exits when
// the queue closes or a write fails.
func (c *client) writePump() {
	for data := range c.send {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		err := c.conn.Write(ctx, websocket.MessageText, data)
		cancel()
		if err != nil {
			c.conn.Close(websocket.StatusAbnormalClosure, "write failed")
			return
		}
	}
	c.conn.Close(websocket.StatusNormalClosure, "")
}

// Hub fans game events out to every connected client.
type Hub struct {
	mu      sync.Mutex
	clients map[*client]struct{}
	log     *logrus.Entry
}

// NewHub returns an empty hub.
func NewHub() *Hub {
	return &Hub{
		clients: make(map[*client]struct{}),
		log:     logrus.WithField("component", "hub"),
	}
}

// add registers a connection and starts its write pump.
func (h *Hub) add(conn *websocket.Conn) *client {
	c := &client{
		conn: conn,
		send: make(chan []byte, clientSendBuffer),
	}
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
	go c.writePump()
	return c
}

// remove unregisters a client and closes its send queue.
func (h *Hub) remove(c *client) {
	h.mu.Lock()
	_, ok := h.clients[c]
	delete(h.clients, c)
	h.mu.Unlock()
	if ok {
		close(c.send)
	}
}

// Broadcast queues an event for every connected client. A client whose queue
// is full is disconnected rather than allowed to stall the others.
func (h *Hub) Broadcast(ev game.GameEvent) {
	data, err := json.Marshal(ev)
	if err != nil {
		h.log.WithError(err).Errorf("cannot marshal event type %s", ev.Type)
		return
	}

	h.mu.Lock()
	var stalled []*client
	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			stalled = append(stalled, c)
		}
	}
	h.mu.Unlock()

	for _, c := range stalled {
		h.log.Warn("dropping stalled client")
		h.remove(c)
	}
}

// sendTo queues an event for a single client, typically the initial snapshot.
func (h *Hub) sendTo(c *client, ev game.GameEvent) {
	data, err := json.Marshal(ev)
	if err != nil {
		h.log.WithError(err).Errorf("cannot marshal event type %s", ev.Type)
		return
	}
	select {
	case c.send <- data:
	default:
	}
}

// count returns the number of connected clients.
func (h *Hub) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}
