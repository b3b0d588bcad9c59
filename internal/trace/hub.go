package trace

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"

	"github.com/gorilla/websocket"

	"github.com/thelolagemann/gbcore/internal/cpu"
)

// Hub streams trace lines to websocket clients. Tracing never blocks
// the CPU: lines are dropped when the hub can't keep up, and clients
// that can't keep up are disconnected.
type Hub struct {
	clients  map[*client]struct{}
	greeting []byte

	broadcast            chan []byte
	register, unregister chan *client
	done                 chan struct{}

	dropped atomic.Uint64
}

// NewHub returns a Hub which sends greeting to each client as it
// connects. Run must be called for the hub to serve clients.
func NewHub(greeting string) *Hub {
	return &Hub{
		clients:    make(map[*client]struct{}),
		greeting:   []byte(greeting),
		broadcast:  make(chan []byte, 1024),
		register:   make(chan *client),
		unregister: make(chan *client),
		done:       make(chan struct{}),
	}
}

// Trace queues the trace line of e for every connected client.
func (h *Hub) Trace(e cpu.Event) {
	select {
	case h.broadcast <- []byte(e.Line()):
	default:
		h.dropped.Add(1)
	}
}

// Dropped returns the number of lines dropped because the hub was
// busy.
func (h *Hub) Dropped() uint64 {
	return h.dropped.Load()
}

// Run handles client registration and broadcasting until ctx is done,
// then disconnects every client.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			for c := range h.clients {
				h.remove(c)
			}
			return
		case c := <-h.register:
			h.clients[c] = struct{}{}
			if len(h.greeting) > 0 {
				c.send <- h.greeting
			}
		case c := <-h.unregister:
			h.remove(c)
		case msg := <-h.broadcast:
			for c := range h.clients {
				select {
				case c.send <- msg:
				default:
					h.remove(c)
				}
			}
		}
	}
}

func (h *Hub) remove(c *client) {
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024 * 16,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// ServeHTTP upgrades the connection to a websocket and registers the
// client with the hub.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return // the upgrader has already replied
	}

	c := &client{hub: h, conn: conn, send: make(chan []byte, 256)}
	select {
	case h.register <- c:
	case <-h.done:
		conn.Close()
		return
	}

	go c.readPump()
	go c.writePump()
}

// ListenAndServe runs the hub and serves it on addr until ctx is done.
func (h *Hub) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: h}
	go h.Run(ctx)
	go func() {
		<-ctx.Done()
		srv.Close()
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

type client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

// readPump discards incoming messages, unregistering the client once
// the connection is closed.
func (c *client) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		c.conn.Close()
	}()

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return // connection closed
		}
	}
}

// writePump writes queued lines to the connection until the hub closes
// the send channel.
func (c *client) writePump() {
	defer c.conn.Close()

	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}
