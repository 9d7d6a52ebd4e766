package server

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	sendBuffer = 4
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1 << 16,
	// The dev server is local; renderers may be served from another port.
	CheckOrigin: func(*http.Request) bool { return true },
}

// sceneMessage is what websocket clients receive on every publish.
func sceneMessage(snap *Snapshot) ([]byte, error) {
	return json.Marshal(map[string]any{
		"type":    "scene",
		"version": snap.Version,
		"config":  snap.Config,
		"scene":   snap.Scene,
	})
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// hub fans published scenes out to connected websocket clients. Slow
// clients that fall a full buffer behind are dropped.
type hub struct {
	mu      sync.Mutex
	clients map[*client]struct{}
}

func newHub() *hub {
	return &hub{clients: make(map[*client]struct{})}
}

// join registers c and queues initial for it atomically with respect to
// broadcasts, so c never misses a publish.
func (h *hub) join(c *client, initial func() []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if msg := initial(); msg != nil {
		c.send <- msg
	}
	h.clients[c] = struct{}{}
}

func (h *hub) leave(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
}

func (h *hub) broadcast(msg []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		select {
		case c.send <- msg:
		default:
			delete(h.clients, c)
			close(c.send)
		}
	}
}

func (h *hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		delete(h.clients, c)
		close(c.send)
	}
}

func (h *hub) len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("websocket upgrade failed", "err", err)
		return
	}
	c := &client{conn: conn, send: make(chan []byte, sendBuffer)}

	s.hub.join(c, func() []byte {
		snap := s.current.Load()
		if snap == nil {
			return nil
		}
		msg, err := sceneMessage(snap)
		if err != nil {
			s.log.Error("encoding scene", "err", err)
			return nil
		}
		return msg
	})
	s.log.Debug("websocket client connected", "remote", r.RemoteAddr)

	go s.writePump(c)

	// Drain reads so control frames are handled and closes are noticed.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	s.hub.leave(c)
	s.log.Debug("websocket client disconnected", "remote", r.RemoteAddr)
}

func (s *Server) writePump(c *client) {
	defer c.conn.Close()
	for msg := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			s.log.Debug("websocket write failed", "err", err)
			return
		}
	}
	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}
