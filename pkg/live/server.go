//go:build !wasm
// +build !wasm

package live

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 54 * time.Second
	sendBuffer = 16
)

// Hub fans reload notifications out to every connected browser
type Hub struct {
	upgrader websocket.Upgrader
	sessions map[string]*Session
	mu       sync.RWMutex
	closed   bool
}

// Session is one connected browser tab
type Session struct {
	ID        string
	conn      *websocket.Conn
	sendChan  chan []byte
	closeChan chan struct{}
	closeOnce sync.Once
}

// NewHub creates an empty hub
func NewHub() *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			// The dev server only listens for local tabs
			CheckOrigin:     func(r *http.Request) bool { return true },
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		sessions: make(map[string]*Session),
	}
}

// ServeHTTP upgrades the request and registers the session
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	closed := h.closed
	h.mu.RUnlock()
	if closed {
		http.Error(w, "live reload stopped", http.StatusServiceUnavailable)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[Live] Failed to upgrade connection: %v", err)
		return
	}

	s := &Session{
		ID:        uuid.NewString(),
		conn:      conn,
		sendChan:  make(chan []byte, sendBuffer),
		closeChan: make(chan struct{}),
	}

	h.mu.Lock()
	h.sessions[s.ID] = s
	h.mu.Unlock()

	go s.writer()
	s.send(Message{Type: TypeHello, Target: s.ID})
	go h.reader(s)
}

// reader drains the socket so pongs and close frames are processed
func (h *Hub) reader(s *Session) {
	defer h.remove(s)

	s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		s.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := s.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[Live %s] Unexpected close: %v", s.ID, err)
			}
			return
		}
	}
}

func (s *Session) writer() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		s.conn.Close()
	}()

	for {
		select {
		case data := <-s.sendChan:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}

		case <-ticker.C:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-s.closeChan:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			s.conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"))
			return
		}
	}
}

// send queues a message without blocking; a full buffer drops it
func (s *Session) send(msg Message) bool {
	data, err := json.Marshal(msg)
	if err != nil {
		return false
	}
	select {
	case s.sendChan <- data:
		return true
	default:
		log.Printf("[Live %s] Send buffer full, dropping %s", s.ID, msg.Type)
		return false
	}
}

func (s *Session) close() {
	s.closeOnce.Do(func() { close(s.closeChan) })
}

func (h *Hub) remove(s *Session) {
	h.mu.Lock()
	delete(h.sessions, s.ID)
	h.mu.Unlock()
	s.close()
}

// Broadcast queues msg for every session and returns how many accepted it
func (h *Hub) Broadcast(msg Message) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	delivered := 0
	for _, s := range h.sessions {
		if s.send(msg) {
			delivered++
		}
	}
	return delivered
}

// Reload tells every client to reload because target changed
func (h *Hub) Reload(target string) int {
	return h.Broadcast(Message{Type: TypeReload, Target: target})
}

// Clients returns the number of connected sessions
func (h *Hub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}

// Close disconnects every session and refuses new ones
func (h *Hub) Close() {
	h.mu.Lock()
	h.closed = true
	sessions := h.sessions
	h.sessions = make(map[string]*Session)
	h.mu.Unlock()

	for _, s := range sessions {
		s.close()
	}
}
