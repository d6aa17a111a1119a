package server

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// hub relays move events to every websocket subscribed to a session. It is
// the original relay-server behavior: whatever happens in a game is pushed
// to everyone else watching it.
type hub struct {
	mu   sync.Mutex
	subs map[string]map[*websocket.Conn]bool
}

func newHub() *hub {
	return &hub{subs: make(map[string]map[*websocket.Conn]bool)}
}

func (h *hub) add(gameID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.subs[gameID] == nil {
		h.subs[gameID] = make(map[*websocket.Conn]bool)
	}
	h.subs[gameID][conn] = true
}

func (h *hub) remove(gameID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.subs[gameID], conn)
	if len(h.subs[gameID]) == 0 {
		delete(h.subs, gameID)
	}
}

// broadcast sends the event to all subscribers of the game. Dead
// connections are dropped from the set instead of failing the sender.
func (h *hub) broadcast(gameID string, v interface{}) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.subs[gameID] {
		if err := conn.WriteJSON(v); err != nil {
			log.Debug().Err(err).Str("game", gameID).Msg("dropping subscriber")
			conn.Close()
			delete(h.subs[gameID], conn)
		}
	}
}

func (h *hub) closeGame(gameID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.subs[gameID] {
		conn.Close()
	}
	delete(h.subs, gameID)
}
