package server

import (
	"errors"
	"sync"
	"time"

	"github.com/dylhunn/dragontoothmg"
	"github.com/google/uuid"
	"golang.org/x/exp/slices"
)

// ErrGameNotFound is returned for lookups of unknown or expired sessions.
var ErrGameNotFound = errors.New("game not found")

// Game is one play session. Board access is guarded by the manager's lock;
// the engine itself is serialized separately by the Server.
type Game struct {
	ID        string
	Board     dragontoothmg.Board
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Manager owns the live sessions, keyed by uuid.
type Manager struct {
	mu    sync.RWMutex
	games map[string]*Game
}

func NewManager() *Manager {
	return &Manager{games: make(map[string]*Game)}
}

// NewGame creates a session from the given FEN, or the initial position
// when fen is empty.
func (m *Manager) NewGame(fen string) *Game {
	if fen == "" {
		fen = dragontoothmg.Startpos
	}
	board := dragontoothmg.ParseFen(fen)

	m.mu.Lock()
	defer m.mu.Unlock()
	g := &Game{
		ID:        uuid.NewString(),
		Board:     board,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	m.games[g.ID] = g
	return g
}

func (m *Manager) Get(id string) (*Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	if !ok {
		return nil, ErrGameNotFound
	}
	return g, nil
}

// List returns the sessions, oldest first.
func (m *Manager) List() []*Game {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*Game, 0, len(m.games))
	for _, g := range m.games {
		out = append(out, g)
	}
	slices.SortFunc(out, func(a, b *Game) bool {
		return a.CreatedAt.Before(b.CreatedAt)
	})
	return out
}

func (m *Manager) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.games, id)
}

// Touch bumps the session's update time after a move.
func (m *Manager) Touch(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if g, ok := m.games[id]; ok {
		g.UpdatedAt = time.Now()
	}
}
