package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dylhunn/dragontoothmg"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"ferz/engine"
)

// Server exposes play sessions over HTTP and relays moves over websockets.
// The engine's tables are process-wide and the search is single-threaded,
// so searchMu serializes every BestMove call regardless of how many games
// run at once.
type Server struct {
	manager  *Manager
	hub      *hub
	searchMu sync.Mutex
}

func New() *Server {
	return &Server{
		manager: NewManager(),
		hub:     newHub(),
	}
}

type gameDTO struct {
	ID         string `json:"id"`
	FEN        string `json:"fen"`
	NextPlayer string `json:"next_player"`
	Status     string `json:"status"`
	CreatedAt  int64  `json:"created_at_ms"`
	UpdatedAt  int64  `json:"updated_at_ms"`
}

type createRequest struct {
	FEN string `json:"fen"`
}

type moveRequest struct {
	Move string `json:"move"`
}

type moveEvent struct {
	GameID string `json:"game_id"`
	Move   string `json:"move"`
	By     string `json:"by"`
	FEN    string `json:"fen"`
	Status string `json:"status"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Route("/api/games", func(r chi.Router) {
		r.Post("/", s.handleCreate)
		r.Get("/", s.handleList)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.handleGet)
			r.Post("/move", s.handleMove)
			r.Get("/ws", s.handleWS)
		})
	})
	return r
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func gameToDTO(g *Game) gameDTO {
	next := "black"
	if g.Board.Wtomove {
		next = "white"
	}
	return gameDTO{
		ID:         g.ID,
		FEN:        g.Board.ToFen(),
		NextPlayer: next,
		Status:     status(&g.Board),
		CreatedAt:  g.CreatedAt.UnixMilli(),
		UpdatedAt:  g.UpdatedAt.UnixMilli(),
	}
}

// status reports mate, stalemate or ongoing for the side to move.
func status(b *dragontoothmg.Board) string {
	if len(b.GenerateLegalMoves()) > 0 {
		return "ongoing"
	}
	if b.OurKingInCheck() {
		return "mate"
	}
	return "stalemate"
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if r.Body != nil {
		// An empty body means a game from the initial position.
		json.NewDecoder(r.Body).Decode(&req)
	}
	g := s.manager.NewGame(req.FEN)
	log.Info().Str("game", g.ID).Msg("game created")
	writeJSON(w, http.StatusCreated, gameToDTO(g))
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	games := s.manager.List()
	out := make([]gameDTO, 0, len(games))
	for _, g := range games {
		out = append(out, gameToDTO(g))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	g, err := s.manager.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, gameToDTO(g))
}

// handleMove applies the client's move; if the game is still running the
// engine answers with its own move, and both are relayed to the session's
// subscribers.
func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	g, err := s.manager.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
		return
	}
	var req moveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed request"})
		return
	}

	move, err := legalMove(&g.Board, req.Move)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	g.Board.Apply(move)
	s.manager.Touch(g.ID)
	s.hub.broadcast(g.ID, moveEvent{
		GameID: g.ID,
		Move:   move.String(),
		By:     "client",
		FEN:    g.Board.ToFen(),
		Status: status(&g.Board),
	})

	if status(&g.Board) != "ongoing" {
		writeJSON(w, http.StatusOK, gameToDTO(g))
		return
	}

	s.searchMu.Lock()
	reply, nodes := engine.BestMove(&g.Board, engine.MaxTime, engine.SearchDepth)
	s.searchMu.Unlock()
	if reply == engine.EmptyMove {
		writeJSON(w, http.StatusOK, gameToDTO(g))
		return
	}
	g.Board.Apply(reply)
	s.manager.Touch(g.ID)
	log.Info().
		Str("game", g.ID).
		Str("move", reply.String()).
		Uint64("nodes", nodes).
		Msg("engine replied")
	s.hub.broadcast(g.ID, moveEvent{
		GameID: g.ID,
		Move:   reply.String(),
		By:     "engine",
		FEN:    g.Board.ToFen(),
		Status: status(&g.Board),
	})
	writeJSON(w, http.StatusOK, gameToDTO(g))
}

// legalMove parses a LAN move and matches it against the legal moves of the
// position, so only strictly legal input reaches the board.
func legalMove(b *dragontoothmg.Board, lan string) (dragontoothmg.Move, error) {
	parsed, err := dragontoothmg.ParseMove(lan)
	if err != nil {
		return 0, errors.New("unparseable move")
	}
	for _, m := range b.GenerateLegalMoves() {
		if m == parsed {
			return m, nil
		}
	}
	return 0, errors.New("illegal move")
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := s.manager.Get(id); err != nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
		return
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Debug().Err(err).Msg("websocket upgrade failed")
		return
	}
	s.hub.add(id, conn)
	log.Info().Str("game", id).Msg("subscriber connected")
	go func() {
		defer func() {
			s.hub.remove(id, conn)
			conn.Close()
			log.Info().Str("game", id).Msg("subscriber disconnected")
		}()
		for {
			// Subscribers only listen; the read loop exists to notice the
			// close frame.
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// Serve runs the HTTP server until SIGINT/SIGTERM, then shuts down
// gracefully.
func Serve(addr string) error {
	srv := &http.Server{
		Addr:    addr,
		Handler: New().Router(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", addr).Msg("play server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
