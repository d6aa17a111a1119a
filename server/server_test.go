package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dylhunn/dragontoothmg"
)

func TestManagerLifecycle(t *testing.T) {
	m := NewManager()
	g := m.NewGame("")
	if g.ID == "" {
		t.Fatalf("expected a session id")
	}
	startBoard := dragontoothmg.ParseFen(dragontoothmg.Startpos)
	if g.Board.ToFen() != startBoard.ToFen() {
		t.Fatalf("expected the initial position, got %s", g.Board.ToFen())
	}

	got, err := m.Get(g.ID)
	if err != nil || got != g {
		t.Fatalf("lookup failed: %v", err)
	}
	if _, err := m.Get("nope"); err != ErrGameNotFound {
		t.Fatalf("expected ErrGameNotFound, got %v", err)
	}

	g2 := m.NewGame("")
	games := m.List()
	if len(games) != 2 {
		t.Fatalf("expected two sessions, got %d", len(games))
	}
	if games[0].ID != g.ID || games[1].ID != g2.ID {
		t.Fatalf("expected oldest-first ordering")
	}

	m.Remove(g.ID)
	if _, err := m.Get(g.ID); err == nil {
		t.Fatalf("expected the session to be gone")
	}
}

func TestStatus(t *testing.T) {
	board := dragontoothmg.ParseFen(dragontoothmg.Startpos)
	if s := status(&board); s != "ongoing" {
		t.Fatalf("expected ongoing, got %s", s)
	}
	board = dragontoothmg.ParseFen("R5k1/5ppp/8/8/8/8/5PPP/6K1 b - - 1 1")
	if s := status(&board); s != "mate" {
		t.Fatalf("expected mate, got %s", s)
	}
	board = dragontoothmg.ParseFen("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	if s := status(&board); s != "stalemate" {
		t.Fatalf("expected stalemate, got %s", s)
	}
}

func TestLegalMove(t *testing.T) {
	board := dragontoothmg.ParseFen(dragontoothmg.Startpos)
	if _, err := legalMove(&board, "e2e4"); err != nil {
		t.Fatalf("expected e2e4 to be legal: %v", err)
	}
	if _, err := legalMove(&board, "e2e5"); err == nil {
		t.Fatalf("expected e2e5 to be rejected")
	}
	if _, err := legalMove(&board, "zzzz"); err == nil {
		t.Fatalf("expected garbage to be rejected")
	}
}

func TestHandlersMateInOneFlow(t *testing.T) {
	srv := New()
	router := srv.Router()

	// Create a session one move from mate.
	body, _ := json.Marshal(createRequest{FEN: "6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1"})
	req := httptest.NewRequest("POST", "/api/games/", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}
	var created gameDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("create: bad response: %v", err)
	}
	if created.NextPlayer != "white" || created.Status != "ongoing" {
		t.Fatalf("create: unexpected state: %+v", created)
	}

	// An illegal move is refused.
	body, _ = json.Marshal(moveRequest{Move: "a1a9"})
	req = httptest.NewRequest("POST", "/api/games/"+created.ID+"/move", bytes.NewReader(body))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("illegal move: expected 400, got %d", rec.Code)
	}

	// The mating move ends the game; the engine has nothing to answer.
	body, _ = json.Marshal(moveRequest{Move: "a1a8"})
	req = httptest.NewRequest("POST", "/api/games/"+created.ID+"/move", bytes.NewReader(body))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("move: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	var after gameDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &after); err != nil {
		t.Fatalf("move: bad response: %v", err)
	}
	if after.Status != "mate" {
		t.Fatalf("expected mate after a1a8, got %+v", after)
	}

	// The finished game is still fetchable.
	req = httptest.NewRequest("GET", "/api/games/"+created.ID+"/", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("get: expected 200, got %d", rec.Code)
	}

	req = httptest.NewRequest("GET", "/api/games/unknown/", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("get unknown: expected 404, got %d", rec.Code)
	}
}
