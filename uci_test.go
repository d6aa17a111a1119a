package main

import (
	"strings"
	"testing"

	"ferz/engine"
)

func TestParsePositionStartposWithMoves(t *testing.T) {
	board, err := parsePosition(strings.Fields("startpos moves e2e4 e7e5"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !board.Wtomove {
		t.Fatalf("expected white to move after two half-moves")
	}
	if !strings.Contains(board.ToFen(), "4p3/4P3") {
		t.Fatalf("unexpected position: %s", board.ToFen())
	}
}

func TestParsePositionFen(t *testing.T) {
	board, err := parsePosition(strings.Fields("fen 6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !board.Wtomove {
		t.Fatalf("expected white to move")
	}
	if n := len(board.GenerateLegalMoves()); n == 0 {
		t.Fatalf("expected legal moves")
	}
}

func TestParsePositionRejectsGarbage(t *testing.T) {
	if _, err := parsePosition(strings.Fields("carlsbad")); err == nil {
		t.Fatalf("expected an error for an unknown position keyword")
	}
	if _, err := parsePosition(nil); err == nil {
		t.Fatalf("expected an error for an empty command")
	}
}

func TestParseGo(t *testing.T) {
	params := parseGo(strings.Fields("wtime 60000 btime 50000 winc 1000 binc 2000 depth 3"))
	if params.wtime != 60000 || params.btime != 50000 {
		t.Fatalf("clock parsing failed: %+v", params)
	}
	if params.winc != 1000 || params.binc != 2000 {
		t.Fatalf("increment parsing failed: %+v", params)
	}
	if params.depth != 3 {
		t.Fatalf("depth parsing failed: %+v", params)
	}
}

func TestSearchBudgetPrefersMovetime(t *testing.T) {
	board, err := parsePosition([]string{"startpos"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	seconds, depth := searchBudget(&board, goParams{movetime: 2500, wtime: 60000, depth: 4})
	if seconds != 2.5 {
		t.Fatalf("expected 2.5s from movetime, got %f", seconds)
	}
	if depth != 4 {
		t.Fatalf("expected depth 4, got %d", depth)
	}
}

func TestSearchBudgetUsesClock(t *testing.T) {
	board, err := parsePosition([]string{"startpos"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	seconds, _ := searchBudget(&board, goParams{wtime: 60000, winc: 1000})
	want := engine.ManageTime(60000, 1000) * engine.ScaleTime
	if seconds != want {
		t.Fatalf("expected %f from the time manager, got %f", want, seconds)
	}
}

func TestApplyOption(t *testing.T) {
	prev := engine.OrderBuckets
	defer func() { engine.OrderBuckets = prev }()

	if err := applyOption(strings.Fields("name OrderBuckets value 7")); err != nil {
		t.Fatalf("setoption: %v", err)
	}
	if engine.OrderBuckets != 7 {
		t.Fatalf("expected OrderBuckets 7, got %d", engine.OrderBuckets)
	}
	if err := applyOption(strings.Fields("name NoSuchOption value 1")); err == nil {
		t.Fatalf("expected an error for an unknown option")
	}
}
