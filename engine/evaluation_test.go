package engine

import (
	"testing"

	"github.com/dylhunn/dragontoothmg"
)

func TestEvalStartposIsBalanced(t *testing.T) {
	board := dragontoothmg.ParseFen(dragontoothmg.Startpos)
	if v := Eval(&board); v != 0 {
		t.Fatalf("expected 0 for the initial position, got %d", v)
	}
}

func TestEvalMaterial(t *testing.T) {
	// White is a single pawn up; neither king is bothered.
	board := dragontoothmg.ParseFen("4k3/8/8/8/8/8/P7/4K3 w - - 0 1")
	if v := Eval(&board); v != 100 {
		t.Fatalf("expected +100 for white to move, got %d", v)
	}

	// Same position from black's viewpoint.
	board = dragontoothmg.ParseFen("4k3/8/8/8/8/8/P7/4K3 b - - 0 1")
	if v := Eval(&board); v != -100 {
		t.Fatalf("expected -100 for black to move, got %d", v)
	}
}

func TestEvalKingSafety(t *testing.T) {
	// Black's queen leans on the white king: white is down the queen's
	// material and takes the king-safety penalty on top.
	board := dragontoothmg.ParseFen("4k3/8/8/8/8/8/4q3/4K3 w - - 0 1")
	if v := Eval(&board); v != -910 {
		t.Fatalf("expected -910, got %d", v)
	}
}

func TestEvalSideBreakdown(t *testing.T) {
	board := dragontoothmg.ParseFen(dragontoothmg.Startpos)
	// Full pawn rank: the positional terms kick in. Four minors parked on
	// the back rank cost 40, nothing reaches the center yet, no pawn
	// defends another.
	want := int32(800 - 40 + 4*MinorValue + 2*RookValue + QueenValue)
	if v := evalSide(&board, true); v != want {
		t.Fatalf("expected white side sum %d, got %d", want, v)
	}
	if w, b := evalSide(&board, true), evalSide(&board, false); w != b {
		t.Fatalf("initial position must be symmetric, got %d vs %d", w, b)
	}
}
