package engine

import (
	"github.com/dylhunn/dragontoothmg"
)

// orderPrime drives the (prime*i + 1) mod N traversal of the bucket pass: a
// cheap deterministic shuffle that breaks tie-order bias without an RNG, so
// identical inputs always search identically.
const orderPrime = 439

// Scratch for the per-move scores; the search is one linear recursion, so a
// single package-level buffer is enough.
var moveVals [256]int32

// moveVal is the default scorer: promotions above captures above checks
// above everything else.
func moveVal(b *dragontoothmg.Board, m dragontoothmg.Move) int32 {
	if m.Promote() != 0 {
		return 2500
	}
	if dragontoothmg.IsCapture(m, b) {
		return 2000
	}
	if givesCheck(b, m) {
		return 1500
	}
	return 1000
}

// moveValRich is the killer/piece aware variant, enabled by UseRichOrdering.
// Killer hits outrank checks; quiet moves are ranked by mover, cheapest
// first, with a flat bonus for captures.
func moveValRich(b *dragontoothmg.Board, m dragontoothmg.Move, killer *[KillersPerPly]dragontoothmg.Move) int32 {
	for i := 0; i < KillersPerPly; i++ {
		if killer[i] != EmptyMove && killer[i] == m {
			return 2000
		}
	}
	if givesCheck(b, m) {
		return 1800
	}
	switch moveType(b, m) {
	case MovePromotion:
		return 1400
	case MoveCastling, MoveEnPassant:
		return 1300
	}
	var offset int32
	if dragontoothmg.IsCapture(m, b) {
		offset = 500
	}
	own, _ := sideBitboards(b)
	pieceType, _ := pieceTypeAt(m.From(), own)
	switch pieceType {
	case dragontoothmg.Pawn:
		return offset + 600
	case dragontoothmg.Knight, dragontoothmg.Bishop:
		return offset + 500
	case dragontoothmg.Rook:
		return offset + 400
	case dragontoothmg.Queen:
		return offset + 300
	case dragontoothmg.King:
		return offset + 200
	}
	return offset + 100
}

// OrderedMoves returns every legal move, most promising first. Instead of a
// full comparison sort it drops the scored moves into OrderBuckets value
// bands and emits the bands top-down, walking each band in prime-stride
// order. Every score is positive and the top band is open upwards, so every
// move lands in some band.
func OrderedMoves(b *dragontoothmg.Board) []dragontoothmg.Move {
	list := b.GenerateLegalMoves()
	n := len(list)

	var killer [KillersPerPly]dragontoothmg.Move
	if UseRichOrdering && UseKillers {
		killer = KillerMoveTable.Probe(gamePly(b))
	}

	var maxVal int32
	for i := 0; i < n; i++ {
		var v int32
		if UseRichOrdering {
			v = moveValRich(b, list[i], &killer)
		} else {
			v = moveVal(b, list[i])
		}
		moveVals[i] = v
		if v > maxVal {
			maxVal = v
		}
	}

	buckets := OrderBuckets
	if buckets < 1 {
		buckets = 1
	}
	ordered := make([]dragontoothmg.Move, 0, n)
	target := maxVal / int32(buckets)
	for k := buckets - 1; k >= 0; k-- {
		for i := 0; i < n; i++ {
			idx := (orderPrime*i + 1) % n
			v := moveVals[idx]
			// When maxVal is not a multiple of buckets, the scores above
			// buckets*target still belong to the top band.
			if v > int32(k)*target && (v <= int32(k+1)*target || k == buckets-1) {
				ordered = append(ordered, list[idx])
			}
		}
	}
	return ordered
}
