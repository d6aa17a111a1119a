package engine

import (
	"math/bits"

	"github.com/dylhunn/dragontoothmg"
)

// Material values in centipawns.
const (
	PawnValue  = 100
	MinorValue = 300
	RookValue  = 500
	QueenValue = 900
)

// Center squares d4, e4, d5, e5.
var centerSquares = [4]uint8{27, 28, 35, 36}

// centerControl counts the side's pieces that attack at least one center
// square (a piece hitting two center squares counts once).
func centerControl(b *dragontoothmg.Board, white bool) int32 {
	var attackers uint64
	for _, sq := range centerSquares {
		attackers |= attackersTo(b, sq)
	}
	if white {
		return int32(bits.OnesCount64(attackers & b.White.All))
	}
	return int32(bits.OnesCount64(attackers & b.Black.All))
}

func kingSafety(b *dragontoothmg.Board, white bool) int32 {
	opp := &b.White
	if white {
		opp = &b.Black
	}
	ksq, ok := KingSquare(b, white)
	if !ok {
		return 0
	}
	return -int32(bits.OnesCount64(attackersTo(b, ksq) & opp.All))
}

// pawnStructure counts pawns defended by their own pawns.
func pawnStructure(b *dragontoothmg.Board, white bool) int32 {
	var pawns uint64
	if white {
		pawns = b.White.Pawns
	} else {
		pawns = b.Black.Pawns
	}
	return int32(bits.OnesCount64(pawnAttacksBB(pawns, white) & pawns))
}

// activity penalizes minor pieces still sitting on their back rank.
func activity(b *dragontoothmg.Board, white bool) int32 {
	if white {
		return -int32(bits.OnesCount64((b.White.Knights | b.White.Bishops) & bitboardRank1))
	}
	return -int32(bits.OnesCount64((b.Black.Knights | b.Black.Bishops) & bitboardRank8))
}

func evalSide(b *dragontoothmg.Board, white bool) int32 {
	var bb *dragontoothmg.Bitboards
	if white {
		bb = &b.White
	} else {
		bb = &b.Black
	}

	var sum int32
	sum += PawnValue * int32(PieceCount(b, white, dragontoothmg.Pawn))
	// The positional terms are expensive; only bother while the pawn mass
	// says we are not deep into an endgame.
	if sum >= 700 {
		sum += 10 * centerControl(b, white)
		sum += 10 * activity(b, white)
		sum += 10 * pawnStructure(b, white)
	}
	sum += MinorValue * int32(bits.OnesCount64(bb.Knights|bb.Bishops))
	sum += RookValue * int32(PieceCount(b, white, dragontoothmg.Rook))
	sum += QueenValue * int32(PieceCount(b, white, dragontoothmg.Queen))
	sum += 10 * kingSafety(b, white)
	return sum
}

// Eval scores the position from the side to move's viewpoint. Zero means
// dead equal.
func Eval(b *dragontoothmg.Board) int32 {
	return evalSide(b, b.Wtomove) - evalSide(b, !b.Wtomove)
}
