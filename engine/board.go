package engine

import (
	"math/bits"

	"github.com/dylhunn/dragontoothmg"
)

// EmptyMove is the "no move chosen" sentinel, shared by the killer table,
// the move orderer and the search driver.
const EmptyMove = dragontoothmg.Move(0)

// Move kinds, as far as ordering cares about them.
const (
	MoveNormal = iota
	MovePromotion
	MoveCastling
	MoveEnPassant
)

// File bitboard masks for files A and H (for shifting operations)
const (
	bitboardFileA uint64 = 0x0101010101010101
	bitboardFileH uint64 = 0x8080808080808080
)

const (
	bitboardRank1 uint64 = 0x00000000000000ff
	bitboardRank8 uint64 = 0xff00000000000000
)

// Single-square bitboards plus king/knight move masks, filled in by
// initPositionBB before the first search.
var PositionBB [65]uint64
var KingMoves [65]uint64
var KnightMasks [64]uint64

// gamePly counts half-moves from the start of the game, the number the
// killer table is keyed by. dragontoothmg tracks full moves, so white to
// move on move one is ply zero.
func gamePly(b *dragontoothmg.Board) int {
	ply := 2 * (int(b.Fullmoveno) - 1)
	if !b.Wtomove {
		ply++
	}
	return ply
}

// sideBitboards returns the side-to-move's pieces first.
func sideBitboards(b *dragontoothmg.Board) (own, opp *dragontoothmg.Bitboards) {
	if b.Wtomove {
		return &b.White, &b.Black
	}
	return &b.Black, &b.White
}

func pieceTypeAt(position uint8, bitboards *dragontoothmg.Bitboards) (pieceType dragontoothmg.Piece, occupied bool) {
	if bitboards.Pawns&(1<<position) > 0 {
		return dragontoothmg.Pawn, true
	} else if bitboards.Knights&(1<<position) > 0 {
		return dragontoothmg.Knight, true
	} else if bitboards.Bishops&(1<<position) > 0 {
		return dragontoothmg.Bishop, true
	} else if bitboards.Rooks&(1<<position) > 0 {
		return dragontoothmg.Rook, true
	} else if bitboards.Queens&(1<<position) > 0 {
		return dragontoothmg.Queen, true
	} else if bitboards.Kings&(1<<position) > 0 {
		return dragontoothmg.King, true
	}
	return 0, false
}

// PieceCount returns how many pieces of the given type the color has.
func PieceCount(b *dragontoothmg.Board, white bool, piece dragontoothmg.Piece) int {
	bb := &b.Black
	if white {
		bb = &b.White
	}
	switch piece {
	case dragontoothmg.Pawn:
		return bits.OnesCount64(bb.Pawns)
	case dragontoothmg.Knight:
		return bits.OnesCount64(bb.Knights)
	case dragontoothmg.Bishop:
		return bits.OnesCount64(bb.Bishops)
	case dragontoothmg.Rook:
		return bits.OnesCount64(bb.Rooks)
	case dragontoothmg.Queen:
		return bits.OnesCount64(bb.Queens)
	case dragontoothmg.King:
		return bits.OnesCount64(bb.Kings)
	}
	return 0
}

// KingSquare returns the color's king square; ok is false only for test
// positions without that king.
func KingSquare(b *dragontoothmg.Board, white bool) (sq uint8, ok bool) {
	kings := b.Black.Kings
	if white {
		kings = b.White.Kings
	}
	if kings == 0 {
		return 0, false
	}
	return uint8(bits.TrailingZeros64(kings)), true
}

// pawnAttacksBB gives every square attacked by the given pawns. White pawns
// attack up the board, black pawns down.
func pawnAttacksBB(pawns uint64, white bool) uint64 {
	if white {
		return ((pawns &^ bitboardFileA) << 7) | ((pawns &^ bitboardFileH) << 9)
	}
	return ((pawns &^ bitboardFileH) >> 7) | ((pawns &^ bitboardFileA) >> 9)
}

// attackersTo collects all pieces of either color that attack the given
// square on the current occupancy. Sliders go through dragontoothmg's magic
// lookups, leapers through the precomputed masks, pawns by attacking
// backwards from the target square.
func attackersTo(b *dragontoothmg.Board, sq uint8) uint64 {
	occ := b.White.All | b.Black.All
	sqBB := PositionBB[sq]

	rooksQueens := b.White.Rooks | b.White.Queens | b.Black.Rooks | b.Black.Queens
	bishopsQueens := b.White.Bishops | b.White.Queens | b.Black.Bishops | b.Black.Queens

	attackers := dragontoothmg.CalculateRookMoveBitboard(sq, occ) & rooksQueens
	attackers |= dragontoothmg.CalculateBishopMoveBitboard(sq, occ) & bishopsQueens
	attackers |= KnightMasks[sq] & (b.White.Knights | b.Black.Knights)
	attackers |= KingMoves[sq] & (b.White.Kings | b.Black.Kings)
	attackers |= pawnAttacksBB(sqBB, false) & b.White.Pawns
	attackers |= pawnAttacksBB(sqBB, true) & b.Black.Pawns
	return attackers
}

// checkers returns the enemy pieces giving check to the side to move.
func checkers(b *dragontoothmg.Board) uint64 {
	_, opp := sideBitboards(b)
	ksq, ok := KingSquare(b, b.Wtomove)
	if !ok {
		return 0
	}
	return attackersTo(b, ksq) & opp.All
}

func inCheck(b *dragontoothmg.Board) bool {
	return b.OurKingInCheck()
}

// givesCheck reports whether the move puts the opponent's king in check.
// After Apply the mover's opponent is the side to move, so OurKingInCheck
// answers the question directly.
func givesCheck(b *dragontoothmg.Board, m dragontoothmg.Move) bool {
	unapply := b.Apply(m)
	check := b.OurKingInCheck()
	unapply()
	return check
}

// moveType classifies a move the way the orderer needs it. dragontoothmg
// encodes promotions on the move itself; castling and en passant are
// recovered from the board.
func moveType(b *dragontoothmg.Board, m dragontoothmg.Move) int {
	if m.Promote() != 0 {
		return MovePromotion
	}
	own, opp := sideBitboards(b)
	from := m.From()
	to := m.To()
	fromBB := PositionBB[from]
	if own.Kings&fromBB != 0 {
		fileDiff := int(from%8) - int(to%8)
		if fileDiff > 1 || fileDiff < -1 {
			return MoveCastling
		}
		return MoveNormal
	}
	if own.Pawns&fromBB != 0 && from%8 != to%8 && opp.All&PositionBB[to] == 0 {
		return MoveEnPassant
	}
	return MoveNormal
}

func initPositionBB() {
	for i := 0; i <= 64; i++ {
		if i < 64 {
			PositionBB[i] = uint64(1) << uint(i)
		} else {
			PositionBB[i] = 0
		}
		sqBB := PositionBB[i]

		// Generate king moves lookup table.

		top := sqBB >> 8
		topRight := (sqBB >> 8 >> 1) & ^bitboardFileH
		topLeft := (sqBB >> 8 << 1) & ^bitboardFileA

		right := (sqBB >> 1) & ^bitboardFileH
		left := (sqBB << 1) & ^bitboardFileA

		bottom := sqBB << 8
		bottomRight := (sqBB << 8 >> 1) & ^bitboardFileH
		bottomLeft := (sqBB << 8 << 1) & ^bitboardFileA

		kingMoves := top | topRight | topLeft | right | left | bottom | bottomRight | bottomLeft

		KingMoves[i] = kingMoves
	}

	// Knight moves, same idea with the two-away wrap masks.
	notFileAB := ^(bitboardFileA | bitboardFileA<<1)
	notFileGH := ^(bitboardFileH | bitboardFileH>>1)
	for i := 0; i < 64; i++ {
		sqBB := PositionBB[i]
		var moves uint64
		moves |= (sqBB << 17) & ^bitboardFileA
		moves |= (sqBB << 15) & ^bitboardFileH
		moves |= (sqBB << 10) & notFileAB
		moves |= (sqBB << 6) & notFileGH
		moves |= (sqBB >> 6) & notFileAB
		moves |= (sqBB >> 10) & notFileGH
		moves |= (sqBB >> 15) & ^bitboardFileA
		moves |= (sqBB >> 17) & ^bitboardFileH
		KnightMasks[i] = moves
	}
}
