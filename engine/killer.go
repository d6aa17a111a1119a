package engine

import (
	"github.com/dylhunn/dragontoothmg"
)

const (
	// PlySlots is the number of ply rows; plies wrap modulo this.
	PlySlots = 128
	// KillersPerPly is how many cutoff moves a ply remembers.
	KillersPerPly = 3
)

// KillerStruct remembers moves that caused beta cutoffs, per game ply. The
// slots of a ply hold pairwise-distinct moves, padded with EmptyMove.
type KillerStruct struct {
	KillerMoves [PlySlots][KillersPerPly]dragontoothmg.Move
}

var KillerMoveTable KillerStruct

// Insert records a cutoff move for the ply. Already-known moves are left
// where they are; otherwise the first free slot takes it, and with all
// slots taken, slot 0 is sacrificed.
func (k *KillerStruct) Insert(ply int, move dragontoothmg.Move) {
	slot := &k.KillerMoves[ply%PlySlots]
	for i := 0; i < KillersPerPly; i++ {
		if slot[i] == move {
			return
		}
	}
	for i := 0; i < KillersPerPly; i++ {
		if slot[i] == EmptyMove {
			slot[i] = move
			return
		}
	}
	slot[0] = move
}

// Probe returns the ply's killer moves; EmptyMove marks an unused slot.
func (k *KillerStruct) Probe(ply int) [KillersPerPly]dragontoothmg.Move {
	return k.KillerMoves[ply%PlySlots]
}

// Clear the killer moves table.
func (k *KillerStruct) Clear() {
	for ply := 0; ply < PlySlots; ply++ {
		for i := 0; i < KillersPerPly; i++ {
			k.KillerMoves[ply][i] = EmptyMove
		}
	}
}
