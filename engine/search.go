package engine

import (
	"time"

	"github.com/dylhunn/dragontoothmg"
	"github.com/rs/zerolog/log"
)

// Score window. Everything the search returns lives inside it.
const (
	BetaInf  int32 = 1 << 13
	AlphaInf int32 = -BetaInf
)

// negamax is a fail-soft alpha-beta search. It returns the best value found
// from the side to move's viewpoint and the number of nodes visited; a zero
// node count means the deadline expired and the value is unusable.
func negamax(b *dragontoothmg.Board, depth int, alpha, beta int32, deadline time.Time) (int32, uint64) {
	if time.Now().After(deadline) {
		return AlphaInf, 0
	}

	origAlpha := alpha
	key := b.Hash()

	if UseCache {
		if entry, ok := TT.Probe(key); ok && int(entry.Depth) >= depth {
			searchStats.TTHits++
			// The three flags are exclusive; bounds stored here are
			// absolute on the position, whatever window produced them.
			switch entry.Flag {
			case ExactFlag:
				searchStats.TTCutoffs++
				return entry.Value, 1
			case LowerFlag:
				alpha = max32(alpha, entry.Value)
			case UpperFlag:
				beta = min32(beta, entry.Value)
			}
			if alpha > beta {
				searchStats.TTCutoffs++
				return entry.Value, 1
			}
		}
	}

	moves := OrderedMoves(b)

	// No moves at all: mate if the king is attacked, stalemate otherwise.
	if len(moves) == 0 {
		if inCheck(b) {
			return AlphaInf, 1
		}
		return 0, 1
	}

	if depth == 0 {
		return Eval(b), 1
	}

	best := AlphaInf
	var nodes uint64 = 1
	for _, m := range moves {
		unapply := b.Apply(m)
		v, n := negamax(b, depth-1, -beta, -alpha, deadline)
		unapply()
		best = max32(best, -v)
		nodes += n
		alpha = max32(alpha, best)
		if alpha >= beta {
			searchStats.BetaCutoffs++
			if UseKillers {
				KillerMoveTable.Insert(gamePly(b), m)
				searchStats.KillerStores++
			}
			break
		}
	}

	if UseCache {
		flag := ExactFlag
		if best < origAlpha {
			flag = UpperFlag
		} else if best > beta {
			flag = LowerFlag
		}
		TT.Store(key, int8(depth), best, flag)
	}

	if time.Now().After(deadline) {
		return AlphaInf, 0
	}

	// Decaying the value by 1% per ply steers the search toward faster
	// mates and slower losses.
	return best * 99 / 100, nodes
}

// BestMove runs an iterative-deepening search for at most maxSeconds and
// maxDepth plies and returns the chosen move with the total node count.
// EmptyMove comes back only when the position has no legal moves.
func BestMove(b *dragontoothmg.Board, maxSeconds float64, maxDepth int) (dragontoothmg.Move, uint64) {
	start := time.Now()
	deadline := start.Add(time.Duration(maxSeconds * float64(time.Second)))

	TT.EnsureSize(CacheSize)

	rootMoves := OrderedMoves(b)

	// One entry per fully completed iteration, plus a truncated first one
	// (see below); the deepest wins.
	var bestPerIteration []dragontoothmg.Move
	var bestEval int32

	first := 0
	if !UseIterativeDeepening {
		first = maxDepth - 1
	}
	var nodes uint64
	for d := first; d < maxDepth; d++ {
		iterBest := EmptyMove
		iterVal := AlphaInf
		completed := true
		for _, m := range rootMoves {
			if time.Now().After(deadline) {
				completed = false
				break
			}
			unapply := b.Apply(m)
			v, n := negamax(b, d, AlphaInf, BetaInf, deadline)
			unapply()
			val := -v
			if n == 0 {
				// This subtree timed out mid-search; its value would
				// mislead the comparison below.
				val = AlphaInf
			}
			nodes += n
			if val > iterVal {
				iterBest = m
				iterVal = val
			}
		}
		// A truncated iteration ranked only some of the root moves, so its
		// pick is discarded. The exception is the very first result: better
		// a shallow move than none.
		if completed || len(bestPerIteration) == 0 {
			bestPerIteration = append(bestPerIteration, iterBest)
			bestEval = iterVal
		}
		if completed {
			log.Debug().
				Int("depth", d+1).
				Int32("value", iterVal).
				Uint64("nodes", nodes).
				Str("move", iterBest.String()).
				Msg("iteration-done")
		}
	}

	if len(bestPerIteration) == 0 {
		return EmptyMove, nodes
	}
	best := bestPerIteration[len(bestPerIteration)-1]
	if best == EmptyMove && len(rootMoves) > 0 {
		// Deadline expired before the first root move was searched; any
		// legal move beats resigning on the spot.
		best = rootMoves[0]
	}
	log.Debug().
		Int("iterations", len(bestPerIteration)).
		Int32("value", bestEval).
		Uint64("nodes", nodes).
		Dur("elapsed", time.Since(start)).
		Msg("search-done")
	logSearchStats()
	return best, nodes
}
