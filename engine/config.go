package engine

// Engine knobs. Package-level so the UCI layer, the binaries' flag parsing
// and the tests all poke the same state; the search itself is
// single-threaded, so nothing here needs synchronization.
var (
	// UseCache enables transposition-table probes and stores.
	UseCache = true
	// UseKillers enables the killer-move heuristic.
	UseKillers = true
	// CacheSize is the transposition-table capacity in entries.
	CacheSize = 1 << 24
	// UseIterativeDeepening makes BestMove walk depths from zero instead
	// of searching the maximum depth directly.
	UseIterativeDeepening = true
	// OrderBuckets is the bucket count of the partial sort in OrderedMoves.
	OrderBuckets = 5
	// SearchDepth is the maximum depth per move, in plies.
	SearchDepth = 20
	// MaxTime is the fallback per-move budget in seconds, used when the
	// host supplies no clock.
	MaxTime = 1.0
	// ScaleTime multiplies the budget handed to white.
	ScaleTime = 1.0
	// UseRichOrdering swaps the default move scorer for the killer/piece
	// aware variant.
	UseRichOrdering = false
)

// ResetTables clears the process-wide search memory. The host calls this on
// ucinewgame; tests call it to stay independent of each other. Only legal
// while no search is in flight.
func ResetTables() {
	TT.Clear()
	KillerMoveTable.Clear()
	ResetSearchStats()
}
