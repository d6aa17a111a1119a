package engine

import "github.com/rs/zerolog/log"

// SearchStats collects counters across searches: how often the
// transposition table answered, and how often a branch died early. Reset
// alongside the tables.
type SearchStats struct {
	TTHits       uint64
	TTCutoffs    uint64
	BetaCutoffs  uint64
	KillerStores uint64
}

var searchStats SearchStats

// Stats returns a snapshot of the counters.
func Stats() SearchStats {
	return searchStats
}

func ResetSearchStats() {
	searchStats = SearchStats{}
}

func logSearchStats() {
	log.Debug().
		Uint64("tt_hits", searchStats.TTHits).
		Uint64("tt_cutoffs", searchStats.TTCutoffs).
		Uint64("beta_cutoffs", searchStats.BetaCutoffs).
		Uint64("killer_stores", searchStats.KillerStores).
		Msg("search-stats")
}
