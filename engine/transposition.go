package engine

// Bound flags for stored search results.
const (
	ExactFlag int8 = iota
	LowerFlag
	UpperFlag
)

// TTEntry is one cached search result. The key doubles as the validity
// indicator: a lookup only trusts an entry whose key matches the queried
// position's fingerprint, so index collisions fall out naturally as misses.
type TTEntry struct {
	Key   uint64
	Value int32
	Depth int8
	Flag  int8
}

// TransTable is a direct-mapped, always-replace transposition table. No
// clustering and no depth-preferred policy; the incoming entry wins.
type TransTable struct {
	entries []TTEntry
}

var TT TransTable

// EnsureSize (re)allocates the table when the configured capacity changed.
// Called by the search driver at the start of every search, never mid-search.
func (tt *TransTable) EnsureSize(entries int) {
	if entries < 1 {
		entries = 1
	}
	if len(tt.entries) != entries {
		tt.entries = make([]TTEntry, entries)
	}
}

// Clear zeroes every entry but keeps the allocation.
func (tt *TransTable) Clear() {
	for i := range tt.entries {
		tt.entries[i] = TTEntry{}
	}
}

// Probe reads the slot the key maps to. The bool reports whether the
// resident entry actually describes the queried position.
func (tt *TransTable) Probe(key uint64) (TTEntry, bool) {
	if len(tt.entries) == 0 {
		return TTEntry{}, false
	}
	entry := tt.entries[key%uint64(len(tt.entries))]
	return entry, entry.Key == key
}

// Store overwrites the slot the key maps to, unconditionally.
func (tt *TransTable) Store(key uint64, depth int8, value int32, flag int8) {
	if len(tt.entries) == 0 {
		return
	}
	tt.entries[key%uint64(len(tt.entries))] = TTEntry{
		Key:   key,
		Value: value,
		Depth: depth,
		Flag:  flag,
	}
}
