package engine

import (
	"testing"

	"github.com/matryer/is"

	"github.com/dylhunn/dragontoothmg"
)

func mustMove(t *testing.T, lan string) dragontoothmg.Move {
	t.Helper()
	m, err := dragontoothmg.ParseMove(lan)
	if err != nil {
		t.Fatalf("parse move %q: %v", lan, err)
	}
	return m
}

func TestKillerInsertDistinct(t *testing.T) {
	is := is.New(t)
	var kt KillerStruct

	m1 := mustMove(t, "e2e4")
	m2 := mustMove(t, "d2d4")
	m3 := mustMove(t, "g1f3")
	m4 := mustMove(t, "b1c3")

	kt.Insert(7, m1)
	kt.Insert(7, m1)
	kt.Insert(7, m1)
	slots := kt.Probe(7)
	is.Equal(slots[0], m1) // repeated inserts stay in one slot
	is.Equal(slots[1], EmptyMove)
	is.Equal(slots[2], EmptyMove)

	kt.Insert(7, m2)
	kt.Insert(7, m3)
	slots = kt.Probe(7)
	is.Equal(slots, [KillersPerPly]dragontoothmg.Move{m1, m2, m3})

	// Table full: the newcomer evicts slot 0, the rest stay put.
	kt.Insert(7, m4)
	slots = kt.Probe(7)
	is.Equal(slots, [KillersPerPly]dragontoothmg.Move{m4, m2, m3})

	// Known moves never shuffle a full table.
	kt.Insert(7, m3)
	is.Equal(kt.Probe(7), [KillersPerPly]dragontoothmg.Move{m4, m2, m3})
}

func TestKillerPlyWrapsAround(t *testing.T) {
	is := is.New(t)
	var kt KillerStruct

	m := mustMove(t, "e7e5")
	kt.Insert(3+PlySlots, m)
	is.Equal(kt.Probe(3)[0], m)
}

func TestKillerClear(t *testing.T) {
	is := is.New(t)
	var kt KillerStruct
	kt.Insert(0, mustMove(t, "e2e4"))
	kt.Clear()
	is.Equal(kt.Probe(0), [KillersPerPly]dragontoothmg.Move{})
}
