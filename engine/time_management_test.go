package engine

import (
	"math"
	"testing"
)

func TestManageTimeWithIncrement(t *testing.T) {
	got := ManageTime(60000, 1000)
	want := 60.0/38 + 1.0
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("expected %f, got %f", want, got)
	}
}

func TestManageTimeWithoutIncrement(t *testing.T) {
	if got := ManageTime(60000, 0); got != 1.0 {
		t.Fatalf("expected the one-second floor, got %f", got)
	}
}

func TestManageTimeLowClockHalves(t *testing.T) {
	if got := ManageTime(500, 0); got != 0.25 {
		t.Fatalf("expected half the remaining clock, got %f", got)
	}
	if got := ManageTime(0, 0); got != 0 {
		t.Fatalf("expected zero budget on a dead clock, got %f", got)
	}
}

func TestManageTimeHugeIncrementStillBounded(t *testing.T) {
	// The increment pushes the target above the whole clock; the budget
	// falls back to half of what is actually left.
	if got := ManageTime(10000, 120000); got != 5.0 {
		t.Fatalf("expected 5s, got %f", got)
	}
}
