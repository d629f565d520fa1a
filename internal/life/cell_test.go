package life

import (
	"math"
	"testing"
)

func TestZeroCellIsDead(t *testing.T) {
	var c Cell
	if c.IsAlive() {
		t.Fatal("zero Cell must be dead")
	}
	if c != Dead() {
		t.Fatal("Dead() must equal the zero value")
	}
	if _, ok := c.Age(); ok {
		t.Fatal("dead cells have no age")
	}
}

func TestNextBirthRule(t *testing.T) {
	for n := 0; n <= 8; n++ {
		got := Next(Dead(), n)
		if n == 3 {
			if got != AliveAt(0) {
				t.Fatalf("dead cell with 3 neighbors should be born at age 0, got %v", got)
			}
			continue
		}
		if got.IsAlive() {
			t.Fatalf("dead cell with %d neighbors should stay dead, got %v", n, got)
		}
	}
}

func TestNextSurvivalAndAging(t *testing.T) {
	for n := 0; n <= 8; n++ {
		got := Next(AliveAt(5), n)
		if n == 2 || n == 3 {
			if age, ok := got.Age(); !ok || age != 6 {
				t.Fatalf("alive(5) with %d neighbors should become alive(6), got %v", n, got)
			}
			continue
		}
		if got != Dead() {
			t.Fatalf("alive(5) with %d neighbors should die, got %v", n, got)
		}
	}

	// A death loses the age; the next birth starts over.
	if got := Next(Next(AliveAt(5), 0), 3); got != AliveAt(0) {
		t.Fatalf("rebirth should restart at age 0, got %v", got)
	}
}

func TestNextAgeSaturates(t *testing.T) {
	old := AliveAt(math.MaxUint32)
	if got := Next(old, 2); got != old {
		t.Fatalf("age should saturate, got %v", got)
	}
}

func TestCellString(t *testing.T) {
	if s := Dead().String(); s != "dead" {
		t.Fatalf("unexpected %q", s)
	}
	if s := AliveAt(7).String(); s != "alive(7)" {
		t.Fatalf("unexpected %q", s)
	}
}
