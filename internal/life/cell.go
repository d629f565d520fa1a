package life

import (
	"math"
	"strconv"
)

// Cell is the state of a single grid position: dead, or alive with an age
// counting consecutive generations survived. The zero value is dead.
type Cell struct {
	age   uint32
	alive bool
}

// Dead returns a dead cell.
func Dead() Cell { return Cell{} }

// AliveAt returns a live cell of the given age.
func AliveAt(age uint32) Cell { return Cell{age: age, alive: true} }

// IsAlive reports whether the cell is alive.
func (c Cell) IsAlive() bool { return c.alive }

// Age returns the cell's age and whether it is alive. Dead cells have no age.
func (c Cell) Age() (uint32, bool) {
	if !c.alive {
		return 0, false
	}
	return c.age, true
}

func (c Cell) String() string {
	if !c.alive {
		return "dead"
	}
	return "alive(" + strconv.FormatUint(uint64(c.age), 10) + ")"
}

// Next applies the 23/3 rule to c given its live neighbor count. Births start
// at age 0 and survivors age by one. The age saturates at math.MaxUint32
// instead of wrapping, which no run reaches in practice.
func Next(c Cell, neighbors int) Cell {
	switch {
	case !c.alive:
		if neighbors == 3 {
			return AliveAt(0)
		}
		return Dead()
	case neighbors == 2 || neighbors == 3:
		if c.age == math.MaxUint32 {
			return c
		}
		return AliveAt(c.age + 1)
	default:
		return Dead()
	}
}
