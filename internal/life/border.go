package life

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownBorderPolicy is returned when a policy name cannot be parsed.
var ErrUnknownBorderPolicy = errors.New("unknown border policy")

// BorderPolicy selects how neighbor lookups past the grid edge are resolved.
type BorderPolicy uint8

const (
	// Clamp treats positions outside the grid as absent.
	Clamp BorderPolicy = iota
	// Wrap maps a single step past an edge onto the opposite edge.
	Wrap
)

// ParseBorderPolicy converts "clamp" or "wrap" (any case) to a policy.
func ParseBorderPolicy(s string) (BorderPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "clamp":
		return Clamp, nil
	case "wrap":
		return Wrap, nil
	default:
		return Clamp, fmt.Errorf("%w %q", ErrUnknownBorderPolicy, s)
	}
}

func (p BorderPolicy) String() string {
	switch p {
	case Clamp:
		return "clamp"
	case Wrap:
		return "wrap"
	default:
		return fmt.Sprintf("BorderPolicy(%d)", uint8(p))
	}
}

// Toggle flips between Clamp and Wrap.
func (p *BorderPolicy) Toggle() {
	switch *p {
	case Clamp:
		*p = Wrap
	default:
		*p = Clamp
	}
}

// Resolve returns the neighbor of (x, y) at unit offset (dx, dy) on a w*h
// grid. ok is false when Clamp puts the neighbor outside the grid.
//
// Wrap only handles one step past an edge: -1 maps to the last index and the
// dimension itself maps to 0. It is not a general modulus, so offsets must be
// in {-1, 0, 1}. Wrap on a zero-sized dimension panics.
func (p BorderPolicy) Resolve(x, y, dx, dy, w, h int) (nx, ny int, ok bool) {
	if dx < -1 || dx > 1 || dy < -1 || dy > 1 {
		panic(fmt.Sprintf("life: neighbor offset (%d,%d) is not a unit step", dx, dy))
	}
	nx, ny = x+dx, y+dy
	switch p {
	case Clamp:
		if nx < 0 || nx >= w || ny < 0 || ny >= h {
			return 0, 0, false
		}
		return nx, ny, true
	case Wrap:
		if w <= 0 || h <= 0 {
			panic(fmt.Sprintf("life: wrap resolution on a %dx%d grid", w, h))
		}
		nx = wrapStep(nx, w)
		ny = wrapStep(ny, h)
		return nx, ny, true
	default:
		panic(fmt.Sprintf("life: unhandled %v", p))
	}
}

func wrapStep(v, n int) int {
	switch {
	case v < 0:
		return n - 1
	case v >= n:
		return 0
	default:
		return v
	}
}
