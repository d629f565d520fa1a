package life

import (
	"errors"
	"fmt"
	"math"
	"unsafe"
)

var (
	// ErrGridTooLarge is returned when w*h cells cannot be addressed.
	ErrGridTooLarge = errors.New("grid dimensions overflow addressable size")
	// ErrInvalidSize is returned for negative dimensions.
	ErrInvalidSize = errors.New("grid dimensions must not be negative")
)

// BoolSource supplies the uniform, independent booleans used by Randomize.
type BoolSource interface {
	Bool() bool
}

// DoubleBuffer owns two same-sized grids and a generation counter. The grid
// at cycle%2 holds the latest completed generation: it is both the input to
// the next step and the one to display. The other grid is the step target.
type DoubleBuffer struct {
	grids [2]*Grid
	cycle uint64
	w, h  int
}

// NewDoubleBuffer allocates two w*h grids of dead cells with the cycle at 0.
func NewDoubleBuffer(w, h int) (*DoubleBuffer, error) {
	if w < 0 || h < 0 {
		return nil, fmt.Errorf("%dx%d: %w", w, h, ErrInvalidSize)
	}
	// Both grids must fit in the address space together.
	maxCells := math.MaxInt / (2 * int(unsafe.Sizeof(Cell{})))
	if h > 0 && w > maxCells/h {
		return nil, fmt.Errorf("%dx%d: %w", w, h, ErrGridTooLarge)
	}
	return &DoubleBuffer{
		grids: [2]*Grid{newGrid(w, h), newGrid(w, h)},
		w:     w,
		h:     h,
	}, nil
}

// Size returns the grid dimensions.
func (b *DoubleBuffer) Size() (w, h int) { return b.w, b.h }

// Randomize draws one boolean per cell and writes Alive(0) or Dead into both
// grids, leaving them identical. The cycle is untouched.
func (b *DoubleBuffer) Randomize(src BoolSource) {
	a, o := b.grids[0].cells, b.grids[1].cells
	for i := range a {
		c := Dead()
		if src.Bool() {
			c = AliveAt(0)
		}
		a[i] = c
		o[i] = c
	}
}

// Clear kills every cell in both grids.
func (b *DoubleBuffer) Clear() {
	b.grids[0].clear()
	b.grids[1].clear()
}

// ReadBuffer returns the grid a step reads from.
func (b *DoubleBuffer) ReadBuffer() *Grid { return b.grids[b.cycle%2] }

// WriteBuffer returns the grid a step writes into. Its contents are only
// meaningful while a step is in progress.
func (b *DoubleBuffer) WriteBuffer() *Grid { return b.grids[(b.cycle+1)%2] }

// RenderBuffer returns the most recently completed generation. Before the
// first step it holds the randomized seed pattern.
func (b *DoubleBuffer) RenderBuffer() *Grid { return b.grids[b.cycle%2] }

// AdvanceCycle marks the write buffer as complete. The counter itself keeps
// growing; only its parity selects the buffers.
func (b *DoubleBuffer) AdvanceCycle() { b.cycle++ }

// Generation returns the number of completed generations.
func (b *DoubleBuffer) Generation() uint64 { return b.cycle }

// seed writes c into both grids at (x, y).
func (b *DoubleBuffer) seed(x, y int, c Cell) {
	b.grids[0].set(x, y, c)
	b.grids[1].set(x, y, c)
}

// resetGeneration sets the counter back to 0. Callers must only do this when
// both grids are identical, otherwise the render buffer would change.
func (b *DoubleBuffer) resetGeneration() { b.cycle = 0 }
