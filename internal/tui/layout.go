package tui

import (
	"errors"
	"fmt"
)

// ErrTooSmall is returned when the terminal cannot fit a single grid cell.
var ErrTooSmall = errors.New("terminal too small")

const (
	bottomRows     = 3
	minMainRows    = 10
	gridPercent    = 80
	configPercent  = 80
	columnsPerCell = 2
)

// Rect is a terminal region in character cells.
type Rect struct {
	X, Y, W, H int
}

// Inner shrinks r by m on every side.
func (r Rect) Inner(m int) Rect {
	out := Rect{X: r.X + m, Y: r.Y + m, W: r.W - 2*m, H: r.H - 2*m}
	if out.W < 0 {
		out.W = 0
	}
	if out.H < 0 {
		out.H = 0
	}
	return out
}

// Layout holds the panel geometry for one terminal size: the outer frame, the
// grid panel, the config and console panels in the right column, and the
// cheatsheet along the bottom.
type Layout struct {
	Main    Rect
	Grid    Rect
	Config  Rect
	Console Rect
	Bottom  Rect
}

// NewLayout splits a w*h terminal into panels.
func NewLayout(w, h int) Layout {
	main := Rect{W: w, H: h}
	inner := main.Inner(1)

	topH := inner.H - bottomRows
	if topH < 0 {
		topH = 0
	}
	top := Rect{X: inner.X, Y: inner.Y, W: inner.W, H: topH}
	bottom := Rect{X: inner.X, Y: inner.Y + topH, W: inner.W, H: inner.H - topH}

	gridW := top.W * gridPercent / 100
	grid := Rect{X: top.X, Y: top.Y, W: gridW, H: top.H}
	right := Rect{X: top.X + gridW, Y: top.Y, W: top.W - gridW, H: top.H}

	configH := right.H * configPercent / 100
	config := Rect{X: right.X, Y: right.Y, W: right.W, H: configH}
	console := Rect{X: right.X, Y: right.Y + configH, W: right.W, H: right.H - configH}

	return Layout{Main: main, Grid: grid, Config: config, Console: console, Bottom: bottom}
}

// GridCells returns how many cells fit in the grid panel: two columns per
// cell, border excluded.
func (l Layout) GridCells() (int, int) {
	w := (l.Grid.W - 2) / columnsPerCell
	h := l.Grid.H - 2
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return w, h
}

// Validate reports ErrTooSmall when the main area is under its minimum
// height or the grid panel has no room for a cell.
func (l Layout) Validate() error {
	w, h := l.GridCells()
	if l.Grid.H < minMainRows || w == 0 || h == 0 {
		return fmt.Errorf("%w: %dx%d", ErrTooSmall, l.Main.W, l.Main.H)
	}
	return nil
}
