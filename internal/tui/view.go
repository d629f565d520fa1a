package tui

import (
	"github.com/gdamore/tcell/v2"

	"agelife/internal/core"
	"agelife/internal/render"
)

// View draws a sim and its side panels onto a tcell screen.
type View struct {
	screen  tcell.Screen
	layout  Layout
	size    core.Size
	palette []tcell.Color
}

// NewView prepares a view for a grid of the given size, coloring live cells
// of age 0..maxAge along the age ramp.
func NewView(screen tcell.Screen, size core.Size, maxAge int) *View {
	v := &View{screen: screen, size: size}
	for _, c := range render.AgePalette(maxAge) {
		v.palette = append(v.palette, tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
	}
	v.Resize()
	return v
}

// Layout returns the current panel geometry.
func (v *View) Layout() Layout { return v.layout }

// Resize recomputes the layout from the screen size. The grid keeps its
// dimensions; whatever no longer fits the panel is clipped.
func (v *View) Resize() {
	w, h := v.screen.Size()
	v.layout = NewLayout(w, h)
}

// Draw renders one frame.
func (v *View) Draw(cells []uint8, params core.ParameterSnapshot, console []string) {
	v.screen.Clear()
	l := v.layout

	v.drawBox(l.Main, "Game of life")
	v.drawBox(l.Grid, "")
	v.drawCells(cells)

	v.drawBox(l.Config, "Config")
	inner := l.Config.Inner(1)
	row := inner.Y + 1
	for _, group := range params.Groups {
		for _, p := range group.Params {
			if row >= inner.Y+inner.H {
				break
			}
			v.drawText(inner.X+1, row, inner.W-1, p.Label+": "+p.Value, tcell.StyleDefault)
			row++
		}
	}

	v.drawBox(l.Console, "Console")
	inner = l.Console.Inner(1)
	if len(console) > inner.H {
		console = console[len(console)-inner.H:]
	}
	for i, line := range console {
		v.drawText(inner.X, inner.Y+i, inner.W, line, tcell.StyleDefault)
	}

	v.drawBox(l.Bottom, "Cheatsheet")
	inner = l.Bottom.Inner(1)
	v.drawText(inner.X, inner.Y, inner.W, Cheatsheet, tcell.StyleDefault)

	v.screen.Show()
}

func (v *View) drawCells(cells []uint8) {
	if len(cells) != v.size.W*v.size.H {
		return
	}
	panel := v.layout.Grid.Inner(1)
	fitW, fitH := v.layout.GridCells()
	w, h := min(v.size.W, fitW), min(v.size.H, fitH)
	last := len(v.palette) - 1
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			val := int(cells[y*v.size.W+x])
			style := tcell.StyleDefault
			if val > 0 {
				if val > last {
					val = last
				}
				style = style.Background(v.palette[val]).Foreground(tcell.ColorBlack)
			}
			sx := panel.X + x*columnsPerCell
			v.screen.SetContent(sx, panel.Y+y, ' ', nil, style)
			v.screen.SetContent(sx+1, panel.Y+y, ' ', nil, style)
		}
	}
}

func (v *View) drawBox(r Rect, title string) {
	if r.W < 2 || r.H < 2 {
		return
	}
	style := tcell.StyleDefault
	x1, y1 := r.X+r.W-1, r.Y+r.H-1
	for x := r.X + 1; x < x1; x++ {
		v.screen.SetContent(x, r.Y, '─', nil, style)
		v.screen.SetContent(x, y1, '─', nil, style)
	}
	for y := r.Y + 1; y < y1; y++ {
		v.screen.SetContent(r.X, y, '│', nil, style)
		v.screen.SetContent(x1, y, '│', nil, style)
	}
	v.screen.SetContent(r.X, r.Y, '╭', nil, style)
	v.screen.SetContent(x1, r.Y, '╮', nil, style)
	v.screen.SetContent(r.X, y1, '╰', nil, style)
	v.screen.SetContent(x1, y1, '╯', nil, style)
	if title != "" {
		v.drawText(r.X+1, r.Y, r.W-2, title, style)
	}
}

func (v *View) drawText(x, y, maxW int, s string, style tcell.Style) {
	i := 0
	for _, r := range s {
		if i >= maxW {
			return
		}
		v.screen.SetContent(x+i, y, r, nil, style)
		i++
	}
}
