//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"agelife/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the config and console panel to the right of the grid view.
type HUD struct {
	width      int
	panel      *ebiten.Image
	lastHeight int

	snapshot core.ParameterSnapshot
	console  []string

	panelOffsetX int
	minusRect    image.Rectangle
	plusRect     image.Rectangle

	pixel *ebiten.Image
}

// NewHUD constructs a HUD with the given panel width.
func NewHUD(width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{width: width}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	buttonY := panelPadding
	h.plusRect = image.Rect(width-panelPadding-buttonSize, buttonY, width-panelPadding, buttonY+buttonSize)
	h.minusRect = image.Rect(h.plusRect.Min.X-buttonGap-buttonSize, buttonY, h.plusRect.Min.X-buttonGap, buttonY+buttonSize)
	return h
}

// Update stores the values to show and handles clicks on the speed buttons.
// It returns -1 when "slower" was clicked, +1 for "faster" and 0 otherwise.
func (h *HUD) Update(panelOffsetX int, snapshot core.ParameterSnapshot, console []string) int {
	if h == nil {
		return 0
	}
	h.panelOffsetX = panelOffsetX
	h.snapshot = snapshot
	h.console = console

	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return 0
	}
	mx, my := ebiten.CursorPosition()
	px := mx - h.panelOffsetX
	switch {
	case pointInRect(px, my, h.minusRect):
		return -1
	case pointInRect(px, my, h.plusRect):
		return 1
	default:
		return 0
	}
}

// Draw paints the HUD panel at offsetX with the given height in pixels.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawPanel(height)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawPanel(height int) {
	face := basicfont.Face7x13
	labelColor := color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor := color.RGBA{R: 160, G: 160, B: 170, A: 255}

	y := panelPadding + headerBaseline
	text.Draw(h.panel, "Config", face, panelPadding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	h.drawButton(h.minusRect, "-")
	h.drawButton(h.plusRect, "+")

	y += infoSpacing
	for _, group := range h.snapshot.Groups {
		for _, p := range group.Params {
			if y > height-panelPadding {
				return
			}
			text.Draw(h.panel, p.Label, face, panelPadding, y, labelColor)
			bounds := text.BoundString(face, p.Value)
			text.Draw(h.panel, p.Value, face, h.width-panelPadding-bounds.Dx(), y, labelColor)
			y += lineHeight
		}
	}

	y += lineHeight
	if y > height-panelPadding {
		return
	}
	text.Draw(h.panel, "Console", face, panelPadding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	for _, line := range h.console {
		y += lineHeight
		if y > height-panelPadding {
			return
		}
		text.Draw(h.panel, line, face, panelPadding, y, dimColor)
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string) {
	if h.pixel == nil {
		return
	}
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.Scale(float32(bg.R)/255, float32(bg.G)/255, float32(bg.B)/255, float32(bg.A)/255)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

const (
	panelPadding   = 12
	lineHeight     = 18
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	infoSpacing    = 28
)
