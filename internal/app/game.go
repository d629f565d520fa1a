//go:build ebiten

package app

import (
	"agelife/internal/render"
	"agelife/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// HUDWidth is the width in pixels of the panel drawn right of the grid.
const HUDWidth = 240

const consoleLines = 8

// Game adapts a Session to the ebiten.Game interface.
type Game struct {
	session *Session
	console *Console
	painter *render.GridPainter
	hud     *ui.HUD

	scale int
}

// New constructs a Game for the provided session. maxAge selects the age
// palette used to color live cells.
func New(session *Session, console *Console, scale, maxAge int) *Game {
	if scale < 1 {
		scale = 1
	}
	size := session.Sim().Size()
	return &Game{
		session: session,
		console: console,
		painter: render.NewGridPainter(size.W, size.H, render.AgePalette(maxAge)),
		hud:     ui.NewHUD(HUDWidth),
		scale:   scale,
	}
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	for _, cmd := range pressedCommands() {
		g.session.Apply(cmd)
	}

	var lines []string
	if g.console != nil {
		lines = g.console.Tail(consoleLines)
	}
	switch g.hud.Update(g.gridWidth(), g.session.Parameters(), lines) {
	case -1:
		g.session.Apply(CmdSlower)
	case 1:
		g.session.Apply(CmdFaster)
	}

	if g.session.Done() {
		return ebiten.Termination
	}
	g.session.Tick()
	return nil
}

func pressedCommands() []Command {
	var cmds []Command
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		cmds = append(cmds, CmdQuit)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if shift {
			cmds = append(cmds, CmdReplay)
		} else {
			cmds = append(cmds, CmdRandomize)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		cmds = append(cmds, CmdTogglePlay)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		cmds = append(cmds, CmdToggleBorder)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		cmds = append(cmds, CmdStepOnce)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd) {
		cmds = append(cmds, CmdFaster)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract) {
		cmds = append(cmds, CmdSlower)
	}
	return cmds
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.session.Sim().Cells(), g.scale)
	g.hud.Draw(screen, g.gridWidth(), g.gridHeight())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.gridWidth() + HUDWidth, g.gridHeight()
}

func (g *Game) gridWidth() int  { return g.session.Sim().Size().W * g.scale }
func (g *Game) gridHeight() int { return g.session.Sim().Size().H * g.scale }
