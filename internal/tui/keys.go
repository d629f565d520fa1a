package tui

import (
	"github.com/gdamore/tcell/v2"

	"agelife/internal/app"
)

// Cheatsheet is the key summary shown in the bottom panel.
const Cheatsheet = "Q: quit  R: reset  P: play/pause  B: switch border policy  N: step  +/-: speed"

// CommandForKey maps a key event to a session command.
func CommandForKey(ev *tcell.EventKey) app.Command {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return app.CmdQuit
	case tcell.KeyRune:
	default:
		return app.CmdNone
	}
	switch ev.Rune() {
	case 'q', 'Q':
		return app.CmdQuit
	case 'r':
		return app.CmdRandomize
	case 'R':
		return app.CmdReplay
	case 'p', 'P', ' ':
		return app.CmdTogglePlay
	case 'b', 'B':
		return app.CmdToggleBorder
	case 'n', 'N':
		return app.CmdStepOnce
	case '+', '=':
		return app.CmdFaster
	case '-', '_':
		return app.CmdSlower
	default:
		return app.CmdNone
	}
}
