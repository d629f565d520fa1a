package tui

import (
	"context"
	"errors"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"agelife/internal/app"
	"agelife/internal/core"
	"agelife/internal/life"
)

const frameInterval = time.Second / 30

// maxTicksPerFrame bounds catch-up between redraws. When steps take longer
// than a tick the backlog is dropped so input and drawing keep running.
const maxTicksPerFrame = 8

var errQuit = errors.New("quit")

// Driver runs a session on a terminal screen until the user quits or ctx is
// cancelled. It owns the screen from Run onwards and finalizes it on exit.
type Driver struct {
	Screen  tcell.Screen
	Session *app.Session
	Console *app.Console
	TPS     int
}

// Run pumps terminal events on one goroutine and ticks, handles commands and
// redraws on another.
func (d *Driver) Run(ctx context.Context) error {
	view := NewView(d.Screen, d.Session.Sim().Size(), life.MaxDisplayAge)
	stepper := core.NewFixedStep(d.TPS)
	events := make(chan tcell.Event)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		for {
			ev := d.Screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return nil
			}
		}
	})
	g.Go(func() error {
		defer d.Screen.Fini()
		return d.loop(ctx, view, stepper, events)
	})

	err := g.Wait()
	if errors.Is(err, errQuit) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (d *Driver) loop(ctx context.Context, view *View, stepper *core.FixedStep, events <-chan tcell.Event) error {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		d.draw(view)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				d.Session.Apply(CommandForKey(ev))
				if d.Session.Done() {
					return errQuit
				}
			case *tcell.EventResize:
				view.Resize()
				d.Screen.Sync()
			}
		case <-ticker.C:
			d.catchUp(stepper)
		}
	}
}

func (d *Driver) catchUp(stepper *core.FixedStep) int {
	ticks := 0
	for stepper.ShouldStep() {
		d.Session.Tick()
		ticks++
		if ticks == maxTicksPerFrame {
			stepper.Reset()
			break
		}
	}
	return ticks
}

func (d *Driver) draw(view *View) {
	var lines []string
	if d.Console != nil {
		lines = d.Console.Tail(view.Layout().Console.H)
	}
	view.Draw(d.Session.Sim().Cells(), d.Session.Parameters(), lines)
}
