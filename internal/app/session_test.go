package app

import (
	"io"
	"log"
	"slices"
	"strings"
	"testing"

	"agelife/internal/core"
	"agelife/internal/life"
)

type countingSim struct {
	steps  int
	resets []int64
}

func (c *countingSim) Name() string     { return "counting" }
func (c *countingSim) Size() core.Size  { return core.Size{W: 1, H: 1} }
func (c *countingSim) Reset(seed int64) { c.resets = append(c.resets, seed) }
func (c *countingSim) Step()            { c.steps++ }
func (c *countingSim) Cells() []uint8   { return []uint8{0} }

func newLifeSession(t *testing.T, cfg *Config) (*Session, *life.Life, *Console) {
	t.Helper()
	l, err := life.New(life.Config{Width: 12, Height: 10, Seed: cfg.Seed, Border: life.Clamp, Workers: 1})
	if err != nil {
		t.Fatalf("life.New: %v", err)
	}
	console := NewConsole(16)
	return NewSession(l, cfg, log.New(console, "", 0)), l, console
}

func TestSessionSeedsOnStart(t *testing.T) {
	cfg := NewConfig()
	sim := &countingSim{}
	s := NewSession(sim, cfg, log.New(io.Discard, "", 0))

	if !slices.Equal(sim.resets, []int64{cfg.Seed}) {
		t.Fatalf("expected one reset with seed %d, got %v", cfg.Seed, sim.resets)
	}
	if s.State() != Play || s.Seed() != cfg.Seed {
		t.Fatalf("unexpected initial state %v seed %d", s.State(), s.Seed())
	}
}

func TestSessionSkipRatio(t *testing.T) {
	cfg := NewConfig()
	cfg.Skip = 3
	sim := &countingSim{}
	s := NewSession(sim, cfg, log.New(io.Discard, "", 0))

	stepped := 0
	for i := 0; i < 9; i++ {
		if s.Tick() {
			stepped++
		}
	}
	if stepped != 3 || sim.steps != 3 {
		t.Fatalf("skip 3 over 9 ticks should step 3 times, got %d (sim %d)", stepped, sim.steps)
	}

	s.Apply(CmdFaster)
	s.Apply(CmdFaster)
	s.Apply(CmdFaster)
	if s.Skip() != 1 {
		t.Fatalf("skip should bottom out at 1, got %d", s.Skip())
	}
	for i := 0; i < MaxSkip+5; i++ {
		s.Apply(CmdSlower)
	}
	if s.Skip() != MaxSkip {
		t.Fatalf("skip should top out at %d, got %d", MaxSkip, s.Skip())
	}
}

func TestSessionPauseAndSingleStep(t *testing.T) {
	sim := &countingSim{}
	s := NewSession(sim, NewConfig(), log.New(io.Discard, "", 0))

	s.Apply(CmdTogglePlay)
	if s.State() != Pause {
		t.Fatalf("expected pause, got %v", s.State())
	}
	for i := 0; i < 5; i++ {
		if s.Tick() {
			t.Fatal("paused session must not step")
		}
	}

	s.Apply(CmdStepOnce)
	if !s.Tick() || sim.steps != 1 {
		t.Fatalf("single step should advance once, got %d", sim.steps)
	}
	if s.Tick() {
		t.Fatal("single step must not repeat")
	}

	s.Apply(CmdTogglePlay)
	if !s.Tick() {
		t.Fatal("resumed session with skip 1 should step every tick")
	}
}

func TestSessionRandomizeAndReplay(t *testing.T) {
	cfg := NewConfig()
	s, l, _ := newLifeSession(t, cfg)
	s.newSeed = func() int64 { return 1234 }

	for i := 0; i < 4; i++ {
		s.Tick()
	}
	if l.Generation() != 4 {
		t.Fatalf("expected generation 4, got %d", l.Generation())
	}

	s.Apply(CmdRandomize)
	if s.Seed() != 1234 || l.Seed() != 1234 {
		t.Fatalf("randomize should reseed with the fresh seed, got %d/%d", s.Seed(), l.Seed())
	}
	if l.Generation() != 0 {
		t.Fatalf("randomize should reset the generation count, got %d", l.Generation())
	}
	seeded := slices.Clone(l.Cells())

	s.Tick()
	s.Tick()
	s.Apply(CmdReplay)
	if l.Generation() != 0 || !slices.Equal(seeded, l.Cells()) {
		t.Fatal("replay should restore the same starting pattern")
	}
}

func TestSessionToggleBorderLogs(t *testing.T) {
	s, l, console := newLifeSession(t, NewConfig())

	s.Apply(CmdToggleBorder)
	if l.Policy() != life.Wrap {
		t.Fatalf("expected wrap, got %v", l.Policy())
	}
	lines := console.Lines()
	if len(lines) == 0 || lines[len(lines)-1] != "border policy: wrap" {
		t.Fatalf("expected a border log line, got %q", lines)
	}

	plain := NewSession(&countingSim{}, NewConfig(), log.New(console, "", 0))
	plain.Apply(CmdToggleBorder)
	if last := console.Tail(1); len(last) != 1 || !strings.Contains(last[0], "no border policy") {
		t.Fatalf("expected an unsupported notice, got %q", last)
	}
}

func TestSessionQuit(t *testing.T) {
	s := NewSession(&countingSim{}, NewConfig(), log.New(io.Discard, "", 0))
	if s.Done() {
		t.Fatal("new session should not be done")
	}
	s.Apply(CmdQuit)
	if !s.Done() {
		t.Fatal("quit command should finish the session")
	}
}

func TestSessionParameters(t *testing.T) {
	cfg := NewConfig()
	cfg.Skip = 4
	s, _, _ := newLifeSession(t, cfg)
	s.Apply(CmdTogglePlay)

	snap := s.Parameters()
	for key, want := range map[string]string{
		"state":  "Pause",
		"speed":  "1/4",
		"size":   "12x10",
		"border": "clamp",
		"cycle":  "0",
	} {
		p, ok := snap.Lookup(key)
		if !ok || p.Value != want {
			t.Fatalf("parameter %q = %+v (ok=%v), want %q", key, p, ok, want)
		}
	}
}

func TestPlayerStateAndCommandStrings(t *testing.T) {
	p := Play
	p.Toggle()
	if p.String() != "Pause" {
		t.Fatalf("unexpected %q", p)
	}
	if CmdToggleBorder.String() != "toggle border" {
		t.Fatalf("unexpected %q", CmdToggleBorder)
	}
	if Command(200).String() != "Command(200)" {
		t.Fatalf("unexpected %q", Command(200))
	}
}
