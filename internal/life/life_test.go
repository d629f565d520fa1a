package life

import (
	"errors"
	"slices"
	"testing"

	"agelife/internal/core"
)

func TestResetDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 32
	cfg.Height = 24
	cfg.Seed = 99

	l, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	l.Reset(0)
	if l.Seed() != 99 {
		t.Fatalf("zero seed should fall back to the config seed, got %d", l.Seed())
	}
	initial := slices.Clone(l.Cells())

	for i := 0; i < 5; i++ {
		l.Step()
	}
	if l.Generation() != 5 {
		t.Fatalf("expected generation 5, got %d", l.Generation())
	}

	l.Reset(0)
	if l.Generation() != 0 {
		t.Fatalf("Reset should restart the generation count, got %d", l.Generation())
	}
	if !slices.Equal(initial, l.Cells()) {
		t.Fatal("Reset with the config seed is not deterministic")
	}
	if !l.buf.ReadBuffer().Equal(l.buf.WriteBuffer()) {
		t.Fatal("Reset should leave both buffers identical")
	}

	l.Reset(777)
	other := slices.Clone(l.Cells())
	if slices.Equal(initial, other) {
		t.Fatal("different seeds should produce different patterns")
	}
}

func TestCellsProjectsAges(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 4
	cfg.Height = 1
	l, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	l.buf.seed(1, 0, AliveAt(0))
	l.buf.seed(2, 0, AliveAt(4))
	l.buf.seed(3, 0, AliveAt(250))

	want := []uint8{0, 1, 5, MaxDisplayAge + 1}
	if got := l.Cells(); !slices.Equal(got, want) {
		t.Fatalf("Cells() = %v, want %v", got, want)
	}
}

func TestPolicyToggleIsExternal(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Border = Wrap
	l, _ := New(cfg)
	l.Reset(1)

	for i := 0; i < 3; i++ {
		l.Step()
	}
	if l.Policy() != Wrap {
		t.Fatal("stepping must not change the border policy")
	}
	l.TogglePolicy()
	if l.Policy() != Clamp || l.BorderPolicy() != "clamp" {
		t.Fatalf("expected clamp after toggle, got %v", l.Policy())
	}
	l.SetPolicy(Wrap)
	if l.BorderPolicy() != "wrap" {
		t.Fatalf("expected wrap after SetPolicy, got %v", l.Policy())
	}
}

func TestParallelSessionMatchesSerial(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Border = Wrap
	serial, _ := New(cfg)
	cfg.Workers = 4
	parallel, _ := New(cfg)

	serial.Reset(8)
	parallel.Reset(8)
	for i := 0; i < 12; i++ {
		serial.Step()
		parallel.Step()
	}
	if !serial.RenderBuffer().Equal(parallel.RenderBuffer()) {
		t.Fatal("worker count must not change the outcome")
	}
}

func TestParametersReportState(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 6
	cfg.Height = 5
	l, _ := New(cfg)
	l.buf.seed(1, 1, AliveAt(3))
	l.buf.seed(2, 1, AliveAt(1))
	l.Step()

	snap := l.Parameters()
	checks := map[string]string{
		"size":   "6x5",
		"border": "clamp",
		"cycle":  "1",
		"alive":  "0",
		"oldest": "0",
	}
	for key, want := range checks {
		p, ok := snap.Lookup(key)
		if !ok {
			t.Fatalf("missing parameter %q", key)
		}
		if p.Value != want {
			t.Fatalf("parameter %q = %q, want %q", key, p.Value, want)
		}
	}
}

func TestMeasure(t *testing.T) {
	b := seeded(t, 3, 1, map[point]Cell{
		{0, 0}: AliveAt(2),
		{2, 0}: AliveAt(5),
	})
	s := Measure(b.RenderBuffer(), 7)
	if s.Generation != 7 || s.Population != 2 || s.OldestAge != 5 || s.MeanAge != 3.5 {
		t.Fatalf("unexpected stats %+v", s)
	}
	if empty := Measure(newGrid(2, 2), 0); empty.Population != 0 || empty.MeanAge != 0 {
		t.Fatalf("unexpected stats for empty grid %+v", empty)
	}
}

func TestRegisteredFactory(t *testing.T) {
	sim, err := core.NewSim("life", map[string]string{"w": "12", "h": "7", "border": "wrap"})
	if err != nil {
		t.Fatalf("NewSim: %v", err)
	}
	if got := sim.Size(); got != (core.Size{W: 12, H: 7}) {
		t.Fatalf("unexpected size %+v", got)
	}
	toggler, ok := sim.(core.BorderToggler)
	if !ok || toggler.BorderPolicy() != "wrap" {
		t.Fatal("life should expose its border policy")
	}

	if _, err := core.NewSim("life", map[string]string{"border": "mirror"}); !errors.Is(err, ErrUnknownBorderPolicy) {
		t.Fatalf("expected ErrUnknownBorderPolicy, got %v", err)
	}
	if _, err := core.NewSim("life", map[string]string{"w": "-4"}); err != nil {
		t.Fatalf("negative width should fall back to the default, got %v", err)
	}
}

func TestFromMap(t *testing.T) {
	c, err := FromMap(map[string]string{
		"w":       "10",
		"h":       "x",
		"seed":    "-5",
		"workers": "0",
		"border":  "Wrap",
	})
	if err != nil {
		t.Fatalf("FromMap: %v", err)
	}
	def := DefaultConfig()
	if c.Width != 10 || c.Height != def.Height || c.Seed != -5 || c.Workers != def.Workers || c.Border != Wrap {
		t.Fatalf("unexpected config %+v", c)
	}
	if c, _ := FromMap(nil); c != def {
		t.Fatalf("nil map should yield defaults, got %+v", c)
	}
}
