package life

import (
	"fmt"

	"agelife/internal/core"
)

// MaxDisplayAge caps the age encoded into the Cells projection.
const MaxDisplayAge = 10

// Life runs Conway's Game of Life with per-cell ages on a fixed-size grid.
// It owns the double buffer; drivers only see read-only views and issue
// Step, Reset and TogglePolicy.
type Life struct {
	cfg    Config
	buf    *DoubleBuffer
	policy BorderPolicy
	seed   int64
	rng    *core.RNG

	display []uint8
}

// New returns a Life simulation for cfg. The grid starts empty; call Reset
// to seed it.
func New(cfg Config) (*Life, error) {
	buf, err := NewDoubleBuffer(cfg.Width, cfg.Height)
	if err != nil {
		return nil, fmt.Errorf("life: %w", err)
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	return &Life{
		cfg:     cfg,
		buf:     buf,
		policy:  cfg.Border,
		seed:    cfg.Seed,
		rng:     core.NewRNG(cfg.Seed),
		display: make([]uint8, cfg.Width*cfg.Height),
	}, nil
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.cfg.Width, H: l.cfg.Height} }

// Reset randomizes both buffers from seed and restarts the generation count.
// A zero seed reuses the configured one.
func (l *Life) Reset(seed int64) {
	if seed == 0 {
		seed = l.cfg.Seed
	}
	l.seed = seed
	l.rng.Seed(seed)
	l.buf.Randomize(l.rng)
	l.buf.resetGeneration()
}

// Seed returns the seed used by the last Reset.
func (l *Life) Seed() int64 { return l.seed }

// Step advances the simulation by one generation under the active policy.
func (l *Life) Step() {
	StepParallel(l.buf, l.policy, l.cfg.Workers)
}

// Cells projects the render buffer into display values: 0 for dead cells and
// 1+min(age, MaxDisplayAge) for live ones.
func (l *Life) Cells() []uint8 {
	g := l.buf.RenderBuffer()
	for i, c := range g.cells {
		if !c.alive {
			l.display[i] = 0
			continue
		}
		age := c.age
		if age > MaxDisplayAge {
			age = MaxDisplayAge
		}
		l.display[i] = uint8(age) + 1
	}
	return l.display
}

// RenderBuffer returns the latest completed generation.
func (l *Life) RenderBuffer() *Grid { return l.buf.RenderBuffer() }

// Generation returns the number of generations since the last Reset.
func (l *Life) Generation() uint64 { return l.buf.Generation() }

// Policy returns the active border policy.
func (l *Life) Policy() BorderPolicy { return l.policy }

// SetPolicy replaces the active border policy.
func (l *Life) SetPolicy(p BorderPolicy) { l.policy = p }

// TogglePolicy switches between Clamp and Wrap.
func (l *Life) TogglePolicy() { l.policy.Toggle() }

// BorderPolicy returns the active policy name.
func (l *Life) BorderPolicy() string { return l.policy.String() }

// Stats measures the latest completed generation.
func (l *Life) Stats() Stats { return Measure(l.buf.RenderBuffer(), l.buf.Generation()) }

// Parameters reports the values shown in the drivers' config panels.
func (l *Life) Parameters() core.ParameterSnapshot {
	stats := l.Stats()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				core.StringParam("size", "Grid size", fmt.Sprintf("%dx%d", l.cfg.Width, l.cfg.Height)),
				core.StringParam("border", "Border policy", l.policy.String()),
				core.Int64Param("seed", "Seed", l.seed),
				core.IntParam("workers", "Workers", l.cfg.Workers),
			},
		},
		{
			Name: "Population",
			Params: []core.Parameter{
				core.Uint64Param("cycle", "Cycle count", stats.Generation),
				core.IntParam("alive", "Alive", stats.Population),
				core.IntParam("oldest", "Oldest", int(stats.OldestAge)),
				core.StringParam("mean_age", "Mean age", fmt.Sprintf("%.2f", stats.MeanAge)),
			},
		},
	}}
}

func init() {
	core.Register("life", func(cfg map[string]string) (core.Sim, error) {
		c, err := FromMap(cfg)
		if err != nil {
			return nil, err
		}
		l, err := New(c)
		if err != nil {
			return nil, err
		}
		return l, nil
	})
}
