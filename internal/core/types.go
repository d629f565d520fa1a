package core

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownSim is returned when no factory is registered under a name.
var ErrUnknownSim = errors.New("unknown sim")

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a cellular automaton must implement.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// BorderToggler is implemented by sims whose edge handling can be switched at
// runtime. BorderPolicy returns the active policy name.
type BorderToggler interface {
	TogglePolicy()
	BorderPolicy() string
}

// ParameterProvider exposes a snapshot of the sim's current settings.
type ParameterProvider interface {
	Parameters() ParameterSnapshot
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) (Sim, error)

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// Names lists the registered sims in sorted order.
func Names() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewSim looks up the named factory and builds a Sim from cfg.
func NewSim(name string, cfg map[string]string) (Sim, error) {
	factory, ok := sims[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (have %v)", ErrUnknownSim, name, Names())
	}
	return factory(cfg)
}
