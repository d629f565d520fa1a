package app

import (
	"fmt"
	"log"
	"time"

	"agelife/internal/core"
)

// MaxSkip bounds the skip ratio: at the slowest speed the sim advances once
// every MaxSkip ticks.
const MaxSkip = 32

// PlayerState tells the session whether ticks advance the sim.
type PlayerState uint8

const (
	Play PlayerState = iota
	Pause
)

func (p PlayerState) String() string {
	if p == Pause {
		return "Pause"
	}
	return "Play"
}

// Toggle flips between Play and Pause.
func (p *PlayerState) Toggle() {
	if *p == Play {
		*p = Pause
		return
	}
	*p = Play
}

// Command is a driver-independent user request.
type Command uint8

const (
	CmdNone Command = iota
	CmdQuit
	CmdRandomize
	CmdReplay
	CmdTogglePlay
	CmdToggleBorder
	CmdStepOnce
	CmdFaster
	CmdSlower
)

var commandNames = map[Command]string{
	CmdNone:         "none",
	CmdQuit:         "quit",
	CmdRandomize:    "randomize",
	CmdReplay:       "replay",
	CmdTogglePlay:   "play/pause",
	CmdToggleBorder: "toggle border",
	CmdStepOnce:     "step",
	CmdFaster:       "faster",
	CmdSlower:       "slower",
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Command(%d)", uint8(c))
}

// Session drives a sim from ticks and commands. It owns the player state and
// speed; the sim owns its grid. Drivers only read the sim's Cells and the
// session's Parameters.
type Session struct {
	sim    core.Sim
	logger *log.Logger

	state    PlayerState
	skip     int
	ticks    int
	seed     int64
	stepOnce bool
	quit     bool

	newSeed func() int64
}

// NewSession seeds sim with cfg.Seed and returns a playing session.
func NewSession(sim core.Sim, cfg *Config, logger *log.Logger) *Session {
	s := &Session{
		sim:     sim,
		logger:  logger,
		skip:    clampSkip(cfg.Skip),
		newSeed: func() int64 { return time.Now().UnixNano() },
	}
	s.reset(cfg.Seed)
	return s
}

// Sim returns the driven simulation.
func (s *Session) Sim() core.Sim { return s.sim }

// State returns the player state.
func (s *Session) State() PlayerState { return s.state }

// Skip returns the current skip ratio.
func (s *Session) Skip() int { return s.skip }

// Seed returns the seed of the current run.
func (s *Session) Seed() int64 { return s.seed }

// Done reports whether a quit command was received.
func (s *Session) Done() bool { return s.quit }

// Apply executes cmd.
func (s *Session) Apply(cmd Command) {
	switch cmd {
	case CmdNone:
	case CmdQuit:
		s.quit = true
	case CmdRandomize:
		s.reset(s.newSeed())
	case CmdReplay:
		s.reset(s.seed)
	case CmdTogglePlay:
		s.state.Toggle()
		s.logger.Printf("%s", s.state)
	case CmdToggleBorder:
		toggler, ok := s.sim.(core.BorderToggler)
		if !ok {
			s.logger.Printf("%s has no border policy", s.sim.Name())
			return
		}
		toggler.TogglePolicy()
		s.logger.Printf("border policy: %s", toggler.BorderPolicy())
	case CmdStepOnce:
		s.stepOnce = true
	case CmdFaster:
		s.setSkip(s.skip - 1)
	case CmdSlower:
		s.setSkip(s.skip + 1)
	default:
		s.logger.Printf("unhandled command %v", cmd)
	}
}

// Tick is called once per driver tick and reports whether the sim advanced.
// While playing the sim advances on every skip-th tick; while paused only a
// pending single step runs.
func (s *Session) Tick() bool {
	if s.stepOnce {
		s.stepOnce = false
		s.sim.Step()
		s.logger.Printf("stepped %s", s.sim.Name())
		return true
	}
	if s.state == Pause {
		return false
	}
	s.ticks++
	if s.ticks < s.skip {
		return false
	}
	s.ticks = 0
	s.sim.Step()
	return true
}

// Parameters combines the sim's snapshot with the session's own state.
func (s *Session) Parameters() core.ParameterSnapshot {
	var snap core.ParameterSnapshot
	if provider, ok := s.sim.(core.ParameterProvider); ok {
		snap = provider.Parameters()
	}
	snap.Groups = append(snap.Groups, core.ParameterGroup{
		Name: "Player",
		Params: []core.Parameter{
			core.StringParam("state", "Player state", s.state.String()),
			core.StringParam("speed", "Speed", fmt.Sprintf("1/%d", s.skip)),
		},
	})
	return snap
}

func (s *Session) reset(seed int64) {
	s.seed = seed
	s.ticks = 0
	s.stepOnce = false
	s.sim.Reset(seed)
	s.logger.Printf("randomized %s, seed %d", s.sim.Name(), seed)
}

func (s *Session) setSkip(skip int) {
	skip = clampSkip(skip)
	if skip == s.skip {
		return
	}
	s.skip = skip
	s.ticks = 0
	s.logger.Printf("speed 1/%d", s.skip)
}

func clampSkip(skip int) int {
	if skip < 1 {
		return 1
	}
	if skip > MaxSkip {
		return MaxSkip
	}
	return skip
}
