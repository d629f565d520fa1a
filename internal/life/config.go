package life

import "strconv"

// Config controls the Life simulation dimensions and defaults.
type Config struct {
	Width  int
	Height int

	Seed    int64
	Border  BorderPolicy
	Workers int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:   64,
		Height:  48,
		Seed:    42,
		Border:  Clamp,
		Workers: 1,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable numbers keep their defaults; an unknown border policy is an
// error.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	if cfg == nil {
		return c, nil
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Workers = parsed
		}
	}
	if v, ok := cfg["border"]; ok && v != "" {
		policy, err := ParseBorderPolicy(v)
		if err != nil {
			return c, err
		}
		c.Border = policy
	}
	return c, nil
}
