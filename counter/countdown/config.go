package countdown

import (
	"errors"
	"time"
)

// Timing and layout constants of the counter.
const (
	DebounceTime   = 200 * time.Millisecond
	CountdownStart = 9
	TickInterval   = time.Second
	LoopPause      = 20 * time.Millisecond
)

// Scope selects which edges share a debounce clock.
type Scope uint8

const (
	// ScopeShared uses one clock for both buttons: a press on A suppresses a
	// press on B inside the debounce window, and vice versa.
	ScopeShared Scope = iota
	// ScopePerButton keeps a clock per button.
	ScopePerButton
)

func (s Scope) String() string {
	switch s {
	case ScopeShared:
		return "shared"
	case ScopePerButton:
		return "per-button"
	default:
		return "unknown"
	}
}

// ParseScope maps a link-time scope name to a Scope. Empty means shared.
func ParseScope(s string) (Scope, error) {
	switch s {
	case "", "shared":
		return ScopeShared, nil
	case "per-button":
		return ScopePerButton, nil
	default:
		return ScopeShared, errors.New("unknown debounce scope: " + s)
	}
}

// Config holds the counter's tunables. Zero fields take the defaults.
type Config struct {
	Debounce     time.Duration
	Scope        Scope
	Start        int
	TickInterval time.Duration
	Pause        time.Duration
}

// DefaultConfig returns the counter's board configuration.
func DefaultConfig() Config {
	return Config{
		Debounce:     DebounceTime,
		Scope:        ScopeShared,
		Start:        CountdownStart,
		TickInterval: TickInterval,
		Pause:        LoopPause,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Debounce <= 0 {
		c.Debounce = d.Debounce
	}
	if c.Start <= 0 {
		c.Start = d.Start
	}
	if c.TickInterval <= 0 {
		c.TickInterval = d.TickInterval
	}
	if c.Pause <= 0 {
		c.Pause = d.Pause
	}
	return c
}

// Clock returns the time since boot on a monotonic base.
type Clock func() time.Duration

// Uptime returns a Clock starting at zero now.
func Uptime() Clock {
	start := time.Now()
	return func() time.Duration { return time.Since(start) }
}
