// Package countdown implements the click counter: two debounced buttons and a
// one-second countdown rendered on a text display.
//
// Button A (re)starts a countdown from 9. Button B counts clicks while the
// countdown runs. When the countdown reaches zero the display shows
// "ZERO! C:n" and further B presses are ignored until the next A press.
package countdown

import (
	"strconv"
	"time"
)

// State is the countdown's lifecycle phase.
type State uint8

const (
	// Idle is the startup state: inactive and finished, never started.
	Idle State = iota
	// Running counts down once per tick interval.
	Running
	// Expired is reached from Running when the value hits zero.
	Expired
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Expired:
		return "expired"
	default:
		return "unknown"
	}
}

// Change is the outcome of Advance.
type Change uint8

const (
	NoChange Change = iota
	Decremented
	Finished
)

// Snapshot is a point-in-time copy of the countdown.
type Snapshot struct {
	State    State
	Value    int
	Clicks   int
	Active   bool
	Finished bool
}

// Countdown is the timer state machine. It is owned by the main loop and is
// not safe for concurrent use.
type Countdown struct {
	start    int
	interval time.Duration

	value    int
	clicks   int
	active   bool
	finished bool
	expired  bool // reached zero at least once
	lastTick time.Duration
}

// NewCountdown returns an Idle countdown that starts from start and
// decrements once per interval.
func NewCountdown(start int, interval time.Duration) *Countdown {
	return &Countdown{
		start:    start,
		interval: interval,
		finished: true,
	}
}

// Start (re)starts the countdown at now, from any state.
func (c *Countdown) Start(now time.Duration) {
	c.value = c.start
	c.clicks = 0
	c.active = true
	c.finished = false
	c.lastTick = now
}

// Running reports whether the countdown is active and not finished.
func (c *Countdown) Running() bool { return c.active && !c.finished }

// Click counts a B press. It returns false, leaving the count alone, when the
// countdown is not running.
func (c *Countdown) Click() bool {
	if !c.Running() {
		return false
	}
	c.clicks++
	return true
}

// Advance applies at most one tick. Once a full interval has elapsed since
// the last tick the value drops by one; a stalled loop still gets a single
// decrement, not one per missed interval. Reaching zero finishes the
// countdown in the same call.
func (c *Countdown) Advance(now time.Duration) Change {
	if !c.Running() {
		return NoChange
	}
	if now-c.lastTick < c.interval {
		return NoChange
	}

	change := NoChange
	if c.value > 0 {
		c.value--
		c.lastTick = now
		change = Decremented
	}
	if c.value == 0 {
		c.active = false
		c.finished = true
		c.expired = true
		change = Finished
	}
	return change
}

// State returns the lifecycle phase.
func (c *Countdown) State() State {
	switch {
	case c.Running():
		return Running
	case c.expired:
		return Expired
	default:
		return Idle
	}
}

// Snapshot returns a copy of the current state.
func (c *Countdown) Snapshot() Snapshot {
	return Snapshot{
		State:    c.State(),
		Value:    c.value,
		Clicks:   c.clicks,
		Active:   c.active,
		Finished: c.finished,
	}
}

// AppendStatus appends the display text for the current state to buf:
// "T:{value} C:{clicks}" while running, "ZERO! C:{clicks}" once expired.
func (c *Countdown) AppendStatus(buf []byte) []byte {
	if c.State() == Expired {
		buf = append(buf, "ZERO! C:"...)
		return strconv.AppendInt(buf, int64(c.clicks), 10)
	}
	buf = append(buf, "T:"...)
	buf = strconv.AppendInt(buf, int64(c.value), 10)
	buf = append(buf, " C:"...)
	return strconv.AppendInt(buf, int64(c.clicks), 10)
}
