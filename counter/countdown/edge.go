package countdown

import (
	"math"
	"sync/atomic"
	"time"
)

// Button identifies one of the counter's push buttons.
type Button uint8

const (
	// ButtonA starts or restarts the countdown.
	ButtonA Button = iota
	// ButtonB counts clicks while the countdown runs.
	ButtonB
)

func (b Button) String() string {
	switch b {
	case ButtonA:
		return "A"
	case ButtonB:
		return "B"
	default:
		return "?"
	}
}

// EdgeSink is the handle given to the interrupt context. It can only report
// edges.
type EdgeSink interface {
	// OnEdge reports a falling edge on b at ts (time since boot) and returns
	// whether it passed the debounce check. It must not block.
	OnEdge(b Button, ts time.Duration) bool
}

// noEdge marks a debounce clock that has not accepted an edge yet.
const noEdge = math.MinInt64

// EdgeDetector turns raw falling edges into debounced press events.
//
// OnEdge runs in the interrupt context; ConsumeA, ConsumeB and SetRunning run
// in the main loop. Every field crossing that boundary is atomic: the
// interrupt side only sets pending flags and writes debounce clocks, the loop
// side only clears flags and writes the running gate.
type EdgeDetector struct {
	debounce time.Duration
	scope    Scope

	pending [2]atomic.Bool
	last    [2]atomic.Int64 // nanoseconds since boot; slot 0 only for ScopeShared
	running atomic.Bool

	rejected atomic.Uint32
	gated    atomic.Uint32
}

// NewEdgeDetector returns a detector rejecting edges that arrive within
// debounce of the last accepted one.
func NewEdgeDetector(debounce time.Duration, scope Scope) *EdgeDetector {
	d := &EdgeDetector{debounce: debounce, scope: scope}
	d.last[0].Store(noEdge)
	d.last[1].Store(noEdge)
	return d
}

// OnEdge implements EdgeSink. An accepted A edge always latches a press; an
// accepted B edge latches only while the countdown is running. The debounce
// clock advances for every accepted edge, latched or not.
func (d *EdgeDetector) OnEdge(b Button, ts time.Duration) bool {
	if b > ButtonB {
		return false
	}
	slot := d.slot(b)
	last := d.last[slot].Load()
	if last != noEdge && ts-time.Duration(last) <= d.debounce {
		d.rejected.Add(1)
		return false
	}

	switch b {
	case ButtonA:
		d.pending[ButtonA].Store(true)
	case ButtonB:
		if d.running.Load() {
			d.pending[ButtonB].Store(true)
		} else {
			d.gated.Add(1)
		}
	}
	d.last[slot].Store(int64(ts))
	return true
}

func (d *EdgeDetector) slot(b Button) int {
	if d.scope == ScopePerButton {
		return int(b)
	}
	return 0
}

// ConsumeA reports and clears a pending A press.
func (d *EdgeDetector) ConsumeA() bool { return d.pending[ButtonA].Swap(false) }

// ConsumeB reports and clears a pending B press.
func (d *EdgeDetector) ConsumeB() bool { return d.pending[ButtonB].Swap(false) }

// SetRunning publishes whether B presses should be latched.
func (d *EdgeDetector) SetRunning(running bool) { d.running.Store(running) }

// Rejected returns the number of edges dropped by the debounce check.
func (d *EdgeDetector) Rejected() uint32 { return d.rejected.Load() }

// Gated returns the number of debounced B edges dropped because the
// countdown was not running.
func (d *EdgeDetector) Gated() uint32 { return d.gated.Load() }
