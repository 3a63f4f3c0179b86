package countdown

import (
	"math/rand"
	"testing"
	"time"
)

func TestNewCountdownIsIdle(t *testing.T) {
	c := NewCountdown(CountdownStart, TickInterval)
	s := c.Snapshot()

	if s.State != Idle {
		t.Errorf("State: got %v, want idle", s.State)
	}
	if s.Value != 0 || s.Clicks != 0 {
		t.Errorf("got value=%d clicks=%d, want 0/0", s.Value, s.Clicks)
	}
	if s.Active || !s.Finished {
		t.Errorf("got active=%v finished=%v, want false/true", s.Active, s.Finished)
	}
	if c.Click() {
		t.Error("Click should be refused while idle")
	}
	if c.Advance(time.Hour) != NoChange {
		t.Error("Advance should do nothing while idle")
	}
}

func TestCountdownStart(t *testing.T) {
	c := NewCountdown(CountdownStart, TickInterval)
	c.Start(0)

	s := c.Snapshot()
	if s.State != Running || s.Value != 9 || s.Clicks != 0 || !s.Active || s.Finished {
		t.Errorf("unexpected snapshot after Start: %+v", s)
	}
}

func TestCountdownTickCadence(t *testing.T) {
	c := NewCountdown(CountdownStart, TickInterval)
	c.Start(0)

	if got := c.Advance(999 * ms); got != NoChange {
		t.Fatalf("999ms: got %v, want NoChange", got)
	}
	if got := c.Advance(time.Second); got != Decremented {
		t.Fatalf("1s: got %v, want Decremented", got)
	}
	if c.Snapshot().Value != 8 {
		t.Fatalf("value: got %d, want 8", c.Snapshot().Value)
	}
	// The interval restarts from the tick, not from Start.
	if got := c.Advance(1999 * ms); got != NoChange {
		t.Fatalf("1999ms: got %v, want NoChange", got)
	}
	if got := c.Advance(2 * time.Second); got != Decremented {
		t.Fatalf("2s: got %v, want Decremented", got)
	}
}

func TestCountdownStallDecrementsOnce(t *testing.T) {
	c := NewCountdown(CountdownStart, TickInterval)
	c.Start(0)

	if got := c.Advance(5 * time.Second); got != Decremented {
		t.Fatalf("got %v, want Decremented", got)
	}
	if c.Snapshot().Value != 8 {
		t.Errorf("value after 5s stall: got %d, want 8", c.Snapshot().Value)
	}
	if got := c.Advance(5*time.Second + 999*ms); got != NoChange {
		t.Errorf("got %v, want NoChange", got)
	}
	if got := c.Advance(6 * time.Second); got != Decremented {
		t.Errorf("got %v, want Decremented", got)
	}
}

func TestCountdownFinishesInSameAdvance(t *testing.T) {
	c := NewCountdown(CountdownStart, TickInterval)
	c.Start(0)

	for i := 1; i <= 8; i++ {
		if got := c.Advance(time.Duration(i) * time.Second); got != Decremented {
			t.Fatalf("tick %d: got %v, want Decremented", i, got)
		}
	}
	if got := c.Advance(9 * time.Second); got != Finished {
		t.Fatalf("tick 9: got %v, want Finished", got)
	}

	s := c.Snapshot()
	if s.State != Expired || s.Value != 0 || s.Active || !s.Finished {
		t.Errorf("unexpected snapshot: %+v", s)
	}
	if c.Click() {
		t.Error("Click should be refused after expiry")
	}
	if c.Advance(20*time.Second) != NoChange {
		t.Error("Advance should do nothing after expiry")
	}
}

func TestCountdownRestartWhileRunning(t *testing.T) {
	c := NewCountdown(CountdownStart, TickInterval)
	c.Start(0)
	c.Click()
	c.Click()
	c.Advance(time.Second)
	c.Advance(2 * time.Second)

	c.Start(2500 * ms)
	s := c.Snapshot()
	if s.Value != 9 || s.Clicks != 0 || s.State != Running {
		t.Errorf("unexpected snapshot after restart: %+v", s)
	}
	if c.Advance(3400*ms) != NoChange {
		t.Error("tick interval should restart from the A press")
	}
}

func TestCountdownRestartAfterExpiry(t *testing.T) {
	c := NewCountdown(1, TickInterval)
	c.Start(0)
	if c.Advance(time.Second) != Finished {
		t.Fatal("expected Finished")
	}

	c.Start(2 * time.Second)
	if c.State() != Running {
		t.Errorf("State: got %v, want running", c.State())
	}
}

func TestCountdownMonotonic(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	c := NewCountdown(CountdownStart, TickInterval)
	c.Start(0)

	now := time.Duration(0)
	prev := c.Snapshot().Value
	decrements := 0
	for i := 0; i < 2000 && c.Running(); i++ {
		now += time.Duration(rng.Intn(400)) * ms
		if c.Advance(now) != NoChange {
			decrements++
		}
		v := c.Snapshot().Value
		if v > prev {
			t.Fatalf("value increased from %d to %d at %v", prev, v, now)
		}
		if v < 0 {
			t.Fatalf("value went negative at %v", now)
		}
		if prev-v > 1 {
			t.Fatalf("value dropped by %d in one Advance", prev-v)
		}
		prev = v
	}
	if decrements != CountdownStart {
		t.Errorf("decrements: got %d, want %d", decrements, CountdownStart)
	}
	if c.State() != Expired {
		t.Errorf("State: got %v, want expired", c.State())
	}
}

func TestAppendStatus(t *testing.T) {
	c := NewCountdown(CountdownStart, TickInterval)
	c.Start(0)
	c.Click()

	if got := string(c.AppendStatus(nil)); got != "T:9 C:1" {
		t.Errorf("running: got %q", got)
	}

	for i := 1; i <= 9; i++ {
		c.Advance(time.Duration(i) * time.Second)
	}
	if got := string(c.AppendStatus(nil)); got != "ZERO! C:1" {
		t.Errorf("expired: got %q", got)
	}

	buf := make([]byte, 0, 4)
	buf = append(buf, "x"...)
	if got := string(c.AppendStatus(buf)); got != "xZERO! C:1" {
		t.Errorf("append: got %q", got)
	}
}

func TestStateString(t *testing.T) {
	tests := map[State]string{Idle: "idle", Running: "running", Expired: "expired", State(9): "unknown"}
	for s, want := range tests {
		if s.String() != want {
			t.Errorf("%d: got %q, want %q", s, s.String(), want)
		}
	}
}
