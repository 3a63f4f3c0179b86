package fault

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/harveysanders/picooled/console"
)

type fakeLED struct {
	log []string
}

func (l *fakeLED) High() { l.log = append(l.log, "high") }
func (l *fakeLED) Low()  { l.log = append(l.log, "low") }

func TestPulse(t *testing.T) {
	var out bytes.Buffer
	led := &fakeLED{}
	b := NewBlinker(console.NewLogger(&out, slog.LevelInfo), led)

	var slept []time.Duration
	b.sleep = func(d time.Duration) {
		slept = append(slept, d)
		led.log = append(led.log, "sleep")
	}

	b.Pulse("configure I2C", slog.Any("reason", errors.New("timeout")))
	b.Pulse("configure I2C", slog.Any("reason", errors.New("timeout")))

	want := "high sleep low sleep high sleep low sleep"
	if got := strings.Join(led.log, " "); got != want {
		t.Errorf("led: got %q, want %q", got, want)
	}

	var total time.Duration
	for _, d := range slept {
		total += d
	}
	if total != 2*time.Second {
		t.Errorf("two pulses should take 2s, took %v", total)
	}

	logged := out.String()
	if n := strings.Count(logged, "level=ERROR"); n != 2 {
		t.Errorf("expected 2 error lines, got %d:\n%s", n, logged)
	}
	if !strings.Contains(logged, `msg="configure I2C" reason=timeout`) {
		t.Errorf("unexpected log output:\n%s", logged)
	}
}

func TestPulseWithoutLED(t *testing.T) {
	b := NewBlinker(nil, nil)
	calls := 0
	b.sleep = func(time.Duration) { calls++ }

	b.Pulse("no led")
	if calls != 2 {
		t.Errorf("sleep calls: got %d, want 2", calls)
	}
}
