package buttons

import (
	"testing"
	"time"

	"github.com/harveysanders/picooled/counter/countdown"
)

type edge struct {
	b  countdown.Button
	ts time.Duration
}

// recordingSink records every edge it sees and accepts them all.
type recordingSink struct {
	edges []edge
}

func (s *recordingSink) OnEdge(b countdown.Button, ts time.Duration) bool {
	s.edges = append(s.edges, edge{b, ts})
	return true
}

func TestRouterMapsPins(t *testing.T) {
	sink := &recordingSink{}
	r := NewRouter(sink, DefaultPinA, DefaultPinB)

	if !r.Edge(5, time.Second) {
		t.Error("edge on pin A should be forwarded")
	}
	if !r.Edge(6, 2*time.Second) {
		t.Error("edge on pin B should be forwarded")
	}
	if r.Edge(7, 3*time.Second) {
		t.Error("edge on an unrelated pin should be ignored")
	}

	want := []edge{
		{countdown.ButtonA, time.Second},
		{countdown.ButtonB, 2 * time.Second},
	}
	if len(sink.edges) != len(want) {
		t.Fatalf("edges: got %+v, want %+v", sink.edges, want)
	}
	for i := range want {
		if sink.edges[i] != want[i] {
			t.Errorf("edge %d: got %+v, want %+v", i, sink.edges[i], want[i])
		}
	}
}

func TestRouterIntoDevice(t *testing.T) {
	d := countdown.NewDevice(countdown.DefaultConfig(), nopPresenter{}, nil)
	r := NewRouter(d.Edges(), DefaultPinA, DefaultPinB)

	r.Edge(DefaultPinA, time.Second)
	d.Step(time.Second)
	r.Edge(DefaultPinB, time.Second+10*time.Millisecond) // bounce off A
	r.Edge(DefaultPinB, 1500*time.Millisecond)
	d.Step(1500 * time.Millisecond)

	s := d.Snapshot()
	if s.State != countdown.Running || s.Clicks != 1 {
		t.Errorf("unexpected snapshot: %+v", s)
	}
}

type nopPresenter struct{}

func (nopPresenter) Clear()                        {}
func (nopPresenter) DrawText(int16, int16, string) {}
func (nopPresenter) Present() error                { return nil }
