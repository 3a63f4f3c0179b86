package stick

import (
	"testing"
	"time"

	"github.com/harveysanders/picooled/display"
)

func TestReadScalesTo12Bits(t *testing.T) {
	tests := []struct {
		name string
		raw  uint16
		want uint16
	}{
		{"zero", 0, 0},
		{"centre", 0x8000, 2048},
		{"full scale", 0xFFFF, 4095},
		{"low nibble ignored", 0x001F, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReader(&FakeAxis{Readings: []uint16{tt.raw}}, &FakeAxis{Readings: []uint16{tt.raw}})
			s := r.Read()
			if s.X != tt.want || s.Y != tt.want {
				t.Errorf("Read() = %+v, want %d on both axes", s, tt.want)
			}
		})
	}
}

func TestSampleMessage(t *testing.T) {
	msg := Sample{X: 2048, Y: 17}.Message()

	if msg.Clear {
		t.Error("joystick frames must not clear the whole panel")
	}
	if msg.Region != (display.Rect{X: 30, Y: 10, W: 50, H: 50}) {
		t.Errorf("region: got %+v", msg.Region)
	}
	want := []display.Line{
		{X: 30, Y: 30, Text: "2048"},
		{X: 30, Y: 45, Text: "17"},
	}
	if len(msg.Lines) != len(want) {
		t.Fatalf("lines: got %+v, want %+v", msg.Lines, want)
	}
	for i := range want {
		if msg.Lines[i] != want[i] {
			t.Errorf("line %d: got %+v, want %+v", i, msg.Lines[i], want[i])
		}
	}
}

func TestStreamRendersThroughHandler(t *testing.T) {
	x := &FakeAxis{Readings: []uint16{0, 0x8000, 0xFFFF}}
	y := &FakeAxis{Readings: []uint16{0xFFFF, 0x8000, 0}}

	tick := make(chan time.Time, 3)
	for i := 0; i < 3; i++ {
		tick <- time.Time{}
	}
	close(tick)

	frames := make(chan display.Message, 3)
	if dropped := Stream(NewReader(x, y), tick, frames, nil); dropped != 0 {
		t.Fatalf("dropped %d frames", dropped)
	}
	close(frames)

	p := display.NewFakePresenter()
	display.NewHandler(p, frames, nil).Run()

	want := []string{"0\n4095", "2048\n2048", "4095\n0"}
	got := p.Texts()
	if len(got) != len(want) {
		t.Fatalf("frames: got %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("frame %d: got %q, want %q", i, got[i], want[i])
		}
	}
	if len(p.Regions) != 3 || p.Regions[0] != (display.Rect{X: 30, Y: 10, W: 50, H: 50}) {
		t.Errorf("regions: got %+v", p.Regions)
	}
}

func TestStreamDropsWhenFull(t *testing.T) {
	axis := &FakeAxis{Readings: []uint16{0x1000}}

	tick := make(chan time.Time, 4)
	for i := 0; i < 4; i++ {
		tick <- time.Time{}
	}
	close(tick)

	frames := make(chan display.Message, 1)
	if dropped := Stream(NewReader(axis, axis), tick, frames, nil); dropped != 3 {
		t.Errorf("dropped: got %d, want 3", dropped)
	}
	if axis.Reads != 8 {
		t.Errorf("axis reads: got %d, want 8", axis.Reads)
	}
}
