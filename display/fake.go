package display

import (
	"errors"
	"sync"
)

// Frame is one presented buffer recorded by FakePresenter.
type Frame struct {
	Cleared bool
	Lines   []Line
}

// Text returns the frame's lines joined by newlines.
func (f Frame) Text() string {
	s := ""
	for i, l := range f.Lines {
		if i > 0 {
			s += "\n"
		}
		s += l.Text
	}
	return s
}

// FakePresenter records presented frames for test assertions.
type FakePresenter struct {
	mu      sync.Mutex
	pending Frame

	// Frames contains every frame passed to Present, oldest first.
	Frames []Frame

	// Regions contains every rectangle passed to ClearRect.
	Regions []Rect

	// PresentError, if set, will be returned by Present. The frame is still
	// recorded as dropped in Dropped.
	PresentError error

	// Dropped counts frames that failed to present.
	Dropped int
}

// NewFakePresenter creates a FakePresenter for testing.
func NewFakePresenter() *FakePresenter {
	return &FakePresenter{}
}

func (f *FakePresenter) Clear() {
	f.mu.Lock()
	f.pending = Frame{Cleared: true}
	f.mu.Unlock()
}

func (f *FakePresenter) ClearRect(x, y, w, h int16) {
	f.mu.Lock()
	f.Regions = append(f.Regions, Rect{X: x, Y: y, W: w, H: h})
	f.mu.Unlock()
}

func (f *FakePresenter) DrawText(x, y int16, text string) {
	f.mu.Lock()
	f.pending.Lines = append(f.pending.Lines, Line{X: x, Y: y, Text: text})
	f.mu.Unlock()
}

func (f *FakePresenter) Present() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	frame := f.pending
	f.pending = Frame{}
	if f.PresentError != nil {
		f.Dropped++
		return f.PresentError
	}
	f.Frames = append(f.Frames, frame)
	return nil
}

// Texts returns the text of every recorded frame.
func (f *FakePresenter) Texts() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.Frames))
	for i, fr := range f.Frames {
		out[i] = fr.Text()
	}
	return out
}

// Last returns the most recent frame, or a zero Frame.
func (f *FakePresenter) Last() Frame {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.Frames) == 0 {
		return Frame{}
	}
	return f.Frames[len(f.Frames)-1]
}

// Reset clears recorded frames.
func (f *FakePresenter) Reset() {
	f.mu.Lock()
	f.pending = Frame{}
	f.Frames = nil
	f.Regions = nil
	f.PresentError = nil
	f.Dropped = 0
	f.mu.Unlock()
}

// Tx is one I2C transaction recorded by FakeBus.
type Tx struct {
	Addr uint16
	W    []byte
	Rn   int
}

// FakeBus implements drivers.I2C for host-side tests.
type FakeBus struct {
	mu  sync.Mutex
	txs []Tx

	// Err, if set, is returned by every Tx after it is recorded.
	Err error

	// Absent lists addresses that do not acknowledge.
	Absent map[uint16]bool
}

// ErrNoAck is returned for transactions to absent addresses.
var ErrNoAck = errors.New("i2c: no ack")

func (b *FakeBus) Tx(addr uint16, w, r []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.txs = append(b.txs, Tx{Addr: addr, W: append([]byte(nil), w...), Rn: len(r)})
	if b.Absent[addr] {
		return ErrNoAck
	}
	return b.Err
}

// Txs returns the recorded transactions.
func (b *FakeBus) Txs() []Tx {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Tx(nil), b.txs...)
}

// BytesTo returns the total payload written to addr.
func (b *FakeBus) BytesTo(addr uint16) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, tx := range b.txs {
		if tx.Addr == addr {
			n += len(tx.W)
		}
	}
	return n
}
