// Package display renders short text frames on the small I2C panels wired to
// the demo boards.
//
// A Presenter is the minimal text surface: clear the buffer, draw text at a
// pixel position, flush. OLED drives an SSD1306 128x64 panel, CharLCD drives an
// HD44780 16x2 module through an I2C backpack, and LogPresenter writes frames
// to a logger for boards with no panel at all.
package display

import "errors"

// Panel geometry and bus address of the SSD1306 modules used on the boards.
const (
	Width   int16  = 128
	Height  int16  = 64
	Address uint16 = 0x3C
)

// ErrNotConfigured is returned when a presenter is used before its device
// answered on the bus.
var ErrNotConfigured = errors.New("display: not configured")

// Presenter is a buffered text surface.
type Presenter interface {
	// Clear blanks the buffer. Nothing changes on the panel until Present.
	Clear()
	// DrawText draws text with its top-left corner at (x, y).
	DrawText(x, y int16, text string)
	// Present flushes the buffer to the panel.
	Present() error
}

// RegionClearer is implemented by presenters that can blank part of the
// buffer.
type RegionClearer interface {
	ClearRect(x, y, w, h int16)
}

// Line is a single run of text at a pixel position.
type Line struct {
	X, Y int16
	Text string
}

// Rect is a pixel rectangle. A zero Rect is empty.
type Rect struct {
	X, Y, W, H int16
}

// Empty reports whether r covers no pixels.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Message is one frame: an optional clear followed by lines of text.
type Message struct {
	// Clear blanks the whole buffer before drawing.
	Clear bool
	// Region is blanked before drawing when Clear is false.
	Region Rect
	Lines  []Line
}

// Text returns a frame that clears the panel and draws s at (x, y).
func Text(x, y int16, s string) Message {
	return Message{Clear: true, Lines: []Line{{X: x, Y: y, Text: s}}}
}

// Render draws msg on p and presents it. Presenters without region support
// fall back to a full clear.
func Render(p Presenter, msg Message) error {
	switch {
	case msg.Clear:
		p.Clear()
	case !msg.Region.Empty():
		if rc, ok := p.(RegionClearer); ok {
			rc.ClearRect(msg.Region.X, msg.Region.Y, msg.Region.W, msg.Region.H)
		} else {
			p.Clear()
		}
	}
	for _, l := range msg.Lines {
		p.DrawText(l.X, l.Y, l.Text)
	}
	return p.Present()
}
