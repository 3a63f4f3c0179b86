package display

import (
	"errors"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/hd44780i2c"
)

// Common I2C backpack addresses for HD44780 modules.
var lcdAddrs = []uint8{0x27, 0x3F}

const (
	lcdColumns = 16
	lcdRows    = 2
)

// CharLCD is a Presenter for a 16x2 HD44780 character LCD. Pixel positions
// are scaled onto the character grid as if the LCD were a 128x64 panel, so
// frames laid out for the OLED land in the matching cell.
type CharLCD struct {
	device hd44780i2c.Device
	cells  [lcdRows][lcdColumns]byte
}

// NewCharLCD takes a preconfigured I2C bus and initializes the LCD on the
// first common address that acknowledges. If no LCD answers on 0x27 or 0x3F,
// an error is returned.
func NewCharLCD(bus drivers.I2C) (*CharLCD, error) {
	for _, a := range lcdAddrs {
		if err := bus.Tx(uint16(a), []byte{0}, nil); err != nil {
			continue
		}
		dev := hd44780i2c.New(bus, a)
		dev.Configure(hd44780i2c.Config{
			Width:  lcdColumns,
			Height: lcdRows,
		})
		l := &CharLCD{device: dev}
		l.Clear()
		l.device.ClearDisplay()
		return l, nil
	}
	return nil, errors.New("LCD not found on addresses: 0x27, 0x3f")
}

// Clear blanks the cell buffer.
func (l *CharLCD) Clear() {
	for r := range l.cells {
		for c := range l.cells[r] {
			l.cells[r][c] = ' '
		}
	}
}

// ClearRect blanks every cell the rectangle touches.
func (l *CharLCD) ClearRect(x, y, w, h int16) {
	if w <= 0 || h <= 0 {
		return
	}
	c0, r0 := cell(x, y)
	c1, r1 := cell(x+w-1, y+h-1)
	for r := max(r0, 0); r <= min(r1, lcdRows-1); r++ {
		for c := max(c0, 0); c <= min(c1, lcdColumns-1); c++ {
			l.cells[r][c] = ' '
		}
	}
}

// DrawText writes text into the cell under (x, y). Text past the last column
// is truncated.
func (l *CharLCD) DrawText(x, y int16, text string) {
	c, r := cell(x, y)
	if r < 0 || r >= lcdRows {
		return
	}
	for i := 0; i < len(text); i++ {
		col := c + i
		if col < 0 {
			continue
		}
		if col >= lcdColumns {
			break
		}
		l.cells[r][col] = text[i]
	}
}

// Present rewrites both rows.
func (l *CharLCD) Present() error {
	for r := range l.cells {
		l.device.SetCursor(0, uint8(r))
		l.device.Print(l.cells[r][:])
	}
	return nil
}

// Row returns the buffered text of row r.
func (l *CharLCD) Row(r int) string {
	if r < 0 || r >= lcdRows {
		return ""
	}
	return string(l.cells[r][:])
}

// cell maps a pixel position on a 128x64 layout to a column and row.
func cell(x, y int16) (col, row int) {
	col = int(x) * lcdColumns / int(Width)
	row = int(y) * lcdRows / int(Height)
	if x < 0 {
		col = -1
	}
	if y < 0 {
		row = -1
	}
	return col, row
}
