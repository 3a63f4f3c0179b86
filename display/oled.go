package display

import (
	"errors"
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/ssd1306"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// baseline is the distance from the top of a proggy glyph cell to its
// baseline. tinyfont positions text by baseline, Presenter by top-left.
const baseline = 8

// cmdNOP is the SSD1306 no-op command, used to probe the bus.
const cmdNOP = 0xE3

var (
	black = color.RGBA{0, 0, 0, 0}
	white = color.RGBA{255, 255, 255, 255}
)

// OLEDConfig describes the SSD1306 panel. Zero fields take the board defaults.
type OLEDConfig struct {
	Address uint16
	Width   int16
	Height  int16
}

// OLED is a Presenter backed by an SSD1306 on I2C.
type OLED struct {
	dev  *ssd1306.Device
	font *tinyfont.Font
	w, h int16
}

// NewOLED probes the panel on bus, configures it and blanks it. The bus must
// already be configured.
func NewOLED(bus drivers.I2C, cfg OLEDConfig) (*OLED, error) {
	if cfg.Address == 0 {
		cfg.Address = Address
	}
	if cfg.Width == 0 {
		cfg.Width = Width
	}
	if cfg.Height == 0 {
		cfg.Height = Height
	}

	// ssd1306 reports nothing from Configure, so check for an ACK first.
	if err := bus.Tx(cfg.Address, []byte{0x00, cmdNOP}, nil); err != nil {
		return nil, errors.New("oled probe:" + err.Error())
	}

	dev := ssd1306.NewI2C(bus)
	dev.Configure(ssd1306.Config{
		Address:  cfg.Address,
		Width:    cfg.Width,
		Height:   cfg.Height,
		VccState: ssd1306.SWITCHCAPVCC, // Panel runs from its internal charge pump.
	})
	dev.ClearDisplay()

	return &OLED{
		dev:  dev,
		font: &proggy.TinySZ8pt7b,
		w:    cfg.Width,
		h:    cfg.Height,
	}, nil
}

// Clear blanks the frame buffer.
func (o *OLED) Clear() {
	if o == nil || o.dev == nil {
		return
	}
	o.dev.ClearBuffer()
}

// ClearRect blanks a rectangle of the frame buffer, clipped to the panel.
func (o *OLED) ClearRect(x, y, w, h int16) {
	if o == nil || o.dev == nil {
		return
	}
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, o.w), min(y+h, o.h)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			o.dev.SetPixel(px, py, black)
		}
	}
}

// DrawText draws text with its top-left corner at (x, y).
func (o *OLED) DrawText(x, y int16, text string) {
	if o == nil || o.dev == nil {
		return
	}
	tinyfont.WriteLine(o.dev, o.font, x, y+baseline, text, white)
}

// Present sends the frame buffer to the panel.
func (o *OLED) Present() error {
	if o == nil || o.dev == nil {
		return ErrNotConfigured
	}
	if err := o.dev.Display(); err != nil {
		return errors.New("oled display:" + err.Error())
	}
	return nil
}
