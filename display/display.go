//go:build tinygo

package display

import (
	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/ssd1306"
)

// Address is the panel's I2C bus address.
const Address = 0x3C

// Device is the status display. It renders the lock state; SetLocked
// is wired as the pipeline's DisplayNotifier.
type Device struct {
	dev ssd1306.Device
}

// NewI2C creates a status display on the given I2C bus. Configure
// must be called before first use.
func NewI2C(bus drivers.I2C) *Device {
	return &Device{
		dev: ssd1306.NewI2C(bus),
	}
}

// Configure initializes the panel and shows the unlocked state.
func (d *Device) Configure() error {
	d.dev.Configure(ssd1306.Config{
		Address: Address,
		Width:   Width,
		Height:  Height,
	})
	d.dev.ClearDisplay()
	return d.show(false)
}

// SetLocked updates the lock status screen. The pipeline calls this
// exactly once per actual lock transition.
func (d *Device) SetLocked(locked bool) {
	// A draw failure only costs the status screen, never input.
	_ = d.show(locked)
}

func (d *Device) show(locked bool) error {
	text := "UNLOCKED"
	if locked {
		text = "LOCKED"
	}

	d.dev.ClearBuffer()
	x := (Width - textWidth(text)) / 2
	y := (Height - glyphHeight) / 2
	drawText(&d.dev, int16(x), int16(y), text)
	return d.dev.Display()
}
