//go:build tinygo

package hal

import (
	"machine"
)

// Options carries board handles that only some targets have.
type Options struct {
	// BacklightPWM dims the backlight by duty cycle. Nil switches it fully
	// on or off.
	BacklightPWM PWMGroup
}

type tinyGoHAL struct {
	logger *serialLogger
	i2c    *machineI2C
	panel  *st7789Panel
	clock  tinyGoClock
}

// New returns the T-Watch S3 (ESP32-S3) HAL with a switched backlight.
func New() HAL {
	return NewWithOptions(Options{})
}

// NewWithOptions returns the firmware HAL.
//
// Logs go to the default serial port; the PMU sits on I2C0 and the panel on SPI0.
// Nothing is configured here: bring-up owns the order in which buses come up.
func NewWithOptions(o Options) HAL {
	return &tinyGoHAL{
		logger: &serialLogger{out: machine.Serial},
		i2c:    &machineI2C{bus: machine.I2C0},
		panel:  &st7789Panel{spi: machine.SPI0, pwm: o.BacklightPWM},
	}
}

func (h *tinyGoHAL) Logger() Logger { return h.logger }
func (h *tinyGoHAL) I2C() I2C       { return h.i2c }
func (h *tinyGoHAL) Panel() Panel   { return h.panel }
func (h *tinyGoHAL) Clock() Clock   { return h.clock }
