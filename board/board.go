// Package board describes the hardware a bring-up sequence drives: PMU rails,
// the display SPI bus, the panel geometry and the backlight channel.
//
// All types are plain values. A profile is built once at startup and only read
// afterwards.
package board

import (
	"errors"
	"fmt"
)

// Pin is a GPIO number on the target SoC.
type Pin int16

// PinUnset marks a line that does not exist on the board. It must never be
// configured or toggled.
const PinUnset Pin = -1

// Set reports whether the pin exists on the board.
func (p Pin) Set() bool { return p >= 0 }

var (
	ErrVoltageRange  = errors.New("rail voltage out of range")
	ErrVoltageStep   = errors.New("rail voltage not on a 100mV step")
	ErrUnknownRail   = errors.New("unknown rail")
	ErrPinRequired   = errors.New("required pin unset")
	ErrPinReused     = errors.New("pin assigned twice")
	ErrBadFrequency  = errors.New("bad bus frequency")
	ErrBadSPIMode    = errors.New("spi mode must be 0..3")
	ErrPanelSize     = errors.New("panel size must be positive")
	ErrPanelBounds   = errors.New("visible window exceeds controller memory")
	ErrPanelRotation = errors.New("panel rotation must be 0..3")
	ErrPWMChannel    = errors.New("pwm channel must be 0..7")
)

// I2CConfig is the inter-chip bus used to reach the PMU.
type I2CConfig struct {
	SDA       Pin    `yaml:"sda"`
	SCL       Pin    `yaml:"scl"`
	Frequency uint32 `yaml:"frequency"`
}

// Validate checks that both lines exist and the clock is usable.
func (c I2CConfig) Validate() error {
	if !c.SDA.Set() || !c.SCL.Set() {
		return fmt.Errorf("i2c: %w", ErrPinRequired)
	}
	if c.SDA == c.SCL {
		return fmt.Errorf("i2c: %w", ErrPinReused)
	}
	if c.Frequency == 0 {
		return fmt.Errorf("i2c: %w", ErrBadFrequency)
	}
	return nil
}

// BusConfig is the serial bus between the SoC and the panel controller.
type BusConfig struct {
	Host    uint8  `yaml:"host"`
	Mode    uint8  `yaml:"mode"`
	WriteHz uint32 `yaml:"write_hz"`
	ReadHz  uint32 `yaml:"read_hz"`
	SCLK    Pin    `yaml:"sclk"`
	MOSI    Pin    `yaml:"mosi"`
	MISO    Pin    `yaml:"miso"`
	DC      Pin    `yaml:"dc"`
	CS      Pin    `yaml:"cs"`
}

// Validate checks required lines, clocks and that no pin is wired twice.
func (c BusConfig) Validate() error {
	if !c.SCLK.Set() || !c.MOSI.Set() {
		return fmt.Errorf("spi: %w", ErrPinRequired)
	}
	if c.Mode > 3 {
		return fmt.Errorf("spi: %w", ErrBadSPIMode)
	}
	if c.WriteHz == 0 {
		return fmt.Errorf("spi write clock: %w", ErrBadFrequency)
	}
	if c.MISO.Set() && c.ReadHz == 0 {
		return fmt.Errorf("spi read clock: %w", ErrBadFrequency)
	}
	if err := distinct(c.SCLK, c.MOSI, c.MISO, c.DC, c.CS); err != nil {
		return fmt.Errorf("spi: %w", err)
	}
	return nil
}

// PanelConfig describes the visible window and the controller memory behind it.
// The controller memory may be larger than the glass.
type PanelConfig struct {
	Width          int16 `yaml:"width"`
	Height         int16 `yaml:"height"`
	MemoryWidth    int16 `yaml:"memory_width"`
	MemoryHeight   int16 `yaml:"memory_height"`
	OffsetX        int16 `yaml:"offset_x"`
	OffsetY        int16 `yaml:"offset_y"`
	OffsetRotation uint8 `yaml:"offset_rotation"`
	Invert         bool  `yaml:"invert"`
	RST            Pin   `yaml:"rst"`
	Busy           Pin   `yaml:"busy"`
}

// Validate enforces that the visible window fits inside controller memory.
func (c PanelConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 || c.MemoryWidth <= 0 || c.MemoryHeight <= 0 {
		return ErrPanelSize
	}
	if c.OffsetX < 0 || c.OffsetY < 0 {
		return fmt.Errorf("%w: negative offset (%d,%d)", ErrPanelBounds, c.OffsetX, c.OffsetY)
	}
	if int(c.OffsetX)+int(c.Width) > int(c.MemoryWidth) {
		return fmt.Errorf("%w: x %d+%d > %d", ErrPanelBounds, c.OffsetX, c.Width, c.MemoryWidth)
	}
	if int(c.OffsetY)+int(c.Height) > int(c.MemoryHeight) {
		return fmt.Errorf("%w: y %d+%d > %d", ErrPanelBounds, c.OffsetY, c.Height, c.MemoryHeight)
	}
	if c.OffsetRotation > 3 {
		return ErrPanelRotation
	}
	return distinct(c.RST, c.Busy)
}

// Width, Height, memory size and offsets are in the controller's native
// orientation. OffsetRotation turns the drawing surface by 90° steps
// clockwise; the glass stays where it is in memory.

// VisibleSize is the drawing surface after rotation.
func (c PanelConfig) VisibleSize() (w, h int16) {
	if c.OffsetRotation&1 != 0 {
		return c.Height, c.Width
	}
	return c.Width, c.Height
}

// RotatedMemory is the controller memory as addressed after rotation.
func (c PanelConfig) RotatedMemory() (w, h int16) {
	if c.OffsetRotation&1 != 0 {
		return c.MemoryHeight, c.MemoryWidth
	}
	return c.MemoryWidth, c.MemoryHeight
}

// WindowOrigin returns the column and row, in rotated memory addressing,
// where the visible surface starts. Rotations that scan an axis from the far
// end move the origin there.
func (c PanelConfig) WindowOrigin() (col, row int16) {
	ox, oy := c.OffsetX, c.OffsetY
	w, h := c.VisibleSize()
	mw, mh := c.RotatedMemory()
	if c.OffsetRotation&1 != 0 {
		ox, oy = oy, ox
	}
	r := c.OffsetRotation & 3
	col, row = ox, oy
	if r == 2 || r == 3 {
		col = mw - w - ox
	}
	if r == 1 || r == 2 {
		row = mh - h - oy
	}
	return col, row
}

// MemoryPixel maps a point of the visible surface to its native controller
// memory column and row, the way the controller's row/column exchange and
// mirror bits do for each rotation.
func (c PanelConfig) MemoryPixel(x, y int16) (col, row int16) {
	oc, or := c.WindowOrigin()
	x, y = oc+x, or+y
	switch c.OffsetRotation & 3 {
	case 1:
		return c.MemoryWidth - 1 - y, x
	case 2:
		return c.MemoryWidth - 1 - x, c.MemoryHeight - 1 - y
	case 3:
		return y, c.MemoryHeight - 1 - x
	}
	return x, y
}

// BacklightConfig is the PWM channel dimming the panel.
type BacklightConfig struct {
	Pin         Pin    `yaml:"pin"`
	FrequencyHz uint32 `yaml:"frequency_hz"`
	Channel     uint8  `yaml:"channel"`
	Invert      bool   `yaml:"invert"`
}

// Present reports whether the board has a dimmable backlight.
func (c BacklightConfig) Present() bool { return c.Pin.Set() }

// Validate accepts a missing backlight; a present one needs a clock and channel.
func (c BacklightConfig) Validate() error {
	if !c.Present() {
		return nil
	}
	if c.FrequencyHz == 0 {
		return fmt.Errorf("backlight: %w", ErrBadFrequency)
	}
	if c.Channel > 7 {
		return fmt.Errorf("backlight: %w", ErrPWMChannel)
	}
	return nil
}

func distinct(pins ...Pin) error {
	for i, p := range pins {
		if !p.Set() {
			continue
		}
		for _, q := range pins[i+1:] {
			if p == q {
				return fmt.Errorf("%w: %d", ErrPinReused, p)
			}
		}
	}
	return nil
}
