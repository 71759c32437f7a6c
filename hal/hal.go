package hal

import (
	"errors"
	"time"

	"watch/board"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var (
	errPanelNoBus    = errors.New("panel: display bus not configured")
	errPanelNoAck    = errors.New("panel: controller did not respond")
	errPanelNotReady = errors.New("panel: not configured")
	errPanelBounds   = errors.New("panel: bitmap outside visible window")
)

// I2C is the inter-chip bus. Tx matches tinygo.org/x/drivers.I2C so chip
// drivers can sit directly on top of it.
type I2C interface {
	Configure(cfg board.I2CConfig) error
	Tx(addr uint16, w, r []byte) error
}

// Panel is the display controller behind its serial bus.
//
// Configuration runs bus, panel, backlight; each step needs the one before.
// DrawRGBBitmap8 takes big-endian RGB565 in visible-window coordinates.
type Panel interface {
	ConfigureBus(cfg board.BusConfig) error
	ConfigurePanel(cfg board.PanelConfig) error
	ConfigureBacklight(cfg board.BacklightConfig) error
	SetBrightness(level uint8)
	Size() (w, h int16)
	DrawRGBBitmap8(x, y int16, data []uint8, w, h int16) error
}

// Clock blocks the caller.
type Clock interface {
	Sleep(d time.Duration)
}

// HAL provides the only contact point between bring-up and the outside world.
type HAL interface {
	Logger() Logger
	I2C() I2C
	Panel() Panel
	Clock() Clock
}
