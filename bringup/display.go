package bringup

import (
	"fmt"

	"watch/board"
	"watch/gfx"
)

// PanelDriver is the display controller driver.
type PanelDriver interface {
	ConfigureBus(cfg board.BusConfig) error
	ConfigurePanel(cfg board.PanelConfig) error
	ConfigureBacklight(cfg board.BacklightConfig) error
	SetBrightness(level uint8)
	Size() (w, h int16)
	DrawRGBBitmap8(x, y int16, data []uint8, w, h int16) error
}

// Descriptor is a validated, immutable display description.
type Descriptor struct {
	bus   board.BusConfig
	panel board.PanelConfig
	light board.BacklightConfig
	valid bool
}

// NewDescriptor validates the three configs. An invalid panel window is
// rejected here, before any driver sees it.
func NewDescriptor(bus board.BusConfig, panel board.PanelConfig, light board.BacklightConfig) (Descriptor, error) {
	if err := bus.Validate(); err != nil {
		return Descriptor{}, err
	}
	if err := panel.Validate(); err != nil {
		return Descriptor{}, fmt.Errorf("panel: %w", err)
	}
	if err := light.Validate(); err != nil {
		return Descriptor{}, err
	}
	return Descriptor{bus: bus, panel: panel, light: light, valid: true}, nil
}

func (d Descriptor) Bus() board.BusConfig             { return d.bus }
func (d Descriptor) Panel() board.PanelConfig         { return d.panel }
func (d Descriptor) Backlight() board.BacklightConfig { return d.light }
func (d Descriptor) Valid() bool                      { return d.valid }

// Display owns the panel driver for the bring-up context.
type Display struct {
	drv   PanelDriver
	desc  Descriptor
	ready bool
	err   error
}

func NewDisplay(drv PanelDriver, desc Descriptor) *Display {
	return &Display{drv: drv, desc: desc}
}

// Init applies bus, then panel, then backlight. The first failure stops the
// rest and leaves the display unusable for this boot.
func (d *Display) Init() bool {
	d.ready = false
	d.err = d.init()
	d.ready = d.err == nil
	return d.ready
}

func (d *Display) init() error {
	if !d.desc.valid {
		return fmt.Errorf("display descriptor: %w", ErrDisplayNotReady)
	}
	if err := d.drv.ConfigureBus(d.desc.bus); err != nil {
		return fmt.Errorf("display bus: %w", err)
	}
	if err := d.drv.ConfigurePanel(d.desc.panel); err != nil {
		return fmt.Errorf("panel: %w", err)
	}
	if d.desc.light.Present() {
		if err := d.drv.ConfigureBacklight(d.desc.light); err != nil {
			return fmt.Errorf("backlight: %w", err)
		}
	}
	return nil
}

// Err is the reason the last Init failed.
func (d *Display) Err() error { return d.err }

func (d *Display) Ready() bool { return d.ready }

// SetBrightness sets the backlight level (0 = off, 255 = full). It does
// nothing until Init has succeeded or when the board has no backlight.
func (d *Display) SetBrightness(level uint8) {
	if !d.ready || !d.desc.light.Present() {
		return
	}
	d.drv.SetBrightness(level)
}

// Size is the visible panel area.
func (d *Display) Size() (w, h int16) {
	return d.desc.panel.VisibleSize()
}

// Commit pushes a whole frame to the panel in one transfer.
func (d *Display) Commit(f *gfx.Frame) error {
	if !d.ready {
		return ErrDisplayNotReady
	}
	fw, fh := f.Size()
	w, h := d.Size()
	if fw != w || fh != h {
		return fmt.Errorf("%w: %dx%d vs %dx%d", ErrFrameSize, fw, fh, w, h)
	}
	return d.drv.DrawRGBBitmap8(0, 0, f.Buffer(), fw, fh)
}
