//go:build tinygo

package hal

import (
	"machine"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/st7789"

	"watch/board"
)

// PWMGroup is the subset of a TinyGo PWM peripheral the backlight uses.
type PWMGroup interface {
	Configure(config machine.PWMConfig) error
	Channel(pin machine.Pin) (uint8, error)
	Top() uint32
	Set(channel uint8, value uint32)
}

// st7789Panel drives the controller over its whole memory with no driver
// offsets and places the visible window itself, so every rotation addresses
// the same glass as board.PanelConfig.MemoryPixel describes.
type st7789Panel struct {
	spi *machine.SPI
	dev st7789.Device

	dc, cs   machine.Pin
	busReady bool

	cfg      board.PanelConfig
	col, row int16
	ready    bool

	pwm        PWMGroup
	pwmCh      uint8
	bl         machine.Pin
	blInvert   bool
	lightReady bool
}

func (p *st7789Panel) ConfigureBus(cfg board.BusConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	err := p.spi.Configure(machine.SPIConfig{
		Frequency: cfg.WriteHz,
		SCK:       pin(cfg.SCLK),
		SDO:       pin(cfg.MOSI),
		SDI:       pin(cfg.MISO),
		Mode:      cfg.Mode,
	})
	if err != nil {
		return err
	}
	p.dc, p.cs = pin(cfg.DC), pin(cfg.CS)
	p.busReady = true
	return nil
}

// ConfigurePanel cannot observe a dead controller: the bus is write-only on
// this board, so a panel without power is only visible as a dark screen.
func (p *st7789Panel) ConfigurePanel(cfg board.PanelConfig) error {
	if !p.busReady {
		return errPanelNoBus
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	p.dev = st7789.New(p.spi, pin(cfg.RST), p.dc, p.cs, machine.NoPin)
	p.dev.Configure(st7789.Config{
		Width:    cfg.MemoryWidth,
		Height:   cfg.MemoryHeight,
		Rotation: drivers.Rotation(cfg.OffsetRotation & 3),
	})
	p.dev.InvertColors(cfg.Invert)
	p.cfg = cfg
	p.col, p.row = cfg.WindowOrigin()
	p.ready = true
	return nil
}

func (p *st7789Panel) ConfigureBacklight(cfg board.BacklightConfig) error {
	if !p.ready {
		return errPanelNotReady
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	p.bl = pin(cfg.Pin)
	p.blInvert = cfg.Invert
	if p.bl == machine.NoPin {
		return nil
	}
	if p.pwm != nil && cfg.FrequencyHz > 0 {
		if err := p.pwm.Configure(machine.PWMConfig{Period: pwmPeriod(cfg.FrequencyHz)}); err != nil {
			return err
		}
		ch, err := p.pwm.Channel(p.bl)
		if err != nil {
			return err
		}
		p.pwmCh = ch
	} else {
		p.pwm = nil
		p.bl.Configure(machine.PinConfig{Mode: machine.PinOutput})
	}
	p.lightReady = true
	p.SetBrightness(0)
	return nil
}

func (p *st7789Panel) SetBrightness(level uint8) {
	if !p.lightReady {
		return
	}
	if p.pwm != nil {
		p.pwm.Set(p.pwmCh, pwmDuty(p.pwm.Top(), level, p.blInvert))
		return
	}
	p.bl.Set(lineLevel(level, p.blInvert))
}

func (p *st7789Panel) Size() (w, h int16) {
	if !p.ready {
		return 0, 0
	}
	return p.cfg.VisibleSize()
}

func (p *st7789Panel) DrawRGBBitmap8(x, y int16, data []uint8, w, h int16) error {
	if !p.ready {
		return errPanelNotReady
	}
	vw, vh := p.cfg.VisibleSize()
	if x < 0 || y < 0 || w < 0 || h < 0 || x+w > vw || y+h > vh {
		return errPanelBounds
	}
	return p.dev.DrawRGBBitmap8(p.col+x, p.row+y, data, w, h)
}
