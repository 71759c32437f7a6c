//go:build !tinygo

package hal

import (
	"image"
	"sync"

	"watch/board"
	"watch/gfx"
)

// hostPanel simulates an SPI panel controller. Pixels live in controller
// memory (which may be larger than the glass); the glass shows the window at
// the configured origin.
type hostPanel struct {
	mu       sync.Mutex
	powered  func() bool
	fallback board.PanelConfig

	bus      board.BusConfig
	busReady bool

	cfg   board.PanelConfig
	ready bool

	light      board.BacklightConfig
	lightReady bool
	brightness uint8

	mem    []byte // big-endian RGB565, MemoryWidth x MemoryHeight
	frames int
}

func newHostPanel(powered func() bool, fallback board.PanelConfig) *hostPanel {
	return &hostPanel{powered: powered, fallback: fallback}
}

func (p *hostPanel) ConfigureBus(cfg board.BusConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.bus = cfg
	p.busReady = true
	return nil
}

func (p *hostPanel) ConfigurePanel(cfg board.PanelConfig) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.busReady {
		return errPanelNoBus
	}
	if p.powered != nil && !p.powered() {
		return errPanelNoAck
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	p.cfg = cfg
	p.mem = make([]byte, int(cfg.MemoryWidth)*int(cfg.MemoryHeight)*2)
	p.ready = true
	return nil
}

func (p *hostPanel) ConfigureBacklight(cfg board.BacklightConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.ready {
		return errPanelNotReady
	}
	p.light = cfg
	p.lightReady = cfg.Present()
	return nil
}

func (p *hostPanel) SetBrightness(level uint8) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.lightReady {
		p.brightness = level
	}
}

func (p *hostPanel) Size() (w, h int16) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.ready {
		return 0, 0
	}
	return p.cfg.VisibleSize()
}

// DrawRGBBitmap8 writes a w*h bitmap at x,y of the visible window in one
// locked pass, so a snapshot never sees half of it.
func (p *hostPanel) DrawRGBBitmap8(x, y int16, data []uint8, w, h int16) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.ready {
		return errPanelNotReady
	}
	vw, vh := p.cfg.VisibleSize()
	if x < 0 || y < 0 || w < 0 || h < 0 || x+w > vw || y+h > vh {
		return errPanelBounds
	}
	if len(data) < int(w)*int(h)*2 {
		return errPanelBounds
	}
	for j := int16(0); j < h; j++ {
		for i := int16(0); i < w; i++ {
			src := (int(j)*int(w) + int(i)) * 2
			dst := p.memOffset(x+i, y+j)
			p.mem[dst] = data[src]
			p.mem[dst+1] = data[src+1]
		}
	}
	p.frames++
	return nil
}

// memOffset maps a visible-window pixel to its controller memory byte offset.
func (p *hostPanel) memOffset(x, y int16) int {
	col, row := p.cfg.MemoryPixel(x, y)
	return (int(row)*int(p.cfg.MemoryWidth) + int(col)) * 2
}

// snapshot renders what the glass shows: the visible window, dimmed by the
// backlight. A non-inverting setup on this IPS glass shows inverted colors.
func (p *hostPanel) snapshot(dst *image.RGBA) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i := range dst.Pix {
		dst.Pix[i] = 0
	}
	b := dst.Bounds()
	if !p.ready {
		for i := 3; i < len(dst.Pix); i += 4 {
			dst.Pix[i] = 0xFF
		}
		return
	}

	level := uint16(0xFF)
	if p.lightReady {
		level = uint16(p.brightness)
	}
	vw, vh := p.cfg.VisibleSize()
	for y := 0; y < b.Dy() && y < int(vh); y++ {
		for x := 0; x < b.Dx() && x < int(vw); x++ {
			off := p.memOffset(int16(x), int16(y))
			px := uint16(p.mem[off])<<8 | uint16(p.mem[off+1])
			if !p.cfg.Invert {
				px = ^px
			}
			c := gfx.RGB565(px)
			j := dst.PixOffset(b.Min.X+x, b.Min.Y+y)
			dst.Pix[j+0] = uint8(uint16(c.R) * level / 0xFF)
			dst.Pix[j+1] = uint8(uint16(c.G) * level / 0xFF)
			dst.Pix[j+2] = uint8(uint16(c.B) * level / 0xFF)
			dst.Pix[j+3] = 0xFF
		}
	}
}

// windowSize is the drawing surface from the last panel config, or from the
// board profile when the panel never came up.
func (p *hostPanel) windowSize() (int, int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	cfg := p.fallback
	if p.ready {
		cfg = p.cfg
	}
	w, h := cfg.VisibleSize()
	return int(w), int(h)
}
