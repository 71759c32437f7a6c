package gfx

import "image/color"

// Frame is an off-screen RGB565 buffer in panel byte order (big-endian).
// It implements drivers.Displayer so tinyfont can draw into it; nothing
// reaches the panel until the whole frame is committed.
type Frame struct {
	w, h int16
	buf  []byte
}

func NewFrame(w, h int16) *Frame {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Frame{w: w, h: h, buf: make([]byte, int(w)*int(h)*2)}
}

func (f *Frame) Size() (x, y int16) { return f.w, f.h }

// Buffer returns the pixel bytes, row-major, two bytes per pixel.
func (f *Frame) Buffer() []byte { return f.buf }

func (f *Frame) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || x >= f.w || y < 0 || y >= f.h {
		return
	}
	p := To565(c)
	off := (int(y)*int(f.w) + int(x)) * 2
	f.buf[off] = byte(p >> 8)
	f.buf[off+1] = byte(p)
}

// Pixel returns the packed color at x,y, or 0 outside the frame.
func (f *Frame) Pixel(x, y int16) uint16 {
	if x < 0 || x >= f.w || y < 0 || y >= f.h {
		return 0
	}
	off := (int(y)*int(f.w) + int(x)) * 2
	return uint16(f.buf[off])<<8 | uint16(f.buf[off+1])
}

// Display is a no-op; a Frame is committed by whoever owns the panel.
func (f *Frame) Display() error { return nil }

// FillScreen sets every pixel to c.
func (f *Frame) FillScreen(c color.RGBA) {
	p := To565(c)
	hi, lo := byte(p>>8), byte(p)
	for i := 0; i+1 < len(f.buf); i += 2 {
		f.buf[i] = hi
		f.buf[i+1] = lo
	}
}
