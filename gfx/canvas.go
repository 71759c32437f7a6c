// Package gfx draws boot-time text and fills on any drivers.Displayer using
// tinyfont glyphs.
package gfx

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// Datum selects which point of the text box DrawString's x,y refers to.
type Datum uint8

const (
	TopLeft Datum = iota
	TopCenter
	TopRight
	MiddleLeft
	MiddleCenter
	MiddleRight
	BottomLeft
	BottomCenter
	BottomRight
	BaselineLeft
	BaselineCenter
	BaselineRight
)

// Canvas holds text state on top of a displayer.
//
// Concurrent access is not safe (tinyfont fonts reuse an internal glyph).
type Canvas struct {
	dst   drivers.Displayer
	fg    color.RGBA
	datum Datum
	font  tinyfont.Fonter
}

func NewCanvas(dst drivers.Displayer) *Canvas {
	return &Canvas{
		dst:  dst,
		fg:   color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
		font: DefaultFont(),
	}
}

func (c *Canvas) Size() (w, h int16) { return c.dst.Size() }

// Fill sets every pixel of the destination.
func (c *Canvas) Fill(col color.RGBA) {
	if f, ok := c.dst.(interface{ FillScreen(color.RGBA) }); ok {
		f.FillScreen(col)
		return
	}
	w, h := c.dst.Size()
	for y := int16(0); y < h; y++ {
		for x := int16(0); x < w; x++ {
			c.dst.SetPixel(x, y, col)
		}
	}
}

func (c *Canvas) SetTextColor(col color.RGBA) { c.fg = col }
func (c *Canvas) SetTextDatum(d Datum)        { c.datum = d }

// SetFont selects the glyph source; nil restores the default font.
func (c *Canvas) SetFont(f tinyfont.Fonter) {
	if f == nil {
		f = DefaultFont()
	}
	c.font = f
}

// DrawString draws s so that the current datum lands on x,y and returns the
// advance width of the string.
func (c *Canvas) DrawString(s string, x, y int16) int16 {
	w, top, bottom := TextBounds(c.font, s)
	if w == 0 {
		return 0
	}

	left := x
	switch c.datum % 3 {
	case 1:
		left = x - w/2
	case 2:
		left = x - w
	}

	baseline := y
	switch c.datum / 3 {
	case 0:
		baseline = y - top
	case 1:
		baseline = y - (top+bottom)/2
	case 2:
		baseline = y - bottom
	}

	tinyfont.WriteLine(c.dst, c.font, left, baseline, s, c.fg)
	return w
}

// TextBounds measures a single line: its advance width and the glyph extents
// above (top, negative) and below (bottom) the baseline.
func TextBounds(f tinyfont.Fonter, s string) (w, top, bottom int16) {
	if f == nil || s == "" {
		return 0, 0, 0
	}
	_, outbox := tinyfont.LineWidth(f, s)
	first := true
	for _, r := range s {
		gi := f.GetGlyph(r).Info()
		t := int16(gi.YOffset)
		b := t + int16(gi.Height)
		if first || t < top {
			top = t
		}
		if first || b > bottom {
			bottom = b
		}
		first = false
	}
	return int16(outbox), top, bottom
}
