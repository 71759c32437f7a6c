package app

import (
	"errors"
	"fmt"
	"image/color"
	"runtime/debug"
	"strings"

	"watch/bringup"
	"watch/gfx"
	"watch/hal"
)

// ErrPanic marks a bring-up run cut short by a panic in a driver.
var ErrPanic = errors.New("app: bring-up panicked")

var (
	panicBackground = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	panicForeground = color.RGBA{A: 0xFF}
)

// guard recovers a panic raised during Boot. The report keeps every step the
// sequence completed and ends in display-failed. The value and stack go to the
// log, and, if the panel still answers, a text dump goes to the screen.
func guard(h hal.HAL, seq *bringup.Sequence, rep *bringup.Report) {
	v := recover()
	if v == nil {
		return
	}
	*rep = seq.Partial()
	rep.DisplayErr = fmt.Errorf("%w: %v", ErrPanic, v)
	rep.Display = false
	rep.Drawn = false
	if rep.Final() != bringup.StateDisplayFailed {
		rep.Trace = append(rep.Trace, bringup.StateDisplayFailed)
	}

	stack := debug.Stack()
	if l := h.Logger(); l != nil {
		l.WriteLineString(fmt.Sprintf("watch panic: %v", v))
		for _, line := range strings.Split(string(stack), "\n") {
			if line == "" {
				continue
			}
			l.WriteLineString(line)
		}
	}

	lines := []string{"panic:", fmt.Sprintf("%v", v)}
	if len(stack) == 0 {
		lines = append(lines, "stack: unavailable")
	}
	// The panel may be what panicked.
	func() {
		defer func() { _ = recover() }()
		drawPanic(h.Panel(), lines)
	}()
}

// drawPanic wraps lines to the panel width in the small font and commits
// them as one frame.
func drawPanic(p hal.Panel, lines []string) {
	if p == nil {
		return
	}
	w, h := p.Size()
	if w <= 0 || h <= 0 {
		return
	}
	font, ok := gfx.FontByName("proggy8")
	if !ok {
		font = gfx.DefaultFont()
	}
	lineH := int16(font.GetYAdvance())
	cw, _, _ := gfx.TextBounds(font, "0")
	if lineH <= 0 || cw <= 0 {
		return
	}

	frame := gfx.NewFrame(w, h)
	c := gfx.NewCanvas(frame)
	c.Fill(panicBackground)
	c.SetFont(font)
	c.SetTextColor(panicForeground)
	c.SetTextDatum(gfx.TopLeft)

	rows := wrap(lines, int(w/cw))
	for i, row := range rows {
		y := int16(i) * lineH
		if y+lineH > h {
			break
		}
		c.DrawString(row, 0, y)
	}
	_ = p.DrawRGBBitmap8(0, 0, frame.Buffer(), w, h)
}

// wrap hard-breaks each line into rows of at most cols runes. Leading spaces
// of continuation rows are dropped.
func wrap(lines []string, cols int) []string {
	if cols < 1 {
		cols = 1
	}
	var rows []string
	for _, line := range lines {
		r := []rune(line)
		for len(r) > cols {
			rows = append(rows, string(r[:cols]))
			r = []rune(strings.TrimLeft(string(r[cols:]), " "))
		}
		if len(r) > 0 {
			rows = append(rows, string(r))
		}
	}
	return rows
}
