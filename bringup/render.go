package bringup

import (
	"watch/board"
	"watch/gfx"
)

// DrawBootFrame renders the splash into an off-screen frame and commits it in
// one transfer, so the panel never shows a partial frame.
func DrawBootFrame(d *Display, s board.SplashConfig) error {
	if !d.Ready() {
		return ErrDisplayNotReady
	}
	w, h := d.Size()
	frame := gfx.NewFrame(w, h)

	c := gfx.NewCanvas(frame)
	c.Fill(gfx.RGB565(s.Background))
	c.SetTextColor(gfx.RGB565(s.Foreground))
	c.SetTextDatum(gfx.MiddleCenter)
	if f, ok := gfx.FontByName(s.Font); ok {
		c.SetFont(f)
	}
	c.DrawString(s.Text, w/2, h/2)

	return d.Commit(frame)
}
