//go:build !tinygo && cgo

package hal

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"watch/internal/buildinfo"
)

// RunWindow starts a desktop window that shows the simulated panel glass.
// It blocks until the window closes.
func RunWindow(cfg HostConfig, newApp func(HAL) func() error) error {
	h := newHostHAL(cfg)
	step := newApp(h)

	w, hh := h.panel.windowSize()
	g := &hostGame{h: h, step: step, w: w, hh: hh}
	ebiten.SetWindowTitle("watch (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(w*2, hh*2)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h     *hostHAL
	w, hh int
	img   *image.RGBA
	fbImg *ebiten.Image
	step  func() error
}

func (g *hostGame) Update() error {
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	if g.img == nil {
		g.img = image.NewRGBA(image.Rect(0, 0, g.w, g.hh))
		g.fbImg = ebiten.NewImage(g.w, g.hh)
	}

	g.h.panel.snapshot(g.img)

	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.w, g.hh
}
