//go:build !tinygo

package hal

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"watch/board"
)

// HostConfig selects how the simulated board misbehaves.
type HostConfig struct {
	// PMUAbsent leaves the PMU address unanswered on the I2C bus.
	PMUAbsent bool
	// PanelExternalPower powers the panel regardless of PMU rails.
	PanelExternalPower bool
	// DisplayRail is the PMU output feeding the panel.
	DisplayRail board.RailID
	// Panel sizes the window before the panel is configured. Zero means the
	// T-Watch S3 panel.
	Panel board.PanelConfig
	// Log receives log lines; nil means stdout.
	Log io.Writer
}

type hostHAL struct {
	logger *hostLogger
	i2c    *hostI2C
	pmu    *simAXP2101
	panel  *hostPanel
	clock  hostClock
}

// New returns a simulated T-Watch S3 with every part present.
func New() HAL {
	return NewHost(HostConfig{DisplayRail: board.ALDO2})
}

// NewHost returns a simulated board: an I2C bus carrying an AXP2101 model and
// an ST7789-like panel that only answers once its supply rail is up.
func NewHost(cfg HostConfig) HAL {
	return newHostHAL(cfg)
}

func newHostHAL(cfg HostConfig) *hostHAL {
	w := cfg.Log
	if w == nil {
		w = os.Stdout
	}
	if cfg.DisplayRail == 0 {
		cfg.DisplayRail = board.ALDO2
	}
	if cfg.Panel.Width <= 0 || cfg.Panel.Height <= 0 {
		cfg.Panel = board.TWatchS3().Panel
	}

	pmu := newSimAXP2101()
	bus := newHostI2C()
	if !cfg.PMUAbsent {
		bus.attach(simAXP2101Address, pmu)
	}

	rail := cfg.DisplayRail
	powered := func() bool {
		return cfg.PanelExternalPower || pmu.railOn(rail)
	}

	return &hostHAL{
		logger: newHostLogger(w),
		i2c:    bus,
		pmu:    pmu,
		panel:  newHostPanel(powered, cfg.Panel),
	}
}

func (h *hostHAL) Logger() Logger { return h.logger }
func (h *hostHAL) I2C() I2C       { return h.i2c }
func (h *hostHAL) Panel() Panel   { return h.panel }
func (h *hostHAL) Clock() Clock   { return h.clock }

type hostClock struct{}

func (hostClock) Sleep(d time.Duration) { time.Sleep(d) }

// hostLogger writes lines to w. On a terminal the leading "tag:" of each
// line is highlighted.
type hostLogger struct {
	mu  sync.Mutex
	w   io.Writer
	out *termenv.Output
}

func newHostLogger(w io.Writer) *hostLogger {
	l := &hostLogger{w: w}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		l.out = termenv.NewOutput(f)
	}
	return l
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, l.style(s))
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.WriteLineString(string(b))
}

func (l *hostLogger) style(s string) string {
	if l.out == nil {
		return s
	}
	tag, rest, ok := strings.Cut(s, ": ")
	if !ok || strings.ContainsRune(tag, ' ') {
		return s
	}
	return l.out.String(tag+":").Foreground(l.out.Color("6")).Bold().String() + " " + rest
}
