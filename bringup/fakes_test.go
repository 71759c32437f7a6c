package bringup

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"watch/board"
)

var (
	errNoAck    = errors.New("no ack")
	errRailFail = errors.New("rail refused")
	errEnable   = errors.New("enable refused")
)

// callLog records every collaborator call in order.
type callLog struct {
	calls []string
}

func (l *callLog) add(format string, args ...any) {
	l.calls = append(l.calls, fmt.Sprintf(format, args...))
}

// index returns the position of the first call with the given prefix, or -1.
func (l *callLog) index(prefix string) int {
	for i, c := range l.calls {
		if strings.HasPrefix(c, prefix) {
			return i
		}
	}
	return -1
}

// lastIndex returns the position of the last call with the given prefix, or -1.
func (l *callLog) lastIndex(prefix string) int {
	for i := len(l.calls) - 1; i >= 0; i-- {
		if strings.HasPrefix(l.calls[i], prefix) {
			return i
		}
	}
	return -1
}

func (l *callLog) count(prefix string) int {
	n := 0
	for _, c := range l.calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

type fakeBus struct {
	log *callLog
	err error
}

func (b *fakeBus) Configure(cfg board.I2CConfig) error {
	b.log.add("i2c.configure sda=%d scl=%d", cfg.SDA, cfg.SCL)
	return b.err
}

type fakePMU struct {
	log        *callLog
	present    bool
	failRail   board.RailID
	failEnable board.RailID
}

func (p *fakePMU) Probe(addr uint16) error {
	p.log.add("pmu.probe 0x%02x", addr)
	if !p.present {
		return errNoAck
	}
	return nil
}

func (p *fakePMU) SetRailVoltage(r board.RailID, mV uint16) error {
	p.log.add("pmu.voltage %s %d", r, mV)
	if r == p.failRail {
		return errRailFail
	}
	return nil
}

func (p *fakePMU) EnableRail(r board.RailID) error {
	p.log.add("pmu.enable %s", r)
	if r == p.failEnable {
		return errEnable
	}
	return nil
}

func (p *fakePMU) DisableRail(r board.RailID) error {
	p.log.add("pmu.disable %s", r)
	return nil
}

type fakePanel struct {
	log        *callLog
	w, h       int16
	busErr     error
	panelErr   error
	lightErr   error
	panicPanel bool
	brightness int
	frame      []byte
}

func (p *fakePanel) ConfigureBus(board.BusConfig) error {
	p.log.add("panel.bus")
	return p.busErr
}

func (p *fakePanel) ConfigurePanel(cfg board.PanelConfig) error {
	p.log.add("panel.panel")
	if p.panicPanel {
		panic("panel wedged")
	}
	if p.panelErr == nil {
		p.w, p.h = cfg.VisibleSize()
	}
	return p.panelErr
}

func (p *fakePanel) ConfigureBacklight(board.BacklightConfig) error {
	p.log.add("panel.backlight")
	return p.lightErr
}

func (p *fakePanel) SetBrightness(level uint8) {
	p.log.add("panel.brightness %d", level)
	p.brightness = int(level)
}

func (p *fakePanel) Size() (int16, int16) { return p.w, p.h }

func (p *fakePanel) DrawRGBBitmap8(x, y int16, data []uint8, w, h int16) error {
	p.log.add("panel.draw %d,%d %dx%d", x, y, w, h)
	p.frame = append([]byte(nil), data...)
	return nil
}

// pixel reads the committed frame (big-endian RGB565).
func (p *fakePanel) pixel(x, y int16) uint16 {
	off := (int(y)*int(p.w) + int(x)) * 2
	return uint16(p.frame[off])<<8 | uint16(p.frame[off+1])
}

type fakeSleeper struct {
	log   *callLog
	slept []time.Duration
}

func (s *fakeSleeper) Sleep(d time.Duration) {
	s.log.add("sleep %s", d)
	s.slept = append(s.slept, d)
}

type lineLog struct{ lines []string }

func (l *lineLog) WriteLineString(s string) { l.lines = append(l.lines, s) }

type rig struct {
	log   *callLog
	bus   *fakeBus
	pmu   *fakePMU
	panel *fakePanel
	sleep *fakeSleeper
	out   *lineLog
}

func newRig() *rig {
	log := &callLog{}
	return &rig{
		log:   log,
		bus:   &fakeBus{log: log},
		pmu:   &fakePMU{log: log, present: true},
		panel: &fakePanel{log: log},
		sleep: &fakeSleeper{log: log},
		out:   &lineLog{},
	}
}

func (r *rig) sequence(p board.Profile) *Sequence {
	return &Sequence{
		Bus:     r.bus,
		PMU:     r.pmu,
		Panel:   r.panel,
		Sleeper: r.sleep,
		Log:     r.out,
		Profile: p,
		Settle:  DefaultSettle,
	}
}
