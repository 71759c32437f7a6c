package bringup

import (
	"fmt"
	"time"

	"watch/board"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
}

// Sequence wires the collaborators of one bring-up run. Every handle is owned
// by the sequence for the duration of Run.
type Sequence struct {
	Bus     I2CBus
	PMU     PMU
	Panel   PanelDriver
	Sleeper Sleeper
	Log     Logger

	Profile board.Profile
	Settle  time.Duration

	rep Report
}

// Report is what a run ended with.
type Report struct {
	Trace      []State
	Power      PowerState
	Rails      []RailResult
	Display    bool
	Drawn      bool
	DisplayErr error
}

// Final is the last state reached.
func (r Report) Final() State {
	if len(r.Trace) == 0 {
		return StateStart
	}
	return r.Trace[len(r.Trace)-1]
}

// Reached reports whether s appears in the trace.
func (r Report) Reached(s State) bool {
	for _, t := range r.Trace {
		if t == s {
			return true
		}
	}
	return false
}

// Run executes the sequence once and always returns; failures only narrow
// how far it gets.
func (s *Sequence) Run() Report {
	s.rep = Report{Trace: []State{StateStart}}
	s.run(&s.rep)
	return s.rep
}

// Partial is the report as far as the last Run got. After a panic unwinds
// Run it still holds every step completed before it.
func (s *Sequence) Partial() Report {
	rep := s.rep
	rep.Trace = append([]State(nil), s.rep.Trace...)
	rep.Rails = append([]RailResult(nil), s.rep.Rails...)
	return rep
}

func (s *Sequence) run(rep *Report) {
	p := s.Profile

	// Reject a bad display description before any hardware is touched.
	desc, descErr := NewDescriptor(p.Bus, p.Panel, p.Backlight)
	if descErr != nil {
		s.logf("display config rejected: %v", descErr)
	}

	bi := NewBusInitializer(s.Bus)
	if err := bi.Begin(p.I2C); err != nil {
		s.logf("i2c begin sda=%d scl=%d: %v", p.I2C.SDA, p.I2C.SCL, err)
	}
	rep.Trace = append(rep.Trace, StateBusReady)

	rep.Power, rep.Rails = DetectAndEnable(s.PMU, p.PMUAddress, p.Rails)
	switch rep.Power {
	case PmuAbsent:
		s.logf("pmu not detected at 0x%02x, skipping rails", p.PMUAddress)
		rep.Trace = append(rep.Trace, StatePmuAbsent)
	default:
		s.logf("pmu detected at 0x%02x", p.PMUAddress)
		rep.Trace = append(rep.Trace, StatePmuDetected)
		for _, r := range rep.Rails {
			if r.Err != nil {
				s.logf("rail %s %dmV: %v", r.Rail, r.MilliVolts, r.Err)
			}
		}
		if rep.Power == RailsEnabled {
			s.logf("rails applied %d/%d", Applied(rep.Rails), len(rep.Rails))
			rep.Trace = append(rep.Trace, StateRailsApplied)
		}
	}

	Stabilize(s.Sleeper, s.Settle)
	rep.Trace = append(rep.Trace, StateStabilized)

	if descErr != nil {
		rep.DisplayErr = descErr
		rep.Trace = append(rep.Trace, StateDisplayFailed)
		return
	}

	disp := NewDisplay(s.Panel, desc)
	if !disp.Init() {
		rep.DisplayErr = disp.Err()
		s.logf("display init failed: %v", rep.DisplayErr)
		rep.Trace = append(rep.Trace, StateDisplayFailed)
		return
	}
	rep.Display = true
	rep.Trace = append(rep.Trace, StateDisplayReady)
	disp.SetBrightness(p.Brightness)

	if err := DrawBootFrame(disp, p.Splash); err != nil {
		rep.DisplayErr = err
		s.logf("boot frame: %v", err)
		return
	}
	rep.Drawn = true
	rep.Trace = append(rep.Trace, StateBootFrameDrawn)
	s.logf("boot frame drawn")
}

func (s *Sequence) logf(format string, args ...any) {
	if s.Log == nil {
		return
	}
	s.Log.WriteLineString("bringup: " + fmt.Sprintf(format, args...))
}
