// Package bringup sequences a board from power-on to its first frame:
//
//	bus ready → power rails → stabilization delay → panel configured → boot frame
//
// Failures degrade the result instead of aborting: an absent PMU skips the
// rails, a failed panel skips rendering, and the sequence always runs to a
// terminal state.
package bringup

import "errors"

// PowerState is the outcome of the power sequencer.
type PowerState uint8

const (
	Uninitialized PowerState = iota
	PmuDetected
	RailsEnabled
	PmuAbsent
)

var powerStateNames = [...]string{
	Uninitialized: "uninitialized",
	PmuDetected:   "pmu-detected",
	RailsEnabled:  "rails-enabled",
	PmuAbsent:     "pmu-absent",
}

func (s PowerState) String() string {
	if int(s) < len(powerStateNames) {
		return powerStateNames[s]
	}
	return "unknown"
}

// State is a step of the whole bring-up sequence.
type State uint8

const (
	StateStart State = iota
	StateBusReady
	StatePmuDetected
	StatePmuAbsent
	StateRailsApplied
	StateStabilized
	StateDisplayReady
	StateDisplayFailed
	StateBootFrameDrawn
)

var stateNames = [...]string{
	StateStart:          "start",
	StateBusReady:       "bus-ready",
	StatePmuDetected:    "pmu-detected",
	StatePmuAbsent:      "pmu-absent",
	StateRailsApplied:   "rails-applied",
	StateStabilized:     "stabilized",
	StateDisplayReady:   "display-ready",
	StateDisplayFailed:  "display-failed",
	StateBootFrameDrawn: "boot-frame-drawn",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}

var (
	ErrBusConflict     = errors.New("bus already initialized with a different configuration")
	ErrDisplayNotReady = errors.New("display not initialized")
	ErrFrameSize       = errors.New("frame does not match panel size")
)
