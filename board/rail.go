package board

import "fmt"

// RailID names one switchable PMU output.
type RailID uint8

const (
	ALDO1 RailID = iota + 1
	ALDO2
	ALDO3
	ALDO4
	BLDO1
	BLDO2
)

var railNames = [...]string{
	ALDO1: "ALDO1",
	ALDO2: "ALDO2",
	ALDO3: "ALDO3",
	ALDO4: "ALDO4",
	BLDO1: "BLDO1",
	BLDO2: "BLDO2",
}

// LDO output range shared by the A and B LDO classes.
const (
	RailMinMilliVolts  = 500
	RailMaxMilliVolts  = 3500
	RailStepMilliVolts = 100
)

func (r RailID) Valid() bool { return r >= ALDO1 && r <= BLDO2 }

func (r RailID) String() string {
	if !r.Valid() {
		return fmt.Sprintf("RAIL(%d)", uint8(r))
	}
	return railNames[r]
}

func (r RailID) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, ErrUnknownRail
	}
	return []byte(railNames[r]), nil
}

func (r *RailID) UnmarshalText(b []byte) error {
	s := string(b)
	for id := ALDO1; id <= BLDO2; id++ {
		if railNames[id] == s {
			*r = id
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownRail, s)
}

// RailSpec is one entry of the rail table applied at bring-up.
type RailSpec struct {
	Rail       RailID `yaml:"rail"`
	MilliVolts uint16 `yaml:"millivolts"`
	Enabled    bool   `yaml:"enabled"`
}

// Validate reports a caller error: the voltage is outside what the rail class
// can regulate. Such a spec must not reach the chip.
func (s RailSpec) Validate() error {
	if !s.Rail.Valid() {
		return ErrUnknownRail
	}
	if s.MilliVolts < RailMinMilliVolts || s.MilliVolts > RailMaxMilliVolts {
		return fmt.Errorf("%s %dmV: %w", s.Rail, s.MilliVolts, ErrVoltageRange)
	}
	if s.MilliVolts%RailStepMilliVolts != 0 {
		return fmt.Errorf("%s %dmV: %w", s.Rail, s.MilliVolts, ErrVoltageStep)
	}
	return nil
}
