package bringup

import "watch/board"

// PMU is the power-management chip driver.
type PMU interface {
	Probe(addr uint16) error
	SetRailVoltage(rail board.RailID, mV uint16) error
	EnableRail(rail board.RailID) error
	DisableRail(rail board.RailID) error
}

// RailResult records what happened to one rail table entry.
type RailResult struct {
	Rail       board.RailID
	MilliVolts uint16
	Enabled    bool
	Err        error
}

func (r RailResult) OK() bool { return r.Err == nil }

// DetectAndEnable probes the PMU and applies the rail table in order.
//
// No rail is touched unless the probe succeeds. Each rail gets its voltage
// first and is then switched; a rail that fails validation or voltage setup is
// left alone. A failed rail never stops the rest of the table.
func DetectAndEnable(pmu PMU, addr uint16, rails []board.RailSpec) (PowerState, []RailResult) {
	if err := pmu.Probe(addr); err != nil {
		return PmuAbsent, nil
	}
	if len(rails) == 0 {
		return PmuDetected, nil
	}

	results := make([]RailResult, 0, len(rails))
	for _, spec := range rails {
		results = append(results, applyRail(pmu, spec))
	}
	return RailsEnabled, results
}

func applyRail(pmu PMU, spec board.RailSpec) RailResult {
	res := RailResult{Rail: spec.Rail, MilliVolts: spec.MilliVolts, Enabled: spec.Enabled}
	if res.Err = spec.Validate(); res.Err != nil {
		return res
	}
	if res.Err = pmu.SetRailVoltage(spec.Rail, spec.MilliVolts); res.Err != nil {
		return res
	}
	if spec.Enabled {
		res.Err = pmu.EnableRail(spec.Rail)
	} else {
		res.Err = pmu.DisableRail(spec.Rail)
	}
	return res
}

// Applied counts rails that reached their requested state.
func Applied(results []RailResult) int {
	n := 0
	for _, r := range results {
		if r.OK() {
			n++
		}
	}
	return n
}
