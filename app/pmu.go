package app

import (
	"tinygo.org/x/drivers"

	"watch/board"
	"watch/drivers/axp2101"
)

// axpRails exposes the AXP2101 LDOs under the board's rail names.
type axpRails struct {
	dev *axp2101.Device
}

func newAXPRails(bus drivers.I2C) *axpRails {
	return &axpRails{dev: axp2101.New(bus)}
}

// ldo maps a board rail to the matching PMU output. Both enumerations start
// at ALDO1 and share ordering through BLDO2.
func ldo(r board.RailID) (axp2101.LDO, error) {
	if !r.Valid() {
		return 0, board.ErrUnknownRail
	}
	return axp2101.ALDO1 + axp2101.LDO(r-board.ALDO1), nil
}

func (a *axpRails) Probe(addr uint16) error { return a.dev.Probe(addr) }

func (a *axpRails) SetRailVoltage(r board.RailID, mV uint16) error {
	l, err := ldo(r)
	if err != nil {
		return err
	}
	return a.dev.SetLDOVoltage(l, mV)
}

func (a *axpRails) EnableRail(r board.RailID) error {
	l, err := ldo(r)
	if err != nil {
		return err
	}
	return a.dev.EnableLDO(l)
}

func (a *axpRails) DisableRail(r board.RailID) error {
	l, err := ldo(r)
	if err != nil {
		return err
	}
	return a.dev.DisableLDO(l)
}
