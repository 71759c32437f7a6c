// Package axp2101 provides a minimal TinyGo driver for the X-Powers AXP2101
// power-management IC.
//
// Scope is what a display bring-up needs:
// • chip detection via the IC type register,
// • LDO output voltage (read-modify-write, bits 4:0 only),
// • LDO on/off control.
//
// Registers are single bytes; each access is one I2C transaction.
package axp2101

import (
	"errors"

	"tinygo.org/x/drivers"
)

var (
	// Sentinel errors (TinyGo-safe; no fmt)
	ErrNotDetected  = errors.New("axp2101: no chip at address")
	ErrWrongChip    = errors.New("axp2101: unexpected chip id")
	ErrNotProbed    = errors.New("axp2101: device not probed")
	ErrUnknownLDO   = errors.New("axp2101: unknown ldo")
	ErrVoltageRange = errors.New("axp2101: voltage out of range")
	ErrVoltageStep  = errors.New("axp2101: voltage not on step")
)

// LDO is one of the chip's linear regulator outputs.
type LDO uint8

const (
	ALDO1 LDO = iota + 1
	ALDO2
	ALDO3
	ALDO4
	BLDO1
	BLDO2
	CPUSLDO
	DLDO1
	DLDO2
)

func (l LDO) info() (ldoInfo, bool) {
	if l < ALDO1 || l > DLDO2 {
		return ldoInfo{}, false
	}
	return ldoTable[l], true
}

type Device struct {
	i2c   drivers.I2C
	addr  uint16
	found bool

	// Fixed buffers to avoid per-call heap allocations.
	w [2]byte
	r [1]byte
}

func New(i2c drivers.I2C) *Device {
	return &Device{i2c: i2c, addr: AddressDefault}
}

// Probe reads the chip ID at addr. Only after a successful probe does the
// device accept register writes.
func (d *Device) Probe(addr uint16) error {
	d.found = false
	if addr == 0 {
		addr = AddressDefault
	}
	d.addr = addr
	id, err := d.readReg(regChipID)
	if err != nil {
		return ErrNotDetected
	}
	if id != ChipID {
		return ErrWrongChip
	}
	d.found = true
	return nil
}

// Address returns the bus address last probed.
func (d *Device) Address() uint16 { return d.addr }

// Status returns the two power status registers.
func (d *Device) Status() (s1, s2 byte, err error) {
	if !d.found {
		return 0, 0, ErrNotProbed
	}
	if s1, err = d.readReg(regStatus1); err != nil {
		return 0, 0, err
	}
	s2, err = d.readReg(regStatus2)
	return s1, s2, err
}

// SetLDOVoltage programs the output voltage without touching the enable bit.
func (d *Device) SetLDOVoltage(l LDO, mV uint16) error {
	li, ok := l.info()
	if !ok {
		return ErrUnknownLDO
	}
	if !d.found {
		return ErrNotProbed
	}
	code, err := voltageCode(li, mV)
	if err != nil {
		return err
	}
	return d.modifyReg(li.volReg, code, ldoVoltMask)
}

// LDOVoltage reads back the programmed output voltage.
func (d *Device) LDOVoltage(l LDO) (uint16, error) {
	li, ok := l.info()
	if !ok {
		return 0, ErrUnknownLDO
	}
	if !d.found {
		return 0, ErrNotProbed
	}
	v, err := d.readReg(li.volReg)
	if err != nil {
		return 0, err
	}
	return ldoMinMilliVolts + uint16(v&ldoVoltMask)*li.stepMV, nil
}

func (d *Device) EnableLDO(l LDO) error  { return d.switchLDO(l, true) }
func (d *Device) DisableLDO(l LDO) error { return d.switchLDO(l, false) }

// LDOEnabled reports the on/off bit for the output.
func (d *Device) LDOEnabled(l LDO) (bool, error) {
	li, ok := l.info()
	if !ok {
		return false, ErrUnknownLDO
	}
	if !d.found {
		return false, ErrNotProbed
	}
	v, err := d.readReg(li.ctrlReg)
	if err != nil {
		return false, err
	}
	return v&(1<<li.bit) != 0, nil
}

func (d *Device) switchLDO(l LDO, on bool) error {
	li, ok := l.info()
	if !ok {
		return ErrUnknownLDO
	}
	if !d.found {
		return ErrNotProbed
	}
	mask := byte(1 << li.bit)
	var set byte
	if on {
		set = mask
	}
	return d.modifyReg(li.ctrlReg, set, mask)
}

func voltageCode(li ldoInfo, mV uint16) (byte, error) {
	if mV < ldoMinMilliVolts || mV > li.maxMV {
		return 0, ErrVoltageRange
	}
	if (mV-ldoMinMilliVolts)%li.stepMV != 0 {
		return 0, ErrVoltageStep
	}
	return byte((mV - ldoMinMilliVolts) / li.stepMV), nil
}
