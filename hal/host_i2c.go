//go:build !tinygo

package hal

import (
	"errors"
	"sync"

	"watch/board"
)

var (
	errI2CNotConfigured = errors.New("i2c: bus not configured")
	errI2CNack          = errors.New("i2c: no ack")
)

// i2cTarget is a register-addressed chip on the simulated bus.
type i2cTarget interface {
	writeRegs(reg byte, data []byte)
	readRegs(reg byte, dst []byte)
}

type hostI2C struct {
	mu         sync.Mutex
	cfg        board.I2CConfig
	configured bool
	configures int
	targets    map[uint16]i2cTarget
}

func newHostI2C() *hostI2C {
	return &hostI2C{targets: make(map[uint16]i2cTarget)}
}

func (b *hostI2C) attach(addr uint16, t i2cTarget) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.targets[addr] = t
}

func (b *hostI2C) Configure(cfg board.I2CConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cfg = cfg
	b.configured = true
	b.configures++
	return nil
}

// Tx writes w then reads into r. The first written byte is the register
// address; the rest are data bytes at consecutive registers.
func (b *hostI2C) Tx(addr uint16, w, r []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.configured {
		return errI2CNotConfigured
	}
	t, ok := b.targets[addr]
	if !ok {
		return errI2CNack
	}
	var reg byte
	if len(w) > 0 {
		reg = w[0]
		if len(w) > 1 {
			t.writeRegs(reg, w[1:])
		}
	}
	if len(r) > 0 {
		t.readRegs(reg, r)
	}
	return nil
}
