//go:build tinygo

package hal

import (
	"machine"
	"time"

	"watch/board"
)

type tinyGoClock struct{}

func (tinyGoClock) Sleep(d time.Duration) { time.Sleep(d) }

type serialLogger struct {
	out machine.Serialer
}

func (l *serialLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		l.out.WriteByte(s[i])
	}
	l.out.WriteByte('\r')
	l.out.WriteByte('\n')
}

func (l *serialLogger) WriteLineBytes(b []byte) {
	for i := 0; i < len(b); i++ {
		l.out.WriteByte(b[i])
	}
	l.out.WriteByte('\r')
	l.out.WriteByte('\n')
}

type machineI2C struct {
	bus *machine.I2C
}

func (b *machineI2C) Configure(cfg board.I2CConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	return b.bus.Configure(machine.I2CConfig{
		SDA:       machine.Pin(cfg.SDA),
		SCL:       machine.Pin(cfg.SCL),
		Frequency: cfg.Frequency,
	})
}

func (b *machineI2C) Tx(addr uint16, w, r []byte) error {
	return b.bus.Tx(addr, w, r)
}

// pin maps an unset board line to machine.NoPin so drivers skip it.
func pin(p board.Pin) machine.Pin {
	if !p.Set() {
		return machine.NoPin
	}
	return machine.Pin(p)
}
