package bringup

import "watch/board"

// I2CBus is the communication-bus driver shared by the PMU and other chips.
type I2CBus interface {
	Configure(cfg board.I2CConfig) error
}

// BusInitializer brings the bus up once. Repeating Begin with the same
// configuration does nothing; a different configuration is refused and the
// bus keeps its first setup.
type BusInitializer struct {
	bus   I2CBus
	cfg   board.I2CConfig
	ready bool
}

func NewBusInitializer(bus I2CBus) *BusInitializer {
	return &BusInitializer{bus: bus}
}

// Begin configures the bus. A driver error is returned for logging only;
// the bus is still treated as begun so a wiring fault surfaces later as a
// missing PMU instead of a retry loop.
func (b *BusInitializer) Begin(cfg board.I2CConfig) error {
	if b.ready {
		if cfg == b.cfg {
			return nil
		}
		return ErrBusConflict
	}
	b.cfg = cfg
	b.ready = true
	return b.bus.Configure(cfg)
}

// Ready reports whether Begin has run.
func (b *BusInitializer) Ready() bool { return b.ready }
