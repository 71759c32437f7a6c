package app

import (
	"time"

	"watch/board"
	"watch/bringup"
	"watch/hal"
	"watch/internal/buildinfo"
)

type Config struct {
	Profile board.Profile
	// Settle is the delay between the last rail write and the first panel
	// command.
	Settle time.Duration
}

// DefaultConfig is the T-Watch S3 with the standard settle delay.
func DefaultConfig() Config {
	return Config{Profile: board.TWatchS3(), Settle: bringup.DefaultSettle}
}

// Boot runs bring-up once. It never panics: a panic inside a driver is logged
// and reported as a display failure on top of whatever bring-up had reached.
func Boot(h hal.HAL, cfg Config) (rep bringup.Report) {
	seq := &bringup.Sequence{
		Bus:     h.I2C(),
		PMU:     newAXPRails(h.I2C()),
		Panel:   h.Panel(),
		Sleeper: h.Clock(),
		Profile: cfg.Profile,
		Settle:  cfg.Settle,
	}
	log := h.Logger()
	if log != nil {
		seq.Log = log
	}
	defer guard(h, seq, &rep)

	if log != nil {
		log.WriteLineString("watch " + buildinfo.Short() + ": booting " + cfg.Profile.Name)
	}
	rep = seq.Run()

	if log != nil {
		log.WriteLineString("watch: " + rep.Final().String() + " (power " + rep.Power.String() + ")")
	}
	return rep
}

// New boots with the default config and returns the per-frame step function
// for the host runners.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, DefaultConfig())
}

func NewWithConfig(h hal.HAL, cfg Config) func() error {
	_ = Boot(h, cfg)
	return func() error { return nil }
}

// Run boots and idles forever (TinyGo entrypoint).
func Run(h hal.HAL, cfg Config) {
	_ = Boot(h, cfg)
	clk := h.Clock()
	for {
		clk.Sleep(time.Second)
	}
}
