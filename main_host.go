//go:build !tinygo

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/pflag"

	"watch/app"
	"watch/board"
	"watch/bringup"
	"watch/hal"
	"watch/internal/buildinfo"
)

func main() {
	var (
		cfg         hal.HeadlessConfig
		profilePath string
		reportPath  string
		showVersion bool
	)
	settle := bringup.DefaultSettle

	fs := pflag.NewFlagSet("watch", pflag.ExitOnError)
	fs.BoolVar(&cfg.Enabled, "headless", false, "run without a window")
	fs.IntVar(&cfg.Hz, "hz", 60, "tick rate in headless mode")
	fs.Uint64Var(&cfg.Ticks, "ticks", 0, "stop after N ticks in headless mode (0 = run forever)")
	fs.StringVar(&cfg.SnapshotPNG, "png", "", "write the panel to this PNG when headless ticks run out")
	fs.StringVar(&profilePath, "profile", "", "YAML board profile overlaid on the T-Watch S3 defaults")
	fs.BoolVar(&cfg.Host.PMUAbsent, "pmu-absent", false, "simulate a board with no PMU on the I2C bus")
	fs.BoolVar(&cfg.Host.PanelExternalPower, "panel-external-power", false, "power the panel independently of PMU rails")
	fs.DurationVar(&settle, "settle", settle, "delay between rail setup and panel init")
	fs.StringVar(&reportPath, "report", "", "write the bring-up report to this file as CBOR")
	fs.BoolVar(&showVersion, "version", false, "print the build stamp and exit")
	_ = fs.Parse(os.Args[1:])

	if showVersion {
		fmt.Println(buildinfo.Describe())
		return
	}

	profile := board.TWatchS3()
	if profilePath != "" {
		p, err := board.LoadProfile(profilePath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		profile = p
	}
	cfg.Host.DisplayRail = profile.DisplayRail
	cfg.Host.Panel = profile.Panel

	appCfg := app.Config{Profile: profile, Settle: settle}
	newApp := func(h hal.HAL) func() error {
		rep := app.Boot(h, appCfg)
		if reportPath != "" {
			if err := app.WriteReport(reportPath, profile.Name, rep); err != nil {
				fmt.Fprintln(os.Stderr, err)
			}
		}
		return func() error { return nil }
	}

	if cfg.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, newApp, cfg); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(cfg.Host, newApp); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
