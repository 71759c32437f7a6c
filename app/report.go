//go:build !tinygo

package app

import (
	"fmt"
	"os"

	"github.com/fxamacker/cbor/v2"

	"watch/bringup"
)

// ReportRecord is the on-disk form of a bring-up report.
type ReportRecord struct {
	Profile    string       `cbor:"1,keyasint"`
	Trace      []string     `cbor:"2,keyasint"`
	Power      string       `cbor:"3,keyasint"`
	Rails      []RailRecord `cbor:"4,keyasint"`
	Display    bool         `cbor:"5,keyasint"`
	Drawn      bool         `cbor:"6,keyasint"`
	DisplayErr string       `cbor:"7,keyasint,omitempty"`
}

type RailRecord struct {
	Rail       string `cbor:"1,keyasint"`
	MilliVolts uint16 `cbor:"2,keyasint"`
	Enabled    bool   `cbor:"3,keyasint"`
	Err        string `cbor:"4,keyasint,omitempty"`
}

func NewReportRecord(profile string, rep bringup.Report) ReportRecord {
	r := ReportRecord{
		Profile: profile,
		Power:   rep.Power.String(),
		Display: rep.Display,
		Drawn:   rep.Drawn,
	}
	for _, s := range rep.Trace {
		r.Trace = append(r.Trace, s.String())
	}
	for _, rr := range rep.Rails {
		rec := RailRecord{Rail: rr.Rail.String(), MilliVolts: rr.MilliVolts, Enabled: rr.Enabled}
		if rr.Err != nil {
			rec.Err = rr.Err.Error()
		}
		r.Rails = append(r.Rails, rec)
	}
	if rep.DisplayErr != nil {
		r.DisplayErr = rep.DisplayErr.Error()
	}
	return r
}

// WriteReport stores the report as CBOR.
func WriteReport(path, profile string, rep bringup.Report) error {
	data, err := cbor.Marshal(NewReportRecord(profile, rep))
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

// ReadReport loads a report written by WriteReport.
func ReadReport(path string) (ReportRecord, error) {
	var r ReportRecord
	data, err := os.ReadFile(path)
	if err != nil {
		return r, fmt.Errorf("reading report: %w", err)
	}
	if err := cbor.Unmarshal(data, &r); err != nil {
		return r, fmt.Errorf("decoding report: %w", err)
	}
	return r, nil
}
