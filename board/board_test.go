package board

import (
	"errors"
	"testing"
)

func TestTWatchS3ProfileValid(t *testing.T) {
	p := TWatchS3()
	if err := p.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	for _, r := range p.Rails {
		if err := r.Validate(); err != nil {
			t.Fatalf("rail %s: %v", r.Rail, err)
		}
	}
	if p.PMUAddress != 0x34 {
		t.Fatalf("pmu address = 0x%02x", p.PMUAddress)
	}
}

func TestPanelConfigBounds(t *testing.T) {
	base := PanelConfig{
		Width: 240, Height: 240,
		MemoryWidth: 240, MemoryHeight: 320,
		RST: PinUnset, Busy: PinUnset,
	}

	tests := []struct {
		name    string
		mutate  func(*PanelConfig)
		wantErr error
	}{
		{name: "origin", mutate: func(*PanelConfig) {}},
		{name: "offset fits", mutate: func(c *PanelConfig) { c.OffsetY = 80 }},
		{name: "offset overflows", mutate: func(c *PanelConfig) { c.OffsetY = 100 }, wantErr: ErrPanelBounds},
		{name: "x overflows", mutate: func(c *PanelConfig) { c.OffsetX = 1 }, wantErr: ErrPanelBounds},
		{name: "wider than memory", mutate: func(c *PanelConfig) { c.Width = 241 }, wantErr: ErrPanelBounds},
		{name: "negative offset", mutate: func(c *PanelConfig) { c.OffsetX = -1 }, wantErr: ErrPanelBounds},
		{name: "zero height", mutate: func(c *PanelConfig) { c.Height = 0 }, wantErr: ErrPanelSize},
		{name: "rotation", mutate: func(c *PanelConfig) { c.OffsetRotation = 4 }, wantErr: ErrPanelRotation},
		{name: "shared reset and busy", mutate: func(c *PanelConfig) { c.RST, c.Busy = 5, 5 }, wantErr: ErrPinReused},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestWindowOrigin(t *testing.T) {
	c := PanelConfig{Width: 240, Height: 240, MemoryWidth: 240, MemoryHeight: 320, OffsetY: 10}
	// Rotated addressing swaps axes on odd rotations, so the far row of
	// rotation 1 runs across native columns.
	for rot, want := range [4][2]int16{{0, 10}, {10, 0}, {0, 70}, {70, 0}} {
		c.OffsetRotation = uint8(rot)
		col, row := c.WindowOrigin()
		if col != want[0] || row != want[1] {
			t.Fatalf("rotation %d: origin (%d,%d), want (%d,%d)", rot, col, row, want[0], want[1])
		}
	}
}

func TestMemoryPixelKeepsGlassInPlace(t *testing.T) {
	// 240x280 glass at native rows 20..299 of a 240x320 controller.
	base := PanelConfig{Width: 240, Height: 280, MemoryWidth: 240, MemoryHeight: 320, OffsetY: 20}
	tests := []struct {
		rot       uint8
		w, h      int16
		originCol int16
		originRow int16
		farCol    int16
		farRow    int16
	}{
		{0, 240, 280, 0, 20, 239, 299},
		{1, 280, 240, 239, 20, 0, 299},
		{2, 240, 280, 239, 299, 0, 20},
		{3, 280, 240, 0, 299, 239, 20},
	}
	for _, tt := range tests {
		c := base
		c.OffsetRotation = tt.rot
		w, h := c.VisibleSize()
		if w != tt.w || h != tt.h {
			t.Fatalf("rotation %d: size %dx%d, want %dx%d", tt.rot, w, h, tt.w, tt.h)
		}
		if col, row := c.MemoryPixel(0, 0); col != tt.originCol || row != tt.originRow {
			t.Fatalf("rotation %d: (0,0) -> (%d,%d), want (%d,%d)", tt.rot, col, row, tt.originCol, tt.originRow)
		}
		if col, row := c.MemoryPixel(w-1, h-1); col != tt.farCol || row != tt.farRow {
			t.Fatalf("rotation %d: far corner -> (%d,%d), want (%d,%d)", tt.rot, col, row, tt.farCol, tt.farRow)
		}

		seen := make(map[[2]int16]bool, int(w)*int(h))
		for y := int16(0); y < h; y++ {
			for x := int16(0); x < w; x++ {
				col, row := c.MemoryPixel(x, y)
				if col < 0 || col >= 240 || row < 20 || row >= 300 {
					t.Fatalf("rotation %d: (%d,%d) -> (%d,%d) outside the glass", tt.rot, x, y, col, row)
				}
				seen[[2]int16{col, row}] = true
			}
		}
		if len(seen) != 240*280 {
			t.Fatalf("rotation %d: %d distinct cells, want %d", tt.rot, len(seen), 240*280)
		}
	}
}

func TestBusConfigValidate(t *testing.T) {
	ok := TWatchS3().Bus
	if err := ok.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	c := ok
	c.MOSI = PinUnset
	if err := c.Validate(); !errors.Is(err, ErrPinRequired) {
		t.Fatalf("missing MOSI: %v", err)
	}

	c = ok
	c.CS = c.DC
	if err := c.Validate(); !errors.Is(err, ErrPinReused) {
		t.Fatalf("shared CS/DC: %v", err)
	}

	c = ok
	c.MISO = 40
	c.ReadHz = 0
	if err := c.Validate(); !errors.Is(err, ErrBadFrequency) {
		t.Fatalf("MISO without read clock: %v", err)
	}

	// Unset lines never collide with each other.
	c = ok
	c.DC, c.CS, c.MISO = PinUnset, PinUnset, PinUnset
	if err := c.Validate(); err != nil {
		t.Fatalf("unset lines: %v", err)
	}
}

func TestBacklightConfigValidate(t *testing.T) {
	if err := (BacklightConfig{Pin: PinUnset}).Validate(); err != nil {
		t.Fatalf("absent backlight: %v", err)
	}
	if err := (BacklightConfig{Pin: 45, FrequencyHz: 1000, Channel: 8}).Validate(); !errors.Is(err, ErrPWMChannel) {
		t.Fatalf("channel 8: %v", err)
	}
	if err := (BacklightConfig{Pin: 45, Channel: 3}).Validate(); !errors.Is(err, ErrBadFrequency) {
		t.Fatalf("zero frequency: %v", err)
	}
}

func TestRailSpecValidate(t *testing.T) {
	tests := []struct {
		spec    RailSpec
		wantErr error
	}{
		{RailSpec{Rail: ALDO1, MilliVolts: 3300}, nil},
		{RailSpec{Rail: BLDO2, MilliVolts: 500}, nil},
		{RailSpec{Rail: ALDO4, MilliVolts: 3500}, nil},
		{RailSpec{Rail: ALDO1, MilliVolts: 3600}, ErrVoltageRange},
		{RailSpec{Rail: ALDO1, MilliVolts: 400}, ErrVoltageRange},
		{RailSpec{Rail: ALDO2, MilliVolts: 3320}, ErrVoltageStep},
		{RailSpec{Rail: 0, MilliVolts: 3300}, ErrUnknownRail},
	}
	for _, tt := range tests {
		err := tt.spec.Validate()
		if tt.wantErr == nil && err != nil {
			t.Errorf("%v: %v", tt.spec, err)
		}
		if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
			t.Errorf("%v: got %v, want %v", tt.spec, err, tt.wantErr)
		}
	}
}

func TestRailIDText(t *testing.T) {
	var id RailID
	if err := id.UnmarshalText([]byte("BLDO2")); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if id != BLDO2 {
		t.Fatalf("got %v", id)
	}
	if err := id.UnmarshalText([]byte("DCDC1")); !errors.Is(err, ErrUnknownRail) {
		t.Fatalf("DCDC1: %v", err)
	}
	if s := RailID(42).String(); s != "RAIL(42)" {
		t.Fatalf("String = %q", s)
	}
}
