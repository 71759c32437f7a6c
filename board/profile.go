package board

import "fmt"

// SplashConfig is the first frame drawn after a successful bring-up.
// Colors are RGB565.
type SplashConfig struct {
	Text       string `yaml:"text"`
	Background uint16 `yaml:"background"`
	Foreground uint16 `yaml:"foreground"`
	Font       string `yaml:"font"`
}

// Profile is everything bring-up needs to know about one board.
type Profile struct {
	Name        string          `yaml:"name"`
	I2C         I2CConfig       `yaml:"i2c"`
	PMUAddress  uint16          `yaml:"pmu_address"`
	Rails       []RailSpec      `yaml:"rails"`
	DisplayRail RailID          `yaml:"display_rail"`
	Bus         BusConfig       `yaml:"bus"`
	Panel       PanelConfig     `yaml:"panel"`
	Backlight   BacklightConfig `yaml:"backlight"`
	Brightness  uint8           `yaml:"brightness"`
	Splash      SplashConfig    `yaml:"splash"`
}

// Validate checks the parts of the profile that are wiring, not policy.
// Rail voltages are left to the power sequencer, which reports them per rail.
func (p Profile) Validate() error {
	if err := p.I2C.Validate(); err != nil {
		return err
	}
	if p.PMUAddress == 0 || p.PMUAddress > 0x7F {
		return fmt.Errorf("pmu address 0x%02x is not a 7-bit address", p.PMUAddress)
	}
	if p.DisplayRail != 0 && !p.DisplayRail.Valid() {
		return fmt.Errorf("display rail: %w", ErrUnknownRail)
	}
	if err := p.Bus.Validate(); err != nil {
		return err
	}
	if err := p.Panel.Validate(); err != nil {
		return err
	}
	return p.Backlight.Validate()
}

// LilyGo T-Watch S3: AXP2101 PMU on I2C, ST7789 240x240 IPS on SPI.
const (
	twatchPMUAddress = 0x34

	twatchSDA = 10
	twatchSCL = 11

	twatchSCLK = 18
	twatchMOSI = 13
	twatchDC   = 38
	twatchCS   = 12
	twatchBL   = 45

	twatchSPIHost = 2 // SPI3_HOST

	neonGreen565 = 0x47E0
)

// TWatchS3 returns the reference board profile.
func TWatchS3() Profile {
	return Profile{
		Name: "twatch-s3",
		I2C: I2CConfig{
			SDA:       twatchSDA,
			SCL:       twatchSCL,
			Frequency: 400_000,
		},
		PMUAddress: twatchPMUAddress,
		Rails: []RailSpec{
			{Rail: ALDO1, MilliVolts: 3300, Enabled: true},
			{Rail: ALDO2, MilliVolts: 3300, Enabled: true}, // display
			{Rail: ALDO3, MilliVolts: 3300, Enabled: true},
			{Rail: ALDO4, MilliVolts: 3300, Enabled: true},
			{Rail: BLDO2, MilliVolts: 3300, Enabled: true},
		},
		DisplayRail: ALDO2,
		Bus: BusConfig{
			Host:    twatchSPIHost,
			Mode:    0,
			WriteHz: 40_000_000,
			ReadHz:  16_000_000,
			SCLK:    twatchSCLK,
			MOSI:    twatchMOSI,
			MISO:    PinUnset,
			DC:      twatchDC,
			CS:      twatchCS,
		},
		Panel: PanelConfig{
			Width:          240,
			Height:         240,
			MemoryWidth:    240,
			MemoryHeight:   320,
			OffsetRotation: 2,
			Invert:         true,
			RST:            PinUnset,
			Busy:           PinUnset,
		},
		Backlight: BacklightConfig{
			Pin:         twatchBL,
			FrequencyHz: 1000,
			Channel:     3,
		},
		Brightness: 200,
		Splash: SplashConfig{
			Text:       "git-fast",
			Background: 0x0000,
			Foreground: neonGreen565,
			Font:       "sans12",
		},
	}
}
