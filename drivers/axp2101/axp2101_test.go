package axp2101

import (
	"errors"
	"testing"
)

var errNAK = errors.New("nak")

// regFile is a single-device I2C bus backed by a register array.
type regFile struct {
	addr   uint16
	regs   [256]byte
	writes int
}

func newRegFile(addr uint16) *regFile {
	f := &regFile{addr: addr}
	f.regs[regChipID] = ChipID
	return f
}

func (f *regFile) Tx(addr uint16, w, r []byte) error {
	if addr != f.addr {
		return errNAK
	}
	if len(w) == 0 {
		return nil
	}
	reg := w[0]
	for i, b := range w[1:] {
		f.regs[reg+byte(i)] = b
		f.writes++
	}
	for i := range r {
		r[i] = f.regs[reg+byte(i)]
	}
	return nil
}

func TestProbe(t *testing.T) {
	bus := newRegFile(AddressDefault)
	d := New(bus)
	if err := d.Probe(AddressDefault); err != nil {
		t.Fatalf("Probe: %v", err)
	}
	if err := d.Probe(0x35); !errors.Is(err, ErrNotDetected) {
		t.Fatalf("Probe(0x35) = %v, want %v", err, ErrNotDetected)
	}

	bus.regs[regChipID] = 0x47
	if err := d.Probe(AddressDefault); !errors.Is(err, ErrWrongChip) {
		t.Fatalf("Probe wrong id = %v, want %v", err, ErrWrongChip)
	}
}

func TestWritesRequireProbe(t *testing.T) {
	bus := newRegFile(AddressDefault)
	d := New(bus)
	if err := d.SetLDOVoltage(ALDO1, 3300); !errors.Is(err, ErrNotProbed) {
		t.Fatalf("SetLDOVoltage = %v", err)
	}
	if err := d.EnableLDO(ALDO1); !errors.Is(err, ErrNotProbed) {
		t.Fatalf("EnableLDO = %v", err)
	}
	if bus.writes != 0 {
		t.Fatalf("writes = %d before probe", bus.writes)
	}
}

func TestSetLDOVoltageEncoding(t *testing.T) {
	bus := newRegFile(AddressDefault)
	bus.regs[regALDO2Vol] = 0xE0 // reserved upper bits must survive
	d := New(bus)
	if err := d.Probe(AddressDefault); err != nil {
		t.Fatal(err)
	}

	if err := d.SetLDOVoltage(ALDO2, 3300); err != nil {
		t.Fatalf("SetLDOVoltage: %v", err)
	}
	if got := bus.regs[regALDO2Vol]; got != 0xE0|28 {
		t.Fatalf("ALDO2 reg = 0x%02x, want 0x%02x", got, 0xE0|28)
	}
	mv, err := d.LDOVoltage(ALDO2)
	if err != nil || mv != 3300 {
		t.Fatalf("LDOVoltage = %d, %v", mv, err)
	}

	if err := d.SetLDOVoltage(BLDO2, 500); err != nil {
		t.Fatalf("SetLDOVoltage(500): %v", err)
	}
	if got := bus.regs[regBLDO2Vol]; got != 0 {
		t.Fatalf("BLDO2 reg = 0x%02x", got)
	}

	if err := d.SetLDOVoltage(CPUSLDO, 1050); err != nil {
		t.Fatalf("CPUSLDO 1050: %v", err)
	}
	if got := bus.regs[regCPUSVol]; got != 11 {
		t.Fatalf("CPUSLDO reg = %d, want 11", got)
	}
}

func TestSetLDOVoltageRejects(t *testing.T) {
	bus := newRegFile(AddressDefault)
	d := New(bus)
	if err := d.Probe(AddressDefault); err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		ldo  LDO
		mV   uint16
		want error
	}{
		{ALDO1, 3600, ErrVoltageRange},
		{ALDO1, 400, ErrVoltageRange},
		{ALDO3, 3350, ErrVoltageStep},
		{CPUSLDO, 1500, ErrVoltageRange},
		{LDO(0), 3300, ErrUnknownLDO},
		{LDO(42), 3300, ErrUnknownLDO},
	}
	for _, tt := range tests {
		if err := d.SetLDOVoltage(tt.ldo, tt.mV); !errors.Is(err, tt.want) {
			t.Errorf("SetLDOVoltage(%d, %d) = %v, want %v", tt.ldo, tt.mV, err, tt.want)
		}
	}
	if bus.writes != 0 {
		t.Fatalf("rejected voltages wrote %d registers", bus.writes)
	}
}

func TestEnableDisableLDO(t *testing.T) {
	bus := newRegFile(AddressDefault)
	bus.regs[regLDOOnOff0] = 0x80 // DLDO1 already on
	d := New(bus)
	if err := d.Probe(AddressDefault); err != nil {
		t.Fatal(err)
	}

	for _, l := range []LDO{ALDO1, ALDO2, ALDO3, ALDO4, BLDO2} {
		if err := d.EnableLDO(l); err != nil {
			t.Fatalf("EnableLDO(%d): %v", l, err)
		}
	}
	if got := bus.regs[regLDOOnOff0]; got != 0x80|0x2F {
		t.Fatalf("ctrl0 = 0x%02x, want 0x%02x", got, 0x80|0x2F)
	}

	if err := d.DisableLDO(ALDO3); err != nil {
		t.Fatal(err)
	}
	on, err := d.LDOEnabled(ALDO3)
	if err != nil || on {
		t.Fatalf("ALDO3 enabled = %v, %v", on, err)
	}
	on, err = d.LDOEnabled(DLDO1)
	if err != nil || !on {
		t.Fatalf("DLDO1 enabled = %v, %v", on, err)
	}

	if err := d.EnableLDO(DLDO2); err != nil {
		t.Fatal(err)
	}
	if got := bus.regs[regLDOOnOff1]; got != 0x01 {
		t.Fatalf("ctrl1 = 0x%02x", got)
	}
}

func TestStatus(t *testing.T) {
	bus := newRegFile(AddressDefault)
	bus.regs[regStatus1] = 0x12
	bus.regs[regStatus2] = 0x34
	d := New(bus)
	if _, _, err := d.Status(); !errors.Is(err, ErrNotProbed) {
		t.Fatalf("Status before probe = %v", err)
	}
	if err := d.Probe(0); err != nil {
		t.Fatal(err)
	}
	s1, s2, err := d.Status()
	if err != nil || s1 != 0x12 || s2 != 0x34 {
		t.Fatalf("Status = 0x%02x 0x%02x %v", s1, s2, err)
	}
}
