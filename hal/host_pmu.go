//go:build !tinygo

package hal

import (
	"sync"

	"watch/board"
)

const (
	simAXP2101Address = 0x34

	simRegChipID   = 0x03
	simRegLDOCtrl0 = 0x90
	simRegALDO1Vol = 0x92

	simChipID = 0x4A

	// Below this the panel controller browns out.
	simPanelMinMilliVolts = 2800
)

// simAXP2101 models the AXP2101 register file: reads and writes land in a
// flat array, the chip ID is fixed, and output state is decoded on demand.
type simAXP2101 struct {
	mu   sync.Mutex
	regs [256]byte
}

func newSimAXP2101() *simAXP2101 {
	s := &simAXP2101{}
	s.regs[simRegChipID] = simChipID
	return s
}

func (s *simAXP2101) writeRegs(reg byte, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, b := range data {
		r := reg + byte(i)
		if r == simRegChipID {
			continue
		}
		s.regs[r] = b
	}
}

func (s *simAXP2101) readRegs(reg byte, dst []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range dst {
		dst[i] = s.regs[reg+byte(i)]
	}
}

// railOn reports whether the LDO is switched on at a voltage the panel can run from.
func (s *simAXP2101) railOn(r board.RailID) bool {
	if !r.Valid() {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	bit := byte(1) << (r - board.ALDO1)
	if s.regs[simRegLDOCtrl0]&bit == 0 {
		return false
	}
	code := s.regs[simRegALDO1Vol+byte(r-board.ALDO1)] & 0x1F
	return 500+int(code)*100 >= simPanelMinMilliVolts
}
