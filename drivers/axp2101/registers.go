// Package axp2101 register addresses and bitfields used during bring-up.
package axp2101

const (
	// 7-bit I2C address.
	AddressDefault = 0x34

	// Value of regChipID on an AXP2101.
	ChipID = 0x4A

	regStatus1 = 0x00
	regStatus2 = 0x01
	regChipID  = 0x03

	// LDO on/off: ALDO1..DLDO1 in bits 0..7 of ctrl0, DLDO2 in bit 0 of ctrl1.
	regLDOOnOff0 = 0x90
	regLDOOnOff1 = 0x91

	// LDO voltage, one register per output, code in bits 4:0.
	regALDO1Vol = 0x92
	regALDO2Vol = 0x93
	regALDO3Vol = 0x94
	regALDO4Vol = 0x95
	regBLDO1Vol = 0x96
	regBLDO2Vol = 0x97
	regCPUSVol  = 0x98
	regDLDO1Vol = 0x99
	regDLDO2Vol = 0x9A

	ldoVoltMask = 0x1F
)

// LDO output voltage limits in millivolts.
const (
	ldoMinMilliVolts  = 500
	ldoMaxMilliVolts  = 3500
	ldoStepMilliVolts = 100

	cpusMaxMilliVolts  = 1400
	cpusStepMilliVolts = 50
)

type ldoInfo struct {
	volReg  byte
	ctrlReg byte
	bit     uint8
	maxMV   uint16
	stepMV  uint16
}

var ldoTable = [...]ldoInfo{
	ALDO1:   {regALDO1Vol, regLDOOnOff0, 0, ldoMaxMilliVolts, ldoStepMilliVolts},
	ALDO2:   {regALDO2Vol, regLDOOnOff0, 1, ldoMaxMilliVolts, ldoStepMilliVolts},
	ALDO3:   {regALDO3Vol, regLDOOnOff0, 2, ldoMaxMilliVolts, ldoStepMilliVolts},
	ALDO4:   {regALDO4Vol, regLDOOnOff0, 3, ldoMaxMilliVolts, ldoStepMilliVolts},
	BLDO1:   {regBLDO1Vol, regLDOOnOff0, 4, ldoMaxMilliVolts, ldoStepMilliVolts},
	BLDO2:   {regBLDO2Vol, regLDOOnOff0, 5, ldoMaxMilliVolts, ldoStepMilliVolts},
	CPUSLDO: {regCPUSVol, regLDOOnOff0, 6, cpusMaxMilliVolts, cpusStepMilliVolts},
	DLDO1:   {regDLDO1Vol, regLDOOnOff0, 7, ldoMaxMilliVolts, ldoStepMilliVolts},
	DLDO2:   {regDLDO2Vol, regLDOOnOff1, 0, ldoMaxMilliVolts, ldoStepMilliVolts},
}
