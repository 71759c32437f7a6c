package hal

// pwmPeriod is the PWM period in nanoseconds for hz, or 0 when hz is unset.
func pwmPeriod(hz uint32) uint64 {
	if hz == 0 {
		return 0
	}
	return 1e9 / uint64(hz)
}

// pwmDuty scales a 0..255 brightness to a compare value on a counter that
// wraps at top. An inverted line is active low.
func pwmDuty(top uint32, level uint8, invert bool) uint32 {
	v := uint32(uint64(top) * uint64(level) / 255)
	if invert {
		v = top - v
	}
	return v
}

// lineLevel is the pin state of a backlight without PWM: any non-zero level
// is fully on.
func lineLevel(level uint8, invert bool) bool {
	return (level > 0) != invert
}
