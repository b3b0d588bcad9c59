package types

// Register represents a GB Register which is used to hold an 8-bit value.
// The CPU has 8 registers: A, B, C, D, E, H, L, and F. The F register is
// special in that it is used to hold the flags.
type Register = uint8

// RegisterPair represents a pair of GB Registers which is used to hold a 16-bit
// value. The CPU has 4 register pairs: AF, BC, DE, and HL.
//
// Both halves live in a single 16-bit cell, the first named register of
// the pair being the high byte, so a write through either view is
// immediately visible through the other.
type RegisterPair struct {
	value uint16
}

// Uint16 returns the value of the RegisterPair as an uint16.
func (r *RegisterPair) Uint16() uint16 {
	return r.value
}

// SetUint16 sets the value of the RegisterPair to the given value.
func (r *RegisterPair) SetUint16(value uint16) {
	r.value = value
}

// High returns the high byte of the pair (B in BC).
func (r *RegisterPair) High() Register {
	return Register(r.value >> 8)
}

// Low returns the low byte of the pair (C in BC).
func (r *RegisterPair) Low() Register {
	return Register(r.value)
}

// SetHigh replaces the high byte, leaving the low byte untouched.
func (r *RegisterPair) SetHigh(value Register) {
	r.value = uint16(value)<<8 | r.value&0x00FF
}

// SetLow replaces the low byte, leaving the high byte untouched.
func (r *RegisterPair) SetLow(value Register) {
	r.value = r.value&0xFF00 | uint16(value)
}
