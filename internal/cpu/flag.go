package cpu

import "github.com/thelolagemann/gbcore/internal/types"

// Flag is the bit index of a flag in the F register.
type Flag = uint8

const (
	FlagZero      Flag = 7
	FlagSubtract  Flag = 6
	FlagHalfCarry Flag = 5
	FlagCarry     Flag = 4
)

// SetFlag sets a flag, leaving every other bit of F untouched.
func (r *Registers) SetFlag(flag Flag) {
	r.SetF(types.Set(r.F(), flag))
}

// ClearFlag clears a flag, leaving every other bit of F untouched.
func (r *Registers) ClearFlag(flag Flag) {
	r.SetF(types.Reset(r.F(), flag))
}

// IsFlagSet returns true if the given flag is set.
func (r *Registers) IsFlagSet(flag Flag) bool {
	return types.Test(r.F(), flag)
}

// SetFlagTo sets or clears a flag depending on value.
func (r *Registers) SetFlagTo(flag Flag, value bool) {
	if value {
		r.SetFlag(flag)
	} else {
		r.ClearFlag(flag)
	}
}

// setFlags replaces all four flags at once.
func (r *Registers) setFlags(zero, subtract, halfCarry, carry bool) {
	var f uint8
	if zero {
		f |= types.Bit7
	}
	if subtract {
		f |= types.Bit6
	}
	if halfCarry {
		f |= types.Bit5
	}
	if carry {
		f |= types.Bit4
	}
	r.SetF(f)
}
