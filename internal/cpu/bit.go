package cpu

import "github.com/thelolagemann/gbcore/internal/types"

// bitTest tests bit b of the given register.
//
//	BIT b, r
//	b = 0-7
//	r = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if bit b of register r is 0.
//	N - Reset.
//	H - Set.
//	C - Not affected.
func (c *CPU) bitTest() ([]uint16, error) {
	value := c.readR8(c.srcOperand())
	c.setFlags(!types.Test(value, c.dstOperand()), false, true, c.IsFlagSet(FlagCarry))
	return nil, nil
}

// bitReset resets bit b of the given register. No flags are affected.
//
//	RES b, r
//	b = 0-7
//	r = A, B, C, D, E, H, L, (HL)
func (c *CPU) bitReset() ([]uint16, error) {
	r := c.srcOperand()
	c.writeR8(r, types.Reset(c.readR8(r), c.dstOperand()))
	return nil, nil
}

// bitSet sets bit b of the given register. No flags are affected.
//
//	SET b, r
//	b = 0-7
//	r = A, B, C, D, E, H, L, (HL)
func (c *CPU) bitSet() ([]uint16, error) {
	r := c.srcOperand()
	c.writeR8(r, types.Set(c.readR8(r), c.dstOperand()))
	return nil, nil
}
