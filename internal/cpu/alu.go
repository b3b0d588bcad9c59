package cpu

// add adds n, and the carry flag if withCarry, to A.
//
//	ADD A, n
//	ADC A, n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) add(n uint8, withCarry bool) {
	a := c.A()
	sum := uint16(a) + uint16(n)
	sumHalf := a&0xF + n&0xF
	if withCarry && c.IsFlagSet(FlagCarry) {
		sum++
		sumHalf++
	}
	c.setFlags(uint8(sum) == 0, false, sumHalf > 0xF, sum > 0xFF)
	c.SetA(uint8(sum))
}

// sub subtracts n, and the carry flag if withCarry, from A.
//
//	SUB n
//	SBC A, n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func (c *CPU) sub(n uint8, withCarry bool) {
	a := c.A()
	diff := int16(a) - int16(n)
	diffHalf := int16(a&0xF) - int16(n&0xF)
	if withCarry && c.IsFlagSet(FlagCarry) {
		diff--
		diffHalf--
	}
	c.setFlags(uint8(diff) == 0, true, diffHalf < 0, diff < 0)
	c.SetA(uint8(diff))
}

func (c *CPU) aluAdd() ([]uint16, error) {
	n, operands := c.aluOperand()
	c.add(n, false)
	return operands, nil
}

func (c *CPU) aluAdc() ([]uint16, error) {
	n, operands := c.aluOperand()
	c.add(n, true)
	return operands, nil
}

func (c *CPU) aluSub() ([]uint16, error) {
	n, operands := c.aluOperand()
	c.sub(n, false)
	return operands, nil
}

func (c *CPU) aluSbc() ([]uint16, error) {
	n, operands := c.aluOperand()
	c.sub(n, true)
	return operands, nil
}

// aluAnd performs a bitwise AND of n and A.
//
//	AND n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set.
//	C - Reset.
func (c *CPU) aluAnd() ([]uint16, error) {
	n, operands := c.aluOperand()
	c.SetA(c.A() & n)
	c.setFlags(c.A() == 0, false, true, false)
	return operands, nil
}

// aluXor performs a bitwise XOR of n and A. XOR A always clears A.
//
//	XOR n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) aluXor() ([]uint16, error) {
	n, operands := c.aluOperand()
	c.SetA(c.A() ^ n)
	c.setFlags(c.A() == 0, false, false, false)
	return operands, nil
}

// aluOr performs a bitwise OR of n and A.
//
//	OR n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) aluOr() ([]uint16, error) {
	n, operands := c.aluOperand()
	c.SetA(c.A() | n)
	c.setFlags(c.A() == 0, false, false, false)
	return operands, nil
}

// aluCp compares n to A, setting the flags as SUB would without
// storing the result.
//
//	CP n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if A == n.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if A < n.
func (c *CPU) aluCp() ([]uint16, error) {
	n, operands := c.aluOperand()
	a := c.A()
	c.setFlags(a == n, true, n&0x0F > a&0x0F, n > a)
	return operands, nil
}

// incrementN increments the given register by 1.
//
//	INC n
//	n = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Not affected.
func (c *CPU) incrementN() ([]uint16, error) {
	r := c.dstOperand()
	n := c.readR8(r)
	c.writeR8(r, n+1)
	c.setFlags(n+1 == 0, false, n&0xF == 0xF, c.IsFlagSet(FlagCarry))
	return nil, nil
}

// decrementN decrements the given register by 1.
//
//	DEC n
//	n = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Not affected.
func (c *CPU) decrementN() ([]uint16, error) {
	r := c.dstOperand()
	n := c.readR8(r)
	c.writeR8(r, n-1)
	c.setFlags(n-1 == 0, true, n&0xF == 0x0, c.IsFlagSet(FlagCarry))
	return nil, nil
}

// incrementNN increments the given register pair by 1. No flags are
// affected.
//
//	INC nn
//	nn = BC, DE, HL, SP
func (c *CPU) incrementNN() ([]uint16, error) {
	c.setPairSP(c.pairSP() + 1)
	return nil, nil
}

// decrementNN decrements the given register pair by 1. No flags are
// affected.
//
//	DEC nn
//	nn = BC, DE, HL, SP
func (c *CPU) decrementNN() ([]uint16, error) {
	c.setPairSP(c.pairSP() - 1)
	return nil, nil
}

// addHLRR adds the given register pair to HL.
//
//	ADD HL, nn
//	nn = BC, DE, HL, SP
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Set if carry from bit 11.
//	C - Set if carry from bit 15.
func (c *CPU) addHLRR() ([]uint16, error) {
	hl, n := c.HL(), c.pairSP()
	sum := uint32(hl) + uint32(n)
	c.setFlags(c.IsFlagSet(FlagZero), false, hl&0xFFF+n&0xFFF > 0xFFF, sum > 0xFFFF)
	c.SetHL(uint16(sum))
	return nil, nil
}

// decimalAdjust adjusts A to a binary coded decimal after an addition
// or subtraction.
//
//	DAA
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Not affected.
//	H - Reset.
//	C - Set or reset according to operation.
func (c *CPU) decimalAdjust() ([]uint16, error) {
	a := c.A()
	carry := c.IsFlagSet(FlagCarry)
	if !c.IsFlagSet(FlagSubtract) {
		if carry || a > 0x99 {
			a += 0x60
			carry = true
		}
		if c.IsFlagSet(FlagHalfCarry) || a&0x0F > 0x09 {
			a += 0x06
		}
	} else {
		if carry {
			a -= 0x60
		}
		if c.IsFlagSet(FlagHalfCarry) {
			a -= 0x06
		}
	}
	c.SetA(a)
	c.setFlags(a == 0, c.IsFlagSet(FlagSubtract), false, carry)
	return nil, nil
}

// complement flips every bit of A.
//
//	CPL
//
// Flags affected:
//
//	Z - Not affected.
//	N - Set.
//	H - Set.
//	C - Not affected.
func (c *CPU) complement() ([]uint16, error) {
	c.SetA(^c.A())
	c.SetFlag(FlagSubtract)
	c.SetFlag(FlagHalfCarry)
	return nil, nil
}

// setCarryFlag sets the carry flag.
//
//	SCF
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Reset.
//	C - Set.
func (c *CPU) setCarryFlag() ([]uint16, error) {
	c.setFlags(c.IsFlagSet(FlagZero), false, false, true)
	return nil, nil
}

// complementCarryFlag flips the carry flag.
//
//	CCF
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Reset.
//	C - Complemented.
func (c *CPU) complementCarryFlag() ([]uint16, error) {
	c.setFlags(c.IsFlagSet(FlagZero), false, false, !c.IsFlagSet(FlagCarry))
	return nil, nil
}
