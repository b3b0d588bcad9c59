package cpu

// jumpRelative adds a signed 8-bit displacement to the address of the
// next instruction.
//
//	JR r8
func (c *CPU) jumpRelative() ([]uint16, error) {
	e := c.readOperand()
	c.Registers.Step(int(SignedByte(e)))
	return []uint16{uint16(e)}, nil
}

// jumpRelativeConditional jumps relatively if the condition holds. The
// displacement is always consumed.
//
//	JR cc, r8
//	cc = NZ, Z, NC, C
func (c *CPU) jumpRelativeConditional() ([]uint16, error) {
	e := c.readOperand()
	if c.condition() {
		c.Registers.Step(int(SignedByte(e)))
	}
	return []uint16{uint16(e)}, nil
}

// jumpAbsolute jumps to a 16-bit immediate address.
//
//	JP a16
func (c *CPU) jumpAbsolute() ([]uint16, error) {
	address := c.readOperand16()
	if c.fetchErr != nil {
		return nil, c.fetchErr
	}
	c.Jump(address)
	return []uint16{address}, nil
}

// jumpAbsoluteConditional jumps to a 16-bit immediate address if the
// condition holds.
//
//	JP cc, a16
//	cc = NZ, Z, NC, C
func (c *CPU) jumpAbsoluteConditional() ([]uint16, error) {
	address := c.readOperand16()
	if c.fetchErr != nil {
		return nil, c.fetchErr
	}
	if c.condition() {
		c.Jump(address)
	}
	return []uint16{address}, nil
}

// jumpHL jumps to the address held in HL.
//
//	JP (HL)
func (c *CPU) jumpHL() ([]uint16, error) {
	c.Jump(c.HL())
	return nil, nil
}

// call pushes the address following the instruction onto the stack
// and jumps to a 16-bit immediate address. A truncated address leaves
// the stack and PC untouched.
//
//	CALL a16
func (c *CPU) call() ([]uint16, error) {
	address := c.readOperand16()
	if c.fetchErr != nil {
		return nil, c.fetchErr
	}
	c.push(c.PC)
	c.Jump(address)
	return []uint16{address}, nil
}

// callConditional calls a16 if the condition holds.
//
//	CALL cc, a16
//	cc = NZ, Z, NC, C
func (c *CPU) callConditional() ([]uint16, error) {
	address := c.readOperand16()
	if c.fetchErr != nil {
		return nil, c.fetchErr
	}
	if c.condition() {
		c.push(c.PC)
		c.Jump(address)
	}
	return []uint16{address}, nil
}

// ret pops a return address from the stack and jumps to it.
//
//	RET
func (c *CPU) ret() ([]uint16, error) {
	address, err := c.pop()
	if err != nil {
		return nil, err
	}
	c.Jump(address)
	return nil, nil
}

// retConditional returns if the condition holds.
//
//	RET cc
//	cc = NZ, Z, NC, C
func (c *CPU) retConditional() ([]uint16, error) {
	if !c.condition() {
		return nil, nil
	}
	return c.ret()
}

// pushNN pushes the given register pair onto the stack.
//
//	PUSH nn
//	nn = BC, DE, HL, AF
func (c *CPU) pushNN() ([]uint16, error) {
	c.push(c.GetPair(c.pairAF()))
	return nil, nil
}

// popNN pops the given register pair off the stack. Popping into AF
// clears the low nibble of F.
//
//	POP nn
//	nn = BC, DE, HL, AF
func (c *CPU) popNN() ([]uint16, error) {
	value, err := c.pop()
	if err != nil {
		return nil, err
	}
	c.SetPair(c.pairAF(), value)
	return nil, nil
}
