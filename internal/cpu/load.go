package cpu

import "github.com/thelolagemann/gbcore/internal/types"

// loadPair16 loads a 16-bit immediate into the given register pair.
//
//	LD nn, d16
//	nn = BC, DE, HL, SP
//	d16 = 16-bit immediate value
func (c *CPU) loadPair16() ([]uint16, error) {
	value := c.readOperand16()
	c.setPairSP(value)
	return []uint16{value}, nil
}

// loadIndirectA stores A at the address held in BC or DE.
//
//	LD (BC), A
//	LD (DE), A
func (c *CPU) loadIndirectA() ([]uint16, error) {
	c.mem.Write(c.GetPair(c.pairAF()), c.A())
	return nil, nil
}

// loadHLIncrementA stores A at the address held in HL, then increments HL.
//
//	LD (HL+), A
func (c *CPU) loadHLIncrementA() ([]uint16, error) {
	c.mem.Write(c.HL(), c.A())
	c.SetHL(c.HL() + 1)
	return nil, nil
}

// loadHLDecrementA stores A at the address held in HL, then decrements HL.
//
//	LD (HL-), A
func (c *CPU) loadHLDecrementA() ([]uint16, error) {
	c.mem.Write(c.HL(), c.A())
	c.SetHL(c.HL() - 1)
	return nil, nil
}

// loadAIndirect loads A from the address held in BC or DE.
//
//	LD A, (BC)
//	LD A, (DE)
func (c *CPU) loadAIndirect() ([]uint16, error) {
	c.SetA(c.mem.Read(c.GetPair(c.pairAF())))
	return nil, nil
}

// loadAHLIncrement loads A from the address held in HL, then increments HL.
//
//	LD A, (HL+)
func (c *CPU) loadAHLIncrement() ([]uint16, error) {
	c.SetA(c.mem.Read(c.HL()))
	c.SetHL(c.HL() + 1)
	return nil, nil
}

// loadAHLDecrement loads A from the address held in HL, then decrements HL.
//
//	LD A, (HL-)
func (c *CPU) loadAHLDecrement() ([]uint16, error) {
	c.SetA(c.mem.Read(c.HL()))
	c.SetHL(c.HL() - 1)
	return nil, nil
}

// loadRegister8 loads an 8-bit immediate into the given register.
//
//	LD n, d8
//	n = A, B, C, D, E, H, L, (HL)
//	d8 = 8-bit immediate value
func (c *CPU) loadRegister8() ([]uint16, error) {
	value := c.readOperand()
	c.writeR8(c.dstOperand(), value)
	return []uint16{uint16(value)}, nil
}

// loadRegisterToRegister loads the value of one register into another.
//
//	LD n, n
//	n = A, B, C, D, E, H, L, (HL)
func (c *CPU) loadRegisterToRegister() ([]uint16, error) {
	c.writeR8(c.dstOperand(), c.readR8(c.srcOperand()))
	return nil, nil
}

// loadHighA8A stores A in the I/O region, offset by an 8-bit immediate.
//
//	LDH (0xFF00 + a8), A
func (c *CPU) loadHighA8A() ([]uint16, error) {
	offset := c.readOperand()
	c.mem.Write(types.IOBase+uint16(offset), c.A())
	return []uint16{uint16(offset)}, nil
}

// loadHighCA stores A in the I/O region, offset by C.
//
//	LD (0xFF00 + C), A
func (c *CPU) loadHighCA() ([]uint16, error) {
	c.mem.Write(types.IOBase+uint16(c.C()), c.A())
	return nil, nil
}

// loadHighAA8 loads A from the I/O region, offset by an 8-bit immediate.
//
//	LDH A, (0xFF00 + a8)
func (c *CPU) loadHighAA8() ([]uint16, error) {
	offset := c.readOperand()
	c.SetA(c.mem.Read(types.IOBase + uint16(offset)))
	return []uint16{uint16(offset)}, nil
}

// loadHighAC loads A from the I/O region, offset by C.
//
//	LD A, (0xFF00 + C)
func (c *CPU) loadHighAC() ([]uint16, error) {
	c.SetA(c.mem.Read(types.IOBase + uint16(c.C())))
	return nil, nil
}

// loadA16A stores A at a 16-bit immediate address.
//
//	LD (a16), A
func (c *CPU) loadA16A() ([]uint16, error) {
	address := c.readOperand16()
	c.mem.Write(address, c.A())
	return []uint16{address}, nil
}

// loadAA16 loads A from a 16-bit immediate address.
//
//	LD A, (a16)
func (c *CPU) loadAA16() ([]uint16, error) {
	address := c.readOperand16()
	c.SetA(c.mem.Read(address))
	return []uint16{address}, nil
}

// loadSPHL loads HL into SP.
//
//	LD SP, HL
func (c *CPU) loadSPHL() ([]uint16, error) {
	c.SP = c.HL()
	return nil, nil
}
