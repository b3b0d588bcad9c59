package cpu

// handler executes the instruction whose opcode is in c.opcode and
// returns the immediates it consumed.
type handler func(c *CPU) ([]uint16, error)

var handlers [tagCount]handler

func init() {
	handlers = [tagCount]handler{
		Nop: func(c *CPU) ([]uint16, error) { return nil, nil },

		LdRR16:   (*CPU).loadPair16,
		LdRRA:    (*CPU).loadIndirectA,
		LdHLIncA: (*CPU).loadHLIncrementA,
		LdHLDecA: (*CPU).loadHLDecrementA,
		LdARR:    (*CPU).loadAIndirect,
		LdAHLInc: (*CPU).loadAHLIncrement,
		LdAHLDec: (*CPU).loadAHLDecrement,
		LdRD8:    (*CPU).loadRegister8,
		LdRR:     (*CPU).loadRegisterToRegister,
		LdhA8A:   (*CPU).loadHighA8A,
		LdhCA:    (*CPU).loadHighCA,
		LdhAA8:   (*CPU).loadHighAA8,
		LdhAC:    (*CPU).loadHighAC,
		LdA16A:   (*CPU).loadA16A,
		LdAA16:   (*CPU).loadAA16,
		LdSPHL:   (*CPU).loadSPHL,

		IncRR:   (*CPU).incrementNN,
		DecRR:   (*CPU).decrementNN,
		AddHLRR: (*CPU).addHLRR,
		IncR:    (*CPU).incrementN,
		DecR:    (*CPU).decrementN,
		Add:     (*CPU).aluAdd,
		Adc:     (*CPU).aluAdc,
		Sub:     (*CPU).aluSub,
		Sbc:     (*CPU).aluSbc,
		And:     (*CPU).aluAnd,
		Xor:     (*CPU).aluXor,
		Or:      (*CPU).aluOr,
		Cp:      (*CPU).aluCp,
		Daa:     (*CPU).decimalAdjust,
		Cpl:     (*CPU).complement,
		Scf:     (*CPU).setCarryFlag,
		Ccf:     (*CPU).complementCarryFlag,

		Rlca: (*CPU).rotateLeftCarryAccumulator,
		Rrca: (*CPU).rotateRightCarryAccumulator,
		Rla:  (*CPU).rotateLeftAccumulatorThroughCarry,
		Rra:  (*CPU).rotateRightAccumulatorThroughCarry,

		Jr:       (*CPU).jumpRelative,
		JrCond:   (*CPU).jumpRelativeConditional,
		Jp:       (*CPU).jumpAbsolute,
		JpCond:   (*CPU).jumpAbsoluteConditional,
		JpHL:     (*CPU).jumpHL,
		Call:     (*CPU).call,
		CallCond: (*CPU).callConditional,
		Ret:      (*CPU).ret,
		RetCond:  (*CPU).retConditional,
		Pop:      (*CPU).popNN,
		Push:     (*CPU).pushNN,

		Rlc:  cbOperation((*CPU).rotateLeftCarry),
		Rrc:  cbOperation((*CPU).rotateRightCarry),
		Rl:   cbOperation((*CPU).rotateLeftThroughCarry),
		Rr:   cbOperation((*CPU).rotateRightThroughCarry),
		Sla:  cbOperation((*CPU).shiftLeftArithmetic),
		Sra:  cbOperation((*CPU).shiftRightArithmetic),
		Swap: cbOperation((*CPU).swap),
		Srl:  cbOperation((*CPU).shiftRightLogical),
		Bit:  (*CPU).bitTest,
		Res:  (*CPU).bitReset,
		Set:  (*CPU).bitSet,
	}
}

// the operand encodings of the opcodes
const (
	operandHL = 6 // (HL) in place of a register
)

// dstOperand returns the register operand encoded in bits 3-5.
func (c *CPU) dstOperand() uint8 {
	return c.opcode >> 3 & 7
}

// srcOperand returns the register operand encoded in bits 0-2.
func (c *CPU) srcOperand() uint8 {
	return c.opcode & 7
}

// readR8 returns the value of a 3-bit register operand, reading memory
// at HL for (HL).
func (c *CPU) readR8(operand uint8) uint8 {
	if operand == operandHL {
		return c.mem.Read(c.HL())
	}
	return c.Get(Reg8(operand))
}

// writeR8 sets the value of a 3-bit register operand, writing memory
// at HL for (HL).
func (c *CPU) writeR8(operand, value uint8) {
	if operand == operandHL {
		c.mem.Write(c.HL(), value)
		return
	}
	c.Set(Reg8(operand), value)
}

// pairSP returns the value of the pair encoded in bits 4-5, where the
// fourth pair is SP.
func (c *CPU) pairSP() uint16 {
	p := c.opcode >> 4 & 3
	if p == 3 {
		return c.SP
	}
	return c.GetPair(Pair(p))
}

// setPairSP sets the pair encoded in bits 4-5, where the fourth pair
// is SP.
func (c *CPU) setPairSP(value uint16) {
	p := c.opcode >> 4 & 3
	if p == 3 {
		c.SP = value
		return
	}
	c.SetPair(Pair(p), value)
}

// pairAF returns the pair encoded in bits 4-5 of PUSH and POP, where
// the fourth pair is AF.
func (c *CPU) pairAF() Pair {
	return Pair(c.opcode >> 4 & 3)
}

// condition reports whether the condition encoded in bits 3-4 holds:
// NZ, Z, NC, C.
func (c *CPU) condition() bool {
	switch c.opcode >> 3 & 3 {
	case 0:
		return !c.IsFlagSet(FlagZero)
	case 1:
		return c.IsFlagSet(FlagZero)
	case 2:
		return !c.IsFlagSet(FlagCarry)
	default:
		return c.IsFlagSet(FlagCarry)
	}
}

// aluOperand returns the operand of an 8-bit ALU instruction, which is
// either a register operand (0x80 - 0xBF) or an immediate (0xC6 - 0xFE).
func (c *CPU) aluOperand() (uint8, []uint16) {
	if c.opcode&0xC0 == 0xC0 {
		n := c.readOperand()
		return n, []uint16{uint16(n)}
	}
	return c.readR8(c.srcOperand()), nil
}

// cbOperation adapts a read-modify-write operation to a prefixed
// handler acting on the register operand in bits 0-2.
func cbOperation(op func(c *CPU, n uint8) uint8) handler {
	return func(c *CPU) ([]uint16, error) {
		r := c.srcOperand()
		c.writeR8(r, op(c, c.readR8(r)))
		return nil, nil
	}
}
