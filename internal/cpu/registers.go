package cpu

import (
	"fmt"

	"github.com/thelolagemann/gbcore/internal/types"
)

// Reg8 names one of the eight 8-bit registers. The ordering follows the
// operand encoding of the opcodes (B, C, D, E, H, L, (HL), A), with F
// taking the slot that the opcodes use for (HL).
type Reg8 uint8

const (
	RegB Reg8 = iota
	RegC
	RegD
	RegE
	RegH
	RegL
	RegF
	RegA
)

var reg8Names = [8]string{"B", "C", "D", "E", "H", "L", "F", "A"}

func (r Reg8) String() string {
	return reg8Names[r&7]
}

// Pair names one of the four register pairs.
type Pair uint8

const (
	PairBC Pair = iota
	PairDE
	PairHL
	PairAF
)

var pairNames = [4]string{"BC", "DE", "HL", "AF"}

func (p Pair) String() string {
	return pairNames[p&3]
}

// Registers holds the register file of the SM83. The eight 8-bit registers
// are stored as four 16-bit pairs, the first named register of each pair
// being the high byte.
type Registers struct {
	af types.RegisterPair
	bc types.RegisterPair
	de types.RegisterPair
	hl types.RegisterPair

	// PC is the program counter, it points to the next byte to be fetched.
	PC uint16
	// SP is the stack pointer.
	SP uint16
}

func (r *Registers) A() uint8 { return r.af.High() }
func (r *Registers) F() uint8 { return r.af.Low() }
func (r *Registers) B() uint8 { return r.bc.High() }
func (r *Registers) C() uint8 { return r.bc.Low() }
func (r *Registers) D() uint8 { return r.de.High() }
func (r *Registers) E() uint8 { return r.de.Low() }
func (r *Registers) H() uint8 { return r.hl.High() }
func (r *Registers) L() uint8 { return r.hl.Low() }

func (r *Registers) SetA(v uint8) { r.af.SetHigh(v) }
func (r *Registers) SetB(v uint8) { r.bc.SetHigh(v) }
func (r *Registers) SetC(v uint8) { r.bc.SetLow(v) }
func (r *Registers) SetD(v uint8) { r.de.SetHigh(v) }
func (r *Registers) SetE(v uint8) { r.de.SetLow(v) }
func (r *Registers) SetH(v uint8) { r.hl.SetHigh(v) }
func (r *Registers) SetL(v uint8) { r.hl.SetLow(v) }

// SetF sets the flag register. The low nibble of F is always zero.
func (r *Registers) SetF(v uint8) { r.af.SetLow(v & 0xF0) }

func (r *Registers) AF() uint16 { return r.af.Uint16() }
func (r *Registers) BC() uint16 { return r.bc.Uint16() }
func (r *Registers) DE() uint16 { return r.de.Uint16() }
func (r *Registers) HL() uint16 { return r.hl.Uint16() }

// SetAF sets the AF pair, masking the low nibble of F.
func (r *Registers) SetAF(v uint16) { r.af.SetUint16(v & 0xFFF0) }
func (r *Registers) SetBC(v uint16) { r.bc.SetUint16(v) }
func (r *Registers) SetDE(v uint16) { r.de.SetUint16(v) }
func (r *Registers) SetHL(v uint16) { r.hl.SetUint16(v) }

// Get returns the value of the given 8-bit register.
func (r *Registers) Get(reg Reg8) uint8 {
	switch reg & 7 {
	case RegB:
		return r.B()
	case RegC:
		return r.C()
	case RegD:
		return r.D()
	case RegE:
		return r.E()
	case RegH:
		return r.H()
	case RegL:
		return r.L()
	case RegF:
		return r.F()
	default:
		return r.A()
	}
}

// Set sets the value of the given 8-bit register.
func (r *Registers) Set(reg Reg8, v uint8) {
	switch reg & 7 {
	case RegB:
		r.SetB(v)
	case RegC:
		r.SetC(v)
	case RegD:
		r.SetD(v)
	case RegE:
		r.SetE(v)
	case RegH:
		r.SetH(v)
	case RegL:
		r.SetL(v)
	case RegF:
		r.SetF(v)
	default:
		r.SetA(v)
	}
}

// GetPair returns the value of the given register pair.
func (r *Registers) GetPair(p Pair) uint16 {
	switch p & 3 {
	case PairBC:
		return r.BC()
	case PairDE:
		return r.DE()
	case PairHL:
		return r.HL()
	default:
		return r.AF()
	}
}

// SetPair sets the value of the given register pair.
func (r *Registers) SetPair(p Pair, v uint16) {
	switch p & 3 {
	case PairBC:
		r.SetBC(v)
	case PairDE:
		r.SetDE(v)
	case PairHL:
		r.SetHL(v)
	default:
		r.SetAF(v)
	}
}

// Step advances PC by delta, which may be negative. PC wraps around
// at 0xFFFF.
func (r *Registers) Step(delta int) {
	r.PC = uint16(int(r.PC) + delta)
}

// Jump sets PC to the given address.
func (r *Registers) Jump(address uint16) {
	r.PC = address
}

// SignedByte interprets b as a two's-complement value.
func SignedByte(b uint8) int8 {
	return int8(b)
}

// Dump returns the full register state on a single line.
func (r *Registers) Dump() string {
	return fmt.Sprintf("A: %02X F: %02X B: %02X C: %02X D: %02X E: %02X H: %02X L: %02X SP: %04X PC: %04X Z:%d N:%d H:%d C:%d",
		r.A(), r.F(), r.B(), r.C(), r.D(), r.E(), r.H(), r.L(), r.SP, r.PC,
		types.Val(r.F(), FlagZero), types.Val(r.F(), FlagSubtract),
		types.Val(r.F(), FlagHalfCarry), types.Val(r.F(), FlagCarry))
}

func (r *Registers) String() string {
	return r.Dump()
}

// Reset zeroes every register.
func (r *Registers) Reset() {
	*r = Registers{}
}

// save writes the register file to s.
func (r *Registers) save(s *types.State) {
	s.Write16(r.AF())
	s.Write16(r.BC())
	s.Write16(r.DE())
	s.Write16(r.HL())
	s.Write16(r.PC)
	s.Write16(r.SP)
}

// load reads the register file from s.
func (r *Registers) load(s *types.State) {
	r.SetAF(s.Read16())
	r.SetBC(s.Read16())
	r.SetDE(s.Read16())
	r.SetHL(s.Read16())
	r.PC = s.Read16()
	r.SP = s.Read16()
}
