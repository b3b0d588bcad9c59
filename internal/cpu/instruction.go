package cpu

import (
	"fmt"
	"strings"
)

// Tag identifies the form of an instruction. Handlers are selected by
// tag, the registers, pair or condition a form acts on being decoded
// from the opcode itself.
type Tag uint8

const (
	// Unknown is the tag of every opcode that isn't modeled.
	Unknown Tag = iota
	// Prefix is the 0xCB escape that selects the prefixed table.
	Prefix

	Nop
	LdRR16    // LD rr, d16
	LdRRA     // LD (BC), A / LD (DE), A
	LdHLIncA  // LD (HL+), A
	LdHLDecA  // LD (HL-), A
	LdARR     // LD A, (BC) / LD A, (DE)
	LdAHLInc  // LD A, (HL+)
	LdAHLDec  // LD A, (HL-)
	IncRR     // INC rr
	DecRR     // DEC rr
	AddHLRR   // ADD HL, rr
	IncR      // INC r
	DecR      // DEC r
	LdRD8     // LD r, d8
	Rlca      // RLCA
	Rrca      // RRCA
	Rla       // RLA
	Rra       // RRA
	Jr        // JR r8
	JrCond    // JR cc, r8
	Daa       // DAA
	Cpl       // CPL
	Scf       // SCF
	Ccf       // CCF
	LdRR      // LD r, r'
	Add       // ADD A, n
	Adc       // ADC A, n
	Sub       // SUB n
	Sbc       // SBC A, n
	And       // AND n
	Xor       // XOR n
	Or        // OR n
	Cp        // CP n
	Pop       // POP rr
	Push      // PUSH rr
	Jp        // JP a16
	JpCond    // JP cc, a16
	JpHL      // JP (HL)
	Call      // CALL a16
	CallCond  // CALL cc, a16
	Ret       // RET
	RetCond   // RET cc
	LdhA8A    // LDH (a8), A
	LdhCA     // LD (C), A
	LdhAA8    // LDH A, (a8)
	LdhAC     // LD A, (C)
	LdA16A    // LD (a16), A
	LdAA16    // LD A, (a16)
	LdSPHL    // LD SP, HL
	Rlc       // RLC r
	Rrc       // RRC r
	Rl        // RL r
	Rr        // RR r
	Sla       // SLA r
	Sra       // SRA r
	Swap      // SWAP r
	Srl       // SRL r
	Bit       // BIT b, r
	Res       // RES b, r
	Set       // SET b, r

	tagCount
)

var tagNames = [tagCount]string{
	"Unknown", "Prefix", "Nop", "LdRR16", "LdRRA", "LdHLIncA", "LdHLDecA", "LdARR",
	"LdAHLInc", "LdAHLDec", "IncRR", "DecRR", "AddHLRR", "IncR", "DecR", "LdRD8",
	"Rlca", "Rrca", "Rla", "Rra", "Jr", "JrCond", "Daa", "Cpl", "Scf", "Ccf", "LdRR",
	"Add", "Adc", "Sub", "Sbc", "And", "Xor", "Or", "Cp", "Pop", "Push", "Jp", "JpCond",
	"JpHL", "Call", "CallCond", "Ret", "RetCond", "LdhA8A", "LdhCA", "LdhAA8", "LdhAC",
	"LdA16A", "LdAA16", "LdSPHL", "Rlc", "Rrc", "Rl", "Rr", "Sla", "Sra", "Swap", "Srl",
	"Bit", "Res", "Set",
}

func (t Tag) String() string {
	if t >= tagCount {
		return fmt.Sprintf("Tag(%d)", uint8(t))
	}
	return tagNames[t]
}

// Descriptor describes one opcode: its human-readable mnemonic, the
// template used for trace lines and the tag its handler is selected by.
// The zero Descriptor is the Unknown descriptor.
type Descriptor struct {
	Opcode   uint8
	Mnemonic string
	Template string
	Tag      Tag
}

// Known reports whether the descriptor belongs to a modeled opcode.
func (d Descriptor) Known() bool {
	return d.Tag != Unknown
}

var (
	// instructionSet holds the primary opcode table.
	instructionSet [256]Descriptor
	// instructionSetCB holds the table selected by the 0xCB prefix.
	instructionSetCB [256]Descriptor
)

// Lookup returns the descriptor of a primary opcode.
func Lookup(opcode uint8) Descriptor {
	return instructionSet[opcode]
}

// LookupPrefixed returns the descriptor of an opcode following 0xCB.
func LookupPrefixed(opcode uint8) Descriptor {
	return instructionSetCB[opcode]
}

// Modeled returns the descriptors of every modeled primary opcode in
// ascending opcode order.
func Modeled() []Descriptor {
	return modeled(&instructionSet)
}

// ModeledPrefixed returns the descriptors of every modeled prefixed
// opcode in ascending opcode order.
func ModeledPrefixed() []Descriptor {
	return modeled(&instructionSetCB)
}

func modeled(set *[256]Descriptor) []Descriptor {
	var out []Descriptor
	for _, d := range set {
		if d.Known() {
			out = append(out, d)
		}
	}
	return out
}

// placeholder marks where an operand is substituted in a template.
const placeholder = "%s"

// FormatTrace renders the trace line of an instruction, replacing each
// placeholder of its template with the next operand. Operands that fit
// in a byte are written as two hex digits, wider ones as four. Surplus
// operands are ignored and surplus placeholders are left as they are.
func FormatTrace(d Descriptor, operands []uint16) string {
	if len(operands) == 0 {
		return d.Template
	}

	var b strings.Builder
	rest := d.Template
	for _, op := range operands {
		before, after, found := strings.Cut(rest, placeholder)
		if !found {
			break
		}
		b.WriteString(before)
		if op > 0xFF {
			fmt.Fprintf(&b, "%04X", op)
		} else {
			fmt.Fprintf(&b, "%02X", op)
		}
		rest = after
	}
	b.WriteString(rest)
	return b.String()
}
