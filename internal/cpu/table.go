package cpu

import "fmt"

var (
	// operandNames is the 3-bit register operand encoding.
	operandNames = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}
	// pairNamesSP is the 2-bit pair encoding used by loads and 16-bit arithmetic.
	pairNamesSP = [4]string{"BC", "DE", "HL", "SP"}
	// conditionNames is the 2-bit condition encoding.
	conditionNames = [4]string{"NZ", "Z", "NC", "C"}
	// aluNames is indexed by bits 3-5 of the 8-bit ALU opcodes.
	aluNames = [8]string{"ADD A,", "ADC A,", "SUB", "SBC A,", "AND", "XOR", "OR", "CP"}
	aluTags  = [8]Tag{Add, Adc, Sub, Sbc, And, Xor, Or, Cp}
	// cbNames is indexed by bits 3-5 of the prefixed opcodes below 0x40.
	cbNames = [8]string{"RLC", "RRC", "RL", "RR", "SLA", "SRA", "SWAP", "SRL"}
	cbTags  = [8]Tag{Rlc, Rrc, Rl, Rr, Sla, Sra, Swap, Srl}
)

// define adds an instruction to the primary table. A template equal
// to the mnemonic can be given as an empty string.
func define(opcode uint8, mnemonic, template string, tag Tag) {
	if template == "" {
		template = mnemonic
	}
	instructionSet[opcode] = Descriptor{Opcode: opcode, Mnemonic: mnemonic, Template: template, Tag: tag}
}

func defineCB(opcode uint8, mnemonic string, tag Tag) {
	instructionSetCB[opcode] = Descriptor{Opcode: opcode, Mnemonic: mnemonic, Template: mnemonic, Tag: tag}
}

func init() {
	define(0x00, "NOP", "", Nop)
	define(0xCB, "PREFIX CB", "", Prefix)

	// 16-bit loads and arithmetic, encoded by bits 4-5
	for i := uint8(0); i < 4; i++ {
		rr := pairNamesSP[i]
		define(0x01|i<<4, "LD "+rr+", d16", "LD "+rr+", $%s", LdRR16)
		define(0x03|i<<4, "INC "+rr, "", IncRR)
		define(0x09|i<<4, "ADD HL, "+rr, "", AddHLRR)
		define(0x0B|i<<4, "DEC "+rr, "", DecRR)
	}

	define(0x02, "LD (BC), A", "", LdRRA)
	define(0x12, "LD (DE), A", "", LdRRA)
	define(0x22, "LD (HL+), A", "", LdHLIncA)
	define(0x32, "LD (HL-), A", "", LdHLDecA)
	define(0x0A, "LD A, (BC)", "", LdARR)
	define(0x1A, "LD A, (DE)", "", LdARR)
	define(0x2A, "LD A, (HL+)", "", LdAHLInc)
	define(0x3A, "LD A, (HL-)", "", LdAHLDec)

	// INC r, DEC r and LD r, d8, encoded by bits 3-5
	for i := uint8(0); i < 8; i++ {
		r := operandNames[i]
		define(0x04|i<<3, "INC "+r, "", IncR)
		define(0x05|i<<3, "DEC "+r, "", DecR)
		define(0x06|i<<3, "LD "+r+", d8", "LD "+r+", $%s", LdRD8)
	}

	define(0x07, "RLCA", "", Rlca)
	define(0x0F, "RRCA", "", Rrca)
	define(0x17, "RLA", "", Rla)
	define(0x1F, "RRA", "", Rra)
	define(0x27, "DAA", "", Daa)
	define(0x2F, "CPL", "", Cpl)
	define(0x37, "SCF", "", Scf)
	define(0x3F, "CCF", "", Ccf)

	define(0x18, "JR r8", "JR $%s", Jr)
	for i := uint8(0); i < 4; i++ {
		cc := conditionNames[i]
		define(0x20|i<<3, "JR "+cc+", r8", "JR "+cc+", $%s", JrCond)
		define(0xC0|i<<3, "RET "+cc, "", RetCond)
		define(0xC2|i<<3, "JP "+cc+", a16", "JP "+cc+", $%s", JpCond)
		define(0xC4|i<<3, "CALL "+cc+", a16", "CALL "+cc+", $%s", CallCond)
	}

	// 0x40 - 0x7F LD r, r' (0x76 would be LD (HL), (HL), which is HALT)
	for dst := uint8(0); dst < 8; dst++ {
		for src := uint8(0); src < 8; src++ {
			opcode := 0x40 | dst<<3 | src
			if opcode == 0x76 {
				continue
			}
			define(opcode, fmt.Sprintf("LD %s, %s", operandNames[dst], operandNames[src]), "", LdRR)
		}
	}

	// 0x80 - 0xBF ALU r, 0xC6 - 0xFE ALU d8
	for op := uint8(0); op < 8; op++ {
		for src := uint8(0); src < 8; src++ {
			define(0x80|op<<3|src, aluNames[op]+" "+operandNames[src], "", aluTags[op])
		}
		define(0xC6|op<<3, aluNames[op]+" d8", aluNames[op]+" $%s", aluTags[op])
	}

	for i, rr := range [4]string{"BC", "DE", "HL", "AF"} {
		define(0xC1|uint8(i)<<4, "POP "+rr, "", Pop)
		define(0xC5|uint8(i)<<4, "PUSH "+rr, "", Push)
	}

	define(0xC3, "JP a16", "JP $%s", Jp)
	define(0xE9, "JP (HL)", "", JpHL)
	define(0xCD, "CALL a16", "CALL $%s", Call)
	define(0xC9, "RET", "", Ret)

	define(0xE0, "LDH (a8), A", "LDH ($FF00+$%s), A", LdhA8A)
	define(0xE2, "LD (C), A", "LD ($FF00+C), A", LdhCA)
	define(0xF0, "LDH A, (a8)", "LDH A, ($FF00+$%s)", LdhAA8)
	define(0xF2, "LD A, (C)", "LD A, ($FF00+C)", LdhAC)
	define(0xEA, "LD (a16), A", "LD ($%s), A", LdA16A)
	define(0xFA, "LD A, (a16)", "LD A, ($%s)", LdAA16)
	define(0xF9, "LD SP, HL", "", LdSPHL)

	// prefixed table, every opcode is modeled
	for i := 0; i < 256; i++ {
		opcode := uint8(i)
		r := operandNames[opcode&7]
		b := opcode >> 3 & 7
		switch opcode >> 6 {
		case 0:
			defineCB(opcode, cbNames[b]+" "+r, cbTags[b])
		case 1:
			defineCB(opcode, fmt.Sprintf("BIT %d, %s", b, r), Bit)
		case 2:
			defineCB(opcode, fmt.Sprintf("RES %d, %s", b, r), Res)
		case 3:
			defineCB(opcode, fmt.Sprintf("SET %d, %s", b, r), Set)
		}
	}
}
