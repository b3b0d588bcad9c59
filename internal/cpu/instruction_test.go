package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// unmodeled lists every primary opcode without a descriptor.
var unmodeled = []uint8{
	0x08, 0x10, 0x76, 0xC7, 0xCF, 0xD3, 0xD7, 0xD9, 0xDB, 0xDD, 0xDF, 0xE3, 0xE4, 0xE7,
	0xE8, 0xEB, 0xEC, 0xED, 0xEF, 0xF3, 0xF4, 0xF7, 0xF8, 0xFB, 0xFC, 0xFD, 0xFF,
}

func TestInstructionSet(t *testing.T) {
	unknown := map[uint8]bool{}
	for _, op := range unmodeled {
		unknown[op] = true
	}

	for i := 0; i < 256; i++ {
		op := uint8(i)
		d := Lookup(op)
		if unknown[op] {
			if d != (Descriptor{}) {
				t.Errorf("expected 0x%02X to be unknown, got %q", op, d.Mnemonic)
			}
			continue
		}
		if !d.Known() {
			t.Errorf("expected 0x%02X to be modeled", op)
			continue
		}
		if d.Opcode != op {
			t.Errorf("expected descriptor of 0x%02X to carry its opcode, got 0x%02X", op, d.Opcode)
		}
		if d.Mnemonic == "" || d.Template == "" {
			t.Errorf("expected 0x%02X to have a mnemonic and a template", op)
		}
		if handlers[d.Tag] == nil && d.Tag != Prefix {
			t.Errorf("expected a handler for 0x%02X (%s)", op, d.Tag)
		}
	}

	assert.Equal(t, 256-len(unmodeled), len(Modeled()))
	assert.Equal(t, Prefix, Lookup(0xCB).Tag)
}

func TestInstructionSetCB(t *testing.T) {
	for i := 0; i < 256; i++ {
		d := LookupPrefixed(uint8(i))
		if !d.Known() || handlers[d.Tag] == nil {
			t.Errorf("expected prefixed 0x%02X to be modeled", i)
		}
	}
	assert.Len(t, ModeledPrefixed(), 256)

	assert.Equal(t, "BIT 7, H", LookupPrefixed(0x7C).Mnemonic)
	assert.Equal(t, "SWAP A", LookupPrefixed(0x37).Mnemonic)
	assert.Equal(t, "RES 0, (HL)", LookupPrefixed(0x86).Mnemonic)
	assert.Equal(t, "SET 7, A", LookupPrefixed(0xFF).Mnemonic)
}

func TestInstruction_Mnemonics(t *testing.T) {
	tests := map[uint8]string{
		0x00: "NOP",
		0x21: "LD HL, d16",
		0x31: "LD SP, d16",
		0x32: "LD (HL-), A",
		0x36: "LD (HL), d8",
		0x3C: "INC A",
		0x41: "LD B, C",
		0x77: "LD (HL), A",
		0xAF: "XOR A",
		0xFE: "CP d8",
		0xC5: "PUSH BC",
		0xF1: "POP AF",
		0xE0: "LDH (a8), A",
		0xE2: "LD (C), A",
		0xCD: "CALL a16",
		0xD8: "RET C",
	}
	for op, want := range tests {
		assert.Equal(t, want, Lookup(op).Mnemonic, "opcode 0x%02X", op)
	}
}

func TestFormatTrace(t *testing.T) {
	t.Run("byte", func(t *testing.T) {
		got := FormatTrace(Lookup(0x06), []uint16{0x05})
		if got != "LD B, $05" {
			t.Errorf("expected LD B, $05, got %s", got)
		}
	})
	t.Run("word", func(t *testing.T) {
		got := FormatTrace(Lookup(0x21), []uint16{0x1234})
		if got != "LD HL, $1234" {
			t.Errorf("expected LD HL, $1234, got %s", got)
		}
	})
	t.Run("word below 0x100", func(t *testing.T) {
		got := FormatTrace(Lookup(0xC3), []uint16{0x00FF})
		if got != "JP $FF" {
			t.Errorf("expected JP $FF, got %s", got)
		}
	})
	t.Run("no operands", func(t *testing.T) {
		got := FormatTrace(Lookup(0xAF), nil)
		if got != "XOR A" {
			t.Errorf("expected XOR A, got %s", got)
		}
	})
	t.Run("left to right", func(t *testing.T) {
		d := Descriptor{Template: "%s %s %s"}
		got := FormatTrace(d, []uint16{0x01, 0xABCD})
		assert.Equal(t, "01 ABCD %s", got)

		got = FormatTrace(Descriptor{Template: "JR $%s"}, []uint16{0xFE, 0x01})
		assert.Equal(t, "JR $FE", got)
	})
	t.Run("unknown", func(t *testing.T) {
		assert.Equal(t, "", FormatTrace(Lookup(0xD3), []uint16{0x01}))
	})
}

func TestTag_String(t *testing.T) {
	assert.Equal(t, "Unknown", Unknown.String())
	assert.Equal(t, "Xor", Xor.String())
	assert.Equal(t, "Set", Set.String())
	assert.Equal(t, "Tag(200)", Tag(200).String())
}
