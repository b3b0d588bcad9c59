package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisters_PairAliasing(t *testing.T) {
	pairs := []struct {
		name      string
		pair      Pair
		high, low Reg8
	}{
		{"BC", PairBC, RegB, RegC},
		{"DE", PairDE, RegD, RegE},
		{"HL", PairHL, RegH, RegL},
		{"AF", PairAF, RegA, RegF},
	}
	for _, p := range pairs {
		t.Run(p.name, func(t *testing.T) {
			r := &Registers{}
			lowMask := uint8(0xFF)
			if p.pair == PairAF {
				lowMask = 0xF0
			}
			for v := 0; v <= 0xFF; v++ {
				r.SetPair(p.pair, 0x0000)
				r.Set(p.high, uint8(v))
				if r.GetPair(p.pair) != uint16(v)<<8 {
					t.Fatalf("expected %s to be 0x%04X, got 0x%04X", p.name, uint16(v)<<8, r.GetPair(p.pair))
				}
				r.Set(p.low, uint8(v))
				want := uint16(v)<<8 | uint16(uint8(v)&lowMask)
				if r.GetPair(p.pair) != want {
					t.Fatalf("expected %s to be 0x%04X, got 0x%04X", p.name, want, r.GetPair(p.pair))
				}

				r.SetPair(p.pair, uint16(v)<<8|uint16(0xFF-v))
				if r.Get(p.high) != uint8(v) {
					t.Fatalf("expected %s to be 0x%02X, got 0x%02X", p.high, v, r.Get(p.high))
				}
				if r.Get(p.low) != uint8(0xFF-v)&lowMask {
					t.Fatalf("expected %s to be 0x%02X, got 0x%02X", p.low, uint8(0xFF-v)&lowMask, r.Get(p.low))
				}
			}
		})
	}
}

func TestRegisters_Accessors(t *testing.T) {
	assert := assert.New(t)

	r := &Registers{}
	r.SetA(0x01)
	r.SetB(0x02)
	r.SetC(0x03)
	r.SetD(0x04)
	r.SetE(0x05)
	r.SetH(0x06)
	r.SetL(0x07)
	r.SetF(0xFF)

	assert.Equal(uint16(0x01F0), r.AF())
	assert.Equal(uint16(0x0203), r.BC())
	assert.Equal(uint16(0x0405), r.DE())
	assert.Equal(uint16(0x0607), r.HL())

	r.SetAF(0x1234)
	assert.Equal(uint8(0x12), r.A())
	assert.Equal(uint8(0x30), r.F(), "low nibble of F is always zero")

	r.SetHL(0xBEEF)
	assert.Equal(uint8(0xBE), r.H())
	assert.Equal(uint8(0xEF), r.L())
}

func TestRegisters_Flags(t *testing.T) {
	flags := []Flag{FlagZero, FlagSubtract, FlagHalfCarry, FlagCarry}
	for _, f := range flags {
		r := &Registers{}
		for _, initial := range []uint8{0x00, 0xF0, 0xA0, 0x50} {
			r.SetF(initial)
			r.SetFlag(f)
			if r.F() != initial|1<<f {
				t.Errorf("setting flag %d on 0x%02X: expected 0x%02X, got 0x%02X", f, initial, initial|1<<f, r.F())
			}
			if !r.IsFlagSet(f) {
				t.Errorf("expected flag %d to be set, got unset", f)
			}

			r.SetF(initial)
			r.ClearFlag(f)
			if r.F() != initial&^(1<<f) {
				t.Errorf("clearing flag %d on 0x%02X: expected 0x%02X, got 0x%02X", f, initial, initial&^(1<<f), r.F())
			}
			if r.IsFlagSet(f) {
				t.Errorf("expected flag %d to be unset, got set", f)
			}
		}

		r.SetFlagTo(f, true)
		if !r.IsFlagSet(f) {
			t.Errorf("expected flag %d to be set, got unset", f)
		}
		r.SetFlagTo(f, false)
		if r.IsFlagSet(f) {
			t.Errorf("expected flag %d to be unset, got set", f)
		}
	}
}

func TestRegisters_Step(t *testing.T) {
	r := &Registers{}
	r.Step(1)
	if r.PC != 0x0001 {
		t.Errorf("expected PC to be 0x0001, got 0x%04X", r.PC)
	}
	r.Step(-2)
	if r.PC != 0xFFFF {
		t.Errorf("expected PC to wrap to 0xFFFF, got 0x%04X", r.PC)
	}
	r.Step(2)
	if r.PC != 0x0001 {
		t.Errorf("expected PC to wrap to 0x0001, got 0x%04X", r.PC)
	}
	r.Jump(0x0150)
	r.Step(int(SignedByte(0xFE)))
	if r.PC != 0x014E {
		t.Errorf("expected PC to be 0x014E, got 0x%04X", r.PC)
	}
}

func TestSignedByte(t *testing.T) {
	tests := map[uint8]int8{0x00: 0, 0x01: 1, 0x7F: 127, 0x80: -128, 0xFE: -2, 0xFF: -1}
	for in, want := range tests {
		if got := SignedByte(in); got != want {
			t.Errorf("expected 0x%02X to be %d, got %d", in, want, got)
		}
	}
}

func TestRegisters_Dump(t *testing.T) {
	r := &Registers{}
	r.SetAF(0x01B0)
	r.SetBC(0x0013)
	r.SetDE(0x00D8)
	r.SetHL(0x014D)
	r.SP = 0xFFFE
	r.PC = 0x0100

	want := "A: 01 F: B0 B: 00 C: 13 D: 00 E: D8 H: 01 L: 4D SP: FFFE PC: 0100 Z:1 N:0 H:1 C:1"
	assert.Equal(t, want, r.Dump())
}
