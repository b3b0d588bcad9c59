package types

import "testing"

func TestRegisterPair(t *testing.T) {
	t.Run("halves", func(t *testing.T) {
		var p RegisterPair
		for v := 0; v <= 0xFF; v++ {
			p.SetUint16(0x0000)
			p.SetHigh(Register(v))
			if p.Uint16() != uint16(v)<<8 {
				t.Errorf("expected 0x%04X, got 0x%04X", uint16(v)<<8, p.Uint16())
			}
			p.SetLow(Register(v))
			if p.Uint16() != uint16(v)<<8|uint16(v) {
				t.Errorf("expected 0x%04X, got 0x%04X", uint16(v)<<8|uint16(v), p.Uint16())
			}
		}
	})
	t.Run("uint16", func(t *testing.T) {
		var p RegisterPair
		for v := 0; v <= 0xFFFF; v++ {
			p.SetUint16(uint16(v))
			if p.High() != Register(v>>8) || p.Low() != Register(v) {
				t.Fatalf("expected %02X/%02X, got %02X/%02X", v>>8, v&0xFF, p.High(), p.Low())
			}
		}
	})
	t.Run("independent", func(t *testing.T) {
		p := RegisterPair{}
		p.SetUint16(0x1234)
		p.SetLow(0xFF)
		if p.High() != 0x12 {
			t.Errorf("expected high byte to stay 0x12, got 0x%02X", p.High())
		}
		p.SetHigh(0x00)
		if p.Low() != 0xFF {
			t.Errorf("expected low byte to stay 0xFF, got 0x%02X", p.Low())
		}
	})
}

func TestBits(t *testing.T) {
	for i := uint8(0); i < 8; i++ {
		v := Set(0, i)
		if v != 1<<i {
			t.Errorf("expected 0x%02X, got 0x%02X", 1<<i, v)
		}
		if !Test(v, i) || Val(v, i) != 1 {
			t.Errorf("expected bit %d to be set", i)
		}
		if Reset(0xFF, i) != 0xFF&^(1<<i) {
			t.Errorf("expected bit %d to be reset", i)
		}
	}
}
