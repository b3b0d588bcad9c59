package types

import "testing"

func TestRegionOf(t *testing.T) {
	tests := []struct {
		address uint16
		want    Region
	}{
		{0x0000, BIOS},
		{0x00FF, BIOS},
		{0x0100, Header},
		{0x014F, Header},
		{0x0150, ROM0},
		{0x3FFF, ROM0},
		{0x4000, ROMX},
		{0x8000, VRAM},
		{0x9FFF, VRAM},
		{0xA000, ExternalRAM},
		{0xC000, WorkingRAM},
		{0xE000, WorkingRAMShadow},
		{0xFDFF, WorkingRAMShadow},
		{0xFE00, OAM},
		{0xFEA0, Unusable},
		{0xFF00, IO},
		{0xFF7F, IO},
		{0xFF80, HighRAM},
		{0xFFFF, HighRAM},
	}
	for _, tt := range tests {
		if got := RegionOf(tt.address); got != tt.want {
			t.Errorf("0x%04X: expected %s, got %s", tt.address, tt.want.Name, got.Name)
		}
	}
}

func TestRegions_Cover(t *testing.T) {
	// every address except those covered by the BIOS/Header overlays
	// must belong to exactly one region
	for a := 0; a <= 0xFFFF; a++ {
		n := 0
		for _, r := range Regions {
			if r == BIOS || r == Header {
				continue
			}
			if r.Contains(uint16(a)) {
				n++
			}
		}
		if n != 1 {
			t.Fatalf("0x%04X: expected 1 region, got %d", a, n)
		}
	}
	if VRAM.Size() != 0x2000 {
		t.Errorf("expected VRAM size 0x2000, got 0x%X", VRAM.Size())
	}
}
