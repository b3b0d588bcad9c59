package types

// Region describes a named, inclusive range of the Game Boy's
// 16-bit address space.
type Region struct {
	Name  string
	Start uint16
	End   uint16
}

// Contains reports whether the address falls inside the region.
func (r Region) Contains(address uint16) bool {
	return address >= r.Start && address <= r.End
}

// Size returns the number of bytes covered by the region.
func (r Region) Size() int {
	return int(r.End) - int(r.Start) + 1
}

var (
	// ROM0 is the fixed ROM bank, 0x0000 - 0x3FFF.
	ROM0 = Region{"ROM0", 0x0000, 0x3FFF}
	// BIOS is the boot ROM overlay inside ROM0, 0x0000 - 0x00FF.
	BIOS = Region{"BIOS", 0x0000, 0x00FF}
	// Header is the cartridge header inside ROM0, 0x0100 - 0x014F.
	Header = Region{"Header", 0x0100, 0x014F}
	// ROMX is the switchable ROM bank, 0x4000 - 0x7FFF. Bank
	// switching itself isn't emulated.
	ROMX = Region{"ROMX", 0x4000, 0x7FFF}
	// VRAM is video RAM, 0x8000 - 0x9FFF.
	VRAM = Region{"VRAM", 0x8000, 0x9FFF}
	// ExternalRAM is cartridge RAM, 0xA000 - 0xBFFF.
	ExternalRAM = Region{"ExternalRAM", 0xA000, 0xBFFF}
	// WorkingRAM is internal work RAM, 0xC000 - 0xDFFF.
	WorkingRAM = Region{"WRAM", 0xC000, 0xDFFF}
	// WorkingRAMShadow is the echo of WorkingRAM at 0xE000 - 0xFDFF.
	// The mirroring is documented address space only, reads and
	// writes are not redirected.
	WorkingRAMShadow = Region{"EchoRAM", 0xE000, 0xFDFF}
	// OAM is sprite attribute memory, 0xFE00 - 0xFE9F.
	OAM = Region{"OAM", 0xFE00, 0xFE9F}
	// Unusable is the unmapped gap between OAM and IO.
	Unusable = Region{"Unusable", 0xFEA0, 0xFEFF}
	// IO holds the memory mapped hardware registers, 0xFF00 - 0xFF7F.
	IO = Region{"IO", 0xFF00, 0xFF7F}
	// HighRAM is the high/zero page, 0xFF80 - 0xFFFF.
	HighRAM = Region{"HRAM", 0xFF80, 0xFFFF}
)

// IOBase is the base address used by the LDH family of
// instructions, which address IO through an 8-bit offset.
const IOBase uint16 = 0xFF00

// Regions lists every region from lowest to highest address. BIOS
// and Header are listed before the ROM0 bank that contains them
// so that RegionOf reports the most specific match.
var Regions = []Region{
	BIOS,
	Header,
	ROM0,
	ROMX,
	VRAM,
	ExternalRAM,
	WorkingRAM,
	WorkingRAMShadow,
	OAM,
	Unusable,
	IO,
	HighRAM,
}

// RegionOf returns the most specific region containing address.
func RegionOf(address uint16) Region {
	for _, r := range Regions {
		if r.Contains(address) {
			return r
		}
	}

	// unreachable, the regions cover the whole address space
	return Region{}
}
