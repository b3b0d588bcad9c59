// Package cartridge holds the program image the CPU fetches its
// instructions from, along with the information stored in its header.
package cartridge

import (
	"fmt"

	"github.com/cespare/xxhash"
	"github.com/thelolagemann/gbcore/internal/types"
)

// BoundsError is returned when the CPU fetches beyond the end
// of the program image.
type BoundsError struct {
	Address uint16
	Size    int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("fetch from 0x%04X past end of %d byte program image", e.Address, e.Size)
}

// Cartridge represents a basic game cartridge. Instructions are fetched
// directly from the image, independently of the CPU's data memory.
type Cartridge struct {
	rom       []byte
	header    Header
	hasHeader bool
}

// New returns a Cartridge for the given program image. Images too
// short to contain a header (e.g. boot ROMs, test programs) are
// accepted, HasHeader reports false for them.
func New(rom []byte) *Cartridge {
	c := &Cartridge{rom: rom}

	// parse the cartridge header (0x0100 - 0x014F)
	if len(rom) > int(types.Header.End) {
		c.header = parseHeader(rom[types.Header.Start : types.Header.End+1])
		c.hasHeader = true
	}

	return c
}

// Fetch returns the byte at the given address of the image.
func (c *Cartridge) Fetch(address uint16) (uint8, error) {
	if int(address) >= len(c.rom) {
		return 0, &BoundsError{Address: address, Size: len(c.rom)}
	}
	return c.rom[address], nil
}

// Size returns the length of the image in bytes.
func (c *Cartridge) Size() int {
	return len(c.rom)
}

// Header returns the parsed cartridge header.
func (c *Cartridge) Header() Header {
	return c.header
}

// HasHeader reports whether the image was long enough to hold a header.
func (c *Cartridge) HasHeader() bool {
	return c.hasHeader
}

// Fingerprint returns the xxhash64 of the whole image, which
// identifies a program independently of its file name.
func (c *Cartridge) Fingerprint() uint64 {
	return xxhash.Sum64(c.rom)
}
