// Package memory provides the flat 64kB address space of the Game Boy.
// Reads and writes are uniform byte operations, the named regions of
// types only describe the address space.
package memory

import "github.com/thelolagemann/gbcore/internal/types"

// Size is the number of addressable bytes.
const Size = 0x10000

// Memory is the 64kB address space.
type Memory struct {
	raw [Size]uint8
}

// New returns a new, zeroed Memory.
func New() *Memory {
	return &Memory{}
}

// Read returns the value at the given address.
func (m *Memory) Read(address uint16) uint8 {
	return m.raw[address]
}

// Write writes the value to the given address.
func (m *Memory) Write(address uint16, value uint8) {
	m.raw[address] = value
}

// ClearRegion zeroes every byte in the given region.
func (m *Memory) ClearRegion(r types.Region) {
	clear(m.raw[r.Start : int(r.Start)+r.Size()])
}

var _ types.Stater = (*Memory)(nil)

// Save writes the whole address space to the state.
func (m *Memory) Save(s *types.State) {
	s.WriteData(m.raw[:])
}

// Load restores the address space from the state. Memory is left
// untouched when the state is truncated.
func (m *Memory) Load(s *types.State) error {
	var raw [Size]uint8
	s.ReadData(raw[:])
	if err := s.Err(); err != nil {
		return err
	}
	m.raw = raw
	return nil
}
