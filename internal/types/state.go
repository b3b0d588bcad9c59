package types

import (
	"errors"
	"os"
)

// ErrStateTruncated is returned when a read runs past the end of
// the state data.
var ErrStateTruncated = errors.New("state truncated")

// State is a sequential, little-endian byte buffer used to snapshot
// the emulator between runs. Writes append, reads consume from the
// start.
type State struct {
	raw          []byte // raw state data (for serialization)
	readPosition int    // current read position
	err          error  // first read error, sticky
}

// Stater is an interface that allows an object to be saved
// and loaded from a state.
type Stater interface {
	Load(*State) error // Load the state of the object
	Save(*State)       // Save the state of the object
}

// NewState creates a new, empty state.
func NewState() *State {
	return &State{
		raw: make([]byte, 0),
	}
}

// StateFromBytes creates a new state from the given bytes.
func StateFromBytes(raw []byte) *State {
	return &State{
		raw: raw,
	}
}

// StateFromFile reads a state previously written by SaveToFile.
func StateFromFile(filename string) (*State, error) {
	raw, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return StateFromBytes(raw), nil
}

func (s *State) Write8(value uint8) {
	s.raw = append(s.raw, value)
}

func (s *State) Write16(value uint16) {
	s.raw = append(s.raw, byte(value), byte(value>>8))
}

func (s *State) WriteData(data []byte) {
	s.raw = append(s.raw, data...)
}

// take consumes n bytes, recording ErrStateTruncated if there
// aren't enough left.
func (s *State) take(n int) []byte {
	if s.err != nil {
		return make([]byte, n)
	}
	if s.readPosition+n > len(s.raw) {
		s.err = ErrStateTruncated
		return make([]byte, n)
	}
	b := s.raw[s.readPosition : s.readPosition+n]
	s.readPosition += n
	return b
}

func (s *State) Read8() uint8 {
	return s.take(1)[0]
}

func (s *State) Read16() uint16 {
	b := s.take(2)
	return uint16(b[0]) | uint16(b[1])<<8
}

func (s *State) ReadData(p []byte) {
	copy(p, s.take(len(p)))
}

// Err returns the first error encountered while reading, if any.
// Once set, every following read returns zero values.
func (s *State) Err() error {
	return s.err
}

func (s *State) SaveToFile(filename string) error {
	return os.WriteFile(filename, s.raw, 0644)
}

func (s *State) Bytes() []byte {
	return s.raw
}
