// Package stack provides the call stack used by the CPU for return
// addresses and pushed register pairs.
package stack

import (
	"errors"

	"github.com/thelolagemann/gbcore/internal/types"
)

// ErrStackUnderflow is returned when popping from an empty stack. It
// means the program being run is corrupt, or relies on behaviour that
// isn't emulated.
var ErrStackUnderflow = errors.New("stack underflow")

// Stack is an unbounded LIFO of 16-bit values.
type Stack struct {
	data []uint16
}

// New returns an empty Stack.
func New() *Stack {
	return &Stack{}
}

// Push pushes a value onto the top of the stack.
func (s *Stack) Push(value uint16) {
	s.data = append(s.data, value)
}

// Pop removes and returns the most recently pushed value.
func (s *Stack) Pop() (uint16, error) {
	value, ok := s.Peek()
	if !ok {
		return 0, ErrStackUnderflow
	}
	s.data = s.data[:len(s.data)-1]
	return value, nil
}

// Peek returns the top of the stack without removing it.
func (s *Stack) Peek() (value uint16, ok bool) {
	if s.Empty() {
		return
	}
	return s.data[len(s.data)-1], true
}

func (s *Stack) Empty() bool {
	return len(s.data) == 0
}

func (s *Stack) Len() int {
	return len(s.data)
}

// Values returns a copy of the stack contents, bottom first.
func (s *Stack) Values() []uint16 {
	out := make([]uint16, len(s.data))
	copy(out, s.data)
	return out
}

func (s *Stack) Reset() {
	if len(s.data) > 0 {
		s.data = s.data[:0]
	}
}

var _ types.Stater = (*Stack)(nil)

// Save writes the depth of the stack followed by its values.
func (s *Stack) Save(st *types.State) {
	st.Write16(uint16(len(s.data)))
	for _, v := range s.data {
		st.Write16(v)
	}
}

// Load replaces the stack contents with those read from st.
func (s *Stack) Load(st *types.State) error {
	n := int(st.Read16())
	data := make([]uint16, 0, n)
	for i := 0; i < n && st.Err() == nil; i++ {
		data = append(data, st.Read16())
	}
	if err := st.Err(); err != nil {
		return err
	}
	s.data = data
	return nil
}
