// Package cpu implements the fetch-decode-execute engine of the SM83,
// the processor of the Game Boy.
package cpu

import (
	"fmt"

	"github.com/thelolagemann/gbcore/internal/memory"
	"github.com/thelolagemann/gbcore/internal/stack"
	"github.com/thelolagemann/gbcore/internal/types"
)

// prefixOpcode selects the prefixed table for the next fetched byte.
const prefixOpcode = 0xCB

// Source is the instruction stream the CPU fetches opcodes and their
// operands from. It is independent of the data memory.
type Source interface {
	Fetch(address uint16) (uint8, error)
}

// State is the state of the decoder.
type State uint8

const (
	// StateNormal decodes the next byte against the primary table.
	StateNormal State = iota
	// StatePrefixed decodes the next byte against the 0xCB table.
	StatePrefixed
)

func (s State) String() string {
	switch s {
	case StateNormal:
		return "normal"
	case StatePrefixed:
		return "prefixed"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// CPU represents the Gameboy CPU. It is responsible for executing instructions.
type CPU struct {
	// Registers contains the 8-bit registers, the 16-bit register pairs
	// as well as PC and SP.
	Registers

	mem    *memory.Memory
	stack  *stack.Stack
	source Source
	tracer Tracer

	state  State
	opcode uint8
	// fetchErr holds the first error raised while reading operands of
	// the current instruction.
	fetchErr error

	instructions uint64
}

// Option configures a CPU.
type Option func(c *CPU)

// WithTracer sets the Tracer that receives an Event for every
// executed instruction.
func WithTracer(t Tracer) Option {
	return func(c *CPU) {
		c.tracer = t
	}
}

// WithMemory sets the data memory of the CPU.
func WithMemory(m *memory.Memory) Option {
	return func(c *CPU) {
		c.mem = m
	}
}

// WithStack sets the call stack of the CPU.
func WithStack(s *stack.Stack) Option {
	return func(c *CPU) {
		c.stack = s
	}
}

// NewCPU creates a new CPU fetching its instructions from source,
// starting at address 0.
func NewCPU(source Source, opts ...Option) *CPU {
	c := &CPU{source: source}
	for _, opt := range opts {
		opt(c)
	}
	if c.mem == nil {
		c.mem = memory.New()
	}
	if c.stack == nil {
		c.stack = stack.New()
	}
	return c
}

// Memory returns the data memory of the CPU.
func (c *CPU) Memory() *memory.Memory {
	return c.mem
}

// Stack returns the call stack of the CPU.
func (c *CPU) Stack() *stack.Stack {
	return c.stack
}

// State returns the current state of the decoder.
func (c *CPU) State() State {
	return c.state
}

// Instructions returns the number of instructions executed since the
// CPU was created or last reset.
func (c *CPU) Instructions() uint64 {
	return c.instructions
}

// Reset zeroes the registers, empties the stack, clears video RAM and
// returns the decoder to its normal state.
func (c *CPU) Reset() {
	c.Registers.Reset()
	c.stack.Reset()
	c.mem.ClearRegion(types.VRAM)
	c.state = StateNormal
	c.fetchErr = nil
	c.instructions = 0
}

// fetch reads the byte at PC and advances PC.
func (c *CPU) fetch() (uint8, error) {
	v, err := c.source.Fetch(c.PC)
	if err != nil {
		return 0, err
	}
	c.Registers.Step(1)
	return v, nil
}

// readOperand reads the next byte of the current instruction.
func (c *CPU) readOperand() uint8 {
	v, err := c.fetch()
	if err != nil && c.fetchErr == nil {
		c.fetchErr = err
	}
	return v
}

// readOperand16 reads the next two bytes of the current instruction
// as a little-endian value.
func (c *CPU) readOperand16() uint16 {
	low := c.readOperand()
	high := c.readOperand()
	return uint16(high)<<8 | uint16(low)
}

// Step executes a single step of the decoder. Fetching the 0xCB prefix
// only switches the decoder to its prefixed state, the prefixed
// instruction itself is executed by the following Step.
func (c *CPU) Step() error {
	pc := c.PC
	opcode, err := c.fetch()
	if err != nil {
		c.state = StateNormal
		return &ExecError{PC: pc, Registers: c.Registers, Err: err}
	}

	if c.state == StateNormal && opcode == prefixOpcode {
		c.state = StatePrefixed
		return nil
	}

	prefixed := c.state == StatePrefixed
	c.state = StateNormal

	var d Descriptor
	if prefixed {
		d = LookupPrefixed(opcode)
	} else {
		d = Lookup(opcode)
	}

	handler := handlers[d.Tag]
	if handler == nil {
		return &DecodeError{Opcode: opcode, Prefixed: prefixed, PC: pc, Registers: c.Registers}
	}

	c.opcode = opcode
	operands, err := handler(c)
	if err == nil {
		err = c.fetchErr
	}
	c.fetchErr = nil
	if err != nil {
		return &ExecError{Descriptor: d, PC: pc, Registers: c.Registers, Err: err}
	}

	c.instructions++
	if c.tracer != nil {
		c.tracer.Trace(Event{PC: pc, Opcode: opcode, Prefixed: prefixed, Descriptor: d, Operands: operands})
	}
	return nil
}

// Run steps the CPU until an error occurs. There is no halt
// instruction, so Run always returns a non-nil error.
func (c *CPU) Run() error {
	for {
		if err := c.Step(); err != nil {
			return err
		}
	}
}

// push pushes a value onto the call stack. SP is kept in step with
// the stack as the hardware would move it.
func (c *CPU) push(value uint16) {
	c.stack.Push(value)
	c.SP -= 2
}

// pop pops a value from the call stack.
func (c *CPU) pop() (uint16, error) {
	value, err := c.stack.Pop()
	if err != nil {
		return 0, err
	}
	c.SP += 2
	return value, nil
}

var _ types.Stater = (*CPU)(nil)

// Save writes the registers, decoder state, call stack and memory.
func (c *CPU) Save(s *types.State) {
	c.Registers.save(s)
	s.Write8(uint8(c.state))
	c.stack.Save(s)
	c.mem.Save(s)
}

// Load restores the CPU from a state written by Save. Nothing is
// changed unless the whole state could be read.
func (c *CPU) Load(s *types.State) error {
	var regs Registers
	regs.load(s)
	state := State(s.Read8())
	if err := s.Err(); err != nil {
		return err
	}
	if state > StatePrefixed {
		return fmt.Errorf("invalid decoder state %d", state)
	}
	st, mem := stack.New(), memory.New()
	if err := st.Load(s); err != nil {
		return err
	}
	if err := mem.Load(s); err != nil {
		return err
	}

	c.Registers = regs
	c.state = state
	*c.stack = *st
	*c.mem = *mem
	return nil
}
