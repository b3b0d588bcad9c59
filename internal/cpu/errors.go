package cpu

import (
	"fmt"
)

// DecodeError is returned when the CPU fetches an opcode that isn't
// modeled. It carries a copy of the register file at the moment the
// opcode was decoded.
type DecodeError struct {
	Opcode   uint8
	Prefixed bool
	// PC is the address the opcode was fetched from.
	PC        uint16
	Registers Registers
}

func (e *DecodeError) Error() string {
	if e.Prefixed {
		return fmt.Sprintf("unknown opcode 0xCB 0x%02X at 0x%04X", e.Opcode, e.PC)
	}
	return fmt.Sprintf("unknown opcode 0x%02X at 0x%04X", e.Opcode, e.PC)
}

// Dump returns the register dump taken when the error occurred.
func (e *DecodeError) Dump() string {
	return e.Registers.Dump()
}

// ExecError wraps an error raised while executing a modeled
// instruction, such as a stack underflow or a fetch past the end of
// the program image.
type ExecError struct {
	Descriptor Descriptor
	// PC is the address the opcode was fetched from.
	PC        uint16
	Registers Registers
	Err       error
}

func (e *ExecError) Error() string {
	if !e.Descriptor.Known() {
		return fmt.Sprintf("fetch at 0x%04X: %v", e.PC, e.Err)
	}
	return fmt.Sprintf("%s at 0x%04X: %v", e.Descriptor.Mnemonic, e.PC, e.Err)
}

func (e *ExecError) Unwrap() error {
	return e.Err
}

// Dump returns the register dump taken when the error occurred.
func (e *ExecError) Dump() string {
	return e.Registers.Dump()
}

// Dumper is implemented by errors that carry a register dump.
type Dumper interface {
	Dump() string
}
