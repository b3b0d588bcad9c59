package cpu

// Event describes one executed instruction.
type Event struct {
	// PC is the address the opcode was fetched from. For prefixed
	// instructions this is the address of the byte following 0xCB.
	PC         uint16
	Opcode     uint8
	Prefixed   bool
	Descriptor Descriptor
	// Operands holds the immediates consumed by the instruction.
	Operands []uint16
}

// Line returns the trace line of the event.
func (e Event) Line() string {
	return FormatTrace(e.Descriptor, e.Operands)
}

// Tracer receives an Event for every executed instruction, in
// execution order. The escape byte 0xCB is never traced on its own.
type Tracer interface {
	Trace(e Event)
}

// TracerFunc adapts a function to the Tracer interface.
type TracerFunc func(e Event)

func (f TracerFunc) Trace(e Event) {
	f(e)
}
