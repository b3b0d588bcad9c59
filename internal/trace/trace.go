// Package trace provides the sinks the CPU reports executed
// instructions to.
package trace

import (
	"bufio"
	"io"

	"github.com/thelolagemann/gbcore/internal/cpu"
)

// Writer writes one line per executed instruction.
type Writer struct {
	w   *bufio.Writer
	err error
}

// NewWriter returns a Writer writing to w. Lines are buffered until
// Flush is called.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

func (w *Writer) Trace(e cpu.Event) {
	if w.err != nil {
		return
	}
	if _, err := w.w.WriteString(e.Line()); err != nil {
		w.err = err
		return
	}
	w.err = w.w.WriteByte('\n')
}

// Flush writes any buffered lines, returning the first error
// encountered while writing.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	return w.w.Flush()
}

type multi []cpu.Tracer

func (m multi) Trace(e cpu.Event) {
	for _, t := range m {
		t.Trace(e)
	}
}

// Multi returns a Tracer that forwards every event to each of the
// given tracers, in order. Nil tracers are skipped.
func Multi(tracers ...cpu.Tracer) cpu.Tracer {
	var m multi
	for _, t := range tracers {
		if t != nil {
			m = append(m, t)
		}
	}
	return m
}
