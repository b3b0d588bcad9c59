package gameboy

import (
	"io"

	"github.com/thelolagemann/gbcore/internal/cpu"
	"github.com/thelolagemann/gbcore/internal/trace"
	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/log"
)

// Opt is a function that modifies a GameBoy
// instance.
type Opt func(gb *GameBoy)

func WithLogger(log log.Logger) Opt {
	return func(gb *GameBoy) {
		gb.Logger = log
	}
}

// WithTracer adds a tracer that receives every executed instruction.
func WithTracer(t cpu.Tracer) Opt {
	return func(gb *GameBoy) {
		gb.tracers = append(gb.tracers, t)
	}
}

// Verbose writes one trace line per executed instruction to w.
func Verbose(w io.Writer) Opt {
	return func(gb *GameBoy) {
		gb.verbose = w
	}
}

// StepLimit stops Run with ErrStepLimit once n instructions have been
// executed. Zero means no limit.
func StepLimit(n uint64) Opt {
	return func(gb *GameBoy) {
		gb.stepLimit = n
	}
}

// WithState restores a snapshot previously written by Save.
func WithState(s *types.State) Opt {
	return func(gb *GameBoy) {
		gb.state = s
	}
}

// Digest hashes the trace of the run, logging the sum once Run stops.
// Two runs of the same program from the same state log the same sum.
func Digest() Opt {
	return func(gb *GameBoy) {
		gb.digest = trace.NewDigest()
		gb.tracers = append(gb.tracers, gb.digest)
	}
}
