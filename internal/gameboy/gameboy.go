// Package gameboy ties a program image to the CPU and drives its
// execution.
package gameboy

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/thelolagemann/gbcore/internal/cartridge"
	"github.com/thelolagemann/gbcore/internal/cpu"
	"github.com/thelolagemann/gbcore/internal/trace"
	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/log"
)

// ErrStepLimit is returned by Run once the configured number of
// instructions has been executed.
var ErrStepLimit = errors.New("step limit reached")

// cancelCheckInterval is the number of steps between two checks of the
// context passed to Run.
const cancelCheckInterval = 1 << 12

// GameBoy represents a Game Boy: a cartridge and the CPU executing it.
type GameBoy struct {
	CPU  *cpu.CPU
	Cart *cartridge.Cartridge

	log.Logger

	tracers   []cpu.Tracer
	verbose   io.Writer
	writer    *trace.Writer
	digest    *trace.Digest
	stepLimit uint64
	state     *types.State
}

// NewGameBoy returns a new GameBoy executing rom from address 0.
func NewGameBoy(rom []byte, opts ...Opt) (*GameBoy, error) {
	g := &GameBoy{
		Cart:   cartridge.New(rom),
		Logger: log.NewNullLogger(),
	}

	for _, opt := range opts {
		opt(g)
	}

	if g.verbose != nil {
		g.writer = trace.NewWriter(g.verbose)
		g.tracers = append(g.tracers, g.writer)
	}

	var cpuOpts []cpu.Option
	if len(g.tracers) > 0 {
		cpuOpts = append(cpuOpts, cpu.WithTracer(trace.Multi(g.tracers...)))
	}
	g.CPU = cpu.NewCPU(g.Cart, cpuOpts...)

	if g.state != nil {
		if err := g.CPU.Load(g.state); err != nil {
			return nil, fmt.Errorf("loading state: %w", err)
		}
		g.Debugf("restored state: PC 0x%04X SP 0x%04X, %d stack entries, %s decoder",
			g.CPU.PC, g.CPU.SP, g.CPU.Stack().Len(), g.CPU.State())
	}

	return g, nil
}

// Run executes instructions until an error occurs, ctx is done or the
// step limit is reached. Fatal errors are logged together with the
// register dump taken when they occurred.
func (g *GameBoy) Run(ctx context.Context) error {
	g.logCartridge()
	g.Debugf("starting at 0x%04X (%s)", g.CPU.PC, types.RegionOf(g.CPU.PC).Name)

	err := g.run(ctx)
	if g.writer != nil {
		if ferr := g.writer.Flush(); ferr != nil && err == nil {
			err = ferr
		}
	}

	switch {
	case errors.Is(err, ErrStepLimit), errors.Is(err, context.Canceled):
		g.Infof("stopped: %v", err)
	default:
		var d cpu.Dumper
		if errors.As(err, &d) {
			g.Errorf("%s", d.Dump())
		}
		g.Errorf("%v", err)
	}
	g.Infof("executed %d instructions", g.Steps())
	if g.digest != nil {
		g.Infof("trace digest %016x", g.digest.Sum64())
	}
	return err
}

func (g *GameBoy) run(ctx context.Context) error {
	for i := 0; ; i++ {
		if i%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		if g.stepLimit > 0 && g.Steps() >= g.stepLimit {
			return ErrStepLimit
		}
		if err := g.CPU.Step(); err != nil {
			return err
		}
	}
}

func (g *GameBoy) logCartridge() {
	g.Infof("loaded %d byte program, fingerprint %016x", g.Cart.Size(), g.Cart.Fingerprint())
	if !g.Cart.HasHeader() {
		return
	}
	h := g.Cart.Header()
	g.Infof("%s", h.String())
	if !h.ValidChecksum() {
		g.Infof("header checksum mismatch: expected 0x%02X, got 0x%02X", h.ComputeChecksum(), h.HeaderChecksum)
	}
}

// Steps returns the number of executed instructions.
func (g *GameBoy) Steps() uint64 {
	return g.CPU.Instructions()
}

// Save writes a snapshot of the CPU to s.
func (g *GameBoy) Save(s *types.State) {
	g.CPU.Save(s)
}
