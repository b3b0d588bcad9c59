package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/thelolagemann/gbcore/internal/gameboy"
	"github.com/thelolagemann/gbcore/internal/trace"
	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/log"
	"github.com/thelolagemann/gbcore/pkg/statsview"
	"github.com/thelolagemann/gbcore/pkg/utils"
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <rom>\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	verbose := flag.Bool("v", false, "print one trace line per executed instruction")
	debug := flag.Bool("debug", false, "enable debug logging")
	traceAddr := flag.String("trace-addr", "", "stream trace lines to websocket clients on host:port")
	stats := flag.Bool("statsview", false, "serve runtime statistics on "+statsview.Address)
	steps := flag.Uint64("steps", 0, "stop after n instructions (0 runs until an error)")
	state := flag.String("state", "", "the state file to resume from")
	saveState := flag.String("save-state", "", "write a state file when execution stops")
	digest := flag.Bool("digest", false, "log a hash of the whole trace when execution stops")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}

	logger := log.New(os.Stderr, *debug)
	os.Exit(run(logger, flag.Arg(0), *verbose, *digest, *traceAddr, *stats, *steps, *state, *saveState))
}

func run(logger log.Logger, romFile string, verbose, digest bool, traceAddr string, stats bool, steps uint64, state, saveState string) int {
	rom, err := utils.LoadFile(romFile)
	if err != nil {
		logger.Errorf("%v", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := []gameboy.Opt{gameboy.WithLogger(logger), gameboy.StepLimit(steps)}
	if verbose {
		opts = append(opts, gameboy.Verbose(os.Stdout))
	}
	if digest {
		opts = append(opts, gameboy.Digest())
	}
	if state != "" {
		s, err := types.StateFromFile(state)
		if err != nil {
			logger.Errorf("%v", err)
			return 1
		}
		opts = append(opts, gameboy.WithState(s))
	}
	if traceAddr != "" {
		hub := trace.NewHub("gbcore " + romFile)
		go func() {
			if err := hub.ListenAndServe(ctx, traceAddr); err != nil {
				logger.Errorf("trace server: %v", err)
			}
		}()
		logger.Infof("streaming trace on ws://%s", traceAddr)
		opts = append(opts, gameboy.WithTracer(hub))
	}
	if stats {
		defer statsview.Launch(statsview.Address, logger)()
	}

	gb, err := gameboy.NewGameBoy(rom, opts...)
	if err != nil {
		logger.Errorf("%v", err)
		return 1
	}

	err = gb.Run(ctx)
	if saveState != "" {
		s := types.NewState()
		gb.Save(s)
		if serr := s.SaveToFile(saveState); serr != nil {
			logger.Errorf("saving state: %v", serr)
			return 1
		}
		logger.Debugf("saved %d byte state to %s", len(s.Bytes()), saveState)
	}

	switch {
	case err == nil, errors.Is(err, gameboy.ErrStepLimit), errors.Is(err, context.Canceled):
		return 0
	default:
		return 1
	}
}
