package gameboy

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thelolagemann/gbcore/internal/cpu"
	"github.com/thelolagemann/gbcore/internal/stack"
	"github.com/thelolagemann/gbcore/internal/trace"
	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/log"
)

// recordingLogger keeps every message it is given.
type recordingLogger struct {
	info, errors, debug []string
}

func (l *recordingLogger) Infof(format string, args ...interface{}) {
	l.info = append(l.info, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Errorf(format string, args ...interface{}) {
	l.errors = append(l.errors, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Debugf(format string, args ...interface{}) {
	l.debug = append(l.debug, fmt.Sprintf(format, args...))
}

// loop is a program that never ends: JR -2.
var loop = []byte{0x00, 0x18, 0xFE}

func TestGameBoy_DecodeError(t *testing.T) {
	l := &recordingLogger{}
	out := &bytes.Buffer{}
	g, err := NewGameBoy([]byte{0x3E, 0x12, 0xD3}, WithLogger(l), Verbose(out))
	require.NoError(t, err)

	err = g.Run(context.Background())
	var decode *cpu.DecodeError
	require.ErrorAs(t, err, &decode)
	assert.Equal(t, uint8(0xD3), decode.Opcode)

	assert.Equal(t, "LD A, $12\n", out.String())
	require.Len(t, l.errors, 2)
	assert.True(t, strings.HasPrefix(l.errors[0], "A: 12 F: 00"), "register dump is logged first, got %q", l.errors[0])
	assert.Equal(t, "unknown opcode 0xD3 at 0x0002", l.errors[1])
	assert.Equal(t, uint64(1), g.Steps())
}

func TestGameBoy_StackUnderflow(t *testing.T) {
	l := &recordingLogger{}
	g, err := NewGameBoy([]byte{0xC9}, WithLogger(l))
	require.NoError(t, err)

	err = g.Run(context.Background())
	assert.ErrorIs(t, err, stack.ErrStackUnderflow)
	require.Len(t, l.errors, 2)
	assert.Contains(t, l.errors[0], "PC: 0001")
}

func TestGameBoy_StepLimit(t *testing.T) {
	d := trace.NewDigest()
	g, err := NewGameBoy(loop, WithTracer(d), StepLimit(1000))
	require.NoError(t, err)

	assert.ErrorIs(t, g.Run(context.Background()), ErrStepLimit)
	assert.Equal(t, uint64(1000), g.Steps())
	assert.Equal(t, uint64(1000), d.Count())
}

func TestGameBoy_Cancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	l := &recordingLogger{}
	g, err := NewGameBoy(loop, WithLogger(l))
	require.NoError(t, err)

	assert.ErrorIs(t, g.Run(ctx), context.Canceled)
	assert.Empty(t, l.errors)
	assert.Equal(t, uint64(0), g.Steps())
}

func TestGameBoy_LogsCartridge(t *testing.T) {
	rom := make([]byte, 0x8000)
	copy(rom[0x134:], "TETRIS")
	rom[0x0000] = 0xD3

	l := &recordingLogger{}
	g, err := NewGameBoy(rom, WithLogger(l))
	require.NoError(t, err)
	_ = g.Run(context.Background())

	require.GreaterOrEqual(t, len(l.info), 3)
	assert.Contains(t, l.info[0], fmt.Sprintf("%016x", g.Cart.Fingerprint()))
	assert.Contains(t, l.info[1], "TETRIS")
	assert.Contains(t, l.info[2], "checksum mismatch")
}

func TestGameBoy_State(t *testing.T) {
	// LD A, $42; CALL $0006; (0x0005) NOP; (0x0006) LD B, $01; unknown
	program := []byte{0x3E, 0x42, 0xCD, 0x06, 0x00, 0x00, 0x06, 0x01, 0xD3}

	g, err := NewGameBoy(program, StepLimit(2))
	require.NoError(t, err)
	require.ErrorIs(t, g.Run(context.Background()), ErrStepLimit)

	s := types.NewState()
	g.Save(s)

	restored, err := NewGameBoy(program, WithState(types.StateFromBytes(s.Bytes())))
	require.NoError(t, err)
	assert.Equal(t, uint8(0x42), restored.CPU.A())
	assert.Equal(t, uint16(0x0006), restored.CPU.PC)
	assert.Equal(t, []uint16{0x0005}, restored.CPU.Stack().Values())

	_, err = NewGameBoy(program, WithState(types.StateFromBytes([]byte{0x00})))
	assert.ErrorIs(t, err, types.ErrStateTruncated)
}

func TestGameBoy_Digest(t *testing.T) {
	d := trace.NewDigest()
	l := &recordingLogger{}
	g, err := NewGameBoy(loop, WithLogger(l), WithTracer(d), Digest(), StepLimit(100))
	require.NoError(t, err)
	require.ErrorIs(t, g.Run(context.Background()), ErrStepLimit)

	require.NotEmpty(t, l.info)
	assert.Equal(t, fmt.Sprintf("trace digest %016x", d.Sum64()), l.info[len(l.info)-1])
}

func TestGameBoy_Debug(t *testing.T) {
	run := func(debug bool) string {
		buf := &bytes.Buffer{}
		s := types.NewState()
		src, err := NewGameBoy(loop, StepLimit(1))
		require.NoError(t, err)
		require.ErrorIs(t, src.Run(context.Background()), ErrStepLimit)
		src.Save(s)

		g, err := NewGameBoy(loop, WithLogger(log.New(buf, debug)), WithState(s), StepLimit(2))
		require.NoError(t, err)
		require.ErrorIs(t, g.Run(context.Background()), ErrStepLimit)
		return buf.String()
	}

	out := run(true)
	assert.Contains(t, out, "level=debug msg=restored state: PC 0x0001 SP 0x0000, 0 stack entries, normal decoder")
	assert.Contains(t, out, "level=debug msg=starting at 0x0001 (BIOS)")

	out = run(false)
	assert.NotContains(t, out, "level=debug")
	assert.Contains(t, out, "level=info")
}
