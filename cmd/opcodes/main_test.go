package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thelolagemann/gbcore/internal/cpu"
)

func TestWriteGrid(t *testing.T) {
	buf := &bytes.Buffer{}
	writeGrid(buf, "primary", cpu.Lookup)

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 19)
	assert.Equal(t, "primary", lines[0])
	assert.Equal(t, "    0 1 2 3 4 5 6 7 8 9 A B C D E F", lines[1])
	// 0x00-0x0F, 0x08 is unmodeled
	assert.Equal(t, "0_  # # # # # # # # . # # # # # # #", lines[2])
	assert.Equal(t, "229/256 modeled, 27 unmodeled", lines[18])
}

func TestWriteGrid_Prefixed(t *testing.T) {
	buf := &bytes.Buffer{}
	writeGrid(buf, "prefixed", cpu.LookupPrefixed)

	assert.NotContains(t, buf.String(), " .")
	assert.True(t, strings.HasSuffix(buf.String(), "256/256 modeled, 0 unmodeled\n"))
}

func TestWriteList(t *testing.T) {
	buf := &bytes.Buffer{}
	writeList(buf, "CB ", []cpu.Descriptor{cpu.LookupPrefixed(0x7C)})
	assert.Equal(t, "CB 7C  BIT 7, H          Bit\n", buf.String())
}
