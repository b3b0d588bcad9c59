package trace

import (
	"bytes"
	"context"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/cespare/xxhash"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thelolagemann/gbcore/internal/cartridge"
	"github.com/thelolagemann/gbcore/internal/cpu"
)

var program = []byte{
	0x31, 0xFE, 0xFF, // LD SP, $FFFE
	0xAF,       // XOR A
	0xCB, 0x7C, // BIT 7, H
	0x3E, 0x05, // LD A, $05
}

var programLines = []string{"LD SP, $FFFE", "XOR A", "BIT 7, H", "LD A, $05"}

// execute runs program on a CPU reporting to t until the program image
// is exhausted.
func execute(t *testing.T, tracer cpu.Tracer) {
	t.Helper()
	err := cpu.NewCPU(cartridge.New(program), cpu.WithTracer(tracer)).Run()
	var bounds *cartridge.BoundsError
	require.ErrorAs(t, err, &bounds)
}

func TestWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf)
	execute(t, w)
	require.NoError(t, w.Flush())

	assert.Equal(t, strings.Join(programLines, "\n")+"\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriter_Error(t *testing.T) {
	w := NewWriter(failingWriter{})
	execute(t, w)
	assert.EqualError(t, w.Flush(), "disk full")
}

func TestDigest(t *testing.T) {
	d := NewDigest()
	execute(t, d)

	assert.Equal(t, uint64(len(programLines)), d.Count())
	assert.Equal(t, xxhash.Sum64([]byte(strings.Join(programLines, "\n")+"\n")), d.Sum64())

	again := NewDigest()
	execute(t, again)
	assert.Equal(t, d.Sum64(), again.Sum64(), "identical executions share a digest")

	d.Reset()
	assert.Equal(t, uint64(0), d.Count())
}

func TestMulti(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf)
	d := NewDigest()
	execute(t, Multi(w, nil, d))
	require.NoError(t, w.Flush())

	assert.Equal(t, uint64(len(programLines)), d.Count())
	assert.Equal(t, len(programLines), strings.Count(buf.String(), "\n"))
}

func TestHub(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h := NewHub("gbcore")
	go h.Run(ctx)

	srv := httptest.NewServer(h)
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	defer conn.Close()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	// the greeting is only sent once the client is registered
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, "gbcore", string(msg))

	execute(t, h)
	for _, want := range programLines {
		_, msg, err := conn.ReadMessage()
		require.NoError(t, err)
		assert.Equal(t, want, string(msg))
	}
	assert.Equal(t, uint64(0), h.Dropped())

	// cancelling the hub disconnects its clients
	cancel()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

func TestHub_Dropped(t *testing.T) {
	// without Run nothing drains the queue
	h := NewHub("")
	e := cpu.Event{Descriptor: cpu.Lookup(0x00)}
	for i := 0; i < cap(h.broadcast)+10; i++ {
		h.Trace(e)
	}
	assert.Equal(t, uint64(10), h.Dropped())
}
