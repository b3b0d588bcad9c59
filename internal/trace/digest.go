package trace

import (
	"hash"
	"io"

	"github.com/cespare/xxhash"

	"github.com/thelolagemann/gbcore/internal/cpu"
)

// Digest keeps a running xxhash of the trace lines of an execution,
// so that two executions can be compared by a single number.
type Digest struct {
	h     hash.Hash64
	count uint64
}

func NewDigest() *Digest {
	return &Digest{h: xxhash.New()}
}

func (d *Digest) Trace(e cpu.Event) {
	io.WriteString(d.h, e.Line()+"\n")
	d.count++
}

// Sum64 returns the hash of every line traced so far.
func (d *Digest) Sum64() uint64 {
	return d.h.Sum64()
}

// Count returns the number of lines traced so far.
func (d *Digest) Count() uint64 {
	return d.count
}

func (d *Digest) Reset() {
	d.h.Reset()
	d.count = 0
}
