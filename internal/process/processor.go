// Package process implements the per-member transform feeding a ZIP stream:
// raw bytes in, output bytes (stored or deflated) out, with running CRC-32 and
// size counters. One Processor serves exactly one member and is discarded
// after its tail flush.
package process

import (
	"bytes"
	"fmt"
	"hash/crc32"

	"github.com/klauspost/compress/flate"

	"github.com/derhnyel/zipstream/internal/ziptype"
)

// DefaultDeflateLevel matches the compression level the reference encoder
// used for deflated members.
const DefaultDeflateLevel = 5

// Processor accumulates CRC-32 and byte counts for one member while applying
// its compression method. Not safe for concurrent use; callers serialize
// Process/Tail per member.
type Processor struct {
	crc      uint32
	size     uint64 // original bytes in
	compSize uint64 // transformed bytes out

	// deflate only; nil for stored members
	fw  *flate.Writer
	buf bytes.Buffer
}

// New returns a Processor for the given method. The level applies to deflate
// only; pass DefaultDeflateLevel unless the caller chose otherwise. Methods
// other than store and deflate fail with ErrUnsupportedCompression before any
// bytes are read.
func New(method ziptype.Method, level int) (*Processor, error) {
	p := &Processor{}
	switch method {
	case ziptype.Store:
	case ziptype.Deflate:
		fw, err := flate.NewWriter(&p.buf, level)
		if err != nil {
			return nil, fmt.Errorf("new deflate writer: %w", err)
		}
		p.fw = fw
	default:
		return nil, fmt.Errorf("%w: %q", ziptype.ErrUnsupportedCompression, method)
	}
	return p, nil
}

// Process feeds one chunk through the transform and returns whatever output
// bytes are ready, possibly none. The returned slice is only valid until the
// next Process or Tail call.
func (p *Processor) Process(chunk []byte) ([]byte, error) {
	p.crc = crc32.Update(p.crc, crc32.IEEETable, chunk)
	p.size += uint64(len(chunk))
	if p.fw == nil {
		p.compSize = p.size
		return chunk, nil
	}
	if _, err := p.fw.Write(chunk); err != nil {
		return nil, fmt.Errorf("deflate chunk: %w", err)
	}
	return p.take(), nil
}

// Tail finalizes the transform and returns any remaining output. Stored
// members produce nothing; deflated members emit the final block.
func (p *Processor) Tail() ([]byte, error) {
	if p.fw == nil {
		return nil, nil
	}
	if err := p.fw.Close(); err != nil {
		return nil, fmt.Errorf("close deflate writer: %w", err)
	}
	return p.take(), nil
}

// State returns the accumulated CRC-32, original size, and compressed size.
// For stored members the two sizes are always equal.
func (p *Processor) State() (crc uint32, size, compSize uint64) {
	return p.crc, p.size, p.compSize
}

// take drains the deflate output buffer, counting the drained bytes.
func (p *Processor) take() []byte {
	if p.buf.Len() == 0 {
		return nil
	}
	out := p.buf.Bytes()
	p.compSize += uint64(len(out))
	p.buf.Reset()
	return out
}
