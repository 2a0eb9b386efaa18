// Package testutil provides helpers for decoding archives produced in tests.
package testutil

import (
	"bytes"
	"compress/flate"
	"encoding/binary"
	"io"
	"iter"
	"testing"
)

// ChunkSeq returns a push-style source over the given chunks.
func ChunkSeq(chunks ...[]byte) iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		for _, c := range chunks {
			if !yield(c) {
				return
			}
		}
	}
}

// EOCDOffset scans data from the end for the end of central directory
// signature and returns its offset, or -1 when absent.
func EOCDOffset(data []byte) int {
	sig := []byte{0x50, 0x4b, 0x05, 0x06}
	for i := len(data) - 4; i >= 0; i-- {
		if bytes.Equal(data[i:i+4], sig) {
			return i
		}
	}
	return -1
}

// EOCD holds the decoded fields of an end of central directory record.
type EOCD struct {
	Entries   uint16
	DirSize   uint32
	DirOffset uint32
}

// ParseEOCD decodes the end of central directory record at off.
func ParseEOCD(t *testing.T, data []byte, off int) EOCD {
	t.Helper()
	if off < 0 || off+22 > len(data) {
		t.Fatalf("no end of central directory record at offset %d", off)
	}
	return EOCD{
		Entries:   binary.LittleEndian.Uint16(data[off+10:]),
		DirSize:   binary.LittleEndian.Uint32(data[off+12:]),
		DirOffset: binary.LittleEndian.Uint32(data[off+16:]),
	}
}

// Inflate decodes raw deflate data.
func Inflate(t *testing.T, data []byte) []byte {
	t.Helper()
	r := flate.NewReader(bytes.NewReader(data))
	defer r.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("inflate: %v", err)
	}
	return out
}
