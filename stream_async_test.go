package zipstream

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/derhnyel/zipstream/internal/testutil"
)

// collectAsync drains an asynchronous build to completion.
func collectAsync(t *testing.T, a *Archive, opts ...AsyncOption) []byte {
	t.Helper()
	s := a.StreamAsync(t.Context(), opts...)
	var buf bytes.Buffer
	for chunk := range s.Chunks() {
		buf.Write(chunk)
	}
	require.NoError(t, s.Wait())
	return buf.Bytes()
}

func TestAsyncMatchesSync(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	stored := filepath.Join(dir, "stored.bin")
	deflated := filepath.Join(dir, "deflated.txt")
	require.NoError(t, os.WriteFile(stored, bytes.Repeat([]byte("raw"), 5000), 0o644))
	require.NoError(t, os.WriteFile(deflated, bytes.Repeat([]byte("squeeze "), 5000), 0o644))

	a := New([]Entry{
		{Path: stored, ModTime: fixedModTime},
		{Path: deflated, Method: Deflate, ModTime: fixedModTime},
		{
			Chunks:  testutil.ChunkSeq([]byte("pushed "), []byte("bytes")),
			Name:    "pushed.txt",
			Method:  Deflate,
			ModTime: fixedModTime,
		},
	})

	sync := collect(t, a)
	async := collectAsync(t, a)
	assert.Equal(t, sync, async, "both execution modes must produce identical bytes")
}

func TestAsyncEmptyArchive(t *testing.T) {
	t.Parallel()

	out := collectAsync(t, New(nil))
	assert.Equal(t, collect(t, New(nil)), out)
}

func TestAsyncChunkBuffer(t *testing.T) {
	t.Parallel()

	path := writeTempFile(t, "buffered.bin", bytes.Repeat([]byte("b"), 1<<18))
	a := New([]Entry{{Path: path, ModTime: fixedModTime}}, WithChunkSize(4096))

	out := collectAsync(t, a, WithChunkBuffer(8))
	assert.Equal(t, collect(t, a), out)
}

func TestAsyncPropagatesErrors(t *testing.T) {
	t.Parallel()

	a := New([]Entry{{Name: "nothing.txt"}})
	s := a.StreamAsync(t.Context())
	for range s.Chunks() {
	}
	require.ErrorIs(t, s.Wait(), ErrMissingSource)
}

func TestAsyncCancellation(t *testing.T) {
	t.Parallel()

	// Endless enough that the build cannot finish on its own with a
	// single-chunk buffer.
	many := make([][]byte, 10000)
	for i := range many {
		many[i] = bytes.Repeat([]byte("a"), 512)
	}
	a := New([]Entry{{
		Chunks:  testutil.ChunkSeq(many...),
		Name:    "endless.bin",
		ModTime: fixedModTime,
	}})

	ctx, cancel := context.WithCancel(t.Context())
	s := a.StreamAsync(ctx)

	var got bytes.Buffer
	got.Write(<-s.Chunks())
	cancel()
	for chunk := range s.Chunks() {
		got.Write(chunk)
	}

	require.ErrorIs(t, s.Wait(), context.Canceled)
	assert.Equal(t, -1, testutil.EOCDOffset(got.Bytes()),
		"a canceled build must not emit a trailer")
}
