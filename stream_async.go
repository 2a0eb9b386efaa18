package zipstream

import (
	"context"
	"slices"

	"golang.org/x/sync/errgroup"
)

// asyncConfig holds configuration for asynchronous streaming.
type asyncConfig struct {
	buffer int
}

// AsyncOption configures asynchronous streaming.
type AsyncOption func(*asyncConfig)

// WithChunkBuffer sets the capacity of the chunk channel. The default is one;
// larger values let the producer run ahead of a slow consumer by up to n
// chunks.
func WithChunkBuffer(n int) AsyncOption {
	return func(cfg *asyncConfig) {
		if n > 0 {
			cfg.buffer = n
		}
	}
}

// AsyncStream is an in-flight asynchronous archive build. Consume Chunks
// until closed, then call Wait for the build result.
type AsyncStream struct {
	chunks chan []byte
	g      *errgroup.Group
}

// Chunks returns the bounded channel carrying the archive bytes. It is closed
// when the build finishes or fails; concatenating all received chunks of a
// successful build yields the identical bytes the synchronous Stream
// produces.
func (s *AsyncStream) Chunks() <-chan []byte {
	return s.chunks
}

// Wait blocks until the build's goroutines finish and returns the first
// error, if any. A non-nil error means the received bytes are not a valid
// archive and must be discarded.
func (s *AsyncStream) Wait() error {
	return s.g.Wait()
}

// StreamAsync starts an asynchronous build. Source reads and compression run
// on a single worker goroutine, keeping the caller's goroutines free of
// CPU-bound work; steps stay strictly serialized per member, so the output is
// byte-identical to Stream.
//
// Canceling ctx stops the build at the next suspension point, closing any
// open source file and releasing the worker without emitting a partial
// trailer. Abandoning the stream without cancellation leaves the producer
// blocked; always cancel when not draining Chunks to completion.
func (a *Archive) StreamAsync(ctx context.Context, opts ...AsyncOption) *AsyncStream {
	cfg := asyncConfig{buffer: 1}
	for _, opt := range opts {
		opt(&cfg)
	}

	g, ctx := errgroup.WithContext(ctx)
	s := &AsyncStream{chunks: make(chan []byte, cfg.buffer), g: g}

	type task struct {
		fn   func() error
		done chan error
	}
	tasks := make(chan task)

	// Single-slot worker. Degree one matches the strict per-member ordering
	// the format demands; the done channel is buffered so an abandoned task
	// cannot wedge the worker.
	g.Go(func() error {
		for t := range tasks {
			t.done <- t.fn()
		}
		return nil
	})

	g.Go(func() error {
		defer close(s.chunks)
		defer close(tasks)

		run := func(fn func() error) error {
			done := make(chan error, 1)
			select {
			case tasks <- task{fn: fn, done: done}:
			case <-ctx.Done():
				return ctx.Err()
			}
			select {
			case err := <-done:
				return err
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		// Chunks are cloned before sending: processor output buffers are
		// reused across steps, but channel receivers keep chunks arbitrarily
		// long.
		emit := func(chunk []byte) error {
			c := slices.Clone(chunk)
			select {
			case s.chunks <- c:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		return a.build(ctx, run, emit)
	})

	return s
}
