package zipstream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"

	"github.com/derhnyel/zipstream/internal/process"
	"github.com/derhnyel/zipstream/internal/zipfmt"
	"github.com/derhnyel/zipstream/internal/ziptype"
)

// Interface compliance.
var _ io.WriterTo = (*Archive)(nil)

// errStopStream aborts a build when the consumer stops pulling chunks.
var errStopStream = errors.New("zipstream: consumer stopped")

// runFunc executes one read-or-compress step. The synchronous mode runs steps
// inline; the asynchronous mode hands them to a worker. Steps for a single
// member are always serialized.
type runFunc func(func() error) error

func runInline(fn func() error) error { return fn() }

// Stream returns the archive as a lazy pull sequence of byte chunks. The
// sequence is finite and non-restartable mid-flight, but Stream may be called
// again for a fresh build. On error the last pair carries a nil chunk and the
// error; bytes already yielded must be discarded, as no trailer was written.
func (a *Archive) Stream() iter.Seq2[[]byte, error] {
	return func(yield func([]byte, error) bool) {
		err := a.build(context.Background(), runInline, func(chunk []byte) error {
			if !yield(chunk, nil) {
				return errStopStream
			}
			return nil
		})
		if err != nil && !errors.Is(err, errStopStream) {
			yield(nil, err)
		}
	}
}

// WriteTo streams the whole archive into w and returns the number of bytes
// written. It implements io.WriterTo.
func (a *Archive) WriteTo(w io.Writer) (int64, error) {
	var n int64
	err := a.build(context.Background(), runInline, func(chunk []byte) error {
		m, err := w.Write(chunk)
		n += int64(m)
		return err
	})
	return n, err
}

// build drives one archive build: for each member a local file header, the
// processed data chunks, the processor's tail flush, and a data descriptor;
// then the trailer. Both execution modes share this walk, so their output is
// byte-identical. All per-build state lives in a fresh archiveState, released
// when build returns.
func (a *Archive) build(ctx context.Context, run runFunc, emit func([]byte) error) error {
	st, err := newArchiveState(a.cfg.zip64)
	if err != nil {
		return err
	}
	a.log().Info("streaming archive", "members", len(a.entries), "zip64", a.cfg.zip64.String())

	// forward advances the running offset by every emitted byte; offsets are
	// never inferred from member sizes.
	forward := func(chunk []byte) error {
		if len(chunk) == 0 {
			return nil
		}
		if err := emit(chunk); err != nil {
			return err
		}
		st.advance(len(chunk))
		return nil
	}

	for i, e := range a.entries {
		if err := ctx.Err(); err != nil {
			return err
		}
		rec, err := normalize(e, st)
		if err != nil {
			return err
		}
		rec.Offset = st.offset
		if err := a.streamMember(ctx, st, rec, run, forward); err != nil {
			return err
		}
		st.commit(rec)
		a.log().Debug("member streamed", "name", string(rec.Name),
			"size", rec.Size, "compressed_size", rec.CompSize)
		a.reportProgress(StageStreaming, string(rec.Name), st.offset, i+1)
	}

	if err := st.trailer(forward); err != nil {
		return err
	}
	a.reportProgress(StageTrailer, "", st.offset, len(a.entries))
	return nil
}

// streamMember emits one member: header, processed data, tail, descriptor.
// The record's size and CRC fields are filled just before the descriptor.
func (a *Archive) streamMember(ctx context.Context, st *archiveState, rec *ziptype.Record, run runFunc, forward func([]byte) error) error {
	if err := forward(zipfmt.LocalFileHeader(rec, st.version, st.zip64)); err != nil {
		return err
	}

	proc, err := process.New(rec.Method, a.cfg.deflateLevel)
	if err != nil {
		return err
	}
	if err := a.streamData(ctx, rec, proc, run, forward); err != nil {
		return err
	}

	var tail []byte
	if err := run(func() (err error) {
		tail, err = proc.Tail()
		return err
	}); err != nil {
		return err
	}
	if err := forward(tail); err != nil {
		return err
	}

	rec.CRC32, rec.Size, rec.CompSize = proc.State()
	return forward(zipfmt.DataDescriptor(rec.CRC32, rec.Size, rec.CompSize, st.zip64))
}

// streamData pulls the member's bytes from its source, passes each block
// through the processor, and forwards any produced output immediately. No
// whole-file buffering happens at any point.
func (a *Archive) streamData(ctx context.Context, rec *ziptype.Record, proc *process.Processor, run runFunc, forward func([]byte) error) error {
	step := func(block []byte) error {
		var out []byte
		if err := run(func() (err error) {
			out, err = proc.Process(block)
			return err
		}); err != nil {
			return err
		}
		return forward(out)
	}

	switch rec.Source {
	case ziptype.SourceFile:
		f, err := os.Open(rec.Path)
		if err != nil {
			return fmt.Errorf("open member source: %w", err)
		}
		defer f.Close()

		size := a.cfg.chunkSize
		if size < 1 {
			size = DefaultChunkSize
		}
		buf := make([]byte, size)
		for {
			if err := ctx.Err(); err != nil {
				return err
			}
			n, err := f.Read(buf)
			if n > 0 {
				if err := step(buf[:n]); err != nil {
					return err
				}
			}
			if err == io.EOF {
				return nil
			}
			if err != nil {
				return fmt.Errorf("read member source: %w", err)
			}
		}
	case ziptype.SourceChunks:
		for chunk := range rec.Chunks {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := step(chunk); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("%w: tag %d", ziptype.ErrUnsupportedSourceType, rec.Source)
	}
}
