package zipstream

import (
	"fmt"
	"iter"
	"log/slog"
	"os"
	"time"
)

// Entry describes one archive member. Exactly one of Path or Chunks must be
// set.
type Entry struct {
	// Path names a file whose bytes are read sequentially in fixed-size
	// blocks.
	Path string

	// Chunks is a push-style byte source consumed to exhaustion. Chunk
	// boundaries are preserved through processing but carry no meaning in
	// the output.
	Chunks iter.Seq[[]byte]

	// Name is the display name stored in the archive. Defaults to the base
	// name of Path; required for chunk sources.
	Name string

	// Method selects the compression method. The zero value is Store.
	Method Method

	// ModTime is the member's modification time, encoded into the DOS
	// date/time header fields. The zero value means time.Now.
	ModTime time.Time
}

// Archive is a list of member descriptions plus build options. The zero value
// is not usable; construct with New. An Archive may be streamed repeatedly;
// each call to Stream, StreamAsync, or WriteTo performs an independent build.
type Archive struct {
	entries []Entry
	cfg     config
}

// New creates an Archive over the given members. Member descriptions are
// validated lazily, during streaming, in member order.
func New(entries []Entry, opts ...Option) *Archive {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Archive{entries: entries, cfg: cfg}
}

// Add appends members to the archive. It must not be called while a build is
// in flight.
func (a *Archive) Add(entries ...Entry) {
	a.entries = append(a.entries, entries...)
}

// TotalSize returns the summed byte size of all file-backed members. It fails
// for archives containing chunk sources, whose size cannot be known ahead of
// streaming. The result is the input size, not the size of the produced
// archive.
func (a *Archive) TotalSize() (int64, error) {
	var total int64
	for _, e := range a.entries {
		if e.Path == "" {
			return 0, fmt.Errorf("zipstream: cannot determine size of chunk source %q", e.Name)
		}
		info, err := os.Stat(e.Path)
		if err != nil {
			return 0, err
		}
		total += info.Size()
	}
	return total, nil
}

// log returns the logger, falling back to a discard logger if nil.
func (a *Archive) log() *slog.Logger {
	if a.cfg.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return a.cfg.logger
}

// reportProgress sends a progress event if a callback is configured.
func (a *Archive) reportProgress(stage ProgressStage, name string, bytesDone uint64, filesDone int) {
	if a.cfg.progress == nil {
		return
	}
	a.cfg.progress(ProgressEvent{
		Stage:      stage,
		Name:       name,
		BytesDone:  bytesDone,
		FilesDone:  filesDone,
		FilesTotal: len(a.entries),
	})
}
