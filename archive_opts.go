package zipstream

import (
	"log/slog"

	"github.com/derhnyel/zipstream/internal/process"
)

// DefaultChunkSize is the block size used when reading file sources.
const DefaultChunkSize = 64 << 10 // 64KB

// config holds configuration for an archive build.
type config struct {
	chunkSize    int
	zip64        Zip64Mode
	deflateLevel int
	logger       *slog.Logger
	progress     ProgressFunc
}

// Option configures an Archive.
type Option func(*config)

// WithChunkSize sets the block size used when reading file sources. Values
// below one use DefaultChunkSize. Output chunk boundaries carry no semantic
// meaning, so this is purely a throughput/memory knob.
func WithChunkSize(n int) Option {
	return func(cfg *config) {
		cfg.chunkSize = n
	}
}

// WithZip64 sets the ZIP64 mode. The default is Zip64Auto.
func WithZip64(mode Zip64Mode) Option {
	return func(cfg *config) {
		cfg.zip64 = mode
	}
}

// WithDeflateLevel sets the deflate compression level for Deflate members.
// The default matches the reference encoder's level 5.
func WithDeflateLevel(level int) Option {
	return func(cfg *config) {
		cfg.deflateLevel = level
	}
}

// WithLogger sets a structured logger for build diagnostics. Logging is
// disabled when unset.
func WithLogger(l *slog.Logger) Option {
	return func(cfg *config) {
		cfg.logger = l
	}
}

// WithProgress registers a callback invoked after each completed member and
// once the trailer is written.
func WithProgress(fn ProgressFunc) Option {
	return func(cfg *config) {
		cfg.progress = fn
	}
}

func defaultConfig() config {
	return config{
		chunkSize:    DefaultChunkSize,
		deflateLevel: process.DefaultDeflateLevel,
	}
}
