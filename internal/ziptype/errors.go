package ziptype

import "errors"

// Sentinel errors for archive construction.
var (
	// ErrMissingSource is returned when a member carries neither a file path
	// nor a chunk source.
	ErrMissingSource = errors.New("zipstream: no file path or chunk source provided")

	// ErrUnsupportedCompression is returned for compression methods other
	// than store and deflate.
	ErrUnsupportedCompression = errors.New("zipstream: unsupported compression method")

	// ErrUnsupportedSourceType is returned when a record carries a source tag
	// the data-reading step does not recognize.
	ErrUnsupportedSourceType = errors.New("zipstream: unsupported source type")

	// ErrZip64Required is returned when a member or the archive totals need
	// ZIP64 structures but ZIP64 mode was pinned off.
	ErrZip64Required = errors.New("zipstream: ZIP64 mode is required for this archive")
)
