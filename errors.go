package zipstream

import "github.com/derhnyel/zipstream/internal/ziptype"

// Errors re-exported from internal/ziptype.
var (
	// ErrMissingSource is returned when a member carries neither a file path
	// nor a chunk source, or a chunk source carries no display name.
	ErrMissingSource = ziptype.ErrMissingSource

	// ErrUnsupportedCompression is returned for compression methods other
	// than Store and Deflate.
	ErrUnsupportedCompression = ziptype.ErrUnsupportedCompression

	// ErrUnsupportedSourceType is returned when a member record carries a
	// source tag the data-reading step does not recognize.
	ErrUnsupportedSourceType = ziptype.ErrUnsupportedSourceType

	// ErrZip64Required is returned when a member or the archive totals need
	// ZIP64 structures but ZIP64 mode was pinned to Zip64Never.
	ErrZip64Required = ziptype.ErrZip64Required
)
