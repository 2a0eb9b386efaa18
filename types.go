package zipstream

import "github.com/derhnyel/zipstream/internal/ziptype"

// --- Re-exports from internal/ziptype ---

// Method identifies the compression method applied to a member's data.
type Method = ziptype.Method

// Compression method constants.
const (
	// Store writes member bytes unchanged.
	Store = ziptype.Store

	// Deflate compresses member bytes with raw deflate (no zlib wrapper).
	Deflate = ziptype.Deflate
)

// Zip64Mode selects how the archive decides to use ZIP64 structures.
type Zip64Mode = ziptype.Zip64Mode

// ZIP64 mode constants.
const (
	// Zip64Auto upgrades to ZIP64 when a member or the running totals demand it.
	Zip64Auto = ziptype.Zip64Auto

	// Zip64Always starts the archive in ZIP64 mode.
	Zip64Always = ziptype.Zip64Always

	// Zip64Never pins ZIP64 off; a build that would need it fails with
	// ErrZip64Required.
	Zip64Never = ziptype.Zip64Never
)
