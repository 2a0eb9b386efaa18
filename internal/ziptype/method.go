// Package ziptype defines shared types used across the zipstream package and
// its internal packages. This avoids circular imports between zipstream and
// internal/process.
package ziptype

// Method identifies the compression method applied to a member's data.
type Method uint8

const (
	Store Method = iota
	Deflate
)

// ID returns the ZIP compression method identifier written into headers.
func (m Method) ID() uint16 {
	if m == Deflate {
		return 8
	}
	return 0
}

func (m Method) String() string {
	switch m {
	case Store:
		return "store"
	case Deflate:
		return "deflate"
	default:
		return "unknown"
	}
}

// Zip64Mode selects how the archive decides to use ZIP64 structures.
type Zip64Mode uint8

const (
	// Zip64Auto upgrades to ZIP64 when a member or the running totals demand it.
	Zip64Auto Zip64Mode = iota

	// Zip64Always starts the archive in ZIP64 mode.
	Zip64Always

	// Zip64Never pins ZIP64 off; a build that would need it fails with
	// ErrZip64Required.
	Zip64Never
)

func (z Zip64Mode) String() string {
	switch z {
	case Zip64Auto:
		return "auto"
	case Zip64Always:
		return "always"
	case Zip64Never:
		return "never"
	default:
		return "unknown"
	}
}
