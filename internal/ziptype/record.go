package ziptype

import "iter"

// ZIP general-purpose flag bits carried by every record.
const (
	// FlagDataDescriptor (bit 3) marks sizes and CRC as deferred to the data
	// descriptor following the member data.
	FlagDataDescriptor uint16 = 0x0008

	// FlagUTF8 (bit 11) marks the file name as UTF-8 encoded.
	FlagUTF8 uint16 = 0x0800
)

// SourceKind tags where a member's bytes come from.
type SourceKind uint8

const (
	SourceFile SourceKind = iota + 1
	SourceChunks
)

// Record is the internal per-member state threaded from normalization through
// header emission, data streaming, and the central directory.
//
// Name, flags, method, and times are fixed at normalization. Offset is
// assigned when the local header begins writing. CRC32, Size, and CompSize
// are filled after the member's tail flush, just before the data descriptor.
type Record struct {
	Source SourceKind
	Path   string           // set when Source == SourceFile
	Chunks iter.Seq[[]byte] // set when Source == SourceChunks

	Name    []byte // encoded file name, ASCII or UTF-8
	Flags   uint16 // FlagDataDescriptor, plus FlagUTF8 for non-ASCII names
	Method  Method
	ModTime uint16 // DOS time
	ModDate uint16 // DOS date

	Offset   uint64
	CRC32    uint32
	Size     uint64 // uncompressed
	CompSize uint64
}
