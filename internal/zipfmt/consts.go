// Package zipfmt packs the fixed-width binary records of the ZIP file format:
// local file headers, data descriptors, central directory headers, end of
// central directory records, and their ZIP64 variants. All records are
// little-endian per the PKWARE APPNOTE. The package holds no state.
package zipfmt

// Record signatures.
const (
	fileHeaderSignature      = 0x04034b50
	directoryHeaderSignature = 0x02014b50
	directoryEndSignature    = 0x06054b50
	directory64EndSignature  = 0x06064b50
	directory64LocSignature  = 0x07064b50
	dataDescriptorSignature  = 0x08074b50 // de-facto standard; required by OS X Finder
)

// Fixed record lengths, excluding variable name/extra/comment tails.
const (
	fileHeaderLen       = 30
	directoryHeaderLen  = 46
	directoryEndLen     = 22
	directory64EndLen   = 56
	directory64LocLen   = 20
	dataDescriptorLen   = 16 // signature, crc32, compressed size, size (uint32 each)
	dataDescriptor64Len = 24 // descriptor with 8 byte sizes
)

const (
	// Versions advertised in headers: 2.0 for plain archives, 4.5 once ZIP64
	// structures are in play.
	VersionZip32 uint16 = 20
	VersionZip64 uint16 = 45

	// CreatorUnix is the host-system high byte of "version made by".
	CreatorUnix = 3

	// zip64ExtraID tags the Zip64 extended information extra field.
	zip64ExtraID = 0x0001
)

// Saturation sentinels written into 32-bit records when the true values live
// in ZIP64 structures.
const (
	uint16Max = (1 << 16) - 1
	uint32Max = (1 << 32) - 1
)

// Zip32SizeLimit is the largest member size representable without a ZIP64
// upgrade. Sources already known to exceed it force the upgrade up front.
const Zip32SizeLimit = (1 << 31) - 1
