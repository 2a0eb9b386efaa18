package zipfmt

import (
	"encoding/binary"

	"github.com/derhnyel/zipstream/internal/ziptype"
)

// writeBuf packs little-endian fields sequentially into a preallocated slice.
type writeBuf []byte

func (b *writeBuf) uint16(v uint16) {
	binary.LittleEndian.PutUint16(*b, v)
	*b = (*b)[2:]
}

func (b *writeBuf) uint32(v uint32) {
	binary.LittleEndian.PutUint32(*b, v)
	*b = (*b)[4:]
}

func (b *writeBuf) uint64(v uint64) {
	binary.LittleEndian.PutUint64(*b, v)
	*b = (*b)[8:]
}

// LocalFileHeader packs the local file header for rec, followed by the file
// name. Sizes and CRC are zeroed; the data descriptor carries the real values.
// In ZIP64 mode the size fields hold the 0xFFFFFFFF sentinel and a Zip64 extra
// field (with zeroed sizes, again deferred to the descriptor) is appended.
func LocalFileHeader(rec *ziptype.Record, version uint16, zip64 bool) []byte {
	extraLen := 0
	if zip64 {
		extraLen = 4 + 16 // extra header + two uint64 sizes
	}
	buf := make([]byte, fileHeaderLen+len(rec.Name)+extraLen)
	b := writeBuf(buf)
	b.uint32(fileHeaderSignature)
	b.uint16(version)
	b.uint16(rec.Flags)
	b.uint16(rec.Method.ID())
	b.uint16(rec.ModTime)
	b.uint16(rec.ModDate)
	b.uint32(0) // crc, in descriptor
	if zip64 {
		b.uint32(uint32Max) // compressed size
		b.uint32(uint32Max) // uncompressed size
	} else {
		b.uint32(0)
		b.uint32(0)
	}
	b.uint16(uint16(len(rec.Name)))
	b.uint16(uint16(extraLen))
	n := copy(b, rec.Name)
	b = b[n:]
	if zip64 {
		b.uint16(zip64ExtraID)
		b.uint16(16)
		b.uint64(0) // uncompressed size, in descriptor
		b.uint64(0) // compressed size, in descriptor
	}
	return buf
}

// DataDescriptor packs the descriptor trailing a member's data, prefixed with
// its signature. Field order per spec: crc, compressed size, uncompressed
// size, with 64-bit size widths in ZIP64 mode.
func DataDescriptor(crc uint32, size, compSize uint64, zip64 bool) []byte {
	n := dataDescriptorLen
	if zip64 {
		n = dataDescriptor64Len
	}
	buf := make([]byte, n)
	b := writeBuf(buf)
	b.uint32(dataDescriptorSignature)
	b.uint32(crc)
	if zip64 {
		b.uint64(compSize)
		b.uint64(size)
	} else {
		b.uint32(uint32(compSize))
		b.uint32(uint32(size))
	}
	return buf
}

// DirectoryHeader packs the central directory header for a completed record.
// "Version made by" is the advertised version in the low byte and the Unix
// host system in the high byte. In ZIP64 mode sizes and offset hold the
// 0xFFFFFFFF sentinel and the true values ride a Zip64 extra field.
func DirectoryHeader(rec *ziptype.Record, version uint16, zip64 bool) []byte {
	extraLen := 0
	if zip64 {
		extraLen = 4 + 24 // extra header + sizes + offset
	}
	buf := make([]byte, directoryHeaderLen+len(rec.Name)+extraLen)
	b := writeBuf(buf)
	b.uint32(directoryHeaderSignature)
	b.uint16(version | CreatorUnix<<8)
	b.uint16(version)
	b.uint16(rec.Flags)
	b.uint16(rec.Method.ID())
	b.uint16(rec.ModTime)
	b.uint16(rec.ModDate)
	b.uint32(rec.CRC32)
	if zip64 {
		b.uint32(uint32Max)
		b.uint32(uint32Max)
	} else {
		b.uint32(uint32(rec.CompSize))
		b.uint32(uint32(rec.Size))
	}
	b.uint16(uint16(len(rec.Name)))
	b.uint16(uint16(extraLen))
	b.uint16(0) // comment length
	b.uint16(0) // disk number start
	b.uint16(0) // internal attributes
	b.uint32(0) // external attributes
	if zip64 {
		b.uint32(uint32Max) // local header offset
	} else {
		b.uint32(uint32(rec.Offset))
	}
	n := copy(b, rec.Name)
	b = b[n:]
	if zip64 {
		b.uint16(zip64ExtraID)
		b.uint16(24)
		b.uint64(rec.Size)
		b.uint64(rec.CompSize)
		b.uint64(rec.Offset)
	}
	return buf
}

// DirectoryEnd packs the end of central directory record. In ZIP64 mode the
// counts, size, and offset are saturated to their sentinels; readers recover
// the true values from the ZIP64 record.
func DirectoryEnd(entries int, dirSize, dirOffset uint64, zip64 bool) []byte {
	buf := make([]byte, directoryEndLen)
	b := writeBuf(buf)
	b.uint32(directoryEndSignature)
	b.uint16(0) // disk number
	b.uint16(0) // disk with central directory start
	if zip64 {
		b.uint16(uint16Max)
		b.uint16(uint16Max)
		b.uint32(uint32Max)
		b.uint32(uint32Max)
	} else {
		b.uint16(uint16(entries))
		b.uint16(uint16(entries))
		b.uint32(uint32(dirSize))
		b.uint32(uint32(dirOffset))
	}
	b.uint16(0) // comment length
	return buf
}

// Directory64End packs the ZIP64 end of central directory record.
func Directory64End(entries int, dirSize, dirOffset uint64, version uint16) []byte {
	buf := make([]byte, directory64EndLen)
	b := writeBuf(buf)
	b.uint32(directory64EndSignature)
	b.uint64(directory64EndLen - 12) // size of record, excluding signature and this field
	b.uint16(version)
	b.uint16(version)
	b.uint32(0) // disk number
	b.uint32(0) // disk with central directory start
	b.uint64(uint64(entries))
	b.uint64(uint64(entries))
	b.uint64(dirSize)
	b.uint64(dirOffset)
	return buf
}

// Directory64Loc packs the ZIP64 end of central directory locator pointing at
// the ZIP64 record's absolute offset.
func Directory64Loc(dir64EndOffset uint64) []byte {
	buf := make([]byte, directory64LocLen)
	b := writeBuf(buf)
	b.uint32(directory64LocSignature)
	b.uint32(0) // disk with the ZIP64 end of central directory
	b.uint64(dir64EndOffset)
	b.uint32(1) // total disks
	return buf
}
