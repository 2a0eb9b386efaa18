package zipfmt

import (
	"encoding/binary"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/derhnyel/zipstream/internal/ziptype"
)

func testRecord() *ziptype.Record {
	return &ziptype.Record{
		Name:     []byte("dir/file.txt"),
		Flags:    ziptype.FlagDataDescriptor,
		Method:   ziptype.Deflate,
		ModTime:  0x6b3a,
		ModDate:  0x5b3c,
		Offset:   1234,
		CRC32:    0xdeadbeef,
		Size:     9000,
		CompSize: 4500,
	}
}

func TestLocalFileHeader(t *testing.T) {
	t.Parallel()

	rec := testRecord()
	hdr := LocalFileHeader(rec, VersionZip32, false)
	require.Len(t, hdr, fileHeaderLen+len(rec.Name))

	assert.Equal(t, []byte{0x50, 0x4b, 0x03, 0x04}, hdr[:4])
	assert.Equal(t, uint16(20), binary.LittleEndian.Uint16(hdr[4:]))
	assert.Equal(t, uint16(0x0008), binary.LittleEndian.Uint16(hdr[6:]))
	assert.Equal(t, uint16(8), binary.LittleEndian.Uint16(hdr[8:]))
	assert.Equal(t, uint16(0x6b3a), binary.LittleEndian.Uint16(hdr[10:]))
	assert.Equal(t, uint16(0x5b3c), binary.LittleEndian.Uint16(hdr[12:]))

	// crc and sizes stay zero; the data descriptor carries the real values
	assert.Equal(t, uint32(0), binary.LittleEndian.Uint32(hdr[14:]))
	assert.Equal(t, uint32(0), binary.LittleEndian.Uint32(hdr[18:]))
	assert.Equal(t, uint32(0), binary.LittleEndian.Uint32(hdr[22:]))

	assert.Equal(t, uint16(len(rec.Name)), binary.LittleEndian.Uint16(hdr[26:]))
	assert.Equal(t, uint16(0), binary.LittleEndian.Uint16(hdr[28:]))
	assert.Equal(t, rec.Name, hdr[fileHeaderLen:])
}

func TestLocalFileHeaderZip64(t *testing.T) {
	t.Parallel()

	rec := testRecord()
	hdr := LocalFileHeader(rec, VersionZip64, true)
	require.Len(t, hdr, fileHeaderLen+len(rec.Name)+20)

	assert.Equal(t, uint16(45), binary.LittleEndian.Uint16(hdr[4:]))
	assert.Equal(t, uint32(uint32Max), binary.LittleEndian.Uint32(hdr[18:]))
	assert.Equal(t, uint32(uint32Max), binary.LittleEndian.Uint32(hdr[22:]))
	assert.Equal(t, uint16(20), binary.LittleEndian.Uint16(hdr[28:]))

	extra := hdr[fileHeaderLen+len(rec.Name):]
	assert.Equal(t, uint16(zip64ExtraID), binary.LittleEndian.Uint16(extra))
	assert.Equal(t, uint16(16), binary.LittleEndian.Uint16(extra[2:]))
	assert.Equal(t, uint64(0), binary.LittleEndian.Uint64(extra[4:]))
	assert.Equal(t, uint64(0), binary.LittleEndian.Uint64(extra[12:]))
}

func TestDataDescriptor(t *testing.T) {
	t.Parallel()

	d := DataDescriptor(0xdeadbeef, 9000, 4500, false)
	require.Len(t, d, dataDescriptorLen)
	assert.Equal(t, []byte{0x50, 0x4b, 0x07, 0x08}, d[:4])
	assert.Equal(t, uint32(0xdeadbeef), binary.LittleEndian.Uint32(d[4:]))
	assert.Equal(t, uint32(4500), binary.LittleEndian.Uint32(d[8:]))
	assert.Equal(t, uint32(9000), binary.LittleEndian.Uint32(d[12:]))
}

func TestDataDescriptorZip64(t *testing.T) {
	t.Parallel()

	d := DataDescriptor(0xdeadbeef, 9000, 4500, true)
	require.Len(t, d, dataDescriptor64Len)
	assert.Equal(t, uint32(0xdeadbeef), binary.LittleEndian.Uint32(d[4:]))
	assert.Equal(t, uint64(4500), binary.LittleEndian.Uint64(d[8:]))
	assert.Equal(t, uint64(9000), binary.LittleEndian.Uint64(d[16:]))
}

func TestDirectoryHeader(t *testing.T) {
	t.Parallel()

	rec := testRecord()
	hdr := DirectoryHeader(rec, VersionZip32, false)
	require.Len(t, hdr, directoryHeaderLen+len(rec.Name))

	assert.Equal(t, []byte{0x50, 0x4b, 0x01, 0x02}, hdr[:4])
	// version made by: version in the low byte, Unix host in the high byte
	assert.Equal(t, uint16(20|CreatorUnix<<8), binary.LittleEndian.Uint16(hdr[4:]))
	assert.Equal(t, uint16(20), binary.LittleEndian.Uint16(hdr[6:]))
	assert.Equal(t, uint32(0xdeadbeef), binary.LittleEndian.Uint32(hdr[16:]))
	assert.Equal(t, uint32(4500), binary.LittleEndian.Uint32(hdr[20:]))
	assert.Equal(t, uint32(9000), binary.LittleEndian.Uint32(hdr[24:]))
	assert.Equal(t, uint32(1234), binary.LittleEndian.Uint32(hdr[42:]))
	assert.Equal(t, rec.Name, hdr[directoryHeaderLen:])
}

func TestDirectoryHeaderZip64(t *testing.T) {
	t.Parallel()

	rec := testRecord()
	hdr := DirectoryHeader(rec, VersionZip64, true)
	require.Len(t, hdr, directoryHeaderLen+len(rec.Name)+28)

	assert.Equal(t, uint32(uint32Max), binary.LittleEndian.Uint32(hdr[20:]))
	assert.Equal(t, uint32(uint32Max), binary.LittleEndian.Uint32(hdr[24:]))
	assert.Equal(t, uint32(uint32Max), binary.LittleEndian.Uint32(hdr[42:]))

	extra := hdr[directoryHeaderLen+len(rec.Name):]
	assert.Equal(t, uint16(zip64ExtraID), binary.LittleEndian.Uint16(extra))
	assert.Equal(t, uint16(24), binary.LittleEndian.Uint16(extra[2:]))
	assert.Equal(t, uint64(9000), binary.LittleEndian.Uint64(extra[4:]))
	assert.Equal(t, uint64(4500), binary.LittleEndian.Uint64(extra[12:]))
	assert.Equal(t, uint64(1234), binary.LittleEndian.Uint64(extra[20:]))
}

func TestDirectoryEnd(t *testing.T) {
	t.Parallel()

	end := DirectoryEnd(3, 200, 5000, false)
	require.Len(t, end, directoryEndLen)
	assert.Equal(t, []byte{0x50, 0x4b, 0x05, 0x06}, end[:4])
	assert.Equal(t, uint16(3), binary.LittleEndian.Uint16(end[8:]))
	assert.Equal(t, uint16(3), binary.LittleEndian.Uint16(end[10:]))
	assert.Equal(t, uint32(200), binary.LittleEndian.Uint32(end[12:]))
	assert.Equal(t, uint32(5000), binary.LittleEndian.Uint32(end[16:]))
	assert.Equal(t, uint16(0), binary.LittleEndian.Uint16(end[20:]))
}

func TestDirectoryEndSaturated(t *testing.T) {
	t.Parallel()

	end := DirectoryEnd(3, 200, 5000, true)
	require.Len(t, end, directoryEndLen)
	assert.Equal(t, uint16(uint16Max), binary.LittleEndian.Uint16(end[8:]))
	assert.Equal(t, uint16(uint16Max), binary.LittleEndian.Uint16(end[10:]))
	assert.Equal(t, uint32(uint32Max), binary.LittleEndian.Uint32(end[12:]))
	assert.Equal(t, uint32(uint32Max), binary.LittleEndian.Uint32(end[16:]))
}

func TestDirectory64End(t *testing.T) {
	t.Parallel()

	end := Directory64End(3, 200, 5000, VersionZip64)
	require.Len(t, end, directory64EndLen)
	assert.Equal(t, []byte{0x50, 0x4b, 0x06, 0x06}, end[:4])
	// record size excludes the signature and the size field itself
	assert.Equal(t, uint64(44), binary.LittleEndian.Uint64(end[4:]))
	assert.Equal(t, uint16(45), binary.LittleEndian.Uint16(end[12:]))
	assert.Equal(t, uint16(45), binary.LittleEndian.Uint16(end[14:]))
	assert.Equal(t, uint64(3), binary.LittleEndian.Uint64(end[24:]))
	assert.Equal(t, uint64(3), binary.LittleEndian.Uint64(end[32:]))
	assert.Equal(t, uint64(200), binary.LittleEndian.Uint64(end[40:]))
	assert.Equal(t, uint64(5000), binary.LittleEndian.Uint64(end[48:]))
}

func TestDirectory64Loc(t *testing.T) {
	t.Parallel()

	loc := Directory64Loc(987654321)
	require.Len(t, loc, directory64LocLen)
	assert.Equal(t, []byte{0x50, 0x4b, 0x06, 0x07}, loc[:4])
	assert.Equal(t, uint32(0), binary.LittleEndian.Uint32(loc[4:]))
	assert.Equal(t, uint64(987654321), binary.LittleEndian.Uint64(loc[8:]))
	assert.Equal(t, uint32(1), binary.LittleEndian.Uint32(loc[16:]))
}

func TestDosDateTime(t *testing.T) {
	t.Parallel()

	d, tm := DosDateTime(time.Date(2024, time.July, 15, 13, 45, 58, 0, time.UTC))
	assert.Equal(t, uint16((2024-1980)<<9|7<<5|15), d)
	assert.Equal(t, uint16(13<<11|45<<5|58/2), tm)
}

func TestDosDateTimeClampsPre1980(t *testing.T) {
	t.Parallel()

	d, _ := DosDateTime(time.Date(1975, time.January, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, uint16(0), d>>9)
}
