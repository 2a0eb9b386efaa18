package zipstream

import (
	"github.com/derhnyel/zipstream/internal/zipfmt"
	"github.com/derhnyel/zipstream/internal/ziptype"
)

// archiveState tracks one build: the running write offset, completed member
// records awaiting the central directory, and the archive-wide ZIP64 state.
// It is owned by the goroutine driving the build and never shared across
// builds.
type archiveState struct {
	mode    ziptype.Zip64Mode
	zip64   bool   // ZIP64 structures active
	version uint16 // advertised in all subsequently written headers

	offset  uint64 // bytes emitted so far; advanced by every forwarded chunk
	records []*ziptype.Record
	dirSize uint64
}

func newArchiveState(mode ziptype.Zip64Mode) (*archiveState, error) {
	st := &archiveState{mode: mode, version: zipfmt.VersionZip32}
	if mode == ziptype.Zip64Always {
		if err := st.requireZip64(); err != nil {
			return nil, err
		}
	}
	return st, nil
}

// requireZip64 flips the archive into ZIP64 mode. Idempotent once enabled;
// fails with ErrZip64Required when the mode was pinned to Zip64Never. The
// upgrade is monotonic and not retroactive: headers already emitted keep
// their 32-bit shape, only later members and the trailer use ZIP64 widths.
func (st *archiveState) requireZip64() error {
	if st.zip64 {
		return nil
	}
	if st.mode == ziptype.Zip64Never {
		return ziptype.ErrZip64Required
	}
	st.zip64 = true
	st.version = zipfmt.VersionZip64
	return nil
}

// advance moves the running offset past n emitted bytes. Every forwarded
// chunk passes through here; offsets are never inferred from member sizes.
func (st *archiveState) advance(n int) {
	st.offset += uint64(n)
}

// commit appends a completed record for the central directory.
func (st *archiveState) commit(rec *ziptype.Record) {
	st.records = append(st.records, rec)
}

// trailer emits the archive's end structures: one central directory header
// per completed member in insertion order, then in ZIP64 mode the ZIP64 end
// record and its locator, and finally the end of central directory record.
// Emission goes through emit so the running offset stays exact.
func (st *archiveState) trailer(emit func([]byte) error) error {
	dirOffset := st.offset
	for _, rec := range st.records {
		hdr := zipfmt.DirectoryHeader(rec, st.version, st.zip64)
		st.dirSize += uint64(len(hdr))
		if err := emit(hdr); err != nil {
			return err
		}
	}
	if st.zip64 {
		end64Offset := dirOffset + st.dirSize
		if err := emit(zipfmt.Directory64End(len(st.records), st.dirSize, dirOffset, st.version)); err != nil {
			return err
		}
		if err := emit(zipfmt.Directory64Loc(end64Offset)); err != nil {
			return err
		}
	}
	return emit(zipfmt.DirectoryEnd(len(st.records), st.dirSize, dirOffset, st.zip64))
}
