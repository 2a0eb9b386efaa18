package zipstream

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/derhnyel/zipstream/internal/zipfmt"
	"github.com/derhnyel/zipstream/internal/ziptype"
)

// normalize maps a member description to its internal record: source tag,
// encoded name, DOS timestamps, and flag bits. A file source whose size is
// already known to exceed the 32-bit limit upgrades the archive to ZIP64
// before the record is returned.
func normalize(e Entry, st *archiveState) (*ziptype.Record, error) {
	rec := &ziptype.Record{Flags: ziptype.FlagDataDescriptor}

	switch {
	case e.Path != "":
		info, err := os.Stat(e.Path)
		if err != nil {
			return nil, fmt.Errorf("stat member source: %w", err)
		}
		if info.Size() > zipfmt.Zip32SizeLimit {
			if err := st.requireZip64(); err != nil {
				return nil, err
			}
		}
		rec.Source = ziptype.SourceFile
		rec.Path = e.Path
	case e.Chunks != nil:
		rec.Source = ziptype.SourceChunks
		rec.Chunks = e.Chunks
	default:
		return nil, ErrMissingSource
	}

	switch e.Method {
	case Store, Deflate:
		rec.Method = e.Method
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedCompression, e.Method)
	}

	name := e.Name
	if name == "" {
		if e.Path == "" {
			return nil, fmt.Errorf("%w: chunk source requires a name", ErrMissingSource)
		}
		name = filepath.Base(e.Path)
	}
	rec.Name = []byte(name)
	if !isASCII(name) {
		rec.Flags |= ziptype.FlagUTF8
	}

	mt := e.ModTime
	if mt.IsZero() {
		mt = time.Now()
	}
	rec.ModDate, rec.ModTime = zipfmt.DosDateTime(mt)

	return rec, nil
}

// isASCII reports whether s needs no UTF-8 flagging in headers.
func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
