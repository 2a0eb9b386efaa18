// Package zipstream builds ZIP and ZIP64 archives incrementally, emitting the
// archive as an ordered sequence of byte chunks without buffering the whole
// archive or any whole member in memory. It suits on-the-fly downloads and
// pipe-fed backups where the total size is unknown in advance.
//
// An [Archive] is a list of member descriptions ([Entry]) plus options. The
// produced byte sequence is append-only and forward-only; concatenating every
// chunk yields an archive readable by standard ZIP readers. Sizes and CRCs are
// carried in data descriptors, so no seeking is ever required.
//
// # Quick Start
//
// Stream two files to an HTTP response:
//
//	a := zipstream.New([]zipstream.Entry{
//	    {Path: "/var/backups/db.sql", Method: zipstream.Deflate},
//	    {Path: "/var/backups/media.tar"},
//	})
//	if _, err := a.WriteTo(w); err != nil {
//	    return err
//	}
//
// Or consume chunk by chunk:
//
//	for chunk, err := range a.Stream() {
//	    if err != nil {
//	        return err
//	    }
//	    send(chunk)
//	}
//
// # Asynchronous streaming
//
// [Archive.StreamAsync] produces the identical bytes over a bounded channel,
// with source reads and compression offloaded to a worker so the calling
// goroutine is never blocked on CPU-bound work:
//
//	s := a.StreamAsync(ctx)
//	for chunk := range s.Chunks() {
//	    send(chunk)
//	}
//	if err := s.Wait(); err != nil {
//	    return err
//	}
//
// # ZIP64
//
// By default ([Zip64Auto]) the archive upgrades itself to ZIP64 when a member
// is already known to exceed the 32-bit size limit. The upgrade is monotonic
// and not retroactive: members emitted before the upgrade keep their 32-bit
// headers while later members and the trailer use ZIP64 widths. [Zip64Always]
// starts in ZIP64 mode; [Zip64Never] pins it off and a build that would need
// it fails with [ErrZip64Required].
package zipstream
