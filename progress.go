package zipstream

// ProgressStage identifies the current phase of an archive build.
type ProgressStage uint8

const (
	// StageStreaming indicates member data is being written.
	StageStreaming ProgressStage = iota

	// StageTrailer indicates the central directory and end records are being
	// written.
	StageTrailer
)

// ProgressEvent represents a progress update during an archive build.
type ProgressEvent struct {
	Stage ProgressStage

	// Name is the display name of the member just completed; empty during
	// StageTrailer.
	Name string

	// BytesDone is the total number of archive bytes emitted so far.
	BytesDone uint64

	// FilesDone and FilesTotal count completed members against the archive's
	// member list.
	FilesDone  int
	FilesTotal int
}

// ProgressFunc receives progress updates during an archive build. It is
// called from the goroutine driving the build; implementations should return
// quickly.
type ProgressFunc func(ProgressEvent)
