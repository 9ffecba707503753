package fsys

import (
	"io"
	"time"
)

// WriteMode selects how OpenForWrite treats existing content
type WriteMode int

// Write modes
const (
	// Update writes into the existing file, if any, keeping bytes that are
	// not overwritten.
	Update WriteMode = iota

	// Replace writes to a temporary file, which takes the place of the
	// existing file once closed.
	Replace
)

var writeModes = []string{"update", "replace"}

func (m WriteMode) String() string {
	if m < 0 || int(m) >= len(writeModes) {
		return "unknown"
	}
	return writeModes[m]
}

// Asset is readable asset content
type Asset interface {
	io.ReadSeeker
	io.ReaderAt
	io.Closer

	// Size is the size of the asset in bytes, at the time it was opened.
	Size() int64
}

// WritableAsset is asset content open for writing.  Close commits the write,
// Rollback abandons it where the write mode allows.
type WritableAsset interface {
	io.WriteCloser
	io.WriterAt
	Rollback() error
}

// FileSystem is the set of filesystem operations the resolver delegates to.
// Implementations must be safe for concurrent use if the resolver is to be.
type FileSystem interface {
	Exists(path string) bool
	Open(path string) (Asset, error)
	OpenForWrite(path string, mode WriteMode) (WritableAsset, error)
	ModTime(path string) (time.Time, bool)
}
