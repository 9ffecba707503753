package fsys

import (
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
)

const dirMode = 0775

// OS is a FileSystem backed by the local disk
type OS struct{}

// Local is the local disk FileSystem
var Local FileSystem = OS{}

// Exists reports whether anything is present at path
func (OS) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ModTime returns the modification time of the file at path, if it can be
// determined.
func (OS) ModTime(path string) (time.Time, bool) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

// Open opens the file at path for reading
func (OS) Open(path string) (Asset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open asset at %s", path)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, errors.Wrapf(err, "could not stat asset at %s", path)
	}

	if info.IsDir() {
		f.Close()
		return nil, errors.Errorf("%s is a directory", path)
	}

	return &file{File: f, size: info.Size()}, nil
}

// OpenForWrite opens the file at path for writing, creating any missing
// parent directories.
func (OS) OpenForWrite(path string, mode WriteMode) (WritableAsset, error) {
	if err := os.MkdirAll(filepath.Dir(path), dirMode); err != nil {
		return nil, errors.Wrapf(err, "could not create directory for %s", path)
	}

	switch mode {
	case Replace:
		return AtomicWrite(path)
	case Update:
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE, 0664)
		if err != nil {
			return nil, errors.Wrapf(err, "could not open %s for update", path)
		}
		return &ManagedWrite{WriteCloser: f}, nil
	default:
		return nil, errors.Errorf("unknown write mode %d", mode)
	}
}

type file struct {
	*os.File
	size int64
}

func (f *file) Size() int64 {
	return f.size
}
