package resolv_test

import (
	"os"
	"strings"
	"time"

	"github.com/birkland/assetpath/fsys"
	"github.com/pkg/errors"
)

var epoch = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

// memFS is a read-only FileSystem over a fixed set of files, keyed by
// absolute path.
type memFS map[string]string

func (m memFS) Exists(path string) bool {
	if _, ok := m[path]; ok {
		return true
	}
	for p := range m {
		if strings.HasPrefix(p, path+"/") {
			return true
		}
	}
	return false
}

func (m memFS) Open(path string) (fsys.Asset, error) {
	content, ok := m[path]
	if !ok {
		return nil, errors.Wrapf(os.ErrNotExist, "open %s", path)
	}
	return &memAsset{strings.NewReader(content)}, nil
}

func (m memFS) OpenForWrite(path string, mode fsys.WriteMode) (fsys.WritableAsset, error) {
	return nil, errors.New("read only filesystem")
}

func (m memFS) ModTime(path string) (time.Time, bool) {
	if _, ok := m[path]; !ok {
		return time.Time{}, false
	}
	return epoch, true
}

type memAsset struct {
	*strings.Reader
}

func (*memAsset) Close() error {
	return nil
}
