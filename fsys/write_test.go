package fsys_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/birkland/assetpath/fsys"
	"github.com/pkg/errors"
)

func TestAtomicWriteCommit(t *testing.T) {
	runInTempDir(t, func(tempDir string) {
		fileName := filepath.Join(tempDir, "atomicCommit")

		content := "(╯°□°）╯︵ ┻━┻"
		writeFile(t, fileName, "previous content")

		writer, _ := fsys.AtomicWrite(fileName)
		defer func() {
			err := writer.Close()
			if err != nil {
				t.Errorf("deferred close failed! %s", err)
			}
		}()

		_, _ = io.WriteString(writer, content)

		readBytes, _ := os.ReadFile(fileName)
		if string(readBytes) != "previous content" {
			t.Errorf("original content should be untouched until close")
		}

		if err := writer.Close(); err != nil {
			t.Errorf("writer failed close! %s", err)
		}

		readBytes, _ = os.ReadFile(fileName)

		if string(readBytes) != content {
			t.Errorf("did not read the expected content from atomic write")
		}
	})
}

func TestAtomicWriteRollback(t *testing.T) {
	runInTempDir(t, func(tempDir string) {
		fileName := filepath.Join(tempDir, "rollback")
		writer, _ := fsys.AtomicWrite(fileName)
		defer func() {
			err := writer.Rollback()
			if err != nil {
				t.Errorf("deferred rollback failed! %s", err)
			}
		}()

		_, _ = io.WriteString(writer, "something")
		err := writer.Rollback()
		if err != nil {
			t.Errorf("error rolling back! %s", err)
		}

		files, err := os.ReadDir(tempDir)
		if err != nil || len(files) > 0 {
			t.Errorf("rollback did not clean up temp files!")
		}
	})
}

func TestAtomicConflict(t *testing.T) {
	runInTempDir(t, func(tempDir string) {
		fileName := filepath.Join(tempDir, "err")

		conflictingFileName := filepath.Join(tempDir, fsys.AtomicPrefix+"err")
		writeFile(t, conflictingFileName, "I'm in the way!")

		writer, err := fsys.AtomicWrite(fileName)
		if err == nil {
			writer.Close()
			t.Errorf("should have thrown an error")
		}
	})
}

func TestManagedWriteCloseError(t *testing.T) {
	badCloser := &fsys.ManagedWrite{WriteCloser: &errcloser{}}
	if badCloser.Close() == nil {
		t.Errorf("should have thrown an error")
	}
}

func TestManagedWriteAtUnsupported(t *testing.T) {
	w := &fsys.ManagedWrite{WriteCloser: &errcloser{}}
	if _, err := w.WriteAt([]byte("x"), 0); err == nil {
		t.Errorf("should have thrown an error")
	}
}

type errcloser struct{}

func (*errcloser) Close() error {
	return errors.New("an error")
}
func (*errcloser) Write([]byte) (int, error) {
	return 0, nil
}

func runInTempDir(t *testing.T, f func(string)) {
	tempDir, err := os.MkdirTemp("", "assetpath_test")
	if err != nil {
		t.Fatal("Could not create testing temp dir")
	}
	defer os.RemoveAll(tempDir)
	f(tempDir)
}
