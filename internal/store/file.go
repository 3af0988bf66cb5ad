package store

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// fileExt is appended to the collection name to form its file name.
const fileExt = ".json"

// fileBackend stores each collection as <dataDir>/<name>.json.
type fileBackend struct {
	dataDir string
}

func newFileBackend(dataDir string) (*fileBackend, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}
	return &fileBackend{dataDir: dataDir}, nil
}

func (f *fileBackend) path(name string) string {
	return filepath.Join(f.dataDir, name+fileExt)
}

func (f *fileBackend) get(name string) ([]byte, bool, error) {
	data, err := os.ReadFile(f.path(name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}

func (f *fileBackend) put(name string, data []byte) error {
	return writeAtomic(f.path(name), data)
}

func (f *fileBackend) close() error {
	return nil
}

// writeAtomic writes data to path using the temp-file, fsync, rename
// pattern, so a crash never leaves a half-written collection behind.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".collection-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	w := bufio.NewWriter(tmp)
	if _, err := w.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing document: %w", err)
	}
	if err := w.WriteByte('\n'); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing newline: %w", err)
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("flushing buffer: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// dataDirOrCWD returns dir, or "." when dir is empty.
func dataDirOrCWD(dir string) string {
	if dir == "" {
		return "."
	}
	return dir
}
