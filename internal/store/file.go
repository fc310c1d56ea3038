package store

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sync"
)

// FileKV stores each key as <dir>/<key>.json. Writes go through a temp file
// and a rename so a crash never leaves a half-written document.
type FileKV struct {
	mu  sync.Mutex
	dir string
}

// OpenFile creates the directory if needed.
func OpenFile(dir string) (*FileKV, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, &Error{Op: "open", Err: fmt.Errorf("failed to create store directory: %w", err)}
	}
	return &FileKV{dir: dir}, nil
}

func (f *FileKV) path(key string) string {
	return filepath.Join(f.dir, url.PathEscape(key)+".json")
}

func (f *FileKV) Get(key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, &Error{Op: "get", Key: key, Err: err}
	}
	return string(data), true, nil
}

func (f *FileKV) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	tmp, err := os.CreateTemp(f.dir, ".tmp-*")
	if err != nil {
		return &Error{Op: "set", Key: key, Err: err}
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &Error{Op: "set", Key: key, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &Error{Op: "set", Key: key, Err: err}
	}
	if err := os.Rename(tmpName, f.path(key)); err != nil {
		os.Remove(tmpName)
		return &Error{Op: "set", Key: key, Err: err}
	}
	return nil
}

func (f *FileKV) Close() error { return nil }
