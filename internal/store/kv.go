// Package store persists Vibe OS state as JSON documents under fixed keys in
// a key-value backend.
package store

import (
	"fmt"
	"path/filepath"
)

// Keys under which the lists are mirrored.
const (
	KeyTasks    = "vibe-os-todos"
	KeyHabits   = "vibe-os-habits"
	KeyTheme    = "vibe-os-theme"
	KeySessions = "vibe-os-sessions"
)

// KV is a string key-value store.
type KV interface {
	// Get returns the value stored under key and whether it exists.
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Close() error
}

// Backend names accepted by Open.
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendMemory = "memory"
)

// Open creates the backend named by kind rooted at dir.
func Open(kind, dir string) (KV, error) {
	switch kind {
	case "", BackendSQLite:
		return OpenSQLite(filepath.Join(dir, "vibe-os.db"))
	case BackendFile:
		return OpenFile(filepath.Join(dir, "store"))
	case BackendMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", kind)
	}
}
