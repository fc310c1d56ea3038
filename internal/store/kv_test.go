package store

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openBackends(t *testing.T) map[string]KV {
	t.Helper()
	dir := t.TempDir()

	sqlite, err := OpenSQLite(filepath.Join(dir, "db", "vibe-os.db"))
	require.NoError(t, err)
	file, err := OpenFile(filepath.Join(dir, "files"))
	require.NoError(t, err)

	backends := map[string]KV{
		"sqlite": sqlite,
		"file":   file,
		"memory": NewMemory(),
	}
	t.Cleanup(func() {
		for _, kv := range backends {
			kv.Close()
		}
	})
	return backends
}

func TestBackendsRoundTrip(t *testing.T) {
	for name, kv := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			_, ok, err := kv.Get(KeyTasks)
			assert.NoError(t, err)
			assert.False(t, ok, "missing key should report not found")

			require.NoError(t, kv.Set(KeyTasks, `[{"id":1}]`))
			v, ok, err := kv.Get(KeyTasks)
			assert.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, `[{"id":1}]`, v)

			require.NoError(t, kv.Set(KeyTasks, `[]`))
			v, _, _ = kv.Get(KeyTasks)
			assert.Equal(t, `[]`, v, "set should overwrite")
		})
	}
}

func TestSQLitePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vibe-os.db")

	kv, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, kv.Set(KeyTheme, `"Ocean"`))
	require.NoError(t, kv.Close())

	kv, err = OpenSQLite(path)
	require.NoError(t, err)
	defer kv.Close()

	v, ok, err := kv.Get(KeyTheme)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `"Ocean"`, v)
}

func TestFileKVLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	kv, err := OpenFile(dir)
	require.NoError(t, err)

	require.NoError(t, kv.Set(KeyHabits, `[]`))
	require.NoError(t, kv.Set(KeyHabits, `[{"id":2}]`))

	matches, err := filepath.Glob(filepath.Join(dir, ".tmp-*"))
	require.NoError(t, err)
	assert.Empty(t, matches)
	assert.FileExists(t, filepath.Join(dir, KeyHabits+".json"))
}

func TestMemoryClosed(t *testing.T) {
	kv := NewMemory()
	require.NoError(t, kv.Close())

	err := kv.Set("k", "v")
	assert.True(t, errors.Is(err, ErrClosed))

	se, ok := IsStoreError(err)
	require.True(t, ok)
	assert.Equal(t, "set", se.Op)
	assert.Equal(t, "k", se.Key)
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	for _, kind := range []string{"", BackendSQLite, BackendFile, BackendMemory} {
		kv, err := Open(kind, dir)
		require.NoError(t, err, "backend %q", kind)
		assert.NoError(t, kv.Close())
	}

	_, err := Open("redis", dir)
	assert.Error(t, err)
}
