package leaderboard

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreMissingFile(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "nope.json"))

	entries, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFileStoreMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewFileStore(path).Load()
	assert.Error(t, err)

	// The leaderboard treats it as empty and recovers on the next save
	lb := New(NewFileStore(path))
	assert.Empty(t, lb.Load())
	_, err = lb.Save("fresh", 40)
	require.NoError(t, err)
	assert.Equal(t, []Entry{{Name: "fresh", Score: 40}}, lb.Load())
}

func TestFileStoreRoundTripFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "scores.json")
	store := NewFileStore(path)

	lb := New(store)
	_, err := lb.Save("bob", 70)
	require.NoError(t, err)
	_, err = lb.Save("amy", 90)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var raw []map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Len(t, raw, 2)
	assert.Equal(t, "amy", raw[0]["name"])
	assert.EqualValues(t, 90, raw[0]["score"])
	assert.Equal(t, "bob", raw[1]["name"])

	matches, err := filepath.Glob(filepath.Join(filepath.Dir(path), ".scores-*"))
	require.NoError(t, err)
	assert.Empty(t, matches, "temp files should be cleaned up")
}

func TestFileStoreEmptyWritesArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	require.NoError(t, NewFileStore(path).Store(nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(data))
}

func TestFileStoreUnwritable(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	// The parent "directory" is a regular file
	lb := New(NewFileStore(filepath.Join(blocker, "scores.json")))
	entries, err := lb.Save("x", 10)
	assert.Error(t, err)
	assert.Equal(t, []Entry{{Name: "x", Score: 10}}, entries)
}

func TestSQLiteStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.db")

	store, err := OpenSQLite(path)
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(path)
	require.NoError(t, err, "database file should exist")

	entries, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, entries)

	last, err := store.LastUpdated()
	require.NoError(t, err)
	assert.True(t, last.IsZero())

	lb := New(store, WithCapacity(3))
	for _, s := range []int{10, 40, 40, 20, 5} {
		_, err := lb.Save("p", s)
		require.NoError(t, err)
	}

	entries, err = store.Load()
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, []int{40, 40, 20}, []int{entries[0].Score, entries[1].Score, entries[2].Score})

	last, err = store.LastUpdated()
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), last, 24*time.Hour)
}

func TestSQLiteStoreTieOrder(t *testing.T) {
	store, err := OpenSQLite(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	defer store.Close()

	lb := New(store)
	_, err = lb.Save("first", 30)
	require.NoError(t, err)
	_, err = lb.Save("second", 30)
	require.NoError(t, err)

	assert.Equal(t, []Entry{{Name: "first", Score: 30}, {Name: "second", Score: 30}}, lb.TopScores(0))
}

func TestSQLiteStoreReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.db")

	store, err := OpenSQLite(path)
	require.NoError(t, err)
	_, err = New(store).Save("keep", 99)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	store, err = OpenSQLite(path)
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, []Entry{{Name: "keep", Score: 99}}, New(store).Load())
}

func TestWatcherSignalsOnSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")

	w, err := Watch(path, nil)
	require.NoError(t, err)
	defer w.Close()

	_, err = New(NewFileStore(path)).Save("watch", 10)
	require.NoError(t, err)

	select {
	case _, ok := <-w.Changes():
		assert.True(t, ok)
	case <-time.After(5 * time.Second):
		t.Fatal("no change signalled after save")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	w, err := Watch(filepath.Join(dir, "scores.json"), nil)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644))

	select {
	case <-w.Changes():
		t.Fatal("unrelated file should not signal")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcherCloseClosesChanges(t *testing.T) {
	w, err := Watch(filepath.Join(t.TempDir(), "scores.json"), nil)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	select {
	case _, ok := <-w.Changes():
		assert.False(t, ok)
	case <-time.After(5 * time.Second):
		t.Fatal("changes channel not closed")
	}
}
