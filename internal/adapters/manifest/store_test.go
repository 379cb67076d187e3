package manifest_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/snap/internal/adapters/manifest"
	"go.trai.ch/snap/internal/core/domain"
)

var fixedTime = time.Date(2026, 5, 6, 7, 8, 9, 0, time.UTC)

func sampleIndex(t *testing.T, entries ...domain.FileEntry) *domain.WorkspaceIndex {
	t.Helper()
	idx, err := domain.NewWorkspaceIndex("demo", "data", "0123abcd", fixedTime, entries, true)
	require.NoError(t, err)
	return idx
}

func TestStore_Write_Golden(t *testing.T) {
	path := filepath.Join(t.TempDir(), domain.IndexFileName)
	idx := sampleIndex(t,
		domain.FileEntry{Name: "b.txt", Size: 2, Modified: fixedTime, Hash: "00000000000000ff"},
		domain.FileEntry{Name: "a.txt", Size: 1, Modified: fixedTime},
	)

	require.NoError(t, manifest.NewStore().Write(path, idx))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "index", data)
}

func TestStore_Write_EmptyFilesIsArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), domain.IndexFileName)
	require.NoError(t, manifest.NewStore().Write(path, sampleIndex(t)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"files": []`)
}

func TestStore_Write_Replaces(t *testing.T) {
	store := manifest.NewStore()
	path := filepath.Join(t.TempDir(), domain.IndexFileName)

	big := make([]domain.FileEntry, 0, 50)
	for i := range 50 {
		big = append(big, domain.FileEntry{Name: string(rune('a'+i%26)) + string(rune('a'+i/26)), Size: int64(i)})
	}
	require.NoError(t, store.Write(path, sampleIndex(t, big...)))
	require.NoError(t, store.Write(path, sampleIndex(t, domain.FileEntry{Name: "only.txt"})))

	loaded, err := store.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"only.txt"}, loaded.Names())

	// Writing the same index twice yields the same bytes.
	first, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, store.Write(path, sampleIndex(t, domain.FileEntry{Name: "only.txt"})))
	second, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestStore_Load_RoundTrip(t *testing.T) {
	store := manifest.NewStore()
	path := filepath.Join(t.TempDir(), domain.IndexFileName)
	idx := sampleIndex(t, domain.FileEntry{Name: "a.txt", Size: 3, Modified: fixedTime, Hash: "abc"})

	require.NoError(t, store.Write(path, idx))
	loaded, err := store.Load(path)
	require.NoError(t, err)

	assert.Equal(t, idx.ProjectName, loaded.ProjectName)
	assert.Equal(t, idx.LastCommit, loaded.LastCommit)
	assert.True(t, idx.GeneratedAt.Equal(loaded.GeneratedAt))
	assert.Equal(t, idx.Names(), loaded.Names())
}

func TestStore_Load_Errors(t *testing.T) {
	store := manifest.NewStore()
	dir := t.TempDir()

	_, err := store.Load(filepath.Join(dir, "missing.json"))
	assert.ErrorContains(t, err, domain.ErrIndexNotFound.Error())

	corrupt := filepath.Join(dir, "corrupt.json")
	require.NoError(t, os.WriteFile(corrupt, []byte("{"), domain.FilePerm))
	_, err = store.Load(corrupt)
	assert.ErrorContains(t, err, domain.ErrIndexReadFailed.Error())
}

func TestStore_Write_Unwritable(t *testing.T) {
	// The manifest path is an existing directory.
	err := manifest.NewStore().Write(t.TempDir(), sampleIndex(t))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrIndexWriteFailed.Error())
}
