package fslock_test

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/snap/internal/adapters/fslock"
	"go.trai.ch/snap/internal/core/domain"
)

func TestWithLock_CreatesLockFileUnderInternalDir(t *testing.T) {
	dir := t.TempDir()
	artifact := filepath.Join(dir, "exec_log.jsonl")

	called := false
	err := fslock.WithLock(artifact, func() error {
		called = true
		return nil
	})
	require.NoError(t, err)
	assert.True(t, called)

	_, err = os.Stat(filepath.Join(dir, domain.SnapDirName, domain.LockDirName, "exec_log.jsonl.lock"))
	assert.NoError(t, err)
}

func TestWithLock_PropagatesError(t *testing.T) {
	want := errors.New("boom")
	err := fslock.WithLock(filepath.Join(t.TempDir(), "a"), func() error { return want })
	assert.ErrorIs(t, err, want)
}

func TestWithLock_Serializes(t *testing.T) {
	artifact := filepath.Join(t.TempDir(), "counter")

	var mu sync.Mutex
	inside, maxInside := 0, 0

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, fslock.WithLock(artifact, func() error {
				mu.Lock()
				inside++
				if inside > maxInside {
					maxInside = inside
				}
				mu.Unlock()

				mu.Lock()
				inside--
				mu.Unlock()
				return nil
			}))
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxInside)
}

func TestWithLock_UncreatableLockDir(t *testing.T) {
	dir := t.TempDir()
	// A regular file where the internal directory should be.
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.SnapDirName), nil, domain.FilePerm))

	err := fslock.WithLock(filepath.Join(dir, "a"), func() error { return nil })
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrLockFailed.Error())
}
