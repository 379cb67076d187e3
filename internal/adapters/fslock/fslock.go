// Package fslock serializes access to artifact files across processes.
package fslock

import (
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"go.trai.ch/snap/internal/core/domain"
	"go.trai.ch/zerr"
)

// WithLock runs fn while holding an exclusive lock for the artifact at path.
// The lock file lives under the internal directory next to the artifact.
func WithLock(path string, fn func() error) (err error) {
	lockPath := domain.LockPathFor(path)
	if mkErr := os.MkdirAll(filepath.Dir(lockPath), domain.DirPerm); mkErr != nil {
		return zerr.With(zerr.Wrap(mkErr, domain.ErrLockFailed.Error()), "lock", lockPath)
	}

	lock := flock.New(lockPath)
	if lockErr := lock.Lock(); lockErr != nil {
		return zerr.With(zerr.Wrap(lockErr, domain.ErrLockFailed.Error()), "lock", lockPath)
	}
	defer func() {
		if unlockErr := lock.Unlock(); unlockErr != nil && err == nil {
			err = zerr.With(zerr.Wrap(unlockErr, domain.ErrLockFailed.Error()), "lock", lockPath)
		}
	}()

	return fn()
}
