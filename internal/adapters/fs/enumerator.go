// Package fs provides file system adapters for listing and hashing files.
package fs

import (
	"context"
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/snap/internal/core/domain"
	"go.trai.ch/snap/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Enumerator = (*Enumerator)(nil)

// Enumerator lists the regular files directly inside a directory.
type Enumerator struct {
	hasher *Hasher
	logger ports.Logger
}

// NewEnumerator creates a new Enumerator.
func NewEnumerator(hasher *Hasher, logger ports.Logger) *Enumerator {
	return &Enumerator{hasher: hasher, logger: logger}
}

// Enumerate reads dir once, in directory order, and returns an entry per regular file.
// Symlinks are followed. Entries that disappear before they can be inspected are
// left out, so the result is a best-effort snapshot.
func (e *Enumerator) Enumerate(
	ctx context.Context,
	dir string,
	opts domain.ScanOptions,
) ([]domain.FileEntry, error) {
	d, err := os.Open(dir) //nolint:gosec // Directory comes from configuration
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrEnumerationFailed.Error()), "dir", dir)
	}
	defer d.Close() //nolint:errcheck // Read-only handle

	dirEntries, err := d.ReadDir(-1)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrEnumerationFailed.Error()), "dir", dir)
	}

	files := make([]domain.FileEntry, 0, len(dirEntries))
	for _, de := range dirEntries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		name := de.Name()
		if skip(name, opts) {
			continue
		}

		entry, ok := e.inspect(filepath.Join(dir, name), name, opts.Hash)
		if ok {
			files = append(files, entry)
		}
	}

	return files, nil
}

// inspect stats and optionally hashes one entry. It reports false for
// entries that are not regular files or no longer exist.
func (e *Enumerator) inspect(path, name string, hash bool) (domain.FileEntry, bool) {
	info, err := os.Stat(path)
	if err != nil {
		e.logger.Debug("skipping " + name + ": " + err.Error())
		return domain.FileEntry{}, false
	}
	if !info.Mode().IsRegular() {
		return domain.FileEntry{}, false
	}

	entry := domain.FileEntry{
		Name:     name,
		Size:     info.Size(),
		Modified: info.ModTime().UTC(),
	}

	if hash {
		sum, err := e.hasher.ComputeFileHash(path)
		switch {
		case errors.Is(err, iofs.ErrNotExist):
			e.logger.Debug("skipping " + name + ": removed during scan")
			return domain.FileEntry{}, false
		case err != nil:
			e.logger.Warn("could not hash " + name + ": " + err.Error())
		default:
			entry.Hash = sum
		}
	}

	return entry, true
}

func skip(name string, opts domain.ScanOptions) bool {
	if !opts.Hidden && strings.HasPrefix(name, ".") {
		return true
	}
	for _, pattern := range opts.Ignore {
		if ok, _ := filepath.Match(pattern, name); ok {
			return true
		}
	}
	return false
}
