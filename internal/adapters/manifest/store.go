// Package manifest persists the workspace index as an indented JSON document.
package manifest

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/snap/internal/adapters/fslock"
	"go.trai.ch/snap/internal/core/domain"
	"go.trai.ch/snap/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ManifestStore = (*Store)(nil)

// Store implements ports.ManifestStore with whole-file replacement.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Write replaces the manifest at path. The previous content is truncated, so
// the file only ever holds the latest index.
func (s *Store) Write(path string, idx *domain.WorkspaceIndex) error {
	data, err := json.MarshalIndent(idx, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrIndexMarshalFailed.Error())
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrIndexWriteFailed.Error()), "path", path)
	}

	err = fslock.WithLock(path, func() error {
		//nolint:gosec // Path comes from configuration
		return os.WriteFile(path, data, domain.FilePerm)
	})
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrIndexWriteFailed.Error()), "path", path)
	}

	return nil
}

// Load reads the manifest at path.
func (s *Store) Load(path string) (*domain.WorkspaceIndex, error) {
	//nolint:gosec // Path comes from configuration
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(domain.ErrIndexNotFound, "path", path)
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrIndexReadFailed.Error()), "path", path)
	}

	var idx domain.WorkspaceIndex
	if err := json.Unmarshal(data, &idx); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrIndexReadFailed.Error()), "path", path)
	}

	return &idx, nil
}
