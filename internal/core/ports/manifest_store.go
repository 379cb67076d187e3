package ports

import "go.trai.ch/snap/internal/core/domain"

// ManifestStore persists the workspace index.
//
//go:generate mockgen -source=manifest_store.go -destination=mocks/mock_manifest_store.go -package=mocks
type ManifestStore interface {
	// Write replaces the manifest at path with idx.
	Write(path string, idx *domain.WorkspaceIndex) error

	// Load reads the manifest at path.
	Load(path string) (*domain.WorkspaceIndex, error)
}
