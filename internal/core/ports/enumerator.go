package ports

import (
	"context"

	"go.trai.ch/snap/internal/core/domain"
)

// Enumerator lists the regular files at the top level of a directory.
//
//go:generate mockgen -source=enumerator.go -destination=mocks/mock_enumerator.go -package=mocks
type Enumerator interface {
	// Enumerate returns one entry per regular file directly inside dir, in
	// directory order. It fails only when dir itself cannot be listed.
	Enumerate(ctx context.Context, dir string, opts domain.ScanOptions) ([]domain.FileEntry, error)
}
