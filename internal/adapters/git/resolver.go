// Package git resolves and records workspace provenance with go-git.
package git

import (
	"context"

	gogit "github.com/go-git/go-git/v5"
	"go.trai.ch/snap/internal/core/domain"
	"go.trai.ch/snap/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CommitResolver = (*Resolver)(nil)

// Resolver reports the HEAD commit of the repository containing a directory.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve returns the full hash of HEAD in the repository containing dir.
// Parent directories are searched for the repository root.
func (r *Resolver) Resolve(_ context.Context, dir string) (string, error) {
	repo, err := openRepository(dir)
	if err != nil {
		return "", err
	}

	head, err := repo.Head()
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrProvenanceUnavailable.Error()), "dir", dir)
	}

	return head.Hash().String(), nil
}

func openRepository(dir string) (*gogit.Repository, error) {
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrProvenanceUnavailable.Error()), "dir", dir)
	}
	return repo, nil
}
