// Package indexer builds and persists the workspace index of a directory.
package indexer

import (
	"context"

	"github.com/jonboulle/clockwork"
	"go.trai.ch/snap/internal/core/domain"
	"go.trai.ch/snap/internal/core/ports"
	"go.trai.ch/zerr"
)

// Settings controls where the manifest is written and which entries it lists.
type Settings struct {
	IndexPath string
	Sort      bool
	Scan      domain.ScanOptions
}

// Indexer enumerates a directory and replaces its manifest.
type Indexer struct {
	enumerator ports.Enumerator
	store      ports.ManifestStore
	clock      clockwork.Clock
	logger     ports.Logger
	settings   Settings
}

// New creates an Indexer writing to the default manifest location.
func New(
	enumerator ports.Enumerator,
	store ports.ManifestStore,
	clock clockwork.Clock,
	logger ports.Logger,
) *Indexer {
	return &Indexer{
		enumerator: enumerator,
		store:      store,
		clock:      clock,
		logger:     logger,
		settings: Settings{
			IndexPath: domain.IndexFileName,
			Sort:      true,
			Scan:      domain.ScanOptions{Hash: true, Hidden: true},
		},
	}
}

// With returns a copy of the Indexer using s.
func (i *Indexer) With(s Settings) *Indexer {
	c := *i
	c.settings = s
	return &c
}

// Settings returns the active settings.
func (i *Indexer) Settings() Settings {
	return i.settings
}

// BuildAndPersist lists the regular files directly inside targetDir, stamps
// them with the current commit and replaces the manifest.
//
// It fails only when targetDir cannot be listed or the manifest cannot be
// written. Provenance failures degrade to domain.UnknownCommit.
func (i *Indexer) BuildAndPersist(
	ctx context.Context,
	targetDir, projectName string,
	resolver ports.CommitResolver,
) (*domain.WorkspaceIndex, error) {
	entries, err := i.enumerator.Enumerate(ctx, targetDir, i.settings.Scan)
	if err != nil {
		return nil, err
	}

	commit := ResolveCommit(ctx, resolver, targetDir, i.logger)

	idx, err := domain.NewWorkspaceIndex(
		projectName,
		targetDir,
		commit,
		i.clock.Now().UTC(),
		entries,
		i.settings.Sort,
	)
	if err != nil {
		return nil, zerr.With(err, "dir", targetDir)
	}

	if err := i.store.Write(i.settings.IndexPath, idx); err != nil {
		return nil, err
	}

	return idx, nil
}

// ResolveCommit asks resolver for the commit of the repository containing dir.
// Any failure, including an empty answer, yields domain.UnknownCommit and a warning.
func ResolveCommit(ctx context.Context, resolver ports.CommitResolver, dir string, logger ports.Logger) string {
	if resolver == nil {
		return domain.UnknownCommit
	}

	commit, err := resolver.Resolve(ctx, dir)
	if err != nil {
		logger.Warn(domain.ErrProvenanceUnavailable.Error() + ", recording " + domain.UnknownCommit)
		logger.Debug(err.Error())
		return domain.UnknownCommit
	}
	if commit == "" {
		logger.Warn(domain.ErrProvenanceUnavailable.Error() + ", recording " + domain.UnknownCommit)
		return domain.UnknownCommit
	}

	return commit
}
