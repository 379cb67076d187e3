package git

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/jonboulle/clockwork"
	"go.trai.ch/snap/internal/core/domain"
	"go.trai.ch/snap/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Publisher = (*Publisher)(nil)

// Publisher stages, commits and optionally pushes the workspace.
type Publisher struct {
	clock  clockwork.Clock
	logger ports.Logger
}

// NewPublisher creates a new Publisher.
func NewPublisher(clock clockwork.Clock, logger ports.Logger) *Publisher {
	return &Publisher{clock: clock, logger: logger}
}

// Publish is the equivalent of `git add <dir> && git commit -m <message>` followed
// by an optional push. Only changes under req.Dir are staged and lock files under
// the internal directory never are.
// A clean tree is not an error: the current HEAD is returned instead.
func (p *Publisher) Publish(ctx context.Context, req domain.PublishRequest) (string, error) {
	repo, err := gogit.PlainOpenWithOptions(req.Dir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", publishErr(err, "open", req.Dir)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return "", publishErr(err, "worktree", req.Dir)
	}

	patterns, err := gitignore.ReadPatterns(wt.Filesystem, nil)
	if err != nil {
		return "", publishErr(err, "gitignore", req.Dir)
	}
	wt.Excludes = append(wt.Excludes, patterns...)
	wt.Excludes = append(wt.Excludes, gitignore.ParsePattern(domain.SnapDirName, nil))

	scope, err := stagingScope(wt.Filesystem.Root(), req.Dir)
	if err != nil {
		return "", publishErr(err, "scope", req.Dir)
	}
	add := &gogit.AddOptions{All: true}
	if scope != "." {
		add = &gogit.AddOptions{Path: scope}
	}
	if err := wt.AddWithOptions(add); err != nil {
		return "", publishErr(err, "add", req.Dir)
	}

	hash, err := wt.Commit(req.Message, &gogit.CommitOptions{
		Author: &object.Signature{
			Name:  req.Author,
			Email: req.Email,
			When:  p.clock.Now(),
		},
	})
	switch {
	case errors.Is(err, gogit.ErrEmptyCommit):
		p.logger.Info("nothing to commit")
		head, headErr := repo.Head()
		if headErr != nil {
			return "", publishErr(headErr, "head", req.Dir)
		}
		hash = head.Hash()
	case err != nil:
		return "", publishErr(err, "commit", req.Dir)
	}

	if req.Push {
		err := repo.PushContext(ctx, &gogit.PushOptions{})
		if err != nil && !errors.Is(err, gogit.NoErrAlreadyUpToDate) {
			return hash.String(), publishErr(err, "push", req.Dir)
		}
	}

	return hash.String(), nil
}

// stagingScope returns dir relative to the worktree root, "." for the root itself.
func stagingScope(root, dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(root, abs)
	if err != nil {
		return "", err
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", zerr.With(zerr.New("directory is outside the worktree"), "root", root)
	}
	return rel, nil
}

func publishErr(err error, stage, dir string) error {
	return zerr.With(zerr.With(zerr.Wrap(err, domain.ErrPublishFailed.Error()), "stage", stage), "dir", dir)
}
