package ports

import "context"

// CommitResolver reports the revision identifier of the source tree containing a directory.
//
//go:generate mockgen -source=commit_resolver.go -destination=mocks/mock_commit_resolver.go -package=mocks
type CommitResolver interface {
	// Resolve returns the commit hash checked out in the repository containing
	// dir. Callers treat any error as "provenance unavailable" and substitute
	// the unknown sentinel.
	Resolve(ctx context.Context, dir string) (string, error)
}

// ResolverFunc adapts a plain function to a CommitResolver.
type ResolverFunc func(ctx context.Context, dir string) (string, error)

// Resolve calls f(ctx, dir).
func (f ResolverFunc) Resolve(ctx context.Context, dir string) (string, error) {
	return f(ctx, dir)
}
