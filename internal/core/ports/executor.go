package ports

import (
	"context"
	"io"
)

// Executor runs the workload being timed.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs argv in dir and returns its exit code.
	//
	// A command that starts and exits non-zero returns its code together with
	// an error. A command that cannot start returns -1.
	Execute(ctx context.Context, argv []string, dir string, stdout, stderr io.Writer) (int, error)
}
