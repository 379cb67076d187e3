// Package shell runs the workload command timed by snap.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"

	"go.trai.ch/snap/internal/core/domain"
	"go.trai.ch/snap/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Executor = (*Executor)(nil)

// Executor implements ports.Executor using os/exec.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{logger: logger}
}

// Execute runs argv in dir with the caller's environment and streams its
// output to stdout and stderr.
func (e *Executor) Execute(
	ctx context.Context,
	argv []string,
	dir string,
	stdout, stderr io.Writer,
) (int, error) {
	if len(argv) == 0 {
		return 0, nil
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...) //nolint:gosec // user provided command
	cmd.Dir = dir
	cmd.Env = os.Environ()
	cmd.Stdin = os.Stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	e.logger.Debug("running " + strings.Join(argv, " "))

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	exitCode := -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	}

	wrapped := zerr.Wrap(err, domain.ErrWorkloadFailed.Error())
	wrapped = zerr.With(wrapped, "command", argv[0])
	return exitCode, zerr.With(wrapped, "exit_code", exitCode)
}
