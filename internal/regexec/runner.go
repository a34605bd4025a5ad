// Package regexec runs the external registry tool and reports its exit
// status. It is the only place in the module that touches os/exec.
package regexec

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
)

// Runner executes commands with exec.CommandContext. stdin is closed, stderr
// is discarded (failure is inferred from the exit code alone), and stdout is
// streamed to the caller's sink.
type Runner struct {
	log *slog.Logger
}

// New builds a Runner logging through slog.Default.
func New() *Runner {
	return &Runner{log: slog.Default()}
}

// NewWithLogger builds a Runner with an explicit logger.
func NewWithLogger(l *slog.Logger) *Runner {
	return &Runner{log: l}
}

// Run executes name with args and blocks until the process exits and stdout
// is fully drained. A non-zero exit status is reported through the exit code,
// not the error; the error return is reserved for spawn failures (in which
// case the code is -1).
func (r *Runner) Run(ctx context.Context, name string, args []string, stdout io.Writer) (int, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = stdout
	hideWindow(cmd)

	r.log.Debug("spawning process", "name", name, "args", args)
	err := cmd.Run()
	if err == nil {
		return 0, nil
	}
	var exit *exec.ExitError
	if errors.As(err, &exit) {
		return exit.ExitCode(), nil
	}
	return -1, fmt.Errorf("spawning %s: %w", name, err)
}
