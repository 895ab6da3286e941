package meta

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
)

// DefaultBinary is the name the external tool is resolved by on PATH.
const DefaultBinary = "git-meta"

// Runner executes a git meta command and returns its trimmed stdout.
// dir is the working directory for the child process; empty means inherit
// the caller's. Implementations return *CommandError for non-zero exits and
// *LaunchError when no process could be started.
type Runner interface {
	Run(ctx context.Context, dir string, args ...string) (string, error)
}

// ExecRunner runs git meta commands via os/exec.
type ExecRunner struct {
	bin string
}

// NewRunner creates an ExecRunner for the given binary name.
// An empty name falls back to DefaultBinary. The name is resolved from
// PATH on every call, never treated as an absolute path.
func NewRunner(bin string) *ExecRunner {
	if bin == "" {
		bin = DefaultBinary
	}
	return &ExecRunner{bin: bin}
}

// Binary returns the binary name this runner resolves.
func (r *ExecRunner) Binary() string {
	return r.bin
}

// Run executes a git meta command with the given working directory and
// arguments. It captures stdout and stderr fully, blocking until the
// process exits, and returns stdout with surrounding whitespace trimmed.
//
// The binary name is resolved with exec.LookPath before the command is
// built, so the argument vector always starts from a concrete path.
func (r *ExecRunner) Run(ctx context.Context, dir string, args ...string) (string, error) {
	path, err := exec.LookPath(r.bin)
	if err != nil {
		return "", &LaunchError{Bin: r.bin, Err: err}
	}

	cmd := exec.CommandContext(ctx, path, args...)
	if dir != "" {
		cmd.Dir = dir
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", &CommandError{
				ExitCode: exitErr.ExitCode(),
				Args:     args,
				Stdout:   stdout.String(),
				Stderr:   stderr.String(),
			}
		}
		// The process never produced an exit status (bad working
		// directory, killed before start, context cancelled).
		return "", &LaunchError{Bin: r.bin, Err: err}
	}

	return strings.TrimSpace(stdout.String()), nil
}
