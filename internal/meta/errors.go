package meta

import (
	"fmt"
	"strings"
)

// PathNotFoundError reports a supplied directory that does not exist on the
// filesystem. It is raised before any external process is spawned.
type PathNotFoundError struct {
	Path string
}

// Error implements the error interface.
func (e *PathNotFoundError) Error() string {
	return fmt.Sprintf("could not read %s: no such path", e.Path)
}

// CloneNotFoundError reports a directory that exists but is not inside a
// git meta clone. It is raised only when constructing a Repo.
type CloneNotFoundError struct {
	Path string
}

// Error implements the error interface.
func (e *CloneNotFoundError) Error() string {
	return fmt.Sprintf("%s is not inside a git meta clone", e.Path)
}

// CommandError reports a git meta command that ran and exited non-zero.
// It carries the full diagnostic context: the exit code, the argument
// vector that was run, and both captured output streams.
type CommandError struct {
	ExitCode int
	Args     []string
	Stdout   string
	Stderr   string
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	msg := strings.TrimSpace(e.Stderr)
	if msg == "" {
		msg = strings.TrimSpace(e.Stdout)
	}
	if msg == "" {
		return fmt.Sprintf("git meta %s exited with code %d",
			strings.Join(e.Args, " "), e.ExitCode)
	}
	return fmt.Sprintf("git meta %s exited with code %d: %s",
		strings.Join(e.Args, " "), e.ExitCode, msg)
}

// LaunchError reports that the git meta binary could not be found or
// started at all. Unlike CommandError no process result exists, so there
// is no exit code or captured output to carry.
type LaunchError struct {
	Bin string
	Err error
}

// Error implements the error interface.
func (e *LaunchError) Error() string {
	return fmt.Sprintf("could not launch %s: %v", e.Bin, e.Err)
}

// Unwrap returns the underlying cause for errors.Is/errors.As support.
func (e *LaunchError) Unwrap() error {
	return e.Err
}
