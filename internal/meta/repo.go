package meta

import (
	"context"
	"errors"
	"os"
	"path/filepath"
)

// Repo represents one resolved git meta clone.
//
// WorkingDir is the clone root as reported by `git meta root`, resolved
// once at construction and immutable afterwards. GitDir is always
// WorkingDir/.git.
type Repo struct {
	WorkingDir string
	GitDir     string

	runner Runner
}

// ResolveWorkingDir resolves the clone root for a directory inside a clone.
//
// It returns *PathNotFoundError if candidate does not exist on the
// filesystem; this is checked locally, before any process is spawned.
// A *CommandError from the `root` probe is the designed "not inside a
// clone" signal and is swallowed: the function returns ("", nil). Any
// other failure (such as *LaunchError) propagates unchanged.
func ResolveWorkingDir(ctx context.Context, r Runner, candidate string) (string, error) {
	if _, err := os.Stat(candidate); err != nil {
		return "", &PathNotFoundError{Path: candidate}
	}

	root, err := r.Run(ctx, candidate, "root")
	if err != nil {
		var cmdErr *CommandError
		if errors.As(err, &cmdErr) {
			return "", nil
		}
		return "", err
	}
	return root, nil
}

// NewRepo creates a Repo for a directory or subdirectory of a git meta
// clone, using `git meta root` to determine the clone root.
//
// Returns *PathNotFoundError if cloneDir does not exist and
// *CloneNotFoundError if it exists but is not inside a clone.
func NewRepo(ctx context.Context, r Runner, cloneDir string) (*Repo, error) {
	root, err := ResolveWorkingDir(ctx, r, cloneDir)
	if err != nil {
		return nil, err
	}
	if root == "" {
		return nil, &CloneNotFoundError{Path: cloneDir}
	}
	return &Repo{
		WorkingDir: root,
		GitDir:     filepath.Join(root, ".git"),
		runner:     r,
	}, nil
}

// Help runs `git meta help` and returns its trimmed output.
// dir is optional; empty runs in the caller's current directory.
func Help(ctx context.Context, r Runner, dir string) (string, error) {
	return r.Run(ctx, dir, "help")
}

// Version runs `git meta version` and returns its trimmed output.
// dir is optional; empty runs in the caller's current directory.
func Version(ctx context.Context, r Runner, dir string) (string, error) {
	return r.Run(ctx, dir, "version")
}

// Open opens submodules, given as paths relative to the clone root.
// An empty list is valid and runs a bare `git meta open`.
func (repo *Repo) Open(ctx context.Context, submodules []string) error {
	args := append([]string{"open"}, submodules...)
	_, err := repo.runner.Run(ctx, repo.WorkingDir, args...)
	return err
}

// Checkout runs `git meta checkout` with arbitrary parameters.
// An empty list is valid and runs a bare `git meta checkout`.
func (repo *Repo) Checkout(ctx context.Context, params []string) error {
	args := append([]string{"checkout"}, params...)
	_, err := repo.runner.Run(ctx, repo.WorkingDir, args...)
	return err
}

// IsOpen reports whether a submodule is open in this clone. It checks for
// the submodule's .git entry under the clone root and spawns no process.
// The check is a heuristic: it does not validate that the entry is a
// well-formed repository.
func (repo *Repo) IsOpen(submodule string) bool {
	_, err := os.Stat(filepath.Join(repo.WorkingDir, submodule, ".git"))
	return err == nil
}
