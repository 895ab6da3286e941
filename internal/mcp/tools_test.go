package mcp

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/gorewood/gitmeta/internal/meta"
)

// fakeRunner replays one canned response per subcommand and records calls.
type fakeRunner struct {
	responses map[string]string
	failures  map[string]error
	calls     [][]string
	dirs      []string
}

func (f *fakeRunner) Run(_ context.Context, dir string, args ...string) (string, error) {
	f.calls = append(f.calls, args)
	f.dirs = append(f.dirs, dir)
	if err, ok := f.failures[args[0]]; ok {
		return "", err
	}
	return f.responses[args[0]], nil
}

func newCloneDir(t *testing.T) (string, *fakeRunner) {
	t.Helper()
	dir := t.TempDir()
	runner := &fakeRunner{
		responses: map[string]string{"root": dir, "version": "1.2.3"},
		failures:  map[string]error{},
	}
	return dir, runner
}

func TestRootTool(t *testing.T) {
	dir, runner := newCloneDir(t)

	_, out, err := handleRoot(runner)(context.Background(), nil, RootInput{Dir: dir})
	if err != nil {
		t.Fatalf("root tool unexpected error: %v", err)
	}
	if out.WorkingDir != dir {
		t.Errorf("WorkingDir = %q, want %q", out.WorkingDir, dir)
	}
	if out.GitDir != filepath.Join(dir, ".git") {
		t.Errorf("GitDir = %q, want %q", out.GitDir, filepath.Join(dir, ".git"))
	}
}

func TestRootToolOutsideClone(t *testing.T) {
	dir, runner := newCloneDir(t)
	runner.failures["root"] = &meta.CommandError{ExitCode: 1, Args: []string{"root"}, Stderr: "not a clone"}

	_, _, err := handleRoot(runner)(context.Background(), nil, RootInput{Dir: dir})
	if err == nil {
		t.Fatal("root tool expected error outside a clone")
	}
}

func TestVersionTool(t *testing.T) {
	_, runner := newCloneDir(t)

	_, out, err := handleVersion(runner)(context.Background(), nil, VersionInput{})
	if err != nil {
		t.Fatalf("version tool unexpected error: %v", err)
	}
	if out.Version != "1.2.3" {
		t.Errorf("Version = %q, want 1.2.3", out.Version)
	}
}

func TestIsOpenTool(t *testing.T) {
	dir, runner := newCloneDir(t)

	sub := filepath.Join(dir, "lib", "core")
	if err := os.MkdirAll(filepath.Join(sub, ".git"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	_, out, err := handleIsOpen(runner)(context.Background(), nil, IsOpenInput{Dir: dir, Submodule: "lib/core"})
	if err != nil {
		t.Fatalf("is_open tool unexpected error: %v", err)
	}
	if !out.Open {
		t.Error("Open = false, want true for submodule with .git marker")
	}

	_, out, err = handleIsOpen(runner)(context.Background(), nil, IsOpenInput{Dir: dir, Submodule: "lib/other"})
	if err != nil {
		t.Fatalf("is_open tool unexpected error: %v", err)
	}
	if out.Open {
		t.Error("Open = true, want false for submodule without .git marker")
	}
}

func TestOpenToolArgs(t *testing.T) {
	dir, runner := newCloneDir(t)

	_, out, err := handleOpen(runner)(context.Background(), nil, OpenInput{Dir: dir, Submodules: []string{"a", "b"}})
	if err != nil {
		t.Fatalf("open tool unexpected error: %v", err)
	}
	if out.WorkingDir != dir {
		t.Errorf("WorkingDir = %q, want %q", out.WorkingDir, dir)
	}

	last := runner.calls[len(runner.calls)-1]
	if !reflect.DeepEqual(last, []string{"open", "a", "b"}) {
		t.Errorf("argument vector = %v, want [open a b]", last)
	}
	if runner.dirs[len(runner.dirs)-1] != dir {
		t.Errorf("command dir = %q, want clone root", runner.dirs[len(runner.dirs)-1])
	}
}

func TestCheckoutToolPropagatesFailure(t *testing.T) {
	dir, runner := newCloneDir(t)
	runner.failures["checkout"] = &meta.CommandError{ExitCode: 1, Args: []string{"checkout", "bogus"}, Stderr: "unknown ref"}

	_, _, err := handleCheckout(runner)(context.Background(), nil, CheckoutInput{Dir: dir, Args: []string{"bogus"}})
	if err == nil {
		t.Fatal("checkout tool expected error, got nil")
	}
}

func TestNewServerRegistersTools(t *testing.T) {
	_, runner := newCloneDir(t)
	server := NewServer("test", runner)
	if server == nil {
		t.Fatal("NewServer returned nil")
	}
}
