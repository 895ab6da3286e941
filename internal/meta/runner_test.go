package meta

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// installFakeBinary writes a shell script named git-meta into a temp
// directory and prepends that directory to PATH for the test.
func installFakeBinary(t *testing.T, script string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake binary helper uses a shell script")
	}

	dir := t.TempDir()
	path := filepath.Join(dir, DefaultBinary)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755); err != nil {
		t.Fatalf("failed to write fake binary: %v", err)
	}
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
}

func TestRunTrimsStdout(t *testing.T) {
	installFakeBinary(t, `printf '  /some/path\n'`)

	out, err := NewRunner("").Run(context.Background(), "", "root")
	if err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}
	if out != "/some/path" {
		t.Errorf("Run() = %q, want %q", out, "/some/path")
	}
}

func TestRunPreservesInternalWhitespace(t *testing.T) {
	installFakeBinary(t, `printf 'usage: git meta <command>\n\n  open\n'`)

	out, err := NewRunner("").Run(context.Background(), "", "help")
	if err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}
	want := "usage: git meta <command>\n\n  open"
	if out != want {
		t.Errorf("Run() = %q, want %q", out, want)
	}
}

func TestRunNonZeroExit(t *testing.T) {
	installFakeBinary(t, `printf 'partial output\n'; printf 'not a clone\n' >&2; exit 3`)

	_, err := NewRunner("").Run(context.Background(), "", "root")
	if err == nil {
		t.Fatal("Run() expected error, got nil")
	}

	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) {
		t.Fatalf("Run() error should be *CommandError, got %T", err)
	}
	if cmdErr.ExitCode != 3 {
		t.Errorf("ExitCode = %d, want 3", cmdErr.ExitCode)
	}
	if got, want := cmdErr.Args, []string{"root"}; len(got) != 1 || got[0] != want[0] {
		t.Errorf("Args = %v, want %v", got, want)
	}
	if cmdErr.Stdout != "partial output\n" {
		t.Errorf("Stdout = %q, want %q", cmdErr.Stdout, "partial output\n")
	}
	if cmdErr.Stderr != "not a clone\n" {
		t.Errorf("Stderr = %q, want %q", cmdErr.Stderr, "not a clone\n")
	}
}

func TestRunBinaryNotFound(t *testing.T) {
	// Empty PATH guarantees lookup failure without touching the real tool.
	t.Setenv("PATH", t.TempDir())

	_, err := NewRunner("").Run(context.Background(), "", "version")
	if err == nil {
		t.Fatal("Run() expected error, got nil")
	}

	var launchErr *LaunchError
	if !errors.As(err, &launchErr) {
		t.Fatalf("Run() error should be *LaunchError, got %T", err)
	}
	if launchErr.Bin != DefaultBinary {
		t.Errorf("Bin = %q, want %q", launchErr.Bin, DefaultBinary)
	}
	if launchErr.Unwrap() == nil {
		t.Error("LaunchError should carry the underlying lookup error")
	}

	// Binary-not-found must never be coerced into a CommandError.
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		t.Error("Run() lookup failure should not match *CommandError")
	}
}

func TestRunWorkingDirectory(t *testing.T) {
	installFakeBinary(t, `pwd`)

	dir := t.TempDir()
	out, err := NewRunner("").Run(context.Background(), dir, "root")
	if err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}
	// Resolve symlinks: on darwin TempDir may sit under /private.
	want, err := filepath.EvalSymlinks(dir)
	if err != nil {
		t.Fatalf("EvalSymlinks: %v", err)
	}
	got, err := filepath.EvalSymlinks(out)
	if err != nil {
		t.Fatalf("EvalSymlinks: %v", err)
	}
	if got != want {
		t.Errorf("Run() child cwd = %q, want %q", got, want)
	}
}

func TestNewRunnerCustomBinary(t *testing.T) {
	if got := NewRunner("git-meta-next").Binary(); got != "git-meta-next" {
		t.Errorf("Binary() = %q, want %q", got, "git-meta-next")
	}
	if got := NewRunner("").Binary(); got != DefaultBinary {
		t.Errorf("Binary() = %q, want %q", got, DefaultBinary)
	}
}
