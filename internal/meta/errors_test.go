package meta

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"testing"
)

func TestCommandErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *CommandError
		want string
	}{
		{
			name: "prefers stderr",
			err:  &CommandError{ExitCode: 1, Args: []string{"root"}, Stdout: "ignored", Stderr: "not a clone\n"},
			want: "git meta root exited with code 1: not a clone",
		},
		{
			name: "falls back to stdout",
			err:  &CommandError{ExitCode: 2, Args: []string{"open", "x"}, Stdout: "no such submodule\n"},
			want: "git meta open x exited with code 2: no such submodule",
		},
		{
			name: "no output at all",
			err:  &CommandError{ExitCode: 128, Args: []string{"checkout"}},
			want: "git meta checkout exited with code 128",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLaunchErrorUnwrap(t *testing.T) {
	cause := &exec.Error{Name: DefaultBinary, Err: exec.ErrNotFound}
	err := fmt.Errorf("resolving tool: %w", &LaunchError{Bin: DefaultBinary, Err: cause})

	var launchErr *LaunchError
	if !errors.As(err, &launchErr) {
		t.Fatal("errors.As should find *LaunchError through wrapping")
	}
	if !errors.Is(err, exec.ErrNotFound) {
		t.Error("errors.Is should reach the lookup cause through Unwrap")
	}
	if !strings.Contains(launchErr.Error(), DefaultBinary) {
		t.Errorf("Error() = %q, should name the binary", launchErr.Error())
	}
}

func TestPathAndCloneErrorsNameThePath(t *testing.T) {
	pathErr := &PathNotFoundError{Path: "/tmp/missing"}
	if !strings.Contains(pathErr.Error(), "/tmp/missing") {
		t.Errorf("PathNotFoundError message %q should contain the path", pathErr.Error())
	}

	cloneErr := &CloneNotFoundError{Path: "/tmp/plain"}
	if !strings.Contains(cloneErr.Error(), "/tmp/plain") {
		t.Errorf("CloneNotFoundError message %q should contain the path", cloneErr.Error())
	}
}
