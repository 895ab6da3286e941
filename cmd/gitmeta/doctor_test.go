package main

import (
	"encoding/json"
	"testing"

	"github.com/gorewood/gitmeta/internal/output"
)

func TestDoctorCommandHealthy(t *testing.T) {
	cloneRoot := t.TempDir()
	installEchoRootTool(t, cloneRoot)
	t.Chdir(cloneRoot)

	out, err := execCommand(t, "doctor", "--json")
	if err != nil {
		t.Fatalf("command failed: %v", err)
	}

	var result struct {
		Checks []struct {
			Name   string `json:"name"`
			Status string `json:"status"`
		} `json:"checks"`
		Summary struct {
			Passed   int `json:"passed"`
			Warnings int `json:"warnings"`
			Failed   int `json:"failed"`
		} `json:"summary"`
	}
	if jsonErr := json.Unmarshal([]byte(out), &result); jsonErr != nil {
		t.Fatalf("failed to parse JSON output: %v\nOutput: %s", jsonErr, out)
	}

	if result.Summary.Failed != 0 {
		t.Errorf("failed checks = %d, want 0\nOutput: %s", result.Summary.Failed, out)
	}
	if result.Summary.Passed != 3 {
		t.Errorf("passed checks = %d, want 3\nOutput: %s", result.Summary.Passed, out)
	}
}

func TestDoctorCommandOutsideClone(t *testing.T) {
	// root fails, version succeeds: tool healthy, directory not a clone.
	installFakeTool(t,
		`if [ "$1" = "version" ]; then printf '1.2.3\n'; `+
			`else printf 'not a clone\n' >&2; exit 1; fi`)
	t.Chdir(t.TempDir())

	out, err := execCommand(t, "doctor", "--json")
	if err != nil {
		t.Fatalf("doctor should not fail for a warning: %v", err)
	}

	var result struct {
		Summary struct {
			Passed   int `json:"passed"`
			Warnings int `json:"warnings"`
			Failed   int `json:"failed"`
		} `json:"summary"`
	}
	if jsonErr := json.Unmarshal([]byte(out), &result); jsonErr != nil {
		t.Fatalf("failed to parse JSON output: %v\nOutput: %s", jsonErr, out)
	}
	if result.Summary.Warnings != 1 {
		t.Errorf("warnings = %d, want 1\nOutput: %s", result.Summary.Warnings, out)
	}
	if result.Summary.Failed != 0 {
		t.Errorf("failed = %d, want 0\nOutput: %s", result.Summary.Failed, out)
	}
}

func TestDoctorCommandToolMissing(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	t.Chdir(t.TempDir())

	_, err := execCommand(t, "doctor")
	if err == nil {
		t.Fatal("doctor should fail when the binary is missing")
	}
	if code := output.GetExitCode(err); code != output.ExitSystemError {
		t.Errorf("exit code = %d, want %d (system error)", code, output.ExitSystemError)
	}
}
