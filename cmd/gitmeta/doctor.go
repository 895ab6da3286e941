// Package main provides the entry point for the gitmeta CLI.
package main

import (
	"errors"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/gorewood/gitmeta/internal/meta"
	"github.com/gorewood/gitmeta/internal/output"
)

// checkStatus represents the result of a health check.
type checkStatus string

const (
	checkPass checkStatus = "pass"
	checkWarn checkStatus = "warn"
	checkFail checkStatus = "fail"
)

// checkResult holds the result of a single health check.
type checkResult struct {
	Name    string      `json:"name"`
	Status  checkStatus `json:"status"`
	Message string      `json:"message"`
	Hint    string      `json:"hint,omitempty"`
}

// doctorResult holds all check results.
type doctorResult struct {
	Version string        `json:"version"`
	Checks  []checkResult `json:"checks"`
	Summary doctorSummary `json:"summary"`
}

// doctorSummary holds the counts of check results.
type doctorSummary struct {
	Passed   int `json:"passed"`
	Warnings int `json:"warnings"`
	Failed   int `json:"failed"`
}

// newDoctorCmd creates the doctor command.
func newDoctorCmd() *cobra.Command {
	var quietFlag bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check git-meta availability and clone state",
		Long: `Check that the external git-meta tool is usable from here.

Runs a series of health checks:
  Binary on PATH   - the configured binary name resolves
  Tool responds    - 'git-meta version' runs and exits zero
  Inside a clone   - the current directory resolves to a clone root

Each check reports pass, warn, or fail with a hint where applicable.

Examples:
  gitmeta doctor           # Run all health checks
  gitmeta doctor --quiet   # Only show failures and warnings
  gitmeta doctor --json    # Output results as JSON`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDoctor(cmd, quietFlag)
		},
	}

	cmd.Flags().BoolVar(&quietFlag, "quiet", false, "Only show failures and warnings")
	return cmd
}

// runDoctor executes the doctor command.
func runDoctor(cmd *cobra.Command, quiet bool) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).
		WithStderr(cmd.ErrOrStderr())

	runner, err := toolRunner()
	if err != nil {
		printer.Error(err)
		return err
	}

	result := gatherDoctorChecks(cmd, runner)

	if printer.IsJSON() {
		if err := printer.WriteJSON(result); err != nil {
			return err
		}
		if result.Summary.Failed > 0 {
			return output.NewSystemError("doctor found failing checks")
		}
		return nil
	}

	printHumanDoctor(printer, result, quiet)

	if result.Summary.Failed > 0 {
		err := output.NewSystemError("doctor found failing checks")
		printer.Error(err)
		return err
	}
	return nil
}

// gatherDoctorChecks runs all health checks.
func gatherDoctorChecks(cmd *cobra.Command, runner *meta.ExecRunner) *doctorResult {
	result := &doctorResult{Version: buildVersion()}
	result.Checks = append(result.Checks, checkBinaryOnPath(runner))
	result.Checks = append(result.Checks, checkToolResponds(cmd, runner))
	result.Checks = append(result.Checks, checkInsideClone(cmd, runner))

	for _, check := range result.Checks {
		switch check.Status {
		case checkPass:
			result.Summary.Passed++
		case checkWarn:
			result.Summary.Warnings++
		case checkFail:
			result.Summary.Failed++
		}
	}
	return result
}

// checkBinaryOnPath checks that the configured binary name resolves on PATH.
func checkBinaryOnPath(runner *meta.ExecRunner) checkResult {
	path, err := exec.LookPath(runner.Binary())
	if err != nil {
		return checkResult{
			Name:    "Binary on PATH",
			Status:  checkFail,
			Message: runner.Binary() + " not found on PATH",
			Hint:    "Install git-meta or set GITMETA_BIN",
		}
	}
	return checkResult{
		Name:    "Binary on PATH",
		Status:  checkPass,
		Message: runner.Binary() + " resolves to " + path,
	}
}

// checkToolResponds checks that the tool answers a version call.
func checkToolResponds(cmd *cobra.Command, runner *meta.ExecRunner) checkResult {
	toolVersion, err := meta.Version(cmd.Context(), runner, "")
	if err != nil {
		return checkResult{
			Name:    "Tool Responds",
			Status:  checkFail,
			Message: "git-meta version failed: " + err.Error(),
		}
	}
	return checkResult{
		Name:    "Tool Responds",
		Status:  checkPass,
		Message: "git-meta version " + toolVersion,
	}
}

// checkInsideClone checks whether the current directory is inside a clone.
// Outside a clone is a warning, not a failure: the tool itself is healthy.
func checkInsideClone(cmd *cobra.Command, runner *meta.ExecRunner) checkResult {
	_, err := meta.NewRepo(cmd.Context(), runner, ".")
	if err != nil {
		var cloneErr *meta.CloneNotFoundError
		if errors.As(err, &cloneErr) {
			return checkResult{
				Name:    "Inside a Clone",
				Status:  checkWarn,
				Message: "current directory is not inside a git meta clone",
				Hint:    "Run from a clone or pass -C to clone commands",
			}
		}
		return checkResult{
			Name:    "Inside a Clone",
			Status:  checkFail,
			Message: "root resolution failed: " + err.Error(),
		}
	}
	return checkResult{
		Name:    "Inside a Clone",
		Status:  checkPass,
		Message: "current directory resolves to a clone root",
	}
}

// printHumanDoctor outputs doctor results in human-readable format.
func printHumanDoctor(printer *output.Printer, result *doctorResult, quiet bool) {
	printer.Section("Health Checks")
	for _, check := range result.Checks {
		if quiet && check.Status == checkPass {
			continue
		}
		printer.KeyValue(check.Name, string(check.Status)+": "+check.Message)
		if check.Hint != "" {
			printer.KeyValue("  hint", check.Hint)
		}
	}
}
