// Package main provides the entry point for the gitmeta CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/gitmeta/internal/meta"
	"github.com/gorewood/gitmeta/internal/output"
)

// submoduleState holds the open/closed state of one submodule.
type submoduleState struct {
	Path string `json:"path"`
	Open bool   `json:"open"`
}

// statusResult holds the data for status output.
type statusResult struct {
	WorkingDir string           `json:"working_dir"`
	GitDir     string           `json:"git_dir"`
	Submodules []submoduleState `json:"submodules,omitempty"`
}

// newStatusCmd creates the status command.
func newStatusCmd() *cobra.Command {
	var dirFlag string

	cmd := &cobra.Command{
		Use:   "status [submodule...]",
		Short: "Show clone identity and submodule open state",
		Long: `Show the resolved clone root and git directory, and for each named
submodule whether it is open or closed.

The open check is purely local: a submodule is open when its .git entry
exists under the clone root. No extra git-meta processes are spawned
beyond the one root resolution.

Examples:
  gitmeta status                    # Show clone identity
  gitmeta status lib/core lib/util  # Also report submodule state
  gitmeta status --json             # Output as JSON for scripting`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus(cmd, dirFlag, args)
		},
	}

	cmd.Flags().StringVarP(&dirFlag, "chdir", "C", ".", "Directory inside the clone to operate on")
	return cmd
}

// runStatus executes the status command.
func runStatus(cmd *cobra.Command, dir string, submodules []string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).
		WithStderr(cmd.ErrOrStderr())

	runner, err := toolRunner()
	if err != nil {
		printer.Error(err)
		return err
	}

	repo, err := meta.NewRepo(cmd.Context(), runner, dir)
	if err != nil {
		exitErr := mapBindingError(err)
		printer.Error(exitErr)
		return exitErr
	}

	result := &statusResult{
		WorkingDir: repo.WorkingDir,
		GitDir:     repo.GitDir,
	}
	for _, sub := range submodules {
		result.Submodules = append(result.Submodules, submoduleState{
			Path: sub,
			Open: repo.IsOpen(sub),
		})
	}

	if printer.IsJSON() {
		return printer.WriteJSON(result)
	}

	printHumanStatus(printer, result)
	return nil
}

// printHumanStatus outputs status in human-readable format.
func printHumanStatus(printer *output.Printer, status *statusResult) {
	printer.Section("Clone")
	printer.KeyValue("Root", status.WorkingDir)
	printer.KeyValue("Git Dir", status.GitDir)

	if len(status.Submodules) == 0 {
		return
	}

	printer.Section("Submodules")
	for _, sub := range status.Submodules {
		printer.KeyValue(sub.Path, formatOpen(sub.Open))
	}
}

// formatOpen returns a human-readable submodule state.
func formatOpen(open bool) string {
	if open {
		return "open"
	}
	return "closed"
}
