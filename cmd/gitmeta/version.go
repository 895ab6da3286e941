// Package main provides the entry point for the gitmeta CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/gitmeta/internal/meta"
	"github.com/gorewood/gitmeta/internal/output"
)

// newVersionCmd creates the version command (external tool version).
// The CLI's own version is available via --version.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version of the external git-meta tool",
		Long: `Show the version reported by the external git-meta tool.

This runs 'git-meta version' and prints its output. For the version of
the gitmeta CLI itself, use 'gitmeta --version'.`,
		Args: cobra.NoArgs,
		RunE: runVersion,
	}
}

// runVersion executes the version command.
func runVersion(cmd *cobra.Command, _ []string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).
		WithStderr(cmd.ErrOrStderr())

	runner, err := toolRunner()
	if err != nil {
		printer.Error(err)
		return err
	}

	toolVersion, err := meta.Version(cmd.Context(), runner, "")
	if err != nil {
		exitErr := mapBindingError(err)
		printer.Error(exitErr)
		return exitErr
	}

	if printer.IsJSON() {
		return printer.Success(map[string]any{"version": toolVersion})
	}

	printer.Println(toolVersion)
	return nil
}
