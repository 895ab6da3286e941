// Package main provides the entry point for the gitmeta CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/gitmeta/internal/meta"
	"github.com/gorewood/gitmeta/internal/output"
)

// newRootResolveCmd creates the root command (clone root resolution).
func newRootResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "root [dir]",
		Short: "Resolve the root of the clone containing a directory",
		Long: `Resolve the root of the git meta clone containing a directory.

The directory defaults to the current one. Fails if the directory does
not exist or is not inside a git meta clone.

Examples:
  gitmeta root              # Resolve from the current directory
  gitmeta root sub/dir      # Resolve from a subdirectory
  gitmeta root --json       # Output root and git dir as JSON`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return runRootResolve(cmd, dir)
		},
	}
}

// runRootResolve executes the root command.
func runRootResolve(cmd *cobra.Command, dir string) error {
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

	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"working_dir": repo.WorkingDir,
			"git_dir":     repo.GitDir,
		})
	}

	printer.Println(repo.WorkingDir)
	return nil
}
