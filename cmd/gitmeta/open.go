// Package main provides the entry point for the gitmeta CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gorewood/gitmeta/internal/meta"
	"github.com/gorewood/gitmeta/internal/output"
)

// newOpenCmd creates the open command.
func newOpenCmd() *cobra.Command {
	var dirFlag string

	cmd := &cobra.Command{
		Use:   "open [submodule...]",
		Short: "Open submodules in the clone",
		Long: `Open submodules, given as paths relative to the clone root.

With no arguments this runs a bare 'git-meta open', which the external
tool treats as a valid zero-argument invocation.

Examples:
  gitmeta open lib/core             # Open one submodule
  gitmeta open lib/core lib/util    # Open several
  gitmeta open -C ~/work/clone x    # Operate on another clone`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOpen(cmd, dirFlag, args)
		},
	}

	cmd.Flags().StringVarP(&dirFlag, "chdir", "C", ".", "Directory inside the clone to operate on")
	return cmd
}

// runOpen executes the open command.
func runOpen(cmd *cobra.Command, dir string, submodules []string) error {
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

	if err := repo.Open(cmd.Context(), submodules); err != nil {
		exitErr := mapBindingError(err)
		printer.Error(exitErr)
		return exitErr
	}

	return printer.Success(map[string]any{
		"message": fmt.Sprintf("opened %d submodule(s)", len(submodules)),
	})
}
