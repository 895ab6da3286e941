// Package main provides the entry point for the gitmeta CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/gitmeta/internal/meta"
	"github.com/gorewood/gitmeta/internal/output"
)

// newCheckoutCmd creates the checkout command.
func newCheckoutCmd() *cobra.Command {
	var dirFlag string

	cmd := &cobra.Command{
		Use:   "checkout [args...]",
		Short: "Run git-meta checkout with arbitrary parameters",
		Long: `Run 'git-meta checkout' in the clone with arbitrary parameters.

Parameters are passed through to the external tool unmodified. Use '--'
to pass parameters that look like flags.

Examples:
  gitmeta checkout master           # Checkout a branch
  gitmeta checkout -- -b feature    # Pass tool flags through
  gitmeta checkout                  # Bare checkout (valid zero-arg call)`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheckout(cmd, dirFlag, args)
		},
	}

	cmd.Flags().StringVarP(&dirFlag, "chdir", "C", ".", "Directory inside the clone to operate on")
	return cmd
}

// runCheckout executes the checkout command.
func runCheckout(cmd *cobra.Command, dir string, params []string) error {
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

	if err := repo.Checkout(cmd.Context(), params); err != nil {
		exitErr := mapBindingError(err)
		printer.Error(exitErr)
		return exitErr
	}

	return printer.Success(map[string]any{"message": "checkout complete"})
}
