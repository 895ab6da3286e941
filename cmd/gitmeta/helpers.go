// Package main provides the entry point for the gitmeta CLI.
package main

import (
	"errors"

	"github.com/gorewood/gitmeta/internal/config"
	"github.com/gorewood/gitmeta/internal/meta"
	"github.com/gorewood/gitmeta/internal/output"
)

// toolRunner builds the runner used by all commands: binary name from
// GITMETA_BIN, then the config file, then the built-in default.
func toolRunner() (*meta.ExecRunner, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, output.NewUserErrorWithCause("invalid config file", err)
	}
	return meta.NewRunner(config.ResolveBinary(cfg)), nil
}

// mapBindingError translates a binding failure into an ExitError.
//
// Path and clone failures are user errors: the caller pointed the tool at
// the wrong directory. Launch and command failures are system errors: the
// external tool itself is missing or misbehaved.
func mapBindingError(err error) *output.ExitError {
	var pathErr *meta.PathNotFoundError
	if errors.As(err, &pathErr) {
		return output.NewUserErrorWithCause(pathErr.Error(), err)
	}

	var cloneErr *meta.CloneNotFoundError
	if errors.As(err, &cloneErr) {
		return output.NewUserErrorWithCause(cloneErr.Error(), err)
	}

	var launchErr *meta.LaunchError
	if errors.As(err, &launchErr) {
		return output.NewSystemErrorWithCause(
			"git-meta not found: ensure git-meta is installed and in PATH", err)
	}

	var cmdErr *meta.CommandError
	if errors.As(err, &cmdErr) {
		return output.NewSystemErrorWithCause(cmdErr.Error(), err)
	}

	return output.NewSystemErrorWithCause(err.Error(), err)
}
