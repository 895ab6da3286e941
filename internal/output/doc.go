// Package output provides structured output handling for the gitmeta CLI.
//
// The Printer is the primary interface for command output. It handles
// format switching between human-readable and JSON output based on the
// --json flag and TTY detection:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonFlag, output.IsTTY(cmd.OutOrStdout()))
//
// Errors carry exit codes through *ExitError so main can translate any
// command failure into the right process exit status.
package output
