// Package meta provides git meta operations via exec for the gitmeta CLI.
//
// The package is a thin binding over the external git-meta binary: it
// resolves the executable from PATH, spawns it with a constructed argument
// vector and working directory, captures both output streams, and maps the
// exit code into a typed failure. It performs no retries, no logging, and
// touches the filesystem only for the two existence checks the binding
// itself owns (the candidate directory and the submodule .git marker).
//
// Failures are typed values matched with errors.As:
//
//   - *PathNotFoundError: a supplied directory does not exist (no process
//     is spawned)
//   - *CloneNotFoundError: the directory exists but is not inside a clone
//   - *CommandError: the tool ran and exited non-zero
//   - *LaunchError: the binary could not be found or started at all
package meta
