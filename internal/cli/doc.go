// Package cli implements the mathkit command line: one subcommand per
// arithmetic operation plus commands to list and call catalog tools.
//
// Results go to stdout in text or JSON form; logs go to stderr through the
// slog observer. Failures are returned as [*ExitError] so the entry point
// can pick the process exit code.
package cli
