// Package repl implements the interactive shell of prospyr-cli.
//
//   - repl.go: read-eval-print loop and argument splitting
//   - completer.go: prefix completion of command names ("conn?")
//   - history.go: command history persisted between shells
//
// The loop itself knows nothing about commands: each line is split into
// arguments and handed to an Executor.
package repl
