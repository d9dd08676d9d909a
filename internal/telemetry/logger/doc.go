// Package logger provides structured logging for prospyr.
//
// It wraps log/slog:
//
//   - logger.go: Logger interface, JSON/text handlers, level control
//   - context.go: logger and request ID propagation through context
//   - redact.go: masking of credentials (access tokens, secrets)
//
// Credentials never reach the output: any attribute whose key looks like a
// secret (token, secret, password, key, auth, credential) is masked before
// the handler sees it.
package logger
