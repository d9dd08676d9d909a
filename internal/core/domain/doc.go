// Package domain defines the error taxonomy shared by the prospyr packages.
//
// Errors carry a stable code so callers can match them with errors.Is
// regardless of the diagnostic details attached at the call site:
//
//   - ErrConfiguration: malformed API URL or unknown connection name
//   - ErrDuplicateConnection: a connection name is already registered
//
// Transport errors from net/http are never translated into domain errors.
package domain
