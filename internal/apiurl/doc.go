// Package apiurl validates and joins ProsperWorks API URLs.
//
// This package contains the pure URL logic used by connections:
//
//   - validate.go: base URL shape checks (scheme, hostname, no version segment)
//   - join.go: path joining with reset-on-absolute semantics
//
// Joining follows filesystem path rules adapted for URLs: a segment that
// begins with "/" replaces the path, anything else is appended. Segments are
// accepted either raw or percent-encoded and the result is re-encoded, so an
// encoded "%2F" inside a segment survives the join.
package apiurl
