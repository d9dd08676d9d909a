// Package connection manages named, authenticated connections to the
// ProsperWorks developer API.
//
//   - registry.go: Registry, the name → Connection mapping (Connect, Get)
//   - connection.go: Connection, URL resolution and HTTP verb methods
//   - session.go: Session, an http.Client plus persistent identity headers
//   - headers.go: header names sent on every request
//   - profiles.go: registering connections from configuration profiles
//
// A Connection is built once by Registry.Connect and never changes: its API
// URL is the base URL with the version segment appended at construction.
// Names are never reused; connecting twice under one name fails with
// domain.ErrDuplicateConnection and leaves the first connection in place.
//
// Usage:
//
//	reg := connection.NewRegistry()
//	conn, err := reg.Connect("me@example.com", token)
//	...
//	resp, err := conn.Get(ctx, conn.BuildAbsoluteURL("people/42").String())
//
// Responses and transport errors are returned exactly as net/http produces
// them; this package neither retries nor decodes bodies.
package connection
