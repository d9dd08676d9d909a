// Package command defines the prospyr-cli commands using urfave/cli/v2.
//
//   - root.go: App, global flags, shared state built in Before
//   - connections.go: listing and validating configured connections
//   - url.go: resolving API paths
//   - request.go: issuing a single API request
//   - watch.go: registering connections as the config file changes
//   - shell.go: interactive mode sharing one registry across lines
//   - version.go: build information
//
// Every command reads its connections from the configuration file and
// PROSPYR_* environment variables; --email/--token define a connection
// on the command line instead.
package command
