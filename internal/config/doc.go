// Package config defines the prospyr-cli configuration (~/.prospyr/cli.yaml).
//
//   - spec.go: Config, Profile and defaults
//   - loader.go: loading through confloader and validation
//
// A profile names one ProsperWorks account: the email and access token used
// for the identity headers, plus an optional base URL and API version.
package config
