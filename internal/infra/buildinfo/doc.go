// Package buildinfo exposes version information for prospyr-cli.
//
// Release builds inject values through ldflags:
//
//	go build -ldflags "-X github.com/yndnr/prospyr-go/internal/infra/buildinfo.Version=v1.0.0"
//
// Values left unset fall back to what the Go toolchain embedded in the
// binary (module version, VCS revision and time).
package buildinfo
