// Package main provides the entry point for prospyr-cli.
//
// prospyr-cli manages named connections to the ProsperWorks developer API
// and sends requests through them:
//
//	prospyr-cli connections list
//	prospyr-cli url people/42
//	prospyr-cli -n sandbox request POST people/search -d '{"page_size":5}'
//	prospyr-cli watch --metrics-addr :9464
//
// Connections are read from ~/.prospyr/cli.yaml (override with --config)
// and PROSPYR_* environment variables.
package main
