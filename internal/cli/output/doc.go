// Package output renders prospyr-cli results.
//
//   - formatter.go: Formatter interface and factory
//   - table.go: aligned columns for terminals
//   - json.go, yaml.go: machine-readable output for scripting
//
// Structs are rendered using their json tag names; fields tagged
// `table:"-"` are left out of tables.
package output
