// Package confloader loads layered configuration with koanf.
//
// Sources, later overriding earlier:
//
//  1. Defaults (the pre-filled target struct, or LoadMap)
//  2. YAML configuration file
//  3. Environment variables (PROSPYR_ prefix)
//  4. Flag values passed through LoadMap
//
// Environment variable names nest with a double underscore so keys may
// keep single underscores: PROSPYR_HTTP__CA_FILE sets http.ca_file.
//
// Watcher reports writes to a configuration file via fsnotify.
package confloader
