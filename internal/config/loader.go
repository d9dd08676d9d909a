package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/yndnr/prospyr-go/internal/apiurl"
	"github.com/yndnr/prospyr-go/internal/core/domain"
	"github.com/yndnr/prospyr-go/internal/infra/confloader"
)

// DefaultConfigPath returns the default CLI config file path.
func DefaultConfigPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".prospyr", "cli.yaml")
}

// Load reads the configuration from path (DefaultConfigPath when empty) and
// PROSPYR_* environment variables, on top of Default. A missing file is not
// an error; overrides are applied last.
func Load(path string, overrides map[string]any) (*Config, error) {
	if path == "" {
		path = DefaultConfigPath()
	}

	opts := []confloader.Option{confloader.WithOverrides(overrides)}
	if _, err := os.Stat(path); err == nil {
		opts = append(opts, confloader.WithConfigFile(path))
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("stat config %s: %w", path, err)
	}

	cfg := Default()
	if err := confloader.NewLoader(opts...).Load(cfg); err != nil {
		return nil, err
	}

	if cfg.Connections == nil {
		cfg.Connections = make(map[string]Profile)
	}
	return cfg, nil
}

// ProfileNames returns the configured connection names, sorted.
func (c *Config) ProfileNames() []string {
	names := make([]string, 0, len(c.Connections))
	for name := range c.Connections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks the output format and every profile, returning all
// problems joined together.
func (c *Config) Validate() error {
	var errs []error

	switch c.Output {
	case "table", "json", "yaml":
	default:
		errs = append(errs, domain.ErrConfiguration.WithDetailsf("unknown output format %q", c.Output))
	}

	if c.HTTP.Timeout < 0 {
		errs = append(errs, domain.ErrConfiguration.WithDetails("http.timeout must not be negative"))
	}

	for _, name := range c.ProfileNames() {
		if err := c.Connections[name].Validate(); err != nil {
			errs = append(errs, fmt.Errorf("connection %q: %w", name, err))
		}
	}

	return errors.Join(errs...)
}

// Validate checks that the profile has credentials and a usable base URL.
func (p Profile) Validate() error {
	if p.Email == "" || p.Token == "" {
		return domain.ErrMissingCredentials.WithDetails("email and token are required")
	}
	return apiurl.Validate(p.BaseURL())
}
