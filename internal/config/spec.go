package config

import "time"

// Defaults for connection profiles.
const (
	DefaultURL            = "https://api.prosperworks.com/developer_api/"
	DefaultVersion        = "v1"
	DefaultConnectionName = "default"
)

// Config is the configuration for prospyr-cli.
type Config struct {
	Log    LogConfig  `koanf:"log"`
	HTTP   HTTPConfig `koanf:"http"`
	Output string     `koanf:"output"` // table, json, yaml

	// Connections maps a connection name to its profile.
	Connections map[string]Profile `koanf:"connections"`
}

// LogConfig configures the logger.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// HTTPConfig configures the HTTP client shared by all connections.
type HTTPConfig struct {
	Timeout time.Duration `koanf:"timeout"`
	// CAFile is an optional PEM bundle trusted in addition to system roots.
	CAFile string `koanf:"ca_file"`
}

// Profile stores the details of one named connection.
type Profile struct {
	Email   string `koanf:"email" json:"email" yaml:"email"`
	Token   string `koanf:"token" json:"-" yaml:"-"`
	URL     string `koanf:"url" json:"url,omitempty" yaml:"url,omitempty"`
	Version string `koanf:"version" json:"version,omitempty" yaml:"version,omitempty"`
}

// BaseURL returns the profile URL, or DefaultURL when unset.
func (p Profile) BaseURL() string {
	if p.URL == "" {
		return DefaultURL
	}
	return p.URL
}

// APIVersion returns the profile version, or DefaultVersion when unset.
func (p Profile) APIVersion() string {
	if p.Version == "" {
		return DefaultVersion
	}
	return p.Version
}

// Default returns the default CLI configuration.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
		HTTP: HTTPConfig{
			Timeout: 30 * time.Second,
		},
		Output:      "table",
		Connections: make(map[string]Profile),
	}
}
