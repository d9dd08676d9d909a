package connection

import (
	"net/http"

	"github.com/yndnr/prospyr-go/internal/config"
	"github.com/yndnr/prospyr-go/internal/telemetry/logger"
	"github.com/yndnr/prospyr-go/internal/telemetry/metric"
)

// ConnectOption configures a single Registry.Connect call.
type ConnectOption func(*connectOptions)

type connectOptions struct {
	url     string
	name    string
	version string
}

func defaultConnectOptions() connectOptions {
	return connectOptions{
		url:     config.DefaultURL,
		name:    config.DefaultConnectionName,
		version: config.DefaultVersion,
	}
}

// WithURL sets the base URL. It must not contain a version segment.
func WithURL(rawURL string) ConnectOption {
	return func(o *connectOptions) {
		if rawURL != "" {
			o.url = rawURL
		}
	}
}

// WithName registers the connection under name instead of "default".
func WithName(name string) ConnectOption {
	return func(o *connectOptions) {
		if name != "" {
			o.name = name
		}
	}
}

// WithVersion sets the API version segment appended to the base URL.
func WithVersion(version string) ConnectOption {
	return func(o *connectOptions) {
		if version != "" {
			o.version = version
		}
	}
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithHTTPClient sets the client shared by all sessions of the registry.
func WithHTTPClient(client *http.Client) RegistryOption {
	return func(r *Registry) {
		if client != nil {
			r.client = client
		}
	}
}

// WithLogger sets the registry logger.
func WithLogger(l logger.Logger) RegistryOption {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithMetrics records registry and request metrics into m.
func WithMetrics(m *metric.Registry) RegistryOption {
	return func(r *Registry) {
		r.metrics = m
	}
}
