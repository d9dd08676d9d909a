package connection

import (
	"net/http"
	"net/url"
	"sort"

	"github.com/yndnr/prospyr-go/internal/apiurl"
	"github.com/yndnr/prospyr-go/internal/config"
	"github.com/yndnr/prospyr-go/internal/core/domain"
	"github.com/yndnr/prospyr-go/internal/telemetry/logger"
	"github.com/yndnr/prospyr-go/internal/telemetry/metric"
	"github.com/yndnr/prospyr-go/pkg/cmap"
)

// Registry maps connection names to connections. It is safe for
// concurrent use; when two callers connect under the same name, the
// first wins and the other gets domain.ErrDuplicateConnection.
type Registry struct {
	conns   *cmap.Map[*Connection]
	client  *http.Client
	logger  logger.Logger
	metrics *metric.Registry
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		conns:  cmap.New[*Connection](),
		client: &http.Client{},
		logger: logger.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}

	if r.metrics != nil {
		instrumented := *r.client
		instrumented.Transport = r.metrics.InstrumentRoundTripper(r.client.Transport)
		r.client = &instrumented

		if err := r.metrics.TrackConnections(r.Len); err != nil {
			r.logger.Warn("connection gauge not registered", "error", err)
		}
	}

	return r
}

// Connect registers a connection for email and token.
//
// The name defaults to "default", the URL to config.DefaultURL and the
// version to "v1". Connecting under a name already in use fails and
// leaves the existing connection untouched; an invalid URL fails with
// domain.ErrConfiguration.
func (r *Registry) Connect(email, token string, opts ...ConnectOption) (*Connection, error) {
	o := defaultConnectOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if existing, ok := r.conns.Get(o.name); ok {
		return nil, r.duplicate(o.name, existing)
	}

	if err := apiurl.Validate(o.url); err != nil {
		r.countError(metric.ErrorKindInvalidURL)
		return nil, err
	}
	base, err := url.Parse(o.url)
	if err != nil {
		r.countError(metric.ErrorKindInvalidURL)
		return nil, domain.ErrConfiguration.WithDetailsf("API URL `%s` cannot be parsed", o.url).WithCause(err)
	}

	session := newSession(r.client, authHeaders(email, token), r.logger.With("connection", o.name))
	conn := newConnection(email, base, o.version, session)

	if existing, loaded := r.conns.GetOrSet(o.name, conn); loaded {
		return nil, r.duplicate(o.name, existing)
	}

	r.logger.Info("connection registered",
		"name", o.name,
		"email", email,
		"api_url", conn.apiURL.String(),
	)
	return conn, nil
}

func (r *Registry) duplicate(name string, existing *Connection) error {
	r.countError(metric.ErrorKindDuplicate)
	r.logger.Warn("connection name already in use", "name", name, "email", existing.Email())
	return domain.ErrDuplicateConnection.WithDetailsf(
		"`%s` is already connected using account %q", name, existing.Email())
}

// Get returns the connection registered under name; an empty name means
// "default".
func (r *Registry) Get(name string) (*Connection, error) {
	if name == "" {
		name = config.DefaultConnectionName
	}

	if conn, ok := r.conns.Get(name); ok {
		return conn, nil
	}

	r.countError(metric.ErrorKindNotFound)
	r.logger.Warn("connection not found", "name", name)

	if name == config.DefaultConnectionName {
		return nil, domain.ErrConfiguration.WithDetails(
			"there is no default connection; first call Connect(email, token)")
	}
	return nil, domain.ErrConfiguration.WithDetailsf(
		"there is no connection named %q; first call Connect(email, token, WithName(%q))", name, name)
}

// Default returns the connection registered as "default".
func (r *Registry) Default() (*Connection, error) {
	return r.Get(config.DefaultConnectionName)
}

// Names returns the registered connection names, sorted.
func (r *Registry) Names() []string {
	names := r.conns.Keys()
	sort.Strings(names)
	return names
}

// Len returns the number of registered connections.
func (r *Registry) Len() int {
	return r.conns.Count()
}

// Reset removes every connection and closes idle HTTP connections.
func (r *Registry) Reset() {
	r.conns.Clear()
	r.client.CloseIdleConnections()
	r.logger.Debug("registry reset")
}

func (r *Registry) countError(kind string) {
	if r.metrics != nil {
		r.metrics.RegistryErrors.WithLabelValues(kind).Inc()
	}
}
