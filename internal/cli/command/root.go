package command

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/prospyr-go/internal/cli/output"
	"github.com/yndnr/prospyr-go/internal/config"
	"github.com/yndnr/prospyr-go/internal/connection"
	"github.com/yndnr/prospyr-go/internal/core/domain"
	"github.com/yndnr/prospyr-go/internal/infra/buildinfo"
	"github.com/yndnr/prospyr-go/internal/infra/tlsroots"
	"github.com/yndnr/prospyr-go/internal/telemetry/logger"
	"github.com/yndnr/prospyr-go/internal/telemetry/metric"
)

const stateKey = "prospyr"

// App creates the CLI application.
//
// Errors returned by Run are not printed or turned into exit codes here;
// main does that, so tests can run the App in-process.
func App() *cli.App {
	return &cli.App{
		Name:    "prospyr-cli",
		Usage:   "ProsperWorks developer API client",
		Version: buildinfo.String(),
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			ConnectionsCommand(),
			URLCommand(),
			RequestCommand(),
			WatchCommand(),
			ShellCommand(),
			VersionCommand(),
		},
		Before:                    before,
		ExitErrHandler:            func(*cli.Context, error) {},
		DisableSliceFlagSeparator: true,
	}
}

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Configuration file (default ~/.prospyr/cli.yaml)",
			EnvVars: []string{"PROSPYR_CONFIG"},
		},
		&cli.StringFlag{
			Name:    "connection",
			Aliases: []string{"n"},
			Usage:   "Connection name",
			EnvVars: []string{"PROSPYR_CONNECTION"},
			Value:   config.DefaultConnectionName,
		},
		&cli.StringFlag{
			Name:    "email",
			Usage:   "Account email; with --token, defines the selected connection",
			EnvVars: []string{"PROSPYR_EMAIL"},
		},
		&cli.StringFlag{
			Name:    "token",
			Usage:   "API access token",
			EnvVars: []string{"PROSPYR_TOKEN"},
		},
		&cli.StringFlag{
			Name:    "url",
			Usage:   "Base API URL for --email/--token",
			EnvVars: []string{"PROSPYR_URL"},
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format: table, json, yaml",
			EnvVars: []string{"PROSPYR_OUTPUT"},
		},
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "Log level: debug, info, warn, error",
			EnvVars: []string{"PROSPYR_LOG_LEVEL"},
		},
	}
}

// appState is built once per invocation and shared by all commands.
type appState struct {
	configPath string
	overrides  map[string]any
	cfg        *config.Config
	format     output.Format
	log        logger.Logger
	metrics    *metric.Registry
	registry   *connection.Registry
}

func before(c *cli.Context) error {
	// Shell lines run with the shell's state.
	if _, ok := c.App.Metadata[stateKey].(*appState); ok {
		return nil
	}

	path := c.String("config")
	if path == "" {
		path = config.DefaultConfigPath()
	}

	overrides := flagOverrides(c)
	cfg, err := config.Load(path, overrides)
	if err != nil {
		return err
	}

	format, err := output.ParseFormat(cfg.Output)
	if err != nil {
		return err
	}

	log := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: c.App.ErrWriter,
	})
	logger.SetDefault(log)

	client, err := newHTTPClient(cfg.HTTP)
	if err != nil {
		return err
	}

	metrics := metric.NewRegistry()
	registry := connection.NewRegistry(
		connection.WithHTTPClient(client),
		connection.WithLogger(log),
		connection.WithMetrics(metrics),
	)

	if c.App.Metadata == nil {
		c.App.Metadata = make(map[string]any)
	}
	c.App.Metadata[stateKey] = &appState{
		configPath: path,
		overrides:  overrides,
		cfg:        cfg,
		format:     format,
		log:        log,
		metrics:    metrics,
		registry:   registry,
	}
	return nil
}

// flagOverrides maps explicitly set flags onto configuration keys.
func flagOverrides(c *cli.Context) map[string]any {
	overrides := make(map[string]any)
	if c.IsSet("output") {
		overrides["output"] = c.String("output")
	}
	if c.IsSet("log-level") {
		overrides["log.level"] = c.String("log-level")
	}
	return overrides
}

func newHTTPClient(cfg config.HTTPConfig) (*http.Client, error) {
	tlsConfig, err := tlsroots.ClientTLSConfig(cfg.CAFile)
	if err != nil {
		return nil, err
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if tlsConfig != nil {
		transport.TLSClientConfig = tlsConfig
	}
	return &http.Client{
		Timeout:   cfg.Timeout,
		Transport: transport,
	}, nil
}

func state(c *cli.Context) (*appState, error) {
	if s, ok := c.App.Metadata[stateKey].(*appState); ok {
		return s, nil
	}
	return nil, errors.New("cli state not initialized")
}

// selected returns the connection chosen by --connection, registering
// the command-line credentials and configured profiles first.
func (s *appState) selected(c *cli.Context) (*connection.Connection, error) {
	name := c.String("connection")

	if email, token := c.String("email"), c.String("token"); email != "" || token != "" {
		if email == "" || token == "" {
			return nil, fmt.Errorf("--email and --token must be given together")
		}
		if err := s.connectFlags(name, email, token, c.String("url")); err != nil {
			return nil, err
		}
	}

	_, loadErr := s.registry.ConnectProfiles(s.cfg.Connections)

	conn, err := s.registry.Get(name)
	if err != nil {
		return nil, errors.Join(err, loadErr)
	}
	if loadErr != nil {
		s.log.Warn("some connections could not be registered", "error", loadErr)
	}
	return conn, nil
}

// connectFlags registers the command-line credentials under name. A shell
// repeats them on every line, so a connection already registered for the
// same email is reused; a different email under that name is an error.
func (s *appState) connectFlags(name, email, token, rawURL string) error {
	if existing, err := s.registry.Get(name); err == nil {
		if existing.Email() != email {
			return fmt.Errorf("connection %q is already registered for %q, not %q: %w",
				name, existing.Email(), email, domain.ErrDuplicateConnection)
		}
		return nil
	}

	_, err := s.registry.Connect(email, token,
		connection.WithName(name),
		connection.WithURL(rawURL),
	)
	if domain.IsDuplicateConnection(err) {
		// Another caller registered the name between Get and Connect.
		return s.connectFlags(name, email, token, rawURL)
	}
	return err
}

func (s *appState) print(c *cli.Context, data any) error {
	return output.NewFormatter(s.format).Format(c.App.Writer, data)
}
