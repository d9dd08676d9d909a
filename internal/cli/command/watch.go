package command

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/prospyr-go/internal/config"
	"github.com/yndnr/prospyr-go/internal/infra/confloader"
	"github.com/yndnr/prospyr-go/internal/infra/shutdown"
	"github.com/yndnr/prospyr-go/internal/telemetry/logger"
)

// WatchCommand returns the watch command.
func WatchCommand() *cli.Command {
	return &cli.Command{
		Name:  "watch",
		Usage: "Register connections as they are added to the config file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "metrics-addr",
				Usage: "Serve Prometheus metrics on this address (e.g. :9464)",
			},
			&cli.DurationFlag{
				Name:  "shutdown-timeout",
				Usage: "Time allowed for cleanup after SIGINT/SIGTERM",
				Value: 5 * time.Second,
			},
		},
		Action: watchAction,
	}
}

func watchAction(c *cli.Context) error {
	s, err := state(c)
	if err != nil {
		return err
	}

	// Reload callbacks and the initial load both write to c.App.Writer.
	var mu sync.Mutex
	register := func(cfg *config.Config) {
		added, err := s.registry.ConnectProfiles(cfg.Connections)
		mu.Lock()
		defer mu.Unlock()
		for _, name := range added {
			fmt.Fprintf(c.App.Writer, "connected %s\n", name)
		}
		if err != nil {
			s.log.Error("connections not registered", "error", err)
		}
	}
	register(s.cfg)

	w, err := confloader.NewWatcher(confloader.WithWatcherLogger(s.log))
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	if err := w.Watch(s.configPath); err != nil {
		_ = w.Stop()
		return fmt.Errorf("watch %s: %w", s.configPath, err)
	}
	w.OnChange(func(string) {
		cfg, err := config.Load(s.configPath, s.overrides)
		if err != nil {
			s.log.Error("config reload failed", "error", err)
			return
		}
		logger.SetLevel(cfg.Log.Level)
		s.log.Info("config reloaded", "path", s.configPath, "log_level", logger.GetLevel())
		register(cfg)
	})
	w.StartAsync()

	h := shutdown.NewHandler(c.Duration("shutdown-timeout"))
	h.OnShutdown("config watcher", func(context.Context) error {
		return w.Stop()
	})

	if addr := c.String("metrics-addr"); addr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", s.metrics.Handler())
		srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				s.log.Error("metrics server failed", "addr", addr, "error", err)
			}
		}()
		h.OnShutdown("metrics server", srv.Shutdown)
		s.log.Info("serving metrics", "addr", addr)
	}

	mu.Lock()
	fmt.Fprintf(c.App.Writer, "watching %s\n", s.configPath)
	mu.Unlock()

	return h.Wait(c.Context)
}
