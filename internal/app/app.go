// Package app assembles the service from its parts: configuration,
// logging, observability, the Sleeper client, the use case services,
// and the MCP HTTP server.
package app

import (
	"context"
	"net/http"
	"time"

	crerr "github.com/cockroachdb/errors"

	"github.com/fantasyops/sleeper-mcp/external/sleeper"
	"github.com/fantasyops/sleeper-mcp/internal/config"
	"github.com/fantasyops/sleeper-mcp/internal/interfaces/mcpapi"
	"github.com/fantasyops/sleeper-mcp/internal/observability"
	"github.com/fantasyops/sleeper-mcp/internal/platform/keepalive"
	"github.com/fantasyops/sleeper-mcp/internal/platform/logging"
	"github.com/fantasyops/sleeper-mcp/internal/platform/resilience"
	"github.com/fantasyops/sleeper-mcp/internal/usecase"
)

const shutdownGrace = 10 * time.Second

// App owns the running server and everything that must be torn down
// with it.
type App struct {
	cfg    config.Config
	logger *logging.Logger

	server    *http.Server
	pinger    *keepalive.Pinger
	pprofSrv  *http.Server
	shutdowns []func(context.Context) error
}

// New builds the full service graph. It starts nothing; call Run.
func New(cfg config.Config, logger *logging.Logger) (*App, error) {
	if cfg.HTTPAddr == "" {
		return nil, crerr.New("http server addr cannot be empty")
	}
	if logger == nil {
		logger = logging.Default()
	}

	a := &App{cfg: cfg, logger: logger}

	uptraceShutdown, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		return nil, crerr.Wrap(err, "init uptrace")
	}
	if uptraceShutdown != nil {
		a.shutdowns = append(a.shutdowns, uptraceShutdown)
	}

	pyroscopeStop, err := observability.InitPyroscope(cfg, logger)
	if err != nil {
		return nil, crerr.Wrap(err, "init pyroscope")
	}
	if pyroscopeStop != nil {
		a.shutdowns = append(a.shutdowns, func(context.Context) error {
			return pyroscopeStop()
		})
	}

	pprofSrv, err := observability.StartPprofServer(cfg, logger)
	if err != nil {
		return nil, crerr.Wrap(err, "start pprof server")
	}
	a.pprofSrv = pprofSrv

	client := sleeper.NewClient(sleeper.ClientConfig{
		BaseURL:           cfg.SleeperBaseURL,
		Timeout:           cfg.SleeperTimeout,
		UserLookupTimeout: cfg.SleeperUserLookupTimeout,
		UserLookupRetries: cfg.SleeperUserLookupRetries,
		Logger:            logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.SleeperCircuitEnabled,
			FailureThreshold: cfg.SleeperCircuitFailureCount,
			OpenTimeout:      cfg.SleeperCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.SleeperCircuitHalfOpenMaxReq,
		},
	})

	states := usecase.NewStateService(client)
	users := usecase.NewUserService(client)
	lineups := usecase.NewLineupService(client, logger)
	weekly := usecase.NewWeeklyLineupService(client, lineups, cfg.AggregatorMaxWorkers, logger)

	mcpServer := mcpapi.NewServer(
		mcpapi.Config{
			ServiceName:        cfg.ServiceName,
			ServiceVersion:     cfg.ServiceVersion,
			Environment:        cfg.AppEnv,
			CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		},
		states,
		users,
		lineups,
		weekly,
		logger,
	)

	a.server = &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      mcpServer.Handler(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if cfg.KeepaliveEnabled {
		a.pinger = keepalive.New(cfg.KeepaliveURL, cfg.KeepaliveInterval, nil, logger)
	}

	return a, nil
}

// Run serves until ctx is cancelled, then shuts everything down in
// reverse construction order.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("http server starting", "addr", a.server.Addr)
		if err := a.server.ListenAndServe(); err != nil && !crerr.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	if a.pinger != nil {
		a.pinger.Start(ctx)
	}

	var serveErr error
	select {
	case <-ctx.Done():
	case serveErr = <-errCh:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()

	if a.pinger != nil {
		a.pinger.Stop()
	}

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("graceful shutdown failed", "error", err)
		if serveErr == nil {
			serveErr = err
		}
	}

	if a.pprofSrv != nil {
		if err := observability.StopPprofServer(a.pprofSrv, a.logger, shutdownGrace); err != nil {
			a.logger.Error("pprof shutdown failed", "error", err)
		}
	}

	for i := len(a.shutdowns) - 1; i >= 0; i-- {
		if err := a.shutdowns[i](shutdownCtx); err != nil {
			a.logger.Error("shutdown hook failed", "error", err)
		}
	}

	a.logger.Info("http server stopped")
	return serveErr
}
