package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/fantasydata-client/internal/config"
	"github.com/preston-bernstein/fantasydata-client/internal/fantasydata"
	"github.com/preston-bernstein/fantasydata-client/internal/fixtures"
	httpserver "github.com/preston-bernstein/fantasydata-client/internal/http"
	"github.com/preston-bernstein/fantasydata-client/internal/http/handlers"
	"github.com/preston-bernstein/fantasydata-client/internal/http/middleware"
	"github.com/preston-bernstein/fantasydata-client/internal/logging"
	"github.com/preston-bernstein/fantasydata-client/internal/metrics"
	"github.com/preston-bernstein/fantasydata-client/internal/providers"
	"github.com/preston-bernstein/fantasydata-client/internal/watcher"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	provider      providers.StandingsProvider
	watcher       *watcher.Watcher
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
}

// New constructs a server with the configured provider wrapped in retries.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithMetrics(cfg, logger, nil, nil)
}

func newServerWithProvider(cfg config.Config, logger *slog.Logger, provider providers.StandingsProvider) *Server {
	return newServerWithMetrics(cfg, logger, provider, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, provider providers.StandingsProvider, recorder *metrics.Recorder) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	if provider == nil {
		provider, _ = newProviderFactory(logger, recorder).build(cfg)
	} else {
		provider = providers.NewRetryingProvider(provider, logger, recorder, normalizeProviderName(cfg.Provider), cfg.Retry.Attempts, cfg.Retry.Backoff)
	}
	var watch *watcher.Watcher
	if cfg.Watch.Enabled() {
		watch = watcher.New(provider, cfg.Watch.Seasons, cfg.FantasyData.ExpectedTeams, logger, recorder, cfg.Watch.Interval)
	}
	httpSrv := buildHTTPServer(cfg, logger, provider, watch, recorder)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		provider:      provider,
		watcher:       watch,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer, metricsSrv httpServer) *Server {
	return &Server{
		cfg:           cfg,
		logger:        logger,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
	}
}

func buildHTTPServer(cfg config.Config, logger *slog.Logger, provider providers.StandingsProvider, watch *watcher.Watcher, recorder *metrics.Recorder) httpServer {
	handler := handlers.NewHandler(provider, cfg.FantasyData.ExpectedTeams, logger)

	var admin *handlers.AdminHandler
	// Recordings always come from the live service, whatever PROVIDER selects.
	if cfg.AdminToken != "" {
		live := fantasydata.NewClient(ClientConfig(cfg, logger))
		admin = handlers.NewAdminHandler(fixtures.NewWriter(cfg.Fixtures.RecordDir()), live, cfg.AdminToken, logger)
	}
	var watchHandler *handlers.WatchHandler
	if watch != nil {
		watchHandler = handlers.NewWatchHandler(watch, logger)
	}
	router := httpserver.NewRouter(handler, admin, watchHandler)
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	wrapped := middleware.LoggingMiddleware(logger, recorder, router)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           wrapped,
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the HTTP servers, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	if s.watcher != nil {
		s.watcher.Start(ctx)
	}

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	timeout := s.cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = shutdownTimeout
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if s.watcher != nil {
		_ = s.watcher.Stop(shutdownCtx)
	}

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", slog.Any(logging.FieldError, err))
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", slog.Any(logging.FieldError, err))
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	logging.Info(s.logger, "shutdown complete")
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:        cfg.Metrics.Enabled,
		Port:           cfg.Metrics.Port,
		ServiceName:    cfg.Metrics.ServiceName,
		ServiceVersion: cfg.Metrics.ServiceVersion,
		OtlpEndpoint:   cfg.Metrics.OtlpEndpoint,
		OtlpInsecure:   cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", slog.Any(logging.FieldError, err))
		return metrics.NewRecorder(), nil, nil
	}
	if cfg.Metrics.PushEnabled() {
		logging.Info(logger, "pushing metrics over otlp", slog.String("endpoint", cfg.Metrics.OtlpEndpoint))
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		mux := http.NewServeMux()
		mux.Handle("/metrics", handler)
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:              ":" + recCfg.Port,
				Handler:           mux,
				ReadHeaderTimeout: readHeaderTimeout,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		logging.Info(logger, "starting "+name+" server", slog.String("addr", srv.Addr()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Warn(logger, name+" server failed", slog.Any(logging.FieldError, err))
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
