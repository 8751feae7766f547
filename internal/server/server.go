package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	appbracket "nfl-picks-service/internal/app/bracket"
	apppicks "nfl-picks-service/internal/app/picks"
	"nfl-picks-service/internal/app/schedule"
	"nfl-picks-service/internal/config"
	"nfl-picks-service/internal/domain/teams"
	httpserver "nfl-picks-service/internal/http"
	"nfl-picks-service/internal/http/handlers"
	"nfl-picks-service/internal/http/middleware"
	"nfl-picks-service/internal/logging"
	"nfl-picks-service/internal/metrics"
	"nfl-picks-service/internal/providers"
	"nfl-picks-service/internal/store"
	"nfl-picks-service/internal/timeutil"
)

var metricsSetup = metrics.Setup

// openStore stays a var so tests can avoid touching disk.
var openStore = func(ctx context.Context, pool config.PoolConfig) (store.Store, error) {
	if pool.InMemory() {
		return store.NewMemoryStore(), nil
	}
	return store.Open(ctx, pool.DatabaseURL)
}

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	store         store.Store
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
}

// New constructs a server with the configured provider and store.
func New(cfg config.Config, logger *slog.Logger) (*Server, error) {
	return newServerWithMetrics(cfg, logger, nil, nil)
}

func newServerWithProvider(cfg config.Config, logger *slog.Logger, provider providers.ScheduleProvider) (*Server, error) {
	return newServerWithMetrics(cfg, logger, provider, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, provider providers.ScheduleProvider, recorder *metrics.Recorder) (*Server, error) {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	st, err := openStore(context.Background(), cfg.Pool)
	if err != nil {
		if metricsShutdown != nil {
			_ = metricsShutdown(context.Background())
		}
		return nil, fmt.Errorf("server: open store: %w", err)
	}

	dir := teams.NewDirectory()
	factory := newProviderFactory(logger, recorder, dir)
	if provider == nil {
		provider = factory.build(cfg)
	} else {
		provider = factory.wrap(cfg, provider)
	}

	httpSrv := buildHTTPServer(cfg, st, dir, provider, logger, recorder)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		store:         st,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
	}, nil
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, st store.Store, httpSrv httpServer) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		store:      st,
		httpServer: httpSrv,
	}
}

func buildHTTPServer(cfg config.Config, st store.Store, dir *teams.Directory, provider providers.ScheduleProvider, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}

	sched := schedule.NewService(provider)
	picksSvc := apppicks.NewService(st, sched, recorder, logger)
	bracketSvc := appbracket.NewService(st, dir, recorder, logger)
	handler := handlers.NewHandler(picksSvc, bracketSvc, displayLocation(cfg.Pool.DisplayTimezone, logger), logger)

	var admin *handlers.AdminHandler
	if cfg.AdminToken != "" {
		admin = handlers.NewAdminHandler(st, dir, cfg.Pool.PicksURL, cfg.AdminToken, logger)
	}

	router := httpserver.NewRouter(handler, admin)
	wrapped := middleware.LoggingMiddleware(logger, recorder, router)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// displayLocation resolves the zone kickoffs are shown in.
func displayLocation(name string, logger *slog.Logger) *time.Location {
	loc := timeutil.ResolveLocation(name)
	if name != "" && loc.String() != name {
		logging.Warn(logger, "unknown display timezone, using UTC", slog.String("timezone", name))
	}
	return loc
}

// Run starts the HTTP server, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	logging.Info(s.logger, "http server starting", slog.String("addr", s.httpServer.Addr()))
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
	logging.Info(s.logger, "metrics server starting", slog.String("addr", s.metricsServer.Addr()))
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", "error", err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	// The store closes last so in-flight submissions can finish.
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			logging.Error(s.logger, "failed to close store", err)
		}
	}

	logging.Info(s.logger, "shutdown complete")
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "err", err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:              ":" + recCfg.Port,
				Handler:           handler,
				ReadHeaderTimeout: readTimeout,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Warn(logger, name+" server failed", "error", err)
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
