package server

import (
	"context"
	"log/slog"
	"net/http"

	apppokemon "pokedex-service/internal/app/pokemon"
	"pokedex-service/internal/app/teams"
	"pokedex-service/internal/config"
	httpserver "pokedex-service/internal/http"
	"pokedex-service/internal/http/handlers"
	"pokedex-service/internal/http/middleware"
	"pokedex-service/internal/logging"
	"pokedex-service/internal/mcp"
	"pokedex-service/internal/metrics"
	"pokedex-service/internal/providers"
	"pokedex-service/internal/store"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg            config.Config
	logger         *slog.Logger
	metrics        *metrics.Recorder
	store          *store.TeamStore
	pokemonService *apppokemon.Service
	teamsService   *teams.Service
	httpServer     httpServer
	metricsServer  httpServer
	metricsStop    func(context.Context) error
}

// New constructs a server with the configured provider and telemetry.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithMetrics(cfg, logger, nil, nil)
}

// newServerWithFetcher wires a caller-supplied base fetcher; the shared decorators are still applied.
func newServerWithFetcher(cfg config.Config, logger *slog.Logger, fetcher providers.Fetcher) *Server {
	return newServerWithMetrics(cfg, logger, fetcher, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, base providers.Fetcher, recorder *metrics.Recorder) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	factory := newFetcherFactory(logger, recorder)
	var fetcher providers.Fetcher
	if base == nil {
		fetcher = factory.build(cfg)
	} else {
		fetcher = factory.wrap(cfg, base)
	}

	teamStore, pokemonSvc, teamSvc := buildServices(cfg, fetcher, logger, recorder)
	httpSrv := buildHTTPServer(cfg, pokemonSvc, teamSvc, logger, recorder)

	return &Server{
		cfg:            cfg,
		logger:         logger,
		metrics:        recorder,
		store:          teamStore,
		pokemonService: pokemonSvc,
		teamsService:   teamSvc,
		httpServer:     httpSrv,
		metricsServer:  metricsSrv,
		metricsStop:    metricsShutdown,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpSrv,
	}
}

func buildServices(cfg config.Config, fetcher providers.Fetcher, logger *slog.Logger, recorder *metrics.Recorder) (*store.TeamStore, *apppokemon.Service, *teams.Service) {
	teamStore := store.NewTeamStore()
	pokemonSvc := apppokemon.NewService(fetcher, apppokemon.Options{
		Logger:         logger,
		Metrics:        recorder,
		RegionMaxLimit: cfg.RegionMaxLimit,
	})
	return teamStore, pokemonSvc, teams.NewService(teamStore, pokemonSvc, logger, recorder)
}

func buildHTTPServer(cfg config.Config, pokemonSvc *apppokemon.Service, teamSvc *teams.Service, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	handler := handlers.NewHandler(pokemonSvc, teamSvc, logger)

	var mcpHandler http.Handler
	if cfg.MCPEnabled {
		mcpHandler = mcp.NewHandler(mcp.NewServer(pokemonSvc, teamSvc, logger, ""))
	}
	router := httpserver.NewRouter(handler, mcpHandler)

	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	wrapped := middleware.LoggingMiddleware(logger, recorder, router)

	port := cfg.Port
	if port == "" {
		port = "8000"
	}
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the HTTP servers, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	if s.logger != nil {
		s.logger.Info("http server starting",
			slog.String("addr", s.httpServer.Addr()),
			slog.String(logging.FieldProvider, s.cfg.Provider),
			slog.Bool("mcp", s.cfg.MCPEnabled),
		)
	}
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
	if s.logger != nil {
		s.logger.Info("metrics server starting", slog.String("addr", s.metricsServer.Addr()))
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	// Flush exporters last so requests drained above are still counted.
	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
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
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "err", err)
		}
		return metrics.NewRecorder(), nil, nil
	}
	if rec == nil {
		rec = metrics.NewRecorder()
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
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
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
