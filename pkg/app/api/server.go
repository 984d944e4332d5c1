// Package api implements app.Runner for the API server process.
package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	apphttp "github.com/harmonixfi/harmonix-api/pkg/app/http"
	"github.com/harmonixfi/harmonix-api/pkg/auth"
	"github.com/harmonixfi/harmonix-api/pkg/config"
	configservice "github.com/harmonixfi/harmonix-api/pkg/configs/service"
	"github.com/harmonixfi/harmonix-api/pkg/pendle"
	pendleservice "github.com/harmonixfi/harmonix-api/pkg/pendle/service"
	"github.com/harmonixfi/harmonix-api/pkg/pgutil"
	portfolioservice "github.com/harmonixfi/harmonix-api/pkg/portfolio/service"
	vaultservice "github.com/harmonixfi/harmonix-api/pkg/vault/service"
	"github.com/harmonixfi/harmonix-api/pkg/yieldstore"
)

// Server holds cfg to init the api server.
type Server struct {
	cfg *config.APIServerConfig
}

// services groups the logged services the router is built from
type services struct {
	configs   configservice.Service
	vaults    vaultservice.Service
	portfolio portfolioservice.Service
	pendle    pendleservice.Service
}

// NewServer initializes new api server.
func NewServer(cfg *config.APIServerConfig) *Server {
	return &Server{cfg: cfg}
}

func (s *Server) Run() error {
	if s.cfg == nil {
		return fmt.Errorf("api server config is nil")
	}
	cfg := s.cfg

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting API server",
		zap.String("host", cfg.Server.Host),
		zap.Int("port", cfg.Server.Port),
	)

	db, err := pgutil.ConnectDB(ctx, &cfg.Database)
	if err != nil {
		return fmt.Errorf("connect db: %w", err)
	}
	defer func() { _ = db.Close() }()

	logger.Info("Connected to database",
		zap.String("host", cfg.Database.Host),
		zap.String("database", cfg.Database.Database),
	)

	store := yieldstore.NewStore(db)

	var syncer *pendle.Syncer
	if cfg.Pendle.Enabled {
		syncer = pendle.NewSyncer(
			pendle.NewClient(&cfg.Pendle),
			store,
			cfg.Pendle.ChainIDs,
			cfg.Pendle.RequestTimeout,
			logger,
		)
		s.runInitialSync(ctx, syncer, logger)
	}
	stopSync := s.startPeriodicSync(syncer, logger)
	defer stopSync()

	// a nil *pendle.Syncer must stay a nil interface
	var marketSyncer pendleservice.Syncer
	if syncer != nil {
		marketSyncer = syncer
	}

	svcs := services{
		configs:   configservice.NewLog(configservice.NewService(&cfg.APY, logger), logger),
		vaults:    vaultservice.NewLog(vaultservice.NewService(store, logger), logger),
		portfolio: portfolioservice.NewLog(portfolioservice.NewService(store, logger), logger),
		pendle:    pendleservice.NewLog(pendleservice.NewService(store, marketSyncer, logger), logger),
	}

	router := s.setupRouter(svcs, logger)

	err = apphttp.ServeAndWait(ctx, router, logger, &cfg.Server)

	// Stop background work before the deferred DB close.
	stopSync()

	return err
}

func (s *Server) runInitialSync(ctx context.Context, syncer *pendle.Syncer, logger *zap.Logger) {
	logger.Info("Running initial Pendle market sync", zap.Int64s("chain_ids", s.cfg.Pendle.ChainIDs))

	if err := syncer.SyncAll(ctx); err != nil {
		logger.Warn("Initial Pendle sync failed (will retry periodically)", zap.Error(err))
	}
}

func (s *Server) startPeriodicSync(syncer *pendle.Syncer, logger *zap.Logger) func() {
	if syncer == nil || s.cfg.Pendle.Interval <= 0 {
		return func() {}
	}

	logger.Info("Starting periodic Pendle sync", zap.Duration("interval", s.cfg.Pendle.Interval))
	syncer.Start(s.cfg.Pendle.Interval)

	return syncer.Stop
}

func (s *Server) setupRouter(svcs services, logger *zap.Logger) chi.Router {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(s.cfg.Server.RequestTimeout))
	r.Use(apphttp.Metrics)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	if s.cfg.Metrics.Enabled {
		r.Handle(s.cfg.Metrics.Path, promhttp.Handler())
	}

	r.Route("/api/v1", func(r chi.Router) {
		configservice.RegisterRoutes(r, svcs.configs, logger)
		vaultservice.RegisterRoutes(r, svcs.vaults, logger)
		portfolioservice.RegisterRoutes(r, svcs.portfolio, logger)
		pendleservice.RegisterRoutes(r, svcs.pendle, logger)

		if !s.cfg.Ingest.Enabled {
			return
		}

		validator := auth.NewJWTValidator(s.cfg.Ingest.JWTSecret, s.cfg.Ingest.JWTIssuer)
		if !validator.IsConfigured() {
			logger.Error("Ingest enabled without a JWT secret, ingest endpoints not mounted")
			return
		}

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireBearer(validator, logger))

			vaultservice.RegisterIngestRoutes(r, svcs.vaults, logger)
			portfolioservice.RegisterIngestRoutes(r, svcs.portfolio, logger)
			pendleservice.RegisterIngestRoutes(r, svcs.pendle, logger)
		})

		logger.Info("Ingest endpoints enabled")
	})

	return r
}
