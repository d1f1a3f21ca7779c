package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/heartmarshall/tradedesk-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tradedesk-backend/internal/adapter/postgres/application"
	"github.com/heartmarshall/tradedesk-backend/internal/adapter/postgres/logentry"
	"github.com/heartmarshall/tradedesk-backend/internal/adapter/redis"
	"github.com/heartmarshall/tradedesk-backend/internal/auth"
	"github.com/heartmarshall/tradedesk-backend/internal/config"
	"github.com/heartmarshall/tradedesk-backend/internal/metrics"
	"github.com/heartmarshall/tradedesk-backend/internal/service/eventlog"
	"github.com/heartmarshall/tradedesk-backend/internal/service/guard"
	"github.com/heartmarshall/tradedesk-backend/internal/service/intake"
	"github.com/heartmarshall/tradedesk-backend/internal/service/review"
	"github.com/heartmarshall/tradedesk-backend/internal/transport/middleware"
	"github.com/heartmarshall/tradedesk-backend/internal/transport/rest"
	"github.com/heartmarshall/tradedesk-backend/migrations"
)

const (
	// purgeTimeout bounds one scheduled retention purge.
	purgeTimeout = 5 * time.Minute

	intakeRateLimitPrefix = "tradedesk:ratelimit:intake:"
)

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL (and Redis when configured), wires services and serves HTTP
// until ctx is cancelled. configPath may be empty; see config.Load.
func Run(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	if !cfg.Database.SkipMigrations {
		if err := postgres.Migrate(ctx, pool, migrations.FS, logger); err != nil {
			return err
		}
	}

	redisClient, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	if redisClient != nil {
		defer redisClient.Close() //nolint:errcheck
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	// Repositories
	appRepo := application.New(pool, cfg.Database.QueryTimeout)
	logRepo := logentry.New(pool, cfg.Database.QueryTimeout)

	// Event log
	store := eventlog.NewStore(logger, logRepo, m, cfg.Logs)
	defer store.Close()

	purger := eventlog.NewPurger(logger, logRepo, m, cfg.Logs, purgeTimeout)
	if err := purger.Start(); err != nil {
		return err
	}
	defer purger.Stop()

	// Services
	guardSvc := guard.New(appRepo, store)
	intakeSvc := intake.NewService(logger, guardSvc, appRepo, store, m, cfg.Intake)
	reviewSvc := review.NewService(logger, appRepo, store, store, cfg.Admin)

	// Transport
	var limiter middleware.Limiter
	if redisClient != nil {
		limiter = redis.NewLimiter(redisClient, intakeRateLimitPrefix, cfg.Intake.RateLimitPerMinute, time.Minute)
	} else {
		memLimiter := middleware.NewMemoryLimiter(cfg.Intake.RateLimitPerMinute, time.Minute)
		defer memLimiter.Stop()
		limiter = memLimiter
	}

	health := rest.NewHealthHandler(pool, BuildVersion())
	if redisClient != nil {
		health.WithRedis(redisClient)
	}

	router := NewRouter(RouterDeps{
		Logger:   logger,
		Config:   cfg,
		Intake:   rest.NewIntakeHandler(intakeSvc, logger),
		Admin:    rest.NewAdminHandler(reviewSvc, cfg.Admin.DefaultPageSize, logger),
		Health:   health,
		Tokens:   auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer),
		Limiter:  limiter,
		Metrics:  m,
		Registry: reg,
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}

	logger.Info("http server stopped")
	return nil
}
