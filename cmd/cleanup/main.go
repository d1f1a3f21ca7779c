// Command cleanup deletes event log entries older than the configured
// retention period. The server already purges on a schedule; this command
// is for deployments that disable the in-process schedule or want an
// immediate purge from an external cron job.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/heartmarshall/tradedesk-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tradedesk-backend/internal/adapter/postgres/logentry"
	"github.com/heartmarshall/tradedesk-backend/internal/app"
	"github.com/heartmarshall/tradedesk-backend/internal/config"
	"github.com/heartmarshall/tradedesk-backend/internal/metrics"
	"github.com/heartmarshall/tradedesk-backend/internal/service/eventlog"
)

const purgeTimeout = 5 * time.Minute

func main() {
	configPath := flag.String("config", "", "path to config.yaml (default: $CONFIG_PATH or ./config.yaml)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), purgeTimeout)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	repo := logentry.New(pool, purgeTimeout)
	purger := eventlog.NewPurger(logger, repo, metrics.New(prometheus.NewRegistry()), cfg.Logs, purgeTimeout)

	deleted, err := purger.RunOnce(ctx)
	if err != nil {
		logger.Error("log purge failed",
			slog.String("error", err.Error()),
			slog.Int("retention_days", cfg.Logs.RetentionDays),
		)
		os.Exit(1)
	}

	logger.Info("log purge completed",
		slog.Int64("deleted", deleted),
		slog.Int("retention_days", cfg.Logs.RetentionDays),
	)
}
