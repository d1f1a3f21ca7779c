package eventlog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/heartmarshall/tradedesk-backend/internal/config"
	"github.com/heartmarshall/tradedesk-backend/internal/metrics"
)

type purgeRepo interface {
	PurgeBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// Purger deletes log entries older than the retention period, either once
// (RunOnce) or on a cron schedule (Start).
type Purger struct {
	repo    purgeRepo
	log     *slog.Logger
	metrics *metrics.Metrics
	cfg     config.LogsConfig
	timeout time.Duration
	now     func() time.Time

	cron *cron.Cron
}

// NewPurger creates a new Purger. timeout bounds each purge run.
func NewPurger(log *slog.Logger, repo purgeRepo, m *metrics.Metrics, cfg config.LogsConfig, timeout time.Duration) *Purger {
	return &Purger{
		repo:    repo,
		log:     log.With("service", "eventlog-purger"),
		metrics: m,
		cfg:     cfg,
		timeout: timeout,
		now:     time.Now,
	}
}

// RunOnce deletes every entry older than the retention period and returns
// the number removed.
func (p *Purger) RunOnce(ctx context.Context) (int64, error) {
	start := p.now()
	cutoff := start.UTC().Add(-p.cfg.Retention())

	deleted, err := p.repo.PurgeBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("purge log entries before %s: %w", cutoff.Format(time.RFC3339), err)
	}

	took := p.now().Sub(start)
	p.metrics.ObservePurge(deleted, took)
	p.log.InfoContext(ctx, "log retention purge complete",
		slog.Int64("deleted", deleted),
		slog.Time("cutoff", cutoff),
		slog.Duration("took", took),
	)
	return deleted, nil
}

// Start schedules RunOnce on the configured cron expression.
func (p *Purger) Start() error {
	if p.cron != nil {
		return fmt.Errorf("purger already started")
	}

	c := cron.New()
	if _, err := c.AddFunc(p.cfg.PurgeSchedule, p.runScheduled); err != nil {
		return fmt.Errorf("schedule log purge %q: %w", p.cfg.PurgeSchedule, err)
	}

	p.cron = c
	c.Start()
	p.log.Info("log retention purge scheduled", slog.String("schedule", p.cfg.PurgeSchedule))
	return nil
}

// Stop halts the schedule and waits for a running purge to finish.
func (p *Purger) Stop() {
	if p.cron == nil {
		return
	}
	<-p.cron.Stop().Done()
	p.cron = nil
}

func (p *Purger) runScheduled() {
	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	if _, err := p.RunOnce(ctx); err != nil {
		p.log.Error("scheduled log purge failed", slog.String("error", err.Error()))
	}
}
