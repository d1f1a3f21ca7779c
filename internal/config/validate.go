package config

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/robfig/cron/v3"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Database.QueryTimeout <= 0 {
		return fmt.Errorf("database.query_timeout must be > 0 (got %v)", c.Database.QueryTimeout)
	}

	if err := c.Intake.validate(); err != nil {
		return fmt.Errorf("intake: %w", err)
	}

	if err := c.Admin.validate(); err != nil {
		return fmt.Errorf("admin: %w", err)
	}

	if err := c.Logs.validate(); err != nil {
		return fmt.Errorf("logs: %w", err)
	}

	return nil
}

func (i *IntakeConfig) validate() error {
	if i.WindowHours <= 0 {
		return fmt.Errorf("window_hours must be > 0 (got %d)", i.WindowHours)
	}
	if i.MaxPerWindow <= 0 {
		return fmt.Errorf("max_per_window must be > 0 (got %d)", i.MaxPerWindow)
	}
	if i.RateLimitPerMinute <= 0 {
		return fmt.Errorf("rate_limit_per_minute must be > 0 (got %d)", i.RateLimitPerMinute)
	}
	return nil
}

func (a *AdminConfig) validate() error {
	sizes, err := ParsePageSizes(a.PageSizesRaw)
	if err != nil {
		return fmt.Errorf("page_sizes: %w", err)
	}
	if len(sizes) == 0 {
		return fmt.Errorf("page_sizes must not be empty")
	}
	a.PageSizes = sizes

	if !slices.Contains(sizes, a.DefaultPageSize) {
		return fmt.Errorf("default_page_size %d is not one of page_sizes %v", a.DefaultPageSize, sizes)
	}
	return nil
}

func (l *LogsConfig) validate() error {
	if l.RetentionDays <= 0 {
		return fmt.Errorf("retention_days must be > 0 (got %d)", l.RetentionDays)
	}
	if l.WriteTimeout <= 0 {
		return fmt.Errorf("write_timeout must be > 0 (got %v)", l.WriteTimeout)
	}
	if l.DefaultLimit <= 0 || l.DefaultLimit > l.MaxLimit {
		return fmt.Errorf("default_limit must be in 1..max_limit (got %d, max %d)", l.DefaultLimit, l.MaxLimit)
	}
	if _, err := cron.ParseStandard(l.PurgeSchedule); err != nil {
		return fmt.Errorf("purge_schedule %q: %w", l.PurgeSchedule, err)
	}
	return nil
}

// ParsePageSizes parses a comma-separated list of positive integers
// (e.g. "10,20,50,100"). An empty string returns a nil slice.
func ParsePageSizes(raw string) ([]int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	sizes := make([]int, 0, len(parts))

	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid page size %q: %w", p, err)
		}
		if n <= 0 {
			return nil, fmt.Errorf("page size must be > 0 (got %d)", n)
		}
		sizes = append(sizes, n)
	}

	return sizes, nil
}
