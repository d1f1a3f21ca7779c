package config

import (
	"slices"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Intake   IntakeConfig   `yaml:"intake"`
	Admin    AdminConfig    `yaml:"admin"`
	Logs     LogsConfig     `yaml:"logs"`
	Redis    RedisConfig    `yaml:"redis"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	// TrustProxy makes the client IP come from X-Forwarded-For / X-Real-IP.
	TrustProxy bool `yaml:"trust_proxy" env:"SERVER_TRUST_PROXY" env-default:"false"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	QueryTimeout    time.Duration `yaml:"query_timeout"      env:"DATABASE_QUERY_TIMEOUT"      env-default:"5s"`
	// SkipMigrations leaves schema changes to cmd/migrate. Every bool in this
	// package defaults to false: cleanenv applies env-default over a YAML false.
	SkipMigrations  bool          `yaml:"skip_migrations"    env:"DATABASE_SKIP_MIGRATIONS"    env-default:"false"`
	ApplicationName string        `yaml:"application_name"   env:"DATABASE_APPLICATION_NAME"   env-default:"tradedesk-backend"`
}

// AuthConfig holds admin bearer-token validation settings. Tokens are
// issued by the external admin login service.
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" env-required:"true"`
	JWTIssuer string `yaml:"jwt_issuer" env:"AUTH_JWT_ISSUER" env-default:"tradedesk-admin"`
}

// IntakeConfig holds public submission settings.
type IntakeConfig struct {
	WindowHours        int `yaml:"window_hours"          env:"INTAKE_WINDOW_HOURS"          env-default:"24"`
	MaxPerWindow       int `yaml:"max_per_window"        env:"INTAKE_MAX_PER_WINDOW"        env-default:"3"`
	RateLimitPerMinute int `yaml:"rate_limit_per_minute" env:"INTAKE_RATE_LIMIT_PER_MINUTE" env-default:"10"`
}

// AdminConfig holds back-office query settings.
type AdminConfig struct {
	PageSizesRaw    string `yaml:"page_sizes"       env:"ADMIN_PAGE_SIZES"        env-default:"10,20,50,100"`
	DefaultPageSize int    `yaml:"default_page_size" env:"ADMIN_DEFAULT_PAGE_SIZE" env-default:"20"`

	// PageSizes is parsed from PageSizesRaw during validation.
	PageSizes []int `yaml:"-" env:"-"`
}

// LogsConfig holds structured event log settings.
type LogsConfig struct {
	RetentionDays int           `yaml:"retention_days" env:"LOGS_RETENTION_DAYS" env-default:"90"`
	PurgeSchedule string        `yaml:"purge_schedule" env:"LOGS_PURGE_SCHEDULE" env-default:"@hourly"`
	WriteTimeout  time.Duration `yaml:"write_timeout"  env:"LOGS_WRITE_TIMEOUT"  env-default:"3s"`
	DefaultLimit  int           `yaml:"default_limit"  env:"LOGS_DEFAULT_LIMIT"  env-default:"100"`
	MaxLimit      int           `yaml:"max_limit"      env:"LOGS_MAX_LIMIT"      env-default:"1000"`
}

// RedisConfig holds optional Redis settings. An empty URL disables Redis and
// the public rate limiter falls back to in-process buckets.
type RedisConfig struct {
	URL          string        `yaml:"url"            env:"REDIS_URL"`
	PoolSize     int           `yaml:"pool_size"      env:"REDIS_POOL_SIZE"      env-default:"10"`
	MinIdleConns int           `yaml:"min_idle_conns" env:"REDIS_MIN_IDLE_CONNS" env-default:"1"`
	DialTimeout  time.Duration `yaml:"dial_timeout"   env:"REDIS_DIAL_TIMEOUT"   env-default:"2s"`
	ReadTimeout  time.Duration `yaml:"read_timeout"   env:"REDIS_READ_TIMEOUT"   env-default:"500ms"`
	WriteTimeout time.Duration `yaml:"write_timeout"  env:"REDIS_WRITE_TIMEOUT"  env-default:"500ms"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// Retention returns the log retention period as a duration.
func (c LogsConfig) Retention() time.Duration {
	return time.Duration(c.RetentionDays) * 24 * time.Hour
}

// IsPageSizeAllowed reports whether n is one of the configured page sizes.
func (c AdminConfig) IsPageSizeAllowed(n int) bool {
	return slices.Contains(c.PageSizes, n)
}

// Enabled reports whether Redis is configured.
func (c RedisConfig) Enabled() bool {
	return c.URL != ""
}
