package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Authz     AuthzConfig     `yaml:"authz"`
	Audit     AuditConfig     `yaml:"audit"`
	Redis     RedisConfig     `yaml:"redis"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,PATCH,OPTIONS"`
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
	MaxBodyBytes    int64         `yaml:"max_body_bytes"   env:"SERVER_MAX_BODY_BYTES"   env-default:"1048576"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	HealthPeriod    time.Duration `yaml:"health_period"      env:"DATABASE_HEALTH_PERIOD"      env-default:"1m"`
	RetryAttempts   int           `yaml:"retry_attempts"     env:"DATABASE_RETRY_ATTEMPTS"     env-default:"3"`
	RetryInterval   time.Duration `yaml:"retry_interval"     env:"DATABASE_RETRY_INTERVAL"     env-default:"2s"`
}

// AuthConfig holds bearer token validation settings.
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" env-required:"true"`
	JWTIssuer string `yaml:"jwt_issuer" env:"AUTH_JWT_ISSUER" env-default:"records-api"`
}

// AuthzConfig holds permission policy settings.
type AuthzConfig struct {
	// PolicyPath overrides the embedded casbin policy when set.
	PolicyPath string `yaml:"policy_path" env:"AUTHZ_POLICY_PATH"`
}

// Audit sink names.
const (
	AuditSinkPostgres = "postgres"
	AuditSinkRedis    = "redis"
	AuditSinkLog      = "log"
)

// AuditConfig selects where audit events go.
type AuditConfig struct {
	Sink         string `yaml:"sink"           env:"AUDIT_SINK"            env-default:"postgres"`
	Stream       string `yaml:"stream"         env:"AUDIT_STREAM"          env-default:"records:audit"`
	StreamMaxLen int64  `yaml:"stream_max_len" env:"AUDIT_STREAM_MAX_LEN"  env-default:"100000"`
}

// RedisConfig holds Redis connection settings. Used only by the redis audit sink.
type RedisConfig struct {
	URL            string        `yaml:"url"             env:"REDIS_URL"             env-default:"redis://localhost:6379/0"`
	RetryAttempts  int           `yaml:"retry_attempts"  env:"REDIS_RETRY_ATTEMPTS"  env-default:"3"`
	RetryInterval  time.Duration `yaml:"retry_interval"  env:"REDIS_RETRY_INTERVAL"  env-default:"2s"`
	ConnectTimeout time.Duration `yaml:"connect_timeout" env:"REDIS_CONNECT_TIMEOUT" env-default:"15s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-caller write throttling settings.
type RateLimitConfig struct {
	WritesPerMinute int           `yaml:"writes_per_minute" env:"RATE_LIMIT_WRITES_PER_MINUTE" env-default:"120"`
	CleanupInterval time.Duration `yaml:"cleanup_interval"  env:"RATE_LIMIT_CLEANUP_INTERVAL"  env-default:"5m"`
}

// Enabled reports whether write throttling is on.
func (c RateLimitConfig) Enabled() bool { return c.WritesPerMinute > 0 }

// SinkName returns the normalized audit sink name.
func (c AuditConfig) SinkName() string {
	return strings.ToLower(strings.TrimSpace(c.Sink))
}
