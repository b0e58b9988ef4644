package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if c.Database.RetryAttempts < 0 || c.Database.RetryInterval < 0 {
		return fmt.Errorf("database retry settings must not be negative")
	}

	if err := c.Audit.validate(); err != nil {
		return fmt.Errorf("audit: %w", err)
	}

	if c.Audit.SinkName() == AuditSinkRedis {
		if _, err := url.Parse(c.Redis.URL); err != nil || !strings.HasPrefix(c.Redis.URL, "redis") {
			return fmt.Errorf("redis.url must be a redis:// or rediss:// URL (got %q)", c.Redis.URL)
		}
	}

	if p := strings.TrimSpace(c.Authz.PolicyPath); p != "" {
		if _, err := os.Stat(p); err != nil {
			return fmt.Errorf("authz.policy_path: %w", err)
		}
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	return nil
}

func (a AuditConfig) validate() error {
	switch a.SinkName() {
	case AuditSinkPostgres, AuditSinkLog:
		return nil
	case AuditSinkRedis:
		if strings.TrimSpace(a.Stream) == "" {
			return fmt.Errorf("stream is required for the redis sink")
		}
		return nil
	default:
		return fmt.Errorf("sink must be one of postgres, redis, log (got %q)", a.Sink)
	}
}
