package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/records-api/internal/adapter/auditlog"
	"github.com/heartmarshall/records-api/internal/adapter/postgres"
	"github.com/heartmarshall/records-api/internal/adapter/postgres/audit"
	redisadapter "github.com/heartmarshall/records-api/internal/adapter/redis"
	"github.com/heartmarshall/records-api/internal/adapter/redis/auditstream"
	"github.com/heartmarshall/records-api/internal/config"
	"github.com/heartmarshall/records-api/internal/domain"
	"github.com/heartmarshall/records-api/internal/transport/rest"
)

type emitter interface {
	Emit(ctx context.Context, event domain.AuditEvent) error
}

// auditSink is the configured audit destination plus whatever it needs at
// runtime: readiness checks and a release hook.
type auditSink struct {
	emitter
	checks []rest.HealthCheck
	close  func()
}

func newAuditSink(ctx context.Context, cfg *config.Config, logger *slog.Logger, db postgres.Querier) (auditSink, error) {
	noop := func() {}

	switch cfg.Audit.SinkName() {
	case config.AuditSinkPostgres:
		return auditSink{emitter: audit.New(db), close: noop}, nil

	case config.AuditSinkLog:
		return auditSink{emitter: auditlog.New(logger), close: noop}, nil

	case config.AuditSinkRedis:
		client, err := redisadapter.Connect(ctx, cfg.Redis)
		if err != nil {
			return auditSink{}, fmt.Errorf("connect redis: %w", err)
		}
		logger.Info("audit stream connected", slog.String("stream", cfg.Audit.Stream))
		return auditSink{
			emitter: auditstream.New(client, cfg.Audit.Stream, cfg.Audit.StreamMaxLen),
			checks:  []rest.HealthCheck{{Name: "redis", Check: redisadapter.Healthcheck(client)}},
			close: func() {
				if err := client.Close(); err != nil {
					logger.Warn("close redis", slog.String("error", err.Error()))
				}
			},
		}, nil

	default:
		return auditSink{}, fmt.Errorf("unknown audit sink %q", cfg.Audit.Sink)
	}
}
