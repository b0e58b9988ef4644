package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/records-api/internal/adapter/postgres"
	"github.com/heartmarshall/records-api/internal/adapter/postgres/recordstore"
	"github.com/heartmarshall/records-api/internal/auth"
	"github.com/heartmarshall/records-api/internal/authz"
	"github.com/heartmarshall/records-api/internal/config"
	"github.com/heartmarshall/records-api/internal/service/oauthapp"
	"github.com/heartmarshall/records-api/internal/service/record"
	"github.com/heartmarshall/records-api/internal/service/userdata"
	"github.com/heartmarshall/records-api/internal/transport/middleware"
	"github.com/heartmarshall/records-api/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL and the configured audit sink, wires the record services and
// serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("audit_sink", cfg.Audit.SinkName()),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("app: %w", err)
	}
	defer pool.Close()

	handler, cleanup, err := buildHandler(ctx, cfg, logger, pool)
	if err != nil {
		return fmt.Errorf("app: %w", err)
	}
	defer cleanup()

	return serve(ctx, logger, cfg.Server, handler)
}

// buildHandler wires stores, the audit sink, services and transport on top
// of pool. The returned cleanup releases the sink and background workers.
func buildHandler(ctx context.Context, cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool) (http.Handler, func(), error) {
	sink, err := newAuditSink(ctx, cfg, logger, pool)
	if err != nil {
		return nil, nil, err
	}
	cleanup := sink.close

	az, err := authz.New(cfg.Authz.PolicyPath)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	// ---------------------------------------------------------------------------
	// Services
	// ---------------------------------------------------------------------------

	store := recordstore.New(pool)
	txm := postgres.NewTxManager(pool)
	validator := record.NewValidator()

	appsSvc := oauthapp.NewService(logger,
		record.NewEngine(logger, oauthapp.Schema, store, sink, txm, validator), az)
	dataSvc := userdata.NewService(logger,
		record.NewEngine(logger, userdata.Schema, store, sink, txm, validator), az)

	// ---------------------------------------------------------------------------
	// Transport
	// ---------------------------------------------------------------------------

	checks := append([]rest.HealthCheck{{Name: "postgres", Check: postgres.Healthcheck(pool)}}, sink.checks...)

	handlers := rest.Handlers{
		Health:   rest.NewHealthHandler(BuildVersion(), checks...),
		Apps:     rest.NewOAuthAppHandler(appsSvc, logger, cfg.Server.MaxBodyBytes),
		UserData: rest.NewUserDataHandler(dataSvc, logger, cfg.Server.MaxBodyBytes),
	}

	stack := rest.Stack{
		CORS: middleware.CORS(cfg.CORS),
		Auth: middleware.Auth(auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)),
	}
	if cfg.RateLimit.Enabled() {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		stack.RateLimit = limiter.LimitWrites(cfg.RateLimit.WritesPerMinute)
		closeSink := cleanup
		cleanup = func() {
			limiter.Stop()
			closeSink()
		}
	}

	return rest.NewRouter(logger, handlers, stack), cleanup, nil
}
