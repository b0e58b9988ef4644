package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/records-api/internal/domain"
)

// SeedApp inserts an approved app owned by owner and returns its stored fields.
func SeedApp(t *testing.T, pool *pgxpool.Pool, owner uuid.UUID) domain.Record {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	app := domain.Record{
		"client_id":     uuid.NewString(),
		"client_secret": uuid.NewString(),
		"users_uuid":    owner.String(),
		"name":          "Seeded App " + uuid.NewString()[:8],
		"status":        string(domain.AppStatusApproved),
		"created":       now,
		"updated":       now,
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO oauth2_apps (client_id, client_secret, users_uuid, name, status, created, updated)
		 VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`,
		app["client_id"], app["client_secret"], app["users_uuid"], app["name"], app["status"], now, now,
	).Scan(new(int64))
	if err != nil {
		t.Fatalf("testhelper: SeedApp: %v", err)
	}

	return app
}

// SeedUserData inserts one key/value entry for owner and returns its stored fields.
func SeedUserData(t *testing.T, pool *pgxpool.Pool, owner uuid.UUID, key, value string) domain.Record {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	entry := domain.Record{
		"uuid":       uuid.NewString(),
		"users_uuid": owner.String(),
		"key":        key,
		"value":      value,
		"created":    now,
		"updated":    now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users_data (uuid, users_uuid, key, value, created, updated)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		entry["uuid"], entry["users_uuid"], key, value, now, now,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUserData: %v", err)
	}

	return entry
}
