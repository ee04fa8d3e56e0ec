package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/cultour-backend/internal/domain"
)

// UniqueSuffix returns a short unique string for generating non-conflicting test data.
func UniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedRecord inserts a record of the given kind and returns its id.
// assetKey may be empty. Tests sharing the container must not rely on
// global row counts, so every seeded name is unique.
func SeedRecord(t *testing.T, pool *pgxpool.Pool, kind domain.Kind, order int, active bool, assetKey string) uuid.UUID {
	t.Helper()

	var key *string
	if assetKey != "" {
		key = &assetKey
	}

	var id uuid.UUID
	err := pool.QueryRow(context.Background(),
		`INSERT INTO records (kind, name, description, display_order, is_active, asset_key)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		kind.String(), "Seeded "+UniqueSuffix(), "seeded description", order, active, key,
	).Scan(&id)
	if err != nil {
		t.Fatalf("testhelper: SeedRecord: %v", err)
	}

	return id
}
