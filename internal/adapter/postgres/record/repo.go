// Package record implements the Record repository using PostgreSQL.
// Every write is a single statement, so a record is never observed half-updated.
package record

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/cultour-backend/internal/adapter/postgres"
	"github.com/heartmarshall/cultour-backend/internal/domain"
)

const (
	tableName = "records"
	entity    = "record"

	defaultLimit = 100
	maxLimit     = 500
)

var columns = []string{
	"id", "kind", "name", "description", "link",
	"display_order", "is_active", "asset_key", "created_at", "updated_at",
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides record persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new record repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a record by primary key within kind.
// Returns domain.ErrNotFound if the record does not exist or has another kind.
func (r *Repo) GetByID(ctx context.Context, kind domain.Kind, id uuid.UUID) (*domain.Record, error) {
	query, args, err := psql.Select(columns...).
		From(tableName).
		Where(sq.Eq{"id": id, "kind": kind.String()}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get record query: %w", err)
	}

	row := r.pool.QueryRow(ctx, query, args...)
	rec, err := scanRecord(row)
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}

	return rec, nil
}

// List returns records of one kind ordered by display_order, then creation time.
// Returns an empty slice (not nil) when nothing matches.
func (r *Repo) List(ctx context.Context, filter domain.RecordFilter) ([]*domain.Record, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	builder := psql.Select(columns...).
		From(tableName).
		Where(sq.Eq{"kind": filter.Kind.String()})
	if filter.ActiveOnly {
		builder = builder.Where(sq.Eq{"is_active": true})
	}

	query, args, err := builder.
		OrderBy("display_order ASC", "created_at ASC", "id ASC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list records query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()

	result := []*domain.Record{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}

	return result, nil
}

// AssetKeys returns every asset key referenced by any record.
func (r *Repo) AssetKeys(ctx context.Context) ([]string, error) {
	query, args, err := psql.Select("asset_key").
		From(tableName).
		Where(sq.NotEq{"asset_key": nil}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build asset keys query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list asset keys: %w", err)
	}

	keys, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("list asset keys: %w", err)
	}

	return keys, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new record and returns it. assetKey may be empty.
func (r *Repo) Create(ctx context.Context, kind domain.Kind, fields domain.RecordFields, assetKey string) (*domain.Record, error) {
	query, args, err := psql.Insert(tableName).
		Columns("kind", "name", "description", "link", "display_order", "is_active", "asset_key").
		Values(
			kind.String(),
			fields.Name,
			ptrStringToPgText(fields.Description),
			ptrStringToPgText(fields.Link),
			fields.DisplayOrder,
			fields.IsActive,
			stringToPgText(assetKey),
		).
		Suffix("RETURNING " + columnList()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create record query: %w", err)
	}

	row := r.pool.QueryRow(ctx, query, args...)
	rec, err := scanRecord(row)
	if err != nil {
		return nil, postgres.MapError(err, entity, uuid.Nil)
	}

	return rec, nil
}

// Update applies partial params and an optional asset change in one statement.
// Returns domain.ErrNotFound if the record does not exist.
func (r *Repo) Update(ctx context.Context, kind domain.Kind, id uuid.UUID, params domain.RecordUpdateParams, asset domain.AssetChange) (*domain.Record, error) {
	builder := psql.Update(tableName).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "kind": kind.String()})

	if params.Name != nil {
		builder = builder.Set("name", *params.Name)
	}
	if params.Description != nil {
		builder = builder.Set("description", stringToPgText(*params.Description))
	}
	if params.Link != nil {
		builder = builder.Set("link", stringToPgText(*params.Link))
	}
	if params.DisplayOrder != nil {
		builder = builder.Set("display_order", *params.DisplayOrder)
	}
	if params.IsActive != nil {
		builder = builder.Set("is_active", *params.IsActive)
	}
	if asset.Set {
		builder = builder.Set("asset_key", stringToPgText(asset.Key))
	}

	query, args, err := builder.Suffix("RETURNING " + columnList()).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update record query: %w", err)
	}

	row := r.pool.QueryRow(ctx, query, args...)
	rec, err := scanRecord(row)
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}

	return rec, nil
}

// Delete removes a record.
// Returns domain.ErrNotFound if the record does not exist.
func (r *Repo) Delete(ctx context.Context, kind domain.Kind, id uuid.UUID) error {
	query, args, err := psql.Delete(tableName).
		Where(sq.Eq{"id": id, "kind": kind.String()}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete record query: %w", err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, entity, id)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanRecord(row pgx.Row) (*domain.Record, error) {
	var (
		id           uuid.UUID
		kind         string
		name         string
		description  pgtype.Text
		link         pgtype.Text
		displayOrder int32
		isActive     bool
		assetKey     pgtype.Text
		createdAt    time.Time
		updatedAt    time.Time
	)

	if err := row.Scan(&id, &kind, &name, &description, &link, &displayOrder, &isActive, &assetKey, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	rec := &domain.Record{
		ID:           id,
		Kind:         domain.Kind(kind),
		Name:         name,
		DisplayOrder: int(displayOrder),
		IsActive:     isActive,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
	if description.Valid {
		rec.Description = &description.String
	}
	if link.Valid {
		rec.Link = &link.String
	}
	if assetKey.Valid {
		rec.Asset = &domain.AssetRef{StorageKey: assetKey.String}
	}

	return rec, nil
}

func columnList() string {
	return strings.Join(columns, ", ")
}

// ---------------------------------------------------------------------------
// pgtype helpers
// ---------------------------------------------------------------------------

// ptrStringToPgText converts a *string to pgtype.Text (nil -> NULL).
func ptrStringToPgText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}

// stringToPgText converts "" to NULL. ptr("") in update params means "clear".
func stringToPgText(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{}
	}
	return pgtype.Text{String: s, Valid: true}
}
