package record

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/cultour-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type recordRepo interface {
	Create(ctx context.Context, kind domain.Kind, fields domain.RecordFields, assetKey string) (*domain.Record, error)
	GetByID(ctx context.Context, kind domain.Kind, id uuid.UUID) (*domain.Record, error)
	Update(ctx context.Context, kind domain.Kind, id uuid.UUID, params domain.RecordUpdateParams, asset domain.AssetChange) (*domain.Record, error)
	Delete(ctx context.Context, kind domain.Kind, id uuid.UUID) error
	List(ctx context.Context, filter domain.RecordFilter) ([]*domain.Record, error)
}

type assetStore interface {
	Save(ctx context.Context, data []byte, suggestedName string) (string, error)
	Delete(ctx context.Context, key string) error
	URLFor(key string) string
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service keeps records and their uploaded images consistent. The two stores
// share no transaction, so every mutation orders its steps so that a record
// never references a missing asset at any point a caller can observe:
//
//   - assets are written before the record that references them;
//   - a replaced or detached asset is deleted only after the record update commits;
//   - a record is deleted before its asset.
//
// An asset written for a failed record write is deleted again. Failures of
// that cleanup are logged and never returned: an orphaned file is a leak,
// collected later by the sweeper.
//
// Service holds no state between calls and takes no locks.
type Service struct {
	log     *slog.Logger
	records recordRepo
	assets  assetStore
}

// NewService creates a new Record service.
func NewService(logger *slog.Logger, records recordRepo, assets assetStore) *Service {
	return &Service{
		log:     logger.With("service", "record"),
		records: records,
		assets:  assets,
	}
}

// File is an uploaded file waiting to be stored.
type File struct {
	Data []byte
	Name string
}

// ---------------------------------------------------------------------------
// Helpers (private)
// ---------------------------------------------------------------------------

// withURL fills the derived public URL of the record's asset.
func (s *Service) withURL(rec *domain.Record) *domain.Record {
	if rec != nil && rec.Asset != nil {
		rec.Asset.PublicURL = s.assets.URLFor(rec.Asset.StorageKey)
	}
	return rec
}

// compensate deletes an asset written earlier in a request whose record write
// failed. It runs even if the request context is already cancelled.
func (s *Service) compensate(ctx context.Context, key, op string) {
	if err := s.assets.Delete(context.WithoutCancel(ctx), key); err != nil {
		s.log.ErrorContext(ctx, "compensation failed, asset orphaned",
			slog.String("op", op),
			slog.String("asset_key", key),
			slog.String("error", err.Error()),
		)
		return
	}

	s.log.DebugContext(ctx, "compensated asset write",
		slog.String("op", op),
		slog.String("asset_key", key),
	)
}

// releaseOld deletes an asset no committed record references any more.
func (s *Service) releaseOld(ctx context.Context, key string, rec *domain.Record) {
	if err := s.assets.Delete(context.WithoutCancel(ctx), key); err != nil {
		s.log.WarnContext(ctx, "old asset cleanup failed, asset orphaned",
			slog.String("kind", rec.Kind.String()),
			slog.String("record_id", rec.ID.String()),
			slog.String("asset_key", key),
			slog.String("error", err.Error()),
		)
	}
}
