package record

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/cultour-backend/internal/domain"
)

// DeleteWithAsset removes the record, then its image. The image delete is
// best-effort: the record is already gone, so a failure there is only logged.
func (s *Service) DeleteWithAsset(ctx context.Context, kind domain.Kind, id uuid.UUID) error {
	if !kind.IsValid() {
		return domain.NewValidationError("kind", "unknown kind")
	}

	existing, err := s.records.GetByID(ctx, kind, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("get record: %w", err)
		}
		return fmt.Errorf("%w: get record: %w", domain.ErrRecordDeleteFailed, err)
	}

	if err := s.records.Delete(ctx, kind, id); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrRecordDeleteFailed, err)
	}

	if key := existing.AssetKey(); key != "" {
		s.releaseOld(ctx, key, existing)
	}

	s.log.InfoContext(ctx, "record deleted",
		slog.String("kind", kind.String()),
		slog.String("record_id", id.String()),
		slog.String("asset_key", existing.AssetKey()),
	)

	return nil
}
