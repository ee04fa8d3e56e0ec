package record

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/cultour-backend/internal/domain"
)

// CreateWithAsset stores the optional image, then creates the record that
// references it. If the record write fails the image is deleted again.
func (s *Service) CreateWithAsset(ctx context.Context, input CreateInput) (*domain.Record, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	fields := input.normalized()

	var key string
	if input.File != nil {
		var err error
		key, err = s.assets.Save(ctx, input.File.Data, input.File.Name)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrUploadFailed, err)
		}
	}

	rec, err := s.records.Create(ctx, input.Kind, fields, key)
	if err != nil {
		if key != "" {
			s.compensate(ctx, key, "create")
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrRecordCreateFailed, err)
	}

	s.log.InfoContext(ctx, "record created",
		slog.String("kind", input.Kind.String()),
		slog.String("record_id", rec.ID.String()),
		slog.String("asset_key", key),
	)

	return s.withURL(rec), nil
}
