package record

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/cultour-backend/internal/domain"
)

// UpdateWithAsset applies a partial update and, when a file is given,
// replaces the record's image. The old image is deleted only after the
// record points at the new one.
func (s *Service) UpdateWithAsset(ctx context.Context, input UpdateInput) (*domain.Record, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.records.GetByID(ctx, input.Kind, input.ID)
	if err != nil {
		return nil, fetchError(err)
	}

	var newKey string
	if input.File != nil {
		newKey, err = s.assets.Save(ctx, input.File.Data, input.File.Name)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrUploadFailed, err)
		}
	}

	var change domain.AssetChange
	if newKey != "" {
		change = domain.SetAsset(newKey)
	}

	updated, err := s.records.Update(ctx, input.Kind, input.ID, input.normalized(), change)
	if err != nil {
		if newKey != "" {
			s.compensate(ctx, newKey, "update")
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrRecordUpdateFailed, err)
	}

	// The record now durably references newKey.
	oldKey := existing.AssetKey()
	if newKey != "" && oldKey != "" && oldKey != newKey {
		s.releaseOld(ctx, oldKey, updated)
	}

	s.log.InfoContext(ctx, "record updated",
		slog.String("kind", input.Kind.String()),
		slog.String("record_id", input.ID.String()),
		slog.Bool("asset_replaced", newKey != ""),
	)

	return s.withURL(updated), nil
}

// RemoveAsset detaches the record's image without uploading a replacement.
// A record without an image is returned unchanged.
func (s *Service) RemoveAsset(ctx context.Context, kind domain.Kind, id uuid.UUID) (*domain.Record, error) {
	if !kind.IsValid() {
		return nil, domain.NewValidationError("kind", "unknown kind")
	}

	existing, err := s.records.GetByID(ctx, kind, id)
	if err != nil {
		return nil, fetchError(err)
	}

	oldKey := existing.AssetKey()
	if oldKey == "" {
		return existing, nil
	}

	updated, err := s.records.Update(ctx, kind, id, domain.RecordUpdateParams{}, domain.ClearAsset())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrRecordUpdateFailed, err)
	}

	s.releaseOld(ctx, oldKey, updated)

	s.log.InfoContext(ctx, "record asset removed",
		slog.String("kind", kind.String()),
		slog.String("record_id", id.String()),
		slog.String("asset_key", oldKey),
	)

	return updated, nil
}

// fetchError classifies a failed lookup of the record being mutated.
func fetchError(err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("get record: %w", err)
	}
	return fmt.Errorf("%w: get record: %w", domain.ErrRecordUpdateFailed, err)
}
