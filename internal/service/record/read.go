package record

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/cultour-backend/internal/domain"
)

// Get returns one record regardless of its active flag (admin view).
func (s *Service) Get(ctx context.Context, kind domain.Kind, id uuid.UUID) (*domain.Record, error) {
	if !kind.IsValid() {
		return nil, domain.NewValidationError("kind", "unknown kind")
	}

	rec, err := s.records.GetByID(ctx, kind, id)
	if err != nil {
		return nil, fmt.Errorf("get record: %w", err)
	}

	return s.withURL(rec), nil
}

// List returns every record of a kind, active or not, in display order.
func (s *Service) List(ctx context.Context, kind domain.Kind, limit, offset int) ([]*domain.Record, error) {
	if !kind.IsValid() {
		return nil, domain.NewValidationError("kind", "unknown kind")
	}

	recs, err := s.records.List(ctx, domain.RecordFilter{Kind: kind, Limit: limit, Offset: offset})
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}

	for _, r := range recs {
		s.withURL(r)
	}

	return recs, nil
}
