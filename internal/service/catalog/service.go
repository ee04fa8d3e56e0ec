package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/heartmarshall/cultour-backend/internal/domain"
)

type recordReader interface {
	GetByID(ctx context.Context, kind domain.Kind, id uuid.UUID) (*domain.Record, error)
	List(ctx context.Context, filter domain.RecordFilter) ([]*domain.Record, error)
}

type urlResolver interface {
	URLFor(key string) string
}

// maxPublicList caps a public listing. Public pages show every active record;
// hitting the cap is logged.
const maxPublicList = 500

// Service serves the public, read-only view of records: only active ones,
// in display order.
type Service struct {
	log     *slog.Logger
	records recordReader
	urls    urlResolver
	lists   *cache.Cache // nil when caching is disabled

	// mu orders cache fills against Invalidate. A fill is dropped when the
	// kind's generation moved while its database read was in flight.
	mu   sync.Mutex
	gens map[domain.Kind]uint64
}

// NewService creates a catalog service. ttl <= 0 disables the list cache.
func NewService(logger *slog.Logger, records recordReader, urls urlResolver, ttl time.Duration) *Service {
	s := &Service{
		log:     logger.With("service", "catalog"),
		records: records,
		urls:    urls,
		gens:    make(map[domain.Kind]uint64),
	}
	if ttl > 0 {
		s.lists = cache.New(ttl, 2*ttl)
	}
	return s
}

// ListActive returns the active records of a kind ordered by display order.
// The returned slice is shared with the cache and must not be modified.
func (s *Service) ListActive(ctx context.Context, kind domain.Kind) ([]*domain.Record, error) {
	if !kind.IsValid() {
		return nil, fmt.Errorf("kind %q: %w", kind, domain.ErrNotFound)
	}

	var gen uint64
	if s.lists != nil {
		if cached, ok := s.lists.Get(kind.String()); ok {
			return cached.([]*domain.Record), nil
		}
		gen = s.generation(kind)
	}

	recs, err := s.records.List(ctx, domain.RecordFilter{
		Kind:       kind,
		ActiveOnly: true,
		Limit:      maxPublicList + 1,
	})
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", kind, err)
	}
	if recs == nil {
		recs = []*domain.Record{}
	}
	if len(recs) > maxPublicList {
		s.log.WarnContext(ctx, "public list truncated",
			slog.String("kind", kind.String()),
			slog.Int("limit", maxPublicList),
		)
		recs = recs[:maxPublicList]
	}

	for _, r := range recs {
		s.fillURL(r)
	}

	if s.lists != nil {
		s.fill(kind, gen, recs)
	}

	return recs, nil
}

// GetActive returns a single active record. Inactive records are reported
// as not found.
func (s *Service) GetActive(ctx context.Context, kind domain.Kind, id uuid.UUID) (*domain.Record, error) {
	if !kind.IsValid() {
		return nil, fmt.Errorf("kind %q: %w", kind, domain.ErrNotFound)
	}

	rec, err := s.records.GetByID(ctx, kind, id)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.log.ErrorContext(ctx, "get record",
				slog.String("kind", kind.String()),
				slog.String("record_id", id.String()),
				slog.String("error", err.Error()),
			)
		}
		return nil, fmt.Errorf("get %s: %w", kind, err)
	}
	if !rec.IsActive {
		return nil, fmt.Errorf("%s %s: %w", kind, id, domain.ErrNotFound)
	}

	return s.fillURL(rec), nil
}

// Invalidate drops the cached list of a kind and discards any fill that
// started before this call. It only reaches the local instance, so caching
// is off by default and suits single-instance deployments.
func (s *Service) Invalidate(kind domain.Kind) {
	if s.lists == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gens[kind]++
	s.lists.Delete(kind.String())
}

func (s *Service) generation(kind domain.Kind) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gens[kind]
}

// fill caches recs unless kind was invalidated after gen was read.
func (s *Service) fill(kind domain.Kind, gen uint64, recs []*domain.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gens[kind] != gen {
		return
	}
	s.lists.Set(kind.String(), recs, cache.DefaultExpiration)
}

func (s *Service) fillURL(rec *domain.Record) *domain.Record {
	if rec.Asset != nil {
		rec.Asset.PublicURL = s.urls.URLFor(rec.Asset.StorageKey)
	}
	return rec
}
