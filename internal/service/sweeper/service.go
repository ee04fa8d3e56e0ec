package sweeper

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/cultour-backend/internal/adapter/assetstore"
)

type keyReader interface {
	AssetKeys(ctx context.Context) ([]string, error)
}

type objectStore interface {
	List(ctx context.Context) ([]assetstore.Object, error)
	Delete(ctx context.Context, key string) error
}

// Service removes stored assets that no record references. Such orphans
// are left behind when a compensating or post-commit delete fails.
type Service struct {
	log     *slog.Logger
	records keyReader
	assets  objectStore
	now     func() time.Time
}

// NewService creates a new sweeper service.
func NewService(logger *slog.Logger, records keyReader, assets objectStore) *Service {
	return &Service{
		log:     logger.With("service", "sweeper"),
		records: records,
		assets:  assets,
		now:     time.Now,
	}
}

// Result summarizes one sweep.
type Result struct {
	Scanned  int
	TooYoung int
	Orphans  []string // deleted, or would be deleted on a dry run
	Failed   int
}

// Sweep deletes unreferenced assets last modified more than minAge ago.
// Younger files are skipped: they may belong to a create whose record
// is not committed yet. With dryRun nothing is deleted.
func (s *Service) Sweep(ctx context.Context, minAge time.Duration, dryRun bool) (Result, error) {
	var res Result

	if minAge <= 0 {
		return res, fmt.Errorf("sweep: min age must be positive, got %s", minAge)
	}

	// Objects are listed before references are read, so a file committed
	// in between is seen as referenced or is too young to be touched.
	objects, err := s.assets.List(ctx)
	if err != nil {
		return res, fmt.Errorf("sweep: list assets: %w", err)
	}

	keys, err := s.records.AssetKeys(ctx)
	if err != nil {
		return res, fmt.Errorf("sweep: read references: %w", err)
	}

	referenced := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		referenced[k] = struct{}{}
	}

	cutoff := s.now().Add(-minAge)

	for _, obj := range objects {
		res.Scanned++

		if _, ok := referenced[obj.Key]; ok {
			continue
		}
		if obj.ModTime.After(cutoff) {
			res.TooYoung++
			continue
		}

		if !dryRun {
			if err := ctx.Err(); err != nil {
				return res, fmt.Errorf("sweep: %w", err)
			}
			if err := s.assets.Delete(ctx, obj.Key); err != nil {
				res.Failed++
				s.log.WarnContext(ctx, "delete orphan failed",
					slog.String("asset_key", obj.Key),
					slog.String("error", err.Error()),
				)
				continue
			}
		}

		res.Orphans = append(res.Orphans, obj.Key)
	}

	s.log.InfoContext(ctx, "sweep completed",
		slog.Bool("dry_run", dryRun),
		slog.Duration("min_age", minAge),
		slog.Int("scanned", res.Scanned),
		slog.Int("orphans", len(res.Orphans)),
		slog.Int("too_young", res.TooYoung),
		slog.Int("failed", res.Failed),
	)

	return res, nil
}
