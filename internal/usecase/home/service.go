package home

import (
	"context"
	"time"

	"go.uber.org/zap"

	"example.com/musicstore/internal/domain/catalog"
	"example.com/musicstore/internal/domain/view"
	"example.com/musicstore/internal/observability"
)

// TopSellingCount bounds the home page listing regardless of catalog size.
const TopSellingCount = 6

const topSellingKey = "home:topselling"

type Cache interface {
	GetOrCompute(key string, compute func() ([]*catalog.Album, error)) ([]*catalog.Album, bool, error)
	Invalidate(key string)
}

type Service struct {
	repo    catalog.Repository
	cache   Cache
	logger  *zap.Logger
	metrics *observability.Metrics
}

func NewService(repo catalog.Repository, cache Cache, logger *zap.Logger, metrics *observability.Metrics) *Service {
	return &Service{
		repo:    repo,
		cache:   cache,
		logger:  logger,
		metrics: metrics,
	}
}

// TopSellingAlbums serves the best-seller listing through the cache. The
// listing is global, so the cache key is fixed. A store failure surfaces as
// the error outcome; the cache never papers over it with a stale or empty
// listing.
func (s *Service) TopSellingAlbums(ctx context.Context) view.Result {
	albums, hit, err := s.cache.GetOrCompute(topSellingKey, func() ([]*catalog.Album, error) {
		t0 := time.Now()
		albums, err := s.repo.TopSellingAlbums(ctx, TopSellingCount)
		if err != nil {
			return nil, err
		}
		s.metrics.ObserveListingRefresh(time.Since(t0).Seconds())
		return albums, nil
	})
	if err != nil {
		s.metrics.IncListingCacheMiss()
		s.logger.Error("failed to compute top-selling listing", zap.Error(err))
		return view.Error{Err: err}
	}

	if hit {
		s.metrics.IncListingCacheHit()
	} else {
		s.metrics.IncListingCacheMiss()
		s.logger.Info("top-selling listing recomputed",
			zap.Int("albums", len(albums)),
		)
	}
	return view.Listing{Albums: albums}
}

// InvalidateTopSelling drops the cached listing; the next request
// recomputes it. Admin album mutations call this.
func (s *Service) InvalidateTopSelling() {
	s.cache.Invalidate(topSellingKey)
}
