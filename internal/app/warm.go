package app

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"holidaze/internal/domain"
)

// WarmService pre-loads list pages and venue details into the cache.
type WarmService struct {
	venues *VenueQueryService
}

func NewWarmService(v *VenueQueryService) *WarmService {
	return &WarmService{venues: v}
}

type WarmStats struct {
	Pages   int
	Venues  int
	Missing int
	Failed  int
}

// Run refreshes up to pages list pages, then every venue on them with at
// most workers concurrent detail fetches.
func (s *WarmService) Run(ctx context.Context, pages, pageSize, workers int) (WarmStats, error) {
	if workers <= 0 {
		workers = 1
	}
	ids, n, err := s.warmList(ctx, pages, pageSize)
	stats := WarmStats{Pages: n}
	if err != nil && len(ids) == 0 {
		return stats, err
	}

	sem := semaphore.NewWeighted(int64(workers))
	var (
		wg                      sync.WaitGroup
		warmed, missing, failed int64
	)
	for _, id := range ids {
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			break
		}
		wg.Add(1)
		go func(venueID string) {
			defer wg.Done()
			defer sem.Release(1)

			switch err := s.WarmVenue(ctx, venueID); {
			case errors.Is(err, domain.ErrNotFound):
				atomic.AddInt64(&missing, 1)
			case err != nil:
				atomic.AddInt64(&failed, 1)
				log.Warn().Str("venue", venueID).Err(err).Msg("warm failed")
			default:
				atomic.AddInt64(&warmed, 1)
			}
		}(id)
	}
	wg.Wait()

	stats.Venues, stats.Missing, stats.Failed = int(warmed), int(missing), int(failed)
	if ctx.Err() != nil {
		return stats, ctx.Err()
	}
	return stats, err
}

// WarmVenue refreshes one venue. A venue that no longer exists is evicted and
// reported as domain.ErrNotFound.
func (s *WarmService) WarmVenue(ctx context.Context, id string) error {
	_, err := s.venues.FreshVenue(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		s.venues.Invalidate(ctx, id)
	}
	return err
}

func (s *WarmService) warmList(ctx context.Context, pages, pageSize int) ([]string, int, error) {
	seen := map[string]struct{}{}
	var ids []string
	done := 0
	for p := 1; p <= pages; p++ {
		page, err := s.venues.RefreshVenues(ctx, domain.VenuesQuery{Limit: pageSize, Page: p})
		if err != nil {
			return ids, done, err
		}
		done++
		for _, v := range page.Items {
			if _, dup := seen[v.ID]; dup || v.ID == "" {
				continue
			}
			seen[v.ID] = struct{}{}
			ids = append(ids, v.ID)
		}
		log.Info().Int("page", p).Int("venues", len(page.Items)).Msg("warmed venue page")
		if page.Meta.IsLastPage || len(page.Items) == 0 {
			break
		}
	}
	return ids, done, nil
}
