package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"holidaze/internal/availability"
	"holidaze/internal/domain"
)

const (
	defaultPageSize  = 20
	maxPageSize      = 100
	defaultSort      = "created"
	defaultSortOrder = "desc"
)

// VenueQueryService serves venue reads cache-aside over the Booking API.
// cache may be nil.
type VenueQueryService struct {
	src      domain.VenueSource
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewVenueQueryService(src domain.VenueSource, c domain.Cache, ttl time.Duration) *VenueQueryService {
	return &VenueQueryService{src: src, cache: c, cacheTTL: ttl}
}

func venueKey(id string) string { return "venue:" + id }

func venuesKey(q domain.VenuesQuery) string {
	return fmt.Sprintf("venues:%d:%d:%s:%s:%s", q.Limit, q.Page, q.Sort, q.SortOrder, strings.ToLower(q.Query))
}

func (s *VenueQueryService) ttlSec() int { return int(s.cacheTTL.Seconds()) }

// GetVenue returns the venue with owner and bookings, from cache when fresh.
func (s *VenueQueryService) GetVenue(ctx context.Context, id string) (domain.Venue, error) {
	var v domain.Venue
	if s.cache != nil {
		if ok, _ := s.cache.Get(ctx, venueKey(id), &v); ok {
			return v, nil
		}
	}
	return s.FreshVenue(ctx, id)
}

// FreshVenue always asks the Booking API and refreshes the cached copy.
func (s *VenueQueryService) FreshVenue(ctx context.Context, id string) (domain.Venue, error) {
	v, err := s.src.GetVenue(ctx, id)
	if err != nil {
		return domain.Venue{}, err
	}
	if s.cache != nil {
		_ = s.cache.Set(ctx, venueKey(id), v, s.ttlSec())
	}
	return v, nil
}

func (s *VenueQueryService) GetVenueView(ctx context.Context, id string) (domain.VenueView, error) {
	v, err := s.GetVenue(ctx, id)
	if err != nil {
		return domain.VenueView{}, err
	}
	return ToVenueView(v), nil
}

// Invalidate drops the cached venue so the next read sees new bookings.
func (s *VenueQueryService) Invalidate(ctx context.Context, id string) {
	if s.cache != nil {
		_ = s.cache.Del(ctx, venueKey(id))
	}
}

func (s *VenueQueryService) ListVenues(ctx context.Context, q domain.VenuesQuery) (domain.VenuesPage, error) {
	q = normalizeQuery(q)
	key := venuesKey(q)
	var out domain.VenuesPage
	if s.cache != nil {
		if ok, _ := s.cache.Get(ctx, key, &out); ok {
			return out, nil
		}
	}

	page, err := s.src.ListVenues(ctx, q)
	if err != nil {
		return domain.VenuesPage{}, err
	}
	// list pages do not carry bookings; drop them so the cached page stays small
	for i := range page.Items {
		page.Items[i].Bookings = nil
	}

	if s.cache != nil {
		_ = s.cache.Set(ctx, key, page, s.ttlSec())
	}
	return page, nil
}

func normalizeQuery(q domain.VenuesQuery) domain.VenuesQuery {
	q.Query = strings.TrimSpace(q.Query)
	if q.Limit <= 0 {
		q.Limit = defaultPageSize
	}
	if q.Limit > maxPageSize {
		q.Limit = maxPageSize
	}
	if q.Page <= 0 {
		q.Page = 1
	}
	// newest listings first unless the caller asks otherwise
	if q.Sort == "" {
		q.Sort = defaultSort
	}
	if q.SortOrder == "" {
		q.SortOrder = defaultSortOrder
	}
	return q
}

// Calendar is the blocked-date view of one venue over a window.
type Calendar struct {
	VenueID     string      `json:"venueId"`
	From        time.Time   `json:"from"`
	To          time.Time   `json:"to"`
	BlockedDays []time.Time `json:"blockedDays"`
}

// BlockedDays lists the blocked dates of a venue inside [from, to].
func (s *VenueQueryService) BlockedDays(ctx context.Context, id string, from, to time.Time) (Calendar, error) {
	v, err := s.GetVenue(ctx, id)
	if err != nil {
		return Calendar{}, err
	}
	window := domain.BookingRange{DateFrom: availability.Day(from), DateTo: availability.Day(to)}
	days := availability.BlockedDays(window, v.Bookings)
	if days == nil {
		days = []time.Time{}
	}
	return Calendar{VenueID: id, From: window.DateFrom, To: window.DateTo, BlockedDays: days}, nil
}

// CheckRange reports whether [from, to] is free at the venue.
func (s *VenueQueryService) CheckRange(ctx context.Context, id string, from, to time.Time) (availability.Availability, error) {
	v, err := s.GetVenue(ctx, id)
	if err != nil {
		return availability.Availability{}, err
	}
	return availability.Check(domain.BookingRange{DateFrom: from, DateTo: to}, v.Bookings), nil
}

// RefreshVenues drops the cached page for q and loads it again.
func (s *VenueQueryService) RefreshVenues(ctx context.Context, q domain.VenuesQuery) (domain.VenuesPage, error) {
	q = normalizeQuery(q)
	if s.cache != nil {
		_ = s.cache.Del(ctx, venuesKey(q))
	}
	return s.ListVenues(ctx, q)
}
