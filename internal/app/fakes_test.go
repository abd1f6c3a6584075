package app_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"holidaze/internal/domain"
)

// ---- fakes ----

type fakeSource struct {
	mu        sync.Mutex
	venues    map[string]domain.Venue
	pages     []domain.VenuesPage
	getCalls  int
	lastQuery domain.VenuesQuery
	err       error
}

func (f *fakeSource) ListVenues(ctx context.Context, q domain.VenuesQuery) (domain.VenuesPage, error) {
	f.mu.Lock()
	f.lastQuery = q
	f.mu.Unlock()
	if f.err != nil {
		return domain.VenuesPage{}, f.err
	}
	if q.Page < 1 || q.Page > len(f.pages) {
		return domain.VenuesPage{Meta: domain.PageMeta{IsLastPage: true}}, nil
	}
	return f.pages[q.Page-1], nil
}

func (f *fakeSource) GetVenue(ctx context.Context, id string) (domain.Venue, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.getCalls++
	if f.err != nil {
		return domain.Venue{}, f.err
	}
	v, ok := f.venues[id]
	if !ok {
		return domain.Venue{}, domain.ErrNotFound
	}
	return v, nil
}

// fakeCache round-trips through JSON like the redis adapter does.
type fakeCache struct {
	mu    sync.Mutex
	store map[string][]byte
	dels  []string
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dst)
}

func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.store == nil {
		c.store = map[string][]byte{}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.store[key] = b
	return nil
}

func (c *fakeCache) Del(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.store, key)
	c.dels = append(c.dels, key)
	return nil
}

func (c *fakeCache) has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.store[key]
	return ok
}

type fakeBookingAPI struct {
	calls []domain.BookingRequest
	token string
	err   error
}

func (f *fakeBookingAPI) CreateBooking(ctx context.Context, token string, req domain.BookingRequest) (domain.ExistingBooking, error) {
	f.calls = append(f.calls, req)
	f.token = token
	if f.err != nil {
		return domain.ExistingBooking{}, f.err
	}
	return domain.ExistingBooking{ID: "bk-1", DateFrom: req.DateFrom, DateTo: req.DateTo, Guests: req.Guests}, nil
}

type fakeAudit struct {
	subs []domain.Submission
	err  error
}

func (f *fakeAudit) Record(ctx context.Context, s domain.Submission) error {
	f.subs = append(f.subs, s)
	return f.err
}

func (f *fakeAudit) ListByVenue(ctx context.Context, venueID string, limit int) ([]domain.Submission, error) {
	var out []domain.Submission
	for _, s := range f.subs {
		if s.VenueID == venueID {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeListingAPI struct {
	created []domain.VenueInput
	deleted []string
}

func (f *fakeListingAPI) CreateVenue(ctx context.Context, token string, in domain.VenueInput) (domain.Venue, error) {
	f.created = append(f.created, in)
	return domain.Venue{ID: "new-1", Name: in.Name}, nil
}

func (f *fakeListingAPI) UpdateVenue(ctx context.Context, token, id string, in domain.VenueInput) (domain.Venue, error) {
	return domain.Venue{ID: id, Name: in.Name}, nil
}

func (f *fakeListingAPI) DeleteVenue(ctx context.Context, token, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeAccountAPI struct {
	registered []domain.Registration
}

func (f *fakeAccountAPI) Login(ctx context.Context, email, password string) (domain.AuthProfile, error) {
	if password != "correct-horse" {
		return domain.AuthProfile{}, domain.ErrUnauthorized
	}
	return domain.AuthProfile{Profile: domain.Profile{Name: "kari", Email: email}, AccessToken: "tok"}, nil
}

func (f *fakeAccountAPI) Register(ctx context.Context, in domain.Registration) (domain.Profile, error) {
	f.registered = append(f.registered, in)
	return domain.Profile{Name: in.Name, Email: in.Email, VenueManager: in.VenueManager}, nil
}

func (f *fakeAccountAPI) GetProfile(ctx context.Context, token, name string) (domain.Profile, error) {
	if token == "" {
		return domain.Profile{}, errors.New("no token")
	}
	return domain.Profile{Name: name}, nil
}

func (f *fakeAccountAPI) ListProfileVenues(ctx context.Context, token, name string) ([]domain.Venue, error) {
	return []domain.Venue{{ID: "v1"}}, nil
}

func (f *fakeAccountAPI) UpdateAvatar(ctx context.Context, token, name string, avatar domain.Media) (domain.Profile, error) {
	return domain.Profile{Name: name, Avatar: &avatar}, nil
}
