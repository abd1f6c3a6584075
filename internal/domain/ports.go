package domain

import (
	"context"
	"errors"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)

// VenueSource reads venues and their booking snapshots from the Booking API.
type VenueSource interface {
	ListVenues(ctx context.Context, q VenuesQuery) (VenuesPage, error)
	GetVenue(ctx context.Context, id string) (Venue, error)
}

type BookingAPI interface {
	CreateBooking(ctx context.Context, token string, req BookingRequest) (ExistingBooking, error)
}

type ListingAPI interface {
	CreateVenue(ctx context.Context, token string, in VenueInput) (Venue, error)
	UpdateVenue(ctx context.Context, token, id string, in VenueInput) (Venue, error)
	DeleteVenue(ctx context.Context, token, id string) error
}

type AccountAPI interface {
	Login(ctx context.Context, email, password string) (AuthProfile, error)
	Register(ctx context.Context, in Registration) (Profile, error)
	GetProfile(ctx context.Context, token, name string) (Profile, error)
	ListProfileVenues(ctx context.Context, token, name string) ([]Venue, error)
	UpdateAvatar(ctx context.Context, token, name string, avatar Media) (Profile, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

type SubmissionLog interface {
	Record(ctx context.Context, s Submission) error
	ListByVenue(ctx context.Context, venueID string, limit int) ([]Submission, error)
}
