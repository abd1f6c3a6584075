package app

import (
	"context"
	"time"

	"holidaze/internal/availability"
	"holidaze/internal/domain"
)

// SelectionInput is a date selection as a client sends it. Zero dates are unset.
type SelectionInput struct {
	DateFrom time.Time
	DateTo   time.Time
	Guests   int
}

// Quote is the engine's verdict on a selection at one venue.
type Quote struct {
	VenueID   string                    `json:"venueId"`
	Selection domain.CandidateSelection `json:"selection"`
	Nights    int                       `json:"nights"`
	MaxGuests int                       `json:"maxGuests"`
	Price     float64                   `json:"pricePerNight"`
	Bookable  bool                      `json:"bookable"`
	Reason    availability.Reason       `json:"reason,omitempty"`
	Message   string                    `json:"message,omitempty"`
	Request   *domain.BookingRequest    `json:"request,omitempty"`
}

// evaluate runs the selection through the engine, then rejects stays that
// start before today.
func evaluate(v domain.Venue, in SelectionInput, today time.Time) (domain.CandidateSelection, domain.BookingRequest, error) {
	sel := availability.Apply(in.DateFrom, in.DateTo, in.Guests, v.Bookings, v.Pricing())
	req, err := availability.BuildBookingRequest(sel, v.ID, v.Bookings, v.Pricing())
	if err != nil {
		return sel, domain.BookingRequest{}, err
	}
	if availability.StartsInPast(sel, today) {
		return sel, domain.BookingRequest{}, availability.ErrDateInPast
	}
	return sel, req, nil
}

// QuoteService prices selections without submitting them.
type QuoteService struct {
	venues *VenueQueryService
	now    func() time.Time
}

func NewQuoteService(v *VenueQueryService) *QuoteService {
	return &QuoteService{venues: v, now: time.Now}
}

// Quote never returns a validation error; the verdict is in the result.
// Errors are reserved for failing to load the venue.
func (s *QuoteService) Quote(ctx context.Context, venueID string, in SelectionInput) (Quote, error) {
	v, err := s.venues.GetVenue(ctx, venueID)
	if err != nil {
		return Quote{}, err
	}
	sel, req, err := evaluate(v, in, s.now())
	q := Quote{
		VenueID:   venueID,
		Selection: sel,
		Nights:    availability.Nights(sel.DateFrom, sel.DateTo),
		MaxGuests: v.MaxGuests,
		Price:     v.Price,
		Bookable:  err == nil,
	}
	if err != nil {
		var ok bool
		if q.Reason, ok = availability.ReasonOf(err); !ok {
			return Quote{}, err
		}
		q.Message = err.Error()
		return q, nil
	}
	q.Request = &req
	return q, nil
}
