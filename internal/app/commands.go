package app

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"holidaze/internal/availability"
	"holidaze/internal/domain"
	"holidaze/internal/listing"
)

// BookingService validates selections against the live booking snapshot and
// submits the survivors. The audit log is optional.
type BookingService struct {
	venues *VenueQueryService
	api    domain.BookingAPI
	audit  domain.SubmissionLog
	now    func() time.Time
}

func NewBookingService(v *VenueQueryService, api domain.BookingAPI, audit domain.SubmissionLog) *BookingService {
	return &BookingService{venues: v, api: api, audit: audit, now: time.Now}
}

// Submit re-reads the venue past the cache so the overlap check sees the
// freshest bookings, then posts the request. Validation failures are returned
// as *availability.ValidationError and nothing is sent upstream.
func (s *BookingService) Submit(ctx context.Context, token, customer, venueID string, in SelectionInput) (domain.ExistingBooking, error) {
	v, err := s.venues.FreshVenue(ctx, venueID)
	if err != nil {
		return domain.ExistingBooking{}, err
	}

	sub := domain.Submission{
		ID:        uuid.NewString(),
		VenueID:   venueID,
		Customer:  customer,
		DateFrom:  availability.Day(in.DateFrom),
		DateTo:    availability.Day(in.DateTo),
		Guests:    in.Guests,
		CreatedAt: s.now().UTC(),
	}

	_, req, err := evaluate(v, in, s.now())
	if err != nil {
		reason, _ := availability.ReasonOf(err)
		sub.Outcome, sub.Reason = domain.OutcomeRejected, string(reason)
		s.record(ctx, sub)
		log.Info().Str("venue", venueID).Str("reason", string(reason)).Msg("booking rejected")
		return domain.ExistingBooking{}, err
	}

	b, err := s.api.CreateBooking(ctx, token, req)
	if err != nil {
		sub.Outcome, sub.Reason = domain.OutcomeFailed, truncate(err.Error(), 255)
		s.record(ctx, sub)
		log.Warn().Err(err).Str("venue", venueID).Msg("booking submission failed")
		return domain.ExistingBooking{}, fmt.Errorf("create booking: %w", err)
	}

	sub.Outcome, sub.BookingID = domain.OutcomeAccepted, b.ID
	s.record(ctx, sub)
	s.venues.Invalidate(ctx, venueID)
	log.Info().Str("venue", venueID).Str("booking", b.ID).Int("guests", b.Guests).Msg("booking accepted")
	return b, nil
}

// History lists the latest audited submissions for a venue.
func (s *BookingService) History(ctx context.Context, venueID string, limit int) ([]domain.Submission, error) {
	if s.audit == nil {
		return nil, errors.New("submission log is not configured")
	}
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	return s.audit.ListByVenue(ctx, venueID, limit)
}

func (s *BookingService) record(ctx context.Context, sub domain.Submission) {
	if s.audit == nil {
		return
	}
	// the audit trail must not decide the outcome of a booking
	if err := s.audit.Record(ctx, sub); err != nil {
		log.Warn().Err(err).Str("submission", sub.ID).Msg("audit record failed")
	}
}

// truncate keeps at most n bytes of s without splitting a UTF-8 sequence.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

// ListingService runs venue manager commands after validating the form.
type ListingService struct {
	venues *VenueQueryService
	api    domain.ListingAPI
}

func NewListingService(v *VenueQueryService, api domain.ListingAPI) *ListingService {
	return &ListingService{venues: v, api: api}
}

func (s *ListingService) Create(ctx context.Context, token string, f listing.Form) (domain.Venue, error) {
	if errs := f.Validate(); errs != nil {
		return domain.Venue{}, errs
	}
	v, err := s.api.CreateVenue(ctx, token, f.Payload())
	if err != nil {
		return domain.Venue{}, fmt.Errorf("create venue: %w", err)
	}
	log.Info().Str("venue", v.ID).Msg("venue created")
	return v, nil
}

func (s *ListingService) Update(ctx context.Context, token, id string, f listing.Form) (domain.Venue, error) {
	if errs := f.Validate(); errs != nil {
		return domain.Venue{}, errs
	}
	v, err := s.api.UpdateVenue(ctx, token, id, f.Payload())
	if err != nil {
		return domain.Venue{}, fmt.Errorf("update venue %s: %w", id, err)
	}
	s.venues.Invalidate(ctx, id)
	return v, nil
}

func (s *ListingService) Delete(ctx context.Context, token, id string) error {
	if err := s.api.DeleteVenue(ctx, token, id); err != nil {
		return fmt.Errorf("delete venue %s: %w", id, err)
	}
	s.venues.Invalidate(ctx, id)
	log.Info().Str("venue", id).Msg("venue deleted")
	return nil
}

// EditForm pre-fills the listing form for an existing venue.
func (s *ListingService) EditForm(ctx context.Context, id string) (listing.Form, error) {
	v, err := s.venues.GetVenue(ctx, id)
	if err != nil {
		return listing.Form{}, err
	}
	return listing.FormFromVenue(v), nil
}
