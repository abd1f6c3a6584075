package domain

import (
	"encoding/json"
	"time"
)

// DateTimeLayout matches the ISO-8601 form the Booking API expects
// (millisecond precision, UTC designator).
const DateTimeLayout = "2006-01-02T15:04:05.000Z07:00"

// BookingRange is an inclusive pair of calendar dates at UTC midnight.
type BookingRange struct {
	DateFrom time.Time `json:"dateFrom"`
	DateTo   time.Time `json:"dateTo"`
}

type ExistingBooking struct {
	ID       string    `json:"id,omitempty"`
	DateFrom time.Time `json:"dateFrom"`
	DateTo   time.Time `json:"dateTo"`
	Guests   int       `json:"guests"`
	Customer *Profile  `json:"customer,omitempty"`
}

func (b ExistingBooking) Range() BookingRange {
	return BookingRange{DateFrom: b.DateFrom, DateTo: b.DateTo}
}

type VenuePricing struct {
	PricePerNight float64
	MaxGuests     int
}

// CandidateSelection is the caller-owned state of one date-selection session.
// A zero DateFrom or DateTo means the date is not selected yet.
type CandidateSelection struct {
	DateFrom  time.Time `json:"dateFrom"`
	DateTo    time.Time `json:"dateTo"`
	Guests    int       `json:"guests"`
	Overlaps  bool      `json:"overlaps"`
	TotalCost float64   `json:"totalCost"`
}

func (s CandidateSelection) Range() BookingRange {
	return BookingRange{DateFrom: s.DateFrom, DateTo: s.DateTo}
}

type BookingRequest struct {
	DateFrom time.Time
	DateTo   time.Time
	Guests   int
	VenueID  string
}

func (r BookingRequest) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		DateFrom string `json:"dateFrom"`
		DateTo   string `json:"dateTo"`
		Guests   int    `json:"guests"`
		VenueID  string `json:"venueId"`
	}{
		DateFrom: r.DateFrom.UTC().Format(DateTimeLayout),
		DateTo:   r.DateTo.UTC().Format(DateTimeLayout),
		Guests:   r.Guests,
		VenueID:  r.VenueID,
	})
}

type Outcome string

const (
	OutcomeAccepted Outcome = "accepted"
	OutcomeRejected Outcome = "rejected"
	OutcomeFailed   Outcome = "failed"
)

// Submission is one audited attempt to place a booking.
type Submission struct {
	ID        string
	VenueID   string
	Customer  string
	DateFrom  time.Time
	DateTo    time.Time
	Guests    int
	Outcome   Outcome
	Reason    string
	BookingID string
	CreatedAt time.Time
}
