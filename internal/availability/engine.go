// Package availability decides which dates of a venue can be booked and what
// a stay costs. Every function is pure: callers pass the booking snapshot and
// their own selection on each call.
package availability

import (
	"sort"
	"time"

	"holidaze/internal/domain"
)

// IsDateBlocked reports whether date falls inside any booking, both ends inclusive.
func IsDateBlocked(date time.Time, bookings []domain.ExistingBooking) bool {
	d := Day(date)
	for _, b := range bookings {
		if !d.Before(Day(b.DateFrom)) && !d.After(Day(b.DateTo)) {
			return true
		}
	}
	return false
}

// overlaps treats both ranges as closed intervals, so a checkout on another
// booking's check-in day counts as a conflict.
func overlaps(a, b domain.BookingRange) bool {
	return !Day(a.DateFrom).After(Day(b.DateTo)) && !Day(a.DateTo).Before(Day(b.DateFrom))
}

// HasOverlap reports whether candidate shares at least one date with any booking.
func HasOverlap(candidate domain.BookingRange, bookings []domain.ExistingBooking) bool {
	for _, b := range bookings {
		if overlaps(candidate, b.Range()) {
			return true
		}
	}
	return false
}

// Conflicts returns the bookings candidate overlaps, in input order.
func Conflicts(candidate domain.BookingRange, bookings []domain.ExistingBooking) []domain.ExistingBooking {
	var out []domain.ExistingBooking
	for _, b := range bookings {
		if overlaps(candidate, b.Range()) {
			out = append(out, b)
		}
	}
	return out
}

// Nights counts the nights between two dates. Unset or reversed dates give 0.
func Nights(dateFrom, dateTo time.Time) int {
	if dateFrom.IsZero() || dateTo.IsZero() {
		return 0
	}
	n := int(Day(dateTo).Sub(Day(dateFrom)) / oneDay)
	if n < 0 {
		return 0
	}
	return n
}

// ComputeTotalCost prices the nights between dateFrom and dateTo.
// A one-night stay has dateTo = dateFrom + 1 day.
func ComputeTotalCost(dateFrom, dateTo time.Time, pricePerNight float64) float64 {
	if pricePerNight <= 0 {
		return 0
	}
	return float64(Nights(dateFrom, dateTo)) * pricePerNight
}

// ValidateGuestCount reports whether guests is within [1, maxGuests].
func ValidateGuestCount(guests, maxGuests int) bool {
	return guests >= 1 && guests <= maxGuests
}

// BuildBookingRequest checks the selection in order (dates set, at least one
// night, no overlap, guest count) and stops at the first failure.
func BuildBookingRequest(sel domain.CandidateSelection, venueID string, bookings []domain.ExistingBooking, pricing domain.VenuePricing) (domain.BookingRequest, error) {
	if sel.DateFrom.IsZero() || sel.DateTo.IsZero() {
		return domain.BookingRequest{}, ErrEmptyDateSelection
	}
	if Nights(sel.DateFrom, sel.DateTo) < 1 {
		return domain.BookingRequest{}, ErrInvalidDateRange
	}
	if HasOverlap(sel.Range(), bookings) {
		return domain.BookingRequest{}, ErrDateRangeOverlap
	}
	if !ValidateGuestCount(sel.Guests, pricing.MaxGuests) {
		return domain.BookingRequest{}, ErrGuestCountOutOfRange
	}
	return domain.BookingRequest{
		DateFrom: Day(sel.DateFrom),
		DateTo:   Day(sel.DateTo),
		Guests:   sel.Guests,
		VenueID:  venueID,
	}, nil
}

// Availability is the report for one candidate range.
type Availability struct {
	Available    bool                     `json:"available"`
	Nights       int                      `json:"nights"`
	Conflicts    []domain.ExistingBooking `json:"conflicts,omitempty"`
	FirstBlocked *time.Time               `json:"firstBlocked,omitempty"`
}

// Check reports whether candidate is free and, if not, which bookings collide
// and the first blocked date inside the candidate.
func Check(candidate domain.BookingRange, bookings []domain.ExistingBooking) Availability {
	out := Availability{
		Nights:    Nights(candidate.DateFrom, candidate.DateTo),
		Conflicts: Conflicts(candidate, bookings),
	}
	out.Available = len(out.Conflicts) == 0
	for _, b := range out.Conflicts {
		first := Day(b.DateFrom)
		if from := Day(candidate.DateFrom); from.After(first) {
			first = from
		}
		if out.FirstBlocked == nil || first.Before(*out.FirstBlocked) {
			f := first
			out.FirstBlocked = &f
		}
	}
	return out
}

// BlockedDays lists every blocked date inside window, ascending and unique.
// Windows longer than MaxWindowDays are cut at that length.
func BlockedDays(window domain.BookingRange, bookings []domain.ExistingBooking) []time.Time {
	start, end := Day(window.DateFrom), Day(window.DateTo)
	if start.IsZero() || end.IsZero() || end.Before(start) {
		return nil
	}
	if limit := AddDays(start, MaxWindowDays-1); end.After(limit) {
		end = limit
	}

	seen := make(map[time.Time]struct{})
	for _, b := range bookings {
		from, to := Day(b.DateFrom), Day(b.DateTo)
		if from.Before(start) {
			from = start
		}
		if to.After(end) {
			to = end
		}
		for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
			seen[d] = struct{}{}
		}
	}

	out := make([]time.Time, 0, len(seen))
	for d := range seen {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}
