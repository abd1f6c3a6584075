package availability

import (
	"time"

	"holidaze/internal/domain"
)

// NewSelection starts a session with one guest and no dates.
func NewSelection() domain.CandidateSelection {
	return domain.CandidateSelection{Guests: 1}
}

// SelectDateFrom commits a new start date. The end date, overlap flag and
// cost are reset because they depended on the previous start.
func SelectDateFrom(sel domain.CandidateSelection, date time.Time) domain.CandidateSelection {
	sel.DateFrom = Day(date)
	sel.DateTo = time.Time{}
	sel.Overlaps = false
	sel.TotalCost = 0
	return sel
}

// SelectDateTo commits an end date and recomputes overlap and cost against
// the committed start date. With no start date there is nothing to overlap.
func SelectDateTo(sel domain.CandidateSelection, date time.Time, bookings []domain.ExistingBooking, pricing domain.VenuePricing) domain.CandidateSelection {
	sel.DateTo = Day(date)
	sel.Overlaps = !sel.DateFrom.IsZero() && !sel.DateTo.IsZero() && HasOverlap(sel.Range(), bookings)
	sel.TotalCost = ComputeTotalCost(sel.DateFrom, sel.DateTo, pricing.PricePerNight)
	return sel
}

// SelectGuests stores the guest count as given; ValidateGuestCount judges it.
func SelectGuests(sel domain.CandidateSelection, guests int) domain.CandidateSelection {
	sel.Guests = guests
	return sel
}

// Apply replays a full selection through the same steps a user takes, so a
// selection received from outside carries freshly derived fields.
func Apply(dateFrom, dateTo time.Time, guests int, bookings []domain.ExistingBooking, pricing domain.VenuePricing) domain.CandidateSelection {
	sel := SelectDateFrom(NewSelection(), dateFrom)
	if !dateTo.IsZero() {
		sel = SelectDateTo(sel, dateTo, bookings, pricing)
	}
	return SelectGuests(sel, guests)
}
