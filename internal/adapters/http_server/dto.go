package httpserver

import (
	"time"

	"holidaze/internal/app"
	"holidaze/internal/availability"
	"holidaze/internal/domain"
)

// selectionBody is a date selection as typed by a browser: YYYY-MM-DD or
// ISO-8601 strings, empty when not chosen yet. An omitted guest count means
// one guest, the booking form's starting value; an explicit 0 is kept and
// fails guest validation.
type selectionBody struct {
	DateFrom string `json:"dateFrom"`
	DateTo   string `json:"dateTo"`
	Guests   *int   `json:"guests"`
}

func (b selectionBody) input() (app.SelectionInput, error) {
	from, err := availability.ParseDate(b.DateFrom)
	if err != nil {
		return app.SelectionInput{}, err
	}
	to, err := availability.ParseDate(b.DateTo)
	if err != nil {
		return app.SelectionInput{}, err
	}
	guests := 1
	if b.Guests != nil {
		guests = *b.Guests
	}
	return app.SelectionInput{DateFrom: from, DateTo: to, Guests: guests}, nil
}

type bookingBody struct {
	VenueID string `json:"venueId"`
	selectionBody
}

type quoteResponse struct {
	VenueID       string                 `json:"venueId"`
	DateFrom      string                 `json:"dateFrom,omitempty"`
	DateTo        string                 `json:"dateTo,omitempty"`
	MinCheckout   string                 `json:"minCheckout,omitempty"`
	Guests        int                    `json:"guests"`
	MaxGuests     int                    `json:"maxGuests"`
	Nights        int                    `json:"nights"`
	PricePerNight float64                `json:"pricePerNight"`
	TotalCost     float64                `json:"totalCost"`
	Overlaps      bool                   `json:"overlaps"`
	Bookable      bool                   `json:"bookable"`
	Reason        string                 `json:"reason,omitempty"`
	Message       string                 `json:"message,omitempty"`
	Request       *domain.BookingRequest `json:"request,omitempty"`
}

func toQuoteResponse(q app.Quote) quoteResponse {
	out := quoteResponse{
		VenueID:       q.VenueID,
		DateFrom:      availability.FormatDateTime(q.Selection.DateFrom),
		DateTo:        availability.FormatDateTime(q.Selection.DateTo),
		Guests:        q.Selection.Guests,
		MaxGuests:     q.MaxGuests,
		Nights:        q.Nights,
		PricePerNight: q.Price,
		TotalCost:     q.Selection.TotalCost,
		Overlaps:      q.Selection.Overlaps,
		Bookable:      q.Bookable,
		Reason:        string(q.Reason),
		Message:       q.Message,
		Request:       q.Request,
	}
	if !q.Selection.DateFrom.IsZero() {
		out.MinCheckout = availability.FormatDateTime(availability.MinCheckout(q.Selection.DateFrom))
	}
	return out
}

type availabilityResponse struct {
	VenueID      string                   `json:"venueId"`
	From         string                   `json:"from"`
	To           string                   `json:"to"`
	BlockedDays  []string                 `json:"blockedDays"`
	Available    *bool                    `json:"available,omitempty"`
	Nights       int                      `json:"nights,omitempty"`
	Conflicts    []domain.ExistingBooking `json:"conflicts,omitempty"`
	FirstBlocked string                   `json:"firstBlocked,omitempty"`
}

func dates(ts []time.Time) []string {
	out := make([]string, 0, len(ts))
	for _, t := range ts {
		out = append(out, t.Format(time.DateOnly))
	}
	return out
}

// profileResponse never carries the access token.
type profileResponse struct {
	Name         string                  `json:"name"`
	Email        string                  `json:"email,omitempty"`
	Bio          string                  `json:"bio,omitempty"`
	Avatar       *domain.Media           `json:"avatar,omitempty"`
	Banner       *domain.Media           `json:"banner,omitempty"`
	VenueManager bool                    `json:"venueManager"`
	Bookings     []domain.ProfileBooking `json:"bookings"`
	Venues       []domain.Venue          `json:"venues"`
}

func toProfileResponse(p domain.Profile) profileResponse {
	out := profileResponse{
		Name: p.Name, Email: p.Email, Bio: p.Bio,
		Avatar: p.Avatar, Banner: p.Banner, VenueManager: p.VenueManager,
		Bookings: p.Bookings, Venues: p.Venues,
	}
	if out.Bookings == nil {
		out.Bookings = []domain.ProfileBooking{}
	}
	if out.Venues == nil {
		out.Venues = []domain.Venue{}
	}
	return out
}

type loginBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerBody struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	AvatarURL    string `json:"avatarUrl"`
	VenueManager bool   `json:"venueManager"`
}

type avatarBody struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

type sessionResponse struct {
	LoggedIn     bool   `json:"loggedIn"`
	Name         string `json:"name,omitempty"`
	VenueManager bool   `json:"venueManager"`
}
