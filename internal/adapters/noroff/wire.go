package noroff

import (
	"time"

	"holidaze/internal/availability"
	"holidaze/internal/domain"
)

// Wire shapes of the Noroff v2 holidaze resources. Dates arrive as ISO-8601
// strings and are parsed leniently; nullable objects are pointers.

type wireMedia struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

type wireLocation struct {
	Address   *string  `json:"address"`
	City      *string  `json:"city"`
	Zip       *string  `json:"zip"`
	Country   *string  `json:"country"`
	Continent *string  `json:"continent"`
	Lat       *float64 `json:"lat"`
	Lng       *float64 `json:"lng"`
}

type wireProfile struct {
	Name         string        `json:"name"`
	Email        string        `json:"email"`
	Bio          *string       `json:"bio"`
	Avatar       *wireMedia    `json:"avatar"`
	Banner       *wireMedia    `json:"banner"`
	VenueManager bool          `json:"venueManager"`
	AccessToken  string        `json:"accessToken,omitempty"`
	Bookings     []wireBooking `json:"bookings"`
	Venues       []wireVenue   `json:"venues"`
}

type wireBooking struct {
	ID       string       `json:"id"`
	DateFrom string       `json:"dateFrom"`
	DateTo   string       `json:"dateTo"`
	Guests   int          `json:"guests"`
	Customer *wireProfile `json:"customer"`
	Venue    *wireVenue   `json:"venue"`
}

type wireVenue struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Media       []wireMedia   `json:"media"`
	Price       float64       `json:"price"`
	MaxGuests   int           `json:"maxGuests"`
	Rating      float64       `json:"rating"`
	Created     string        `json:"created"`
	Updated     string        `json:"updated"`
	Meta        domain.Meta   `json:"meta"`
	Location    wireLocation  `json:"location"`
	Owner       *wireProfile  `json:"owner"`
	Bookings    []wireBooking `json:"bookings"`
}

func str(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func num(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

func media(m *wireMedia) *domain.Media {
	if m == nil || m.URL == "" {
		return nil
	}
	return &domain.Media{URL: m.URL, Alt: m.Alt}
}

func timestamp(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t.UTC()
}

// toBooking normalizes both ends to UTC calendar dates. Unparseable dates
// come out unset.
func toBooking(w wireBooking) domain.ExistingBooking {
	from, _ := availability.ParseDate(w.DateFrom)
	to, _ := availability.ParseDate(w.DateTo)
	b := domain.ExistingBooking{ID: w.ID, DateFrom: from, DateTo: to, Guests: w.Guests}
	if w.Customer != nil {
		p := toProfile(*w.Customer)
		b.Customer = &p
	}
	return b
}

func toBookings(ws []wireBooking) []domain.ExistingBooking {
	out := make([]domain.ExistingBooking, 0, len(ws))
	for _, w := range ws {
		b := toBooking(w)
		if b.DateFrom.IsZero() || b.DateTo.IsZero() {
			continue
		}
		out = append(out, b)
	}
	return out
}

func toVenue(w wireVenue) domain.Venue {
	v := domain.Venue{
		ID:          w.ID,
		Name:        w.Name,
		Description: w.Description,
		Media:       make([]domain.Media, 0, len(w.Media)),
		Price:       w.Price,
		MaxGuests:   w.MaxGuests,
		Rating:      w.Rating,
		Meta:        w.Meta,
		Location: domain.Location{
			Address:   str(w.Location.Address),
			City:      str(w.Location.City),
			Zip:       str(w.Location.Zip),
			Country:   str(w.Location.Country),
			Continent: str(w.Location.Continent),
			Lat:       num(w.Location.Lat),
			Lng:       num(w.Location.Lng),
		},
		Bookings: toBookings(w.Bookings),
		Created:  timestamp(w.Created),
		Updated:  timestamp(w.Updated),
	}
	for _, m := range w.Media {
		if m.URL != "" {
			v.Media = append(v.Media, domain.Media{URL: m.URL, Alt: m.Alt})
		}
	}
	if w.Owner != nil {
		p := toProfile(*w.Owner)
		v.Owner = &p
	}
	return v
}

func toVenues(ws []wireVenue) []domain.Venue {
	out := make([]domain.Venue, 0, len(ws))
	for _, w := range ws {
		out = append(out, toVenue(w))
	}
	return out
}

func toProfile(w wireProfile) domain.Profile {
	p := domain.Profile{
		Name:         w.Name,
		Email:        w.Email,
		Bio:          str(w.Bio),
		Avatar:       media(w.Avatar),
		Banner:       media(w.Banner),
		VenueManager: w.VenueManager,
	}
	for _, b := range w.Bookings {
		from, _ := availability.ParseDate(b.DateFrom)
		to, _ := availability.ParseDate(b.DateTo)
		pb := domain.ProfileBooking{ID: b.ID, DateFrom: from, DateTo: to, Guests: b.Guests}
		if b.Venue != nil {
			v := toVenue(*b.Venue)
			pb.Venue = &v
		}
		p.Bookings = append(p.Bookings, pb)
	}
	if len(w.Venues) > 0 {
		p.Venues = toVenues(w.Venues)
	}
	return p
}
