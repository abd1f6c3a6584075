package app

import (
	"strings"

	"holidaze/internal/domain"
)

// Placeholders shown when the Booking API leaves a venue field empty.
const (
	fallbackLocation    = "Location unavailable"
	fallbackOwner       = "Unknown owner"
	fallbackAvatarAlt   = "Owner avatar"
	fallbackName        = "Venue name unavailable"
	fallbackDescription = "Description unavailable"
)

// ToVenueView shapes a venue for the detail page.
func ToVenueView(v domain.Venue) domain.VenueView {
	out := domain.VenueView{
		ID:          v.ID,
		Name:        orDefault(v.Name, fallbackName),
		Description: orDefault(v.Description, fallbackDescription),
		Location:    locationLabel(v.Location),
		Price:       v.Price,
		MaxGuests:   v.MaxGuests,
		Rating:      v.Rating,
		Meta:        v.Meta,
		Host:        hostView(v.Owner),
		Bookings:    v.Bookings,
	}
	if out.Bookings == nil {
		out.Bookings = []domain.ExistingBooking{}
	}
	if len(v.Media) > 0 {
		hero := v.Media[0]
		if hero.Alt == "" {
			hero.Alt = out.Name
		}
		out.HeroImage = &hero
	}
	return out
}

func locationLabel(l domain.Location) string {
	city, country := strings.TrimSpace(l.City), strings.TrimSpace(l.Country)
	switch {
	case city != "" && country != "":
		return city + ", " + country
	case city != "":
		return city
	case country != "":
		return country
	}
	return fallbackLocation
}

func hostView(p *domain.Profile) domain.HostView {
	h := domain.HostView{Name: fallbackOwner, AvatarAlt: fallbackAvatarAlt}
	if p == nil {
		return h
	}
	h.Name = orDefault(p.Name, fallbackOwner)
	if p.Avatar != nil {
		h.AvatarURL = p.Avatar.URL
		h.AvatarAlt = orDefault(p.Avatar.Alt, fallbackAvatarAlt)
	}
	return h
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
