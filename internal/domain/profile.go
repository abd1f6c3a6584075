package domain

import "time"

type Profile struct {
	Name         string           `json:"name"`
	Email        string           `json:"email,omitempty"`
	Bio          string           `json:"bio,omitempty"`
	Avatar       *Media           `json:"avatar,omitempty"`
	Banner       *Media           `json:"banner,omitempty"`
	VenueManager bool             `json:"venueManager"`
	Bookings     []ProfileBooking `json:"bookings,omitempty"`
	Venues       []Venue          `json:"venues,omitempty"`
}

type ProfileBooking struct {
	ID       string    `json:"id"`
	DateFrom time.Time `json:"dateFrom"`
	DateTo   time.Time `json:"dateTo"`
	Guests   int       `json:"guests"`
	Venue    *Venue    `json:"venue,omitempty"`
}

// AuthProfile is the profile returned by a successful login.
type AuthProfile struct {
	Profile
	AccessToken string `json:"accessToken"`
}

type Registration struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	Avatar       *Media `json:"avatar,omitempty"`
	VenueManager bool   `json:"venueManager"`
}
