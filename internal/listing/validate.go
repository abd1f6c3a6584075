// Package listing validates the venue form a manager fills in and turns it
// into the create/update body the Booking API accepts.
package listing

import (
	"regexp"
	"sort"
	"strings"

	"holidaze/internal/domain"
)

const (
	minDescription = 20
	maxGuests      = 100
	maxPrice       = 10000
)

var imageURL = regexp.MustCompile(`^https?://\S+$`)

type Form struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	ImageURL    string      `json:"imageUrl"`
	Price       float64     `json:"price"`
	MaxGuests   int         `json:"maxGuests"`
	City        string      `json:"city"`
	Country     string      `json:"country"`
	Meta        domain.Meta `json:"meta"`
}

// Errors maps a form field to the message shown next to it.
type Errors map[string]string

func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+e[f])
	}
	return "invalid venue: " + strings.Join(parts, "; ")
}

// Validate returns nil when the form can be submitted.
func (f Form) Validate() Errors {
	errs := Errors{}
	if strings.TrimSpace(f.Title) == "" {
		errs["title"] = "Title is required."
	}

	switch desc := strings.TrimSpace(f.Description); {
	case desc == "":
		errs["description"] = "Description is required."
	case len([]rune(desc)) < minDescription:
		errs["description"] = "Description must be at least 20 characters long."
	}

	if strings.TrimSpace(f.City) == "" {
		errs["city"] = "City is required."
	}
	if strings.TrimSpace(f.Country) == "" {
		errs["country"] = "Country is required."
	}

	switch {
	case f.MaxGuests < 1:
		errs["maxGuests"] = "Number of guests must be at least 1."
	case f.MaxGuests > maxGuests:
		errs["maxGuests"] = "Number of guests cannot be greater than 100."
	}

	switch {
	case f.Price < 1:
		errs["price"] = "Price per night must be at least 1."
	case f.Price > maxPrice:
		errs["price"] = "Price per night cannot be greater than 10,000."
	}

	switch u := strings.TrimSpace(f.ImageURL); {
	case u == "":
		errs["imageUrl"] = "Venue image URL is required."
	case !imageURL.MatchString(u):
		errs["imageUrl"] = "Please enter a valid image URL."
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Payload builds the upstream venue body. The image alt text is the title.
func (f Form) Payload() domain.VenueInput {
	in := domain.VenueInput{
		Name:        strings.TrimSpace(f.Title),
		Description: strings.TrimSpace(f.Description),
		Media:       []domain.Media{},
		Price:       f.Price,
		MaxGuests:   f.MaxGuests,
		Meta:        f.Meta,
		Location: domain.LocationIn{
			City:    strings.TrimSpace(f.City),
			Country: strings.TrimSpace(f.Country),
		},
	}
	if u := strings.TrimSpace(f.ImageURL); u != "" {
		in.Media = append(in.Media, domain.Media{URL: u, Alt: in.Name})
	}
	return in
}

// FormFromVenue pre-fills an edit form from a stored venue.
func FormFromVenue(v domain.Venue) Form {
	f := Form{
		Title:       v.Name,
		Description: v.Description,
		Price:       v.Price,
		MaxGuests:   v.MaxGuests,
		City:        v.Location.City,
		Country:     v.Location.Country,
		Meta:        v.Meta,
	}
	if len(v.Media) > 0 {
		f.ImageURL = v.Media[0].URL
	}
	return f
}
