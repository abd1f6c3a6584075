package domain

import "time"

type Media struct {
	URL string `json:"url"`
	Alt string `json:"alt,omitempty"`
}

type Meta struct {
	Wifi      bool `json:"wifi"`
	Parking   bool `json:"parking"`
	Breakfast bool `json:"breakfast"`
	Pets      bool `json:"pets"`
}

type Location struct {
	Address   string  `json:"address,omitempty"`
	City      string  `json:"city,omitempty"`
	Zip       string  `json:"zip,omitempty"`
	Country   string  `json:"country,omitempty"`
	Continent string  `json:"continent,omitempty"`
	Lat       float64 `json:"lat,omitempty"`
	Lng       float64 `json:"lng,omitempty"`
}

type Venue struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Media       []Media           `json:"media"`
	Price       float64           `json:"price"`
	MaxGuests   int               `json:"maxGuests"`
	Rating      float64           `json:"rating"`
	Meta        Meta              `json:"meta"`
	Location    Location          `json:"location"`
	Owner       *Profile          `json:"owner,omitempty"`
	Bookings    []ExistingBooking `json:"bookings,omitempty"`
	Created     time.Time         `json:"created"`
	Updated     time.Time         `json:"updated"`
}

func (v Venue) Pricing() VenuePricing {
	return VenuePricing{PricePerNight: v.Price, MaxGuests: v.MaxGuests}
}

// VenueInput is the body accepted by the create and update venue endpoints.
type VenueInput struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Media       []Media    `json:"media"`
	Price       float64    `json:"price"`
	MaxGuests   int        `json:"maxGuests"`
	Meta        Meta       `json:"meta"`
	Location    LocationIn `json:"location"`
}

type LocationIn struct {
	City    string `json:"city"`
	Country string `json:"country"`
}

// Read models & queries
type VenueView struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Location    string            `json:"location"`
	HeroImage   *Media            `json:"heroImage,omitempty"`
	Price       float64           `json:"price"`
	MaxGuests   int               `json:"maxGuests"`
	Rating      float64           `json:"rating"`
	Meta        Meta              `json:"meta"`
	Host        HostView          `json:"host"`
	Bookings    []ExistingBooking `json:"bookings"`
}

type HostView struct {
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl"`
	AvatarAlt string `json:"avatarAlt"`
}

type VenuesQuery struct {
	Query     string
	Limit     int
	Page      int
	Sort      string
	SortOrder string
}

type PageMeta struct {
	IsFirstPage  bool `json:"isFirstPage"`
	IsLastPage   bool `json:"isLastPage"`
	CurrentPage  int  `json:"currentPage"`
	PreviousPage *int `json:"previousPage"`
	NextPage     *int `json:"nextPage"`
	PageCount    int  `json:"pageCount"`
	TotalCount   int  `json:"totalCount"`
}

type VenuesPage struct {
	Items []Venue  `json:"items"`
	Meta  PageMeta `json:"meta"`
}
