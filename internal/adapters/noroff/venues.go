package noroff

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"holidaze/internal/domain"
)

func (c *Client) ListVenues(ctx context.Context, q domain.VenuesQuery) (domain.VenuesPage, error) {
	v := url.Values{}
	v.Set("_owner", "true")
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.Sort != "" {
		v.Set("sort", q.Sort)
	}
	if q.SortOrder != "" {
		v.Set("sortOrder", q.SortOrder)
	}
	path, endpoint := "/holidaze/venues", "venues"
	if q.Query != "" {
		v.Set("q", q.Query)
		path, endpoint = "/holidaze/venues/search", "venues_search"
	}

	env, err := c.do(ctx, call{method: http.MethodGet, path: path + "?" + v.Encode(), endpoint: endpoint})
	if err != nil {
		return domain.VenuesPage{}, err
	}
	var ws []wireVenue
	if err := json.Unmarshal(env.Data, &ws); err != nil {
		return domain.VenuesPage{}, fmt.Errorf("noroff: decode venues: %w", err)
	}
	page := domain.VenuesPage{Items: toVenues(ws)}
	if len(env.Meta) > 0 {
		if err := json.Unmarshal(env.Meta, &page.Meta); err != nil {
			return domain.VenuesPage{}, fmt.Errorf("noroff: decode venues meta: %w", err)
		}
	}
	return page, nil
}

// GetVenue returns the venue with its owner and current bookings.
func (c *Client) GetVenue(ctx context.Context, id string) (domain.Venue, error) {
	path := "/holidaze/venues/" + url.PathEscape(id) + "?_owner=true&_bookings=true"
	env, err := c.do(ctx, call{method: http.MethodGet, path: path, endpoint: "venue"})
	if err != nil {
		return domain.Venue{}, err
	}
	return decodeVenue(env)
}

func (c *Client) CreateVenue(ctx context.Context, token string, in domain.VenueInput) (domain.Venue, error) {
	env, err := c.do(ctx, call{method: http.MethodPost, path: "/holidaze/venues", endpoint: "venue_create", token: token, body: in})
	if err != nil {
		return domain.Venue{}, err
	}
	return decodeVenue(env)
}

func (c *Client) UpdateVenue(ctx context.Context, token, id string, in domain.VenueInput) (domain.Venue, error) {
	path := "/holidaze/venues/" + url.PathEscape(id)
	env, err := c.do(ctx, call{method: http.MethodPut, path: path, endpoint: "venue_update", token: token, body: in})
	if err != nil {
		return domain.Venue{}, err
	}
	return decodeVenue(env)
}

func (c *Client) DeleteVenue(ctx context.Context, token, id string) error {
	path := "/holidaze/venues/" + url.PathEscape(id)
	_, err := c.do(ctx, call{method: http.MethodDelete, path: path, endpoint: "venue_delete", token: token})
	return err
}

func decodeVenue(env envelope) (domain.Venue, error) {
	var w wireVenue
	if err := json.Unmarshal(env.Data, &w); err != nil {
		return domain.Venue{}, fmt.Errorf("noroff: decode venue: %w", err)
	}
	return toVenue(w), nil
}
