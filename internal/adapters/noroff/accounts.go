package noroff

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"holidaze/internal/domain"
)

func (c *Client) Login(ctx context.Context, email, password string) (domain.AuthProfile, error) {
	body := map[string]string{"email": email, "password": password}
	env, err := c.do(ctx, call{method: http.MethodPost, path: "/auth/login?_holidaze=true", endpoint: "auth_login", body: body})
	if err != nil {
		return domain.AuthProfile{}, err
	}
	var w wireProfile
	if err := json.Unmarshal(env.Data, &w); err != nil {
		return domain.AuthProfile{}, fmt.Errorf("noroff: decode login: %w", err)
	}
	return domain.AuthProfile{Profile: toProfile(w), AccessToken: w.AccessToken}, nil
}

func (c *Client) Register(ctx context.Context, in domain.Registration) (domain.Profile, error) {
	env, err := c.do(ctx, call{method: http.MethodPost, path: "/auth/register", endpoint: "auth_register", body: in})
	if err != nil {
		return domain.Profile{}, err
	}
	return decodeProfile(env)
}

// GetProfile includes the profile's bookings, each with its venue.
func (c *Client) GetProfile(ctx context.Context, token, name string) (domain.Profile, error) {
	path := "/holidaze/profiles/" + url.PathEscape(name) + "?_bookings=true&_venues=true"
	env, err := c.do(ctx, call{method: http.MethodGet, path: path, endpoint: "profile", token: token})
	if err != nil {
		return domain.Profile{}, err
	}
	return decodeProfile(env)
}

func (c *Client) ListProfileVenues(ctx context.Context, token, name string) ([]domain.Venue, error) {
	path := "/holidaze/profiles/" + url.PathEscape(name) + "/venues?_bookings=true"
	env, err := c.do(ctx, call{method: http.MethodGet, path: path, endpoint: "profile_venues", token: token})
	if err != nil {
		return nil, err
	}
	var ws []wireVenue
	if err := json.Unmarshal(env.Data, &ws); err != nil {
		return nil, fmt.Errorf("noroff: decode profile venues: %w", err)
	}
	return toVenues(ws), nil
}

func (c *Client) UpdateAvatar(ctx context.Context, token, name string, avatar domain.Media) (domain.Profile, error) {
	body := map[string]domain.Media{"avatar": avatar}
	path := "/holidaze/profiles/" + url.PathEscape(name)
	env, err := c.do(ctx, call{method: http.MethodPut, path: path, endpoint: "profile_update", token: token, body: body})
	if err != nil {
		return domain.Profile{}, err
	}
	return decodeProfile(env)
}

func decodeProfile(env envelope) (domain.Profile, error) {
	var w wireProfile
	if err := json.Unmarshal(env.Data, &w); err != nil {
		return domain.Profile{}, fmt.Errorf("noroff: decode profile: %w", err)
	}
	return toProfile(w), nil
}
