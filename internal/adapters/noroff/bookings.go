package noroff

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"holidaze/internal/domain"
)

// CreateBooking submits an engine-approved request. The API still enforces
// overlap itself and may reject with a 4xx.
func (c *Client) CreateBooking(ctx context.Context, token string, req domain.BookingRequest) (domain.ExistingBooking, error) {
	env, err := c.do(ctx, call{method: http.MethodPost, path: "/holidaze/bookings", endpoint: "booking_create", token: token, body: req})
	if err != nil {
		return domain.ExistingBooking{}, err
	}
	var w wireBooking
	if err := json.Unmarshal(env.Data, &w); err != nil {
		return domain.ExistingBooking{}, fmt.Errorf("noroff: decode booking: %w", err)
	}
	return toBooking(w), nil
}
