package availability

import (
	"fmt"
	"strings"
	"time"

	"holidaze/internal/domain"
)

const oneDay = 24 * time.Hour

// MaxWindowDays bounds calendar windows a caller may ask about.
const MaxWindowDays = 366

// Day normalizes t to UTC midnight of its UTC calendar date.
// The zero time stays zero so "unset" survives normalization.
func Day(t time.Time) time.Time {
	if t.IsZero() {
		return time.Time{}
	}
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// AddDays returns the calendar date n days after t.
func AddDays(t time.Time, n int) time.Time {
	return Day(t).AddDate(0, 0, n)
}

// ParseDate accepts YYYY-MM-DD or RFC 3339 (fractional seconds allowed) and
// returns the UTC calendar date. An empty string parses to the zero time.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range []string{time.DateOnly, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return Day(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("availability: invalid date %q", s)
}

// FormatDateTime renders the UTC-midnight ISO-8601 form sent to the Booking API.
func FormatDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return Day(t).Format(domain.DateTimeLayout)
}

// MinCheckout is the earliest end date selectable after dateFrom.
func MinCheckout(dateFrom time.Time) time.Time {
	return AddDays(dateFrom, 1)
}

// StartsInPast reports whether the selection begins before today's UTC date.
func StartsInPast(sel domain.CandidateSelection, today time.Time) bool {
	if sel.DateFrom.IsZero() {
		return false
	}
	return Day(sel.DateFrom).Before(Day(today))
}
