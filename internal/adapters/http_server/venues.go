package httpserver

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"holidaze/internal/adapters/observability"
	"holidaze/internal/availability"
	"holidaze/internal/domain"
)

const defaultWindowDays = 90

func (h *Handlers) listVenues(w http.ResponseWriter, r *http.Request) {
	qs := r.URL.Query()
	q := domain.VenuesQuery{
		Query:     strings.TrimSpace(qs.Get("q")),
		Sort:      qs.Get("sort"),
		SortOrder: qs.Get("sortOrder"),
	}
	for name, dst := range map[string]*int{"limit": &q.Limit, "page": &q.Page} {
		if v := qs.Get(name); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 {
				writeProblem(w, http.StatusBadRequest, "Invalid "+name, name+" must be a positive integer")
				return
			}
			*dst = n
		}
	}
	if q.SortOrder != "" && q.SortOrder != "asc" && q.SortOrder != "desc" {
		writeProblem(w, http.StatusBadRequest, "Invalid sortOrder", "sortOrder must be asc or desc")
		return
	}

	page, err := h.Venues.ListVenues(r.Context(), q)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeCached(w, r, page)
}

func (h *Handlers) getVenue(w http.ResponseWriter, r *http.Request) {
	v, err := h.Venues.GetVenueView(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeCached(w, r, v)
}

// venueAvailability lists blocked days in [from, to]. With both bounds given
// the range is also checked as a candidate stay.
func (h *Handlers) venueAvailability(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	from, err := availability.ParseDate(r.URL.Query().Get("from"))
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid from", err.Error())
		return
	}
	to, err := availability.ParseDate(r.URL.Query().Get("to"))
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid to", err.Error())
		return
	}
	candidate := !from.IsZero() && !to.IsZero()
	if from.IsZero() {
		from = availability.Day(time.Now())
	}
	if to.IsZero() {
		to = availability.AddDays(from, defaultWindowDays)
	}
	if to.Before(from) {
		writeProblem(w, http.StatusBadRequest, "Invalid window", "to must not be before from")
		return
	}
	if availability.Nights(from, to) >= availability.MaxWindowDays {
		writeProblem(w, http.StatusBadRequest, "Invalid window", "window is limited to "+strconv.Itoa(availability.MaxWindowDays)+" days")
		return
	}

	cal, err := h.Venues.BlockedDays(r.Context(), id, from, to)
	if err != nil {
		writeError(w, r, err)
		return
	}
	out := availabilityResponse{
		VenueID:     id,
		From:        cal.From.Format(time.DateOnly),
		To:          cal.To.Format(time.DateOnly),
		BlockedDays: dates(cal.BlockedDays),
	}
	if candidate {
		a, err := h.Venues.CheckRange(r.Context(), id, from, to)
		if err != nil {
			writeError(w, r, err)
			return
		}
		out.Available, out.Nights, out.Conflicts = &a.Available, a.Nights, a.Conflicts
		if a.FirstBlocked != nil {
			out.FirstBlocked = a.FirstBlocked.Format(time.DateOnly)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) quote(w http.ResponseWriter, r *http.Request) {
	var body selectionBody
	if !decodeJSON(w, r, &body) {
		return
	}
	in, err := body.input()
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid date", err.Error())
		return
	}
	q, err := h.Quotes.Quote(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	observability.ObserveValidation(string(q.Reason))
	writeJSON(w, http.StatusOK, toQuoteResponse(q))
}
