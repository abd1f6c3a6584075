package httpserver

import (
	"net/http"
	"strings"

	"holidaze/internal/adapters/observability"
	"holidaze/internal/availability"
	"holidaze/internal/domain"
)

func (h *Handlers) createBooking(w http.ResponseWriter, r *http.Request) {
	var body bookingBody
	if !decodeJSON(w, r, &body) {
		return
	}
	if strings.TrimSpace(body.VenueID) == "" {
		writeProblem(w, http.StatusBadRequest, "Invalid body", "venueId is required")
		return
	}
	in, err := body.input()
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid date", err.Error())
		return
	}

	s := sessionFrom(r.Context())
	b, err := h.Bookings.Submit(r.Context(), s.AccessToken, s.Name, body.VenueID, in)
	switch reason, ok := availability.ReasonOf(err); {
	case err == nil:
		observability.ObserveValidation("")
		observability.ObserveSubmission(string(domain.OutcomeAccepted))
	case ok:
		observability.ObserveValidation(string(reason))
		observability.ObserveSubmission(string(domain.OutcomeRejected))
	default:
		observability.ObserveSubmission(string(domain.OutcomeFailed))
	}
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, b)
}
