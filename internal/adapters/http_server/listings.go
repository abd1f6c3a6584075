package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"holidaze/internal/listing"
)

func (h *Handlers) createVenue(w http.ResponseWriter, r *http.Request) {
	var f listing.Form
	if !decodeJSON(w, r, &f) {
		return
	}
	v, err := h.Listings.Create(r.Context(), sessionFrom(r.Context()).AccessToken, f)
	if err != nil {
		writeError(w, r, err)
		return
	}
	w.Header().Set("Location", "/v1/venues/"+v.ID)
	writeJSON(w, http.StatusCreated, v)
}

func (h *Handlers) venueForm(w http.ResponseWriter, r *http.Request) {
	f, err := h.Listings.EditForm(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, f)
}

func (h *Handlers) updateVenue(w http.ResponseWriter, r *http.Request) {
	var f listing.Form
	if !decodeJSON(w, r, &f) {
		return
	}
	v, err := h.Listings.Update(r.Context(), sessionFrom(r.Context()).AccessToken, chi.URLParam(r, "id"), f)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (h *Handlers) deleteVenue(w http.ResponseWriter, r *http.Request) {
	if err := h.Listings.Delete(r.Context(), sessionFrom(r.Context()).AccessToken, chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
