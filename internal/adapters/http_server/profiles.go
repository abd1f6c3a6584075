package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"holidaze/internal/domain"
)

func (h *Handlers) getProfile(w http.ResponseWriter, r *http.Request) {
	p, err := h.Accounts.Profile(r.Context(), sessionFrom(r.Context()).AccessToken, chi.URLParam(r, "name"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toProfileResponse(p))
}

func (h *Handlers) profileVenues(w http.ResponseWriter, r *http.Request) {
	vs, err := h.Accounts.Venues(r.Context(), sessionFrom(r.Context()).AccessToken, chi.URLParam(r, "name"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	if vs == nil {
		vs = []domain.Venue{}
	}
	writeJSON(w, http.StatusOK, vs)
}

// updateAvatar only lets users change their own avatar.
func (h *Handlers) updateAvatar(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	s := sessionFrom(r.Context())
	if s.Name != name {
		writeProblem(w, http.StatusForbidden, "Forbidden", "you can only update your own avatar")
		return
	}
	var body avatarBody
	if !decodeJSON(w, r, &body) {
		return
	}
	p, err := h.Accounts.UpdateAvatar(r.Context(), s.AccessToken, name, domain.Media{URL: body.URL, Alt: body.Alt})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toProfileResponse(p))
}
