package httpserver

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"holidaze/internal/adapters/session"
	"holidaze/internal/domain"
)

func (h *Handlers) login(w http.ResponseWriter, r *http.Request) {
	var body loginBody
	if !decodeJSON(w, r, &body) {
		return
	}
	ap, err := h.Accounts.Login(r.Context(), body.Email, body.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}
	s := session.Session{Name: ap.Name, AccessToken: ap.AccessToken, VenueManager: ap.VenueManager}
	if err := h.Sessions.Save(w, s); err != nil {
		log.Warn().Err(err).Str("name", ap.Name).Msg("session not saved")
		writeProblem(w, http.StatusBadGateway, "Bad Gateway", "login did not return a usable session")
		return
	}
	writeJSON(w, http.StatusOK, toProfileResponse(ap.Profile))
}

func (h *Handlers) register(w http.ResponseWriter, r *http.Request) {
	var body registerBody
	if !decodeJSON(w, r, &body) {
		return
	}
	in := domain.Registration{
		Name:         body.Name,
		Email:        body.Email,
		Password:     body.Password,
		VenueManager: body.VenueManager,
	}
	if u := strings.TrimSpace(body.AvatarURL); u != "" {
		in.Avatar = &domain.Media{URL: u, Alt: body.Name}
	}
	p, err := h.Accounts.Register(r.Context(), in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toProfileResponse(p))
}

func (h *Handlers) logout(w http.ResponseWriter, r *http.Request) {
	h.Sessions.Clear(w)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) getSession(w http.ResponseWriter, r *http.Request) {
	s, ok := h.Sessions.Load(r)
	if !ok {
		writeJSON(w, http.StatusOK, sessionResponse{})
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{LoggedIn: true, Name: s.Name, VenueManager: s.VenueManager})
}
