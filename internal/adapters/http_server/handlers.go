package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"holidaze/internal/adapters/session"
	"holidaze/internal/app"
)

type Handlers struct {
	Venues   *app.VenueQueryService
	Quotes   *app.QuoteService
	Bookings *app.BookingService
	Listings *app.ListingService
	Accounts *app.AccountService
	Sessions *session.Manager
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })

	s.mux.Route("/v1", func(r chi.Router) {
		r.Get("/venues", h.listVenues)
		r.Get("/venues/{id}", h.getVenue)
		r.Get("/venues/{id}/availability", h.venueAvailability)
		r.Post("/venues/{id}/quote", h.quote)

		r.Post("/auth/login", h.login)
		r.Post("/auth/register", h.register)
		r.Post("/auth/logout", h.logout)
		r.Get("/session", h.getSession)

		r.Group(func(r chi.Router) {
			r.Use(RequireSession(h.Sessions))
			r.Post("/bookings", h.createBooking)
			r.Post("/venues", h.createVenue)
			r.Get("/venues/{id}/form", h.venueForm)
			r.Put("/venues/{id}", h.updateVenue)
			r.Delete("/venues/{id}", h.deleteVenue)
			r.Get("/profiles/{name}", h.getProfile)
			r.Get("/profiles/{name}/venues", h.profileVenues)
			r.Put("/profiles/{name}/avatar", h.updateAvatar)
		})
	})
}
