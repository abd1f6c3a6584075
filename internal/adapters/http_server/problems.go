package httpserver

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"holidaze/internal/adapters/noroff"
	"holidaze/internal/adapters/observability"
	"holidaze/internal/app"
	"holidaze/internal/availability"
	"holidaze/internal/domain"
	"holidaze/internal/listing"
)

type problem struct {
	Type   string            `json:"type"`
	Title  string            `json:"title"`
	Status int               `json:"status"`
	Detail string            `json:"detail,omitempty"`
	Reason string            `json:"reason,omitempty"`
	Errors map[string]string `json:"errors,omitempty"`
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	writeProblemBody(w, problem{Title: title, Status: status, Detail: detail})
}

func writeProblemBody(w http.ResponseWriter, p problem) {
	if p.Type == "" {
		p.Type = "about:blank"
	}
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(p.Status)
	if err := json.NewEncoder(w).Encode(p); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// writeError maps service and upstream errors onto problem responses.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		ve *availability.ValidationError
		le listing.Errors
		ae *noroff.APIError
	)
	switch {
	case errors.As(err, &ve):
		writeProblemBody(w, problem{Title: "Booking not allowed", Status: http.StatusUnprocessableEntity, Detail: ve.Message, Reason: string(ve.Reason)})
	case errors.As(err, &le):
		writeProblemBody(w, problem{Title: "Invalid venue", Status: http.StatusUnprocessableEntity, Errors: le})
	case errors.Is(err, app.ErrMissingCredentials), errors.Is(err, app.ErrInvalidRegistration), errors.Is(err, app.ErrInvalidAvatar):
		writeProblem(w, http.StatusBadRequest, "Bad Request", err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeProblem(w, http.StatusNotFound, "Not Found", upstreamDetail(err, "resource not found"))
	case errors.Is(err, domain.ErrUnauthorized):
		writeProblem(w, http.StatusUnauthorized, "Unauthorized", upstreamDetail(err, "invalid or expired credentials"))
	case errors.Is(err, domain.ErrForbidden):
		writeProblem(w, http.StatusForbidden, "Forbidden", upstreamDetail(err, "not allowed"))
	case errors.As(err, &ae) && ae.Status >= 400 && ae.Status < 500:
		writeProblem(w, ae.Status, http.StatusText(ae.Status), upstreamDetail(err, ""))
	case errors.Is(err, context.DeadlineExceeded):
		writeProblem(w, http.StatusGatewayTimeout, "Gateway Timeout", "the booking service did not answer in time")
	default:
		log.Error().Err(err).Str("type", observability.LabelErr(err)).Str("path", r.URL.Path).Msg("upstream failure")
		writeProblem(w, http.StatusBadGateway, "Bad Gateway", "the booking service is unavailable")
	}
}

func upstreamDetail(err error, def string) string {
	if msgs := noroff.Messages(err); len(msgs) > 0 {
		return strings.Join(msgs, "; ")
	}
	return def
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	return `W/"` + hex.EncodeToString(sum[:]) + `"`, body
}

// writeCached answers 304 when the client already holds this version.
func writeCached(w http.ResponseWriter, r *http.Request, v any) {
	etag, body := calcETagAndBody(v)
	if body == nil {
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "could not encode response")
		return
	}
	w.Header().Set("ETag", etag)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write cached body")
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid body", err.Error())
		return false
	}
	return true
}
