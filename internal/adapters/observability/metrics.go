package observability

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

const namespace = "holidaze"

func counter(name, help string, labels ...string) *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: namespace, Name: name, Help: help}, labels)
}

func histogram(name, help string, labels ...string) *prometheus.HistogramVec {
	return prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      name,
		Help:      help,
		Buckets:   prometheus.DefBuckets,
	}, labels)
}

var (
	HTTPRequests     = counter("http_requests_total", "BFF requests by route pattern.", "route", "method", "status")
	HTTPLatency      = histogram("http_request_duration_seconds", "BFF request duration.", "route", "method")
	ExternalRequests = counter("external_requests_total", "Calls to the Noroff API.", "service", "endpoint", "status")
	ExternalLatency  = histogram("external_request_duration_seconds", "Noroff API call duration.", "service", "endpoint")

	// event: hit|miss|set|del
	CacheEvents = counter("cache_events_total", "Venue cache events.", "cache", "event")

	// reason: ok or the refusal reason
	BookingValidations = counter("booking_validations_total", "Selections run through the availability engine.", "reason")

	// outcome: accepted|rejected|failed
	BookingSubmissions = counter("booking_submissions_total", "Booking submissions by outcome.", "outcome")
)

func collectors() []prometheus.Collector {
	return []prometheus.Collector{
		HTTPRequests, HTTPLatency,
		ExternalRequests, ExternalLatency,
		CacheEvents, BookingValidations, BookingSubmissions,
	}
}

// InitRegistry returns a registry holding every holidaze collector. Calling
// it twice is safe; each call builds a fresh registry.
func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors()...)
	return reg
}

func MetricsHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on its own listener. An empty addr disables it.
func Serve(addr string, reg *prometheus.Registry) {
	if addr == "" {
		return
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", MetricsHandler(reg))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		log.Info().Str("addr", addr).Msg("metrics server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("metrics server failed")
		}
	}()
}

func ObserveHTTP(route, method string, status int, dur time.Duration) {
	HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

// ObserveExternal records one upstream attempt; status 0 means no response.
func ObserveExternal(service, endpoint string, status int, dur time.Duration) {
	ExternalRequests.WithLabelValues(service, endpoint, strconv.Itoa(status)).Inc()
	ExternalLatency.WithLabelValues(service, endpoint).Observe(dur.Seconds())
}

func ObserveCache(cache, event string) { CacheEvents.WithLabelValues(cache, event).Inc() }

// ObserveValidation counts one engine decision; an empty reason counts as ok.
func ObserveValidation(reason string) {
	if reason == "" {
		reason = "ok"
	}
	BookingValidations.WithLabelValues(reason).Inc()
}

func ObserveSubmission(outcome string) { BookingSubmissions.WithLabelValues(outcome).Inc() }

// LabelErr names the dynamic type of err for log fields.
func LabelErr(err error) string {
	if err == nil {
		return "none"
	}
	return fmt.Sprintf("%T", err)
}
