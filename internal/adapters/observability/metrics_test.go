package observability_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"holidaze/internal/adapters/observability"
)

func TestMetricsRegistryAndHandler(t *testing.T) {
	reg := observability.InitRegistry()

	// record samples so the vectors are exported
	observability.ObserveHTTP("/test", "GET", 200, 12*time.Millisecond)
	observability.ObserveExternal("noroff", "venue", 200, 30*time.Millisecond)
	observability.ObserveValidation("DateRangeOverlap")
	observability.ObserveValidation("")
	observability.ObserveSubmission("accepted")
	observability.ObserveCache("venue", "hit")

	mh := observability.MetricsHandler(reg)
	req := httptest.NewRequest("GET", "/metrics", nil)
	rr := httptest.NewRecorder()
	mh.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("metrics status: %d", rr.Code)
	}
	body, _ := io.ReadAll(rr.Body)
	out := string(body)
	for _, want := range []string{
		"holidaze_http_requests_total",
		"holidaze_external_requests_total",
		`holidaze_booking_validations_total{reason="DateRangeOverlap"}`,
		`holidaze_booking_validations_total{reason="ok"}`,
		`holidaze_booking_submissions_total{outcome="accepted"}`,
		`holidaze_cache_events_total{cache="venue",event="hit"}`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %s in output", want)
		}
	}
}

func TestInitRegistry_Twice(t *testing.T) {
	// each registry is independent, so a second call must not panic
	_ = observability.InitRegistry()
	_ = observability.InitRegistry()
}

func TestLabelErr(t *testing.T) {
	if got := observability.LabelErr(nil); got != "none" {
		t.Fatalf("LabelErr(nil) = %q", got)
	}
	if got := observability.LabelErr(io.EOF); got != "*errors.errorString" {
		t.Fatalf("LabelErr(io.EOF) = %q", got)
	}
}
