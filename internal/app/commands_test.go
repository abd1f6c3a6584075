package app_test

import (
	"context"
	"errors"
	"testing"

	"holidaze/internal/app"
	"holidaze/internal/availability"
	"holidaze/internal/domain"
	"holidaze/internal/listing"
)

func newBooking(src *fakeSource, cache *fakeCache, api *fakeBookingAPI, audit domain.SubmissionLog) *app.BookingService {
	return app.NewBookingService(newQueries(src, cache), api, audit)
}

func TestSubmit_Accepted(t *testing.T) {
	src := &fakeSource{venues: map[string]domain.Venue{"v1": cabin()}}
	cache := &fakeCache{}
	api := &fakeBookingAPI{}
	audit := &fakeAudit{}
	svc := newBooking(src, cache, api, audit)

	b, err := svc.Submit(context.Background(), "tok", "ola", "v1", app.SelectionInput{DateFrom: day("2099-06-16"), DateTo: day("2099-06-18"), Guests: 2})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if b.ID != "bk-1" || len(api.calls) != 1 || api.token != "tok" {
		t.Fatalf("unexpected booking %+v calls %+v", b, api.calls)
	}
	want := domain.BookingRequest{DateFrom: day("2099-06-16"), DateTo: day("2099-06-18"), Guests: 2, VenueID: "v1"}
	if api.calls[0] != want {
		t.Fatalf("request: %+v", api.calls[0])
	}
	if len(audit.subs) != 1 || audit.subs[0].Outcome != domain.OutcomeAccepted || audit.subs[0].BookingID != "bk-1" || audit.subs[0].ID == "" {
		t.Fatalf("audit: %+v", audit.subs)
	}
	if cache.has("venue:v1") {
		t.Fatalf("venue cache should be evicted after a booking")
	}
}

func TestSubmit_RejectedNeverReachesAPI(t *testing.T) {
	cases := []struct {
		name string
		in   app.SelectionInput
		want error
	}{
		{"overlap", app.SelectionInput{DateFrom: day("2099-06-15"), DateTo: day("2099-06-20"), Guests: 2}, availability.ErrDateRangeOverlap},
		{"no end date", app.SelectionInput{DateFrom: day("2099-06-16"), Guests: 2}, availability.ErrEmptyDateSelection},
		{"too many guests", app.SelectionInput{DateFrom: day("2099-06-16"), DateTo: day("2099-06-18"), Guests: 5}, availability.ErrGuestCountOutOfRange},
		{"in the past", app.SelectionInput{DateFrom: day("2001-06-16"), DateTo: day("2001-06-18"), Guests: 2}, availability.ErrDateInPast},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			src := &fakeSource{venues: map[string]domain.Venue{"v1": cabin()}}
			api := &fakeBookingAPI{}
			audit := &fakeAudit{}
			svc := newBooking(src, &fakeCache{}, api, audit)

			_, err := svc.Submit(context.Background(), "tok", "ola", "v1", tc.in)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if len(api.calls) != 0 {
				t.Fatalf("no request may be sent, got %d", len(api.calls))
			}
			if len(audit.subs) != 1 || audit.subs[0].Outcome != domain.OutcomeRejected {
				t.Fatalf("audit: %+v", audit.subs)
			}
		})
	}
}

func TestSubmit_UsesFreshBookings(t *testing.T) {
	src := &fakeSource{venues: map[string]domain.Venue{"v1": cabin()}}
	cache := &fakeCache{}
	q := newQueries(src, cache)
	_, _ = q.GetVenue(context.Background(), "v1") // stale copy cached

	// someone books 16-18 upstream after the cache was filled
	v := cabin()
	v.Bookings = append(v.Bookings, domain.ExistingBooking{ID: "b2", DateFrom: day("2099-06-16"), DateTo: day("2099-06-18")})
	src.venues["v1"] = v

	api := &fakeBookingAPI{}
	svc := app.NewBookingService(q, api, nil)
	_, err := svc.Submit(context.Background(), "tok", "ola", "v1", app.SelectionInput{DateFrom: day("2099-06-16"), DateTo: day("2099-06-18"), Guests: 2})
	if !errors.Is(err, availability.ErrDateRangeOverlap) {
		t.Fatalf("expected overlap against fresh bookings, got %v", err)
	}
}

func TestSubmit_UpstreamFailure(t *testing.T) {
	src := &fakeSource{venues: map[string]domain.Venue{"v1": cabin()}}
	api := &fakeBookingAPI{err: errors.New("boom")}
	audit := &fakeAudit{err: errors.New("db down")}
	svc := newBooking(src, &fakeCache{}, api, audit)

	_, err := svc.Submit(context.Background(), "tok", "ola", "v1", app.SelectionInput{DateFrom: day("2099-06-16"), DateTo: day("2099-06-18"), Guests: 2})
	if err == nil || errors.Is(err, availability.ErrDateRangeOverlap) {
		t.Fatalf("expected upstream error, got %v", err)
	}
	if len(audit.subs) != 1 || audit.subs[0].Outcome != domain.OutcomeFailed || audit.subs[0].Reason != "boom" {
		t.Fatalf("audit: %+v", audit.subs)
	}
}

func TestHistory(t *testing.T) {
	audit := &fakeAudit{subs: []domain.Submission{{VenueID: "v1"}, {VenueID: "v2"}}}
	svc := newBooking(&fakeSource{}, nil, &fakeBookingAPI{}, audit)
	got, err := svc.History(context.Background(), "v1", 0)
	if err != nil || len(got) != 1 {
		t.Fatalf("history: %v %+v", err, got)
	}

	svc = newBooking(&fakeSource{}, nil, &fakeBookingAPI{}, nil)
	if _, err := svc.History(context.Background(), "v1", 10); err == nil {
		t.Fatalf("expected error without a submission log")
	}
}

func TestListing_CreateValidates(t *testing.T) {
	api := &fakeListingAPI{}
	svc := app.NewListingService(newQueries(&fakeSource{}, nil), api)

	_, err := svc.Create(context.Background(), "tok", listing.Form{Title: "x"})
	var errs listing.Errors
	if !errors.As(err, &errs) || errs["city"] == "" {
		t.Fatalf("expected listing errors, got %v", err)
	}
	if len(api.created) != 0 {
		t.Fatalf("invalid form must not be sent")
	}

	form := listing.FormFromVenue(cabin())
	form.Description = "A quiet cabin by the water, with a sauna."
	v, err := svc.Create(context.Background(), "tok", form)
	if err != nil || v.ID != "new-1" || len(api.created) != 1 {
		t.Fatalf("create: %v %+v", err, v)
	}
	if api.created[0].Media[0].Alt != "Cabin" {
		t.Fatalf("payload: %+v", api.created[0])
	}
}

func TestListing_DeleteEvicts(t *testing.T) {
	src := &fakeSource{venues: map[string]domain.Venue{"v1": cabin()}}
	cache := &fakeCache{}
	q := newQueries(src, cache)
	_, _ = q.GetVenue(context.Background(), "v1")

	api := &fakeListingAPI{}
	svc := app.NewListingService(q, api)
	if err := svc.Delete(context.Background(), "tok", "v1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if cache.has("venue:v1") || len(api.deleted) != 1 {
		t.Fatalf("expected eviction and upstream delete")
	}

	f, err := svc.EditForm(context.Background(), "v1")
	if err != nil || f.City != "Bergen" || f.ImageURL != "https://img/1.jpg" {
		t.Fatalf("edit form: %v %+v", err, f)
	}
}
