package app_test

import (
	"context"
	"errors"
	"testing"

	"holidaze/internal/app"
	"holidaze/internal/domain"
)

func TestLogin(t *testing.T) {
	svc := app.NewAccountService(&fakeAccountAPI{})
	if _, err := svc.Login(context.Background(), " ", "x"); !errors.Is(err, app.ErrMissingCredentials) {
		t.Fatalf("expected missing credentials, got %v", err)
	}
	if _, err := svc.Login(context.Background(), "kari@stud.noroff.no", "wrong"); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
	ap, err := svc.Login(context.Background(), "kari@stud.noroff.no", "correct-horse")
	if err != nil || ap.AccessToken != "tok" {
		t.Fatalf("login: %v %+v", err, ap)
	}
}

func TestRegister(t *testing.T) {
	api := &fakeAccountAPI{}
	svc := app.NewAccountService(api)
	ctx := context.Background()

	bad := []domain.Registration{
		{Name: "kari nord", Email: "k@stud.noroff.no", Password: "longenough"},
		{Name: "kari", Email: "nope", Password: "longenough"},
		{Name: "kari", Email: "k@stud.noroff.no", Password: "short"},
	}
	for _, in := range bad {
		if _, err := svc.Register(ctx, in); !errors.Is(err, app.ErrInvalidRegistration) {
			t.Fatalf("expected invalid registration for %+v, got %v", in, err)
		}
	}
	if _, err := svc.Register(ctx, domain.Registration{Name: "kari", Email: "k@stud.noroff.no", Password: "longenough", Avatar: &domain.Media{URL: "not a url"}}); !errors.Is(err, app.ErrInvalidAvatar) {
		t.Fatalf("expected invalid avatar, got %v", err)
	}

	p, err := svc.Register(ctx, domain.Registration{Name: "kari", Email: "k@stud.noroff.no", Password: "longenough", Avatar: &domain.Media{}, VenueManager: true})
	if err != nil || !p.VenueManager {
		t.Fatalf("register: %v %+v", err, p)
	}
	if api.registered[0].Avatar != nil {
		t.Fatalf("empty avatar should be dropped")
	}
}

func TestUpdateAvatar(t *testing.T) {
	svc := app.NewAccountService(&fakeAccountAPI{})
	if _, err := svc.UpdateAvatar(context.Background(), "tok", "kari", domain.Media{URL: "ftp://x"}); !errors.Is(err, app.ErrInvalidAvatar) {
		t.Fatalf("expected invalid avatar, got %v", err)
	}
	p, err := svc.UpdateAvatar(context.Background(), "tok", "kari", domain.Media{URL: "https://img/a.jpg"})
	if err != nil || p.Avatar == nil || p.Avatar.Alt != "kari" {
		t.Fatalf("avatar: %v %+v", err, p)
	}
}
