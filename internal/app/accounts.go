package app

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"holidaze/internal/domain"
)

var (
	ErrMissingCredentials  = errors.New("email and password are required")
	ErrInvalidRegistration = errors.New("invalid registration")
	ErrInvalidAvatar       = errors.New("avatar must be a valid image URL")
)

var (
	httpURL   = regexp.MustCompile(`^https?://\S+$`)
	nameChars = regexp.MustCompile(`^[A-Za-z0-9_]+$`)
)

// AccountService passes auth and profile calls through to the Booking API
// after the cheap checks it would reject anyway.
type AccountService struct {
	api domain.AccountAPI
}

func NewAccountService(api domain.AccountAPI) *AccountService {
	return &AccountService{api: api}
}

func (s *AccountService) Login(ctx context.Context, email, password string) (domain.AuthProfile, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return domain.AuthProfile{}, ErrMissingCredentials
	}
	return s.api.Login(ctx, email, password)
}

func (s *AccountService) Register(ctx context.Context, in domain.Registration) (domain.Profile, error) {
	in.Name, in.Email = strings.TrimSpace(in.Name), strings.TrimSpace(in.Email)
	switch {
	case in.Name == "" || !nameChars.MatchString(in.Name):
		return domain.Profile{}, fmt.Errorf("%w: name may only contain letters, numbers and underscores", ErrInvalidRegistration)
	case in.Email == "" || !strings.Contains(in.Email, "@"):
		return domain.Profile{}, fmt.Errorf("%w: email is required", ErrInvalidRegistration)
	case len(in.Password) < 8:
		return domain.Profile{}, fmt.Errorf("%w: password must be at least 8 characters", ErrInvalidRegistration)
	}
	if in.Avatar != nil && strings.TrimSpace(in.Avatar.URL) == "" {
		in.Avatar = nil
	}
	if in.Avatar != nil && !httpURL.MatchString(in.Avatar.URL) {
		return domain.Profile{}, ErrInvalidAvatar
	}
	return s.api.Register(ctx, in)
}

func (s *AccountService) Profile(ctx context.Context, token, name string) (domain.Profile, error) {
	return s.api.GetProfile(ctx, token, name)
}

func (s *AccountService) Venues(ctx context.Context, token, name string) ([]domain.Venue, error) {
	return s.api.ListProfileVenues(ctx, token, name)
}

func (s *AccountService) UpdateAvatar(ctx context.Context, token, name string, avatar domain.Media) (domain.Profile, error) {
	avatar.URL = strings.TrimSpace(avatar.URL)
	if !httpURL.MatchString(avatar.URL) {
		return domain.Profile{}, ErrInvalidAvatar
	}
	if avatar.Alt == "" {
		avatar.Alt = name
	}
	return s.api.UpdateAvatar(ctx, token, name, avatar)
}
