// Package session keeps the Booking API access token in a signed and
// encrypted cookie so browsers never see it in the clear.
package session

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/securecookie"
)

const (
	cookieName = "holidaze_session"
	defaultTTL = 24 * time.Hour
)

// Session is what the BFF remembers about a signed-in user.
type Session struct {
	Name         string    `json:"name"`
	AccessToken  string    `json:"accessToken"`
	VenueManager bool      `json:"venueManager"`
	Expires      time.Time `json:"expires"`
}

// LoggedIn holds only when both the profile name and the token are present.
func (s Session) LoggedIn() bool {
	return s.Name != "" && s.AccessToken != ""
}

type Manager struct {
	sc     *securecookie.SecureCookie
	secure bool
	now    func() time.Time
}

// NewManager builds a cookie manager. Empty keys are replaced by random ones,
// which invalidates every session on restart. A block key must be 16, 24 or
// 32 bytes long.
func NewManager(hashKey, blockKey []byte, secure bool) (*Manager, error) {
	if len(hashKey) == 0 {
		hashKey = securecookie.GenerateRandomKey(64)
	}
	if len(blockKey) == 0 {
		blockKey = securecookie.GenerateRandomKey(32)
	}
	switch len(blockKey) {
	case 16, 24, 32:
	default:
		return nil, fmt.Errorf("session: block key must be 16, 24 or 32 bytes, got %d", len(blockKey))
	}
	sc := securecookie.New(hashKey, blockKey)
	sc.SetSerializer(securecookie.JSONEncoder{})
	sc.MaxAge(int((30 * 24 * time.Hour).Seconds()))
	return &Manager{sc: sc, secure: secure, now: time.Now}, nil
}

// Save stores s. The cookie expires with the access token when the token
// carries an exp claim, after a day otherwise.
func (m *Manager) Save(w http.ResponseWriter, s Session) error {
	if !s.LoggedIn() {
		return errors.New("session: name and access token are required")
	}
	now := m.now()
	s.Expires = now.Add(defaultTTL)
	if exp, ok := TokenExpiry(s.AccessToken); ok {
		if !exp.After(now) {
			return errors.New("session: access token already expired")
		}
		s.Expires = exp
	}

	encoded, err := m.sc.Encode(cookieName, s)
	if err != nil {
		return fmt.Errorf("session: encode: %w", err)
	}
	http.SetCookie(w, &http.Cookie{
		Name: cookieName, Value: encoded, Path: "/",
		Expires: s.Expires, MaxAge: int(s.Expires.Sub(now).Seconds()),
		HttpOnly: true, Secure: m.secure, SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Load returns the session on r if present, intact and unexpired.
func (m *Manager) Load(r *http.Request) (Session, bool) {
	c, err := r.Cookie(cookieName)
	if err != nil {
		return Session{}, false
	}
	var s Session
	if err := m.sc.Decode(cookieName, c.Value, &s); err != nil {
		return Session{}, false
	}
	if !s.LoggedIn() || !m.now().Before(s.Expires) {
		return Session{}, false
	}
	return s, true
}

func (m *Manager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name: cookieName, Value: "", Path: "/", MaxAge: -1,
		HttpOnly: true, Secure: m.secure, SameSite: http.SameSiteLaxMode,
	})
}

// TokenExpiry reads the exp claim without verifying the signature; the
// Booking API remains the only judge of the token itself.
func TokenExpiry(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// TokenName reads the name claim without verifying the signature.
func TokenName(token string) string {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return ""
	}
	name, _ := claims["name"].(string)
	return name
}
