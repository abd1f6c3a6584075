package session_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"holidaze/internal/adapters/session"
)

func token(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("upstream-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return s
}

func newManager(t *testing.T) *session.Manager {
	t.Helper()
	m, err := session.NewManager([]byte("hash-key-for-tests-hash-key-for-tests"), []byte("0123456789abcdef0123456789abcdef"), false)
	if err != nil {
		t.Fatalf("manager: %v", err)
	}
	return m
}

// roundTrip saves s and replays the cookie on a new request.
func roundTrip(t *testing.T, m *session.Manager, s session.Session) (*http.Request, error) {
	t.Helper()
	rr := httptest.NewRecorder()
	if err := m.Save(rr, s); err != nil {
		return nil, err
	}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rr.Result().Cookies() {
		req.AddCookie(c)
	}
	return req, nil
}

func TestSaveLoad(t *testing.T) {
	m := newManager(t)
	tok := token(t, jwt.MapClaims{"name": "kari", "email": "kari@stud.noroff.no"})

	req, err := roundTrip(t, m, session.Session{Name: "kari", AccessToken: tok, VenueManager: true})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	s, ok := m.Load(req)
	if !ok || !s.LoggedIn() || s.Name != "kari" || s.AccessToken != tok || !s.VenueManager {
		t.Fatalf("unexpected session: %+v ok=%v", s, ok)
	}
	if d := time.Until(s.Expires); d < 23*time.Hour || d > 25*time.Hour {
		t.Fatalf("default expiry not applied: %v", s.Expires)
	}
}

func TestSave_UsesTokenExpiry(t *testing.T) {
	m := newManager(t)
	exp := time.Now().Add(2 * time.Hour).Truncate(time.Second)
	tok := token(t, jwt.MapClaims{"name": "kari", "exp": exp.Unix()})

	req, err := roundTrip(t, m, session.Session{Name: "kari", AccessToken: tok})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	s, ok := m.Load(req)
	if !ok || !s.Expires.Equal(exp) {
		t.Fatalf("expected expiry %v, got %v ok=%v", exp, s.Expires, ok)
	}
}

func TestSave_Rejects(t *testing.T) {
	m := newManager(t)
	if _, err := roundTrip(t, m, session.Session{Name: "kari"}); err == nil {
		t.Fatalf("expected error without token")
	}
	if _, err := roundTrip(t, m, session.Session{AccessToken: "tok"}); err == nil {
		t.Fatalf("expected error without name")
	}
	expired := token(t, jwt.MapClaims{"exp": time.Now().Add(-time.Minute).Unix()})
	if _, err := roundTrip(t, m, session.Session{Name: "kari", AccessToken: expired}); err == nil {
		t.Fatalf("expected error for expired token")
	}
}

func TestLoad_TamperedOrMissing(t *testing.T) {
	m := newManager(t)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, ok := m.Load(req); ok {
		t.Fatalf("expected no session")
	}
	req.AddCookie(&http.Cookie{Name: "holidaze_session", Value: "garbage"})
	if _, ok := m.Load(req); ok {
		t.Fatalf("tampered cookie must not load")
	}

	// a cookie from another key pair is rejected
	other, _ := session.NewManager(nil, nil, false)
	req, err := roundTrip(t, other, session.Session{Name: "kari", AccessToken: "opaque-token"})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, ok := m.Load(req); ok {
		t.Fatalf("foreign cookie must not load")
	}
}

func TestClear(t *testing.T) {
	m := newManager(t)
	rr := httptest.NewRecorder()
	m.Clear(rr)
	cs := rr.Result().Cookies()
	if len(cs) != 1 || cs[0].MaxAge >= 0 {
		t.Fatalf("expected expiring cookie, got %+v", cs)
	}
}

func TestTokenClaims(t *testing.T) {
	tok := token(t, jwt.MapClaims{"name": "kari"})
	if got := session.TokenName(tok); got != "kari" {
		t.Fatalf("TokenName = %q", got)
	}
	if _, ok := session.TokenExpiry(tok); ok {
		t.Fatalf("no exp claim expected")
	}
	if session.TokenName("not-a-jwt") != "" {
		t.Fatalf("expected empty name for opaque token")
	}
}

func TestNewManager_BadBlockKey(t *testing.T) {
	if _, err := session.NewManager([]byte("h"), []byte("short"), false); err == nil {
		t.Fatalf("expected block key error")
	}
}
