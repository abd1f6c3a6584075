package noroff

import (
	"bytes"
	"context"
	crand "crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"holidaze/internal/adapters/observability"
	"holidaze/internal/domain"
)

const maxAttempts = 4

type Client struct {
	base string
	hc   *http.Client
	key  string
	rl   *rate.Limiter
}

// New builds a client for the Noroff v2 API. key may be empty; the holidaze
// endpoints will then answer 401.
func New(base, key string, rps int) (*Client, error) {
	if base == "" {
		return nil, fmt.Errorf("noroff: base URL is required")
	}
	if _, err := url.Parse(base); err != nil {
		return nil, fmt.Errorf("noroff: base URL: %w", err)
	}
	if rps <= 0 {
		rps = 5
	}
	return &Client{
		base: strings.TrimRight(base, "/"),
		hc:   &http.Client{Timeout: 20 * time.Second},
		key:  key,
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
	}, nil
}

var (
	ErrNotFound     = fmt.Errorf("noroff: %w", domain.ErrNotFound)
	ErrUnauthorized = fmt.Errorf("noroff: %w", domain.ErrUnauthorized)
	ErrForbidden    = fmt.Errorf("noroff: %w", domain.ErrForbidden)
)

// APIError is a non-2xx answer that carried the API's error envelope.
type APIError struct {
	Status   int
	Messages []string
	kind     error
}

func (e *APIError) Error() string {
	if len(e.Messages) == 0 {
		return fmt.Sprintf("noroff: status %d", e.Status)
	}
	return fmt.Sprintf("noroff: status %d: %s", e.Status, strings.Join(e.Messages, "; "))
}

func (e *APIError) Unwrap() error { return e.kind }

type envelope struct {
	Data json.RawMessage `json:"data"`
	Meta json.RawMessage `json:"meta"`
}

type errorEnvelope struct {
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
	StatusCode int `json:"statusCode"`
}

type call struct {
	method   string
	path     string // includes query string
	endpoint string // metrics label
	token    string
	body     any
}

// do sends c and returns the response envelope. Idempotent methods are retried
// on 429 and transient 5xx; POST only on 429, which the API sends before
// doing any work.
func (c *Client) do(ctx context.Context, cl call) (envelope, error) {
	var payload []byte
	if cl.body != nil {
		b, err := json.Marshal(cl.body)
		if err != nil {
			return envelope{}, fmt.Errorf("noroff: encode %s: %w", cl.endpoint, err)
		}
		payload = b
	}

	var lastErr error
	for i := 0; i < maxAttempts; i++ {
		if err := c.rl.Wait(ctx); err != nil {
			return envelope{}, err
		}

		req, err := http.NewRequestWithContext(ctx, cl.method, c.base+cl.path, bodyReader(payload))
		if err != nil {
			return envelope{}, err
		}
		if c.key != "" {
			req.Header.Set("X-Noroff-API-Key", c.key)
		}
		if cl.token != "" {
			req.Header.Set("Authorization", "Bearer "+cl.token)
		}
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("User-Agent", "holidaze-bff/1.0")

		start := time.Now()
		resp, err := c.hc.Do(req)
		if err != nil {
			observability.ObserveExternal("noroff", cl.endpoint, 0, time.Since(start))
			if ctx.Err() != nil {
				return envelope{}, ctx.Err()
			}
			lastErr = err
			if cl.method != http.MethodPost && i < maxAttempts-1 && sleepCtx(ctx, backoff(i)) {
				continue
			}
			if ctx.Err() != nil {
				return envelope{}, ctx.Err()
			}
			return envelope{}, lastErr
		}
		observability.ObserveExternal("noroff", cl.endpoint, resp.StatusCode, time.Since(start))

		switch {
		case resp.StatusCode == http.StatusNoContent:
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			return envelope{}, nil

		case resp.StatusCode >= 200 && resp.StatusCode < 300:
			var env envelope
			err := json.NewDecoder(resp.Body).Decode(&env)
			resp.Body.Close()
			if err != nil {
				return envelope{}, fmt.Errorf("noroff: decode %s: %w", cl.endpoint, err)
			}
			return env, nil

		case retryable(cl.method, resp.StatusCode):
			wait := retryAfter(resp)
			resp.Body.Close()
			if wait == 0 {
				wait = backoff(i)
			}
			lastErr = fmt.Errorf("noroff: remote %d", resp.StatusCode)
			if i < maxAttempts-1 && sleepCtx(ctx, wait) {
				continue
			}
			if ctx.Err() != nil {
				return envelope{}, ctx.Err()
			}
			return envelope{}, lastErr

		default:
			b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
			resp.Body.Close()
			return envelope{}, apiError(resp.StatusCode, b)
		}
	}
	return envelope{}, lastErr
}

func bodyReader(b []byte) io.Reader {
	if b == nil {
		return nil
	}
	return bytes.NewReader(b)
}

func retryable(method string, status int) bool {
	switch status {
	case http.StatusTooManyRequests:
		return true
	case http.StatusInternalServerError, http.StatusBadGateway,
		http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return method != http.MethodPost
	}
	return false
}

func apiError(status int, body []byte) error {
	e := &APIError{Status: status}
	var env errorEnvelope
	if json.Unmarshal(body, &env) == nil {
		for _, m := range env.Errors {
			if m.Message != "" {
				e.Messages = append(e.Messages, m.Message)
			}
		}
	} else if s := strings.TrimSpace(string(body)); s != "" {
		e.Messages = []string{s}
	}
	switch status {
	case http.StatusNotFound:
		e.kind = ErrNotFound
	case http.StatusUnauthorized:
		e.kind = ErrUnauthorized
	case http.StatusForbidden:
		e.kind = ErrForbidden
	}
	return e
}

// Messages returns the upstream error messages carried by err, if any.
func Messages(err error) []string {
	var ae *APIError
	if errors.As(err, &ae) {
		return ae.Messages
	}
	return nil
}

// sleepCtx waits for d or returns early if ctx is done.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// retryAfter parses Retry-After (seconds or HTTP-date). 0 if absent or invalid.
func retryAfter(resp *http.Response) time.Duration {
	h := strings.TrimSpace(resp.Header.Get("Retry-After"))
	if h == "" {
		return 0
	}
	if secs, err := strconv.Atoi(h); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(h); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}
	return 0
}

// backoff doubles from 200ms per attempt with up to +50% jitter.
func backoff(i int) time.Duration {
	base := time.Duration(1<<i) * 200 * time.Millisecond
	var b [1]byte
	if _, err := crand.Read(b[:]); err != nil {
		return base
	}
	f := float64(b[0]) / 255.0
	return base + time.Duration(0.5*f*float64(base))
}
