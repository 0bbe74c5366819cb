package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/minhngdev/lingopad/internal/auth"
)

func authedEcho(t *testing.T) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if auth.UserID(r.Context()) == 0 {
			t.Error("handler reached without auth context")
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireAuthBearer(t *testing.T) {
	tokens := auth.NewTokenService("test-secret")
	pair, err := tokens.IssuePair(42)
	if err != nil {
		t.Fatalf("issue pair: %v", err)
	}

	handler := RequireAuth(tokens)(authedEcho(t))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/messages", nil)
	req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestRequireAuthQueryToken(t *testing.T) {
	tokens := auth.NewTokenService("test-secret")
	pair, err := tokens.IssuePair(7)
	if err != nil {
		t.Fatalf("issue pair: %v", err)
	}

	handler := RequireAuth(tokens)(authedEcho(t))

	req := httptest.NewRequest(http.MethodGet, "/ws?token="+pair.AccessToken, nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestRequireAuthRejections(t *testing.T) {
	tokens := auth.NewTokenService("test-secret")
	handler := RequireAuth(tokens)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not run for rejected requests")
	}))

	tests := []struct {
		name   string
		header string
	}{
		{"no credentials", ""},
		{"garbage token", "Bearer not-a-token"},
		{"wrong scheme", "Basic dXNlcjpwYXNz"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/messages", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			if rec.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", rec.Code)
			}
		})
	}
}

func TestRateLimit(t *testing.T) {
	limiter := NewRateLimiter()
	handler := RateLimit(limiter, RealIP, 2, time.Minute)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want 200", i+1, rec.Code)
		}
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("status = %d, want 429", rec.Code)
	}

	// A different client is unaffected.
	req = httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("other client status = %d, want 200", rec.Code)
	}
}

func TestRealIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.1:5555"
	if got := RealIP(req); got != "192.0.2.1" {
		t.Errorf("RealIP = %q", got)
	}

	req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	if got := RealIP(req); got != "203.0.113.9" {
		t.Errorf("RealIP with XFF = %q", got)
	}
}
