package handler

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/minhngdev/lingopad/internal/auth"
	"github.com/minhngdev/lingopad/internal/database"
	"github.com/minhngdev/lingopad/internal/store"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("failed to enable foreign keys: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newAuthHandler(t *testing.T) *AuthHandler {
	t.Helper()
	db := openTestDB(t)
	return NewAuthHandler(store.NewUserStore(db), auth.NewTokenService("test-secret"), testLogger())
}

func postJSON(t *testing.T, handler http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte(body)))
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestRegisterLoginRefresh(t *testing.T) {
	h := newAuthHandler(t)

	rec := postJSON(t, h.Register, `{"name":"Minh","email":"minh@example.com","password":"secret-pass"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("register status = %d, want 201: %s", rec.Code, rec.Body)
	}
	var reg authResponse
	if err := json.NewDecoder(rec.Body).Decode(&reg); err != nil {
		t.Fatalf("decode register response: %v", err)
	}
	if !reg.Success || reg.AccessToken == "" || reg.RefreshToken == "" {
		t.Fatalf("incomplete register response: %+v", reg)
	}
	if reg.User == nil || reg.User.Email != "minh@example.com" {
		t.Fatalf("unexpected user in register response: %+v", reg.User)
	}

	rec = postJSON(t, h.Login, `{"email":"MINH@example.com","password":"secret-pass"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("login status = %d, want 200: %s", rec.Code, rec.Body)
	}
	var login authResponse
	if err := json.NewDecoder(rec.Body).Decode(&login); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	if login.RefreshToken == "" {
		t.Fatal("login response missing refresh token")
	}

	rec = postJSON(t, h.Refresh, `{"refresh_token":"`+login.RefreshToken+`"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("refresh status = %d, want 200: %s", rec.Code, rec.Body)
	}
	var pair auth.TokenPair
	if err := json.NewDecoder(rec.Body).Decode(&pair); err != nil {
		t.Fatalf("decode refresh response: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatalf("incomplete token pair: %+v", pair)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	h := newAuthHandler(t)

	body := `{"name":"Minh","email":"minh@example.com","password":"secret-pass"}`
	if rec := postJSON(t, h.Register, body); rec.Code != http.StatusCreated {
		t.Fatalf("first register status = %d", rec.Code)
	}
	rec := postJSON(t, h.Register, body)
	if rec.Code != http.StatusConflict {
		t.Fatalf("duplicate register status = %d, want 409: %s", rec.Code, rec.Body)
	}
}

func TestRegisterValidation(t *testing.T) {
	h := newAuthHandler(t)

	cases := []struct {
		name string
		body string
	}{
		{"bad json", `{`},
		{"missing name", `{"email":"a@example.com","password":"secret-pass"}`},
		{"bad email", `{"name":"A","email":"not-an-email","password":"secret-pass"}`},
		{"short password", `{"name":"A","email":"a@example.com","password":"short"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if rec := postJSON(t, h.Register, tc.body); rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	h := newAuthHandler(t)
	postJSON(t, h.Register, `{"name":"Minh","email":"minh@example.com","password":"secret-pass"}`)

	// Unknown email and wrong password must be indistinguishable.
	for _, body := range []string{
		`{"email":"nobody@example.com","password":"secret-pass"}`,
		`{"email":"minh@example.com","password":"wrong-pass"}`,
	} {
		rec := postJSON(t, h.Login, body)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("login status = %d, want 401", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "invalid email or password") {
			t.Fatalf("unexpected error body: %s", rec.Body)
		}
	}
}

func TestRefreshRejectsGarbage(t *testing.T) {
	h := newAuthHandler(t)
	rec := postJSON(t, h.Refresh, `{"refresh_token":"not-a-jwt"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("refresh status = %d, want 401", rec.Code)
	}
}
