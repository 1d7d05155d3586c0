package handlers

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"niiting-backend/internal/auth"
	"niiting-backend/internal/cache"
	"niiting-backend/internal/config"
	"niiting-backend/internal/persist"
	"niiting-backend/internal/store"
	"niiting-backend/internal/validation"
)

func testServer(t *testing.T, password string) *Server {
	t.Helper()

	st := store.New()
	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	st.SetCredential(store.Credential{PasswordHash: hash, UpdatedAt: time.Now().UTC()})

	fc, err := cache.NewFile(t.TempDir())
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	return &Server{
		Cfg:     &config.Config{},
		Store:   st,
		Adapter: persist.New(st, fc, nil, log, 0),
		Val:     validation.New(),
		Log:     log,
		JWT: &auth.Manager{
			Secret:     []byte("test-secret"),
			AccessTTL:  15 * time.Minute,
			RefreshTTL: 24 * time.Hour,
			Issuer:     "test",
		},
	}
}

func postJSON(handler http.HandlerFunc, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestAdminLoginIssuesSessionCookies(t *testing.T) {
	s := testServer(t, "opening-night")

	rec := postJSON(s.AdminLogin, `{"password":"opening-night"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("login status = %d, body %s", rec.Code, rec.Body.String())
	}

	var access, refresh bool
	for _, c := range rec.Result().Cookies() {
		switch c.Name {
		case "niiting_access":
			access = c.Value != ""
		case "niiting_refresh":
			refresh = c.Value != ""
		}
	}
	if !access || !refresh {
		t.Fatalf("expected both session cookies, access=%v refresh=%v", access, refresh)
	}
}

func TestAdminLoginRejectsWrongPassword(t *testing.T) {
	s := testServer(t, "opening-night")

	if rec := postJSON(s.AdminLogin, `{"password":"wrong-guess"}`); rec.Code != http.StatusUnauthorized {
		t.Fatalf("wrong password status = %d", rec.Code)
	}
}

func TestPasswordRotationRetiresOldSecret(t *testing.T) {
	s := testServer(t, "opening-night")

	rec := postJSON(s.AdminChangePassword, `{"current":"opening-night","new":"closing-time","confirm":"closing-time"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("password change status = %d, body %s", rec.Code, rec.Body.String())
	}

	if rec := postJSON(s.AdminLogin, `{"password":"opening-night"}`); rec.Code != http.StatusUnauthorized {
		t.Fatalf("old password still accepted, status = %d", rec.Code)
	}
	if rec := postJSON(s.AdminLogin, `{"password":"closing-time"}`); rec.Code != http.StatusOK {
		t.Fatalf("new password rejected, status = %d, body %s", rec.Code, rec.Body.String())
	}
}

func TestPasswordRotationRequiresConfirmation(t *testing.T) {
	s := testServer(t, "opening-night")

	rec := postJSON(s.AdminChangePassword, `{"current":"opening-night","new":"closing-time","confirm":"something-else"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("mismatched confirmation status = %d", rec.Code)
	}
	if rec := postJSON(s.AdminLogin, `{"password":"opening-night"}`); rec.Code != http.StatusOK {
		t.Fatalf("rejected rotation must keep the old secret, status = %d", rec.Code)
	}
}
