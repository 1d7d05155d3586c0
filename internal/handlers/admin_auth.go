package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"niiting-backend/internal/auth"
	"niiting-backend/internal/middleware"
	"niiting-backend/internal/store"
	"niiting-backend/internal/transport"
)

const refreshCookie = "niiting_refresh"

type AdminLoginRequest struct {
	Password string `json:"password" validate:"required"`
}

type AdminStatusResponse struct {
	Status string `json:"status"`
}

type ChangePasswordRequest struct {
	Current string `json:"current" validate:"required"`
	New     string `json:"new" validate:"required,min=8"`
	Confirm string `json:"confirm" validate:"required"`
}

// AdminLogin checks the shared secret against the stored bcrypt hash and, on
// success, issues access/refresh token cookies. There is no recovery secret.
func (s *Server) AdminLogin(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	var req AdminLoginRequest
	if err := decodeJSON(r, &req); err != nil {
		log.Warn("admin login: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := s.Val.Struct(req); err != nil {
		log.Warn("admin login: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", transport.ValidationDetails(s.Val.ValidationErrors(err)))
		return
	}

	if s.JWT == nil {
		log.Warn("admin login: not configured")
		transport.WriteError(w, http.StatusServiceUnavailable, "admin auth not configured", nil)
		return
	}

	if err := auth.VerifyPassword(s.Store.CredentialHash(), req.Password); err != nil {
		log.Warn("admin login: invalid credentials")
		transport.WriteError(w, http.StatusUnauthorized, "invalid credentials", nil)
		return
	}

	if err := s.issueSession(w); err != nil {
		transport.WriteError(w, http.StatusInternalServerError, "token error", nil)
		return
	}
	log.Info("admin login: ok")
	transport.WriteJSON(w, http.StatusOK, AdminStatusResponse{Status: "ok"})
}

func (s *Server) AdminRefresh(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	if s.JWT == nil {
		log.Warn("admin refresh: not configured")
		transport.WriteError(w, http.StatusServiceUnavailable, "admin auth not configured", nil)
		return
	}

	cookie, err := r.Cookie(refreshCookie)
	if err != nil || cookie.Value == "" {
		log.Warn("admin refresh: missing refresh token")
		transport.WriteError(w, http.StatusUnauthorized, "missing refresh token", nil)
		return
	}

	if _, err := s.JWT.Parse(cookie.Value, auth.TokenRefresh); err != nil {
		log.Warn("admin refresh: invalid refresh token")
		transport.WriteError(w, http.StatusUnauthorized, "invalid refresh token", nil)
		return
	}

	if err := s.issueSession(w); err != nil {
		transport.WriteError(w, http.StatusInternalServerError, "token error", nil)
		return
	}
	log.Info("admin refresh: ok")
	transport.WriteJSON(w, http.StatusOK, AdminStatusResponse{Status: "ok"})
}

func (s *Server) AdminLogout(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	clearAuthCookies(w, s.Cfg.CookieSecure)
	log.Info("admin logout: ok")
	transport.WriteJSON(w, http.StatusOK, AdminStatusResponse{Status: "ok"})
}

// AdminChangePassword rotates the shared secret. The current secret must
// verify and the new value must be confirmed; the new hash is flushed
// locally and mirrored remotely like any other mutation.
func (s *Server) AdminChangePassword(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	var req ChangePasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		log.Warn("admin password change: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := s.Val.Struct(req); err != nil {
		log.Warn("admin password change: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", transport.ValidationDetails(s.Val.ValidationErrors(err)))
		return
	}
	if req.New != req.Confirm {
		log.Warn("admin password change: confirmation mismatch")
		transport.WriteError(w, http.StatusBadRequest, "new password and confirmation do not match", nil)
		return
	}

	if err := auth.VerifyPassword(s.Store.CredentialHash(), req.Current); err != nil {
		log.Warn("admin password change: invalid current password")
		transport.WriteError(w, http.StatusUnauthorized, "invalid credentials", nil)
		return
	}

	hash, err := auth.HashPassword(req.New)
	if err != nil {
		log.Error("admin password change: hash error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "hash error", nil)
		return
	}

	s.Store.SetCredential(store.Credential{PasswordHash: hash, UpdatedAt: time.Now().UTC()})

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	cached := s.Adapter.SaveCredential(ctx)

	notice := "Password updated."
	if !cached {
		notice = "Password updated in cloud (not cached locally)."
	}
	log.Info("admin password change: ok", slog.Bool("cached", cached))
	transport.WriteNotice(w, http.StatusOK, notice)
}

func (s *Server) issueSession(w http.ResponseWriter) error {
	access, err := s.JWT.NewAccessToken()
	if err != nil {
		return err
	}
	refresh, err := s.JWT.NewRefreshToken()
	if err != nil {
		return err
	}
	setAuthCookies(w, access, refresh, s.JWT.AccessTTL, s.JWT.RefreshTTL, s.Cfg.CookieSecure)
	return nil
}

func setAuthCookies(w http.ResponseWriter, access, refresh string, accessTTL, refreshTTL time.Duration, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.AccessCookie,
		Value:    access,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(accessTTL.Seconds()),
	})
	http.SetCookie(w, &http.Cookie{
		Name:     refreshCookie,
		Value:    refresh,
		Path:     "/api/v1/admin",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(refreshTTL.Seconds()),
	})
}

func clearAuthCookies(w http.ResponseWriter, secure bool) {
	expire := time.Now().Add(-1 * time.Hour)
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.AccessCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
		Expires:  expire,
		MaxAge:   -1,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     refreshCookie,
		Value:    "",
		Path:     "/api/v1/admin",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
		Expires:  expire,
		MaxAge:   -1,
	})
}
