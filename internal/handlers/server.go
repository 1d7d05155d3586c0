package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"niiting-backend/internal/auth"
	"niiting-backend/internal/config"
	"niiting-backend/internal/middleware"
	"niiting-backend/internal/persist"
	"niiting-backend/internal/store"
	"niiting-backend/internal/transport"
	"niiting-backend/internal/validation"
)

// SubscriberMailer sends the welcome email after a successful signup.
type SubscriberMailer interface {
	SendSubscribeWelcome(ctx context.Context, sub store.Subscriber, settings store.SiteSettings) (string, error)
}

// Server carries the shared dependencies for the handlers that are not
// entity-scoped: subscribers, settings, backup, and admin auth.
type Server struct {
	Cfg     *config.Config
	Store   *store.Store
	Adapter *persist.Adapter
	Val     *validation.Validator
	Log     *slog.Logger
	JWT     *auth.Manager
	Mailer  SubscriberMailer
}

func (s *Server) logWithRequest(r *http.Request) *slog.Logger {
	if r == nil {
		return s.Log
	}
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		return s.Log.With(slog.String("request_id", id))
	}
	return s.Log
}

func decodeJSON(r *http.Request, v interface{}) error {
	return transport.DecodeJSON(r.Body, v)
}
