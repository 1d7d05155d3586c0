package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"niiting-backend/internal/store"
	"niiting-backend/internal/transport"
)

type SubscribeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type UpdateSubscriberRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// Subscribe adds an email to the mailing list. Duplicate signups are
// reported as a conflict so the caller can tell the visitor they are
// already on the list.
func (s *Server) Subscribe(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)

	var req SubscribeRequest
	if err := decodeJSON(r, &req); err != nil {
		log.Warn("subscribe: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := s.Val.Struct(req); err != nil {
		log.Warn("subscribe: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", transport.ValidationDetails(s.Val.ValidationErrors(err)))
		return
	}

	sub := store.Subscriber{
		ID:    uuid.NewString(),
		Email: strings.TrimSpace(req.Email),
		Date:  time.Now().UTC(),
	}

	if err := s.Store.AddSubscriber(sub); err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			log.Info("subscribe: duplicate email")
			transport.WriteError(w, http.StatusConflict, "email already subscribed", nil)
			return
		}
		log.Error("subscribe: store error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "subscribe error", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	cached := s.Adapter.SaveSubscriber(ctx, sub)

	if s.Mailer != nil {
		settings := s.Store.Settings()
		go func(sub store.Subscriber, settings store.SiteSettings) {
			ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			if msgID, err := s.Mailer.SendSubscribeWelcome(ctx, sub, settings); err != nil {
				s.Log.Warn("subscribe: welcome email failed", slog.String("error", err.Error()))
			} else {
				s.Log.Info("subscribe: welcome email sent", slog.String("message_id", msgID))
			}
		}(sub, settings)
	}

	notice := "Thank you for subscribing!"
	if !cached {
		notice = "Thank you for subscribing! (saved to cloud, not cached locally)"
	}
	log.Info("subscribe: ok", slog.String("subscriber_id", sub.ID), slog.Bool("cached", cached))
	transport.WriteNotice(w, http.StatusCreated, notice)
}

func (s *Server) AdminListSubscribers(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	subs := s.Store.Subscribers()

	log.Info("admin subscribers list: ok", slog.Int("count", len(subs)))
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"items": subs,
		"total": len(subs),
	})
}

func (s *Server) AdminUpdateSubscriber(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		log.Warn("admin subscriber update: missing id")
		transport.WriteError(w, http.StatusBadRequest, "missing id", nil)
		return
	}

	var req UpdateSubscriberRequest
	if err := decodeJSON(r, &req); err != nil {
		log.Warn("admin subscriber update: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := s.Val.Struct(req); err != nil {
		log.Warn("admin subscriber update: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", transport.ValidationDetails(s.Val.ValidationErrors(err)))
		return
	}

	sub, err := s.Store.UpdateSubscriberEmail(id, strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			log.Warn("admin subscriber update: duplicate email", slog.String("subscriber_id", id))
			transport.WriteError(w, http.StatusConflict, "email already subscribed", nil)
			return
		}
		log.Warn("admin subscriber update: not found", slog.String("subscriber_id", id))
		transport.WriteError(w, http.StatusNotFound, "subscriber not found", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	cached := s.Adapter.SaveSubscriber(ctx, sub)

	log.Info("admin subscriber update: ok", slog.String("subscriber_id", id), slog.Bool("cached", cached))
	transport.WriteJSON(w, http.StatusOK, sub)
}

func (s *Server) AdminDeleteSubscriber(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		log.Warn("admin subscriber delete: missing id")
		transport.WriteError(w, http.StatusBadRequest, "missing id", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if s.Store.DeleteSubscriber(id) {
		s.Adapter.RemoveSubscriber(ctx, id)
	}

	log.Info("admin subscriber delete: ok", slog.String("subscriber_id", id))
	transport.WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
