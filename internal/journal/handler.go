package journal

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"niiting-backend/internal/middleware"
	"niiting-backend/internal/transport"
	"niiting-backend/internal/validation"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service *Service
	val     *validation.Validator
	log     *slog.Logger
}

func NewHandler(service *Service, val *validation.Validator, log *slog.Logger) *Handler {
	return &Handler{
		service: service,
		val:     val,
		log:     log,
	}
}

func saveNotice(created, cached bool) string {
	switch {
	case created && cached:
		return "Entry published!"
	case created:
		return "Entry published to cloud (not cached locally)."
	case cached:
		return "Entry updated!"
	default:
		return "Entry updated in cloud (not cached locally)."
	}
}

func (h *Handler) PublicList(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	posts := h.service.List()

	log.Info("journal public list: ok", slog.Int("count", len(posts)))
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"items": posts,
	})
}

func (h *Handler) PublicGetBySlug(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	slug := strings.TrimSpace(chi.URLParam(r, "slug"))

	post, err := h.service.GetBySlug(slug)
	if err != nil {
		log.Warn("journal get: not found", slog.String("slug", slug))
		transport.WriteError(w, http.StatusNotFound, "journal entry not found", nil)
		return
	}

	log.Info("journal get: ok", slog.String("slug", slug))
	transport.WriteJSON(w, http.StatusOK, post)
}

func (h *Handler) AdminCreate(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req UpsertRequest
	if err := transport.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("admin journal create: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}

	if err := h.val.Struct(req); err != nil {
		log.Warn("admin journal create: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", transport.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	post, cached, err := h.service.Create(ctx, req)
	if err != nil {
		log.Warn("admin journal create: rejected", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	log.Info("admin journal create: ok", slog.String("post_id", post.ID), slog.Bool("cached", cached))
	transport.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"item":   post,
		"notice": saveNotice(true, cached),
	})
}

func (h *Handler) AdminUpdate(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		log.Warn("admin journal update: missing id")
		transport.WriteError(w, http.StatusBadRequest, "missing id", nil)
		return
	}

	var req UpsertRequest
	if err := transport.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("admin journal update: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}

	if err := h.val.Struct(req); err != nil {
		log.Warn("admin journal update: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", transport.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	post, cached, err := h.service.Update(ctx, id, req)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("admin journal update: not found", slog.String("post_id", id))
			transport.WriteError(w, http.StatusNotFound, "journal entry not found", nil)
			return
		}
		log.Warn("admin journal update: rejected", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	log.Info("admin journal update: ok", slog.String("post_id", id), slog.Bool("cached", cached))
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"item":   post,
		"notice": saveNotice(false, cached),
	})
}

func (h *Handler) AdminDelete(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		log.Warn("admin journal delete: missing id")
		transport.WriteError(w, http.StatusBadRequest, "missing id", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	h.service.Delete(ctx, id)

	log.Info("admin journal delete: ok", slog.String("post_id", id))
	transport.WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *Handler) AdminTogglePin(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		log.Warn("admin journal pin: missing id")
		transport.WriteError(w, http.StatusBadRequest, "missing id", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	post, _, err := h.service.TogglePin(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("admin journal pin: not found", slog.String("post_id", id))
			transport.WriteError(w, http.StatusNotFound, "journal entry not found", nil)
			return
		}
		transport.WriteError(w, http.StatusInternalServerError, "pin error", nil)
		return
	}

	log.Info("admin journal pin: ok", slog.String("post_id", id), slog.Bool("pinned", post.Pinned))
	transport.WriteJSON(w, http.StatusOK, post)
}

func (h *Handler) logWithRequest(r *http.Request) *slog.Logger {
	if r == nil {
		return h.log
	}
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		return h.log.With(slog.String("request_id", id))
	}
	return h.log
}
