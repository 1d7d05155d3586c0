package portfolio

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
		return "Project published!"
	case created:
		return "Project published to cloud (not cached locally)."
	case cached:
		return "Project updated!"
	default:
		return "Project updated in cloud (not cached locally)."
	}
}

func (h *Handler) PublicList(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	filter := ListFilter{
		Category: strings.TrimSpace(r.URL.Query().Get("category")),
	}

	items := h.service.List(filter)

	log.Info("portfolio public list: ok", slog.Int("count", len(items)))
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"items": items,
	})
}

func (h *Handler) AdminList(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	limit, offset, err := transport.ParseLimitOffset(r.URL.Query(), 50, 200)
	if err != nil {
		log.Warn("admin portfolio list: invalid query", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	items := h.service.List(ListFilter{Category: strings.TrimSpace(r.URL.Query().Get("category"))})
	total := int64(len(items))
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}

	log.Info("admin portfolio list: ok", slog.Int64("total", total))
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"items":  items[offset:end],
		"limit":  limit,
		"offset": offset,
		"total":  total,
	})
}

func (h *Handler) AdminCreate(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req UpsertRequest
	if err := transport.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("admin portfolio create: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}

	if err := h.val.Struct(req); err != nil {
		log.Warn("admin portfolio create: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", transport.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	item, cached, err := h.service.Create(ctx, req)
	if err != nil {
		log.Warn("admin portfolio create: rejected", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	log.Info("admin portfolio create: ok", slog.String("item_id", item.ID), slog.Bool("cached", cached))
	transport.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"item":   item,
		"notice": saveNotice(true, cached),
	})
}

func (h *Handler) AdminUpdate(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		log.Warn("admin portfolio update: missing id")
		transport.WriteError(w, http.StatusBadRequest, "missing id", nil)
		return
	}

	var req UpsertRequest
	if err := transport.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("admin portfolio update: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}

	if err := h.val.Struct(req); err != nil {
		log.Warn("admin portfolio update: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", transport.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	item, cached, err := h.service.Update(ctx, id, req)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("admin portfolio update: not found", slog.String("item_id", id))
			transport.WriteError(w, http.StatusNotFound, "portfolio item not found", nil)
			return
		}
		log.Warn("admin portfolio update: rejected", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	log.Info("admin portfolio update: ok", slog.String("item_id", id), slog.Bool("cached", cached))
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"item":   item,
		"notice": saveNotice(false, cached),
	})
}

func (h *Handler) AdminDelete(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		log.Warn("admin portfolio delete: missing id")
		transport.WriteError(w, http.StatusBadRequest, "missing id", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	h.service.Delete(ctx, id)

	log.Info("admin portfolio delete: ok", slog.String("item_id", id))
	transport.WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *Handler) AdminTogglePin(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		log.Warn("admin portfolio pin: missing id")
		transport.WriteError(w, http.StatusBadRequest, "missing id", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	item, _, err := h.service.TogglePin(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("admin portfolio pin: not found", slog.String("item_id", id))
			transport.WriteError(w, http.StatusNotFound, "portfolio item not found", nil)
			return
		}
		transport.WriteError(w, http.StatusInternalServerError, "pin error", nil)
		return
	}

	log.Info("admin portfolio pin: ok", slog.String("item_id", id), slog.Bool("pinned", item.Pinned))
	transport.WriteJSON(w, http.StatusOK, item)
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
