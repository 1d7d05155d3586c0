package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"niiting-backend/internal/store"
	"niiting-backend/internal/transport"
)

// PublicSettings serves the site chrome configuration that the public
// pages render from.
func (s *Server) PublicSettings(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	settings := s.Store.Settings()

	log.Info("settings get: ok")
	transport.WriteJSON(w, http.StatusOK, settings)
}

// AdminUpdateSettings replaces the whole settings document. The dashboard
// always submits the full form, so partial updates are not supported here;
// field-level defaulting only happens against persisted snapshots on load.
func (s *Server) AdminUpdateSettings(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)

	var settings store.SiteSettings
	if err := decodeJSON(r, &settings); err != nil {
		log.Warn("admin settings update: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}

	s.Store.ReplaceSettings(settings)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	cached := s.Adapter.SaveSettings(ctx)

	notice := "Settings saved!"
	if !cached {
		notice = "Settings saved to cloud (not cached locally)."
	}
	log.Info("admin settings update: ok", slog.Bool("cached", cached))
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"settings": s.Store.Settings(),
		"notice":   notice,
	})
}
