package handlers

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"niiting-backend/internal/persist"
	"niiting-backend/internal/transport"
)

// Import payloads carry every collection at once, so allow more than the
// usual request body.
const maxBackupBytes = 16 << 20

func (s *Server) AdminExportBackup(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	doc := s.Adapter.Export()

	filename := "niiting-backup-" + time.Now().UTC().Format("2006-01-02") + ".json"
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)

	log.Info("admin backup export: ok",
		slog.Int("portfolio", len(doc.Portfolio)),
		slog.Int("blogs", len(doc.Blogs)),
		slog.Int("subscribers", len(doc.Subscribers)),
	)
	transport.WriteJSON(w, http.StatusOK, doc)
}

func (s *Server) AdminImportBackup(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)

	raw, err := io.ReadAll(io.LimitReader(r.Body, maxBackupBytes))
	if err != nil {
		log.Warn("admin backup import: read error")
		transport.WriteError(w, http.StatusBadRequest, "unreadable body", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	if err := s.Adapter.Import(ctx, raw); err != nil {
		if errors.Is(err, persist.ErrInvalidBackup) {
			log.Warn("admin backup import: invalid document")
			transport.WriteError(w, http.StatusBadRequest, "invalid backup file", nil)
			return
		}
		log.Warn("admin backup import: rejected", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusBadRequest, "invalid backup file", nil)
		return
	}

	log.Info("admin backup import: ok")
	transport.WriteNotice(w, http.StatusOK, "Data restored successfully!")
}
