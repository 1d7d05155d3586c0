package persist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"niiting-backend/internal/store"
)

const BackupVersion = "1"

var ErrInvalidBackup = errors.New("backup missing required sections")

// BackupDocument is the export/import format: the full content store in one
// JSON file. Subscribers are optional on import.
type BackupDocument struct {
	Portfolio    []store.PortfolioItem `json:"portfolio"`
	Blogs        []store.BlogPost      `json:"blogs"`
	Subscribers  []store.Subscriber    `json:"subscribers"`
	SiteSettings store.SiteSettings    `json:"siteSettings"`
	Version      string                `json:"version"`
	ExportedAt   time.Time             `json:"exportedAt"`
}

// Export captures the current store state.
func (a *Adapter) Export() BackupDocument {
	return BackupDocument{
		Portfolio:    a.store.Portfolio(),
		Blogs:        a.store.Blogs(),
		Subscribers:  a.store.Subscribers(),
		SiteSettings: a.store.Settings(),
		Version:      BackupVersion,
		ExportedAt:   time.Now().UTC(),
	}
}

// Import validates and installs a backup document, replacing the whole
// store and flushing every tier. The store is left untouched unless the
// document carries all required sections.
func (a *Adapter) Import(ctx context.Context, raw []byte) error {
	var sections map[string]json.RawMessage
	if err := json.Unmarshal(raw, &sections); err != nil {
		return fmt.Errorf("parse backup: %w", err)
	}
	for _, required := range []string{"portfolio", "blogs", "siteSettings"} {
		if _, ok := sections[required]; !ok {
			return fmt.Errorf("%w: %s", ErrInvalidBackup, required)
		}
	}

	var doc BackupDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("parse backup: %w", err)
	}
	if doc.Subscribers == nil {
		doc.Subscribers = make([]store.Subscriber, 0)
	}

	a.store.Hydrate(doc.Portfolio, doc.Blogs, doc.Subscribers, doc.SiteSettings)
	a.FlushAll(ctx)
	return nil
}
