package persist

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"niiting-backend/internal/store"
)

func TestBackupRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := store.New()
	adapter := New(st, fileCache(t), nil, testLogger(), 0)

	settings := store.DefaultSettings()
	settings.Hero.Title = "Exported Hero"
	st.Hydrate(
		[]store.PortfolioItem{{ID: "p1", Category: store.CategoryVisual, Title: "P", ImageURLs: []string{"u"}, CreatedAt: 42, Pinned: true}},
		[]store.BlogPost{{ID: "b1", Slug: "b", Title: "B", Date: "October 1, 2024", ImageURLs: []string{"v"}, Author: "Elena", CreatedAt: 43}},
		[]store.Subscriber{{ID: "s1", Email: "a@example.com", Date: time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC)}},
		settings,
	)

	raw, err := json.Marshal(adapter.Export())
	if err != nil {
		t.Fatalf("marshal export: %v", err)
	}

	// Import into a fresh store.
	st2 := store.New()
	adapter2 := New(st2, fileCache(t), nil, testLogger(), 0)
	if err := adapter2.Import(ctx, raw); err != nil {
		t.Fatalf("import: %v", err)
	}

	items := st2.Portfolio()
	if len(items) != 1 || items[0].ID != "p1" || !items[0].Pinned || items[0].CreatedAt != 42 {
		t.Fatalf("portfolio not restored: %+v", items)
	}
	posts := st2.Blogs()
	if len(posts) != 1 || posts[0].Slug != "b" || posts[0].Date != "October 1, 2024" {
		t.Fatalf("blogs not restored: %+v", posts)
	}
	subs := st2.Subscribers()
	if len(subs) != 1 || subs[0].Email != "a@example.com" {
		t.Fatalf("subscribers not restored: %+v", subs)
	}
	if st2.Settings().Hero.Title != "Exported Hero" {
		t.Fatalf("settings not restored: %q", st2.Settings().Hero.Title)
	}
}

func TestImportMissingSubscribersDefaultsEmpty(t *testing.T) {
	ctx := context.Background()
	st := store.New()
	adapter := New(st, fileCache(t), nil, testLogger(), 0)

	raw := []byte(`{"portfolio":[],"blogs":[],"siteSettings":{},"version":"1"}`)
	if err := adapter.Import(ctx, raw); err != nil {
		t.Fatalf("import: %v", err)
	}
	if subs := st.Subscribers(); len(subs) != 0 {
		t.Fatalf("expected empty subscribers, got %d", len(subs))
	}
}

func TestImportRejectsMissingSections(t *testing.T) {
	ctx := context.Background()
	st := store.New()
	st.AddPortfolioItem(store.PortfolioItem{ID: "keep"})
	adapter := New(st, fileCache(t), nil, testLogger(), 0)

	cases := []string{
		`{"blogs":[],"siteSettings":{}}`,
		`{"portfolio":[],"siteSettings":{}}`,
		`{"portfolio":[],"blogs":[]}`,
		`not json at all`,
	}
	for _, raw := range cases {
		err := adapter.Import(ctx, []byte(raw))
		if err == nil {
			t.Fatalf("expected rejection for %s", raw)
		}
		if raw[0] == '{' && !errors.Is(err, ErrInvalidBackup) {
			t.Fatalf("expected ErrInvalidBackup for %s, got %v", raw, err)
		}
	}

	if items := st.Portfolio(); len(items) != 1 || items[0].ID != "keep" {
		t.Fatalf("store mutated by rejected import: %+v", items)
	}
}
