package persist

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"niiting-backend/internal/cache"
	"niiting-backend/internal/store"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fileCache(t *testing.T) *cache.FileCache {
	t.Helper()
	c, err := cache.NewFile(t.TempDir())
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}
	return c
}

// fakeRemote records rewrite calls so tests can assert when they happen
// relative to the caller returning.
type fakeRemote struct {
	replaceCalls int
	portfolioLen int
}

func (f *fakeRemote) UpsertPortfolioItem(ctx context.Context, item store.PortfolioItem) error {
	return nil
}
func (f *fakeRemote) DeletePortfolioItem(ctx context.Context, id string) error { return nil }
func (f *fakeRemote) UpsertBlogPost(ctx context.Context, post store.BlogPost) error {
	return nil
}
func (f *fakeRemote) DeleteBlogPost(ctx context.Context, id string) error { return nil }
func (f *fakeRemote) UpsertSubscriber(ctx context.Context, sub store.Subscriber) error {
	return nil
}
func (f *fakeRemote) DeleteSubscriber(ctx context.Context, id string) error { return nil }
func (f *fakeRemote) SaveSettings(ctx context.Context, settings store.SiteSettings) error {
	return nil
}
func (f *fakeRemote) SaveCredential(ctx context.Context, cred store.Credential) error { return nil }
func (f *fakeRemote) LoadPortfolio(ctx context.Context) ([]store.PortfolioItem, error) {
	return nil, nil
}
func (f *fakeRemote) LoadBlogs(ctx context.Context) ([]store.BlogPost, error) { return nil, nil }
func (f *fakeRemote) LoadSubscribers(ctx context.Context) ([]store.Subscriber, error) {
	return nil, nil
}
func (f *fakeRemote) LoadSettings(ctx context.Context) (store.SiteSettings, bool, error) {
	return store.SiteSettings{}, false, nil
}
func (f *fakeRemote) LoadCredential(ctx context.Context) (store.Credential, bool, error) {
	return store.Credential{}, false, nil
}
func (f *fakeRemote) ReplaceAll(ctx context.Context, portfolio []store.PortfolioItem, blogs []store.BlogPost, subscribers []store.Subscriber, settings store.SiteSettings) error {
	f.replaceCalls++
	f.portfolioLen = len(portfolio)
	return nil
}

func TestRoundTripPersistence(t *testing.T) {
	ctx := context.Background()
	c := fileCache(t)

	st := store.New()
	adapter := New(st, c, nil, testLogger(), 0)
	st.Hydrate(nil, nil, nil, store.DefaultSettings())

	st.AddPortfolioItem(store.PortfolioItem{ID: "a", Category: store.CategoryApparel, Title: "A", ImageURLs: []string{"x"}, CreatedAt: 1})
	adapter.SavePortfolioItem(ctx, store.PortfolioItem{ID: "a"})
	st.AddPortfolioItem(store.PortfolioItem{ID: "b", Category: store.CategoryFibre, Title: "B", ImageURLs: []string{"y"}, CreatedAt: 2})
	adapter.SavePortfolioItem(ctx, store.PortfolioItem{ID: "b"})
	st.DeletePortfolioItem("a")
	adapter.RemovePortfolioItem(ctx, "a")
	st.UpdatePortfolioItem("b", store.PortfolioItem{ID: "b", Category: store.CategoryFibre, Title: "B2", ImageURLs: []string{"y"}, CreatedAt: 2})
	adapter.SavePortfolioItem(ctx, store.PortfolioItem{ID: "b"})

	// Fresh process: new store rehydrated from the same cache.
	st2 := store.New()
	adapter2 := New(st2, c, nil, testLogger(), 0)
	adapter2.Load(ctx)

	items := st2.Portfolio()
	if len(items) != 1 {
		t.Fatalf("expected 1 item after reload, got %d", len(items))
	}
	if items[0].ID != "b" || items[0].Title != "B2" {
		t.Fatalf("reloaded item mismatch: %+v", items[0])
	}
}

func TestLoadFallsBackToSeedContent(t *testing.T) {
	ctx := context.Background()
	st := store.New()
	adapter := New(st, fileCache(t), nil, testLogger(), 0)
	adapter.Load(ctx)

	if len(st.Portfolio()) != len(store.SeedPortfolio()) {
		t.Fatalf("expected seed portfolio, got %d items", len(st.Portfolio()))
	}
	if len(st.Blogs()) != len(store.SeedBlogs()) {
		t.Fatalf("expected seed blogs, got %d posts", len(st.Blogs()))
	}
	if len(st.Subscribers()) != 0 {
		t.Fatalf("expected no subscribers, got %d", len(st.Subscribers()))
	}
	if st.Settings().Navbar.Logo == "" {
		t.Fatalf("expected default settings")
	}
}

func TestLoadRecoversFromCorruptSnapshot(t *testing.T) {
	ctx := context.Background()
	c := fileCache(t)
	if err := c.Set(ctx, "portfolio_v1", []byte("{not json")); err != nil {
		t.Fatalf("Set: %v", err)
	}

	st := store.New()
	adapter := New(st, c, nil, testLogger(), 0)
	adapter.Load(ctx)

	if len(st.Portfolio()) != len(store.SeedPortfolio()) {
		t.Fatalf("corrupt snapshot should fall back to seed content")
	}
}

func TestSizeGuardSkipsOversizedSnapshot(t *testing.T) {
	ctx := context.Background()
	c := fileCache(t)

	st := store.New()
	adapter := New(st, c, nil, testLogger(), 64)

	st.AddPortfolioItem(store.PortfolioItem{
		ID:          "big",
		Title:       "A very large record",
		Description: "This description alone pushes the snapshot over the configured byte budget for local persistence.",
		ImageURLs:   []string{"https://example.com/image.jpg"},
	})
	if cached := adapter.SavePortfolioItem(ctx, store.PortfolioItem{ID: "big"}); cached {
		t.Fatalf("expected oversized snapshot to be skipped")
	}

	if _, found, err := c.Get(ctx, "portfolio_v1"); err != nil || found {
		t.Fatalf("oversized snapshot should not be written, found=%v err=%v", found, err)
	}
}

func TestFlushAllRewritesRemoteBeforeReturning(t *testing.T) {
	ctx := context.Background()
	st := store.New()
	st.AddPortfolioItem(store.PortfolioItem{ID: "p1", Title: "P", ImageURLs: []string{"u"}})

	remote := &fakeRemote{}
	adapter := New(st, fileCache(t), remote, testLogger(), 0)

	adapter.FlushAll(ctx)

	// Checked immediately, no synchronization: a detached rewrite could be
	// killed by process exit between its deletes and its upserts.
	if remote.replaceCalls != 1 {
		t.Fatalf("remote rewrite not completed before FlushAll returned, calls=%d", remote.replaceCalls)
	}
	if remote.portfolioLen != 1 {
		t.Fatalf("remote rewrite saw %d portfolio items, want 1", remote.portfolioLen)
	}
}

func TestLoadDropsCorruptCredentialSnapshot(t *testing.T) {
	ctx := context.Background()
	c := fileCache(t)
	if err := c.Set(ctx, keyCredential, []byte("{broken")); err != nil {
		t.Fatalf("Set: %v", err)
	}

	st := store.New()
	New(st, c, nil, testLogger(), 0).Load(ctx)

	if st.CredentialHash() != "" {
		t.Fatalf("corrupt credential should not hydrate a hash")
	}
	if _, found, err := c.Get(ctx, keyCredential); err != nil || found {
		t.Fatalf("corrupt credential snapshot should be removed, found=%v err=%v", found, err)
	}
}

func TestSettingsSnapshotMergesOverDefaults(t *testing.T) {
	ctx := context.Background()
	c := fileCache(t)

	// A partial document from an older snapshot: only the hero title set.
	if err := c.Set(ctx, "site_settings_v1", []byte(`{"hero":{"title":"Custom"}}`)); err != nil {
		t.Fatalf("Set: %v", err)
	}

	st := store.New()
	New(st, c, nil, testLogger(), 0).Load(ctx)

	settings := st.Settings()
	if settings.Hero.Title != "Custom" {
		t.Fatalf("loaded field lost: %q", settings.Hero.Title)
	}
	if settings.Navbar.Logo != store.DefaultSettings().Navbar.Logo {
		t.Fatalf("sibling field should come from defaults, got %q", settings.Navbar.Logo)
	}
}
