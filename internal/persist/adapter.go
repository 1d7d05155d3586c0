package persist

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"niiting-backend/internal/cache"
	"niiting-backend/internal/store"
)

// Snapshot keys in the local cache. Versioned so a future format change can
// fall back to seed content instead of choking on old snapshots.
const (
	keyPortfolio   = "portfolio_v1"
	keyBlogs       = "blogs_v1"
	keySubscribers = "subscribers_v1"
	keySettings    = "site_settings_v1"
	keyCredential  = "admin_credential_v1"
)

const defaultRemoteTimeout = 8 * time.Second

// RemoteStore is the write/read surface of the optional hosted tier.
// Mirror implements it over Mongo.
type RemoteStore interface {
	UpsertPortfolioItem(ctx context.Context, item store.PortfolioItem) error
	DeletePortfolioItem(ctx context.Context, id string) error
	UpsertBlogPost(ctx context.Context, post store.BlogPost) error
	DeleteBlogPost(ctx context.Context, id string) error
	UpsertSubscriber(ctx context.Context, sub store.Subscriber) error
	DeleteSubscriber(ctx context.Context, id string) error
	SaveSettings(ctx context.Context, settings store.SiteSettings) error
	SaveCredential(ctx context.Context, cred store.Credential) error
	LoadPortfolio(ctx context.Context) ([]store.PortfolioItem, error)
	LoadBlogs(ctx context.Context) ([]store.BlogPost, error)
	LoadSubscribers(ctx context.Context) ([]store.Subscriber, error)
	LoadSettings(ctx context.Context) (store.SiteSettings, bool, error)
	LoadCredential(ctx context.Context) (store.Credential, bool, error)
	ReplaceAll(ctx context.Context, portfolio []store.PortfolioItem, blogs []store.BlogPost, subscribers []store.Subscriber, settings store.SiteSettings) error
}

// Adapter makes every content store mutation durable: the affected
// collection is snapshotted to the local cache synchronously, and mirrored
// to the remote store (when configured) as a detached best-effort write.
// Remote failures are logged, never rolled back.
type Adapter struct {
	store    *store.Store
	cache    cache.Cache
	remote   RemoteStore
	log      *slog.Logger
	maxBytes int
}

// New wires the adapter. remote may be nil when no hosted store is
// configured. maxBytes guards local snapshot size; snapshots above it are
// skipped with a warning rather than risking a quota failure mid-write.
func New(st *store.Store, c cache.Cache, remote RemoteStore, log *slog.Logger, maxBytes int) *Adapter {
	return &Adapter{
		store:    st,
		cache:    c,
		remote:   remote,
		log:      log,
		maxBytes: maxBytes,
	}
}

func (a *Adapter) HasRemote() bool {
	return a.remote != nil
}

// snapshot serializes v under key. Returns false when the write was skipped
// or failed; the caller's mutation is already committed in memory either way.
func (a *Adapter) snapshot(ctx context.Context, key string, v interface{}) bool {
	raw, err := json.Marshal(v)
	if err != nil {
		a.log.Error("snapshot marshal failed", slog.String("key", key), slog.String("error", err.Error()))
		return false
	}
	if a.maxBytes > 0 && len(raw) > a.maxBytes {
		a.log.Warn("snapshot skipped: over size budget",
			slog.String("key", key),
			slog.Int("bytes", len(raw)),
			slog.Int("budget", a.maxBytes),
		)
		return false
	}
	if err := a.cache.Set(ctx, key, raw); err != nil {
		a.log.Warn("snapshot write failed", slog.String("key", key), slog.String("error", err.Error()))
		return false
	}
	return true
}

// mirrorAsync runs a remote write detached from the request. The local
// mutation is already visible; the remote store catches up eventually.
func (a *Adapter) mirrorAsync(op string, id string, fn func(ctx context.Context) error) {
	if a.remote == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), defaultRemoteTimeout)
		defer cancel()
		if err := fn(ctx); err != nil {
			a.log.Error("remote mirror failed",
				slog.String("op", op),
				slog.String("id", id),
				slog.String("error", err.Error()),
			)
		}
	}()
}

// SavePortfolioItem flushes the portfolio collection and mirrors the single
// record. The returned bool reports whether the local snapshot was written,
// so callers can word their confirmation accordingly.
func (a *Adapter) SavePortfolioItem(ctx context.Context, item store.PortfolioItem) bool {
	cached := a.snapshot(ctx, keyPortfolio, a.store.Portfolio())
	a.mirrorAsync("portfolio upsert", item.ID, func(ctx context.Context) error {
		return a.remote.UpsertPortfolioItem(ctx, item)
	})
	return cached
}

func (a *Adapter) RemovePortfolioItem(ctx context.Context, id string) bool {
	cached := a.snapshot(ctx, keyPortfolio, a.store.Portfolio())
	a.mirrorAsync("portfolio delete", id, func(ctx context.Context) error {
		return a.remote.DeletePortfolioItem(ctx, id)
	})
	return cached
}

func (a *Adapter) SaveBlogPost(ctx context.Context, post store.BlogPost) bool {
	cached := a.snapshot(ctx, keyBlogs, a.store.Blogs())
	a.mirrorAsync("blog upsert", post.ID, func(ctx context.Context) error {
		return a.remote.UpsertBlogPost(ctx, post)
	})
	return cached
}

func (a *Adapter) RemoveBlogPost(ctx context.Context, id string) bool {
	cached := a.snapshot(ctx, keyBlogs, a.store.Blogs())
	a.mirrorAsync("blog delete", id, func(ctx context.Context) error {
		return a.remote.DeleteBlogPost(ctx, id)
	})
	return cached
}

func (a *Adapter) SaveSubscriber(ctx context.Context, sub store.Subscriber) bool {
	cached := a.snapshot(ctx, keySubscribers, a.store.Subscribers())
	a.mirrorAsync("subscriber upsert", sub.ID, func(ctx context.Context) error {
		return a.remote.UpsertSubscriber(ctx, sub)
	})
	return cached
}

func (a *Adapter) RemoveSubscriber(ctx context.Context, id string) bool {
	cached := a.snapshot(ctx, keySubscribers, a.store.Subscribers())
	a.mirrorAsync("subscriber delete", id, func(ctx context.Context) error {
		return a.remote.DeleteSubscriber(ctx, id)
	})
	return cached
}

func (a *Adapter) SaveSettings(ctx context.Context) bool {
	settings := a.store.Settings()
	cached := a.snapshot(ctx, keySettings, settings)
	a.mirrorAsync("settings save", settingsDocID, func(ctx context.Context) error {
		return a.remote.SaveSettings(ctx, settings)
	})
	return cached
}

func (a *Adapter) SaveCredential(ctx context.Context) bool {
	cred := a.store.CredentialDoc()
	cached := a.snapshot(ctx, keyCredential, cred)
	a.mirrorAsync("credential save", credentialDocID, func(ctx context.Context) error {
		return a.remote.SaveCredential(ctx, cred)
	})
	return cached
}

// FlushAll rewrites every local snapshot and, when a remote store is
// configured, every remote table. Used after backup import and at shutdown.
// Unlike per-mutation mirroring the remote rewrite runs synchronously on the
// caller's ctx: a detached rewrite could be killed mid-way by process exit,
// and a half-rewritten authoritative tier poisons the next load.
func (a *Adapter) FlushAll(ctx context.Context) {
	portfolio := a.store.Portfolio()
	blogs := a.store.Blogs()
	subscribers := a.store.Subscribers()
	settings := a.store.Settings()

	a.snapshot(ctx, keyPortfolio, portfolio)
	a.snapshot(ctx, keyBlogs, blogs)
	a.snapshot(ctx, keySubscribers, subscribers)
	a.snapshot(ctx, keySettings, settings)

	if a.remote == nil {
		return
	}
	if err := a.remote.ReplaceAll(ctx, portfolio, blogs, subscribers, settings); err != nil {
		a.log.Error("remote rewrite failed", slog.String("error", err.Error()))
	}
}

// dropSnapshot clears a snapshot that failed to parse, so the next boot
// starts from seed content (or a fresh credential bootstrap) instead of
// warning about the same bytes again.
func (a *Adapter) dropSnapshot(ctx context.Context, key string) {
	if err := a.cache.Delete(ctx, key); err != nil {
		a.log.Warn("corrupt snapshot removal failed", slog.String("key", key), slog.String("error", err.Error()))
	}
}

// Load rehydrates the content store. The remote store is authoritative when
// configured; the local cache serves when it is absent or unreachable; seed
// content fills any collection that is missing or fails to parse. Load never
// fails the boot for a bad snapshot.
func (a *Adapter) Load(ctx context.Context) {
	if a.remote != nil && a.loadRemote(ctx) {
		return
	}
	a.loadCache(ctx)
}

func (a *Adapter) loadRemote(ctx context.Context) bool {
	portfolio, err := a.remote.LoadPortfolio(ctx)
	if err != nil {
		a.log.Warn("remote load failed, falling back to local cache", slog.String("error", err.Error()))
		return false
	}
	blogs, err := a.remote.LoadBlogs(ctx)
	if err != nil {
		a.log.Warn("remote load failed, falling back to local cache", slog.String("error", err.Error()))
		return false
	}
	subscribers, err := a.remote.LoadSubscribers(ctx)
	if err != nil {
		a.log.Warn("remote load failed, falling back to local cache", slog.String("error", err.Error()))
		return false
	}
	settings, foundSettings, err := a.remote.LoadSettings(ctx)
	if err != nil {
		a.log.Warn("remote load failed, falling back to local cache", slog.String("error", err.Error()))
		return false
	}
	cred, foundCred, err := a.remote.LoadCredential(ctx)
	if err != nil {
		a.log.Warn("remote load failed, falling back to local cache", slog.String("error", err.Error()))
		return false
	}

	// Empty remote tables mean a first run against a fresh database.
	if len(portfolio) == 0 {
		portfolio = store.SeedPortfolio()
	}
	if len(blogs) == 0 {
		blogs = store.SeedBlogs()
	}
	merged := store.DefaultSettings()
	if foundSettings {
		merged = store.MergeSettings(merged, settings)
	}

	a.store.Hydrate(portfolio, blogs, subscribers, merged)
	if foundCred {
		a.store.SetCredential(cred)
	}

	// Refresh the local tier so it can serve the next boot offline.
	a.snapshot(ctx, keyPortfolio, portfolio)
	a.snapshot(ctx, keyBlogs, blogs)
	a.snapshot(ctx, keySubscribers, subscribers)
	a.snapshot(ctx, keySettings, merged)
	if foundCred {
		a.snapshot(ctx, keyCredential, cred)
	}

	a.log.Info("content loaded from remote store",
		slog.Int("portfolio", len(portfolio)),
		slog.Int("blogs", len(blogs)),
		slog.Int("subscribers", len(subscribers)),
	)
	return true
}

func (a *Adapter) loadCache(ctx context.Context) {
	portfolio := store.SeedPortfolio()
	if raw, found, err := a.cache.Get(ctx, keyPortfolio); err == nil && found {
		var loaded []store.PortfolioItem
		if err := json.Unmarshal(raw, &loaded); err == nil {
			portfolio = loaded
		} else {
			a.log.Warn("corrupt portfolio snapshot, using seed content", slog.String("error", err.Error()))
			a.dropSnapshot(ctx, keyPortfolio)
		}
	}

	blogs := store.SeedBlogs()
	if raw, found, err := a.cache.Get(ctx, keyBlogs); err == nil && found {
		var loaded []store.BlogPost
		if err := json.Unmarshal(raw, &loaded); err == nil {
			blogs = loaded
		} else {
			a.log.Warn("corrupt blogs snapshot, using seed content", slog.String("error", err.Error()))
			a.dropSnapshot(ctx, keyBlogs)
		}
	}

	subscribers := make([]store.Subscriber, 0)
	if raw, found, err := a.cache.Get(ctx, keySubscribers); err == nil && found {
		var loaded []store.Subscriber
		if err := json.Unmarshal(raw, &loaded); err == nil {
			subscribers = loaded
		} else {
			a.log.Warn("corrupt subscribers snapshot, starting empty", slog.String("error", err.Error()))
			a.dropSnapshot(ctx, keySubscribers)
		}
	}

	settings := store.DefaultSettings()
	if raw, found, err := a.cache.Get(ctx, keySettings); err == nil && found {
		var loaded store.SiteSettings
		if err := json.Unmarshal(raw, &loaded); err == nil {
			settings = store.MergeSettings(settings, loaded)
		} else {
			a.log.Warn("corrupt settings snapshot, using defaults", slog.String("error", err.Error()))
			a.dropSnapshot(ctx, keySettings)
		}
	}

	a.store.Hydrate(portfolio, blogs, subscribers, settings)

	if raw, found, err := a.cache.Get(ctx, keyCredential); err == nil && found {
		var cred store.Credential
		if err := json.Unmarshal(raw, &cred); err == nil {
			a.store.SetCredential(cred)
		} else {
			a.log.Warn("corrupt credential snapshot, credential must be re-bootstrapped", slog.String("error", err.Error()))
			a.dropSnapshot(ctx, keyCredential)
		}
	}

	a.log.Info("content loaded from local cache",
		slog.Int("portfolio", len(portfolio)),
		slog.Int("blogs", len(blogs)),
		slog.Int("subscribers", len(subscribers)),
	)
}
