package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"niiting-backend/internal/auth"
	"niiting-backend/internal/cache"
	"niiting-backend/internal/config"
	"niiting-backend/internal/db"
	"niiting-backend/internal/handlers"
	"niiting-backend/internal/journal"
	"niiting-backend/internal/middleware"
	"niiting-backend/internal/notifications"
	"niiting-backend/internal/persist"
	"niiting-backend/internal/portfolio"
	"niiting-backend/internal/store"
	"niiting-backend/internal/validation"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// The hosted database is optional. Without it the site runs local-only
	// and the snapshot cache is the sole persistence tier.
	var remote persist.RemoteStore
	if cfg.MongoURI != "" {
		client, cols, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			logger.Error("mongo connection failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("mongo connected", slog.String("db", cfg.MongoDB))
		defer client.Disconnect(context.Background())

		if err := db.EnsureIndexes(ctx, cols); err != nil {
			logger.Error("index creation failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		remote = persist.NewMirror(cols)
	} else {
		logger.Info("remote database disabled, running local-only")
	}

	var snapshots cache.Cache
	switch {
	case cfg.SnapshotDisable:
		snapshots = cache.NewNoop()
		logger.Info("local snapshots disabled")
	case cfg.RedisURL != "" || cfg.RedisAddr != "":
		var redisCache *cache.RedisCache
		var err error
		if cfg.RedisURL != "" {
			redisCache, err = cache.NewRedisFromURL(cfg.RedisURL)
		} else {
			redisCache = cache.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		}
		if err != nil {
			logger.Error("redis connection failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if err := redisCache.Ping(ctx); err != nil {
			logger.Error("redis connection failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("redis snapshot cache connected")
		snapshots = redisCache
	default:
		fileCache, err := cache.NewFile(cfg.SnapshotDir)
		if err != nil {
			logger.Error("snapshot directory unavailable", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("file snapshot cache ready", slog.String("dir", cfg.SnapshotDir))
		snapshots = fileCache
	}

	contentStore := store.New()
	adapter := persist.New(contentStore, snapshots, remote, logger, cfg.SnapshotMaxBytes)
	adapter.Load(ctx)

	if cfg.SnapshotDisable && !adapter.HasRemote() {
		logger.Warn("no persistence tier configured, content resets on restart")
	}

	// Bootstrap the admin credential on first run. Once a hash exists the
	// env password is ignored; rotation goes through the dashboard.
	if contentStore.CredentialHash() == "" && cfg.AdminPassword != "" {
		hash, err := auth.HashPassword(cfg.AdminPassword)
		if err != nil {
			logger.Error("admin credential bootstrap failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		contentStore.SetCredential(store.Credential{PasswordHash: hash, UpdatedAt: time.Now().UTC()})
		adapter.SaveCredential(ctx)
		logger.Info("admin credential bootstrapped")
	}
	if contentStore.CredentialHash() == "" {
		logger.Warn("no admin credential configured, dashboard login disabled")
	}

	var jwtManager *auth.Manager
	if cfg.JWTSecret != "" {
		jwtManager = &auth.Manager{
			Secret:     []byte(cfg.JWTSecret),
			AccessTTL:  time.Duration(cfg.AccessTTLMinutes) * time.Minute,
			RefreshTTL: time.Duration(cfg.RefreshTTLMinutes) * time.Minute,
			Issuer:     "niiting-backend",
		}
	}

	mailer := notifications.NewBrevoClient(cfg.BrevoAPIKey, cfg.BrevoSenderEmail, cfg.BrevoSenderName, cfg.BrevoSandbox)
	if mailer == nil {
		logger.Info("brevo mailer disabled")
	} else {
		logger.Info("brevo mailer enabled", slog.String("sender", cfg.BrevoSenderEmail), slog.Bool("sandbox", cfg.BrevoSandbox))
	}

	val := validation.New()

	server := &handlers.Server{
		Cfg:     cfg,
		Store:   contentStore,
		Adapter: adapter,
		Val:     val,
		Log:     logger,
		JWT:     jwtManager,
	}
	if mailer != nil {
		server.Mailer = mailer
	}

	portfolioService := portfolio.NewService(contentStore, adapter)
	portfolioHandler := portfolio.NewHandler(portfolioService, val, logger)

	journalService := journal.NewService(contentStore, adapter, cfg.Timezone)
	journalHandler := journal.NewHandler(journalService, val, logger)

	r := chi.NewRouter()
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.FrontendOrigins))
	r.Use(chiMiddleware.Timeout(30 * time.Second))

	subscribeLimiter := middleware.NewRateLimiter(cfg.RateLimitSubscribe, time.Duration(cfg.RateLimitWindowSec)*time.Second)
	loginLimiter := middleware.NewRateLimiter(cfg.RateLimitLogin, time.Duration(cfg.RateLimitWindowSec)*time.Second)

	r.Route("/api/v1", func(api chi.Router) {
		api.Get("/portfolio", portfolioHandler.PublicList)
		api.Get("/journal", journalHandler.PublicList)
		api.Get("/journal/{slug}", journalHandler.PublicGetBySlug)
		api.Get("/settings", server.PublicSettings)
		api.With(subscribeLimiter.Middleware).Post("/subscribe", server.Subscribe)

		api.Route("/admin", func(admin chi.Router) {
			admin.With(loginLimiter.Middleware).Post("/login", server.AdminLogin)
			admin.Post("/refresh", server.AdminRefresh)
			admin.Post("/logout", server.AdminLogout)

			// Important (chi): middlewares must be attached before defining routes.
			// Login/refresh/logout stay public; the rest goes through a sub-router.
			admin.Group(func(protected chi.Router) {
				protected.Use(middleware.AdminAuth(cfg.AdminAPIKey, jwtManager))

				protected.Get("/portfolio", portfolioHandler.AdminList)
				protected.Post("/portfolio", portfolioHandler.AdminCreate)
				protected.Put("/portfolio/{id}", portfolioHandler.AdminUpdate)
				protected.Delete("/portfolio/{id}", portfolioHandler.AdminDelete)
				protected.Post("/portfolio/{id}/pin", portfolioHandler.AdminTogglePin)

				protected.Post("/journal", journalHandler.AdminCreate)
				protected.Put("/journal/{id}", journalHandler.AdminUpdate)
				protected.Delete("/journal/{id}", journalHandler.AdminDelete)
				protected.Post("/journal/{id}/pin", journalHandler.AdminTogglePin)

				protected.Get("/subscribers", server.AdminListSubscribers)
				protected.Put("/subscribers/{id}", server.AdminUpdateSubscriber)
				protected.Delete("/subscribers/{id}", server.AdminDeleteSubscriber)

				protected.Put("/settings", server.AdminUpdateSettings)
				protected.Post("/password", server.AdminChangePassword)

				protected.Get("/backup", server.AdminExportBackup)
				protected.Post("/backup", server.AdminImportBackup)
			})
		})
	})

	srv := &http.Server{
		Addr:    cfg.ServerAddr,
		Handler: r,
	}

	go func() {
		logger.Info("server started", slog.String("addr", cfg.ServerAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.String("error", err.Error()))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	adapter.FlushAll(shutdownCtx)

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("server stopped")
}
