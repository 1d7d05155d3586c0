package main

import (
	"context"
	"log"
	"os"
	"time"

	"niiting-backend/internal/auth"
	"niiting-backend/internal/config"
	"niiting-backend/internal/db"
	"niiting-backend/internal/persist"
	"niiting-backend/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.MongoURI == "" {
		log.Fatal("MONGO_URI is required to seed the remote database")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, cols, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal(err)
	}
	defer client.Disconnect(context.Background())

	if err := db.EnsureIndexes(ctx, cols); err != nil {
		log.Fatal(err)
	}

	mirror := persist.NewMirror(cols)

	for _, item := range store.SeedPortfolio() {
		if err := mirror.UpsertPortfolioItem(ctx, item); err != nil {
			log.Fatalf("seed portfolio %s: %v", item.ID, err)
		}
	}

	for _, post := range store.SeedBlogs() {
		if err := mirror.UpsertBlogPost(ctx, post); err != nil {
			log.Fatalf("seed blog %s: %v", post.ID, err)
		}
	}

	if err := mirror.SaveSettings(ctx, store.DefaultSettings()); err != nil {
		log.Fatalf("seed settings: %v", err)
	}

	if password := os.Getenv("ADMIN_PASSWORD"); password != "" {
		hash, err := auth.HashPassword(password)
		if err != nil {
			log.Fatalf("seed admin credential: %v", err)
		}
		cred := store.Credential{PasswordHash: hash, UpdatedAt: time.Now().UTC()}
		if err := mirror.SaveCredential(ctx, cred); err != nil {
			log.Fatalf("seed admin credential: %v", err)
		}
		log.Println("admin credential seeded")
	}

	log.Println("seed complete")
}
