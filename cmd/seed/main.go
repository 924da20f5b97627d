package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/jericho-forum/jericho/config"
	"github.com/jericho-forum/jericho/internal/domain/entity"
	"github.com/jericho-forum/jericho/internal/identity"
	"github.com/jericho-forum/jericho/internal/infrastructure/mongodb"
	"github.com/jericho-forum/jericho/pkg/helpers"
)

// Seeds a demo account and a couple of posts for local development.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongodb.Connect(ctx, cfg.MongoURI, cfg.MongoConnectTimeout)
	if err != nil {
		log.Fatalf("failed to connect to mongodb: %v", err)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()
	db := client.Database(cfg.MongoDatabase)

	store := mongodb.NewUserStore(db, cfg.UsersCollection)
	manager := identity.NewManager(store, nil, logger)

	userName := "demoUser"
	password := "password123"

	u, err := identity.NewUserWithEmail(userName, "demo@example.com")
	if err != nil {
		log.Fatalf("failed to build user: %v", err)
	}
	if errs := manager.CreateUser(ctx, u, password); len(errs) > 0 {
		// duplicate on re-run is fine, reuse the stored account
		existing, ferr := manager.FindByName(ctx, userName)
		if ferr != nil || existing == nil {
			log.Fatalf("failed to seed user: %v", errs)
		}
		u = existing
	}
	fmt.Printf("seeded user: id=%s username=%s password=%s\n", u.ID.Hex(), u.UserName, password)

	posts := mongodb.NewPostRepository(db, cfg.PostsCollection)
	now := time.Now()
	for _, p := range []*entity.PostEntity{
		{
			Title:     "Welcome to Jericho",
			Text:      "First post on the forum.",
			URL:       helpers.Slug("Welcome to Jericho", now),
			Type:      entity.PostTypeText,
			PostedBy:  u.UserName,
			CreatedOn: now.UTC(),
		},
		{
			Title:     "Posting guidelines",
			Text:      "Be excellent to each other.",
			URL:       helpers.Slug("Posting guidelines", now),
			Type:      entity.PostTypeText,
			PostedBy:  u.UserName,
			CreatedOn: now.UTC(),
		},
	} {
		// skip posts that survived an earlier run
		existing, err := posts.Find(ctx, map[string]string{"title": p.Title}, 0, 1)
		if err != nil {
			log.Fatalf("failed to check seed post: %v", err)
		}
		if len(existing) > 0 {
			fmt.Printf("post already seeded: title=%q\n", p.Title)
			continue
		}
		id, err := posts.Insert(ctx, p)
		if err != nil {
			log.Fatalf("failed to seed post: %v", err)
		}
		fmt.Printf("seeded post: id=%s title=%q\n", id.Hex(), p.Title)
	}
}
