// Package main provides a tool to seed the database with demo catalogs.
//
// This creates a handful of storefronts with items across templates and
// some engagement history, for exercising the viewer and the dashboard.
//
// Usage:
//
//	DATA_PATH=~/Showcase/data go run ./cmd/seed
//	DATA_PATH=~/Showcase/data go run ./cmd/seed --with-engagement
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/showcaseapp/showcase-server/internal/domain"
	"github.com/showcaseapp/showcase-server/internal/search"
	"github.com/showcaseapp/showcase-server/internal/service"
	"github.com/showcaseapp/showcase-server/internal/store"
	"github.com/showcaseapp/showcase-server/internal/store/sqlite"
	"github.com/showcaseapp/showcase-server/internal/validation"
)

var withEngagement = flag.Bool("with-engagement", false, "Also seed engagement events for the demo catalogs")

const demoOwnerID = "own-demo"

func main() {
	flag.Parse()

	dataPath := os.Getenv("DATA_PATH")
	if dataPath == "" {
		dataPath = os.ExpandEnv("$HOME/Showcase/data")
	}

	fmt.Printf("Seeding data under: %s\n", dataPath)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	st, err := store.New(filepath.Join(dataPath, "catalogs"), logger)
	if err != nil {
		log.Fatalf("Failed to open catalog store: %v", err)
	}
	defer st.Close()

	events, err := sqlite.Open(filepath.Join(dataPath, "engagement.db"), logger)
	if err != nil {
		log.Fatalf("Failed to open engagement store: %v", err)
	}
	defer events.Close()

	index, err := search.NewSearchIndex(search.Options{
		DataPath: filepath.Join(dataPath, "search"),
		Logger:   logger,
	})
	if err != nil {
		log.Fatalf("Failed to open search index: %v", err)
	}
	defer index.Close()

	st.SetSearchIndexer(service.IndexCatalogStoreAdapter{Index: index})

	engagement := service.NewEngagementService(events, nil, 0, logger)
	catalogs := service.NewCatalogService(st, engagement, validation.New(), logger)

	ctx := context.Background()

	created := 0
	for _, input := range demoCatalogs() {
		catalog, err := catalogs.CreateCatalog(ctx, demoOwnerID, input)
		if err != nil {
			fmt.Printf("  Skipping %s: %v\n", input.Slug, err)
			continue
		}

		fmt.Printf("  Created %s (%s) with %d items\n", catalog.Slug, catalog.ID, len(catalog.Items))
		created++

		if *withEngagement {
			seedEngagement(ctx, engagement, catalog)
		}
	}

	engagement.Drain()
	fmt.Printf("Done: %d catalogs created, owner %s\n", created, demoOwnerID)
}

// seedEngagement records a plausible spread of views and clicks.
func seedEngagement(ctx context.Context, engagement *service.EngagementService, catalog *domain.Catalog) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	views := 20 + rng.Intn(80)
	for i := 0; i < views; i++ {
		_ = engagement.Record(ctx, catalog.ID, domain.KindViews, "")
	}

	for _, kind := range []domain.EventKind{domain.KindCallClicks, domain.KindWhatsAppClicks, domain.KindDirectionClicks} {
		if !catalog.HasContact(kind) {
			continue
		}
		clicks := rng.Intn(views / 4)
		for i := 0; i < clicks; i++ {
			_ = engagement.Record(ctx, catalog.ID, kind, "")
		}
	}

	fmt.Printf("    Seeded %d views for %s\n", views, catalog.Slug)
}

func demoCatalogs() []service.CatalogInput {
	return []service.CatalogInput{
		{
			Slug:           "corner-cafe",
			BusinessName:   "Corner Cafe",
			Description:    "Third-wave coffee and fresh pastry, every morning.",
			PhoneNumber:    "+15550100",
			WhatsAppNumber: "+15550100999",
			Address:        "1 Main St, Springfield",
			Theme: service.ThemeInput{
				Template:     string(domain.TemplateDefault),
				PrimaryColor: "#B45309",
			},
			Items: []service.CatalogItemInput{
				{Name: "Latte", Price: 4.5, Category: "Drinks", Description: "Double shot, silky milk."},
				{Name: "Cold Brew", Price: 4, Category: "Drinks"},
				{Name: "Croissant", Price: 3, Category: "Bakery", Description: "Laminated over three days."},
				{Name: "Banana Bread", Price: 3.5, Category: "Bakery"},
			},
		},
		{
			Slug:         "atelier-verde",
			BusinessName: "Atelier Verde",
			Description:  "Hand-thrown ceramics in small batches.",
			Address:      "24 Pottery Lane, Springfield",
			Theme: service.ThemeInput{
				Template:        string(domain.TemplateGallery),
				PrimaryColor:    "#166534",
				BackgroundColor: "#F7F5F0",
			},
			Items: []service.CatalogItemInput{
				{Name: "Stoneware Mug", Price: 28, Category: "Tableware", ImageURL: "https://images.example.com/mug.jpg"},
				{Name: "Serving Bowl", Price: 64, Category: "Tableware", ImageURL: "https://images.example.com/bowl.jpg"},
				{Name: "Bud Vase", Price: 36, Category: "Decor"},
			},
		},
		{
			Slug:           "haircuts-by-dana",
			BusinessName:   "Haircuts by Dana",
			PhoneNumber:    "+15550177",
			WhatsAppNumber: "+15550177000",
			Theme: service.ThemeInput{
				Template: string(domain.TemplateMinimalist),
			},
			Items: []service.CatalogItemInput{
				{Name: "Cut & Style", Price: 45, Category: "Hair"},
				{Name: "Color", Price: 90, Category: "Hair"},
				{Name: "Beard Trim", Price: 20, Category: "Grooming"},
			},
		},
	}
}
