package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/KirkDiggler/geoquest/internal/config"
	"github.com/KirkDiggler/geoquest/internal/describe"
	"github.com/KirkDiggler/geoquest/internal/repositories/inventory"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	owner := flag.String("owner", "", "owner whose inventory to print")
	flag.Parse()

	if *owner == "" {
		log.Fatal("-owner is required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Redis.URL == "" {
		log.Fatal("REDIS_URL is required to read a stored inventory")
	}

	ctx := context.Background()
	repo, client, err := inventory.Connect(ctx, cfg.Redis.URL)
	if err != nil {
		log.Fatal(err)
	}
	defer client.Close()

	items, err := repo.List(ctx, *owner)
	if err != nil {
		log.Fatalf("Failed to list inventory: %v", err)
	}

	fmt.Printf("%s holds %d items:\n", *owner, len(items))
	for _, item := range items {
		fmt.Printf("  [%s] %s\n", item.ID, item.Name)
		fmt.Printf("      %s\n", describe.Describe(item))
		fmt.Printf("      budget %d, spent %d, upgrades %v\n", item.Budget, item.Spent, item.Upgrades)
	}
}
