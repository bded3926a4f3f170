package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/KirkDiggler/geoquest/internal/config"
	"github.com/KirkDiggler/geoquest/internal/dice"
	"github.com/KirkDiggler/geoquest/internal/entities"
	"github.com/KirkDiggler/geoquest/internal/events"
	"github.com/KirkDiggler/geoquest/internal/repositories/inventory"
	"github.com/KirkDiggler/geoquest/internal/services"
	"github.com/KirkDiggler/geoquest/internal/services/encounter"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	tierName := flag.String("tier", "easy", "encounter tier: start, easy, medium, hard, end")
	locationType := flag.String("location", "park", "location type id")
	players := flag.Int("players", cfg.Engine.PlayerCount, "party size")
	multiplier := flag.Float64("multiplier", cfg.Engine.DifficultyMultiplier, "difficulty multiplier")
	owner := flag.String("owner", "", "store dropped items in this owner's inventory")
	fight := flag.Bool("fight", false, "use each dropped item on the first monster it can target")
	flag.Parse()

	tier, err := encounter.ParseTier(*tierName)
	if err != nil {
		log.Fatalf("Invalid tier: %v", err)
	}

	cat, err := cfg.LoadCatalog()
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	seed := cfg.EffectiveSeed()
	log.Printf("Using seed %d", seed)

	provider := services.NewProvider(&services.ProviderConfig{
		Catalog: cat,
		Roller:  dice.NewSeededRoller(seed),
	})

	ctx := context.Background()
	repo, closeInventory := openInventory(ctx, cfg)
	defer closeInventory()

	location, err := provider.Enter(ctx, "questgen", *locationType, encounter.GenerateInput{
		Tier:                 tier,
		PlayerCount:          *players,
		DifficultyMultiplier: *multiplier,
	})
	if err != nil {
		log.Fatalf("Failed to generate encounter: %v", err)
	}

	fmt.Printf("A %s encounter at a %s:\n", tier, *locationType)
	var loot []*entities.Item
	for _, m := range location.Monsters() {
		def := cat.MonsterOrFallback(m.TypeID)
		fmt.Printf("  %-28s %-8s %s\n", m.Name, def.Level, def.Species)
		if m.Item != nil {
			fmt.Printf("    carries %s: %s\n", m.Item.Name, provider.Describe(m.Item))
			loot = append(loot, m.Item)
		}
	}

	if *owner != "" {
		for _, item := range loot {
			if err := repo.Add(ctx, *owner, item); err != nil {
				log.Printf("Failed to store %s: %v", item.Name, err)
			}
		}
		fmt.Printf("\nStored %d items for %s\n", len(loot), *owner)
	}

	if !*fight {
		return
	}

	recorder := events.NewRecorder()
	bus := events.NewBus()
	bus.SubscribeEffects(recorder)
	bus.SubscribeEffects(&events.LogSink{Prefix: "[questgen] "})

	ownerID := *owner
	if ownerID == "" {
		ownerID = "questgen"
	}
	scene := services.Scene{
		Location:  location,
		Events:    bus,
		Inventory: inventory.Sink(ctx, repo, ownerID),
		Party:     entities.NewParty(*players, 0),
	}

	fmt.Println()
	for _, item := range loot {
		if item.Uses <= 0 {
			continue
		}
		if provider.UseWithoutTarget(scene, item) {
			continue
		}
		if item.TargetMode.ByType() {
			if types := provider.TargetTypes(item, location.Monsters()); len(types) > 0 {
				provider.ApplyEffectToType(scene, item, types[0].ID)
			}
			continue
		}
		for _, m := range provider.Targets(item, location.Monsters()) {
			if provider.ApplyEffect(scene, item, m) {
				break
			}
		}
	}

	for _, msg := range recorder.Messages() {
		fmt.Println(msg)
	}
	fmt.Printf("\n%d XP earned, %d monsters still standing\n", recorder.TotalXP(), len(location.Alive()))
	if location.Cleared() {
		fmt.Println("The location is clear!")
	}
}

func openInventory(ctx context.Context, cfg *config.Config) (inventory.Repository, func()) {
	if cfg.Redis.URL == "" {
		return inventory.NewInMemoryRepository(nil), func() {}
	}

	repo, client, err := inventory.Connect(ctx, cfg.Redis.URL)
	if err != nil {
		log.Printf("%v, falling back to in-memory inventory", err)
		return inventory.NewInMemoryRepository(nil), func() {}
	}
	log.Println("Using Redis for inventory persistence")
	return repo, func() { _ = client.Close() }
}

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: questgen [flags]\n\nRolls one encounter and prints the monsters and their loot.\n\n")
		flag.PrintDefaults()
	}
}
