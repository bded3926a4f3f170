package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"sort"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/geoquest/internal/catalog"
	"github.com/KirkDiggler/geoquest/internal/config"
	"github.com/KirkDiggler/geoquest/internal/dice"
	"github.com/KirkDiggler/geoquest/internal/entities"
	"github.com/KirkDiggler/geoquest/internal/services/item"
	"github.com/KirkDiggler/geoquest/internal/uuid"
)

const maxLevel = 6

type levelStats struct {
	level    int
	samples  int
	spent    int
	uses     int
	powers   map[entities.PowerID]int
	modes    map[entities.TargetMode]int
	upgrades map[string]int
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	samples := flag.Int("samples", 10000, "items generated per level")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cat, err := cfg.LoadCatalog()
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	seed := cfg.EffectiveSeed()
	log.Printf("Sampling %d items per level with seed %d", *samples, seed)

	results := make([]*levelStats, maxLevel)

	// Rollers are not safe for concurrent use, so each level gets its own
	g, ctx := errgroup.WithContext(context.Background())
	for level := 1; level <= maxLevel; level++ {
		g.Go(func() error {
			stats, err := sample(ctx, cat, seed+int64(level), level, *samples)
			if err != nil {
				return err
			}
			results[level-1] = stats
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatalf("Sampling failed: %v", err)
	}

	for _, stats := range results {
		printStats(stats)
	}
}

func sample(ctx context.Context, cat *catalog.Catalog, seed int64, level, n int) (*levelStats, error) {
	svc := item.NewService(&item.ServiceConfig{
		Catalog: cat,
		Roller:  dice.NewSeededRoller(seed),
		IDs:     uuid.NewSequentialGenerator(fmt.Sprintf("l%d", level)),
	})

	stats := &levelStats{
		level:    level,
		powers:   make(map[entities.PowerID]int),
		modes:    make(map[entities.TargetMode]int),
		upgrades: make(map[string]int),
	}

	for i := 0; i < n; i++ {
		if i%1000 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		it := svc.Generate(level)
		if it.Spent > it.Budget {
			return nil, fmt.Errorf("level %d item %s overspent: %d > %d", level, it.ID, it.Spent, it.Budget)
		}

		stats.samples++
		stats.spent += it.Spent
		stats.uses += it.Uses
		stats.powers[it.Power]++
		stats.modes[it.TargetMode]++
		for _, u := range it.Upgrades {
			stats.upgrades[u]++
		}
	}

	return stats, nil
}

func printStats(s *levelStats) {
	fmt.Printf("Level %d (budget %d): avg spent %.2f, avg uses %.2f\n",
		s.level, item.Budget(s.level),
		float64(s.spent)/float64(s.samples), float64(s.uses)/float64(s.samples))

	fmt.Println("  powers:")
	for _, k := range sortedKeys(s.powers) {
		fmt.Printf("    %-12s %6.2f%%\n", k, percent(s.powers[k], s.samples))
	}

	fmt.Println("  target modes:")
	for mode := entities.TargetRandom; mode <= entities.TargetPickType; mode++ {
		fmt.Printf("    %-12s %6.2f%%\n", mode, percent(s.modes[mode], s.samples))
	}

	if len(s.upgrades) > 0 {
		fmt.Println("  upgrades per item:")
		for _, k := range sortedKeys(s.upgrades) {
			fmt.Printf("    %-26s %.3f\n", k, float64(s.upgrades[k])/float64(s.samples))
		}
	}
	fmt.Println()
}

func percent(n, total int) float64 {
	return 100 * float64(n) / float64(total)
}

func sortedKeys[K ~string](m map[K]int) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
