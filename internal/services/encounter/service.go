package encounter

//go:generate mockgen -destination=mock/mock_service.go -package=mockencounter -source=service.go

import (
	"fmt"
	"log"
	"math"

	"github.com/KirkDiggler/geoquest/internal/catalog"
	"github.com/KirkDiggler/geoquest/internal/dice"
	"github.com/KirkDiggler/geoquest/internal/entities"
	geoerr "github.com/KirkDiggler/geoquest/internal/errors"
	"github.com/KirkDiggler/geoquest/internal/services/item"
	"github.com/KirkDiggler/geoquest/internal/uuid"
)

// Service defines the encounter generator interface
type Service interface {
	// Generate rolls the monsters for one encounter
	Generate(input *GenerateInput) ([]*entities.Monster, error)
}

// GenerateInput contains the data for one encounter roll
type GenerateInput struct {
	Tier                 Tier
	PlayerCount          int
	DifficultyMultiplier float64

	// LocationTypeID adds the location's nullified species to NullifiedSpecies
	LocationTypeID   string
	NullifiedSpecies []string
}

type service struct {
	catalog *catalog.Catalog
	items   item.Service
	roller  dice.Roller
	ids     uuid.Generator
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Catalog     *catalog.Catalog // Required
	ItemService item.Service     // Required
	Roller      dice.Roller
	IDs         uuid.Generator
}

// NewService creates a new encounter generator
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil || cfg.Catalog == nil {
		panic("catalog is required")
	}
	if cfg.ItemService == nil {
		panic("item service is required")
	}

	svc := &service{
		catalog: cfg.Catalog,
		items:   cfg.ItemService,
		roller:  cfg.Roller,
		ids:     cfg.IDs,
	}
	if svc.roller == nil {
		svc.roller = dice.NewRandomRoller()
	}
	if svc.ids == nil {
		svc.ids = uuid.NewGoogleUUIDGenerator()
	}

	return svc
}

const (
	// MaxDifficultyMultiplier is the largest multiplier Generate accepts
	MaxDifficultyMultiplier = 10.0
	// MaxUnitSize bounds a single group no matter how large the party is
	MaxUnitSize = 100
)

// Scaled is max(1, round(n*multiplier)), capped at MaxUnitSize
func Scaled(n int, multiplier float64) int {
	scaled := math.Round(float64(n) * multiplier)
	switch {
	case scaled >= MaxUnitSize:
		return MaxUnitSize
	case scaled < 1 || math.IsNaN(scaled):
		return 1
	}
	return int(scaled)
}

// UnitSize is how many monsters one group at level contains
func UnitSize(tier Tier, level catalog.Level, players int, multiplier float64) int {
	switch level {
	case catalog.LevelBoss:
		return 1
	case catalog.LevelElite:
		if tier == TierHard {
			return Scaled(players, multiplier)
		}
		return 1
	case catalog.LevelGrunt:
		return Scaled(players, multiplier)
	default:
		return Scaled(players*2, multiplier)
	}
}

type group struct {
	def  *catalog.MonsterTypeDef
	size int
}

// Generate rolls the monsters for one encounter
func (s *service) Generate(input *GenerateInput) ([]*entities.Monster, error) {
	if input == nil {
		return nil, geoerr.InvalidArgument("input cannot be nil")
	}

	templates, ok := Compositions[input.Tier]
	if !ok || len(templates) == 0 {
		return nil, geoerr.InvalidArgumentf("unknown tier %d", int(input.Tier))
	}
	if input.DifficultyMultiplier < 0 || math.IsNaN(input.DifficultyMultiplier) {
		return nil, geoerr.InvalidArgumentf("difficulty multiplier must not be negative, got %v", input.DifficultyMultiplier)
	}
	if input.DifficultyMultiplier > MaxDifficultyMultiplier {
		return nil, geoerr.InvalidArgumentf("difficulty multiplier must be at most %v, got %v",
			MaxDifficultyMultiplier, input.DifficultyMultiplier)
	}

	players := input.PlayerCount
	if players < 1 {
		players = 1
	}

	composition := s.pickComposition(templates)
	nullified := s.nullified(input)

	var groups []group
	for _, slot := range composition.Slots {
		for i := 0; i < slot.Count; i++ {
			def := s.pickType(slot.Level, nullified)
			if def == nil {
				log.Printf("Encounter: no monster types at level %s, skipping slot", slot.Level)
				continue
			}
			groups = append(groups, group{
				def:  def,
				size: UnitSize(input.Tier, slot.Level, players, input.DifficultyMultiplier),
			})
		}
	}

	return s.instantiate(groups), nil
}

func (s *service) pickComposition(templates []Composition) Composition {
	weights := make([]float64, len(templates))
	for i, c := range templates {
		weights[i] = c.Weight
	}

	idx := dice.WeightedIndex(s.roller, weights)
	if idx < 0 {
		return templates[0]
	}
	return templates[idx]
}

func (s *service) nullified(input *GenerateInput) map[string]bool {
	out := make(map[string]bool)
	for _, species := range input.NullifiedSpecies {
		out[species] = true
	}

	if input.LocationTypeID == "" {
		return out
	}
	loc, ok := s.catalog.Location(input.LocationTypeID)
	if !ok {
		log.Printf("Encounter: unknown location type %q, nothing nullified", input.LocationTypeID)
		return out
	}
	for _, species := range loc.NullifiedSpecies {
		out[species] = true
	}
	return out
}

// pickType picks uniformly among the level's types, skipping nullified
// species unless that leaves nothing
func (s *service) pickType(level catalog.Level, nullified map[string]bool) *catalog.MonsterTypeDef {
	all := s.catalog.MonstersAtLevel(level)
	if len(all) == 0 {
		return nil
	}

	var allowed []*catalog.MonsterTypeDef
	for _, def := range all {
		if !nullified[def.Species] {
			allowed = append(allowed, def)
		}
	}
	if len(allowed) == 0 {
		allowed = all
	}

	return dice.Pick(s.roller, allowed)
}

func (s *service) instantiate(groups []group) []*entities.Monster {
	totals := make(map[string]int)
	for _, g := range groups {
		totals[g.def.ID] += g.size
	}

	seq := make(map[string]int)
	var monsters []*entities.Monster
	for _, g := range groups {
		for i := 0; i < g.size; i++ {
			name := g.def.Title
			if totals[g.def.ID] > 1 {
				seq[g.def.ID]++
				name = fmt.Sprintf("%s %d", g.def.Title, seq[g.def.ID])
			}

			monster := entities.NewMonster(s.ids.New(), g.def.ID, name)
			if dice.Chance(s.roller, DropChances[g.def.Level]) {
				monster.Item = s.items.Generate(g.def.Level.ItemLevel())
			}
			monsters = append(monsters, monster)
		}
	}
	return monsters
}
