package services

import (
	"context"
	"log"

	"github.com/KirkDiggler/geoquest/internal/catalog"
	"github.com/KirkDiggler/geoquest/internal/describe"
	"github.com/KirkDiggler/geoquest/internal/dice"
	"github.com/KirkDiggler/geoquest/internal/entities"
	geoerr "github.com/KirkDiggler/geoquest/internal/errors"
	"github.com/KirkDiggler/geoquest/internal/powers"
	"github.com/KirkDiggler/geoquest/internal/repositories/locations"
	"github.com/KirkDiggler/geoquest/internal/services/encounter"
	"github.com/KirkDiggler/geoquest/internal/services/item"
	"github.com/KirkDiggler/geoquest/internal/targeting"
	"github.com/KirkDiggler/geoquest/internal/uuid"
)

// Provider holds all service instances and exposes the engine's boundary
// operations
type Provider struct {
	Catalog            *catalog.Catalog
	ItemService        item.Service
	EncounterService   encounter.Service
	LocationRepository locations.Repository

	roller dice.Roller
	ids    uuid.Generator
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	Catalog            *catalog.Catalog
	Roller             dice.Roller
	IDs                uuid.Generator
	LocationRepository locations.Repository
}

// Scene is the caller-owned state one effect application may touch
type Scene struct {
	Location  powers.Location
	Events    powers.EventSink
	Inventory powers.Inventory
	Party     powers.Party
}

// NewProvider creates a new service provider with all services initialized.
// Every collaborator falls back to a default when omitted.
func NewProvider(cfg *ProviderConfig) *Provider {
	if cfg == nil {
		cfg = &ProviderConfig{}
	}

	cat := cfg.Catalog
	if cat == nil {
		cat = catalog.Default()
	}

	roller := cfg.Roller
	if roller == nil {
		roller = dice.NewRandomRoller()
	}

	ids := cfg.IDs
	if ids == nil {
		ids = uuid.NewGoogleUUIDGenerator()
	}

	locationRepo := cfg.LocationRepository
	if locationRepo == nil {
		locationRepo = locations.NewInMemoryRepository()
	}

	itemService := item.NewService(&item.ServiceConfig{
		Catalog: cat,
		Roller:  roller,
		IDs:     ids,
	})

	encounterService := encounter.NewService(&encounter.ServiceConfig{
		Catalog:     cat,
		ItemService: itemService,
		Roller:      roller,
		IDs:         ids,
	})

	return &Provider{
		Catalog:            cat,
		ItemService:        itemService,
		EncounterService:   encounterService,
		LocationRepository: locationRepo,
		roller:             roller,
		ids:                ids,
	}
}

// GenerateItem builds a random item for a generation level (1-6)
func (p *Provider) GenerateItem(level int) *entities.Item {
	return p.ItemService.Generate(level)
}

// GenerateEncounter rolls the monsters for one encounter
func (p *Provider) GenerateEncounter(tier encounter.Tier, playerCount int, multiplier float64) ([]*entities.Monster, error) {
	return p.EncounterService.Generate(&encounter.GenerateInput{
		Tier:                 tier,
		PlayerCount:          playerCount,
		DifficultyMultiplier: multiplier,
	})
}

// Describe renders the item's player-facing description
func (p *Provider) Describe(item *entities.Item) string {
	return describe.Describe(item)
}

// CanTarget reports whether the item may affect the monster
func (p *Provider) CanTarget(item *entities.Item, monster *entities.Monster) bool {
	return targeting.CanTarget(p.Catalog, item, monster)
}

// Targets returns the living monsters the item may affect
func (p *Provider) Targets(item *entities.Item, monsters []*entities.Monster) []*entities.Monster {
	return targeting.Targetable(p.Catalog, item, monsters)
}

// TargetTypes returns the monster types present that a by-type use may hit
func (p *Provider) TargetTypes(item *entities.Item, monsters []*entities.Monster) []*catalog.MonsterTypeDef {
	return targeting.TargetableTypes(p.Catalog, item, monsters)
}

// ApplyEffect uses the item on one monster, spending a use on success
func (p *Provider) ApplyEffect(scene Scene, item *entities.Item, monster *entities.Monster) bool {
	return powers.Use(p.env(scene), item, monster)
}

// ApplyEffectToType uses the item on every monster of a type at the scene's
// location and returns how many were affected
func (p *Provider) ApplyEffectToType(scene Scene, item *entities.Item, typeID string) int {
	return powers.UseOnMonsterType(p.env(scene), item, typeID)
}

// UseWithoutTarget activates an untargeted item such as a lootbox
func (p *Provider) UseWithoutTarget(scene Scene, item *entities.Item) bool {
	return powers.UseWithoutTarget(p.env(scene), item)
}

func (p *Provider) env(scene Scene) *powers.Env {
	return &powers.Env{
		Catalog:   p.Catalog,
		Roller:    p.roller,
		IDs:       p.ids,
		Location:  scene.Location,
		Events:    scene.Events,
		Inventory: scene.Inventory,
		Party:     scene.Party,
		Items:     p.ItemService,
	}
}

// Enter returns the stored location, creating and populating it on the first
// visit. Later visits see whatever survived earlier fights.
func (p *Provider) Enter(ctx context.Context, id, typeID string, input encounter.GenerateInput) (*locations.Location, error) {
	existing, err := p.LocationRepository.Get(ctx, id)
	if err == nil {
		return existing, nil
	}
	if !geoerr.IsNotFound(err) {
		return nil, err
	}

	if _, ok := p.Catalog.Location(typeID); !ok {
		log.Printf("Provider: unknown location type %q for %s", typeID, id)
	}

	location := locations.NewLocation(id, typeID)
	if _, err := locations.Populate(p.EncounterService, location, input); err != nil {
		return nil, err
	}
	if err := p.LocationRepository.Create(ctx, location); err != nil {
		return nil, err
	}

	return location, nil
}
