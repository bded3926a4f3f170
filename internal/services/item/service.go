package item

//go:generate mockgen -destination=mock/mock_service.go -package=mockitem -source=service.go

import (
	"log"

	"github.com/KirkDiggler/geoquest/internal/catalog"
	"github.com/KirkDiggler/geoquest/internal/dice"
	"github.com/KirkDiggler/geoquest/internal/entities"
	"github.com/KirkDiggler/geoquest/internal/powers"
	"github.com/KirkDiggler/geoquest/internal/uuid"
)

// Service defines the item generator interface
type Service interface {
	// Generate builds an item for a generation level (1-6)
	Generate(level int) *entities.Item

	// GenerateWithBudget builds an item from a raw point budget
	GenerateWithBudget(budget int) *entities.Item
}

const (
	// MinBudget and MaxBudget bound every budget the generator spends
	MinBudget = 1
	MaxBudget = 10

	// UpgradeCost is the price of every upgrade step
	UpgradeCost = 1

	// UsesPerUpgrade is how many uses the extra-uses upgrade adds
	UsesPerUpgrade = 2
)

// Upgrade names recorded on generated items
const (
	UpgradeExtraUses               = "extra-uses"
	UpgradeRemoveTargetRestriction = "remove-target-restriction"
	UpgradeRemoveResultRestriction = "remove-result-restriction"
	UpgradeEscalateTargetMode      = "escalate-target-mode"
	UpgradeAddElite                = "add-elite"
	UpgradeAddBoss                 = "add-boss"
)

var levelBudgets = map[int]int{
	1: 1,
	2: 2,
	3: 4,
	4: 6,
	5: 8,
	6: 10,
}

// Budget returns the point budget for a generation level. Anything outside
// 1-6 is clamped into the budget range and used as the budget itself.
func Budget(level int) int {
	if budget, ok := levelBudgets[level]; ok {
		return budget
	}
	return clampBudget(level)
}

func clampBudget(budget int) int {
	if budget < MinBudget {
		return MinBudget
	}
	if budget > MaxBudget {
		return MaxBudget
	}
	return budget
}

// levelForBudget is the lowest generation level whose budget covers budget
func levelForBudget(budget int) int {
	for level := 1; level <= powers.MaxItemLevel; level++ {
		if levelBudgets[level] >= budget {
			return level
		}
	}
	return powers.MaxItemLevel
}

type service struct {
	catalog *catalog.Catalog
	roller  dice.Roller
	ids     uuid.Generator
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Catalog *catalog.Catalog // Required
	Roller  dice.Roller      // Optional - seeded from the clock if nil
	IDs     uuid.Generator   // Optional - random UUIDs if nil
}

// NewService creates a new item generator
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil || cfg.Catalog == nil {
		panic("catalog is required")
	}

	svc := &service{
		catalog: cfg.Catalog,
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

// Generate builds an item for a generation level
func (s *service) Generate(level int) *entities.Item {
	budget := Budget(level)
	if _, ok := levelBudgets[level]; !ok {
		level = levelForBudget(budget)
	}
	return s.generate(level, budget)
}

// GenerateWithBudget builds an item from a raw point budget
func (s *service) GenerateWithBudget(budget int) *entities.Item {
	budget = clampBudget(budget)
	return s.generate(levelForBudget(budget), budget)
}

func (s *service) generate(level, budget int) *entities.Item {
	power := s.pickPower(budget)

	item := &entities.Item{
		ID:         s.ids.New(),
		Uses:       1,
		Power:      power.ID(),
		Level:      level,
		TargetMode: power.DefaultTargetMode(),
		Budget:     budget,
		Spent:      power.BaseCost(),
	}

	if power.NeedsTarget() {
		if capLevel, ok := power.LevelCap(); ok {
			item.Filters.Levels = catalog.LevelsUpTo(capLevel)
		} else {
			item.Filters.Levels = []catalog.Level{catalog.LevelMinion, catalog.LevelGrunt}
		}
	}

	if power.AcceptsTargetRestriction() {
		s.restrictTarget(item)
	}

	if power.AcceptsResultRestriction() {
		s.restrictResult(item)
	}

	s.spendUpgrades(power, item)

	item.Name = Name(power, item)
	return item
}

func (s *service) pickPower(budget int) powers.Power {
	var affordable []powers.Power
	for _, p := range powers.Generatable() {
		if p.BaseCost() <= budget {
			affordable = append(affordable, p)
		}
	}

	if len(affordable) == 0 {
		kill, _ := powers.Get(entities.PowerKill)
		return kill
	}
	return dice.Pick(s.roller, affordable)
}

func (s *service) restrictTarget(item *entities.Item) {
	species := s.catalog.Species()
	flags := s.catalog.Flags()

	if dice.Coin(s.roller) && len(species) > 0 {
		item.Filters.Species = []string{dice.Pick(s.roller, species)}
		return
	}
	if len(flags) > 0 {
		item.Filters.Flags = []string{dice.Pick(s.roller, flags)}
	}
}

func (s *service) restrictResult(item *entities.Item) {
	species := s.catalog.Species()

	if dice.Coin(s.roller) || len(species) == 0 {
		level := dice.Pick(s.roller, catalog.Levels)
		item.ResultLevel = &level
		return
	}
	item.ResultSpecies = dice.Pick(s.roller, species)
}

type upgrade struct {
	name  string
	apply func(item *entities.Item)
}

func (s *service) spendUpgrades(power powers.Power, item *entities.Item) {
	for item.Budget-item.Spent >= UpgradeCost {
		legal := s.legalUpgrades(power, item)
		if len(legal) == 0 {
			break
		}

		chosen := dice.Pick(s.roller, legal)
		chosen.apply(item)
		item.Spent += UpgradeCost
		item.Upgrades = append(item.Upgrades, chosen.name)
	}

	if item.Spent > item.Budget {
		log.Printf("Item: %s overspent budget (%d/%d)", item.ID, item.Spent, item.Budget)
	}
}

func (s *service) legalUpgrades(power powers.Power, item *entities.Item) []upgrade {
	legal := []upgrade{{
		name:  UpgradeExtraUses,
		apply: func(i *entities.Item) { i.Uses += UsesPerUpgrade },
	}}

	if !power.NeedsTarget() {
		return legal
	}

	if item.HasTargetRestriction() {
		legal = append(legal, upgrade{
			name: UpgradeRemoveTargetRestriction,
			apply: func(i *entities.Item) {
				i.Filters.Species = nil
				i.Filters.Flags = nil
			},
		})
	}

	if item.HasResultRestriction() {
		legal = append(legal, upgrade{
			name: UpgradeRemoveResultRestriction,
			apply: func(i *entities.Item) {
				i.ResultLevel = nil
				i.ResultSpecies = ""
			},
		})
	}

	if next, ok := item.TargetMode.Next(); ok && (!next.ByType() || power.SupportsTypeTargeting()) {
		legal = append(legal, upgrade{
			name:  UpgradeEscalateTargetMode,
			apply: func(i *entities.Item) { i.TargetMode = next },
		})
	}

	if _, capped := power.LevelCap(); !capped {
		switch {
		case !item.Filters.HasLevel(catalog.LevelElite):
			legal = append(legal, upgrade{
				name:  UpgradeAddElite,
				apply: func(i *entities.Item) { i.Filters.Levels = append(i.Filters.Levels, catalog.LevelElite) },
			})
		case !item.Filters.HasLevel(catalog.LevelBoss):
			legal = append(legal, upgrade{
				name:  UpgradeAddBoss,
				apply: func(i *entities.Item) { i.Filters.Levels = append(i.Filters.Levels, catalog.LevelBoss) },
			})
		}
	}

	return legal
}
