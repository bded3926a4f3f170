// Package powers holds the item effect variants and the rules for spending
// item uses on them.
package powers

import (
	"github.com/KirkDiggler/geoquest/internal/catalog"
	"github.com/KirkDiggler/geoquest/internal/entities"
)

// Power is the capability every item effect variant implements
type Power interface {
	ID() entities.PowerID

	// BaseCost is the budget spent to pick this power during generation
	BaseCost() int

	// Generatable reports whether the item generator may roll this power
	Generatable() bool

	// NeedsTarget is false for powers that act without a monster
	NeedsTarget() bool

	// AcceptsTargetRestriction allows a species or flag constraint
	AcceptsTargetRestriction() bool

	// SupportsTypeTargeting allows the by-type target modes
	SupportsTypeTargeting() bool

	// AcceptsResultRestriction allows a fixed result level or species
	AcceptsResultRestriction() bool

	// LevelCap is a hard cap on targetable levels that replaces the usual
	// minion/grunt start and elite/boss upgrades
	LevelCap() (catalog.Level, bool)

	// DefaultTargetMode is the mode a freshly generated item starts with
	DefaultTargetMode() entities.TargetMode

	// Noun is the item noun used for display names
	Noun() string

	// Describe renders the mechanical effect for the given target phrase
	Describe(target string, item *entities.Item) string

	// ApplyEffect acts on a single monster and reports success. It does not
	// consume uses.
	ApplyEffect(env *Env, item *entities.Item, monster *entities.Monster) bool
}

// Untargeted is implemented by powers that activate without a monster. They
// consume their own uses.
type Untargeted interface {
	Activate(env *Env, item *entities.Item) bool
}

// base carries the generation-time constants shared by every variant
type base struct {
	id                entities.PowerID
	cost              int
	generatable       bool
	needsTarget       bool
	targetRestriction bool
	typeTargeting     bool
	resultRestriction bool
	levelCap          *catalog.Level
	defaultMode       entities.TargetMode
	noun              string
}

func (b *base) ID() entities.PowerID { return b.id }

func (b *base) BaseCost() int { return b.cost }

func (b *base) Generatable() bool { return b.generatable }

func (b *base) NeedsTarget() bool { return b.needsTarget }

func (b *base) AcceptsTargetRestriction() bool { return b.targetRestriction }

func (b *base) SupportsTypeTargeting() bool { return b.typeTargeting }

func (b *base) AcceptsResultRestriction() bool { return b.resultRestriction }

func (b *base) DefaultTargetMode() entities.TargetMode { return b.defaultMode }

func (b *base) Noun() string { return b.noun }

func (b *base) LevelCap() (catalog.Level, bool) {
	if b.levelCap == nil {
		return 0, false
	}
	return *b.levelCap, true
}

// ApplyEffect is the default for powers with no single-monster effect
func (b *base) ApplyEffect(*Env, *entities.Item, *entities.Monster) bool {
	return false
}

func targeted(id entities.PowerID, cost int, noun string) base {
	return base{
		id:                id,
		cost:              cost,
		generatable:       true,
		needsTarget:       true,
		targetRestriction: true,
		typeTargeting:     true,
		defaultMode:       entities.TargetRandom,
		noun:              noun,
	}
}

func untargeted(id entities.PowerID, cost int, noun string) base {
	return base{
		id:          id,
		cost:        cost,
		generatable: true,
		defaultMode: entities.TargetRandom,
		noun:        noun,
	}
}

var eliteCap = catalog.LevelElite

// registry is the closed dispatch table, in declaration order
var registry = buildRegistry()

func buildRegistry() []Power {
	return []Power{
		newKill(),
		newBanish(),
		newSplit(),
		newTransmute(),
		newShrink(),
		newGrow(),
		newStatus(entities.PowerFreeze, "Snow Globe", "Frozen", "%s is frozen solid!", "Freezes %s solid"),
		newStatus(entities.PowerPacify, "Music Box", "Drowsy", "%s settles down for a nap.", "Lulls %s into a peaceful nap"),
		newStatus(entities.PowerPetrify, "Mirror", "Stony", "%s turns to stone!", "Turns %s to stone"),
		newStatus(entities.PowerVegetate, "Seed Pouch", "Leafy", "%s sprouts roots and leaves!", "Turns %s into a plant"),
		newStatus(entities.PowerStun, "Hammer", "Dazed", "%s sees stars!", "Stuns %s"),
		newStatus(entities.PowerDistract, "Kazoo", "Distracted", "%s wanders off after a butterfly.", "Distracts %s"),
		newPickpocket(),
		newLootbox(),
		newTreasure(),
		newScout(),
		newToken(),
	}
}

var byID = indexRegistry(registry)

func indexRegistry(powers []Power) map[entities.PowerID]Power {
	out := make(map[entities.PowerID]Power, len(powers))
	for _, p := range powers {
		out[p.ID()] = p
	}
	return out
}

// Get looks up a power by id
func Get(id entities.PowerID) (Power, bool) {
	p, ok := byID[id]
	return p, ok
}

// All returns every power in declaration order
func All() []Power {
	return append([]Power(nil), registry...)
}

// Generatable returns the powers the item generator may roll, in
// declaration order.
func Generatable() []Power {
	var out []Power
	for _, p := range registry {
		if p.Generatable() {
			out = append(out, p)
		}
	}
	return out
}
