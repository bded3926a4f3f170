package powers

//go:generate mockgen -destination=mock/mock_env.go -package=mockpowers -source=env.go

import (
	"log"

	"github.com/KirkDiggler/geoquest/internal/catalog"
	"github.com/KirkDiggler/geoquest/internal/dice"
	"github.com/KirkDiggler/geoquest/internal/entities"
	"github.com/KirkDiggler/geoquest/internal/uuid"
)

// Location is the caller-owned monster list of the active location
type Location interface {
	// Monsters returns the current monsters. Callers of the engine must not
	// mutate the list while an effect is being applied.
	Monsters() []*entities.Monster

	// AddMonster inserts a monster
	AddMonster(monster *entities.Monster)

	// RemoveMonster deletes a monster by id, reporting whether it was present
	RemoveMonster(id string) bool
}

// EventSink receives play-time notifications
type EventSink interface {
	LogEvent(message string, xpDelta int)
}

// Inventory receives created items and destroyed item ids
type Inventory interface {
	AddItem(item *entities.Item)
	RemoveItem(id string)
}

// Party exposes the player group state effects read and extend
type Party interface {
	PlayerCount() int
	ExtendScoutRange(units int)
}

// ItemGenerator produces fresh items for lootboxes and grown monsters
type ItemGenerator interface {
	// Generate builds an item for a generation level
	Generate(level int) *entities.Item

	// GenerateWithBudget builds an item from a raw point budget
	GenerateWithBudget(budget int) *entities.Item
}

// Env carries everything an effect may touch. Only Catalog is required;
// effects that need a missing collaborator fail instead of acting.
type Env struct {
	Catalog   *catalog.Catalog
	Roller    dice.Roller
	IDs       uuid.Generator
	Location  Location
	Events    EventSink
	Inventory Inventory
	Party     Party
	Items     ItemGenerator
}

func (e *Env) catalog() *catalog.Catalog {
	if e.Catalog == nil {
		return catalog.Default()
	}
	return e.Catalog
}

func (e *Env) roller() dice.Roller {
	if e.Roller == nil {
		e.Roller = dice.NewRandomRoller()
	}
	return e.Roller
}

func (e *Env) newID() string {
	if e.IDs == nil {
		e.IDs = uuid.NewGoogleUUIDGenerator()
	}
	return e.IDs.New()
}

func (e *Env) playerCount() int {
	if e.Party == nil || e.Party.PlayerCount() < 1 {
		return 1
	}
	return e.Party.PlayerCount()
}

func (e *Env) logEvent(message string, xpDelta int) {
	if e.Events == nil {
		log.Printf("Powers: dropped event (no sink): %s", message)
		return
	}
	e.Events.LogEvent(message, xpDelta)
}
