package powers

import (
	"fmt"
	"log"

	"github.com/KirkDiggler/geoquest/internal/entities"
	"github.com/KirkDiggler/geoquest/internal/targeting"
)

// Use applies a targeted item to one monster and spends a use on success
func Use(env *Env, item *entities.Item, monster *entities.Monster) bool {
	power, ok := lookup(item)
	if !ok || !power.NeedsTarget() {
		return false
	}
	if !targeting.CanTarget(env.catalog(), item, monster) {
		return false
	}

	if !power.ApplyEffect(env, item, monster) {
		return false
	}

	ConsumeUses(env, item, 1)
	return true
}

// UseWithoutTarget activates an untargeted item. The power spends its own
// uses.
func UseWithoutTarget(env *Env, item *entities.Item) bool {
	power, ok := lookup(item)
	if !ok {
		return false
	}
	activator, ok := power.(Untargeted)
	if !ok {
		return false
	}
	return activator.Activate(env, item)
}

// UseOnMonsterType applies item to every living monster of typeID at the
// current location. Exactly one use is spent when any monster was affected.
// Returns the number of monsters affected.
func UseOnMonsterType(env *Env, item *entities.Item, typeID string) int {
	if env.Location == nil {
		return 0
	}
	power, ok := lookup(item)
	if !ok || !power.NeedsTarget() || !power.SupportsTypeTargeting() || !item.TargetMode.ByType() {
		return 0
	}

	def, ok := env.catalog().Monster(typeID)
	if !ok {
		log.Printf("Powers: bulk use on unknown monster type %q", typeID)
		return 0
	}
	if !targeting.CanTargetType(item, def) {
		return 0
	}

	// effects may add and remove monsters, so walk a snapshot
	snapshot := append([]*entities.Monster(nil), env.Location.Monsters()...)

	affected := 0
	for _, m := range snapshot {
		if m == nil || !m.Alive || m.TypeID != typeID {
			continue
		}
		if power.ApplyEffect(env, item, m) {
			affected++
		}
	}

	if affected > 0 {
		ConsumeUses(env, item, 1)
	}
	return affected
}

// ConsumeUses deducts n uses. An item that runs out is removed from the
// inventory.
func ConsumeUses(env *Env, item *entities.Item, n int) {
	if item == nil || n <= 0 {
		return
	}

	item.Uses -= n
	if item.Uses > 0 {
		return
	}
	item.Uses = 0

	if env.Inventory != nil {
		env.Inventory.RemoveItem(item.ID)
	}
	env.logEvent(fmt.Sprintf("Your %s crumbles to dust.", item.Name), 0)
}

func lookup(item *entities.Item) (Power, bool) {
	if item == nil || item.Uses <= 0 {
		return nil, false
	}
	power, ok := Get(item.Power)
	if !ok {
		log.Printf("Powers: item %s has unknown power %q", item.ID, item.Power)
		return nil, false
	}
	return power, true
}
