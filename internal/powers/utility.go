package powers

import (
	"fmt"
	"log"

	"github.com/KirkDiggler/geoquest/internal/entities"
)

const (
	// TreasureXPPerUse is the XP a treasure item pays out per remaining use
	TreasureXPPerUse = 10

	// ScoutRangePerUse is the scout range a scout item adds per remaining use
	ScoutRangePerUse = 20
)

type pickpocket struct{ base }

func newPickpocket() *pickpocket {
	b := targeted(entities.PowerPickpocket, 1, "Glove")
	b.typeTargeting = false
	b.defaultMode = entities.TargetPick
	return &pickpocket{base: b}
}

func (p *pickpocket) Describe(target string, _ *entities.Item) string {
	return fmt.Sprintf("Rifles through the pockets of %s", target)
}

// ApplyEffect never succeeds yet. Stealing the carried item needs an
// inventory transfer rule that has not been settled.
func (p *pickpocket) ApplyEffect(env *Env, _ *entities.Item, monster *entities.Monster) bool {
	if monster == nil {
		return false
	}
	log.Printf("Powers: pickpocket attempted on %s, not implemented", monster.ID)
	env.logEvent(fmt.Sprintf("You rummage through the pockets of %s but come up empty-handed.", monster.Name), 0)
	return false
}

type lootbox struct{ base }

func newLootbox() *lootbox {
	return &lootbox{base: untargeted(entities.PowerLootbox, 2, "Chest")}
}

func (p *lootbox) Describe(_ string, _ *entities.Item) string {
	return "Opens into a new item, more powerful the more uses remain"
}

func (p *lootbox) Activate(env *Env, item *entities.Item) bool {
	if item == nil || item.Uses <= 0 || env.Items == nil || env.Inventory == nil {
		return false
	}

	loot := env.Items.GenerateWithBudget(item.Uses)
	if loot == nil {
		return false
	}
	env.Inventory.AddItem(loot)
	env.logEvent(fmt.Sprintf("%s bursts open, revealing %s!", item.Name, loot.Name), 0)

	ConsumeUses(env, item, item.Uses)
	return true
}

type treasure struct{ base }

func newTreasure() *treasure {
	return &treasure{base: untargeted(entities.PowerTreasure, 1, "Coin Purse")}
}

func (p *treasure) Describe(_ string, _ *entities.Item) string {
	return fmt.Sprintf("Cashes in for %d XP per remaining use", TreasureXPPerUse)
}

func (p *treasure) Activate(env *Env, item *entities.Item) bool {
	if item == nil || item.Uses <= 0 {
		return false
	}

	xp := TreasureXPPerUse * item.Uses
	env.logEvent(fmt.Sprintf("You cash in %s for %d XP.", item.Name, xp), xp)

	ConsumeUses(env, item, item.Uses)
	return true
}

type scout struct{ base }

func newScout() *scout {
	return &scout{base: untargeted(entities.PowerScout, 1, "Spyglass")}
}

func (p *scout) Describe(_ string, _ *entities.Item) string {
	return fmt.Sprintf("Extends your scouting range by %d per remaining use", ScoutRangePerUse)
}

func (p *scout) Activate(env *Env, item *entities.Item) bool {
	if item == nil || item.Uses <= 0 || env.Party == nil {
		return false
	}

	units := ScoutRangePerUse * item.Uses
	env.Party.ExtendScoutRange(units)
	env.logEvent(fmt.Sprintf("%s reveals the land %d paces further out.", item.Name, units), 0)

	ConsumeUses(env, item, item.Uses)
	return true
}

// token marks a victory. It is handed out by quest logic, never rolled.
type token struct{ base }

func newToken() *token {
	b := untargeted(entities.PowerToken, 1, "Token")
	b.generatable = false
	return &token{base: b}
}

func (p *token) Describe(_ string, _ *entities.Item) string {
	return "A keepsake marking a hard-won victory"
}

func (p *token) Activate(env *Env, item *entities.Item) bool {
	if item == nil {
		return false
	}
	env.logEvent(fmt.Sprintf("%s hums with the memory of victory.", item.Name), 0)
	return false
}
