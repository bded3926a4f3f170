package powers

import (
	"fmt"
	"log"

	"github.com/KirkDiggler/geoquest/internal/dice"
	"github.com/KirkDiggler/geoquest/internal/entities"
)

type kill struct{ base }

func newKill() *kill {
	return &kill{base: targeted(entities.PowerKill, 1, "Dagger")}
}

func (p *kill) Describe(target string, _ *entities.Item) string {
	return fmt.Sprintf("Slays %s", target)
}

func (p *kill) ApplyEffect(env *Env, _ *entities.Item, monster *entities.Monster) bool {
	if monster == nil || !monster.Alive {
		return false
	}
	def := env.catalog().MonsterOrFallback(monster.TypeID)

	monster.Alive = false
	env.logEvent(fmt.Sprintf("%s has been slain!", monster.Name), def.Value)

	if monster.Item != nil && env.Inventory != nil {
		loot := monster.Item
		monster.Item = nil
		env.Inventory.AddItem(loot)
		env.logEvent(fmt.Sprintf("You found %s on %s.", loot.Name, monster.Name), 0)
	}
	return true
}

type banish struct{ base }

func newBanish() *banish {
	return &banish{base: targeted(entities.PowerBanish, 2, "Bell")}
}

func (p *banish) Describe(target string, _ *entities.Item) string {
	return fmt.Sprintf("Banishes %s from this world, along with anything it carries", target)
}

func (p *banish) ApplyEffect(env *Env, _ *entities.Item, monster *entities.Monster) bool {
	if monster == nil || env.Location == nil {
		return false
	}
	def := env.catalog().MonsterOrFallback(monster.TypeID)
	if !env.Location.RemoveMonster(monster.ID) {
		return false
	}

	monster.Alive = false
	monster.Item = nil
	env.logEvent(fmt.Sprintf("%s vanishes in a puff of smoke.", monster.Name), def.Value)
	return true
}

// DefaultSplitCount is used when a type declares no lesser count
const DefaultSplitCount = 2

var splitPairs = [][2]string{
	{"Ping", "Pong"},
	{"Salt", "Pepper"},
	{"Flotsam", "Jetsam"},
	{"Fizz", "Buzz"},
	{"Tweedle", "Twaddle"},
	{"Thing One", "Thing Two"},
	{"Left", "Right"},
}

type split struct{ base }

func newSplit() *split {
	b := targeted(entities.PowerSplit, 1, "Cleaver")
	b.typeTargeting = false
	return &split{base: b}
}

func (p *split) Describe(target string, _ *entities.Item) string {
	return fmt.Sprintf("Splits %s into several of its lesser form", target)
}

func (p *split) ApplyEffect(env *Env, _ *entities.Item, monster *entities.Monster) bool {
	if monster == nil || env.Location == nil {
		return false
	}
	cat := env.catalog()

	def, ok := cat.Monster(monster.TypeID)
	if !ok {
		log.Printf("Powers: cannot split unknown monster type %q", monster.TypeID)
		return false
	}
	lesser, ok := cat.Lesser(def.ID)
	if !ok {
		return false
	}

	count := def.LesserCount
	if def.LesserPerPlayer {
		count = env.playerCount()
	}
	if count <= 0 {
		count = DefaultSplitCount
	}

	if !env.Location.RemoveMonster(monster.ID) {
		return false
	}
	monster.Alive = false

	names := p.names(env.roller(), lesser.Title, count)
	replacements := make([]*entities.Monster, 0, count)
	for _, name := range names {
		m := entities.NewMonster(env.newID(), lesser.ID, name)
		env.Location.AddMonster(m)
		replacements = append(replacements, m)
	}

	if monster.Item != nil {
		dice.Pick(env.roller(), replacements).Item = monster.Item
		monster.Item = nil
	}

	env.logEvent(fmt.Sprintf("%s splits into %d %s!", monster.Name, count, lesser.PluralTitle()), 0)
	return true
}

func (p *split) names(roller dice.Roller, title string, count int) []string {
	out := make([]string, 0, count)
	if count == 2 {
		pair := dice.Pick(roller, splitPairs)
		for _, n := range pair {
			out = append(out, fmt.Sprintf("%s the %s", n, title))
		}
		return out
	}
	for i := 1; i <= count; i++ {
		out = append(out, fmt.Sprintf("%s #%d", title, i))
	}
	return out
}
