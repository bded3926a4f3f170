package powers

import (
	"fmt"
	"log"

	"github.com/KirkDiggler/geoquest/internal/catalog"
	"github.com/KirkDiggler/geoquest/internal/dice"
	"github.com/KirkDiggler/geoquest/internal/entities"
)

// MaxItemLevel is the highest generation level an item can have
const MaxItemLevel = 6

type transmute struct{ base }

func newTransmute() *transmute {
	b := targeted(entities.PowerTransmute, 2, "Wand")
	b.resultRestriction = true
	return &transmute{base: b}
}

func (p *transmute) Describe(target string, item *entities.Item) string {
	result := "another monster of the same level"
	switch {
	case item.ResultLevel != nil && item.ResultSpecies != "":
		result = fmt.Sprintf("a %s %s", item.ResultSpecies, item.ResultLevel.String())
	case item.ResultLevel != nil:
		result = fmt.Sprintf("a random %s", item.ResultLevel.String())
	case item.ResultSpecies != "":
		result = fmt.Sprintf("a %s of the same level", item.ResultSpecies)
	}
	return fmt.Sprintf("Transmutes %s into %s", target, result)
}

func (p *transmute) ApplyEffect(env *Env, item *entities.Item, monster *entities.Monster) bool {
	if monster == nil || !monster.Alive {
		return false
	}
	cat := env.catalog()

	def, ok := cat.Monster(monster.TypeID)
	if !ok {
		log.Printf("Powers: cannot transmute unknown monster type %q", monster.TypeID)
		return false
	}

	candidates := p.candidates(cat, item, def)
	if len(candidates) == 0 {
		return false
	}

	result := dice.Pick(env.roller(), candidates)
	oldName := monster.Name
	monster.TypeID = result.ID
	monster.Name = result.Title
	env.logEvent(fmt.Sprintf("%s shimmers and becomes %s!", oldName, result.Title), 0)
	return true
}

// candidates lists the possible results, leaving out the source type unless
// it is the only choice
func (p *transmute) candidates(cat *catalog.Catalog, item *entities.Item, source *catalog.MonsterTypeDef) []*catalog.MonsterTypeDef {
	level := source.Level
	if item != nil && item.ResultLevel != nil {
		level = *item.ResultLevel
	}

	var matches []*catalog.MonsterTypeDef
	for _, def := range cat.MonstersAtLevel(level) {
		if item != nil && item.ResultSpecies != "" && def.Species != item.ResultSpecies {
			continue
		}
		matches = append(matches, def)
	}

	var others []*catalog.MonsterTypeDef
	for _, def := range matches {
		if def.ID != source.ID {
			others = append(others, def)
		}
	}
	if len(others) > 0 {
		return others
	}
	return matches
}

var shrinkNames = []string{
	"Tiny %s",
	"Wee %s",
	"Itty-Bitty %s",
	"%s the Lesser",
	"Pocket-Sized %s",
}

var growNames = []string{
	"Big %s",
	"Mega %s",
	"%s the Mighty",
	"Colossal %s",
	"Absolute Unit of a %s",
}

type shrink struct{ base }

func newShrink() *shrink {
	return &shrink{base: targeted(entities.PowerShrink, 2, "Thimble")}
}

func (p *shrink) Describe(target string, _ *entities.Item) string {
	return fmt.Sprintf("Shrinks %s into its lesser form", target)
}

func (p *shrink) ApplyEffect(env *Env, _ *entities.Item, monster *entities.Monster) bool {
	if monster == nil || !monster.Alive {
		return false
	}
	lesser, ok := env.catalog().Lesser(monster.TypeID)
	if !ok {
		return false
	}

	oldName := monster.Name
	monster.TypeID = lesser.ID
	monster.Name = fmt.Sprintf(dice.Pick(env.roller(), shrinkNames), lesser.Title)
	env.logEvent(fmt.Sprintf("%s shrinks down into %s!", oldName, monster.Name), 0)
	return true
}

type grow struct{ base }

func newGrow() *grow {
	b := targeted(entities.PowerGrow, 1, "Fertilizer")
	b.typeTargeting = false
	return &grow{base: b}
}

func (p *grow) Describe(target string, _ *entities.Item) string {
	return fmt.Sprintf("Grows %s into its greater form, with better loot", target)
}

func (p *grow) ApplyEffect(env *Env, _ *entities.Item, monster *entities.Monster) bool {
	if monster == nil || !monster.Alive {
		return false
	}
	greater, ok := env.catalog().Greater(monster.TypeID)
	if !ok {
		return false
	}

	oldName := monster.Name
	monster.TypeID = greater.ID
	monster.Name = fmt.Sprintf(dice.Pick(env.roller(), growNames), greater.Title)

	if env.Items != nil {
		monster.Item = env.Items.Generate(regrowLevel(monster.Item, greater.Level))
	}

	env.logEvent(fmt.Sprintf("%s swells up into %s!", oldName, monster.Name), 0)
	return true
}

// regrowLevel picks a strictly better item level than the one carried
func regrowLevel(carried *entities.Item, level catalog.Level) int {
	next := level.ItemLevel()
	if carried != nil && carried.Level+1 > next {
		next = carried.Level + 1
	}
	if next > MaxItemLevel {
		next = MaxItemLevel
	}
	return next
}

// status is a fixed-map transform: each source level maps to one
// destination type, and bosses are immune
type status struct {
	base
	prefix     string
	event      string
	verbPhrase string
}

func newStatus(id entities.PowerID, noun, prefix, event, verbPhrase string) *status {
	b := targeted(id, 1, noun)
	b.levelCap = &eliteCap
	return &status{base: b, prefix: prefix, event: event, verbPhrase: verbPhrase}
}

func (p *status) Describe(target string, _ *entities.Item) string {
	return fmt.Sprintf(p.verbPhrase, target)
}

func (p *status) ApplyEffect(env *Env, _ *entities.Item, monster *entities.Monster) bool {
	if monster == nil || !monster.Alive {
		return false
	}
	cat := env.catalog()

	def, ok := cat.Monster(monster.TypeID)
	if !ok {
		log.Printf("Powers: cannot %s unknown monster type %q", p.id, monster.TypeID)
		return false
	}
	if def.Level >= catalog.LevelBoss {
		return false
	}

	form, ok := cat.StatusForm(string(p.id), def.Level)
	if !ok || form.ID == def.ID {
		return false
	}

	oldName := monster.Name
	monster.TypeID = form.ID
	monster.Name = fmt.Sprintf("%s %s", p.prefix, oldName)
	env.logEvent(fmt.Sprintf(p.event, oldName), 0)
	return true
}
