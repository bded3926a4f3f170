package item

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/KirkDiggler/geoquest/internal/describe"
	"github.com/KirkDiggler/geoquest/internal/entities"
	"github.com/KirkDiggler/geoquest/internal/powers"
)

var materials = []string{"cardboard", "tin", "iron", "silver", "gold", "starmetal"}

var modeSuffixes = map[entities.TargetMode]string{
	entities.TargetRandom:     "",
	entities.TargetPick:       " of Precision",
	entities.TargetRandomType: " of the Horde",
	entities.TargetPickType:   " of Mastery",
}

// Name renders "<Quality> <Material> <Noun><suffix>" for an item
func Name(power powers.Power, item *entities.Item) string {
	idx := item.Level - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(materials) {
		idx = len(materials) - 1
	}
	prefix := cases.Title(language.English).String(describe.Quality(item.Level) + " " + materials[idx])
	return prefix + " " + power.Noun() + modeSuffixes[item.TargetMode]
}
