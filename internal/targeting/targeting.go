// Package targeting decides whether an item may affect a monster.
package targeting

import (
	"log"

	"github.com/KirkDiggler/geoquest/internal/catalog"
	"github.com/KirkDiggler/geoquest/internal/entities"
)

// CanTarget reports whether item may affect monster. The monster must be
// alive and its type must resolve in the catalog; an unresolvable type is
// logged and treated as untargetable.
func CanTarget(cat *catalog.Catalog, item *entities.Item, monster *entities.Monster) bool {
	if item == nil || monster == nil || !monster.Alive {
		return false
	}

	def, ok := cat.Monster(monster.TypeID)
	if !ok {
		log.Printf("Targeting: monster %s has unknown type %q", monster.ID, monster.TypeID)
		return false
	}

	return CanTargetType(item, def)
}

// CanTargetType applies the item's filters to a monster type directly
func CanTargetType(item *entities.Item, def *catalog.MonsterTypeDef) bool {
	if item == nil || def == nil {
		return false
	}

	filters := item.Filters
	if capLevel, ok := filters.MaxLevel(); ok && def.Level > capLevel {
		return false
	}

	if len(filters.Species) > 0 && !contains(filters.Species, def.Species) {
		return false
	}

	if len(filters.Flags) > 0 && !intersects(filters.Flags, def.Flags) {
		return false
	}

	return true
}

// TargetableTypes returns the catalog types present among the living monsters
// that item may affect, in first-seen order. Used to offer by-type choices.
func TargetableTypes(cat *catalog.Catalog, item *entities.Item, monsters []*entities.Monster) []*catalog.MonsterTypeDef {
	seen := make(map[string]bool)
	var out []*catalog.MonsterTypeDef
	for _, m := range monsters {
		if seen[m.TypeID] || !CanTarget(cat, item, m) {
			continue
		}
		seen[m.TypeID] = true
		def, _ := cat.Monster(m.TypeID)
		out = append(out, def)
	}
	return out
}

// Targetable returns the monsters item may affect, preserving order
func Targetable(cat *catalog.Catalog, item *entities.Item, monsters []*entities.Monster) []*entities.Monster {
	var out []*entities.Monster
	for _, m := range monsters {
		if CanTarget(cat, item, m) {
			out = append(out, m)
		}
	}
	return out
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func intersects(a, b []string) bool {
	for _, v := range a {
		if contains(b, v) {
			return true
		}
	}
	return false
}
