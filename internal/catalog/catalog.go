package catalog

import (
	_ "embed"
	"fmt"
	"log"
	"os"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	geoerr "github.com/KirkDiggler/geoquest/internal/errors"
)

//go:embed data/catalog.yaml
var defaultData []byte

// Catalog is the read-only table of monster and location types. It is safe
// for concurrent reads once constructed.
type Catalog struct {
	monsters    map[string]*MonsterTypeDef
	order       []string
	greater     map[string]string
	locations   map[string]*LocationTypeDef
	statusForms map[string]StatusForms
}

// file is the on-disk YAML layout
type file struct {
	Monsters    []*MonsterTypeDef            `yaml:"monsters"`
	Locations   []*LocationTypeDef           `yaml:"locations"`
	StatusForms map[string]map[string]string `yaml:"status_forms"`
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the catalog built from the embedded reference data
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Load(defaultData)
		if err != nil {
			panic(fmt.Sprintf("embedded catalog is invalid: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// LoadFile reads a catalog from a YAML file on disk
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, geoerr.Wrapf(err, "failed to read catalog %s", path)
	}
	return Load(data)
}

// Load parses and validates a YAML catalog
func Load(data []byte) (*Catalog, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, geoerr.WrapWithCode(err, geoerr.CodeValidation, "failed to parse catalog")
	}

	forms := make(map[string]StatusForms, len(f.StatusForms))
	for power, byLevel := range f.StatusForms {
		sf := make(StatusForms, len(byLevel))
		for levelName, typeID := range byLevel {
			level, err := ParseLevel(levelName)
			if err != nil {
				return nil, geoerr.WrapWithCode(err, geoerr.CodeValidation, "invalid status form").
					WithMeta("power", power)
			}
			sf[level] = typeID
		}
		forms[power] = sf
	}

	return New(f.Monsters, f.Locations, forms)
}

// New builds a catalog from already-decoded definitions and validates the
// lesser-form forest.
func New(monsters []*MonsterTypeDef, locations []*LocationTypeDef, statusForms map[string]StatusForms) (*Catalog, error) {
	c := &Catalog{
		monsters:    make(map[string]*MonsterTypeDef, len(monsters)+1),
		greater:     make(map[string]string),
		locations:   make(map[string]*LocationTypeDef, len(locations)),
		statusForms: make(map[string]StatusForms, len(statusForms)),
	}

	for _, def := range monsters {
		if def == nil || def.ID == "" {
			return nil, geoerr.Validation("monster type id is required")
		}
		if _, exists := c.monsters[def.ID]; exists {
			return nil, geoerr.Validationf("duplicate monster type %q", def.ID).
				WithMeta("monster_type", def.ID)
		}
		if !def.Level.Valid() {
			return nil, geoerr.Validationf("monster type %q has an invalid level", def.ID).
				WithMeta("monster_type", def.ID)
		}
		if def.LesserCount < 0 {
			return nil, geoerr.Validationf("monster type %q has a negative lesser count", def.ID).
				WithMeta("monster_type", def.ID)
		}
		c.monsters[def.ID] = def
		c.order = append(c.order, def.ID)
	}

	if _, ok := c.monsters[ErrorTypeID]; !ok {
		fallback := errorType()
		c.monsters[fallback.ID] = fallback
		c.order = append(c.order, fallback.ID)
	}

	for _, id := range c.order {
		def := c.monsters[id]
		if def.Lesser == "" {
			continue
		}
		lesser, ok := c.monsters[def.Lesser]
		if !ok {
			return nil, geoerr.Validationf("monster type %q names unknown lesser form %q", def.ID, def.Lesser).
				WithMeta("monster_type", def.ID)
		}
		if lesser.Level >= def.Level {
			return nil, geoerr.Validationf("lesser form must be a lower level: %s (%s) -> %s (%s)",
				def.ID, def.Level, lesser.ID, lesser.Level).
				WithMeta("monster_type", def.ID)
		}
		if other, taken := c.greater[lesser.ID]; taken {
			return nil, geoerr.Validationf("monster type %q is already the lesser form of %q", lesser.ID, other).
				WithMeta("monster_type", def.ID)
		}
		c.greater[lesser.ID] = def.ID
	}

	for _, loc := range locations {
		if loc == nil || loc.ID == "" {
			return nil, geoerr.Validation("location type id is required")
		}
		if _, exists := c.locations[loc.ID]; exists {
			return nil, geoerr.Validationf("duplicate location type %q", loc.ID).
				WithMeta("location_type", loc.ID)
		}
		c.locations[loc.ID] = loc
	}

	for power, forms := range statusForms {
		for level, typeID := range forms {
			if _, ok := c.monsters[typeID]; !ok {
				return nil, geoerr.Validationf("status form %s/%s names unknown type %q", power, level, typeID).
					WithMeta("power", power)
			}
		}
		c.statusForms[power] = forms
	}

	return c, nil
}

// Monster looks up a monster type by id
func (c *Catalog) Monster(id string) (*MonsterTypeDef, bool) {
	def, ok := c.monsters[id]
	return def, ok
}

// MonsterOrFallback resolves id, returning the designated error type when it
// is missing from the catalog.
func (c *Catalog) MonsterOrFallback(id string) *MonsterTypeDef {
	if def, ok := c.monsters[id]; ok {
		return def
	}
	log.Printf("Catalog: unknown monster type %q, using %q", id, ErrorTypeID)
	return c.monsters[ErrorTypeID]
}

// Monsters returns every monster type in catalog order
func (c *Catalog) Monsters() []*MonsterTypeDef {
	out := make([]*MonsterTypeDef, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.monsters[id])
	}
	return out
}

// MonstersAtLevel returns the non-internal monster types of the given level
// in catalog order.
func (c *Catalog) MonstersAtLevel(level Level) []*MonsterTypeDef {
	var out []*MonsterTypeDef
	for _, id := range c.order {
		def := c.monsters[id]
		if def.Internal || def.Level != level {
			continue
		}
		out = append(out, def)
	}
	return out
}

// Lesser follows the lesser-form edge of a type. An edge that does not point
// to a strictly lower level is reported as missing.
func (c *Catalog) Lesser(id string) (*MonsterTypeDef, bool) {
	def, ok := c.monsters[id]
	if !ok || def.Lesser == "" {
		return nil, false
	}
	lesser, ok := c.monsters[def.Lesser]
	if !ok || lesser.Level >= def.Level {
		return nil, false
	}
	return lesser, true
}

// Greater follows a lesser-form edge in reverse
func (c *Catalog) Greater(id string) (*MonsterTypeDef, bool) {
	greaterID, ok := c.greater[id]
	if !ok {
		return nil, false
	}
	greater, ok := c.monsters[greaterID]
	if !ok || greater.Level <= c.monsters[id].Level {
		return nil, false
	}
	return greater, true
}

// Location looks up a location type by id
func (c *Catalog) Location(id string) (*LocationTypeDef, bool) {
	loc, ok := c.locations[id]
	return loc, ok
}

// Locations returns every location type sorted by id
func (c *Catalog) Locations() []*LocationTypeDef {
	out := make([]*LocationTypeDef, 0, len(c.locations))
	for _, loc := range c.locations {
		out = append(out, loc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// StatusForm returns the type a status power turns a monster of the given
// level into.
func (c *Catalog) StatusForm(power string, level Level) (*MonsterTypeDef, bool) {
	forms, ok := c.statusForms[power]
	if !ok {
		return nil, false
	}
	typeID, ok := forms[level]
	if !ok {
		return nil, false
	}
	def, ok := c.monsters[typeID]
	return def, ok
}

// Species returns the sorted species of all non-internal monster types
func (c *Catalog) Species() []string {
	seen := make(map[string]struct{})
	for _, def := range c.monsters {
		if def.Internal || def.Species == "" {
			continue
		}
		seen[def.Species] = struct{}{}
	}
	return sortedKeys(seen)
}

// Flags returns the sorted flags of all non-internal monster types
func (c *Catalog) Flags() []string {
	seen := make(map[string]struct{})
	for _, def := range c.monsters {
		if def.Internal {
			continue
		}
		for _, flag := range def.Flags {
			seen[flag] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
