package entities

import (
	"fmt"

	"github.com/KirkDiggler/geoquest/internal/catalog"
)

// PowerID names the effect an item carries
type PowerID string

const (
	PowerKill       PowerID = "kill"
	PowerBanish     PowerID = "banish"
	PowerSplit      PowerID = "split"
	PowerTransmute  PowerID = "transmute"
	PowerShrink     PowerID = "shrink"
	PowerGrow       PowerID = "grow"
	PowerFreeze     PowerID = "freeze"
	PowerPacify     PowerID = "pacify"
	PowerPetrify    PowerID = "petrify"
	PowerVegetate   PowerID = "vegetate"
	PowerStun       PowerID = "stun"
	PowerDistract   PowerID = "distract"
	PowerPickpocket PowerID = "pickpocket"
	PowerLootbox    PowerID = "lootbox"
	PowerTreasure   PowerID = "treasure"
	PowerScout      PowerID = "scout"
	PowerToken      PowerID = "token"
)

// TargetMode is how an item selects its victim
type TargetMode int

const (
	// TargetRandom hits one random eligible monster
	TargetRandom TargetMode = iota
	// TargetPick hits one monster the player chooses
	TargetPick
	// TargetRandomType hits every monster of a random eligible type
	TargetRandomType
	// TargetPickType hits every monster of a type the player chooses
	TargetPickType
)

var targetModeNames = map[TargetMode]string{
	TargetRandom:     "random",
	TargetPick:       "pick",
	TargetRandomType: "random-type",
	TargetPickType:   "pick-type",
}

func (m TargetMode) String() string {
	if name, ok := targetModeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("target-mode(%d)", int(m))
}

// ByType reports whether the mode affects a whole monster type
func (m TargetMode) ByType() bool {
	return m == TargetRandomType || m == TargetPickType
}

// Chosen reports whether the player picks the target
func (m TargetMode) Chosen() bool {
	return m == TargetPick || m == TargetPickType
}

// Next returns the next step along random -> pick -> random-type -> pick-type
func (m TargetMode) Next() (TargetMode, bool) {
	if m >= TargetPickType {
		return m, false
	}
	return m + 1, true
}

// MarshalText implements encoding.TextMarshaler
func (m TargetMode) MarshalText() ([]byte, error) {
	name, ok := targetModeNames[m]
	if !ok {
		return nil, fmt.Errorf("cannot marshal invalid target mode %d", int(m))
	}
	return []byte(name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (m *TargetMode) UnmarshalText(text []byte) error {
	for mode, name := range targetModeNames {
		if name == string(text) {
			*m = mode
			return nil
		}
	}
	return fmt.Errorf("unknown target mode %q", string(text))
}

// TargetFilters restrict which monsters an item may affect. Every present
// constraint must hold.
type TargetFilters struct {
	// Levels is the allowed level set; its highest member is the level cap
	Levels  []catalog.Level `json:"levels,omitempty"`
	Species []string        `json:"species,omitempty"`
	Flags   []string        `json:"flags,omitempty"`
}

// MaxLevel returns the highest allowed level, if any level set is declared
func (f TargetFilters) MaxLevel() (catalog.Level, bool) {
	if len(f.Levels) == 0 {
		return 0, false
	}
	top := f.Levels[0]
	for _, l := range f.Levels[1:] {
		if l > top {
			top = l
		}
	}
	return top, true
}

// HasLevel reports whether level is in the allowed set
func (f TargetFilters) HasLevel(level catalog.Level) bool {
	for _, l := range f.Levels {
		if l == level {
			return true
		}
	}
	return false
}

// Item is a magical item with a limited number of uses
type Item struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Uses  int     `json:"uses"`
	Power PowerID `json:"power"`
	// Level is the generation level (1-6); it only drives display terms
	Level      int           `json:"level"`
	TargetMode TargetMode    `json:"target_mode"`
	Filters    TargetFilters `json:"filters"`

	// ResultLevel and ResultSpecies restrict what a transmutation produces
	ResultLevel   *catalog.Level `json:"result_level,omitempty"`
	ResultSpecies string         `json:"result_species,omitempty"`

	Budget   int      `json:"budget"`
	Spent    int      `json:"spent"`
	Upgrades []string `json:"upgrades,omitempty"`
}

// HasTargetRestriction reports whether a species or flag constraint is attached
func (i *Item) HasTargetRestriction() bool {
	return len(i.Filters.Species) > 0 || len(i.Filters.Flags) > 0
}

// HasResultRestriction reports whether a transmutation result is constrained
func (i *Item) HasResultRestriction() bool {
	return i.ResultLevel != nil || i.ResultSpecies != ""
}

// Clone returns a deep copy of the item
func (i *Item) Clone() *Item {
	if i == nil {
		return nil
	}
	c := *i
	c.Filters.Levels = append([]catalog.Level(nil), i.Filters.Levels...)
	c.Filters.Species = append([]string(nil), i.Filters.Species...)
	c.Filters.Flags = append([]string(nil), i.Filters.Flags...)
	c.Upgrades = append([]string(nil), i.Upgrades...)
	if i.ResultLevel != nil {
		level := *i.ResultLevel
		c.ResultLevel = &level
	}
	return &c
}
