package catalog

// ErrorTypeID is the designated fallback monster type used whenever a
// referenced type id cannot be resolved.
const ErrorTypeID = "error"

// MonsterTypeDef is the static definition of a kind of monster
type MonsterTypeDef struct {
	ID      string   `yaml:"id"`
	Title   string   `yaml:"title"`
	Plural  string   `yaml:"plural,omitempty"`
	Level   Level    `yaml:"level"`
	Species string   `yaml:"species"`
	Flags   []string `yaml:"flags,omitempty"`
	// Value is awarded as XP when the monster is slain or banished
	Value int `yaml:"value"`

	// Lesser names the weaker form this type shrinks or splits into
	Lesser string `yaml:"lesser,omitempty"`
	// LesserCount is how many lesser forms a split produces (0 = default)
	LesserCount int `yaml:"lesser_count,omitempty"`
	// LesserPerPlayer makes a split produce one lesser form per player
	LesserPerPlayer bool `yaml:"lesser_per_player,omitempty"`

	// Internal types are only reachable through transformation
	Internal bool `yaml:"internal,omitempty"`
}

// PluralTitle returns the plural display title, falling back to Title+"s"
func (d *MonsterTypeDef) PluralTitle() string {
	if d.Plural != "" {
		return d.Plural
	}
	return d.Title + "s"
}

// HasFlag reports whether the type carries the given flag
func (d *MonsterTypeDef) HasFlag(flag string) bool {
	for _, f := range d.Flags {
		if f == flag {
			return true
		}
	}
	return false
}

// LocationTypeDef is the static definition of a kind of map location
type LocationTypeDef struct {
	ID    string `yaml:"id"`
	Title string `yaml:"title"`
	// NullifiedSpecies are never rolled for encounters at this location
	NullifiedSpecies []string `yaml:"nullified_species,omitempty"`
}

// StatusForms maps a monster level to the type id a status power turns it into
type StatusForms map[Level]string

// errorType is inserted into every catalog that does not define its own
func errorType() *MonsterTypeDef {
	return &MonsterTypeDef{
		ID:       ErrorTypeID,
		Title:    "Glitch",
		Level:    LevelMinion,
		Species:  "error",
		Internal: true,
	}
}
