package catalog

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Level is the strength tier of a monster type. Levels are totally ordered:
// minion < grunt < elite < boss. The zero value is not a level, so a
// definition that never set one fails validation.
type Level int

const (
	LevelMinion Level = iota + 1
	LevelGrunt
	LevelElite
	LevelBoss
)

// Levels lists every level in ascending order
var Levels = []Level{LevelMinion, LevelGrunt, LevelElite, LevelBoss}

var levelNames = map[Level]string{
	LevelMinion: "minion",
	LevelGrunt:  "grunt",
	LevelElite:  "elite",
	LevelBoss:   "boss",
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("level(%d)", int(l))
}

// Valid reports whether l is one of the four known levels
func (l Level) Valid() bool {
	_, ok := levelNames[l]
	return ok
}

// ParseLevel converts a level name into a Level
func ParseLevel(s string) (Level, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for level, name := range levelNames {
		if name == needle {
			return level, nil
		}
	}
	return 0, fmt.Errorf("unknown monster level %q", s)
}

var itemLevels = map[Level]int{
	LevelMinion: 1,
	LevelGrunt:  2,
	LevelElite:  3,
	LevelBoss:   5,
}

// ItemLevel is the generation level of items carried by monsters of this level
func (l Level) ItemLevel() int {
	if n, ok := itemLevels[l]; ok {
		return n
	}
	return 1
}

// LevelsUpTo returns every level from minion through top, inclusive.
func LevelsUpTo(top Level) []Level {
	out := make([]Level, 0, len(Levels))
	for _, l := range Levels {
		if l <= top {
			out = append(out, l)
		}
	}
	return out
}

// MarshalText implements encoding.TextMarshaler so levels serialize by name
// in both YAML and JSON.
func (l Level) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("cannot marshal invalid level %d", int(l))
	}
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// UnmarshalYAML lets catalog files name levels instead of numbering them
func (l *Level) UnmarshalYAML(value *yaml.Node) error {
	return l.UnmarshalText([]byte(value.Value))
}

// MarshalYAML implements yaml.Marshaler
func (l Level) MarshalYAML() (interface{}, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("cannot marshal invalid level %d", int(l))
	}
	return l.String(), nil
}
