package encounter

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/geoquest/internal/catalog"
)

// Tier is an encounter difficulty, ordered start < easy < medium < hard < end
type Tier int

const (
	TierStart Tier = iota
	TierEasy
	TierMedium
	TierHard
	TierEnd
)

// Tiers lists every tier in ascending difficulty
var Tiers = []Tier{TierStart, TierEasy, TierMedium, TierHard, TierEnd}

var tierNames = map[Tier]string{
	TierStart:  "start",
	TierEasy:   "easy",
	TierMedium: "medium",
	TierHard:   "hard",
	TierEnd:    "end",
}

func (t Tier) String() string {
	if name, ok := tierNames[t]; ok {
		return name
	}
	return fmt.Sprintf("tier(%d)", int(t))
}

// ParseTier converts a tier name into a Tier
func ParseTier(s string) (Tier, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for tier, name := range tierNames {
		if name == needle {
			return tier, nil
		}
	}
	return 0, fmt.Errorf("unknown tier %q", s)
}

// Slot asks for Count groups of monsters at Level. Each group picks its own
// type and unit size.
type Slot struct {
	Level catalog.Level
	Count int
}

// Composition is one weighted encounter template
type Composition struct {
	Weight float64
	Slots  []Slot
}

func slots(levels ...catalog.Level) []Slot {
	out := make([]Slot, 0, len(levels))
	for _, l := range levels {
		if n := len(out); n > 0 && out[n-1].Level == l {
			out[n-1].Count++
			continue
		}
		out = append(out, Slot{Level: l, Count: 1})
	}
	return out
}

const (
	minion = catalog.LevelMinion
	grunt  = catalog.LevelGrunt
	elite  = catalog.LevelElite
	boss   = catalog.LevelBoss
)

// Compositions holds the weighted templates per tier. Every end template has
// exactly one boss slot.
var Compositions = map[Tier][]Composition{
	TierStart: {
		{Weight: 3, Slots: slots(minion)},
		{Weight: 1, Slots: slots(grunt)},
	},
	TierEasy: {
		{Weight: 3, Slots: slots(minion, minion)},
		{Weight: 2, Slots: slots(grunt, minion)},
		{Weight: 1, Slots: slots(grunt, grunt)},
	},
	TierMedium: {
		{Weight: 3, Slots: slots(grunt, minion)},
		{Weight: 2, Slots: slots(elite)},
		{Weight: 2, Slots: slots(grunt, grunt)},
		{Weight: 1, Slots: slots(elite, minion)},
	},
	TierHard: {
		{Weight: 3, Slots: slots(elite, grunt)},
		{Weight: 2, Slots: slots(elite, elite)},
		{Weight: 1, Slots: slots(elite, grunt, minion)},
	},
	TierEnd: {
		{Weight: 2, Slots: slots(boss, minion)},
		{Weight: 2, Slots: slots(boss, grunt)},
		{Weight: 1, Slots: slots(boss, elite)},
	},
}

// DropChances is the chance a freshly generated monster carries an item
var DropChances = map[catalog.Level]float64{
	minion: 0.10,
	grunt:  0.20,
	elite:  0.50,
	boss:   1.00,
}
