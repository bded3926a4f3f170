package entities_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/geoquest/internal/catalog"
	"github.com/KirkDiggler/geoquest/internal/entities"
)

func TestTargetMode_Escalation(t *testing.T) {
	mode := entities.TargetRandom
	var seen []entities.TargetMode
	for {
		seen = append(seen, mode)
		next, ok := mode.Next()
		if !ok {
			assert.Equal(t, mode, next)
			break
		}
		mode = next
	}

	assert.Equal(t, []entities.TargetMode{
		entities.TargetRandom,
		entities.TargetPick,
		entities.TargetRandomType,
		entities.TargetPickType,
	}, seen)
}

func TestTargetMode_Predicates(t *testing.T) {
	tests := []struct {
		mode   entities.TargetMode
		byType bool
		chosen bool
	}{
		{mode: entities.TargetRandom},
		{mode: entities.TargetPick, chosen: true},
		{mode: entities.TargetRandomType, byType: true},
		{mode: entities.TargetPickType, byType: true, chosen: true},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			assert.Equal(t, tt.byType, tt.mode.ByType())
			assert.Equal(t, tt.chosen, tt.mode.Chosen())
		})
	}
}

func TestTargetMode_Text(t *testing.T) {
	var mode entities.TargetMode
	require.NoError(t, mode.UnmarshalText([]byte("random-type")))
	assert.Equal(t, entities.TargetRandomType, mode)

	assert.Error(t, mode.UnmarshalText([]byte("sideways")))

	_, err := entities.TargetMode(9).MarshalText()
	assert.Error(t, err)
	assert.Equal(t, "target-mode(9)", entities.TargetMode(9).String())
}

func TestItem_JSONUsesModeNames(t *testing.T) {
	level := catalog.LevelElite
	item := &entities.Item{
		ID:          "item-1",
		Power:       entities.PowerTransmute,
		TargetMode:  entities.TargetPick,
		ResultLevel: &level,
	}

	data, err := json.Marshal(item)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"target_mode":"pick"`)
	assert.Contains(t, string(data), `"result_level":"elite"`)
}

func TestTargetFilters_Levels(t *testing.T) {
	var none entities.TargetFilters
	_, ok := none.MaxLevel()
	assert.False(t, ok)

	f := entities.TargetFilters{Levels: []catalog.Level{catalog.LevelGrunt, catalog.LevelMinion, catalog.LevelElite}}
	top, ok := f.MaxLevel()
	require.True(t, ok)
	assert.Equal(t, catalog.LevelElite, top)
	assert.True(t, f.HasLevel(catalog.LevelMinion))
	assert.False(t, f.HasLevel(catalog.LevelBoss))
}

func TestItem_Restrictions(t *testing.T) {
	item := &entities.Item{}
	assert.False(t, item.HasTargetRestriction())
	assert.False(t, item.HasResultRestriction())

	item.Filters.Flags = []string{"flying"}
	item.ResultSpecies = "undead"
	assert.True(t, item.HasTargetRestriction())
	assert.True(t, item.HasResultRestriction())
}

func TestItem_CloneIsDeep(t *testing.T) {
	level := catalog.LevelGrunt
	item := &entities.Item{
		ID:          "item-1",
		Filters:     entities.TargetFilters{Levels: []catalog.Level{catalog.LevelMinion}, Species: []string{"goblin"}},
		ResultLevel: &level,
		Upgrades:    []string{"extra-uses"},
	}

	c := item.Clone()
	c.Filters.Levels[0] = catalog.LevelBoss
	c.Filters.Species[0] = "rat"
	*c.ResultLevel = catalog.LevelBoss
	c.Upgrades[0] = "add-boss"

	assert.Equal(t, catalog.LevelMinion, item.Filters.Levels[0])
	assert.Equal(t, "goblin", item.Filters.Species[0])
	assert.Equal(t, catalog.LevelGrunt, *item.ResultLevel)
	assert.Equal(t, "extra-uses", item.Upgrades[0])

	var nilItem *entities.Item
	assert.Nil(t, nilItem.Clone())
}

func TestParty(t *testing.T) {
	party := entities.NewParty(0, 10)
	assert.Equal(t, 1, party.PlayerCount())

	party.ExtendScoutRange(20)
	assert.Equal(t, 30, party.ScoutRange)

	assert.Equal(t, 1, (&entities.Party{Players: -2}).PlayerCount())
}

func TestNewMonster(t *testing.T) {
	m := entities.NewMonster("m-1", "rat", "Rat 1")
	assert.True(t, m.Alive)
	assert.Nil(t, m.Item)
}
