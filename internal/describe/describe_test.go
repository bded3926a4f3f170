package describe_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/geoquest/internal/catalog"
	"github.com/KirkDiggler/geoquest/internal/describe"
	"github.com/KirkDiggler/geoquest/internal/entities"
	"github.com/KirkDiggler/geoquest/internal/powers"
)

func TestDescribe_ChosenEliteBoss(t *testing.T) {
	item := &entities.Item{
		Power:      entities.PowerKill,
		Uses:       3,
		Level:      6,
		TargetMode: entities.TargetPick,
		Filters: entities.TargetFilters{
			Levels: []catalog.Level{catalog.LevelElite, catalog.LevelBoss},
		},
	}

	got := describe.Describe(item)
	assert.Contains(t, got, "chosen")
	assert.Contains(t, got, "elite/boss")
	assert.Equal(t, "Legendary item. Slays a chosen elite/boss monster. 3 uses remaining.", got)
}

func TestTarget(t *testing.T) {
	tests := []struct {
		name string
		item *entities.Item
		want string
	}{
		{
			name: "no filters",
			item: &entities.Item{TargetMode: entities.TargetRandom},
			want: "a random monster",
		},
		{
			name: "levels sorted regardless of insertion order",
			item: &entities.Item{Filters: entities.TargetFilters{
				Levels: []catalog.Level{catalog.LevelGrunt, catalog.LevelMinion},
			}},
			want: "a random minion/grunt monster",
		},
		{
			name: "all levels say nothing",
			item: &entities.Item{Filters: entities.TargetFilters{Levels: catalog.Levels}},
			want: "a random monster",
		},
		{
			name: "species",
			item: &entities.Item{
				TargetMode: entities.TargetPick,
				Filters: entities.TargetFilters{
					Levels:  []catalog.Level{catalog.LevelMinion},
					Species: []string{"goblin"},
				},
			},
			want: "a chosen minion goblin monster",
		},
		{
			name: "random by type with flag",
			item: &entities.Item{
				TargetMode: entities.TargetRandomType,
				Filters:    entities.TargetFilters{Flags: []string{"undead"}},
			},
			want: "all monsters of a random type with the undead trait",
		},
		{
			name: "chosen by type",
			item: &entities.Item{
				TargetMode: entities.TargetPickType,
				Filters:    entities.TargetFilters{Levels: []catalog.Level{catalog.LevelMinion, catalog.LevelGrunt}},
			},
			want: "all monsters of a chosen minion/grunt type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, describe.Target(tt.item))
		})
	}
}

func TestDescribe_EveryPower(t *testing.T) {
	for _, p := range powers.All() {
		item := &entities.Item{Power: p.ID(), Uses: 1, Level: 3}
		got := describe.Describe(item)

		assert.NotEmpty(t, got, p.ID())
		assert.Contains(t, got, "Plain item.", p.ID())
		assert.Contains(t, got, "1 use remaining.", p.ID())
		assert.Equal(t, got, describe.Describe(item.Clone()), "deterministic for %s", p.ID())
	}
}

func TestDescribe_Edges(t *testing.T) {
	assert.Empty(t, describe.Describe(nil))

	unknown := describe.Describe(&entities.Item{Power: "fireball", Uses: 0, Level: 9})
	assert.Equal(t, "Legendary item. Its power (fireball) is unknown. No uses remaining.", unknown)
}

func TestDescribe_TransmuteResult(t *testing.T) {
	boss := catalog.LevelBoss
	item := &entities.Item{
		Power:       entities.PowerTransmute,
		Uses:        2,
		Level:       1,
		ResultLevel: &boss,
	}

	assert.Equal(t, "Crap item. Transmutes a random monster into a random boss. 2 uses remaining.", describe.Describe(item))
}

func TestQuality(t *testing.T) {
	assert.Equal(t, "crap", describe.Quality(0))
	assert.Equal(t, "crap", describe.Quality(1))
	assert.Equal(t, "fine", describe.Quality(4))
	assert.Equal(t, "legendary", describe.Quality(6))
	assert.Equal(t, "legendary", describe.Quality(42))
}
