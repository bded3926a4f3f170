package powers_test

import (
	"testing"

	"github.com/KirkDiggler/geoquest/internal/catalog"
	"github.com/KirkDiggler/geoquest/internal/dice"
	mockdice "github.com/KirkDiggler/geoquest/internal/dice/mock"
	"github.com/KirkDiggler/geoquest/internal/entities"
	"github.com/KirkDiggler/geoquest/internal/powers"
	mockpowers "github.com/KirkDiggler/geoquest/internal/powers/mock"
	"github.com/KirkDiggler/geoquest/internal/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// listLocation is a plain slice-backed location
type listLocation struct {
	monsters []*entities.Monster
}

func (l *listLocation) Monsters() []*entities.Monster { return l.monsters }

func (l *listLocation) AddMonster(m *entities.Monster) { l.monsters = append(l.monsters, m) }

func (l *listLocation) RemoveMonster(id string) bool {
	for i, m := range l.monsters {
		if m.ID == id {
			l.monsters = append(l.monsters[:i], l.monsters[i+1:]...)
			return true
		}
	}
	return false
}

func (l *listLocation) ofType(typeID string) []*entities.Monster {
	var out []*entities.Monster
	for _, m := range l.monsters {
		if m.TypeID == typeID {
			out = append(out, m)
		}
	}
	return out
}

type PowersTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	events    *mockpowers.MockEventSink
	inventory *mockpowers.MockInventory
	party     *mockpowers.MockParty
	items     *mockpowers.MockItemGenerator
	location  *listLocation
	cat       *catalog.Catalog
	env       *powers.Env
}

func (s *PowersTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.events = mockpowers.NewMockEventSink(s.ctrl)
	s.inventory = mockpowers.NewMockInventory(s.ctrl)
	s.party = mockpowers.NewMockParty(s.ctrl)
	s.items = mockpowers.NewMockItemGenerator(s.ctrl)
	s.location = &listLocation{}
	s.cat = catalog.Default()
	s.env = &powers.Env{
		Catalog:   s.cat,
		Roller:    dice.NewSeededRoller(7),
		IDs:       uuid.NewSequentialGenerator("m"),
		Location:  s.location,
		Events:    s.events,
		Inventory: s.inventory,
		Party:     s.party,
		Items:     s.items,
	}
}

func (s *PowersTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *PowersTestSuite) item(power entities.PowerID, uses int) *entities.Item {
	return &entities.Item{ID: "item-1", Name: "Plain Iron Thing", Uses: uses, Power: power}
}

func (s *PowersTestSuite) TestKill_DeadMonsterIsUnchanged() {
	item := s.item(entities.PowerKill, 2)
	monster := entities.NewMonster("m1", "rat", "Rat")
	monster.Alive = false

	// no event or inventory expectations: any call fails the test
	s.False(powers.Use(s.env, item, monster))
	s.False(monster.Alive)
	s.Equal("rat", monster.TypeID)
	s.Equal(2, item.Uses)

	power, _ := powers.Get(entities.PowerKill)
	s.False(power.ApplyEffect(s.env, item, monster))
}

func (s *PowersTestSuite) TestKill_AwardsXPAndLoot() {
	item := s.item(entities.PowerKill, 2)
	loot := &entities.Item{ID: "loot-1", Name: "Shoddy Tin Dagger"}
	monster := entities.NewMonster("m1", "goblin-warrior", "Goblin Warrior")
	monster.Item = loot

	s.events.EXPECT().LogEvent("Goblin Warrior has been slain!", 12)
	s.inventory.EXPECT().AddItem(loot)
	s.events.EXPECT().LogEvent("You found Shoddy Tin Dagger on Goblin Warrior.", 0)

	s.True(powers.Use(s.env, item, monster))
	s.False(monster.Alive)
	s.Nil(monster.Item)
	s.Equal(1, item.Uses)
}

func (s *PowersTestSuite) TestUse_LastUseCrumbles() {
	item := s.item(entities.PowerKill, 1)
	monster := entities.NewMonster("m1", "rat", "Rat")

	gomock.InOrder(
		s.events.EXPECT().LogEvent("Rat has been slain!", 5),
		s.inventory.EXPECT().RemoveItem("item-1"),
		s.events.EXPECT().LogEvent("Your Plain Iron Thing crumbles to dust.", 0),
	)

	s.True(powers.Use(s.env, item, monster))
	s.Equal(0, item.Uses)

	// a spent item does nothing
	s.False(powers.Use(s.env, item, entities.NewMonster("m2", "rat", "Rat")))
}

func (s *PowersTestSuite) TestUse_RespectsFilters() {
	item := s.item(entities.PowerKill, 1)
	item.Filters.Species = []string{"undead"}

	s.False(powers.Use(s.env, item, entities.NewMonster("m1", "rat", "Rat")))
	s.Equal(1, item.Uses)
}

func (s *PowersTestSuite) TestBanish() {
	item := s.item(entities.PowerBanish, 3)
	monster := entities.NewMonster("m1", "zombie", "Zombie")
	monster.Item = &entities.Item{ID: "lost"}
	s.location.AddMonster(monster)

	s.events.EXPECT().LogEvent("Zombie vanishes in a puff of smoke.", 12)

	s.True(powers.Use(s.env, item, monster))
	s.Empty(s.location.Monsters())
	s.Nil(monster.Item)
	s.Equal(2, item.Uses)
}

func (s *PowersTestSuite) TestBanish_NotAtLocation() {
	item := s.item(entities.PowerBanish, 3)

	s.False(powers.Use(s.env, item, entities.NewMonster("m1", "zombie", "Zombie")))
	s.Equal(3, item.Uses)
}

func (s *PowersTestSuite) TestSplit_ReplacesWithLesserForms() {
	s.events.EXPECT().LogEvent(gomock.Any(), 0).AnyTimes()
	s.party.EXPECT().PlayerCount().Return(3).AnyTimes()

	power, ok := powers.Get(entities.PowerSplit)
	s.Require().True(ok)

	for _, def := range s.cat.Monsters() {
		lesser, ok := s.cat.Lesser(def.ID)
		if !ok {
			continue
		}
		s.Run(def.ID, func() {
			s.location.monsters = nil
			carried := &entities.Item{ID: "carried-" + def.ID}
			monster := entities.NewMonster("orig-"+def.ID, def.ID, def.Title)
			monster.Item = carried
			s.location.AddMonster(monster)

			want := def.LesserCount
			if def.LesserPerPlayer {
				want = 3
			}
			if want == 0 {
				want = powers.DefaultSplitCount
			}

			s.True(power.ApplyEffect(s.env, s.item(entities.PowerSplit, 1), monster))

			s.Len(s.location.Monsters(), want)
			s.Len(s.location.ofType(lesser.ID), want)

			holders := 0
			for _, m := range s.location.Monsters() {
				s.NotEqual(monster.ID, m.ID)
				if m.Item == carried {
					holders++
				}
			}
			s.Equal(1, holders)
		})
	}
}

func (s *PowersTestSuite) TestSplit_PairNames() {
	s.events.EXPECT().LogEvent("Goblin Warrior splits into 2 Goblin Scouts!", 0)

	roller := mockdice.NewManualMockRoller()
	roller.SetInts(1)
	s.env.Roller = roller

	monster := entities.NewMonster("m1", "goblin-warrior", "Goblin Warrior")
	s.location.AddMonster(monster)

	power, _ := powers.Get(entities.PowerSplit)
	s.True(power.ApplyEffect(s.env, s.item(entities.PowerSplit, 1), monster))

	s.Require().Len(s.location.Monsters(), 2)
	s.Equal("Salt the Goblin Scout", s.location.Monsters()[0].Name)
	s.Equal("Pepper the Goblin Scout", s.location.Monsters()[1].Name)
}

func (s *PowersTestSuite) TestSplit_NoLesserForm() {
	monster := entities.NewMonster("m1", "rat", "Rat")
	s.location.AddMonster(monster)

	power, _ := powers.Get(entities.PowerSplit)
	s.False(power.ApplyEffect(s.env, s.item(entities.PowerSplit, 1), monster))
	s.Len(s.location.Monsters(), 1)
}

func (s *PowersTestSuite) TestShrinkThenGrow_RestoresType() {
	s.events.EXPECT().LogEvent(gomock.Any(), 0).AnyTimes()
	s.env.Items = nil

	shrink, _ := powers.Get(entities.PowerShrink)
	grow, _ := powers.Get(entities.PowerGrow)

	checked := 0
	for _, def := range s.cat.Monsters() {
		if _, ok := s.cat.Lesser(def.ID); !ok {
			continue
		}
		monster := entities.NewMonster("m-"+def.ID, def.ID, def.Title)

		s.Require().True(shrink.ApplyEffect(s.env, nil, monster), def.ID)
		s.NotEqual(def.ID, monster.TypeID)
		s.Require().True(grow.ApplyEffect(s.env, nil, monster), def.ID)
		s.Equal(def.ID, monster.TypeID)
		checked++
	}
	s.Greater(checked, 0)
}

func (s *PowersTestSuite) TestGrow_ReequipsWithBetterItem() {
	s.events.EXPECT().LogEvent(gomock.Any(), 0)
	better := &entities.Item{ID: "better", Level: 4}
	// zombie -> ghoul is elite (item level 3), carried level 3 pushes to 4
	s.items.EXPECT().Generate(4).Return(better)

	monster := entities.NewMonster("m1", "zombie", "Zombie")
	monster.Item = &entities.Item{ID: "old", Level: 3}

	grow, _ := powers.Get(entities.PowerGrow)
	s.True(grow.ApplyEffect(s.env, nil, monster))
	s.Equal("ghoul", monster.TypeID)
	s.Same(better, monster.Item)
}

func (s *PowersTestSuite) TestGrow_NoGreaterForm() {
	grow, _ := powers.Get(entities.PowerGrow)
	s.False(grow.ApplyEffect(s.env, nil, entities.NewMonster("m1", "lich", "Lich")))
}

func (s *PowersTestSuite) TestStatus_FixedMapAndBossImmunity() {
	s.events.EXPECT().LogEvent("Goblin Warrior is frozen solid!", 0)

	freeze, _ := powers.Get(entities.PowerFreeze)

	grunt := entities.NewMonster("m1", "goblin-warrior", "Goblin Warrior")
	s.True(freeze.ApplyEffect(s.env, nil, grunt))
	s.Equal("frozen-husk", grunt.TypeID)
	s.Equal("Frozen Goblin Warrior", grunt.Name)

	boss := entities.NewMonster("m2", "lich", "Lich")
	s.False(freeze.ApplyEffect(s.env, nil, boss))
	s.Equal("lich", boss.TypeID)
}

func (s *PowersTestSuite) TestTransmute_HonoursResultSpecies() {
	s.events.EXPECT().LogEvent(gomock.Any(), 0).Times(20)
	transmute, _ := powers.Get(entities.PowerTransmute)

	item := s.item(entities.PowerTransmute, 1)
	item.ResultSpecies = "undead"

	for i := 0; i < 20; i++ {
		monster := entities.NewMonster("m1", "rat", "Rat")
		s.True(transmute.ApplyEffect(s.env, item, monster))
		def, ok := s.cat.Monster(monster.TypeID)
		s.Require().True(ok)
		s.Equal("undead", def.Species)
		s.Equal(catalog.LevelMinion, def.Level)
	}
}

func (s *PowersTestSuite) TestTransmute_LeavesSourceTypeWhenPossible() {
	s.events.EXPECT().LogEvent(gomock.Any(), 0).AnyTimes()
	transmute, _ := powers.Get(entities.PowerTransmute)
	item := s.item(entities.PowerTransmute, 1)

	for i := 0; i < 50; i++ {
		monster := entities.NewMonster("m1", "zombie", "Zombie")
		s.True(transmute.ApplyEffect(s.env, item, monster))
		s.NotEqual("zombie", monster.TypeID)
	}
}

func (s *PowersTestSuite) TestUseOnMonsterType() {
	for i := 0; i < 3; i++ {
		s.location.AddMonster(entities.NewMonster(s.env.IDs.New(), "rat", "Rat"))
	}
	goblin := entities.NewMonster("goblin", "goblin-scout", "Goblin Scout")
	s.location.AddMonster(goblin)

	s.events.EXPECT().LogEvent("Rat is frozen solid!", 0).Times(3)

	item := s.item(entities.PowerFreeze, 2)
	item.TargetMode = entities.TargetPickType

	s.Equal(3, powers.UseOnMonsterType(s.env, item, "rat"))
	s.Equal(1, item.Uses)
	s.Len(s.location.ofType("ice-cube"), 3)
	s.Equal("goblin-scout", goblin.TypeID)

	// nothing of that type is left
	s.Equal(0, powers.UseOnMonsterType(s.env, item, "rat"))
	s.Equal(1, item.Uses)
}

func (s *PowersTestSuite) TestUseOnMonsterType_Refusals() {
	s.location.AddMonster(entities.NewMonster("m1", "rat", "Rat"))

	single := s.item(entities.PowerKill, 1)
	s.Equal(0, powers.UseOnMonsterType(s.env, single, "rat"), "single target mode")

	noTypes := s.item(entities.PowerSplit, 1)
	noTypes.TargetMode = entities.TargetRandomType
	s.Equal(0, powers.UseOnMonsterType(s.env, noTypes, "rat"), "power without type targeting")

	filtered := s.item(entities.PowerKill, 1)
	filtered.TargetMode = entities.TargetRandomType
	filtered.Filters.Species = []string{"goblin"}
	s.Equal(0, powers.UseOnMonsterType(s.env, filtered, "rat"), "type fails filters")

	s.env.Location = nil
	filtered.Filters.Species = nil
	s.Equal(0, powers.UseOnMonsterType(s.env, filtered, "rat"), "no location")
}

func (s *PowersTestSuite) TestTreasure() {
	item := s.item(entities.PowerTreasure, 3)

	s.events.EXPECT().LogEvent("You cash in Plain Iron Thing for 30 XP.", 30)
	s.inventory.EXPECT().RemoveItem("item-1")
	s.events.EXPECT().LogEvent("Your Plain Iron Thing crumbles to dust.", 0)

	s.True(powers.UseWithoutTarget(s.env, item))
	s.Equal(0, item.Uses)
}

func (s *PowersTestSuite) TestScout() {
	item := s.item(entities.PowerScout, 2)

	s.party.EXPECT().ExtendScoutRange(40)
	s.events.EXPECT().LogEvent(gomock.Any(), 0).Times(2)
	s.inventory.EXPECT().RemoveItem("item-1")

	s.True(powers.UseWithoutTarget(s.env, item))
}

func (s *PowersTestSuite) TestLootbox_BudgetFromUses() {
	item := s.item(entities.PowerLootbox, 4)
	loot := &entities.Item{ID: "loot", Name: "Fine Silver Wand"}

	s.items.EXPECT().GenerateWithBudget(4).Return(loot)
	s.inventory.EXPECT().AddItem(loot)
	s.events.EXPECT().LogEvent("Plain Iron Thing bursts open, revealing Fine Silver Wand!", 0)
	s.inventory.EXPECT().RemoveItem("item-1")
	s.events.EXPECT().LogEvent("Your Plain Iron Thing crumbles to dust.", 0)

	s.True(powers.UseWithoutTarget(s.env, item))
}

func (s *PowersTestSuite) TestToken_NeverSpends() {
	item := s.item(entities.PowerToken, 1)
	s.events.EXPECT().LogEvent(gomock.Any(), 0)

	s.False(powers.UseWithoutTarget(s.env, item))
	s.Equal(1, item.Uses)
}

func (s *PowersTestSuite) TestPickpocket_AlwaysFails() {
	item := s.item(entities.PowerPickpocket, 1)
	s.events.EXPECT().LogEvent(gomock.Any(), 0)

	s.False(powers.Use(s.env, item, entities.NewMonster("m1", "cutpurse", "Cutpurse")))
	s.Equal(1, item.Uses)
}

func (s *PowersTestSuite) TestUntargetedRejectsMonsterUse() {
	item := s.item(entities.PowerTreasure, 1)
	s.False(powers.Use(s.env, item, entities.NewMonster("m1", "rat", "Rat")))

	kill := s.item(entities.PowerKill, 1)
	s.False(powers.UseWithoutTarget(s.env, kill))
}

func TestPowersSuite(t *testing.T) {
	suite.Run(t, new(PowersTestSuite))
}

func TestRegistry(t *testing.T) {
	all := powers.All()
	require.Len(t, all, 17)

	seen := make(map[entities.PowerID]bool)
	for _, p := range all {
		assert.False(t, seen[p.ID()], "duplicate %s", p.ID())
		seen[p.ID()] = true
		assert.Positive(t, p.BaseCost(), p.ID())
		assert.NotEmpty(t, p.Noun(), p.ID())

		got, ok := powers.Get(p.ID())
		assert.True(t, ok)
		assert.Same(t, p, got)

		_, untargeted := p.(powers.Untargeted)
		assert.Equal(t, !p.NeedsTarget(), untargeted, p.ID())
		if !p.NeedsTarget() {
			assert.False(t, p.SupportsTypeTargeting(), p.ID())
			assert.False(t, p.AcceptsTargetRestriction(), p.ID())
		}
	}

	for _, p := range powers.Generatable() {
		assert.NotEqual(t, entities.PowerToken, p.ID())
	}
	assert.Len(t, powers.Generatable(), 16)

	_, ok := powers.Get("fireball")
	assert.False(t, ok)
}

func TestRegistry_Constants(t *testing.T) {
	tests := []struct {
		id       entities.PowerID
		cost     int
		byType   bool
		result   bool
		eliteCap bool
	}{
		{id: entities.PowerKill, cost: 1, byType: true},
		{id: entities.PowerBanish, cost: 2, byType: true},
		{id: entities.PowerSplit, cost: 1},
		{id: entities.PowerTransmute, cost: 2, byType: true, result: true},
		{id: entities.PowerShrink, cost: 2, byType: true},
		{id: entities.PowerGrow, cost: 1},
		{id: entities.PowerFreeze, cost: 1, byType: true, eliteCap: true},
		{id: entities.PowerDistract, cost: 1, byType: true, eliteCap: true},
		{id: entities.PowerPickpocket, cost: 1},
		{id: entities.PowerLootbox, cost: 2},
	}

	for _, tt := range tests {
		t.Run(string(tt.id), func(t *testing.T) {
			p, ok := powers.Get(tt.id)
			require.True(t, ok)
			assert.Equal(t, tt.cost, p.BaseCost())
			assert.Equal(t, tt.byType, p.SupportsTypeTargeting())
			assert.Equal(t, tt.result, p.AcceptsResultRestriction())

			capLevel, capped := p.LevelCap()
			assert.Equal(t, tt.eliteCap, capped)
			if capped {
				assert.Equal(t, catalog.LevelElite, capLevel)
			}
		})
	}
}
