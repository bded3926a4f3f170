package encounter_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/geoquest/internal/catalog"
	"github.com/KirkDiggler/geoquest/internal/dice"
	"github.com/KirkDiggler/geoquest/internal/entities"
	geoerr "github.com/KirkDiggler/geoquest/internal/errors"
	"github.com/KirkDiggler/geoquest/internal/services/encounter"
	mockitem "github.com/KirkDiggler/geoquest/internal/services/item/mock"
	"github.com/KirkDiggler/geoquest/internal/uuid"
)

type EncounterServiceTestSuite struct {
	suite.Suite
	ctrl  *gomock.Controller
	items *mockitem.MockService
	cat   *catalog.Catalog
}

func (s *EncounterServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.items = mockitem.NewMockService(s.ctrl)
	s.cat = catalog.Default()

	s.items.EXPECT().Generate(gomock.Any()).DoAndReturn(func(level int) *entities.Item {
		return &entities.Item{ID: fmt.Sprintf("loot-%d", level), Level: level, Uses: 1}
	}).AnyTimes()
}

func (s *EncounterServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *EncounterServiceTestSuite) newService(seed int64) encounter.Service {
	return encounter.NewService(&encounter.ServiceConfig{
		Catalog:     s.cat,
		ItemService: s.items,
		Roller:      dice.NewSeededRoller(seed),
		IDs:         uuid.NewSequentialGenerator("monster"),
	})
}

func (s *EncounterServiceTestSuite) levelOf(m *entities.Monster) catalog.Level {
	def, ok := s.cat.Monster(m.TypeID)
	s.Require().True(ok, m.TypeID)
	return def.Level
}

func (s *EncounterServiceTestSuite) TestEndTierAlwaysHasBoss() {
	svc := s.newService(1)

	for i := 0; i < 300; i++ {
		monsters, err := svc.Generate(&encounter.GenerateInput{
			Tier:                 encounter.TierEnd,
			PlayerCount:          4,
			DifficultyMultiplier: 1.0,
		})
		s.Require().NoError(err)

		bosses := 0
		for _, m := range monsters {
			if s.levelOf(m) == catalog.LevelBoss {
				bosses++
				s.NotNil(m.Item, "bosses always drop")
				s.Equal(5, m.Item.Level)
			}
		}
		s.Equal(1, bosses)
	}
}

func (s *EncounterServiceTestSuite) TestGenerate_MatchesAComposition() {
	svc := s.newService(2)

	for _, tier := range encounter.Tiers {
		for i := 0; i < 100; i++ {
			monsters, err := svc.Generate(&encounter.GenerateInput{
				Tier:                 tier,
				PlayerCount:          1,
				DifficultyMultiplier: 1.0,
			})
			s.Require().NoError(err)
			s.NotEmpty(monsters)

			for _, m := range monsters {
				s.True(m.Alive)
				def, _ := s.cat.Monster(m.TypeID)
				s.False(def.Internal, "internal type %s rolled", def.ID)
			}
		}
	}
}

func (s *EncounterServiceTestSuite) TestGenerate_StartTierUnitSizes() {
	svc := s.newService(3)

	for i := 0; i < 100; i++ {
		monsters, err := svc.Generate(&encounter.GenerateInput{
			Tier:                 encounter.TierStart,
			PlayerCount:          3,
			DifficultyMultiplier: 1.0,
		})
		s.Require().NoError(err)

		switch s.levelOf(monsters[0]) {
		case catalog.LevelMinion:
			s.Len(monsters, 6)
		case catalog.LevelGrunt:
			s.Len(monsters, 3)
		default:
			s.Fail("start tier rolled an unexpected level")
		}
	}
}

func (s *EncounterServiceTestSuite) TestGenerate_SequentialNames() {
	svc := s.newService(4)

	monsters, err := svc.Generate(&encounter.GenerateInput{
		Tier:                 encounter.TierStart,
		PlayerCount:          2,
		DifficultyMultiplier: 1.0,
	})
	s.Require().NoError(err)
	s.Require().Greater(len(monsters), 1)

	def, _ := s.cat.Monster(monsters[0].TypeID)
	for i, m := range monsters {
		s.Equal(fmt.Sprintf("%s %d", def.Title, i+1), m.Name)
	}
}

func (s *EncounterServiceTestSuite) TestGenerate_NullifiedSpecies() {
	svc := s.newService(5)

	var nullified []string
	for _, species := range s.cat.Species() {
		if species != "goblin" {
			nullified = append(nullified, species)
		}
	}

	for i := 0; i < 50; i++ {
		monsters, err := svc.Generate(&encounter.GenerateInput{
			Tier:             encounter.TierEasy,
			PlayerCount:      1,
			NullifiedSpecies: nullified,
		})
		s.Require().NoError(err)
		for _, m := range monsters {
			def, _ := s.cat.Monster(m.TypeID)
			s.Equal("goblin", def.Species)
		}
	}
}

func (s *EncounterServiceTestSuite) TestGenerate_NullifyingEverythingFallsBack() {
	svc := s.newService(6)

	monsters, err := svc.Generate(&encounter.GenerateInput{
		Tier:             encounter.TierMedium,
		PlayerCount:      2,
		NullifiedSpecies: s.cat.Species(),
	})
	s.Require().NoError(err)
	s.NotEmpty(monsters)
}

func (s *EncounterServiceTestSuite) TestGenerate_LocationNullifies() {
	svc := s.newService(7)

	for i := 0; i < 100; i++ {
		monsters, err := svc.Generate(&encounter.GenerateInput{
			Tier:                 encounter.TierHard,
			PlayerCount:          2,
			DifficultyMultiplier: 1.0,
			LocationTypeID:       "church",
		})
		s.Require().NoError(err)
		for _, m := range monsters {
			def, _ := s.cat.Monster(m.TypeID)
			s.NotEqual("undead", def.Species)
		}
	}

	_, err := svc.Generate(&encounter.GenerateInput{Tier: encounter.TierEasy, LocationTypeID: "moon-base"})
	s.NoError(err, "unknown locations nullify nothing")
}

func (s *EncounterServiceTestSuite) TestGenerate_InvalidInput() {
	svc := s.newService(8)

	_, err := svc.Generate(nil)
	s.True(geoerr.IsInvalidArgument(err))

	_, err = svc.Generate(&encounter.GenerateInput{Tier: encounter.Tier(42)})
	s.True(geoerr.IsInvalidArgument(err))

	_, err = svc.Generate(&encounter.GenerateInput{Tier: encounter.TierEasy, DifficultyMultiplier: -0.5})
	s.True(geoerr.IsInvalidArgument(err))

	_, err = svc.Generate(&encounter.GenerateInput{Tier: encounter.TierEasy, DifficultyMultiplier: 1e9})
	s.True(geoerr.IsInvalidArgument(err))

	_, err = svc.Generate(&encounter.GenerateInput{Tier: encounter.TierEasy, DifficultyMultiplier: math.Inf(1)})
	s.True(geoerr.IsInvalidArgument(err))
}

func (s *EncounterServiceTestSuite) TestGenerate_HugePartyStaysBounded() {
	svc := s.newService(8)

	monsters, err := svc.Generate(&encounter.GenerateInput{
		Tier:                 encounter.TierEnd,
		PlayerCount:          1_000_000,
		DifficultyMultiplier: encounter.MaxDifficultyMultiplier,
	})
	s.Require().NoError(err)

	maxGroups := 0
	for _, c := range encounter.Compositions[encounter.TierEnd] {
		groups := 0
		for _, slot := range c.Slots {
			groups += slot.Count
		}
		maxGroups = max(maxGroups, groups)
	}
	s.NotEmpty(monsters)
	s.LessOrEqual(len(monsters), maxGroups*encounter.MaxUnitSize)
}

func (s *EncounterServiceTestSuite) TestGenerate_SeededIsReproducible() {
	input := &encounter.GenerateInput{Tier: encounter.TierMedium, PlayerCount: 3, DifficultyMultiplier: 1.5}

	a, err := s.newService(99).Generate(input)
	s.Require().NoError(err)
	b, err := s.newService(99).Generate(input)
	s.Require().NoError(err)

	s.Equal(a, b)
}

func TestEncounterServiceSuite(t *testing.T) {
	suite.Run(t, new(EncounterServiceTestSuite))
}

func TestScaled_NeverBelowOne(t *testing.T) {
	for n := 0; n <= 20; n++ {
		for _, m := range []float64{0, 0.01, 0.25, 0.5, 1, 1.5, 2.75, 10} {
			got := encounter.Scaled(n, m)
			assert.GreaterOrEqual(t, got, 1, "n=%d m=%v", n, m)
			want := math.Min(encounter.MaxUnitSize, math.Max(1, math.Round(float64(n)*m)))
			assert.Equal(t, int(want), got, "n=%d m=%v", n, m)
		}
	}
}

func TestScaled_Capped(t *testing.T) {
	assert.Equal(t, encounter.MaxUnitSize, encounter.Scaled(4, 1e9))
	assert.Equal(t, encounter.MaxUnitSize, encounter.Scaled(1<<40, 10))
	assert.Equal(t, encounter.MaxUnitSize, encounter.Scaled(3, math.Inf(1)))
}

func TestUnitSize(t *testing.T) {
	tests := []struct {
		tier  encounter.Tier
		level catalog.Level
		want  int
	}{
		{tier: encounter.TierEnd, level: catalog.LevelBoss, want: 1},
		{tier: encounter.TierMedium, level: catalog.LevelElite, want: 1},
		{tier: encounter.TierHard, level: catalog.LevelElite, want: 4},
		{tier: encounter.TierEasy, level: catalog.LevelGrunt, want: 4},
		{tier: encounter.TierEasy, level: catalog.LevelMinion, want: 8},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/%s", tt.tier, tt.level), func(t *testing.T) {
			assert.Equal(t, tt.want, encounter.UnitSize(tt.tier, tt.level, 4, 1.0))
		})
	}
}

func TestCompositions(t *testing.T) {
	for _, tier := range encounter.Tiers {
		templates, ok := encounter.Compositions[tier]
		if !assert.True(t, ok, tier.String()) {
			continue
		}
		for _, c := range templates {
			assert.Positive(t, c.Weight)

			bosses := 0
			for _, slot := range c.Slots {
				assert.Positive(t, slot.Count)
				if slot.Level == catalog.LevelBoss {
					bosses += slot.Count
				}
			}
			if tier == encounter.TierEnd {
				assert.Equal(t, 1, bosses, "end templates carry exactly one boss")
			}
		}
	}
}

func TestParseTier(t *testing.T) {
	for _, tier := range encounter.Tiers {
		got, err := encounter.ParseTier(tier.String())
		assert.NoError(t, err)
		assert.Equal(t, tier, got)
	}

	got, err := encounter.ParseTier("  HARD ")
	assert.NoError(t, err)
	assert.Equal(t, encounter.TierHard, got)

	_, err = encounter.ParseTier("nightmare")
	assert.Error(t, err)
}

func TestNewService_RequiresDependencies(t *testing.T) {
	ctrl := gomock.NewController(t)
	items := mockitem.NewMockService(ctrl)

	assert.Panics(t, func() { encounter.NewService(&encounter.ServiceConfig{ItemService: items}) })
	assert.Panics(t, func() { encounter.NewService(&encounter.ServiceConfig{Catalog: catalog.Default()}) })
}
