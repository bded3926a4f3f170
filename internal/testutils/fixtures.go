package testutils

import (
	"fmt"

	"github.com/KirkDiggler/geoquest/internal/catalog"
	"github.com/KirkDiggler/geoquest/internal/entities"
)

// CreateTestItem creates a single-use item with the given power
func CreateTestItem(id string, power entities.PowerID, uses int) *entities.Item {
	return &entities.Item{
		ID:         id,
		Name:       fmt.Sprintf("Test %s", power),
		Uses:       uses,
		Power:      power,
		Level:      1,
		TargetMode: entities.TargetRandom,
		Budget:     1,
		Spent:      1,
	}
}

// CreateTestItemForLevels creates an item restricted to the given levels
func CreateTestItemForLevels(id string, power entities.PowerID, levels ...catalog.Level) *entities.Item {
	item := CreateTestItem(id, power, 1)
	item.Filters.Levels = levels
	return item
}

// CreateTestMonsters creates count living monsters of one type, named like
// a freshly rolled group
func CreateTestMonsters(cat *catalog.Catalog, typeID string, count int) []*entities.Monster {
	title := typeID
	if def, ok := cat.Monster(typeID); ok {
		title = def.Title
	}

	monsters := make([]*entities.Monster, 0, count)
	for i := 1; i <= count; i++ {
		name := title
		if count > 1 {
			name = fmt.Sprintf("%s %d", title, i)
		}
		monsters = append(monsters, entities.NewMonster(fmt.Sprintf("%s-%d", typeID, i), typeID, name))
	}
	return monsters
}
