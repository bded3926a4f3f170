package locations

import (
	"sync"

	"github.com/KirkDiggler/geoquest/internal/entities"
)

// Location is one visited place and the monsters currently standing there.
// It satisfies the engine's location contract.
type Location struct {
	ID     string
	TypeID string

	mu       sync.RWMutex
	monsters []*entities.Monster
}

// NewLocation creates an empty location
func NewLocation(id, typeID string) *Location {
	return &Location{ID: id, TypeID: typeID}
}

// Monsters returns a snapshot of the monster list. The monsters themselves
// are shared, so effects mutate them in place.
func (l *Location) Monsters() []*entities.Monster {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return append([]*entities.Monster(nil), l.monsters...)
}

// AddMonster appends a monster
func (l *Location) AddMonster(monster *entities.Monster) {
	if monster == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.monsters = append(l.monsters, monster)
}

// RemoveMonster deletes a monster by id
func (l *Location) RemoveMonster(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, m := range l.monsters {
		if m.ID == id {
			l.monsters = append(l.monsters[:i], l.monsters[i+1:]...)
			return true
		}
	}
	return false
}

// Alive returns the living monsters
func (l *Location) Alive() []*entities.Monster {
	var out []*entities.Monster
	for _, m := range l.Monsters() {
		if m.Alive {
			out = append(out, m)
		}
	}
	return out
}

// Cleared reports whether nothing is left alive
func (l *Location) Cleared() bool {
	return len(l.Alive()) == 0
}
