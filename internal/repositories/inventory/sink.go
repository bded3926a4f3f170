package inventory

import (
	"context"
	"log"

	"github.com/KirkDiggler/geoquest/internal/entities"
	geoerr "github.com/KirkDiggler/geoquest/internal/errors"
)

// OwnerSink adapts a Repository to the engine's inventory contract for one
// owner. The engine cannot handle storage errors, so they are logged.
type OwnerSink struct {
	ctx     context.Context
	repo    Repository
	ownerID string
}

// Sink binds a repository, owner and request context together
func Sink(ctx context.Context, repo Repository, ownerID string) *OwnerSink {
	return &OwnerSink{ctx: ctx, repo: repo, ownerID: ownerID}
}

// AddItem stores a newly created item
func (s *OwnerSink) AddItem(item *entities.Item) {
	if err := s.repo.Add(s.ctx, s.ownerID, item); err != nil {
		log.Printf("Inventory: failed to add item for %s: %v", s.ownerID, err)
	}
}

// RemoveItem deletes a used-up item. Items that were never stored are fine.
func (s *OwnerSink) RemoveItem(id string) {
	err := s.repo.Remove(s.ctx, s.ownerID, id)
	if err != nil && !geoerr.IsNotFound(err) {
		log.Printf("Inventory: failed to remove item %s for %s: %v", id, s.ownerID, err)
	}
}
