package inventory

import (
	"context"
	"sync"

	"github.com/KirkDiggler/geoquest/internal/entities"
	geoerr "github.com/KirkDiggler/geoquest/internal/errors"
)

// InMemoryRepository is an in-memory inventory. Useful for testing and
// single-process tools.
type InMemoryRepository struct {
	mu           sync.RWMutex
	items        map[string]*Data
	timeProvider TimeProvider
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository(timeProvider TimeProvider) *InMemoryRepository {
	if timeProvider == nil {
		timeProvider = SystemTime
	}
	return &InMemoryRepository{
		items:        make(map[string]*Data),
		timeProvider: timeProvider,
	}
}

// Add stores a copy of the item for the owner. An id already held by a
// different owner is refused.
func (r *InMemoryRepository) Add(_ context.Context, ownerID string, item *entities.Item) error {
	if ownerID == "" {
		return geoerr.InvalidArgument("owner ID is required")
	}
	if item == nil || item.ID == "" {
		return geoerr.InvalidArgument("item with an ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.items[item.ID]; ok && existing.OwnerID != ownerID {
		return ownedElsewhere(item.ID)
	}

	r.items[item.ID] = &Data{
		OwnerID: ownerID,
		Item:    item.Clone(),
		AddedAt: r.timeProvider.Now(),
	}
	return nil
}

// Get returns a copy of the stored item
func (r *InMemoryRepository) Get(_ context.Context, id string) (*entities.Item, error) {
	if id == "" {
		return nil, geoerr.InvalidArgument("item ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	data, ok := r.items[id]
	if !ok {
		return nil, geoerr.NotFoundf("item '%s' not found", id).WithMeta("item_id", id)
	}
	return data.Item.Clone(), nil
}

// Remove deletes an item the owner holds
func (r *InMemoryRepository) Remove(_ context.Context, ownerID, id string) error {
	if ownerID == "" || id == "" {
		return geoerr.InvalidArgument("owner ID and item ID are required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	data, ok := r.items[id]
	if !ok || data.OwnerID != ownerID {
		return geoerr.NotFoundf("item '%s' not found", id).WithMeta("item_id", id)
	}
	delete(r.items, id)
	return nil
}

// List returns copies of the owner's items, oldest first
func (r *InMemoryRepository) List(_ context.Context, ownerID string) ([]*entities.Item, error) {
	if ownerID == "" {
		return nil, geoerr.InvalidArgument("owner ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var records []*Data
	for _, data := range r.items {
		if data.OwnerID != ownerID {
			continue
		}
		copied := *data
		copied.Item = data.Item.Clone()
		records = append(records, &copied)
	}
	return sortedItems(records), nil
}
