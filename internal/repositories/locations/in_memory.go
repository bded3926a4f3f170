package locations

import (
	"context"
	"sort"
	"sync"

	geoerr "github.com/KirkDiggler/geoquest/internal/errors"
)

type inMemoryRepository struct {
	mu        sync.RWMutex
	locations map[string]*Location
}

// NewInMemoryRepository creates a new in-memory location repository
func NewInMemoryRepository() Repository {
	return &inMemoryRepository{
		locations: make(map[string]*Location),
	}
}

// Create stores a new location
func (r *inMemoryRepository) Create(_ context.Context, location *Location) error {
	if location == nil || location.ID == "" {
		return geoerr.InvalidArgument("location with an ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.locations[location.ID]; exists {
		return geoerr.AlreadyExistsf("location '%s' already exists", location.ID).
			WithMeta("location_id", location.ID)
	}

	r.locations[location.ID] = location
	return nil
}

// Get returns the live location, not a copy
func (r *inMemoryRepository) Get(_ context.Context, id string) (*Location, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	location, exists := r.locations[id]
	if !exists {
		return nil, geoerr.NotFoundf("location '%s' not found", id).WithMeta("location_id", id)
	}
	return location, nil
}

// Delete removes a location
func (r *inMemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.locations[id]; !exists {
		return geoerr.NotFoundf("location '%s' not found", id).WithMeta("location_id", id)
	}
	delete(r.locations, id)
	return nil
}

// List returns every stored location ordered by id
func (r *inMemoryRepository) List(_ context.Context) ([]*Location, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Location, 0, len(r.locations))
	for _, location := range r.locations {
		out = append(out, location)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
