package locations

//go:generate mockgen -destination=mock/mock_repository.go -package=mocklocations -source=repository.go

import (
	"context"
)

// Repository defines the interface for location storage operations
type Repository interface {
	// Create stores a new location
	Create(ctx context.Context, location *Location) error

	// Get retrieves a location by ID
	Get(ctx context.Context, id string) (*Location, error)

	// Delete removes a location
	Delete(ctx context.Context, id string) error

	// List returns every stored location ordered by id
	List(ctx context.Context) ([]*Location, error)
}
