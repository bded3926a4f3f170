package inventory

//go:generate mockgen -destination=mock/mock_repository.go -package=mockinventory -source=interface.go

import (
	"context"
	"time"

	"github.com/KirkDiggler/geoquest/internal/entities"
)

// Repository defines the interface for owned item storage
type Repository interface {
	// Add stores an item for an owner, replacing the owner's item with the
	// same id. An id held by another owner is refused with AlreadyExists.
	Add(ctx context.Context, ownerID string, item *entities.Item) error

	// Get retrieves an item by id
	Get(ctx context.Context, id string) (*entities.Item, error)

	// Remove deletes an item from an owner's inventory. Items held by
	// another owner are NotFound.
	Remove(ctx context.Context, ownerID, id string) error

	// List returns an owner's items, oldest first
	List(ctx context.Context, ownerID string) ([]*entities.Item, error)
}

// TimeProvider supplies the time items are recorded as added
type TimeProvider interface {
	Now() time.Time
}

type systemTime struct{}

func (systemTime) Now() time.Time { return time.Now().UTC() }

// SystemTime is the wall clock
var SystemTime TimeProvider = systemTime{}

// Data is the stored form of an owned item
type Data struct {
	OwnerID string         `json:"owner_id"`
	Item    *entities.Item `json:"item"`
	AddedAt time.Time      `json:"added_at"`
}
