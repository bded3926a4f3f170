package uuid_test

import (
	"testing"

	"github.com/KirkDiggler/geoquest/internal/uuid"
	"github.com/stretchr/testify/assert"
)

func TestGoogleUUIDGenerator_Unique(t *testing.T) {
	gen := uuid.NewGoogleUUIDGenerator()

	a, b := gen.New(), gen.New()
	assert.Len(t, a, 36)
	assert.NotEqual(t, a, b)
}

func TestSequentialGenerator(t *testing.T) {
	gen := uuid.NewSequentialGenerator("item")

	assert.Equal(t, "item-1", gen.New())
	assert.Equal(t, "item-2", gen.New())
}
