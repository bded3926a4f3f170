package dice

import (
	"math/rand"
	"time"
)

// Roller is the single source of randomness for the engine. Every pick,
// coin flip and chance roll goes through one, so a seeded Roller makes
// generation reproducible.
type Roller interface {
	// Intn returns a uniform integer in [0, n). n must be positive.
	Intn(n int) int

	// Float64 returns a uniform float in [0, 1)
	Float64() float64
}

// randomRoller implements Roller on top of math/rand
type randomRoller struct {
	random *rand.Rand
}

// NewRandomRoller creates a roller seeded from the wall clock
func NewRandomRoller() Roller {
	return NewSeededRoller(time.Now().UnixNano())
}

// NewSeededRoller creates a deterministic roller
func NewSeededRoller(seed int64) Roller {
	return &randomRoller{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Intn implements Roller.Intn
func (r *randomRoller) Intn(n int) int {
	return r.random.Intn(n)
}

// Float64 implements Roller.Float64
func (r *randomRoller) Float64() float64 {
	return r.random.Float64()
}
