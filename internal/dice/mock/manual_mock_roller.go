package mockdice

import (
	"sync"
)

// ManualMockRoller implements dice.Roller with scripted results. Once a
// script runs dry the roller returns zero, which always selects the first
// option, so tests only need to script the draws they care about.
type ManualMockRoller struct {
	mu       sync.Mutex
	ints     []int
	intIndex int
	floats   []float64
	fltIndex int
	intCalls int
	fltCalls int
}

// NewManualMockRoller creates a new scripted roller
func NewManualMockRoller() *ManualMockRoller {
	return &ManualMockRoller{}
}

// SetInts replaces the scripted Intn results
func (m *ManualMockRoller) SetInts(ints ...int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ints = ints
	m.intIndex = 0
}

// SetFloats replaces the scripted Float64 results
func (m *ManualMockRoller) SetFloats(floats ...float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.floats = floats
	m.fltIndex = 0
}

// Reset clears all scripts and counters
func (m *ManualMockRoller) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ints, m.floats = nil, nil
	m.intIndex, m.fltIndex = 0, 0
	m.intCalls, m.fltCalls = 0, 0
}

// Intn implements dice.Roller.Intn. Scripted values are reduced modulo n.
func (m *ManualMockRoller) Intn(n int) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.intCalls++
	if m.intIndex >= len(m.ints) {
		return 0
	}
	v := m.ints[m.intIndex]
	m.intIndex++
	if v < 0 {
		v = -v
	}
	return v % n
}

// Float64 implements dice.Roller.Float64
func (m *ManualMockRoller) Float64() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.fltCalls++
	if m.fltIndex >= len(m.floats) {
		return 0
	}
	v := m.floats[m.fltIndex]
	m.fltIndex++
	return v
}

// IntCalls returns how many times Intn was called
func (m *ManualMockRoller) IntCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.intCalls
}

// FloatCalls returns how many times Float64 was called
func (m *ManualMockRoller) FloatCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fltCalls
}
