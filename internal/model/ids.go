package model

import (
	"sync"
	"time"
)

// IDGenerator hands out millisecond-timestamp identifiers that are strictly
// increasing even when several are requested within the same millisecond.
type IDGenerator struct {
	mu   sync.Mutex
	now  func() time.Time
	last int64
}

// NewIDGenerator creates a generator reading the given clock.
// A nil clock means time.Now.
func NewIDGenerator(now func() time.Time) *IDGenerator {
	if now == nil {
		now = time.Now
	}
	return &IDGenerator{now: now}
}

// Seed makes sure future ids are greater than id.
func (g *IDGenerator) Seed(id int64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if id > g.last {
		g.last = id
	}
}

// SeedTasks seeds the generator with the largest task id.
func (g *IDGenerator) SeedTasks(tasks []Task) {
	for _, t := range tasks {
		g.Seed(t.ID)
	}
}

// SeedHabits seeds the generator with the largest habit id.
func (g *IDGenerator) SeedHabits(habits []Habit) {
	for _, h := range habits {
		g.Seed(h.ID)
	}
}

// Next returns a fresh identifier.
func (g *IDGenerator) Next() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := g.now().UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}
