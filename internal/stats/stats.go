// Package stats tracks the counters of a play session: score, kills and
// pickups. Counters reset with the session.
package stats

import "fmt"

// Counter names a tracked quantity.
type Counter int

const (
	Score Counter = iota
	Kills
	HealthPickups
	ManaPickups
	DamageTaken
	DamageBlocked

	counterCount
)

var counterNames = [counterCount]string{"score", "kills", "health_pickups", "mana_pickups", "damage_taken", "damage_blocked"}

func (c Counter) String() string {
	if c >= 0 && c < counterCount {
		return counterNames[c]
	}
	return fmt.Sprintf("Counter(%d)", int(c))
}

// Tracker holds the session counters.
type Tracker struct {
	counters [counterCount]int
}

// New creates a zeroed tracker.
func New() *Tracker {
	return &Tracker{}
}

// Get returns a counter (0 for unknown counters).
func (t *Tracker) Get(c Counter) int {
	if c < 0 || c >= counterCount {
		return 0
	}
	return t.counters[c]
}

// Add increments a counter and returns the new value.
func (t *Tracker) Add(c Counter, delta int) int {
	if c < 0 || c >= counterCount {
		return 0
	}
	t.counters[c] += delta
	return t.counters[c]
}

// RecordKill adds one kill worth points.
func (t *Tracker) RecordKill(points int) {
	t.counters[Kills]++
	t.counters[Score] += points
}

// Reset zeroes every counter.
func (t *Tracker) Reset() {
	t.counters = [counterCount]int{}
}

// Summary formats the headline counters for the HUD.
func (t *Tracker) Summary() string {
	return fmt.Sprintf("Score: %d  Kills: %d", t.counters[Score], t.counters[Kills])
}
