// Package spawner keeps the enemy population topped up from fixed spawn
// points, each gated by its own respawn timer.
package spawner

import (
	"math"

	"chosenoffset.com/duskblade/internal/config"
	"chosenoffset.com/duskblade/internal/entity"
	"chosenoffset.com/duskblade/internal/world"
)

// Spawner tracks when each spawn point may next produce an enemy.
type Spawner struct {
	cfg      *config.Config
	resumeAt []int // Tick at which each point becomes available

	// DamageScale is applied to every enemy spawned.
	DamageScale float64
}

// New creates a spawner with every point immediately available.
func New(cfg *config.Config) *Spawner {
	return &Spawner{
		cfg:         cfg,
		resumeAt:    make([]int, len(cfg.Spawner.Points)),
		DamageScale: 1,
	}
}

// Reset makes every point available again.
func (s *Spawner) Reset() {
	for i := range s.resumeAt {
		s.resumeAt[i] = 0
	}
}

// ResumeAt returns the tick at which point i may next spawn.
func (s *Spawner) ResumeAt(i int) int {
	if i < 0 || i >= len(s.resumeAt) {
		return 0
	}
	return s.resumeAt[i]
}

// Alive counts enemies that are not dead. Dying enemies still in the
// collection don't count.
func Alive(enemies []*entity.Enemy) int {
	n := 0
	for _, e := range enemies {
		if !e.IsDead {
			n++
		}
	}
	return n
}

// Update spawns at every free point whose timer has elapsed while the
// living population is under the cap, and returns the grown collection.
func (s *Spawner) Update(w *world.World, enemies []*entity.Enemy) []*entity.Enemy {
	alive := Alive(enemies)
	max := s.cfg.Spawner.MaxEnemies
	if alive >= max {
		return enemies
	}

	for i, pt := range s.cfg.Spawner.Points {
		if alive >= max {
			break
		}
		if w.Tick < s.resumeAt[i] || s.occupied(pt, enemies) {
			continue
		}
		e := entity.NewEnemy(s.cfg, pt.X, pt.Y)
		e.DamageScale = s.DamageScale
		e.SyncScreen(w.Scroll)
		enemies = append(enemies, e)
		alive++
		s.resumeAt[i] = w.Tick + s.cfg.Spawner.RespawnDelay
	}
	return enemies
}

func (s *Spawner) occupied(pt config.Point, enemies []*entity.Enemy) bool {
	for _, e := range enemies {
		if !e.IsDead && math.Abs(e.WorldX()-pt.X) < s.cfg.Spawner.Proximity {
			return true
		}
	}
	return false
}
