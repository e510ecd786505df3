package spawner

import (
	"math/rand"
	"testing"

	"chosenoffset.com/duskblade/internal/config"
	"chosenoffset.com/duskblade/internal/entity"
	"chosenoffset.com/duskblade/internal/world"
)

func setup() (*config.Config, *world.World, *Spawner) {
	cfg := config.DefaultConfig()
	w := world.New(cfg, rand.New(rand.NewSource(3)))
	return cfg, w, New(cfg)
}

func TestInitialSpawn(t *testing.T) {
	_, w, s := setup()
	enemies := s.Update(w, nil)
	if len(enemies) != 2 {
		t.Fatalf("Expected one enemy per spawn point, got %d", len(enemies))
	}
	if enemies[0].WorldX() != 450 || enemies[1].WorldX() != 1450 {
		t.Errorf("Expected enemies at 450 and 1450, got %.0f and %.0f", enemies[0].WorldX(), enemies[1].WorldX())
	}
	if s.ResumeAt(0) != 1800 {
		t.Errorf("Expected resume at 1800, got %d", s.ResumeAt(0))
	}
}

func TestNoSpawnAtCap(t *testing.T) {
	cfg, w, s := setup()
	enemies := []*entity.Enemy{
		entity.NewEnemy(cfg, 100, 536),
		entity.NewEnemy(cfg, 800, 536),
		entity.NewEnemy(cfg, 2000, 536),
	}
	w.Tick = 100000

	got := s.Update(w, enemies)
	if len(got) != 3 {
		t.Errorf("Expected no spawn with 3 alive, got %d enemies", len(got))
	}
}

func TestCapHonouredWithinOneUpdate(t *testing.T) {
	cfg, w, s := setup()
	enemies := []*entity.Enemy{
		entity.NewEnemy(cfg, 100, 536),
		entity.NewEnemy(cfg, 800, 536),
	}
	got := s.Update(w, enemies)
	if Alive(got) != 3 {
		t.Errorf("Expected the population to stop at 3, got %d", Alive(got))
	}
}

func TestRespawnDelay(t *testing.T) {
	_, w, s := setup()
	enemies := s.Update(w, nil)

	// Clear the first point
	enemies[0].TakeDamage(w, 1000)

	w.Tick = 1799
	enemies = s.Update(w, enemies)
	if len(enemies) != 2 {
		t.Fatalf("Expected no respawn before the delay, got %d", len(enemies))
	}

	w.Tick = 1800
	enemies = s.Update(w, enemies)
	if len(enemies) != 3 {
		t.Fatalf("Expected a respawn at the delay, got %d", len(enemies))
	}
	if enemies[2].WorldX() != 450 {
		t.Errorf("Expected respawn at 450, got %.0f", enemies[2].WorldX())
	}
	if s.ResumeAt(0) != 3600 {
		t.Errorf("Expected next resume at 3600, got %d", s.ResumeAt(0))
	}
}

func TestOccupiedPointSkipped(t *testing.T) {
	cfg, w, s := setup()
	enemies := []*entity.Enemy{entity.NewEnemy(cfg, 470, 536)}

	got := s.Update(w, enemies)
	if len(got) != 2 || got[1].WorldX() != 1450 {
		t.Errorf("Expected only the free point to spawn, got %d enemies", len(got))
	}
	if s.ResumeAt(0) != 0 {
		t.Errorf("Expected the occupied point's timer untouched, got %d", s.ResumeAt(0))
	}
}

func TestDamageScaleApplied(t *testing.T) {
	_, w, s := setup()
	s.DamageScale = 0.5
	for _, e := range s.Update(w, nil) {
		if e.DamageScale != 0.5 {
			t.Errorf("Expected damage scale 0.5, got %.2f", e.DamageScale)
		}
	}
}

func TestReset(t *testing.T) {
	_, w, s := setup()
	s.Update(w, nil)
	s.Reset()
	if s.ResumeAt(0) != 0 || s.ResumeAt(1) != 0 {
		t.Errorf("Expected timers cleared")
	}
}
