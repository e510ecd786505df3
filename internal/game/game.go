package game

import (
	"math/rand"

	"chosenoffset.com/duskblade/internal/config"
	"chosenoffset.com/duskblade/internal/entity"
	"chosenoffset.com/duskblade/internal/input"
	"chosenoffset.com/duskblade/internal/render"
	"chosenoffset.com/duskblade/internal/spawner"
	"chosenoffset.com/duskblade/internal/sprites"
	"chosenoffset.com/duskblade/internal/ui/hud"
	"chosenoffset.com/duskblade/internal/world"
)

// Session is one run of the game: the world, the player, the living and
// dying enemies, and the overlays that track them.
type Session struct {
	Cfg      *config.Config
	Renderer render.Renderer
	Sprites  *sprites.Library

	World   *world.World
	Player  *entity.Player
	Enemies []*entity.Enemy
	Spawner *spawner.Spawner
	HUD     *hud.HUD

	// Cleared is true when no living enemy is in the camera's section.
	Cleared bool
}

// NewSession builds a fresh session. lib may be nil when nothing is drawn.
func NewSession(cfg *config.Config, r render.Renderer, lib *sprites.Library, rng *rand.Rand) *Session {
	w := world.New(cfg, rng)
	s := &Session{
		Cfg:      cfg,
		Renderer: r,
		Sprites:  lib,
		World:    w,
		Player:   entity.NewPlayer(w),
		Spawner:  spawner.New(cfg),
		HUD:      hud.New(r, cfg),
	}
	return s
}

// Reset restores the session to its starting state. The damage scale and
// cue sink survive.
func (s *Session) Reset() {
	s.World.Reset()
	s.Player.Reset(s.World)
	s.Enemies = nil
	s.Spawner.Reset()
	s.HUD.Reset()
	s.Cleared = false
}

// SetCueSink routes gameplay cues to c.
func (s *Session) SetCueSink(c world.CueSink) {
	s.World.Cues = c
}

// SetDamageScale applies a difficulty multiplier to current and future
// enemies.
func (s *Session) SetDamageScale(scale float64) {
	s.Spawner.DamageScale = scale
	for _, e := range s.Enemies {
		e.DamageScale = scale
	}
}

// Update runs one tick. It returns true once the player has died.
func (s *Session) Update(in input.Snapshot) bool {
	w := s.World

	s.Player.Update(w, in, s.Enemies)

	for _, e := range s.Enemies {
		e.Update(w, s.Player)
	}
	s.removeFinished()

	s.sync()

	s.Enemies = s.Spawner.Update(w, s.Enemies)

	w.Effects.Tick()
	w.AnimatePowerUps()

	s.Cleared = s.SectionCleared()
	s.HUD.Update(s.Cleared)

	w.Tick++
	return s.GameOver()
}

// GameOver reports whether the player's health is gone.
func (s *Session) GameOver() bool {
	return s.Player.Health <= 0
}

// removeFinished scores newly dead enemies and drops the ones whose death
// animation has ended.
func (s *Session) removeFinished() {
	kept := s.Enemies[:0]
	for _, e := range s.Enemies {
		if points, ok := e.ClaimKill(); ok {
			s.World.Stats.RecordKill(points)
		}
		if !e.Done() {
			kept = append(kept, e)
		}
	}
	for i := len(kept); i < len(s.Enemies); i++ {
		s.Enemies[i] = nil
	}
	s.Enemies = kept
}

func (s *Session) sync() {
	bodies := make([]world.Body, 0, len(s.Enemies)+1)
	bodies = append(bodies, s.Player)
	for _, e := range s.Enemies {
		bodies = append(bodies, e)
	}
	world.SyncAll(s.World.Scroll, bodies...)
	s.World.SyncStatic()
}

// SectionCleared reports whether no living enemy stands in the section the
// camera is in.
func (s *Session) SectionCleared() bool {
	left, right := s.World.SectionBounds(s.World.Section())
	for _, e := range s.Enemies {
		if e.IsDead {
			continue
		}
		if x := e.WorldX(); x >= left && x <= right {
			return false
		}
	}
	return true
}

// Status returns the values the HUD bars show.
func (s *Session) Status() hud.Status {
	return hud.Status{
		Health:    s.Player.Health,
		MaxHealth: s.Player.MaxHealth,
		Mana:      s.Player.Mana,
		MaxMana:   s.Player.MaxMana,
	}
}
