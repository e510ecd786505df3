// Package world holds the shared state every entity update reads: the
// camera scroll, map bounds, static geometry, loose power-ups, the effect
// manager, session counters, the random source and the sound cue sink.
//
// Gameplay geometry lives in world space. A body's on-screen rectangle is
// its world rectangle shifted left by the camera scroll and is refreshed
// once per tick through Body.SyncScreen.
package world

import (
	"math"
	"math/rand"

	"chosenoffset.com/duskblade/internal/config"
	"chosenoffset.com/duskblade/internal/effects"
	"chosenoffset.com/duskblade/internal/stats"
)

// Cue is a gameplay event with an associated sound.
type Cue int

const (
	CueSlash Cue = iota
	CueMagic
	CueDash
	CueShield
	CueHit
	CuePlayerHurt
	CuePickup
	CueEnemyDeath

	CueCount
)

var cueNames = [...]string{"slash", "magic", "dash", "shield", "hit", "player_hurt", "pickup", "enemy_death"}

func (c Cue) String() string {
	if c >= 0 && c < CueCount {
		return cueNames[c]
	}
	return "unknown"
}

// CueSink receives gameplay cues. Implementations must not block.
type CueSink interface {
	Play(c Cue)
}

// World is the per-session context passed to every subsystem update.
type World struct {
	Cfg *config.Config

	// Scroll is written only by the player update.
	Scroll float64
	// Tick counts simulation steps since the session began.
	Tick int

	Ground    *Ground
	Platforms []*Platform
	PowerUps  []*PowerUp

	Effects *effects.Manager
	Stats   *stats.Tracker
	Rand    *rand.Rand
	Cues    CueSink
}

// New builds the map described by cfg.
func New(cfg *config.Config, rng *rand.Rand) *World {
	w := &World{
		Cfg:     cfg,
		Effects: effects.NewManager(cfg.Effects, rng),
		Stats:   stats.New(),
		Rand:    rng,
	}
	w.Ground = &Ground{Rect: Rect{X: 0, Y: cfg.GroundTop(), W: cfg.SectionWidth(), H: cfg.World.GroundHeight}}
	w.Ground.SyncScreen(0)
	for _, ps := range cfg.World.Platforms {
		w.Platforms = append(w.Platforms, NewPlatform(ps.X, ps.Y, cfg.World.PlatformWidth, cfg.World.PlatformHeight, cfg.World.PlatformInset))
	}
	return w
}

// Reset returns the world to its initial state, keeping the geometry.
func (w *World) Reset() {
	w.Scroll = 0
	w.Tick = 0
	w.PowerUps = nil
	w.Effects.Clear()
	w.Stats.Reset()
	w.SyncStatic()
}

// MapLeft is the smallest legal world x.
func (w *World) MapLeft() float64 { return 0 }

// MapRight is the right edge of the map.
func (w *World) MapRight() float64 { return w.Cfg.SectionWidth() }

// MaxScroll is the largest legal camera scroll.
func (w *World) MaxScroll() float64 { return w.Cfg.MaxScroll() }

// ViewportWidth is the on-screen width.
func (w *World) ViewportWidth() float64 { return float64(w.Cfg.Screen.Width) }

// ClampX keeps a body of the given width fully inside the map.
func (w *World) ClampX(x, width float64) float64 {
	return clamp(x, w.MapLeft(), w.MapRight()-width)
}

// SetScroll moves the camera, clamped to [0, MaxScroll]. It returns the
// scroll change actually applied.
func (w *World) SetScroll(s float64) float64 {
	prev := w.Scroll
	w.Scroll = clamp(s, 0, w.MaxScroll())
	return w.Scroll - prev
}

// ScreenX converts a world x to screen x.
func (w *World) ScreenX(worldX float64) float64 {
	return worldX - w.Scroll
}

// Section returns the index of the viewport-wide slice the camera is in.
func (w *World) Section() int {
	return int(math.Floor(w.Scroll / w.ViewportWidth()))
}

// SectionBounds returns the world x range of a section.
func (w *World) SectionBounds(section int) (left, right float64) {
	vw := w.ViewportWidth()
	return float64(section) * vw, float64(section+1) * vw
}

// Surfaces returns the collision rects of the ground and every platform,
// ground first.
func (w *World) Surfaces() []Rect {
	out := make([]Rect, 0, len(w.Platforms)+1)
	out = append(out, w.Ground.CollisionRect())
	for _, p := range w.Platforms {
		out = append(out, p.CollisionRect())
	}
	return out
}

// DropPowerUp places a new pickup centred on (cx, cy).
func (w *World) DropPowerUp(kind PowerUpKind, cx, cy float64) *PowerUp {
	p := NewPowerUp(kind, cx, cy, w.Cfg.PowerUps)
	p.SyncScreen(w.Scroll)
	w.PowerUps = append(w.PowerUps, p)
	return p
}

// TakePowerUps consumes every live pickup overlapping r and removes it from
// the world. A pickup is returned at most once.
func (w *World) TakePowerUps(r Rect) []*PowerUp {
	var taken []*PowerUp
	kept := w.PowerUps[:0]
	for _, p := range w.PowerUps {
		if !p.Consumed && p.Rect.Overlaps(r) {
			p.Consumed = true
			taken = append(taken, p)
			continue
		}
		if !p.Consumed {
			kept = append(kept, p)
		}
	}
	for i := len(kept); i < len(w.PowerUps); i++ {
		w.PowerUps[i] = nil
	}
	w.PowerUps = kept
	return taken
}

// AnimatePowerUps advances the cosmetic float/pulse of every pickup.
func (w *World) AnimatePowerUps() {
	for _, p := range w.PowerUps {
		p.Animate(w.Cfg.PowerUps)
	}
}

// SyncStatic refreshes the screen rects of ground, platforms and power-ups.
func (w *World) SyncStatic() {
	w.Ground.SyncScreen(w.Scroll)
	for _, p := range w.Platforms {
		p.SyncScreen(w.Scroll)
	}
	for _, p := range w.PowerUps {
		p.SyncScreen(w.Scroll)
	}
}

// Emit forwards a cue to the sink, if any.
func (w *World) Emit(c Cue) {
	if w.Cues != nil {
		w.Cues.Play(c)
	}
}

// Spawn forwards a particle burst to the effect manager.
func (w *World) Spawn(b effects.Burst) {
	w.Effects.Spawn(b)
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
