package entity

import (
	"math"

	"chosenoffset.com/duskblade/internal/anim"
	"chosenoffset.com/duskblade/internal/config"
	"chosenoffset.com/duskblade/internal/effects"
	"chosenoffset.com/duskblade/internal/world"
)

var attackVariants = [...]anim.State{anim.Attacking, anim.Attacking2, anim.Attacking3}

// Enemy is a melee chaser. Rect is in world space.
type Enemy struct {
	cfg *config.EnemyConfig
	tps int

	Rect   world.Rect
	Screen world.Rect
	VelY   float64

	Health, MaxHealth float64
	Direction         int // 1 facing right, -1 facing left
	Anim              anim.Cursor

	AttackCooldown int
	// DamageScale multiplies outgoing damage (difficulty).
	DamageScale float64

	IsDead     bool
	DeathTimer int

	// Trail holds recent screen-space centre points, oldest first.
	Trail *effects.Trail

	trailTimer int
	hurtTimer  int
	scored     bool
}

// NewEnemy creates an enemy whose left edge is at x, clamped into the map,
// and whose bottom edge is at bottom.
func NewEnemy(cfg *config.Config, x, bottom float64) *Enemy {
	ec := &cfg.Enemy
	w, h := ec.Sprite.BodyWidth(), ec.Sprite.BodyHeight()
	x = math.Max(0, math.Min(x, cfg.SectionWidth()-w))
	e := &Enemy{
		cfg:         ec,
		tps:         cfg.Screen.TPS,
		Rect:        world.Rect{X: x, Y: bottom - h, W: w, H: h},
		Health:      ec.MaxHealth,
		MaxHealth:   ec.MaxHealth,
		Direction:   1,
		Anim:        anim.Cursor{State: anim.Idle},
		DamageScale: 1,
		Trail:       effects.NewTrail("enemy", ec.TrailColor, ec.TrailLength),
	}
	e.SyncScreen(0)
	return e
}

// Kind implements world.Body.
func (e *Enemy) Kind() world.Kind { return world.KindEnemy }

// SyncScreen implements world.Body.
func (e *Enemy) SyncScreen(scroll float64) {
	e.Screen = e.Rect.Shift(-scroll, 0)
}

// WorldX returns the authoritative horizontal position.
func (e *Enemy) WorldX() float64 { return e.Rect.X }

// Done reports whether the death animation has finished and the enemy
// should leave every collection.
func (e *Enemy) Done() bool {
	return e.IsDead && e.DeathTimer >= e.cfg.DeathDuration
}

// ClaimKill returns the enemy's point value the first time it is called
// after death.
func (e *Enemy) ClaimKill() (int, bool) {
	if !e.IsDead || e.scored {
		return 0, false
	}
	e.scored = true
	return e.cfg.PointsValue, true
}

// Update advances the enemy one tick.
func (e *Enemy) Update(w *world.World, player *Player) {
	if e.IsDead {
		e.Anim.Set(anim.Death)
		e.DeathTimer++
		e.Anim.Advance(e.cfg.Sprite.Animations, e.tps)
		return
	}

	if e.AttackCooldown > 0 {
		e.AttackCooldown--
	}

	e.VelY += e.cfg.Gravity
	e.Rect.Y += e.VelY
	e.collide(w)

	next, attacked := e.think(w, player)

	if e.hurtTimer > 0 {
		e.hurtTimer--
		if !attacked {
			next = anim.Hurt
		}
	}

	e.SyncScreen(w.Scroll)
	if e.trailTimer >= e.cfg.TrailInterval {
		e.Trail.Append(e.Screen.CenterX(), e.Screen.CenterY())
		e.trailTimer = 0
	}
	e.trailTimer++

	e.Anim.Set(next)
	e.Anim.Advance(e.cfg.Sprite.Animations, e.tps)
}

// collide lands on the ground, and on platforms both lands and bumps its
// head.
func (e *Enemy) collide(w *world.World) {
	if g := w.Ground.CollisionRect(); e.Rect.Overlaps(g) {
		e.Rect.Y = g.Top() - e.Rect.H
		e.VelY = 0
	}
	for _, p := range w.Platforms {
		if !e.Rect.Overlaps(p.Rect) {
			continue
		}
		switch {
		case e.VelY > 0:
			e.Rect.Y = p.Rect.Top() - e.Rect.H
			e.VelY = 0
		case e.VelY < 0:
			e.Rect.Y = p.Rect.Bottom()
			e.VelY = 0
		}
	}
}

// think picks an attack or a step toward the player. The attack animation
// starts on the loose range check; damage needs the tighter one.
func (e *Enemy) think(w *world.World, player *Player) (anim.State, bool) {
	dist := math.Abs(e.Rect.X - player.Rect.X)

	if dist < e.cfg.AttackRange && e.AttackCooldown == 0 {
		state := attackVariants[w.Rand.Intn(len(attackVariants))]
		e.AttackCooldown = e.cfg.AttackCooldown

		dx := math.Abs(e.Rect.CenterX() - player.Rect.CenterX())
		dy := math.Abs(e.Rect.CenterY() - player.Rect.CenterY())
		if dx < e.cfg.AttackRange && dy < e.cfg.HitVerticalRange && !player.IsDead {
			player.TakeDamage(w, e.cfg.AttackDamage*e.DamageScale)
			w.Spawn(effects.Burst{
				X:     w.ScreenX(player.Rect.CenterX()),
				Y:     player.Rect.CenterY(),
				Color: e.cfg.HitColor,
				Count: 5,
				Speed: defaultBurstSpeed,
				Alpha: 160,
				Size:  3,
			})
		}
		return state, true
	}

	right := w.MapRight() - e.Rect.W
	if e.Rect.X < player.Rect.X {
		e.Direction = 1
		if nx := e.Rect.X + e.cfg.Speed; nx <= right {
			e.Rect.X = nx
		}
	} else {
		e.Direction = -1
		if nx := e.Rect.X - e.cfg.Speed; nx >= w.MapLeft() {
			e.Rect.X = nx
		}
	}
	if dist < e.cfg.RunDistance {
		return anim.Running, false
	}
	return anim.Walking, false
}

// TakeDamage subtracts health and reports whether this hit killed the
// enemy. A kill may drop a power-up at the enemy's centre.
func (e *Enemy) TakeDamage(w *world.World, amount float64) bool {
	if e.IsDead || amount <= 0 {
		return false
	}
	e.Health -= amount
	if e.Health > 0 {
		if spec, ok := e.cfg.Sprite.Animations[anim.Hurt]; ok {
			e.hurtTimer = int(math.Ceil(float64(spec.Frames) * spec.DurationTicks(e.tps)))
		}
		return false
	}

	e.Health = 0
	e.IsDead = true
	e.Anim.Set(anim.Death)
	w.Emit(world.CueEnemyDeath)

	if w.Rand.Float64() < e.cfg.DropChance {
		kind := world.PowerUpMana
		if w.Rand.Float64() < e.cfg.HealthDropChance {
			kind = world.PowerUpHealth
		}
		w.DropPowerUp(kind, e.Rect.CenterX(), e.Rect.CenterY())
	}
	return true
}

// HealthRatio returns health as a fraction of max.
func (e *Enemy) HealthRatio() float64 {
	if e.MaxHealth <= 0 {
		return 0
	}
	return e.Health / e.MaxHealth
}
