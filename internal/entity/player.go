package entity

import (
	"math"

	"chosenoffset.com/duskblade/internal/anim"
	"chosenoffset.com/duskblade/internal/config"
	"chosenoffset.com/duskblade/internal/effects"
	"chosenoffset.com/duskblade/internal/input"
	"chosenoffset.com/duskblade/internal/stats"
	"chosenoffset.com/duskblade/internal/world"
)

// DashTrail names the effect trail the player leaves while dashing.
const DashTrail = "player_dash"

// Speed of a particle burst when the caller doesn't care.
const defaultBurstSpeed = 2

// Player is the controllable character. Rect is in world space; Rect.X is
// the authoritative world x.
type Player struct {
	cfg   config.PlayerConfig
	tps   int
	scale float64

	Rect   world.Rect
	Screen world.Rect
	VelY   float64

	Health, MaxHealth float64
	Mana, MaxMana     float64

	FacingRight bool
	Anim        anim.Cursor

	Attacking, Casting, Dashing                bool
	AttackCooldown, CastCooldown, DashCooldown int

	ShieldActive   bool
	ShieldTimer    int
	ShieldCooldown int
	ShieldPulse    float64 // Degrees
	ShieldAlpha    int

	IsDead bool

	// Areas of the most recent melee swing and spell, in world space.
	AttackArea world.Rect
	MagicArea  world.Rect
}

// NewPlayer places a fresh player at the configured start and registers
// its dash trail with the world's effect manager.
func NewPlayer(w *world.World) *Player {
	p := &Player{
		cfg:   w.Cfg.Player,
		tps:   w.Cfg.Screen.TPS,
		scale: w.Cfg.Player.Sprite.Scale,
	}
	p.Reset(w)
	return p
}

// Reset restores the player to its starting state.
func (p *Player) Reset(w *world.World) {
	width := p.cfg.Sprite.BodyWidth()
	height := p.cfg.Sprite.BodyHeight()
	start := w.Cfg.World.PlayerStart

	*p = Player{
		cfg:         p.cfg,
		tps:         p.tps,
		scale:       p.scale,
		Rect:        world.Rect{X: w.ClampX(start.X, width), Y: start.Y - height, W: width, H: height},
		Health:      p.cfg.MaxHealth,
		MaxHealth:   p.cfg.MaxHealth,
		Mana:        p.cfg.MaxMana,
		MaxMana:     p.cfg.MaxMana,
		FacingRight: true,
		Anim:        anim.Cursor{State: anim.Idle},
	}
	p.SyncScreen(w.Scroll)
	w.Effects.CreateTrail(DashTrail, p.cfg.MagicColor)
}

// Kind implements world.Body.
func (p *Player) Kind() world.Kind { return world.KindPlayer }

// SyncScreen implements world.Body.
func (p *Player) SyncScreen(scroll float64) {
	p.Screen = p.Rect.Shift(-scroll, 0)
}

// WorldX returns the authoritative horizontal position.
func (p *Player) WorldX() float64 { return p.Rect.X }

// Update advances the player one tick.
func (p *Player) Update(w *world.World, in input.Snapshot, enemies []*Enemy) {
	if p.IsDead {
		p.Anim.Set(anim.Death)
		p.Anim.Advance(p.cfg.Sprite.Animations, p.tps)
		return
	}

	if p.Mana < p.MaxMana {
		p.Mana = math.Min(p.MaxMana, p.Mana+p.cfg.ManaRegen)
	}

	p.Anim.Set(p.selectState(in))
	p.Anim.Advance(p.cfg.Sprite.Animations, p.tps)

	p.tickCooldowns()

	p.VelY += p.cfg.Gravity * p.scale
	p.Rect.Y += p.VelY

	if !p.Attacking && !p.Casting {
		p.move(w, in)
	}
	p.Rect.X = w.ClampX(p.Rect.X, p.Rect.W)

	if in.Pressed(input.Dash) && p.DashCooldown == 0 && !p.Attacking && !p.Casting && p.Mana >= p.cfg.DashCost {
		p.dash(w)
	}

	p.land(w.Surfaces())

	if in.Held(input.Jump) && p.VelY == 0 {
		p.VelY = -p.cfg.JumpImpulse * p.scale
	}

	if in.Pressed(input.Attack) && p.AttackCooldown == 0 && !p.Casting && !p.Dashing {
		p.attack(w, enemies)
	}

	if in.Pressed(input.Magic) && p.CastCooldown == 0 && !p.Attacking && !p.Dashing && p.Mana >= p.cfg.MagicCost {
		p.castMagic(w, enemies)
	}

	if p.Dashing {
		w.Effects.AppendTrail(DashTrail, w.ScreenX(p.Rect.CenterX()), p.Rect.CenterY())
	}

	p.collect(w)
	p.updateShield(w, in)
	p.SyncScreen(w.Scroll)
}

func (p *Player) selectState(in input.Snapshot) anim.State {
	switch {
	case p.Dashing:
		return anim.Dash
	case p.Attacking:
		return anim.Attacking
	case p.Casting:
		return anim.Magic
	case p.VelY != 0:
		return anim.Jumping
	case in.Held(input.Left) || in.Held(input.Right):
		return anim.Running
	default:
		return anim.Idle
	}
}

func (p *Player) tickCooldowns() {
	if p.AttackCooldown > 0 {
		p.AttackCooldown--
		if p.AttackCooldown == 0 {
			p.Attacking = false
		}
	}
	if p.CastCooldown > 0 {
		p.CastCooldown--
		if p.CastCooldown == 0 {
			p.Casting = false
		}
	}
	if p.DashCooldown > 0 {
		p.DashCooldown--
		if p.DashCooldown == 0 {
			p.Dashing = false
		}
	}
}

// move applies horizontal input. Past the scroll thresholds the camera
// absorbs the movement so the player stays put on screen.
func (p *Player) move(w *world.World, in input.Snapshot) {
	speed := p.cfg.Speed * p.scale
	dx := 0.0
	if in.Held(input.Left) {
		dx -= speed
		p.FacingRight = false
	}
	if in.Held(input.Right) {
		dx += speed
		p.FacingRight = true
	}
	if dx == 0 {
		return
	}

	p.Rect.X += dx
	screenCX := w.ScreenX(p.Rect.CenterX())
	vw := w.ViewportWidth()
	switch {
	case screenCX > vw*w.Cfg.World.ScrollRightThreshold && w.Scroll < w.MaxScroll():
		w.SetScroll(w.Scroll + dx)
	case screenCX < vw*w.Cfg.World.ScrollLeftThreshold && w.Scroll > 0:
		w.SetScroll(w.Scroll + dx)
	}
}

func (p *Player) dash(w *world.World) {
	p.Dashing = true
	p.DashCooldown = p.cfg.DashCooldown
	p.Mana -= p.cfg.DashCost

	dist := p.cfg.DashDistance * p.scale
	if !p.FacingRight {
		dist = -dist
	}
	p.Rect.X = w.ClampX(p.Rect.X+dist, p.Rect.W)
	w.Emit(world.CueDash)
}

// land resolves downward collisions only.
func (p *Player) land(surfaces []world.Rect) {
	for _, s := range surfaces {
		if p.VelY > 0 && p.Rect.Overlaps(s) {
			p.Rect.Y = s.Top() - p.Rect.H
			p.VelY = 0
		}
	}
}

// strikeArea returns a w x h rect flush against the facing side, vertically
// centred on the player.
func (p *Player) strikeArea(w, h float64) world.Rect {
	r := world.Rect{Y: p.Rect.CenterY() - h/2, W: w, H: h}
	if p.FacingRight {
		r.X = p.Rect.Right()
	} else {
		r.X = p.Rect.Left() - w
	}
	return r
}

func (p *Player) attack(w *world.World, enemies []*Enemy) {
	p.Attacking = true
	p.AttackCooldown = p.cfg.AttackCooldown

	width := math.Floor(p.cfg.AttackWidth * p.scale)
	height := math.Floor(p.cfg.AttackHeight * p.scale)
	area := p.strikeArea(width, height)
	p.AttackArea = area

	const arcPoints = 8
	startX := w.ScreenX(p.Rect.Right())
	endX := startX + width
	if !p.FacingRight {
		startX = w.ScreenX(p.Rect.Left())
		endX = startX - width
	}
	for i := 0; i < arcPoints; i++ {
		progress := float64(i) / float64(arcPoints-1)
		w.Spawn(effects.Burst{
			X:     startX + (endX-startX)*progress,
			Y:     p.Rect.CenterY() + math.Sin(progress*math.Pi)*20,
			Color: p.cfg.AttackColor,
			Count: 3,
			Speed: 2,
			Alpha: 200,
			Size:  3,
		})
	}
	w.Emit(world.CueSlash)

	hit := false
	for _, e := range enemies {
		if e.IsDead || !area.Overlaps(e.Rect) {
			continue
		}
		e.TakeDamage(w, p.cfg.AttackDamage)
		hit = true
		cx, cy := w.ScreenX(e.Rect.CenterX()), e.Rect.CenterY()
		for i := 0; i < 3; i++ {
			w.Spawn(effects.Burst{
				X:     cx + float64(w.Rand.Intn(31)-15),
				Y:     cy + float64(w.Rand.Intn(31)-15),
				Color: p.cfg.AttackColor,
				Count: 12,
				Speed: 6,
				Alpha: 230,
				Size:  5,
			})
		}
	}
	if hit {
		w.Emit(world.CueHit)
	}
}

func (p *Player) castMagic(w *world.World, enemies []*Enemy) {
	p.Casting = true
	p.CastCooldown = p.cfg.MagicCooldown
	p.Mana -= p.cfg.MagicCost

	width := math.Floor(p.cfg.MagicWidth * p.scale)
	height := math.Floor(p.cfg.MagicHeight * p.scale)
	area := p.strikeArea(width, height)
	p.MagicArea = area

	const spokes, radius = 12, 30
	cx, cy := w.ScreenX(area.CenterX()), area.CenterY()
	for i := 0; i < spokes; i++ {
		angle := float64(i) / spokes * 2 * math.Pi
		for r := 0; r < radius; r += 5 {
			w.Spawn(effects.Burst{
				X:     cx + math.Cos(angle)*float64(r),
				Y:     cy + math.Sin(angle)*float64(r),
				Color: p.cfg.MagicColor,
				Count: 2,
				Speed: 3,
				Alpha: 200,
				Size:  4,
			})
		}
	}
	w.Emit(world.CueMagic)

	bright := p.cfg.MagicColor.Brighten(50)
	hit := false
	for _, e := range enemies {
		if e.IsDead || !area.Overlaps(e.Rect) {
			continue
		}
		e.TakeDamage(w, p.cfg.MagicDamage)
		hit = true
		ex, ey := w.ScreenX(e.Rect.CenterX()), e.Rect.CenterY()
		for i := 0; i < 3; i++ {
			w.Spawn(effects.Burst{X: ex, Y: ey, Color: p.cfg.MagicColor, Count: 15, Speed: 7, Alpha: 230, Size: 6})
			w.Spawn(effects.Burst{X: ex, Y: ey, Color: bright, Count: 10, Speed: 5, Alpha: 180, Size: 4})
		}
	}
	if hit {
		w.Emit(world.CueHit)
	}
}

func (p *Player) collect(w *world.World) {
	for _, pu := range w.TakePowerUps(p.Rect) {
		clr := p.cfg.HealColor
		switch pu.Type {
		case world.PowerUpHealth:
			p.Health = math.Min(p.MaxHealth, p.Health+pu.Value)
			w.Stats.Add(stats.HealthPickups, 1)
		case world.PowerUpMana:
			p.Mana = math.Min(p.MaxMana, p.Mana+pu.Value)
			w.Stats.Add(stats.ManaPickups, 1)
			clr = p.cfg.ManaColor
		}
		w.Spawn(effects.Burst{
			X:     w.ScreenX(p.Rect.CenterX()),
			Y:     p.Rect.CenterY(),
			Color: clr,
			Count: 5,
			Speed: defaultBurstSpeed,
			Alpha: 160,
			Size:  3,
		})
		w.Emit(world.CuePickup)
	}
}

func (p *Player) updateShield(w *world.World, in input.Snapshot) {
	if p.ShieldCooldown > 0 {
		p.ShieldCooldown--
	}

	if p.ShieldActive {
		p.ShieldTimer--
		p.ShieldPulse = math.Mod(p.ShieldPulse+p.cfg.ShieldPulseSpeed, 360)
		pulse := math.Abs(math.Sin(p.ShieldPulse * math.Pi / 180))
		p.ShieldAlpha = int(60 + 40*pulse)

		if p.ShieldTimer <= 0 {
			p.ShieldActive = false
			p.ShieldTimer = 0
			p.ShieldCooldown = p.cfg.ShieldCooldown
		} else if w.Rand.Float64() < p.cfg.ShieldAuraChance {
			angle := w.Rand.Float64() * 2 * math.Pi
			w.Spawn(effects.Burst{
				X:     w.ScreenX(p.Rect.CenterX()) + math.Cos(angle)*p.cfg.ShieldRadius,
				Y:     p.Rect.CenterY() + math.Sin(angle)*p.cfg.ShieldRadius,
				Color: p.cfg.ShieldParticleColor,
				Count: 2,
				Speed: 1.5,
				Alpha: 150,
				Size:  3,
			})
		}
	}

	if in.Pressed(input.Shield) && !p.ShieldActive && p.ShieldCooldown == 0 && p.Mana >= p.cfg.ShieldCost {
		p.ShieldActive = true
		p.ShieldTimer = p.cfg.ShieldDuration
		p.Mana -= p.cfg.ShieldCost
		for i := 0; i < 20; i++ {
			w.Spawn(effects.Burst{
				X:     w.ScreenX(p.Rect.CenterX()),
				Y:     p.Rect.CenterY(),
				Color: p.cfg.ShieldParticleColor,
				Count: 1,
				Speed: 2 + w.Rand.Float64()*2,
				Alpha: 180,
				Size:  3,
			})
		}
		w.Emit(world.CueShield)
	}
}

// TakeDamage applies incoming damage, halved (floored) while the shield is
// up. Health never drops below zero; reaching zero kills the player.
func (p *Player) TakeDamage(w *world.World, amount float64) {
	if p.IsDead || amount <= 0 {
		return
	}
	if p.ShieldActive {
		reduced := math.Floor(amount * (1 - p.cfg.ShieldDamageReduction))
		w.Stats.Add(stats.DamageBlocked, int(amount-reduced))
		amount = reduced
		w.Spawn(effects.Burst{
			X:     w.ScreenX(p.Rect.CenterX()),
			Y:     p.Rect.CenterY(),
			Color: p.cfg.ShieldParticleColor,
			Count: 8,
			Speed: defaultBurstSpeed,
			Alpha: 150,
			Size:  2,
		})
	}

	p.Health -= amount
	w.Stats.Add(stats.DamageTaken, int(amount))
	w.Emit(world.CuePlayerHurt)
	if p.Health <= 0 {
		p.Health = 0
		p.IsDead = true
		p.Anim.Set(anim.Death)
	}
}

// ShieldRadius returns the configured aura radius.
func (p *Player) ShieldRadius() float64 {
	return p.cfg.ShieldRadius
}

// ShieldColor returns the aura colour.
func (p *Player) ShieldColor() config.RGB {
	return p.cfg.ShieldColor
}

// AttackColor and MagicColor tint the ability overlays.
func (p *Player) AttackColor() config.RGB { return p.cfg.AttackColor }
func (p *Player) MagicColor() config.RGB  { return p.cfg.MagicColor }
