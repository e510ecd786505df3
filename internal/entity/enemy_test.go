package entity

import (
	"testing"

	"chosenoffset.com/duskblade/internal/anim"
	"chosenoffset.com/duskblade/internal/config"
	"chosenoffset.com/duskblade/internal/world"
)

func isAttack(s anim.State) bool {
	return s == anim.Attacking || s == anim.Attacking2 || s == anim.Attacking3
}

func TestEnemyFallsToGround(t *testing.T) {
	w := newTestWorld(nil)
	p := NewPlayer(w)
	e := NewEnemy(w.Cfg, 1450, 500)

	for i := 0; i < 100; i++ {
		e.Update(w, p)
	}
	if e.Rect.Bottom() != w.Cfg.GroundTop() || e.VelY != 0 {
		t.Errorf("Expected enemy resting on ground, got bottom %.1f vel %.1f", e.Rect.Bottom(), e.VelY)
	}
}

func TestEnemyWalksTowardPlayer(t *testing.T) {
	w := newTestWorld(nil)
	p := NewPlayer(w)
	e := NewEnemy(w.Cfg, 1000, w.Cfg.GroundTop())

	e.Update(w, p)
	if e.Rect.X != 997 || e.Direction != -1 {
		t.Errorf("Expected step left to 997, got %.1f dir %d", e.Rect.X, e.Direction)
	}
	if e.Anim.State != anim.Walking {
		t.Errorf("Expected walking when far, got %s", e.Anim.State)
	}
}

func TestEnemyRunsWhenClose(t *testing.T) {
	w := newTestWorld(nil)
	p := NewPlayer(w)
	e := NewEnemy(w.Cfg, p.Rect.X+150, w.Cfg.GroundTop())

	e.Update(w, p)
	if e.Anim.State != anim.Running {
		t.Errorf("Expected running within 200, got %s", e.Anim.State)
	}
}

func TestEnemyAttackLands(t *testing.T) {
	w := newTestWorld(nil)
	p := groundedPlayer(t, w)
	e := NewEnemy(w.Cfg, p.Rect.X+50, w.Cfg.GroundTop())

	e.Update(w, p)
	if !isAttack(e.Anim.State) {
		t.Fatalf("Expected an attack variant, got %s", e.Anim.State)
	}
	if e.AttackCooldown != 60 {
		t.Errorf("Expected cooldown 60, got %d", e.AttackCooldown)
	}
	if p.Health != 140 {
		t.Errorf("Expected player health 140, got %.1f", p.Health)
	}

	// No second hit until the cooldown runs out
	for i := 0; i < 59; i++ {
		e.Update(w, p)
	}
	if p.Health != 140 {
		t.Errorf("Expected one hit per cooldown, got %.1f", p.Health)
	}
	e.Update(w, p)
	if p.Health != 130 {
		t.Errorf("Expected second hit after 60 ticks, got %.1f", p.Health)
	}
}

func TestEnemyAttackRespectsShield(t *testing.T) {
	w := newTestWorld(nil)
	p := groundedPlayer(t, w)
	p.ShieldActive = true
	e := NewEnemy(w.Cfg, p.Rect.X+50, w.Cfg.GroundTop())

	e.Update(w, p)
	if p.Health != 145 {
		t.Errorf("Expected shielded hit to cost 5, got %.1f", p.Health)
	}
}

func TestEnemyAttackWhiffsVertically(t *testing.T) {
	w := newTestWorld(nil)
	p := groundedPlayer(t, w)
	e := NewEnemy(w.Cfg, p.Rect.X+50, w.Cfg.GroundTop())
	p.Rect.Y = 200

	e.Update(w, p)
	if !isAttack(e.Anim.State) || e.AttackCooldown != 60 {
		t.Fatalf("Expected the attack to start, got %s cooldown %d", e.Anim.State, e.AttackCooldown)
	}
	if p.Health != p.MaxHealth {
		t.Errorf("Expected the attack to miss, got health %.1f", p.Health)
	}
}

func TestEnemyDamageScale(t *testing.T) {
	w := newTestWorld(nil)
	p := groundedPlayer(t, w)
	e := NewEnemy(w.Cfg, p.Rect.X+50, w.Cfg.GroundTop())
	e.DamageScale = 1.5

	e.Update(w, p)
	if p.Health != 135 {
		t.Errorf("Expected 15 damage on hard, got health %.1f", p.Health)
	}
}

func TestEnemyDeathAndRemoval(t *testing.T) {
	w := newTestWorld(nil)
	p := NewPlayer(w)
	e := NewEnemy(w.Cfg, 1000, w.Cfg.GroundTop())

	for i := 0; i < 3; i++ {
		if e.TakeDamage(w, 30) {
			t.Fatalf("Expected hit %d not to kill", i+1)
		}
	}
	if e.Health != 10 {
		t.Fatalf("Expected health 10, got %.1f", e.Health)
	}
	if !e.TakeDamage(w, 10) {
		t.Fatalf("Expected fourth hit to kill")
	}
	if e.Health != 0 || !e.IsDead || e.Anim.State != anim.Death {
		t.Fatalf("Expected dead at 0, got %.1f dead=%v state=%s", e.Health, e.IsDead, e.Anim.State)
	}
	if e.TakeDamage(w, 30) {
		t.Errorf("Expected a dead enemy to ignore damage")
	}

	x := e.Rect.X
	for i := 0; i < 59; i++ {
		e.Update(w, p)
	}
	if e.Done() {
		t.Fatalf("Expected enemy still dying after 59 ticks")
	}
	e.Update(w, p)
	if !e.Done() {
		t.Errorf("Expected enemy done after 60 ticks")
	}
	if e.Rect.X != x {
		t.Errorf("Expected a dead enemy not to move")
	}
}

func TestEnemyClaimKillOnce(t *testing.T) {
	w := newTestWorld(nil)
	e := NewEnemy(w.Cfg, 1000, w.Cfg.GroundTop())
	if _, ok := e.ClaimKill(); ok {
		t.Fatalf("Expected no kill while alive")
	}
	e.TakeDamage(w, 500)
	if pts, ok := e.ClaimKill(); !ok || pts != 50 {
		t.Errorf("Expected 50 points, got %d/%v", pts, ok)
	}
	if _, ok := e.ClaimKill(); ok {
		t.Errorf("Expected kill to be claimed once")
	}
}

func TestEnemyDrop(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Enemy.DropChance = 1
	cfg.Enemy.HealthDropChance = 1
	w := newTestWorld(cfg)
	e := NewEnemy(cfg, 1000, cfg.GroundTop())

	e.TakeDamage(w, 500)
	if len(w.PowerUps) != 1 {
		t.Fatalf("Expected a drop, got %d", len(w.PowerUps))
	}
	pu := w.PowerUps[0]
	if pu.Type != world.PowerUpHealth || pu.Rect.CenterX() != e.Rect.CenterX() {
		t.Errorf("Expected health drop at the enemy centre, got %s at %.1f", pu.Type, pu.Rect.CenterX())
	}
}

func TestEnemyNoDrop(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Enemy.DropChance = 0
	w := newTestWorld(cfg)
	e := NewEnemy(cfg, 1000, cfg.GroundTop())

	e.TakeDamage(w, 500)
	if len(w.PowerUps) != 0 {
		t.Errorf("Expected no drop, got %d", len(w.PowerUps))
	}
}

func TestEnemyHurtFlash(t *testing.T) {
	w := newTestWorld(nil)
	p := NewPlayer(w)
	e := NewEnemy(w.Cfg, 1000, w.Cfg.GroundTop())

	e.TakeDamage(w, 10)
	e.Update(w, p)
	if e.Anim.State != anim.Hurt {
		t.Errorf("Expected hurt after a hit, got %s", e.Anim.State)
	}
	for i := 0; i < 40; i++ {
		e.Update(w, p)
	}
	if e.Anim.State == anim.Hurt {
		t.Errorf("Expected hurt to wear off")
	}
}

func TestEnemyHeadBump(t *testing.T) {
	w := newTestWorld(nil)
	p := NewPlayer(w)
	plat := w.Platforms[2].Rect
	e := NewEnemy(w.Cfg, plat.X, plat.Bottom()+8+w.Cfg.Enemy.Sprite.BodyHeight())
	e.VelY = -20

	e.Update(w, p)
	if e.Rect.Top() != plat.Bottom() || e.VelY != 0 {
		t.Errorf("Expected head bump at %.0f, got top %.1f vel %.1f", plat.Bottom(), e.Rect.Top(), e.VelY)
	}
}

func TestEnemyTrail(t *testing.T) {
	w := newTestWorld(nil)
	p := NewPlayer(w)
	e := NewEnemy(w.Cfg, 2000, w.Cfg.GroundTop())

	for i := 0; i < 20; i++ {
		e.Update(w, p)
	}
	if got := len(e.Trail.Points); got != 3 {
		t.Errorf("Expected 3 trail samples after 20 ticks, got %d", got)
	}
	for i := 0; i < 100; i++ {
		e.Update(w, p)
	}
	if got := len(e.Trail.Points); got != 5 {
		t.Errorf("Expected trail bounded at 5, got %d", got)
	}
}

func TestBodiesSync(t *testing.T) {
	w := newTestWorld(nil)
	p := NewPlayer(w)
	e := NewEnemy(w.Cfg, 1000, w.Cfg.GroundTop())
	w.SetScroll(400)

	world.SyncAll(w.Scroll, p, e, w.Ground)
	if p.Screen.X != p.Rect.X-400 || e.Screen.X != 600 || w.Ground.Screen.X != -400 {
		t.Errorf("Expected screen rects shifted by scroll, got %.0f %.0f %.0f", p.Screen.X, e.Screen.X, w.Ground.Screen.X)
	}
	if p.Kind() != world.KindPlayer || e.Kind() != world.KindEnemy {
		t.Errorf("Unexpected kinds %s %s", p.Kind(), e.Kind())
	}
}

func TestNewEnemyClampsIntoMap(t *testing.T) {
	cfg := config.DefaultConfig()
	right := cfg.SectionWidth() - cfg.Enemy.Sprite.BodyWidth()

	e := NewEnemy(cfg, 3000, cfg.GroundTop())
	if e.WorldX() != right {
		t.Errorf("Expected enemy clamped to %.1f, got %.1f", right, e.WorldX())
	}
	e = NewEnemy(cfg, -50, cfg.GroundTop())
	if e.WorldX() != 0 {
		t.Errorf("Expected enemy clamped to 0, got %.1f", e.WorldX())
	}
}
