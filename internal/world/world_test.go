package world

import (
	"math/rand"
	"testing"

	"chosenoffset.com/duskblade/internal/config"
)

func newTestWorld() *World {
	return New(config.DefaultConfig(), rand.New(rand.NewSource(1)))
}

type cueRecorder struct {
	cues []Cue
}

func (r *cueRecorder) Play(c Cue) { r.cues = append(r.cues, c) }

func TestRectOverlaps(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"inside", Rect{X: 2, Y: 2, W: 2, H: 2}, true},
		{"partial", Rect{X: 5, Y: 5, W: 10, H: 10}, true},
		{"touching right edge", Rect{X: 10, Y: 0, W: 5, H: 5}, false},
		{"touching bottom edge", Rect{X: 0, Y: 10, W: 5, H: 5}, false},
		{"apart", Rect{X: 50, Y: 50, W: 5, H: 5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Overlaps(tt.b); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
			if got := tt.b.Overlaps(a); got != tt.want {
				t.Errorf("Expected symmetric result %v, got %v", tt.want, got)
			}
		})
	}
}

func TestPlatformCollisionRect(t *testing.T) {
	p := NewPlatform(200, 400, 120, 32, 5)
	c := p.CollisionRect()
	if c.Top() != 405 || c.Bottom() != 427 {
		t.Errorf("Expected collision span 405..427, got %.0f..%.0f", c.Top(), c.Bottom())
	}
	if c.Left() != 200 || c.Right() != 320 {
		t.Errorf("Expected full width, got %.0f..%.0f", c.Left(), c.Right())
	}
}

func TestNewWorldLayout(t *testing.T) {
	w := newTestWorld()
	if len(w.Platforms) != 8 {
		t.Errorf("Expected 8 platforms, got %d", len(w.Platforms))
	}
	if w.Ground.Rect.Top() != 536 || w.Ground.Rect.W != 2400 {
		t.Errorf("Expected ground at 536 spanning 2400, got %.0f / %.0f", w.Ground.Rect.Top(), w.Ground.Rect.W)
	}
	if got := len(w.Surfaces()); got != 9 {
		t.Errorf("Expected 9 surfaces, got %d", got)
	}
}

func TestSetScrollClamps(t *testing.T) {
	w := newTestWorld()
	if d := w.SetScroll(-50); d != 0 || w.Scroll != 0 {
		t.Errorf("Expected scroll to stay 0, got %.1f (delta %.1f)", w.Scroll, d)
	}
	w.SetScroll(5000)
	if w.Scroll != 1600 {
		t.Errorf("Expected scroll clamped to 1600, got %.1f", w.Scroll)
	}
	if d := w.SetScroll(1590); d != -10 {
		t.Errorf("Expected delta -10, got %.1f", d)
	}
}

func TestClampX(t *testing.T) {
	w := newTestWorld()
	if got := w.ClampX(-10, 100); got != 0 {
		t.Errorf("Expected 0, got %.1f", got)
	}
	if got := w.ClampX(2350, 100); got != 2300 {
		t.Errorf("Expected 2300, got %.1f", got)
	}
	if got := w.ClampX(500, 100); got != 500 {
		t.Errorf("Expected 500, got %.1f", got)
	}
}

func TestSection(t *testing.T) {
	w := newTestWorld()
	w.SetScroll(799)
	if w.Section() != 0 {
		t.Errorf("Expected section 0, got %d", w.Section())
	}
	w.SetScroll(800)
	if w.Section() != 1 {
		t.Errorf("Expected section 1, got %d", w.Section())
	}
	l, r := w.SectionBounds(1)
	if l != 800 || r != 1600 {
		t.Errorf("Expected 800..1600, got %.0f..%.0f", l, r)
	}
}

func TestTakePowerUpsOnce(t *testing.T) {
	w := newTestWorld()
	w.DropPowerUp(PowerUpHealth, 100, 100)
	w.DropPowerUp(PowerUpMana, 1000, 100)

	body := Rect{X: 80, Y: 80, W: 40, H: 40}
	taken := w.TakePowerUps(body)
	if len(taken) != 1 || taken[0].Type != PowerUpHealth || taken[0].Value != 35 {
		t.Fatalf("Expected the health pickup worth 35, got %v", taken)
	}
	if again := w.TakePowerUps(body); len(again) != 0 {
		t.Errorf("Expected consumed pickup not to be taken twice, got %d", len(again))
	}
	if len(w.PowerUps) != 1 || w.PowerUps[0].Type != PowerUpMana {
		t.Errorf("Expected only the mana pickup to remain")
	}
}

func TestPowerUpSyncScreen(t *testing.T) {
	w := newTestWorld()
	w.SetScroll(300)
	p := w.DropPowerUp(PowerUpMana, 500, 200)
	if p.Screen.CenterX() != 200 {
		t.Errorf("Expected screen centre 200, got %.1f", p.Screen.CenterX())
	}
	if p.Rect.CenterX() != 500 {
		t.Errorf("Expected world centre to stay 500, got %.1f", p.Rect.CenterX())
	}
}

func TestPowerUpPulseStaysInRange(t *testing.T) {
	cfg := config.DefaultConfig().PowerUps
	p := NewPowerUp(PowerUpHealth, 0, 0, cfg)
	for i := 0; i < 500; i++ {
		p.Animate(cfg)
		s := p.PulseScale()
		if s < cfg.PulseMin-cfg.PulseSpeed || s > cfg.PulseMax+cfg.PulseSpeed {
			t.Fatalf("Pulse %.3f left range at tick %d", s, i)
		}
		if off := p.FloatOffset(cfg); off < -cfg.FloatAmplitude || off > cfg.FloatAmplitude {
			t.Fatalf("Float offset %.3f out of amplitude", off)
		}
	}
}

func TestEmitWithoutSink(t *testing.T) {
	w := newTestWorld()
	w.Emit(CueHit)

	rec := &cueRecorder{}
	w.Cues = rec
	w.Emit(CuePickup)
	if len(rec.cues) != 1 || rec.cues[0] != CuePickup {
		t.Errorf("Expected one pickup cue, got %v", rec.cues)
	}
}

func TestReset(t *testing.T) {
	w := newTestWorld()
	w.SetScroll(700)
	w.Tick = 42
	w.DropPowerUp(PowerUpHealth, 10, 10)
	w.Reset()
	if w.Scroll != 0 || w.Tick != 0 || len(w.PowerUps) != 0 {
		t.Errorf("Expected clean world, got scroll %.0f tick %d powerups %d", w.Scroll, w.Tick, len(w.PowerUps))
	}
	if w.Platforms[0].Screen.X != w.Platforms[0].Rect.X {
		t.Errorf("Expected platform screen rect resynced")
	}
}

func TestKindString(t *testing.T) {
	if KindEnemy.String() != "enemy" || Kind(99).String() != "Kind(99)" {
		t.Errorf("Unexpected kind names %q %q", KindEnemy, Kind(99))
	}
	if CueEnemyDeath.String() != "enemy_death" {
		t.Errorf("Expected enemy_death, got %q", CueEnemyDeath)
	}
}
