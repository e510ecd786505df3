package world

import (
	"math"

	"chosenoffset.com/duskblade/internal/config"
)

// PowerUpKind selects which resource a pickup restores.
type PowerUpKind int

const (
	PowerUpHealth PowerUpKind = iota
	PowerUpMana
)

func (k PowerUpKind) String() string {
	if k == PowerUpMana {
		return "mana"
	}
	return "health"
}

// PowerUp is a floating pickup dropped by a dead enemy. Rect is the resting
// position in world space and is what collision uses; the float and pulse
// only affect drawing.
type PowerUp struct {
	Type     PowerUpKind
	Value    float64
	Rect     Rect
	Screen   Rect
	Consumed bool

	floatPhase float64
	pulse      float64
	growing    bool
}

// NewPowerUp centres a pickup on (cx, cy) in world space.
func NewPowerUp(kind PowerUpKind, cx, cy float64, cfg config.PowerUpConfig) *PowerUp {
	value := cfg.HealthValue
	if kind == PowerUpMana {
		value = cfg.ManaValue
	}
	p := &PowerUp{
		Type:    kind,
		Value:   value,
		Rect:    Rect{X: cx - cfg.Size/2, Y: cy - cfg.Size/2, W: cfg.Size, H: cfg.Size},
		pulse:   1,
		growing: true,
	}
	p.SyncScreen(0)
	return p
}

// Kind implements Body.
func (p *PowerUp) Kind() Kind { return KindPowerUp }

// SyncScreen implements Body.
func (p *PowerUp) SyncScreen(scroll float64) {
	p.Screen = p.Rect.Shift(-scroll, 0)
}

// Animate advances the float and pulse phases by one tick.
func (p *PowerUp) Animate(cfg config.PowerUpConfig) {
	p.floatPhase += cfg.FloatSpeed
	if p.growing {
		p.pulse += cfg.PulseSpeed
		if p.pulse >= cfg.PulseMax {
			p.growing = false
		}
	} else {
		p.pulse -= cfg.PulseSpeed
		if p.pulse <= cfg.PulseMin {
			p.growing = true
		}
	}
}

// FloatOffset returns the current vertical draw offset.
func (p *PowerUp) FloatOffset(cfg config.PowerUpConfig) float64 {
	return math.Sin(p.floatPhase) * cfg.FloatAmplitude
}

// PulseScale returns the current draw scale.
func (p *PowerUp) PulseScale() float64 {
	return p.pulse
}

// Color returns the pickup's fill colour.
func (p *PowerUp) Color(cfg config.PowerUpConfig) config.RGB {
	if p.Type == PowerUpMana {
		return cfg.ManaColor
	}
	return cfg.HealthColor
}
