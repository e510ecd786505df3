// Package effects owns the transient visual feedback of the game: short
// lived particles spawned by hits and abilities, and named trails that keep a
// bounded history of recent positions. Both live in screen space.
package effects

import (
	"math"
	"math/rand"
	"sort"

	"chosenoffset.com/duskblade/internal/config"
)

// Particle is a single glowing dot.
type Particle struct {
	X, Y         float64
	DX, DY       float64
	Color        config.RGB
	Alpha        int
	Size         float64
	OriginalSize float64
	GlowSize     float64
	Lifetime     int // Ticks remaining
	MaxLifetime  int
}

// LifeRatio returns the remaining fraction of the particle's life.
func (p *Particle) LifeRatio() float64 {
	if p.MaxLifetime <= 0 {
		return 0
	}
	return float64(p.Lifetime) / float64(p.MaxLifetime)
}

// Point is a screen-space position.
type Point struct {
	X, Y float64
}

// Trail is a bounded history of positions, oldest first.
type Trail struct {
	Name      string
	Color     config.RGB
	Alpha     int
	MaxLength int
	Points    []Point
}

// NewTrail creates an empty trail that keeps at most maxLength points.
func NewTrail(name string, color config.RGB, maxLength int) *Trail {
	if maxLength < 1 {
		maxLength = 1
	}
	return &Trail{
		Name:      name,
		Color:     color,
		Alpha:     255,
		MaxLength: maxLength,
		Points:    make([]Point, 0, maxLength+1),
	}
}

// Append pushes a position and drops the oldest beyond the bound.
func (t *Trail) Append(x, y float64) {
	t.Points = append(t.Points, Point{X: x, Y: y})
	if over := len(t.Points) - t.MaxLength; over > 0 {
		t.Points = append(t.Points[:0], t.Points[over:]...)
	}
}

// Reset forgets every point.
func (t *Trail) Reset() {
	t.Points = t.Points[:0]
}

// Burst describes one spawn_particles call. A zero Lifetime picks a random
// lifetime per particle.
type Burst struct {
	X, Y     float64
	Color    config.RGB
	Count    int
	Speed    float64
	Alpha    int
	Size     float64
	Lifetime int
}

// Manager owns all live particles and trails.
type Manager struct {
	cfg       config.EffectsConfig
	rng       *rand.Rand
	particles []Particle
	trails    map[string]*Trail
}

// NewManager creates an empty effect manager.
func NewManager(cfg config.EffectsConfig, rng *rand.Rand) *Manager {
	return &Manager{
		cfg:    cfg,
		rng:    rng,
		trails: make(map[string]*Trail),
	}
}

// Spawn creates b.Count particles flying out at uniformly random angles.
func (m *Manager) Spawn(b Burst) {
	alpha := b.Alpha
	if limit := int(m.cfg.AlphaCap); alpha > limit {
		alpha = limit
	}

	for i := 0; i < b.Count; i++ {
		angle := m.rng.Float64() * 2 * math.Pi

		lifetime := b.Lifetime
		if lifetime <= 0 {
			lifetime = m.cfg.LifetimeMin + m.rng.Intn(m.cfg.LifetimeMax-m.cfg.LifetimeMin+1)
		}

		size := b.Size * (1 - m.cfg.SizeJitter + m.rng.Float64()*2*m.cfg.SizeJitter)

		m.particles = append(m.particles, Particle{
			X:            b.X,
			Y:            b.Y,
			DX:           math.Cos(angle) * b.Speed,
			DY:           math.Sin(angle) * b.Speed,
			Color:        m.jitterColor(b.Color),
			Alpha:        alpha,
			Size:         size,
			OriginalSize: size,
			GlowSize:     size * 2,
			Lifetime:     lifetime,
			MaxLifetime:  lifetime,
		})
	}
}

func (m *Manager) jitterColor(c config.RGB) config.RGB {
	j := m.cfg.ColorJitter
	var out config.RGB
	for i, v := range c {
		n := int(v) + m.rng.Intn(2*j+1) - j
		if n < 0 {
			n = 0
		} else if n > 255 {
			n = 255
		}
		out[i] = uint8(n)
	}
	return out
}

// Tick advances every particle one step and drops the expired ones.
func (m *Manager) Tick() {
	live := m.particles[:0]
	for _, p := range m.particles {
		p.X += p.DX
		p.Y += p.DY
		p.Lifetime--

		ratio := p.LifeRatio()
		p.Alpha = int(float64(p.Alpha) * (0.7 + 0.3*ratio))
		p.Size = p.OriginalSize * (0.3 + 0.7*ratio)
		p.GlowSize = p.Size * (1.5 + ratio)

		p.DX += (m.rng.Float64()*2 - 1) * m.cfg.VelocityJitter
		p.DY += (m.rng.Float64()*2 - 1) * m.cfg.VelocityJitter

		if p.Lifetime <= 0 || float64(p.Alpha) < m.cfg.MinAlpha {
			continue
		}
		live = append(live, p)
	}
	// Clear the tail so dropped particles don't linger in the backing array
	for i := len(live); i < len(m.particles); i++ {
		m.particles[i] = Particle{}
	}
	m.particles = live
}

// Particles returns the live particles. The slice is owned by the manager.
func (m *Manager) Particles() []Particle {
	return m.particles
}

// CreateTrail registers (or resets) a named trail.
func (m *Manager) CreateTrail(name string, color config.RGB) *Trail {
	t := NewTrail(name, color, m.cfg.TrailLength)
	m.trails[name] = t
	return t
}

// AppendTrail pushes a point onto a named trail. It reports false when the
// trail does not exist.
func (m *Manager) AppendTrail(name string, x, y float64) bool {
	t, ok := m.trails[name]
	if !ok {
		return false
	}
	t.Append(x, y)
	return true
}

// Trail looks up a named trail.
func (m *Manager) Trail(name string) (*Trail, bool) {
	t, ok := m.trails[name]
	return t, ok
}

// Trails returns all trails sorted by name.
func (m *Manager) Trails() []*Trail {
	out := make([]*Trail, 0, len(m.trails))
	for _, t := range m.trails {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Clear drops every particle and empties every trail.
func (m *Manager) Clear() {
	m.particles = m.particles[:0]
	for _, t := range m.trails {
		t.Reset()
	}
}
