package effects

import (
	"math"
	"math/rand"
	"testing"

	"chosenoffset.com/duskblade/internal/config"
	"chosenoffset.com/duskblade/internal/render/rendertest"
)

func newTestManager() *Manager {
	return NewManager(config.DefaultConfig().Effects, rand.New(rand.NewSource(1)))
}

func TestSpawnDefaults(t *testing.T) {
	m := newTestManager()
	base := config.RGB{100, 100, 100}
	m.Spawn(Burst{X: 10, Y: 20, Color: base, Count: 50, Speed: 3, Alpha: 300, Size: 4})

	ps := m.Particles()
	if len(ps) != 50 {
		t.Fatalf("Expected 50 particles, got %d", len(ps))
	}
	for _, p := range ps {
		if p.Alpha != 250 {
			t.Errorf("Expected alpha capped at 250, got %d", p.Alpha)
		}
		if p.Lifetime < 6 || p.Lifetime > 10 {
			t.Errorf("Expected lifetime in [6,10], got %d", p.Lifetime)
		}
		if p.Lifetime != p.MaxLifetime {
			t.Errorf("Expected lifetime to equal max lifetime at spawn")
		}
		if math.Abs(p.GlowSize-2*p.Size) > 1e-9 {
			t.Errorf("Expected glow 2x size, got %.2f for %.2f", p.GlowSize, p.Size)
		}
		if speed := math.Hypot(p.DX, p.DY); math.Abs(speed-3) > 1e-9 {
			t.Errorf("Expected speed 3, got %.4f", speed)
		}
		for i, c := range p.Color {
			if d := int(c) - int(base[i]); d < -20 || d > 20 {
				t.Errorf("Expected colour jitter within 20, got %d", d)
			}
		}
	}
}

func TestSpawnColorClamped(t *testing.T) {
	m := newTestManager()
	m.Spawn(Burst{Color: config.RGB{255, 0, 250}, Count: 100, Alpha: 200, Size: 2})
	for _, p := range m.Particles() {
		if p.Color[0] < 235 || p.Color[1] > 20 || p.Color[2] < 230 {
			t.Errorf("Expected clamped jitter, got %v", p.Color)
		}
	}
}

func TestSpawnExplicitLifetime(t *testing.T) {
	m := newTestManager()
	m.Spawn(Burst{Count: 5, Alpha: 200, Size: 2, Lifetime: 40})
	for _, p := range m.Particles() {
		if p.Lifetime != 40 {
			t.Errorf("Expected lifetime 40, got %d", p.Lifetime)
		}
	}
}

func TestTickFadesAndShrinks(t *testing.T) {
	m := newTestManager()
	m.particles = append(m.particles, Particle{
		X: 0, Y: 0, DX: 1, DY: 2,
		Alpha: 255, Size: 10, OriginalSize: 10, GlowSize: 20,
		Lifetime: 100, MaxLifetime: 100,
	})
	m.Tick()

	p := m.Particles()[0]
	if p.X != 1 || p.Y != 2 {
		t.Errorf("Expected position (1,2), got (%.2f,%.2f)", p.X, p.Y)
	}
	if p.Lifetime != 99 {
		t.Errorf("Expected lifetime 99, got %d", p.Lifetime)
	}
	ratio := 0.99
	if want := int(255 * (0.7 + 0.3*ratio)); p.Alpha != want {
		t.Errorf("Expected alpha %d, got %d", want, p.Alpha)
	}
	if want := 10 * (0.3 + 0.7*ratio); math.Abs(p.Size-want) > 1e-9 {
		t.Errorf("Expected size %.4f, got %.4f", want, p.Size)
	}
	if math.Abs(p.DX-1) > 0.1+1e-9 || math.Abs(p.DY-2) > 0.1+1e-9 {
		t.Errorf("Expected velocity jitter within 0.1, got (%.3f,%.3f)", p.DX, p.DY)
	}
}

func TestTickRemovesExpired(t *testing.T) {
	m := newTestManager()
	m.particles = append(m.particles,
		Particle{Alpha: 255, Size: 1, OriginalSize: 1, Lifetime: 1, MaxLifetime: 10},
		Particle{Alpha: 31, Size: 1, OriginalSize: 1, Lifetime: 5, MaxLifetime: 10},
		Particle{Alpha: 255, Size: 1, OriginalSize: 1, Lifetime: 50, MaxLifetime: 50},
	)
	m.Tick()

	if got := len(m.Particles()); got != 1 {
		t.Fatalf("Expected 1 surviving particle, got %d", got)
	}
	if m.Particles()[0].MaxLifetime != 50 {
		t.Errorf("Expected the long-lived particle to survive")
	}
}

func TestParticlesEventuallyExpire(t *testing.T) {
	m := newTestManager()
	m.Spawn(Burst{Count: 30, Speed: 2, Alpha: 250, Size: 5})
	for i := 0; i < 10; i++ {
		m.Tick()
	}
	if got := len(m.Particles()); got != 0 {
		t.Errorf("Expected every particle gone after max lifetime, got %d", got)
	}
}

func TestTrailBounded(t *testing.T) {
	m := newTestManager()
	m.CreateTrail("slash", config.RGB{1, 2, 3})
	for i := 0; i < 5; i++ {
		if !m.AppendTrail("slash", float64(i), 0) {
			t.Fatalf("Expected append to existing trail to succeed")
		}
	}
	tr, ok := m.Trail("slash")
	if !ok {
		t.Fatal("Expected trail to exist")
	}
	if len(tr.Points) != 3 {
		t.Fatalf("Expected 3 points, got %d", len(tr.Points))
	}
	if tr.Points[0].X != 2 || tr.Points[2].X != 4 {
		t.Errorf("Expected oldest points evicted, got %v", tr.Points)
	}
	if m.AppendTrail("missing", 0, 0) {
		t.Errorf("Expected append to unknown trail to fail")
	}
}

func TestClear(t *testing.T) {
	m := newTestManager()
	m.Spawn(Burst{Count: 4, Alpha: 200, Size: 2})
	m.CreateTrail("a", config.RGB{})
	m.AppendTrail("a", 1, 1)
	m.Clear()
	if len(m.Particles()) != 0 {
		t.Errorf("Expected no particles after clear")
	}
	if tr, _ := m.Trail("a"); len(tr.Points) != 0 {
		t.Errorf("Expected empty trail after clear")
	}
}

func TestDraw(t *testing.T) {
	m := newTestManager()
	m.Spawn(Burst{Count: 3, Alpha: 200, Size: 2})
	m.CreateTrail("a", config.RGB{})
	m.AppendTrail("a", 0, 0)
	m.AppendTrail("a", 1, 1)
	m.AppendTrail("a", 2, 2)

	r := rendertest.NewRenderer()
	m.Draw(r, rendertest.NewImage(10, 10))
	if r.Circles != 6 {
		t.Errorf("Expected 6 circles (glow+core per particle), got %d", r.Circles)
	}
	if r.Lines != 2 {
		t.Errorf("Expected 2 trail segments, got %d", r.Lines)
	}
}
