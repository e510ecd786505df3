package effects

import (
	"chosenoffset.com/duskblade/internal/config"
	"chosenoffset.com/duskblade/internal/render"
)

// Draw renders every particle as a glow halo under a solid core, then every
// trail as connected segments that fade and thin toward the tail.
func (m *Manager) Draw(r render.Renderer, dst render.Image) {
	for _, t := range m.Trails() {
		DrawTrail(r, dst, t.Points, t.Color, t.Alpha, 4)
	}
	for i := range m.particles {
		p := &m.particles[i]
		if p.Alpha <= 0 {
			continue
		}
		r.FillCircle(dst, float32(p.X), float32(p.Y), float32(p.GlowSize), p.Color.WithAlpha(uint8(p.Alpha/3)))
		r.FillCircle(dst, float32(p.X), float32(p.Y), float32(p.Size), p.Color.WithAlpha(uint8(p.Alpha)))
	}
}

// DrawTrail draws points oldest first. Segment i of n gets alpha and width
// proportional to (i+1)/n so the newest segment is the brightest and widest.
func DrawTrail(r render.Renderer, dst render.Image, points []Point, clr config.RGB, alpha int, maxWidth float32) {
	n := len(points) - 1
	if n < 1 {
		return
	}
	for i := 0; i < n; i++ {
		ratio := float64(i+1) / float64(n)
		a := uint8(float64(alpha) * ratio)
		w := maxWidth * float32(ratio)
		if w < 1 {
			w = 1
		}
		from, to := points[i], points[i+1]
		r.StrokeLine(dst, float32(from.X), float32(from.Y), float32(to.X), float32(to.Y), w, clr.WithAlpha(a))
	}
}
