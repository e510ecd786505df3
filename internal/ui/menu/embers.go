package menu

import (
	"image/color"
	"math/rand"

	"chosenoffset.com/duskblade/internal/render"
)

type ember struct {
	x, y  float64
	size  float64
	speed float64
	alpha uint8
	red   uint8
}

// Embers is the falling red particle backdrop behind every menu screen.
type Embers struct {
	width, height float64
	rng           *rand.Rand
	list          []ember
}

// NewEmbers scatters count embers over a w×h screen
func NewEmbers(count, w, h int, maxAlpha int, rng *rand.Rand) *Embers {
	e := &Embers{width: float64(w), height: float64(h), rng: rng}
	for i := 0; i < count; i++ {
		e.list = append(e.list, ember{
			x:     rng.Float64() * e.width,
			y:     rng.Float64() * e.height,
			size:  float64(1 + rng.Intn(2)),
			speed: 0.8 + rng.Float64()*1.2,
			alpha: uint8(30 + rng.Intn(maxAlpha-30+1)),
			red:   uint8(180 + rng.Intn(41)),
		})
	}
	return e
}

// Update drops every ember and wraps the ones that leave the bottom
func (e *Embers) Update() {
	for i := range e.list {
		p := &e.list[i]
		p.y += p.speed
		if p.y > e.height {
			p.y = 0
			p.x = e.rng.Float64() * e.width
		}
	}
}

// Draw renders each ember with a faint glow twice its size
func (e *Embers) Draw(r render.Renderer, dst render.Image) {
	for _, p := range e.list {
		glow := color.NRGBA{R: p.red, G: 40, B: 40, A: p.alpha / 3}
		core := color.NRGBA{R: p.red, G: 40, B: 40, A: p.alpha}
		r.FillCircle(dst, float32(p.x), float32(p.y), float32(p.size*2), glow)
		r.FillCircle(dst, float32(p.x), float32(p.y), float32(p.size), core)
	}
}

// Len returns the ember count
func (e *Embers) Len() int { return len(e.list) }
