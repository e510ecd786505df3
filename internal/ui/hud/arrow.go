package hud

import (
	"image/color"

	"chosenoffset.com/duskblade/internal/render"
)

// Arrow pulse range
const (
	arrowMinScale = 0.7
	arrowMaxScale = 1.0
	arrowStep     = 0.05
	arrowWidth    = 40
	arrowHeight   = 30
)

var arrowColor = color.RGBA{255, 220, 0, 255}

// Arrow is the pulsing right-pointing hint shown once a section is clear.
type Arrow struct {
	scale   float64
	growing bool
}

// NewArrow creates an arrow at its smallest scale.
func NewArrow() *Arrow {
	a := &Arrow{}
	a.Reset()
	return a
}

// Reset returns the pulse to its smallest scale, growing.
func (a *Arrow) Reset() {
	a.scale = arrowMinScale
	a.growing = true
}

// Scale returns the current pulse scale.
func (a *Arrow) Scale() float64 { return a.scale }

// Update steps the pulse, reversing at either end.
func (a *Arrow) Update() {
	if a.growing {
		a.scale += arrowStep
		if a.scale >= arrowMaxScale {
			a.scale = arrowMaxScale
			a.growing = false
		}
	} else {
		a.scale -= arrowStep
		if a.scale <= arrowMinScale {
			a.scale = arrowMinScale
			a.growing = true
		}
	}
}

// Draw renders the arrow centred on (cx, cy): a shaft and a head filled
// with vertical strokes.
func (a *Arrow) Draw(r render.Renderer, screen render.Image, cx, cy float32) {
	w := float32(arrowWidth * a.scale)
	h := float32(arrowHeight * a.scale)
	left := cx - w/2

	shaftW := w * 0.5
	shaftH := h * 0.4
	r.FillRect(screen, left, cy-shaftH/2, shaftW, shaftH, arrowColor)

	headX := left + shaftW
	headW := w - shaftW
	for dx := float32(0); dx <= headW; dx++ {
		half := h / 2 * (1 - dx/headW)
		r.StrokeLine(screen, headX+dx, cy-half, headX+dx, cy+half, 1.5, arrowColor)
	}
}
