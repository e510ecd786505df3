package world

// Rect is an axis-aligned rectangle. X and Y are the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Left() float64    { return r.X }
func (r Rect) Right() float64   { return r.X + r.W }
func (r Rect) Top() float64     { return r.Y }
func (r Rect) Bottom() float64  { return r.Y + r.H }
func (r Rect) CenterX() float64 { return r.X + r.W/2 }
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Overlaps reports whether the interiors intersect. Touching edges do not
// overlap, so a body resting exactly on a surface is not colliding with it.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Shift returns the rectangle moved by (dx, dy).
func (r Rect) Shift(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Platform is a floating ledge. Rect is the drawn extent in world space;
// collision uses a rect inset from the top and bottom.
type Platform struct {
	Rect   Rect
	Inset  float64
	Screen Rect
}

// NewPlatform creates a platform whose top-left corner is at (x, y).
func NewPlatform(x, y, w, h, inset float64) *Platform {
	p := &Platform{Rect: Rect{X: x, Y: y, W: w, H: h}, Inset: inset}
	p.SyncScreen(0)
	return p
}

// CollisionRect returns the solid part of the platform.
func (p *Platform) CollisionRect() Rect {
	return Rect{X: p.Rect.X, Y: p.Rect.Y + p.Inset, W: p.Rect.W, H: p.Rect.H - 2*p.Inset}
}

// Kind implements Body.
func (p *Platform) Kind() Kind { return KindPlatform }

// SyncScreen implements Body.
func (p *Platform) SyncScreen(scroll float64) {
	p.Screen = p.Rect.Shift(-scroll, 0)
}

// Ground is the floor strip spanning the whole map.
type Ground struct {
	Rect   Rect
	Screen Rect
}

// Kind implements Body.
func (g *Ground) Kind() Kind { return KindGround }

// SyncScreen implements Body.
func (g *Ground) SyncScreen(scroll float64) {
	g.Screen = g.Rect.Shift(-scroll, 0)
}

// CollisionRect returns the solid part of the ground.
func (g *Ground) CollisionRect() Rect {
	return g.Rect
}
