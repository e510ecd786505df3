// Package rendertest provides in-memory implementations of the render
// interfaces for tests that exercise drawing and input without a window.
package rendertest

import (
	"image"
	"image/color"

	"chosenoffset.com/duskblade/internal/render"
)

// Image is a render.Image that only remembers its size and fill colour.
type Image struct {
	W, H     int
	Filled   color.Color
	Draws    int
	Disposed bool
}

// NewImage creates a fake image of the given size.
func NewImage(w, h int) *Image {
	return &Image{W: w, H: h}
}

func (i *Image) Bounds() image.Rectangle { return image.Rect(0, 0, i.W, i.H) }

func (i *Image) Size() (int, int) { return i.W, i.H }

func (i *Image) SubImage(r image.Rectangle) render.Image {
	r = r.Intersect(i.Bounds())
	return &Image{W: r.Dx(), H: r.Dy(), Filled: i.Filled}
}

func (i *Image) Fill(clr color.Color) { i.Filled = clr }

func (i *Image) DrawImage(src render.Image, opts *render.DrawImageOptions) {
	if opts != nil && opts.Fade >= 1 {
		return
	}
	i.Draws++
}

func (i *Image) Dispose() { i.Disposed = true }

// Renderer counts every call and records the text drawn.
type Renderer struct {
	Rects, StrokedRects, Lines, Circles, StrokedCircles int
	Texts                                               []string
	Colors                                              []color.Color
}

// NewRenderer creates an empty recording renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) NewImage(w, h int) render.Image { return NewImage(w, h) }

func (r *Renderer) FillRect(dst render.Image, x, y, w, h float32, clr color.Color) {
	r.Rects++
	r.Colors = append(r.Colors, clr)
}

func (r *Renderer) StrokeRect(dst render.Image, x, y, w, h, sw float32, clr color.Color) {
	r.StrokedRects++
}

func (r *Renderer) StrokeLine(dst render.Image, x0, y0, x1, y1, sw float32, clr color.Color) {
	r.Lines++
	r.Colors = append(r.Colors, clr)
}

func (r *Renderer) FillCircle(dst render.Image, x, y, radius float32, clr color.Color) {
	r.Circles++
	r.Colors = append(r.Colors, clr)
}

func (r *Renderer) StrokeCircle(dst render.Image, x, y, radius, sw float32, clr color.Color) {
	r.StrokedCircles++
}

func (r *Renderer) DrawText(dst render.Image, text string, x, y int, clr color.Color, scale float64) {
	r.Texts = append(r.Texts, text)
}

func (r *Renderer) MeasureText(text string, scale float64) (int, int) {
	return int(float64(len(text)) * 6 * scale), int(13 * scale)
}

// Input is a scripted render.InputManager. Keys in Held report pressed;
// keys in Just additionally report just-pressed until Clear is called.
type Input struct {
	Held map[render.Key]bool
	Just map[render.Key]bool
}

// NewInput creates an input with nothing pressed.
func NewInput() *Input {
	return &Input{Held: map[render.Key]bool{}, Just: map[render.Key]bool{}}
}

// Press marks a key as held and just pressed.
func (in *Input) Press(k render.Key) {
	in.Held[k] = true
	in.Just[k] = true
}

// Hold marks a key as held without an edge.
func (in *Input) Hold(k render.Key) {
	in.Held[k] = true
}

// Clear releases everything.
func (in *Input) Clear() {
	in.Held = map[render.Key]bool{}
	in.Just = map[render.Key]bool{}
}

func (in *Input) IsKeyPressed(k render.Key) bool { return in.Held[k] }

func (in *Input) IsKeyJustPressed(k render.Key) bool { return in.Just[k] }

// Loader fails for every path not in Images.
type Loader struct {
	Images map[string]render.Image
}

func (l *Loader) LoadImage(path string) (render.Image, error) {
	if img, ok := l.Images[path]; ok {
		return img, nil
	}
	return nil, &MissingError{Path: path}
}

// MissingError is returned by Loader for unknown paths.
type MissingError struct {
	Path string
}

func (e *MissingError) Error() string { return "rendertest: no image for " + e.Path }

func init() {
	if render.NewGeoM == nil {
		render.NewGeoM = func() render.GeoM { return &GeoM{} }
	}
}

// GeoM is a no-op transform used when no backend is linked.
type GeoM struct{}

func (g *GeoM) Translate(tx, ty float64) {}
func (g *GeoM) Scale(sx, sy float64)     {}
