// Package sprites slices loaded sheet images into animation frames and
// serves them by entity kind and animation state.
package sprites

import (
	"fmt"
	"image"

	"chosenoffset.com/duskblade/internal/render"
)

// Sheet is a loaded sprite sheet image
type Sheet struct {
	Path  string
	Image render.Image
}

// Frames cuts count frames of w×h from the given row, left to right, and
// returns copies scaled by scale. The whole row must lie inside the sheet.
func (s *Sheet) Frames(r render.Renderer, row, count, w, h int, scale float64) ([]render.Image, error) {
	if count <= 0 || w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid frame layout %dx%d x%d", w, h, count)
	}
	if scale <= 0 {
		return nil, fmt.Errorf("invalid scale %.2f", scale)
	}

	strip := image.Rect(0, row*h, count*w, (row+1)*h)
	if !strip.In(s.Image.Bounds()) {
		return nil, fmt.Errorf("row %d (%d frames of %dx%d) is outside sheet %s %v",
			row, count, w, h, s.Path, s.Image.Bounds())
	}

	dw := int(float64(w) * scale)
	dh := int(float64(h) * scale)
	frames := make([]render.Image, 0, count)
	for i := 0; i < count; i++ {
		sub := s.Image.SubImage(image.Rect(i*w, row*h, (i+1)*w, (row+1)*h))

		dst := r.NewImage(dw, dh)
		op := &render.DrawImageOptions{GeoM: render.NewGeoM()}
		op.GeoM.Scale(scale, scale)
		dst.DrawImage(sub, op)
		frames = append(frames, dst)
	}
	return frames, nil
}
