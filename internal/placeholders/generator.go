// Package placeholders draws solid-colour stand-ins for every image the game
// loads, sized to the configured frame tables, so the game runs without art.
package placeholders

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"sort"

	"chosenoffset.com/duskblade/internal/config"
)

// ColorPalette defines colours for the scenery placeholders
var ColorPalette = struct {
	// Scenery
	SkyTop    color.RGBA
	SkyBottom color.RGBA
	Ground    color.RGBA
	Platform  color.RGBA

	// Frame outline
	Border color.RGBA
}{
	SkyTop:    color.RGBA{20, 12, 30, 255},   // Dusk purple
	SkyBottom: color.RGBA{90, 40, 50, 255},   // Red horizon
	Ground:    color.RGBA{70, 55, 45, 255},   // Packed earth
	Platform:  color.RGBA{110, 100, 90, 255}, // Stone

	Border: color.RGBA{20, 20, 20, 255},
}

// TileSize is the edge of one tileset cell
const TileSize = 32

// CreateSolidFrame creates a w×h image of a single colour
func CreateSolidFrame(w, h int, col color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{col}, image.Point{}, draw.Src)
	return img
}

// CreateBorderedFrame creates a solid frame with a one-colour border
func CreateBorderedFrame(w, h int, fillColor, borderColor color.RGBA, borderWidth int) *image.RGBA {
	img := CreateSolidFrame(w, h, fillColor)
	for i := 0; i < borderWidth; i++ {
		// Top and bottom borders
		for x := 0; x < w; x++ {
			img.Set(x, i, borderColor)
			img.Set(x, h-1-i, borderColor)
		}
		// Left and right borders
		for y := 0; y < h; y++ {
			img.Set(i, y, borderColor)
			img.Set(w-1-i, y, borderColor)
		}
	}
	return img
}

// CreateGradient fills top to bottom from one colour to another
func CreateGradient(w, h int, top, bottom color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		t := float64(y) / float64(max(h-1, 1))
		c := color.RGBA{
			R: lerp(top.R, bottom.R, t),
			G: lerp(top.G, bottom.G, t),
			B: lerp(top.B, bottom.B, t),
			A: 255,
		}
		draw.Draw(img, image.Rect(0, y, w, y+1), &image.Uniform{c}, image.Point{}, draw.Src)
	}
	return img
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}

// CreateSheet lays out frames for every animation in sc that reads from
// path. Each row gets its own shade of the fallback colour so rows are
// distinguishable; frames within a row alternate lighter and darker.
func CreateSheet(sc config.SpriteConfig, path string) *image.RGBA {
	rows, cols := 0, 0
	for _, spec := range sc.Animations {
		if sheetPath(sc, spec.Sheet) != path {
			continue
		}
		rows = max(rows, spec.Row+1)
		cols = max(cols, spec.Frames)
	}
	if rows == 0 || cols == 0 {
		return nil
	}

	fw, fh := sc.FrameWidth, sc.FrameHeight
	sheet := image.NewRGBA(image.Rect(0, 0, cols*fw, rows*fh))
	base := color.RGBA{sc.Fallback[0], sc.Fallback[1], sc.Fallback[2], 255}

	for row := 0; row < rows; row++ {
		shade := Darken(base, 1-0.08*float64(row))
		for col := 0; col < cols; col++ {
			fill := shade
			if col%2 == 1 {
				fill = Lighten(shade, 0.15)
			}
			frame := CreateBorderedFrame(fw, fh, fill, ColorPalette.Border, 1)
			dst := image.Rect(col*fw, row*fh, (col+1)*fw, (row+1)*fh)
			draw.Draw(sheet, dst, frame, image.Point{}, draw.Src)
		}
	}
	return sheet
}

// CreateTileset creates a two-cell tileset: ground then platform
func CreateTileset() *image.RGBA {
	tiles := []*image.RGBA{
		CreateBorderedFrame(TileSize, TileSize, ColorPalette.Ground, Darken(ColorPalette.Ground, 0.7), 2),
		CreateBorderedFrame(TileSize, TileSize, ColorPalette.Platform, Darken(ColorPalette.Platform, 0.7), 2),
	}
	atlas := image.NewRGBA(image.Rect(0, 0, len(tiles)*TileSize, TileSize))
	for i, tile := range tiles {
		dst := image.Rect(i*TileSize, 0, (i+1)*TileSize, TileSize)
		draw.Draw(atlas, dst, tile, image.Point{}, draw.Src)
	}
	return atlas
}

func sheetPath(sc config.SpriteConfig, override string) string {
	if override != "" {
		return override
	}
	return sc.Sheet
}

// Generate returns every placeholder image keyed by its configured path
func Generate(cfg *config.Config) map[string]*image.RGBA {
	out := make(map[string]*image.RGBA)
	for _, sc := range []config.SpriteConfig{cfg.Player.Sprite, cfg.Enemy.Sprite} {
		for _, spec := range sc.Animations {
			path := sheetPath(sc, spec.Sheet)
			if path == "" || out[path] != nil {
				continue
			}
			if img := CreateSheet(sc, path); img != nil {
				out[path] = img
			}
		}
	}
	if cfg.World.Background != "" {
		out[cfg.World.Background] = CreateGradient(cfg.Screen.Width, cfg.Screen.Height, ColorPalette.SkyTop, ColorPalette.SkyBottom)
	}
	if cfg.World.Tileset != "" {
		out[cfg.World.Tileset] = CreateTileset()
	}
	return out
}

// GenerateAndSave writes every placeholder under root, creating
// directories as needed, and returns the written paths in order.
func GenerateAndSave(cfg *config.Config, root string) ([]string, error) {
	images := Generate(cfg)
	paths := make([]string, 0, len(images))
	for p := range images {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	written := make([]string, 0, len(paths))
	for _, p := range paths {
		dst := p
		if root != "" && !filepath.IsAbs(p) {
			dst = filepath.Join(root, p)
		}
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return written, fmt.Errorf("failed to create directory for %s: %w", dst, err)
		}
		if err := SavePNG(images[p], dst); err != nil {
			return written, fmt.Errorf("failed to save %s: %w", dst, err)
		}
		written = append(written, dst)
	}
	return written, nil
}

// SavePNG saves an image to a PNG file
func SavePNG(img image.Image, filepath string) error {
	file, err := os.Create(filepath)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}

// Darken returns a darker version of a color
func Darken(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

// Lighten returns a lighter version of a color
func Lighten(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) + (255-float64(c.R))*factor),
		G: uint8(float64(c.G) + (255-float64(c.G))*factor),
		B: uint8(float64(c.B) + (255-float64(c.B))*factor),
		A: c.A,
	}
}
