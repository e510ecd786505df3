package sprites

import (
	"fmt"
	"image/color"
	"log"
	"path/filepath"

	"chosenoffset.com/duskblade/internal/anim"
	"chosenoffset.com/duskblade/internal/config"
	"chosenoffset.com/duskblade/internal/render"
	"chosenoffset.com/duskblade/internal/world"
)

// Library holds every animation frame the game draws, organised by entity
// kind and state. Lookups never fail: anything missing resolves to the
// kind's placeholder.
type Library struct {
	renderer render.Renderer
	loader   render.ResourceLoader
	root     string

	sheets       map[string]*Sheet
	frames       map[world.Kind]map[anim.State][]render.Image
	placeholders map[world.Kind]render.Image

	Background render.Image // nil when the image could not be loaded
	Tileset    render.Image
}

// NewLibrary creates an empty library. Paths are resolved against root.
func NewLibrary(r render.Renderer, loader render.ResourceLoader, root string) *Library {
	return &Library{
		renderer:     r,
		loader:       loader,
		root:         root,
		sheets:       make(map[string]*Sheet),
		frames:       make(map[world.Kind]map[anim.State][]render.Image),
		placeholders: make(map[world.Kind]render.Image),
	}
}

// Load builds a library for the configured player and enemy sheets plus the
// scenery images. Failures are logged and fall back to placeholders.
func Load(r render.Renderer, loader render.ResourceLoader, cfg *config.Config, root string) *Library {
	lib := NewLibrary(r, loader, root)
	lib.AddKind(world.KindPlayer, cfg.Player.Sprite)
	lib.AddKind(world.KindEnemy, cfg.Enemy.Sprite)
	lib.ReleaseSheets()

	lib.Background = lib.optionalImage(cfg.World.Background)
	lib.Tileset = lib.optionalImage(cfg.World.Tileset)
	return lib
}

// AddKind loads every animation in sc for kind. The placeholder is always
// created first so a partly loaded kind still resolves every state.
func (l *Library) AddKind(kind world.Kind, sc config.SpriteConfig) {
	l.placeholders[kind] = Placeholder(l.renderer, sc)

	states := make(map[anim.State][]render.Image, len(sc.Animations))
	for st, spec := range sc.Animations {
		path := sc.Sheet
		if spec.Sheet != "" {
			path = spec.Sheet
		}
		sheet, err := l.sheet(path)
		if err != nil {
			log.Printf("Warning: %s %s animation uses placeholder: %v", kind, st, err)
			continue
		}
		frames, err := sheet.Frames(l.renderer, spec.Row, spec.Frames, sc.FrameWidth, sc.FrameHeight, sc.Scale)
		if err != nil {
			log.Printf("Warning: %s %s animation uses placeholder: %v", kind, st, err)
			continue
		}
		states[st] = frames
	}
	l.frames[kind] = states
}

// ReleaseSheets disposes every cached sheet image. Frames are scaled
// copies, so they stay valid; a later AddKind reloads what it needs.
func (l *Library) ReleaseSheets() {
	for path, s := range l.sheets {
		s.Image.Dispose()
		delete(l.sheets, path)
	}
}

// Frame returns frame idx of the state's sequence for kind.
func (l *Library) Frame(kind world.Kind, st anim.State, idx int) render.Image {
	if seq, ok := l.frames[kind][st]; ok && idx >= 0 && idx < len(seq) {
		return seq[idx]
	}
	return l.Placeholder(kind)
}

// Loaded reports whether real frames exist for the state.
func (l *Library) Loaded(kind world.Kind, st anim.State) bool {
	_, ok := l.frames[kind][st]
	return ok
}

// Placeholder returns the kind's solid-colour stand-in, creating a small
// magenta one for kinds that were never added.
func (l *Library) Placeholder(kind world.Kind) render.Image {
	if img, ok := l.placeholders[kind]; ok {
		return img
	}
	img := l.renderer.NewImage(16, 16)
	img.Fill(color.RGBA{R: 255, B: 255, A: 255})
	l.placeholders[kind] = img
	return img
}

func (l *Library) sheet(path string) (*Sheet, error) {
	if path == "" {
		return nil, fmt.Errorf("no sheet configured")
	}
	if s, ok := l.sheets[path]; ok {
		return s, nil
	}
	img, err := l.loader.LoadImage(l.resolve(path))
	if err != nil {
		return nil, fmt.Errorf("failed to load sheet %s: %w", path, err)
	}
	s := &Sheet{Path: path, Image: img}
	l.sheets[path] = s
	return s, nil
}

func (l *Library) optionalImage(path string) render.Image {
	if path == "" {
		return nil
	}
	img, err := l.loader.LoadImage(l.resolve(path))
	if err != nil {
		log.Printf("Warning: Failed to load %s: %v", path, err)
		return nil
	}
	return img
}

func (l *Library) resolve(path string) string {
	if l.root == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(l.root, path)
}

// Placeholder creates a frame-sized image filled with the sprite's fallback
// colour.
func Placeholder(r render.Renderer, sc config.SpriteConfig) render.Image {
	w, h := int(sc.BodyWidth()), int(sc.BodyHeight())
	if w <= 0 || h <= 0 {
		w, h = 16, 16
	}
	img := r.NewImage(w, h)
	img.Fill(sc.Fallback.WithAlpha(255))
	return img
}
