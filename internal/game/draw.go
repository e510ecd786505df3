package game

import (
	"image"
	"image/color"
	"math"

	"chosenoffset.com/duskblade/internal/anim"
	"chosenoffset.com/duskblade/internal/effects"
	"chosenoffset.com/duskblade/internal/placeholders"
	"chosenoffset.com/duskblade/internal/render"
	"chosenoffset.com/duskblade/internal/ui/hud"
	"chosenoffset.com/duskblade/internal/world"
)

// Background scrolls slower than the ground.
const parallax = 0.5

var (
	skyColor      = color.RGBA{25, 20, 40, 255}
	groundColor   = color.RGBA{70, 50, 35, 255}
	platformColor = color.RGBA{90, 80, 70, 255}
)

// Draw renders the session back to front.
func (s *Session) Draw(screen render.Image) {
	s.drawBackground(screen)
	s.drawGround(screen)
	s.drawPlatforms(screen)
	s.drawPowerUps(screen)
	s.drawEnemies(screen)
	s.drawPlayer(screen)
	s.drawAbilityOverlays(screen)
	s.drawShield(screen)
	s.World.Effects.Draw(s.Renderer, screen)
	s.HUD.Draw(screen, s.Status(), s.World.Stats, s.Cleared)
}

func (s *Session) drawBackground(screen render.Image) {
	screen.Fill(skyColor)
	if s.Sprites == nil || s.Sprites.Background == nil {
		return
	}
	bg := s.Sprites.Background
	bw, bh := bg.Size()
	if bw <= 0 || bh <= 0 {
		return
	}
	sw, sh := screen.Size()
	scale := float64(sh) / float64(bh)
	tileW := float64(bw) * scale

	offset := math.Mod(s.World.Scroll*parallax, tileW)
	for x := -offset; x < float64(sw); x += tileW {
		opts := &render.DrawImageOptions{GeoM: render.NewGeoM()}
		opts.GeoM.Scale(scale, scale)
		opts.GeoM.Translate(x, 0)
		screen.DrawImage(bg, opts)
	}
}

// tile returns cell i of the tileset, or nil when none is loaded.
func (s *Session) tile(i int) render.Image {
	if s.Sprites == nil || s.Sprites.Tileset == nil {
		return nil
	}
	ts := placeholders.TileSize
	w, h := s.Sprites.Tileset.Size()
	if (i+1)*ts > w || ts > h {
		return nil
	}
	return s.Sprites.Tileset.SubImage(image.Rect(i*ts, 0, (i+1)*ts, ts))
}

// fillTiled covers r with the tile, falling back to a flat colour.
func (s *Session) fillTiled(screen render.Image, r world.Rect, tile render.Image, fallback color.Color) {
	sw, _ := screen.Size()
	if r.Right() < 0 || r.Left() > float64(sw) {
		return
	}
	if tile == nil {
		s.Renderer.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), fallback)
		return
	}
	tw, th := tile.Size()
	sx := r.H / float64(th)
	step := float64(tw) * sx
	start := r.Left()
	if start < -step {
		start += math.Floor(-start/step) * step
	}
	for x := start; x < r.Right() && x < float64(sw); x += step {
		opts := &render.DrawImageOptions{GeoM: render.NewGeoM()}
		opts.GeoM.Scale(sx, sx)
		opts.GeoM.Translate(x, r.Y)
		screen.DrawImage(tile, opts)
	}
}

func (s *Session) drawGround(screen render.Image) {
	s.fillTiled(screen, s.World.Ground.Screen, s.tile(0), groundColor)
}

func (s *Session) drawPlatforms(screen render.Image) {
	tile := s.tile(1)
	for _, p := range s.World.Platforms {
		s.fillTiled(screen, p.Screen, tile, platformColor)
	}
}

func (s *Session) drawPowerUps(screen render.Image) {
	cfg := s.Cfg.PowerUps
	for _, p := range s.World.PowerUps {
		size := p.Screen.W * p.PulseScale()
		cx := p.Screen.CenterX()
		cy := p.Screen.CenterY() + p.FloatOffset(cfg)
		clr := p.Color(cfg)

		s.Renderer.FillCircle(screen, float32(cx), float32(cy), float32(size), clr.WithAlpha(60))
		s.Renderer.FillRect(screen, float32(cx-size/2), float32(cy-size/2), float32(size), float32(size), clr.WithAlpha(255))
		s.Renderer.StrokeRect(screen, float32(cx-size/2), float32(cy-size/2), float32(size), float32(size), 1, clr.Brighten(60).WithAlpha(255))
	}
}

func (s *Session) drawEnemies(screen render.Image) {
	death := float64(s.Cfg.Enemy.DeathDuration)
	for _, e := range s.Enemies {
		fade := 0.0
		if e.IsDead {
			if death > 0 {
				fade = math.Min(1, float64(e.DeathTimer)/death)
			}
		} else {
			effects.DrawTrail(s.Renderer, screen, e.Trail.Points, e.Trail.Color, e.Trail.Alpha/2, 3)
		}

		s.drawSprite(screen, e, e.Anim, e.Screen, e.Direction < 0, fade)

		if !e.IsDead {
			hud.DrawEnemyBar(s.Renderer, screen, e.Screen, e.HealthRatio())
		}
	}
}

func (s *Session) drawPlayer(screen render.Image) {
	p := s.Player
	s.drawSprite(screen, p, p.Anim, p.Screen, !p.FacingRight, 0)
}

// spriteFor returns the body's current animation frame, or nil when no
// library is loaded.
func (s *Session) spriteFor(b world.Body, cur anim.Cursor) render.Image {
	if s.Sprites == nil {
		return nil
	}
	return s.Sprites.Frame(b.Kind(), cur.State, cur.Frame)
}

// drawSprite blits the cursor's frame at rect's top-left, mirrored when
// flip is set. A fade of 1 or more draws nothing.
func (s *Session) drawSprite(screen render.Image, b world.Body, cur anim.Cursor, rect world.Rect, flip bool, fade float64) {
	frame := s.spriteFor(b, cur)
	if frame == nil || fade >= 1 {
		return
	}
	fw, _ := frame.Size()

	opts := &render.DrawImageOptions{GeoM: render.NewGeoM(), Fade: fade}
	if flip {
		opts.GeoM.Scale(-1, 1)
		opts.GeoM.Translate(float64(fw), 0)
	}
	opts.GeoM.Translate(rect.X, rect.Y)
	screen.DrawImage(frame, opts)
}

func (s *Session) drawAbilityOverlays(screen render.Image) {
	p := s.Player
	if p.Attacking {
		s.drawArea(screen, p.AttackArea, p.AttackColor().WithAlpha(90))
	}
	if p.Casting {
		s.drawArea(screen, p.MagicArea, p.MagicColor().WithAlpha(110))
	}
}

func (s *Session) drawArea(screen render.Image, area world.Rect, clr color.Color) {
	r := area.Shift(-s.World.Scroll, 0)
	s.Renderer.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr)
}

func (s *Session) drawShield(screen render.Image) {
	p := s.Player
	if !p.ShieldActive {
		return
	}
	cx := float32(p.Screen.CenterX())
	cy := float32(p.Screen.CenterY())
	radius := float32(p.ShieldRadius())
	clr := p.ShieldColor()

	s.Renderer.FillCircle(screen, cx, cy, radius, clr.WithAlpha(uint8(p.ShieldAlpha/2)))
	s.Renderer.StrokeCircle(screen, cx, cy, radius, 2, clr.WithAlpha(uint8(min(255, p.ShieldAlpha*2))))
}
