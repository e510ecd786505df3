// Package hud draws the in-play overlays: resource bars, score, the
// tutorial box, the section-cleared arrow, enemy health bars and the
// game-over screen.
package hud

import (
	"fmt"
	"image/color"

	"chosenoffset.com/duskblade/internal/config"
	"chosenoffset.com/duskblade/internal/render"
	"chosenoffset.com/duskblade/internal/stats"
	"chosenoffset.com/duskblade/internal/world"
)

var (
	barBackground = color.RGBA{40, 40, 40, 255}
	barBorder     = color.RGBA{100, 100, 100, 255}
	healthColor   = color.RGBA{200, 50, 50, 255}
	manaColor     = color.RGBA{50, 50, 200, 255}
	labelColor    = color.RGBA{255, 255, 255, 255}
	shadowColor   = color.RGBA{0, 0, 0, 255}
)

// Bar layout
const (
	barX      = 45
	barWidth  = 200
	barHeight = 20
	healthY   = 10
	manaY     = 35
)

// Status is the player data the bars display.
type Status struct {
	Health, MaxHealth float64
	Mana, MaxMana     float64
}

// HUD owns the overlays that keep state between frames.
type HUD struct {
	renderer      render.Renderer
	width, height int

	Tutorial *Tutorial
	Arrow    *Arrow
}

// New creates a HUD for the configured screen.
func New(r render.Renderer, cfg *config.Config) *HUD {
	return &HUD{
		renderer: r,
		width:    cfg.Screen.Width,
		height:   cfg.Screen.Height,
		Tutorial: NewTutorial(cfg.UI, cfg.Screen.TPS),
		Arrow:    NewArrow(),
	}
}

// Reset restarts the tutorial and arrow for a new session.
func (h *HUD) Reset() {
	h.Tutorial.Reset()
	h.Arrow.Reset()
}

// Update advances the timed overlays. cleared reports whether the camera's
// section is free of living enemies.
func (h *HUD) Update(cleared bool) {
	h.Tutorial.Update()
	if cleared {
		h.Arrow.Update()
	} else {
		h.Arrow.Reset()
	}
}

// DrawBars draws the health and mana bars with their labels and values.
func (h *HUD) DrawBars(screen render.Image, s Status) {
	h.drawBar(screen, "HP", healthY, s.Health, s.MaxHealth, healthColor)
	h.drawBar(screen, "MP", manaY, s.Mana, s.MaxMana, manaColor)
}

func (h *HUD) drawBar(screen render.Image, label string, y int, value, maxValue float64, fill color.Color) {
	h.drawText(screen, label, 10, y+3, labelColor)

	h.renderer.FillRect(screen, barX, float32(y), barWidth, barHeight, barBackground)
	if maxValue > 0 {
		ratio := value / maxValue
		if ratio < 0 {
			ratio = 0
		}
		if ratio > 1 {
			ratio = 1
		}
		h.renderer.FillRect(screen, barX, float32(y), float32(barWidth*ratio), barHeight, fill)
	}
	h.renderer.StrokeRect(screen, barX, float32(y), barWidth, barHeight, 2, barBorder)

	h.drawText(screen, fmt.Sprintf("%d/%d", int(value), int(maxValue)), barX+barWidth+10, y+3, labelColor)
}

// DrawScore draws the session counters under the bars.
func (h *HUD) DrawScore(screen render.Image, t *stats.Tracker) {
	h.drawText(screen, t.Summary(), 10, manaY+barHeight+10, labelColor)
}

// Draw renders the bars, score, tutorial and (if shown) the arrow.
func (h *HUD) Draw(screen render.Image, s Status, t *stats.Tracker, cleared bool) {
	h.DrawBars(screen, s)
	h.DrawScore(screen, t)
	h.Tutorial.Draw(h.renderer, screen, h.width)
	if cleared {
		h.Arrow.Draw(h.renderer, screen, float32(h.width-100), float32(h.height/2))
	}
}

func (h *HUD) drawText(screen render.Image, text string, x, y int, clr color.Color) {
	h.renderer.DrawText(screen, text, x+1, y+1, shadowColor, 1)
	h.renderer.DrawText(screen, text, x, y, clr, 1)
}

// Enemy bar layout
const (
	enemyBarWidth  = 40
	enemyBarHeight = 5
)

// DrawEnemyBar draws a small health bar centred above a screen rect.
func DrawEnemyBar(r render.Renderer, screen render.Image, rect world.Rect, ratio float64) {
	if ratio < 0 {
		ratio = 0
	}
	x := float32(rect.CenterX() - enemyBarWidth/2)
	y := float32(rect.Top() - 10)
	r.FillRect(screen, x, y, enemyBarWidth, enemyBarHeight, color.RGBA{255, 0, 0, 255})
	r.FillRect(screen, x, y, float32(enemyBarWidth*ratio), enemyBarHeight, color.RGBA{0, 255, 0, 255})
	r.StrokeRect(screen, x, y, enemyBarWidth, enemyBarHeight, 1, color.RGBA{255, 255, 255, 255})
}

// DrawGameOver dims the screen and shows the final counters with the
// continue/quit prompts.
func DrawGameOver(r render.Renderer, screen render.Image, w, h int, t *stats.Tracker) {
	r.FillRect(screen, 0, 0, float32(w), float32(h), color.NRGBA{A: 180})

	centered := func(text string, y int, clr color.Color, scale float64) {
		tw, th := r.MeasureText(text, scale)
		r.DrawText(screen, text, (w-tw)/2, y-th/2, clr, scale)
	}
	centered("GAME OVER", h/3, color.RGBA{255, 0, 0, 255}, 4)
	centered(t.Summary(), h/3+60, labelColor, 1.5)
	centered("Press ENTER to continue", h/2, labelColor, 2)
	centered("Press ESC to quit", h/2+50, labelColor, 2)
}
