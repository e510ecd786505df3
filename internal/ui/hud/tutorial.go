package hud

import (
	"image/color"

	"chosenoffset.com/duskblade/internal/config"
	"chosenoffset.com/duskblade/internal/render"
)

var tutorialLines = []string{
	"Controls:",
	"Arrows - Move",
	"Space - Jump",
	"X - Attack",
	"C - Magic",
	"Shift - Dash",
	"V - Shield",
	"ESC - Menu",
}

const (
	tutorialWidth   = 200
	tutorialHeight  = 160
	tutorialFadeFor = 3 // Seconds before the end the fade begins
)

// Tutorial shows the command list at the start of a session and fades it
// out before it expires.
type Tutorial struct {
	showFor   int // Ticks
	fadeStart int
	fadeStep  int

	ticks int
	alpha int
}

// NewTutorial sizes the overlay's lifetime from the UI config.
func NewTutorial(cfg config.UIConfig, tps int) *Tutorial {
	show := cfg.TutorialSeconds * tps
	t := &Tutorial{
		showFor:   show,
		fadeStart: max(0, show-tutorialFadeFor*tps),
		fadeStep:  cfg.TutorialFade,
	}
	t.Reset()
	return t
}

// Reset makes the overlay fully visible again.
func (t *Tutorial) Reset() {
	t.ticks = 0
	t.alpha = 255
}

// Update advances the timer and the fade.
func (t *Tutorial) Update() {
	if !t.Visible() {
		return
	}
	t.ticks++
	if t.ticks >= t.fadeStart {
		t.alpha = max(0, t.alpha-t.fadeStep)
	}
}

// Visible reports whether the overlay still draws.
func (t *Tutorial) Visible() bool {
	return t.ticks < t.showFor && t.alpha > 0
}

// Alpha returns the current opacity, 0 to 255.
func (t *Tutorial) Alpha() int { return t.alpha }

// Draw renders the box in the top-right corner of a screen w pixels wide.
func (t *Tutorial) Draw(r render.Renderer, screen render.Image, w int) {
	if !t.Visible() {
		return
	}
	x := w - tutorialWidth - 10
	y := 10
	r.FillRect(screen, float32(x), float32(y), tutorialWidth, tutorialHeight, color.NRGBA{A: uint8(t.alpha * 150 / 255)})

	text := color.NRGBA{255, 255, 255, uint8(t.alpha)}
	for i, line := range tutorialLines {
		r.DrawText(screen, line, x+10, y+8+i*18, text, 1)
	}
}
