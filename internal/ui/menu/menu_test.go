package menu

import (
	"math/rand"
	"testing"

	"chosenoffset.com/duskblade/internal/input"
	"chosenoffset.com/duskblade/internal/render/rendertest"
)

func press(actions ...input.Action) input.Snapshot {
	var s input.Snapshot
	for _, a := range actions {
		s.Press(a)
	}
	return s
}

func newRNG() *rand.Rand { return rand.New(rand.NewSource(1)) }

func TestMainMenuNavigation(t *testing.T) {
	m := NewMainMenu(rendertest.NewRenderer(), 1280, 720, newRNG())

	if got := m.Update(press(input.Confirm)); got != ActionStart {
		t.Errorf("Expected start on first confirm, got %s", got)
	}

	m.Update(press(input.Down))
	m.Update(press(input.Down))
	if got := m.Update(press(input.Confirm)); got != ActionOptions {
		t.Errorf("Expected options after two downs, got %s", got)
	}

	m.Update(press(input.Up))
	m.Update(press(input.Up))
	m.Update(press(input.Up))
	if m.Selected() != 4 {
		t.Errorf("Expected selection to wrap to quit, got %d", m.Selected())
	}
	if got := m.Update(press(input.Confirm)); got != ActionQuit {
		t.Errorf("Expected quit, got %s", got)
	}

	m.Update(press(input.Down))
	if m.Selected() != 0 {
		t.Errorf("Expected selection to wrap to the top, got %d", m.Selected())
	}
}

func TestMainMenuIdle(t *testing.T) {
	m := NewMainMenu(rendertest.NewRenderer(), 1280, 720, newRNG())
	if got := m.Update(input.Snapshot{}); got != ActionNone {
		t.Errorf("Expected no action without input, got %s", got)
	}
}

func TestMainMenuFade(t *testing.T) {
	m := NewMainMenu(rendertest.NewRenderer(), 1280, 720, newRNG())
	for i := 0; i < 10; i++ {
		m.Update(input.Snapshot{})
	}
	if m.fadeAlpha != 205 {
		t.Errorf("Expected fade alpha 205 after 10 ticks, got %d", m.fadeAlpha)
	}
	for i := 0; i < 100; i++ {
		m.Update(input.Snapshot{})
	}
	if m.fadeAlpha != 0 {
		t.Errorf("Expected fade to stop at 0, got %d", m.fadeAlpha)
	}
}

func TestMainMenuDraw(t *testing.T) {
	r := rendertest.NewRenderer()
	m := NewMainMenu(r, 1280, 720, newRNG())
	m.SetResumable(true)
	m.Draw(rendertest.NewImage(1280, 720))

	if !containsText(r.Texts, "DUSKBLADE") {
		t.Errorf("Expected title drawn, got %v", r.Texts)
	}
	if !containsText(r.Texts, "Resume") {
		t.Errorf("Expected resume label while paused")
	}
	if r.StrokedRects != 5 {
		t.Errorf("Expected 5 button borders, got %d", r.StrokedRects)
	}
	if r.Circles != 60 {
		t.Errorf("Expected 30 embers drawn with glow, got %d circles", r.Circles)
	}
}

func TestOptionsToggle(t *testing.T) {
	m := NewOptionsMenu(rendertest.NewRenderer(), 1280, 720, DefaultOptions(), newRNG())

	if got := m.Update(press(input.Confirm)); got != ActionChanged {
		t.Errorf("Expected changed after toggling sound, got %s", got)
	}
	if m.Options.SoundOn {
		t.Errorf("Expected sound off after toggle")
	}
	if m.buttons[0].Label != "Sound: Off" {
		t.Errorf("Expected relabelled sound button, got %q", m.buttons[0].Label)
	}

	m.Update(press(input.Down))
	m.Update(press(input.Confirm))
	if m.Options.Difficulty != Hard {
		t.Errorf("Expected hard after cycling from normal, got %s", m.Options.Difficulty)
	}
	m.Update(press(input.Right))
	if m.Options.Difficulty != Easy {
		t.Errorf("Expected difficulty to wrap to easy, got %s", m.Options.Difficulty)
	}
	m.Update(press(input.Left))
	if m.Options.Difficulty != Hard {
		t.Errorf("Expected left to wrap back to hard, got %s", m.Options.Difficulty)
	}
	if m.buttons[1].Label != "Difficulty: Hard" {
		t.Errorf("Expected relabelled difficulty button, got %q", m.buttons[1].Label)
	}
}

func TestOptionsBack(t *testing.T) {
	m := NewOptionsMenu(rendertest.NewRenderer(), 1280, 720, DefaultOptions(), newRNG())
	if got := m.Update(press(input.Menu)); got != ActionBack {
		t.Errorf("Expected back on escape, got %s", got)
	}

	m.Update(press(input.Up))
	if got := m.Update(press(input.Confirm)); got != ActionBack {
		t.Errorf("Expected back from the back button, got %s", got)
	}

	m.Update(press(input.Down))
	m.Update(press(input.Right))
	if m.Options.Difficulty != Normal {
		t.Errorf("Expected left/right ignored off the difficulty row")
	}
}

func TestDifficultyScale(t *testing.T) {
	cases := []struct {
		d     Difficulty
		scale float64
	}{
		{Easy, 0.5},
		{Normal, 1},
		{Hard, 1.5},
	}
	for _, c := range cases {
		if got := c.d.DamageScale(); got != c.scale {
			t.Errorf("%s: expected %f, got %f", c.d, c.scale, got)
		}
	}
}

func TestCreditsScrollWraps(t *testing.T) {
	m := NewCreditsMenu(rendertest.NewRenderer(), 1280, 720, newRNG())
	m.Update(input.Snapshot{})
	if m.scroll != -0.5 {
		t.Errorf("Expected scroll -0.5 after one tick, got %f", m.scroll)
	}

	limit := float64(-len(m.lines)*creditsSpacing + 360)
	for m.scroll > limit+1 {
		m.Update(input.Snapshot{})
	}
	m.Update(input.Snapshot{})
	m.Update(input.Snapshot{})
	m.Update(input.Snapshot{})
	if m.scroll < limit {
		t.Errorf("Expected scroll to wrap, got %f", m.scroll)
	}

	if got := m.Update(press(input.Confirm)); got != ActionBack {
		t.Errorf("Expected back on confirm, got %s", got)
	}
}

func TestControlsDraw(t *testing.T) {
	r := rendertest.NewRenderer()
	m := NewControlsMenu(r, 1280, 720, newRNG())
	m.Draw(rendertest.NewImage(1280, 720))

	for _, c := range DefaultControls {
		if !containsText(r.Texts, c.Keys) {
			t.Errorf("Expected %q listed", c.Keys)
		}
	}
	if got := m.Update(press(input.Menu)); got != ActionBack {
		t.Errorf("Expected back on escape, got %s", got)
	}
}

func TestEmbersWrap(t *testing.T) {
	e := NewEmbers(10, 100, 100, 100, newRNG())
	for i := 0; i < 500; i++ {
		e.Update()
	}
	for _, p := range e.list {
		if p.y < 0 || p.y > 100 {
			t.Errorf("Expected ember within the screen, got y=%f", p.y)
		}
		if p.alpha < 30 || p.alpha > 100 {
			t.Errorf("Expected alpha in [30, 100], got %d", p.alpha)
		}
	}
	if e.Len() != 10 {
		t.Errorf("Expected 10 embers, got %d", e.Len())
	}
}

func containsText(texts []string, want string) bool {
	for _, s := range texts {
		if s == want {
			return true
		}
	}
	return false
}
