package hud

import (
	"math"
	"testing"

	"chosenoffset.com/duskblade/internal/config"
	"chosenoffset.com/duskblade/internal/render/rendertest"
	"chosenoffset.com/duskblade/internal/stats"
	"chosenoffset.com/duskblade/internal/world"
)

func TestTutorialFade(t *testing.T) {
	cfg := config.DefaultConfig()
	tut := NewTutorial(cfg.UI, 60)

	for i := 0; i < 1619; i++ {
		tut.Update()
	}
	if tut.Alpha() != 255 {
		t.Errorf("Expected full alpha before the fade, got %d", tut.Alpha())
	}

	tut.Update()
	if tut.Alpha() != 250 {
		t.Errorf("Expected fade to start 3s before the end, got alpha %d", tut.Alpha())
	}

	for i := 0; i < 50; i++ {
		tut.Update()
	}
	if tut.Visible() {
		t.Errorf("Expected tutorial hidden once alpha reaches 0, alpha %d", tut.Alpha())
	}

	tut.Reset()
	if !tut.Visible() || tut.Alpha() != 255 {
		t.Errorf("Expected reset to show the tutorial again")
	}
}

func TestTutorialExpiresWithoutFade(t *testing.T) {
	tut := NewTutorial(config.UIConfig{TutorialSeconds: 1, TutorialFade: 0}, 60)
	for i := 0; i < 60; i++ {
		tut.Update()
	}
	if tut.Visible() {
		t.Errorf("Expected tutorial hidden after its lifetime")
	}
}

func TestArrowPulse(t *testing.T) {
	a := NewArrow()
	if a.Scale() != arrowMinScale {
		t.Fatalf("Expected start at %f, got %f", arrowMinScale, a.Scale())
	}

	peak := 0.0
	for i := 0; i < 100; i++ {
		a.Update()
		if a.Scale() < arrowMinScale || a.Scale() > arrowMaxScale {
			t.Fatalf("Scale %f left [%f, %f]", a.Scale(), arrowMinScale, arrowMaxScale)
		}
		peak = math.Max(peak, a.Scale())
	}
	if peak != arrowMaxScale {
		t.Errorf("Expected the pulse to reach %f, got %f", arrowMaxScale, peak)
	}

	a.Update()
	a.Reset()
	if a.Scale() != arrowMinScale {
		t.Errorf("Expected reset to the smallest scale, got %f", a.Scale())
	}
}

func TestHUDUpdateResetsArrowWhenEnemiesPresent(t *testing.T) {
	h := New(rendertest.NewRenderer(), config.DefaultConfig())
	h.Update(true)
	h.Update(true)
	if h.Arrow.Scale() == arrowMinScale {
		t.Fatalf("Expected the arrow to pulse while cleared")
	}
	h.Update(false)
	if h.Arrow.Scale() != arrowMinScale {
		t.Errorf("Expected the arrow reset once enemies return, got %f", h.Arrow.Scale())
	}
}

func TestDrawBars(t *testing.T) {
	r := rendertest.NewRenderer()
	h := New(r, config.DefaultConfig())
	h.DrawBars(rendertest.NewImage(800, 600), Status{Health: 120, MaxHealth: 150, Mana: 0, MaxMana: 100})

	for _, want := range []string{"HP", "MP", "120/150", "0/100"} {
		if !containsText(r.Texts, want) {
			t.Errorf("Expected %q drawn, got %v", want, r.Texts)
		}
	}
	if r.StrokedRects != 2 {
		t.Errorf("Expected 2 bar borders, got %d", r.StrokedRects)
	}
	if r.Rects != 4 {
		t.Errorf("Expected background and fill per bar, got %d rects", r.Rects)
	}
}

func TestDrawShowsArrowOnlyWhenCleared(t *testing.T) {
	cfg := config.DefaultConfig()
	tracker := stats.New()
	tracker.RecordKill(50)

	r := rendertest.NewRenderer()
	h := New(r, cfg)
	h.Draw(rendertest.NewImage(800, 600), Status{Health: 1, MaxHealth: 1}, tracker, false)
	if r.Lines != 0 {
		t.Errorf("Expected no arrow while enemies remain")
	}
	if !containsText(r.Texts, tracker.Summary()) {
		t.Errorf("Expected score drawn")
	}
	if !containsText(r.Texts, "Controls:") {
		t.Errorf("Expected the tutorial drawn at session start")
	}

	r = rendertest.NewRenderer()
	h = New(r, cfg)
	h.Draw(rendertest.NewImage(800, 600), Status{Health: 1, MaxHealth: 1}, tracker, true)
	if r.Lines == 0 {
		t.Errorf("Expected the arrow head drawn")
	}
}

func TestDrawGameOver(t *testing.T) {
	r := rendertest.NewRenderer()
	DrawGameOver(r, rendertest.NewImage(800, 600), 800, 600, stats.New())
	for _, want := range []string{"GAME OVER", "Press ENTER to continue", "Press ESC to quit"} {
		if !containsText(r.Texts, want) {
			t.Errorf("Expected %q drawn", want)
		}
	}
}

func TestDrawEnemyBar(t *testing.T) {
	r := rendertest.NewRenderer()
	DrawEnemyBar(r, rendertest.NewImage(800, 600), world.Rect{X: 100, Y: 100, W: 128, H: 128}, 0.5)
	if r.Rects != 2 || r.StrokedRects != 1 {
		t.Errorf("Expected background, fill and border, got %d rects %d borders", r.Rects, r.StrokedRects)
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
