// Package menu implements the keyboard-driven screens shown outside of
// play: the main menu, options, credits and controls.
package menu

import (
	"fmt"
	"image/color"
	"math/rand"

	"chosenoffset.com/duskblade/internal/input"
	"chosenoffset.com/duskblade/internal/render"
)

// Action is what a screen asks the game to do after an update.
type Action int

const (
	ActionNone Action = iota
	ActionStart
	ActionControls
	ActionOptions
	ActionCredits
	ActionQuit
	ActionBack
	ActionChanged // An option was toggled
)

func (a Action) String() string {
	switch a {
	case ActionStart:
		return "start"
	case ActionControls:
		return "controls"
	case ActionOptions:
		return "options"
	case ActionCredits:
		return "credits"
	case ActionQuit:
		return "quit"
	case ActionBack:
		return "back"
	case ActionChanged:
		return "changed"
	default:
		return "none"
	}
}

// Screen is one menu page.
type Screen interface {
	Update(in input.Snapshot) Action
	Draw(screen render.Image)
}

var (
	titleColor    = color.RGBA{200, 40, 40, 255}
	subtitleColor = color.RGBA{180, 180, 180, 255}
	shadowColor   = color.RGBA{20, 20, 20, 255}
	buttonColor   = color.RGBA{50, 50, 60, 255}
	hoverColor    = color.RGBA{120, 30, 30, 255}
	borderColor   = color.RGBA{200, 40, 40, 255}
	textColor     = color.RGBA{220, 220, 220, 255}
)

// Button is a labelled box; the selected one is highlighted.
type Button struct {
	Label  string
	Action Action
	X, Y   int
	W, H   int
}

const (
	buttonWidth   = 180
	buttonHeight  = 35
	buttonSpacing = 10
)

// stackButtons lays labels out as a centred column starting at startY.
func stackButtons(width, startY int, labels []string, actions []Action) []Button {
	x := (width - buttonWidth) / 2
	buttons := make([]Button, len(labels))
	for i, label := range labels {
		buttons[i] = Button{
			Label:  label,
			Action: actions[i],
			X:      x,
			Y:      startY + i*(buttonHeight+buttonSpacing),
			W:      buttonWidth,
			H:      buttonHeight,
		}
	}
	return buttons
}

// page holds what every screen shares: size, renderer, backdrop and a
// button column with a keyboard cursor.
type page struct {
	renderer      render.Renderer
	width, height int
	embers        *Embers
	buttons       []Button
	selected      int
}

func newPage(r render.Renderer, w, h, embers, emberAlpha int, rng *rand.Rand) page {
	return page{
		renderer: r,
		width:    w,
		height:   h,
		embers:   NewEmbers(embers, w, h, emberAlpha, rng),
	}
}

// navigate moves the cursor with up/down, wrapping at the ends.
func (p *page) navigate(in input.Snapshot) {
	n := len(p.buttons)
	if n == 0 {
		return
	}
	if in.Pressed(input.Up) {
		p.selected = (p.selected - 1 + n) % n
	}
	if in.Pressed(input.Down) {
		p.selected = (p.selected + 1) % n
	}
}

// Selected returns the highlighted button index.
func (p *page) Selected() int { return p.selected }

func (p *page) drawBackground(screen render.Image) {
	// Vertical grey gradient in 10px bands
	const band = 10
	for y := 0; y < p.height; y += band {
		v := uint8(30 + float64(y)/float64(p.height)*25)
		p.renderer.FillRect(screen, 0, float32(y), float32(p.width), band, color.RGBA{v, v, v + 10, 255})
	}
	p.embers.Draw(p.renderer, screen)
}

func (p *page) drawCentered(screen render.Image, text string, cy int, clr color.Color, scale float64, shadow int) {
	w, h := p.renderer.MeasureText(text, scale)
	x := (p.width - w) / 2
	y := cy - h/2
	if shadow > 0 {
		p.renderer.DrawText(screen, text, x+shadow, y+shadow, shadowColor, scale)
	}
	p.renderer.DrawText(screen, text, x, y, clr, scale)
}

func (p *page) drawButtons(screen render.Image) {
	for i, b := range p.buttons {
		fill := buttonColor
		if i == p.selected {
			fill = hoverColor
		}
		p.renderer.FillRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), fill)
		p.renderer.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 2, borderColor)

		w, h := p.renderer.MeasureText(b.Label, 1.2)
		tx := b.X + (b.W-w)/2
		ty := b.Y + (b.H-h)/2
		p.renderer.DrawText(screen, b.Label, tx+1, ty+1, shadowColor, 1.2)
		p.renderer.DrawText(screen, b.Label, tx, ty, textColor, 1.2)
	}
}

// MainMenu is the title screen.
type MainMenu struct {
	page
	fadeAlpha int
}

// NewMainMenu creates the title screen for a w×h window.
func NewMainMenu(r render.Renderer, w, h int, rng *rand.Rand) *MainMenu {
	m := &MainMenu{page: newPage(r, w, h, 30, 100, rng), fadeAlpha: 255}
	total := 5 * (buttonHeight + buttonSpacing)
	m.buttons = stackButtons(w, (h-total)/2+50,
		[]string{"Start Game", "Controls", "Options", "Credits", "Quit"},
		[]Action{ActionStart, ActionControls, ActionOptions, ActionCredits, ActionQuit})
	return m
}

// SetResumable relabels the first entry when a paused session exists.
func (m *MainMenu) SetResumable(paused bool) {
	if paused {
		m.buttons[0].Label = "Resume"
	} else {
		m.buttons[0].Label = "Start Game"
	}
}

// Update moves the cursor and reports the chosen action on confirm.
func (m *MainMenu) Update(in input.Snapshot) Action {
	if m.fadeAlpha > 0 {
		m.fadeAlpha = max(0, m.fadeAlpha-5)
	}
	m.embers.Update()
	m.navigate(in)
	if in.Pressed(input.Confirm) {
		return m.buttons[m.selected].Action
	}
	return ActionNone
}

// Draw renders the title, buttons and the fade-in overlay.
func (m *MainMenu) Draw(screen render.Image) {
	m.drawBackground(screen)
	m.drawCentered(screen, "DUSKBLADE", m.height/6, titleColor, 5, 3)
	m.drawCentered(screen, "Rise of the Shadow Hunter", m.height/6+80, subtitleColor, 2, 2)
	m.drawButtons(screen)

	if m.fadeAlpha > 0 {
		m.renderer.FillRect(screen, 0, 0, float32(m.width), float32(m.height), color.NRGBA{A: uint8(m.fadeAlpha)})
	}
}

// Difficulty scales enemy damage.
type Difficulty int

const (
	Easy Difficulty = iota
	Normal
	Hard
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "Easy"
	case Hard:
		return "Hard"
	default:
		return "Normal"
	}
}

// DamageScale returns the multiplier applied to enemy attacks.
func (d Difficulty) DamageScale() float64 {
	switch d {
	case Easy:
		return 0.5
	case Hard:
		return 1.5
	default:
		return 1
	}
}

// Options are the player-adjustable settings.
type Options struct {
	SoundOn    bool
	Difficulty Difficulty
}

// DefaultOptions returns sound on, normal difficulty.
func DefaultOptions() Options {
	return Options{SoundOn: true, Difficulty: Normal}
}

// OptionsMenu toggles sound and cycles difficulty.
type OptionsMenu struct {
	page
	Options Options
}

// NewOptionsMenu creates the options screen starting from opts.
func NewOptionsMenu(r render.Renderer, w, h int, opts Options, rng *rand.Rand) *OptionsMenu {
	m := &OptionsMenu{page: newPage(r, w, h, 20, 80, rng), Options: opts}
	m.buttons = stackButtons(w, h/2+20,
		[]string{"", "", "Back"},
		[]Action{ActionChanged, ActionChanged, ActionBack})
	m.relabel()
	return m
}

func (m *OptionsMenu) relabel() {
	sound := "Off"
	if m.Options.SoundOn {
		sound = "On"
	}
	m.buttons[0].Label = "Sound: " + sound
	m.buttons[1].Label = fmt.Sprintf("Difficulty: %s", m.Options.Difficulty)
}

// Update applies toggles. Left and right also cycle difficulty while it is
// highlighted; escape goes back.
func (m *OptionsMenu) Update(in input.Snapshot) Action {
	m.embers.Update()
	m.navigate(in)

	if in.Pressed(input.Menu) {
		return ActionBack
	}

	step := 0
	switch {
	case in.Pressed(input.Confirm):
		switch m.selected {
		case 0:
			m.Options.SoundOn = !m.Options.SoundOn
			m.relabel()
			return ActionChanged
		case 1:
			step = 1
		default:
			return ActionBack
		}
	case m.selected == 1 && in.Pressed(input.Right):
		step = 1
	case m.selected == 1 && in.Pressed(input.Left):
		step = -1
	}
	if step != 0 {
		m.Options.Difficulty = Difficulty((int(m.Options.Difficulty) + step + 3) % 3)
		m.relabel()
		return ActionChanged
	}
	return ActionNone
}

// Draw renders the options screen.
func (m *OptionsMenu) Draw(screen render.Image) {
	m.drawBackground(screen)
	m.drawCentered(screen, "Options", m.height/5, titleColor, 4, 3)
	m.drawCentered(screen, "Game Settings", m.height/5+80, subtitleColor, 2, 2)
	m.drawButtons(screen)
}

type creditSection struct {
	heading string
	lines   []string
}

var credits = []creditSection{
	{"Design and Code", []string{"The Duskblade team"}},
	{"Thanks", []string{"Everyone who played the early builds"}},
	{"Built With", []string{
		"Ebitengine - 2D game engine",
		"beep - Sound synthesis",
		"yaml.v3 - Configuration",
	}},
}

// CreditsMenu scrolls the credits upward in a loop.
type CreditsMenu struct {
	page
	lines  []string
	scroll float64
}

// NewCreditsMenu creates the credits screen.
func NewCreditsMenu(r render.Renderer, w, h int, rng *rand.Rand) *CreditsMenu {
	m := &CreditsMenu{page: newPage(r, w, h, 20, 80, rng)}
	m.buttons = stackButtons(w, h-80, []string{"Back"}, []Action{ActionBack})
	for _, s := range credits {
		m.lines = append(m.lines, s.heading)
		m.lines = append(m.lines, s.lines...)
		m.lines = append(m.lines, "")
	}
	return m
}

const (
	creditsSpeed   = 0.5
	creditsSpacing = 60
)

// Update scrolls the list and returns to the menu on escape or confirm.
func (m *CreditsMenu) Update(in input.Snapshot) Action {
	m.embers.Update()
	m.scroll -= creditsSpeed
	if m.scroll < float64(-len(m.lines)*creditsSpacing+m.height/2) {
		m.scroll = 0
	}
	if in.Pressed(input.Menu) || in.Pressed(input.Confirm) {
		return ActionBack
	}
	return ActionNone
}

// Draw renders the visible part of the scrolling list.
func (m *CreditsMenu) Draw(screen render.Image) {
	m.drawBackground(screen)
	m.drawCentered(screen, "Credits", m.height/6, textColor, 3, 3)

	y := float64(m.height)/2.5 + m.scroll
	for _, line := range m.lines {
		if y > 0 && y < float64(m.height-120) && line != "" {
			m.drawCentered(screen, line, int(y), subtitleColor, 1.5, 0)
		}
		y += creditsSpacing
	}
	m.drawButtons(screen)
}

// ControlBinding is one row of the controls screen.
type ControlBinding struct {
	Action string
	Keys   string
}

// DefaultControls lists the default key bindings.
var DefaultControls = []ControlBinding{
	{"Move", "Left / Right"},
	{"Jump", "Space"},
	{"Attack", "X"},
	{"Magic", "C"},
	{"Dash", "Shift"},
	{"Shield", "V"},
	{"Menu", "Esc"},
}

// ControlsMenu lists the key bindings.
type ControlsMenu struct {
	page
	controls []ControlBinding
}

// NewControlsMenu creates the controls screen.
func NewControlsMenu(r render.Renderer, w, h int, rng *rand.Rand) *ControlsMenu {
	m := &ControlsMenu{page: newPage(r, w, h, 20, 80, rng), controls: DefaultControls}
	m.buttons = stackButtons(w, h-80, []string{"Back"}, []Action{ActionBack})
	return m
}

// Update returns to the menu on escape or confirm.
func (m *ControlsMenu) Update(in input.Snapshot) Action {
	m.embers.Update()
	if in.Pressed(input.Menu) || in.Pressed(input.Confirm) {
		return ActionBack
	}
	return ActionNone
}

// Draw renders the bindings as two columns either side of centre.
func (m *ControlsMenu) Draw(screen render.Image) {
	m.drawBackground(screen)
	m.drawCentered(screen, "Controls", m.height/6, titleColor, 4, 3)

	y := 150
	for _, c := range m.controls {
		label := c.Action + ":"
		w, _ := m.renderer.MeasureText(label, 2)
		m.renderer.DrawText(screen, label, m.width/2-20-w, y, titleColor, 2)
		m.renderer.DrawText(screen, c.Keys, m.width/2+20, y, textColor, 2)
		y += 40
	}
	m.drawButtons(screen)
}
