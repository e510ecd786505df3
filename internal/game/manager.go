package game

import (
	"log"
	"math/rand"

	"chosenoffset.com/duskblade/internal/config"
	"chosenoffset.com/duskblade/internal/input"
	"chosenoffset.com/duskblade/internal/render"
	"chosenoffset.com/duskblade/internal/sprites"
	"chosenoffset.com/duskblade/internal/ui/hud"
	"chosenoffset.com/duskblade/internal/ui/menu"
)

// Manager handles the overall game state, switching between the menu
// screens and gameplay. It implements render.Game.
type Manager struct {
	Cfg      *config.Config
	Renderer render.Renderer
	InputMgr render.InputManager
	Bindings input.Bindings

	Mode    Mode
	Session *Session
	Sound   Sound // May be nil
	Options menu.Options

	MainMenu     *menu.MainMenu
	OptionsMenu  *menu.OptionsMenu
	CreditsMenu  *menu.CreditsMenu
	ControlsMenu *menu.ControlsMenu

	// started is set once a session has been entered; escape from play
	// keeps it so start resumes instead of resetting.
	started bool
}

// NewManager creates a manager sitting on the main menu with a fresh
// session ready to start.
func NewManager(cfg *config.Config, r render.Renderer, im render.InputManager, lib *sprites.Library, sound Sound, rng *rand.Rand) *Manager {
	w, h := cfg.Screen.Width, cfg.Screen.Height
	opts := menu.DefaultOptions()

	m := &Manager{
		Cfg:          cfg,
		Renderer:     r,
		InputMgr:     im,
		Bindings:     input.DefaultBindings(),
		Mode:         ModeMenu,
		Session:      NewSession(cfg, r, lib, rng),
		Sound:        sound,
		Options:      opts,
		MainMenu:     menu.NewMainMenu(r, w, h, rng),
		OptionsMenu:  menu.NewOptionsMenu(r, w, h, opts, rng),
		CreditsMenu:  menu.NewCreditsMenu(r, w, h, rng),
		ControlsMenu: menu.NewControlsMenu(r, w, h, rng),
	}
	if sound != nil {
		m.Session.SetCueSink(sound)
	}
	return m
}

// ApplyOptions pushes the menu options into the audio and the session.
func (m *Manager) ApplyOptions(opts menu.Options) {
	m.Options = opts
	if m.Sound != nil {
		m.Sound.SetMuted(!opts.SoundOn)
	}
	m.Session.SetDamageScale(opts.Difficulty.DamageScale())
}

func (m *Manager) setMode(mode Mode) {
	if m.Mode == mode {
		return
	}
	log.Printf("Mode: %s -> %s", m.Mode, mode)
	m.Mode = mode
}

// Update polls input and advances whichever mode is active. It returns
// render.ErrQuit when quit is chosen from the main menu.
func (m *Manager) Update() error {
	return m.Step(input.Poll(m.InputMgr, m.Bindings))
}

// Step advances one tick with an already-polled snapshot.
func (m *Manager) Step(in input.Snapshot) error {
	switch m.Mode {
	case ModeMenu:
		switch m.MainMenu.Update(in) {
		case menu.ActionStart:
			m.started = true
			m.setMode(ModePlaying)
		case menu.ActionControls:
			m.setMode(ModeControls)
		case menu.ActionOptions:
			m.OptionsMenu.Options = m.Options
			m.setMode(ModeOptions)
		case menu.ActionCredits:
			m.setMode(ModeCredits)
		case menu.ActionQuit:
			log.Println("Quit requested")
			return render.ErrQuit
		}

	case ModeOptions:
		switch m.OptionsMenu.Update(in) {
		case menu.ActionChanged:
			m.ApplyOptions(m.OptionsMenu.Options)
		case menu.ActionBack:
			m.setMode(ModeMenu)
		}

	case ModeCredits:
		if m.CreditsMenu.Update(in) == menu.ActionBack {
			m.setMode(ModeMenu)
		}

	case ModeControls:
		if m.ControlsMenu.Update(in) == menu.ActionBack {
			m.setMode(ModeMenu)
		}

	case ModePlaying:
		if in.Pressed(input.Menu) {
			m.MainMenu.SetResumable(true)
			m.setMode(ModeMenu)
			return nil
		}
		if m.Session.Update(in) {
			log.Printf("Game over: %s", m.Session.World.Stats.Summary())
			m.setMode(ModeGameOver)
		}

	case ModeGameOver:
		switch {
		case in.Pressed(input.Confirm):
			m.Session.Reset()
			m.setMode(ModePlaying)
		case in.Pressed(input.Menu):
			m.Session.Reset()
			m.started = false
			m.MainMenu.SetResumable(false)
			m.setMode(ModeMenu)
		}
	}
	return nil
}

// Draw draws the current mode.
func (m *Manager) Draw(screen render.Image) {
	switch m.Mode {
	case ModeMenu:
		m.MainMenu.Draw(screen)
	case ModeOptions:
		m.OptionsMenu.Draw(screen)
	case ModeCredits:
		m.CreditsMenu.Draw(screen)
	case ModeControls:
		m.ControlsMenu.Draw(screen)
	case ModePlaying:
		m.Session.Draw(screen)
	case ModeGameOver:
		m.Session.Draw(screen)
		hud.DrawGameOver(m.Renderer, screen, m.Cfg.Screen.Width, m.Cfg.Screen.Height, m.Session.World.Stats)
	}
}

// Layout keeps the logical screen at the configured size; the backend
// scales it to the window.
func (m *Manager) Layout(outsideWidth, outsideHeight int) (int, int) {
	return m.Cfg.Screen.Width, m.Cfg.Screen.Height
}

// Started reports whether a session is in progress (possibly paused).
func (m *Manager) Started() bool { return m.started }
