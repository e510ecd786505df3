package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"chosenoffset.com/duskblade/internal/config"
	"chosenoffset.com/duskblade/internal/world"
)

// maxVoices bounds how many cues may overlap
const maxVoices = 8

// Manager plays gameplay cues through the speaker. It implements
// world.CueSink; every method is safe before Init or after Close.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rate        beep.SampleRate
	master      float64
	muted       bool
	initialized bool
	played      [world.CueCount]int
}

// NewManager creates a manager from the audio config. Disabled audio starts
// muted.
func NewManager(cfg config.AudioConfig) *Manager {
	rate := cfg.SampleRate
	if rate <= 0 {
		rate = 44100
	}
	return &Manager{
		mixer:  &beep.Mixer{},
		rate:   beep.SampleRate(rate),
		master: cfg.MasterVolume,
		muted:  !cfg.Enabled,
	}
}

// Init opens the speaker and starts the mixer
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}
	if err := speaker.Init(m.rate, m.rate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("failed to open audio device: %w", err)
	}
	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Close silences everything
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Lock()
	m.mixer.Clear()
	speaker.Unlock()
	m.initialized = false
}

// Play implements world.CueSink
func (m *Manager) Play(c world.Cue) {
	if c < 0 || c >= world.CueCount {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.muted || !m.initialized {
		return
	}

	s := Render(Voices[c], m.rate, m.master)
	speaker.Lock()
	if m.mixer.Len() < maxVoices {
		m.mixer.Add(s)
		m.played[c]++
	}
	speaker.Unlock()
}

// SetMuted turns all cues off or back on
func (m *Manager) SetMuted(muted bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.muted = muted
}

// Muted reports whether cues are silenced
func (m *Manager) Muted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.muted
}

// Played returns how many times a cue has been mixed in
func (m *Manager) Played(c world.Cue) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c < 0 || c >= world.CueCount {
		return 0
	}
	return m.played[c]
}
