package game

import "chosenoffset.com/duskblade/internal/world"

// Mode selects which subsystem receives ticks.
type Mode int

const (
	ModeMenu Mode = iota
	ModeOptions
	ModeCredits
	ModeControls
	ModePlaying
	ModeGameOver
)

func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModeOptions:
		return "options"
	case ModeCredits:
		return "credits"
	case ModeControls:
		return "controls"
	case ModePlaying:
		return "playing"
	case ModeGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Sound is the part of the audio manager the game drives.
type Sound interface {
	world.CueSink
	SetMuted(muted bool)
}
