// Package input turns raw key polling into a per-tick snapshot of logical
// actions. The simulation only ever sees a Snapshot.
package input

import (
	"fmt"
	"strings"

	"chosenoffset.com/duskblade/internal/render"
)

// Action is a logical control.
type Action int

const (
	Left Action = iota
	Right
	Up
	Down
	Jump
	Attack
	Magic
	Dash
	Shield
	Menu
	Confirm

	actionCount
)

var actionNames = [actionCount]string{"left", "right", "up", "down", "jump", "attack", "magic", "dash", "shield", "menu", "confirm"}

func (a Action) String() string {
	if a >= 0 && a < actionCount {
		return actionNames[a]
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// Snapshot records which actions are held and which went down this tick.
type Snapshot struct {
	held    [actionCount]bool
	pressed [actionCount]bool
}

// Held reports whether the action is down.
func (s Snapshot) Held(a Action) bool {
	return a >= 0 && a < actionCount && s.held[a]
}

// Pressed reports whether the action went down this tick.
func (s Snapshot) Pressed(a Action) bool {
	return a >= 0 && a < actionCount && s.pressed[a]
}

// Hold marks an action as held.
func (s *Snapshot) Hold(a Action) *Snapshot {
	s.held[a] = true
	return s
}

// Press marks an action as held and just pressed.
func (s *Snapshot) Press(a Action) *Snapshot {
	s.held[a] = true
	s.pressed[a] = true
	return s
}

func (s Snapshot) String() string {
	var parts []string
	for a := Action(0); a < actionCount; a++ {
		switch {
		case s.pressed[a]:
			parts = append(parts, "+"+a.String())
		case s.held[a]:
			parts = append(parts, a.String())
		}
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Bindings maps actions to keys.
type Bindings map[Action]render.Key

// DefaultBindings returns the classic layout: arrows to move, space to jump,
// X/C/shift/V for abilities.
func DefaultBindings() Bindings {
	return Bindings{
		Left:    render.KeyLeft,
		Right:   render.KeyRight,
		Up:      render.KeyUp,
		Down:    render.KeyDown,
		Jump:    render.KeySpace,
		Attack:  render.KeyX,
		Magic:   render.KeyC,
		Dash:    render.KeyShift,
		Shield:  render.KeyV,
		Menu:    render.KeyEscape,
		Confirm: render.KeyEnter,
	}
}

// Poll samples every bound key.
func Poll(im render.InputManager, b Bindings) Snapshot {
	var s Snapshot
	for a, k := range b {
		if a < 0 || a >= actionCount {
			continue
		}
		s.held[a] = im.IsKeyPressed(k)
		s.pressed[a] = im.IsKeyJustPressed(k)
	}
	return s
}
