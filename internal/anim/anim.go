// Package anim defines the closed set of animation states shared by every
// entity kind, the per-state frame table, and the frame cursor that entities
// advance once per tick.
package anim

import (
	"errors"
	"fmt"
)

// State selects which frame sequence an entity plays.
type State int

const (
	Idle State = iota
	Running
	Walking
	Jumping
	Attacking
	Attacking2
	Attacking3
	Magic
	Dash
	Hurt
	Death

	stateCount
)

var stateNames = [stateCount]string{
	Idle:       "idle",
	Running:    "running",
	Walking:    "walking",
	Jumping:    "jumping",
	Attacking:  "attacking",
	Attacking2: "attacking2",
	Attacking3: "attacking3",
	Magic:      "magic",
	Dash:       "dash",
	Hurt:       "hurt",
	Death:      "death",
}

// String returns the state's config key.
func (s State) String() string {
	if s < 0 || s >= stateCount {
		return fmt.Sprintf("state(%d)", int(s))
	}
	return stateNames[s]
}

// ParseState maps a config key back to its State.
func ParseState(name string) (State, error) {
	for i, n := range stateNames {
		if n == name {
			return State(i), nil
		}
	}
	return Idle, fmt.Errorf("unknown animation state %q", name)
}

// MarshalText lets states be used as YAML map keys.
func (s State) MarshalText() ([]byte, error) {
	if s < 0 || s >= stateCount {
		return nil, fmt.Errorf("invalid animation state %d", int(s))
	}
	return []byte(stateNames[s]), nil
}

// UnmarshalText parses a state from its config key.
func (s *State) UnmarshalText(text []byte) error {
	parsed, err := ParseState(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Spec describes one animation: where its frames live and how long each
// frame is shown.
type Spec struct {
	Sheet      string `yaml:"sheet,omitempty"` // Overrides the entity sheet when set
	Row        int    `yaml:"row"`
	Frames     int    `yaml:"frames"`
	DurationMS int    `yaml:"duration_ms"`
}

// DurationTicks converts the per-frame duration into simulation ticks.
func (s Spec) DurationTicks(tps int) float64 {
	return float64(s.DurationMS) * float64(tps) / 1000.0
}

// Table maps each state to its animation.
type Table map[State]Spec

// Validate checks that every required state is present with a positive
// frame count and duration.
func (t Table) Validate(required []State) error {
	var errs []error
	for _, st := range required {
		spec, ok := t[st]
		if !ok {
			errs = append(errs, fmt.Errorf("missing animation %q", st))
			continue
		}
		if spec.Frames <= 0 {
			errs = append(errs, fmt.Errorf("animation %q: frames must be positive, got %d", st, spec.Frames))
		}
		if spec.DurationMS <= 0 {
			errs = append(errs, fmt.Errorf("animation %q: duration_ms must be positive, got %d", st, spec.DurationMS))
		}
		if spec.Row < 0 {
			errs = append(errs, fmt.Errorf("animation %q: row must not be negative, got %d", st, spec.Row))
		}
	}
	return errors.Join(errs...)
}

// Cursor tracks the playing state, its frame index and the tick timer.
type Cursor struct {
	State State
	Frame int
	Timer float64
}

// Set switches to a new state. Switching restarts the sequence so the frame
// index is always valid for the current state.
func (c *Cursor) Set(s State) {
	if c.State == s {
		return
	}
	c.State = s
	c.Frame = 0
	c.Timer = 0
}

// Advance moves the timer one tick forward and steps the frame when the
// state's duration has elapsed. Unknown states hold frame zero.
func (c *Cursor) Advance(t Table, tps int) {
	spec, ok := t[c.State]
	if !ok || spec.Frames <= 0 {
		c.Frame = 0
		return
	}
	c.Timer++
	if c.Timer >= spec.DurationTicks(tps) {
		c.Timer = 0
		c.Frame = (c.Frame + 1) % spec.Frames
	}
}
