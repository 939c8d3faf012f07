package game

import (
	"encoding/json"
	"fmt"
)

// GameState is the top-level state of a session.
type GameState int

const (
	StateMenu GameState = iota
	StatePlaying
	StateGameOver
	StateVictory
	StateLevelSelect
)

func (s GameState) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	case StateVictory:
		return "victory"
	case StateLevelSelect:
		return "level_select"
	default:
		return "unknown"
	}
}

// MarshalJSON serializes GameState as a string.
func (s GameState) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON parses the string form written by MarshalJSON.
func (s *GameState) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, s, []GameState{StateMenu, StatePlaying, StateGameOver, StateVictory, StateLevelSelect})
}

// Outcome describes how a run ended.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeVictory
	OutcomeCaught
	OutcomeDrained
)

func (o Outcome) String() string {
	switch o {
	case OutcomeVictory:
		return "victory"
	case OutcomeCaught:
		return "caught"
	case OutcomeDrained:
		return "drained"
	default:
		return "none"
	}
}

// MarshalJSON serializes Outcome as a string.
func (o Outcome) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.String())
}

// UnmarshalJSON parses the string form written by MarshalJSON.
func (o *Outcome) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, o, []Outcome{OutcomeNone, OutcomeVictory, OutcomeCaught, OutcomeDrained})
}

// Facing is the horizontal direction an entity looks toward.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}

// MarshalJSON serializes Facing as a string.
func (f Facing) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}

// UnmarshalJSON parses the string form written by MarshalJSON.
func (f *Facing) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, f, []Facing{FacingRight, FacingLeft})
}

func unmarshalEnum[T fmt.Stringer](data []byte, dst *T, values []T) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	for _, v := range values {
		if v.String() == name {
			*dst = v
			return nil
		}
	}
	return fmt.Errorf("unknown %T %q", *dst, name)
}
