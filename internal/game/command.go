package game

import (
	"encoding/json"
	"fmt"
	"time"
)

// Input is the movement intent held during one tick. DX and DY are in {-1, 0, 1}.
type Input struct {
	DX int `json:"dx"`
	DY int `json:"dy"`
}

// Normalize clamps both axes into {-1, 0, 1}.
func (in Input) Normalize() Input {
	return Input{DX: sign(in.DX), DY: sign(in.DY)}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// CommandKind is a discrete key press that drives state transitions.
type CommandKind int

const (
	CmdStartLevel CommandKind = iota
	CmdStartRandom
	CmdCancel
	CmdRestart
	CmdNext
	CmdMenu
	CmdLevelSelect
)

var commandNames = map[CommandKind]string{
	CmdStartLevel:  "start_level",
	CmdStartRandom: "start_random",
	CmdCancel:      "cancel",
	CmdRestart:     "restart",
	CmdNext:        "next",
	CmdMenu:        "menu",
	CmdLevelSelect: "level_select",
}

func (k CommandKind) String() string {
	if name, ok := commandNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseCommandKind maps a wire name to a CommandKind.
func ParseCommandKind(name string) (CommandKind, error) {
	for k, n := range commandNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown command %q", ErrInvalidCommand, name)
}

// Command is a key-press intent. Level is only read by CmdStartLevel.
type Command struct {
	Kind  CommandKind
	Level int
}

// EventKind identifies what happened during a tick or command.
type EventKind int

const (
	EventVictory EventKind = iota
	EventGameOver
)

func (k EventKind) String() string {
	switch k {
	case EventVictory:
		return "victory"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event reports a terminal transition together with the run's result.
type Event struct {
	Kind   EventKind
	Result RunResult
}

// RunResult summarizes a finished run.
type RunResult struct {
	RunID   string        `json:"run_id"`
	Level   int           `json:"level"`
	Outcome Outcome       `json:"outcome"`
	Elapsed time.Duration `json:"-"`
	Health  float64       `json:"health"`
	Score   int           `json:"score"`
}

// MarshalJSON adds elapsed time in milliseconds.
func (r RunResult) MarshalJSON() ([]byte, error) {
	type alias RunResult
	return json.Marshal(struct {
		alias
		ElapsedMs int64 `json:"elapsed_ms"`
	}{alias(r), r.Elapsed.Milliseconds()})
}
