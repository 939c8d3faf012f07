package game

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Session owns one player's game: the menu state machine, the current level
// and player, and the run clock. It is not safe for concurrent use.
type Session struct {
	levels []LevelData
	gen    *MazeGenerator

	state    GameState
	levelNum int
	runID    string
	level    *Level
	player   *Player
	clock    RunClock
	result   *RunResult
}

// NewSession creates a session in the menu. Level numbers past the end of
// levels are generated by gen.
func NewSession(levels []LevelData, gen *MazeGenerator) *Session {
	return &Session{
		levels: levels,
		gen:    gen,
		state:  StateMenu,
	}
}

// State returns the current top-level state.
func (s *Session) State() GameState { return s.state }

// LevelNumber returns the 1-based number of the current or last level.
func (s *Session) LevelNumber() int { return s.levelNum }

// LevelCount returns the number of predefined levels.
func (s *Session) LevelCount() int { return len(s.levels) }

// RunID returns the id of the current run, empty in the menu.
func (s *Session) RunID() string { return s.runID }

// Level returns the current level, nil in the menu.
func (s *Session) Level() *Level { return s.level }

// Player returns the current player, nil in the menu.
func (s *Session) Player() *Player { return s.player }

// Elapsed returns the run clock.
func (s *Session) Elapsed() time.Duration { return s.clock.Elapsed() }

// Result returns the outcome of the last finished run, or nil.
func (s *Session) Result() *RunResult { return s.result }

// Handle applies a key-press command. Commands that are not valid in the
// current state return ErrInvalidCommand and leave the session unchanged.
func (s *Session) Handle(cmd Command) error {
	switch s.state {
	case StateMenu:
		switch cmd.Kind {
		case CmdStartLevel:
			return s.start(cmd.Level)
		case CmdStartRandom:
			return s.start(len(s.levels) + 1)
		case CmdLevelSelect:
			s.state = StateLevelSelect
			return nil
		}
	case StatePlaying:
		if cmd.Kind == CmdCancel {
			s.toMenu()
			return nil
		}
	case StateGameOver:
		switch cmd.Kind {
		case CmdRestart:
			return s.start(s.levelNum)
		case CmdMenu, CmdCancel:
			s.toMenu()
			return nil
		}
	case StateVictory:
		switch cmd.Kind {
		case CmdNext:
			return s.start(s.levelNum + 1)
		case CmdMenu, CmdCancel:
			s.toMenu()
			return nil
		}
	case StateLevelSelect:
		if cmd.Kind == CmdMenu || cmd.Kind == CmdCancel {
			s.toMenu()
			return nil
		}
	}
	return fmt.Errorf("%w: %s in %s", ErrInvalidCommand, cmd.Kind, s.state)
}

// start builds level n and its player and begins a run. On failure the
// session keeps its previous state.
func (s *Session) start(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidLevelNumber, n)
	}

	var ld LevelData
	if n <= len(s.levels) {
		ld = s.levels[n-1]
	} else {
		var err error
		if ld, err = s.gen.Generate(); err != nil {
			return fmt.Errorf("generate level %d: %w", n, err)
		}
	}

	lvl, err := NewLevel(ld)
	if err != nil {
		return fmt.Errorf("load level %d: %w", n, err)
	}

	s.level = lvl
	s.player = NewPlayer(lvl.Start, PlayerSize)
	s.player.Invincible = true
	s.clock.Reset()
	s.levelNum = n
	s.runID = uuid.New().String()
	s.result = nil
	s.state = StatePlaying

	slog.Info("level started", "run", s.runID, "level", n,
		"generated", n > len(s.levels), "obstacles", len(lvl.Obstacles))
	return nil
}

func (s *Session) toMenu() {
	s.state = StateMenu
	s.level = nil
	s.player = nil
	s.runID = ""
	s.clock.Reset()
}

// Update advances a running level by one tick of length dt. The player moves
// first, then every enemy, then contact, health and exit checks run unless
// the invincibility window is still open. An exit overlap outranks a lethal
// contact or drained health in the same tick. Outside StatePlaying it does nothing.
func (s *Session) Update(dt time.Duration, in Input) []Event {
	if s.state != StatePlaying {
		return nil
	}

	s.clock.Advance(dt)
	now := s.clock.Elapsed()
	s.player.Invincible = now <= InvincibleDuration

	in = in.Normalize()
	if in.DX != 0 || in.DY != 0 {
		s.player.Move(in.DX, in.DY, s.level.Obstacles)
	}

	for _, o := range s.level.Obstacles {
		o.Pursue(s.player.Rect, s.level, now)
	}

	if s.player.Invincible {
		return nil
	}

	caught := s.player.CheckObstacles(s.level.Obstacles)
	drained := s.player.IsDead()

	// Reaching the exit wins even if the same tick was lethal.
	switch {
	case s.player.Rect.Overlaps(s.level.EndRect()):
		return s.finish(OutcomeVictory)
	case caught:
		return s.finish(OutcomeCaught)
	case drained:
		return s.finish(OutcomeDrained)
	}
	return nil
}

func (s *Session) finish(outcome Outcome) []Event {
	res := RunResult{
		RunID:   s.runID,
		Level:   s.levelNum,
		Outcome: outcome,
		Elapsed: s.clock.Elapsed(),
		Health:  s.player.Health,
	}

	kind := EventGameOver
	s.state = StateGameOver
	if outcome == OutcomeVictory {
		kind = EventVictory
		s.state = StateVictory
		res.Score = Score(res.Elapsed, res.Health)
	}
	s.result = &res

	slog.Info("run finished", "run", s.runID, "level", s.levelNum,
		"outcome", outcome.String(), "elapsed", res.Elapsed, "score", res.Score)
	return []Event{{Kind: kind, Result: res}}
}
