package terminal

import (
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/ugaemi/mazechase-server/internal/game"
)

// HoldWindow is how long a movement key counts as held after its last
// press. Terminals report repeats but never releases.
const HoldWindow = 150 * time.Millisecond

type direction int

const (
	dirUp direction = iota
	dirRight
	dirDown
	dirLeft
	dirCount
)

// Controller turns key events into held movement and state commands.
type Controller struct {
	pressed [dirCount]time.Time
}

// NewController creates a Controller with nothing held.
func NewController() *Controller {
	return &Controller{}
}

// HandleKey records movement keys and maps the rest to commands for the
// given state. quit is true for Ctrl-C anywhere and q in the menu.
func (c *Controller) HandleKey(ev *tcell.EventKey, state game.GameState, now time.Time) (cmds []game.Command, quit bool) {
	if ev.Key() == tcell.KeyCtrlC {
		return nil, true
	}
	if d, ok := movementKey(ev); ok {
		c.pressed[d] = now
		return nil, false
	}

	escape := ev.Key() == tcell.KeyEscape
	var r rune
	if ev.Key() == tcell.KeyRune {
		r = unicode.ToLower(ev.Rune())
	}

	switch state {
	case game.StateMenu:
		switch {
		case r >= '1' && r <= '9':
			return []game.Command{{Kind: game.CmdStartLevel, Level: int(r - '0')}}, false
		case r == 'r':
			return []game.Command{{Kind: game.CmdStartRandom}}, false
		case r == 'l':
			return []game.Command{{Kind: game.CmdLevelSelect}}, false
		case r == 'q':
			return nil, true
		}

	case game.StateLevelSelect:
		switch {
		case r >= '1' && r <= '9':
			return []game.Command{
				{Kind: game.CmdMenu},
				{Kind: game.CmdStartLevel, Level: int(r - '0')},
			}, false
		case r == 'm' || escape:
			return []game.Command{{Kind: game.CmdMenu}}, false
		}

	case game.StatePlaying:
		if r == 'm' || escape {
			c.Release()
			return []game.Command{{Kind: game.CmdCancel}}, false
		}

	case game.StateGameOver:
		switch {
		case r == 'r':
			c.Release()
			return []game.Command{{Kind: game.CmdRestart}}, false
		case r == 'm' || escape:
			return []game.Command{{Kind: game.CmdMenu}}, false
		}

	case game.StateVictory:
		switch {
		case r == 'n' || r == ' ' || ev.Key() == tcell.KeyEnter:
			c.Release()
			return []game.Command{{Kind: game.CmdNext}}, false
		case r == 'm' || escape:
			return []game.Command{{Kind: game.CmdMenu}}, false
		}
	}
	return nil, false
}

// Input returns the movement held at now.
func (c *Controller) Input(now time.Time) game.Input {
	held := func(d direction) int {
		if t := c.pressed[d]; !t.IsZero() && now.Sub(t) < HoldWindow {
			return 1
		}
		return 0
	}
	return game.Input{
		DX: held(dirRight) - held(dirLeft),
		DY: held(dirDown) - held(dirUp),
	}
}

// Release forgets every held key.
func (c *Controller) Release() {
	c.pressed = [dirCount]time.Time{}
}

func movementKey(ev *tcell.EventKey) (direction, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return dirUp, true
	case tcell.KeyRight:
		return dirRight, true
	case tcell.KeyDown:
		return dirDown, true
	case tcell.KeyLeft:
		return dirLeft, true
	case tcell.KeyRune:
		switch unicode.ToLower(ev.Rune()) {
		case 'w':
			return dirUp, true
		case 'd':
			return dirRight, true
		case 's':
			return dirDown, true
		case 'a':
			return dirLeft, true
		}
	}
	return 0, false
}
