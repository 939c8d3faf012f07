package terminal

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/ugaemi/mazechase-server/internal/game"
)

// noticeDuration is how long a rejected command stays on the help line.
const noticeDuration = 2 * time.Second

// App runs one session against a terminal screen.
type App struct {
	screen   tcell.Screen
	session  *game.Session
	ctrl     *Controller
	renderer *Renderer
	interval time.Duration

	notice      string
	noticeUntil time.Time

	// OnResult, when set, receives every finished run.
	OnResult func(game.RunResult)
}

// NewApp creates an App that advances session by interval per frame.
func NewApp(screen tcell.Screen, session *game.Session, interval time.Duration) *App {
	if interval <= 0 {
		interval = game.TickInterval
	}
	return &App{
		screen:   screen,
		session:  session,
		ctrl:     NewController(),
		renderer: NewRenderer(screen, session.LevelCount()),
		interval: interval,
	}
}

// Run polls input and ticks the session until the player quits or ctx is
// cancelled. The screen must already be initialized.
func (a *App) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	a.draw(time.Now())
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if quit := a.handleKey(ev, time.Now()); quit {
					return nil
				}
			case *tcell.EventResize:
				a.screen.Sync()
			}

		case now := <-ticker.C:
			a.tick(now)
		}
	}
}

func (a *App) handleKey(ev *tcell.EventKey, now time.Time) bool {
	cmds, quit := a.ctrl.HandleKey(ev, a.session.State(), now)
	if quit {
		return true
	}
	if len(cmds) == 0 {
		return false
	}

	for _, cmd := range cmds {
		if err := a.session.Handle(cmd); err != nil {
			if !errors.Is(err, game.ErrInvalidCommand) {
				slog.Warn("command failed", "command", cmd.Kind.String(), "error", err)
			}
			a.notice = err.Error()
			a.noticeUntil = now.Add(noticeDuration)
			break
		}
	}
	a.draw(now)
	return false
}

func (a *App) tick(now time.Time) {
	for _, ev := range a.session.Update(a.interval, a.ctrl.Input(now)) {
		if a.OnResult != nil {
			a.OnResult(ev.Result)
		}
	}
	a.draw(now)
}

func (a *App) draw(now time.Time) {
	if now.After(a.noticeUntil) {
		a.notice = ""
	}
	a.renderer.Draw(a.session.Frame(), a.notice)
}
