package terminal

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/ugaemi/mazechase-server/internal/game"
)

var (
	styleDefault  = tcell.StyleDefault
	styleWall     = tcell.StyleDefault.Foreground(tcell.Color(245))
	styleSwamp    = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleTrap     = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleStart    = tcell.StyleDefault.Foreground(tcell.Color(240))
	styleEnd      = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleEnemy    = tcell.StyleDefault.Foreground(tcell.ColorFuchsia)
	styleChasing  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	stylePlayer   = tcell.StyleDefault.Foreground(tcell.Color(51)).Bold(true)
	styleBlinking = tcell.StyleDefault.Foreground(tcell.Color(51)).Dim(true)
	styleTitle    = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleHelp     = tcell.StyleDefault.Foreground(tcell.Color(244))
	styleError    = tcell.StyleDefault.Foreground(tcell.ColorRed)
)

// Renderer draws frames onto a tcell screen. The top row is a status line,
// the bottom row shows key help and the arena is scaled into the rest.
type Renderer struct {
	screen     tcell.Screen
	levelCount int
}

// NewRenderer creates a renderer for a session with levelCount predefined
// levels.
func NewRenderer(screen tcell.Screen, levelCount int) *Renderer {
	return &Renderer{screen: screen, levelCount: levelCount}
}

// Draw renders f and flushes the screen. notice, when set, replaces the help
// line.
func (r *Renderer) Draw(f game.Frame, notice string) {
	r.screen.Clear()
	w, h := r.screen.Size()

	switch f.State {
	case game.StateMenu:
		r.drawMenu(w, h)
	case game.StateLevelSelect:
		r.drawLevelSelect(w, h)
	default:
		r.drawArena(f, w, h)
		r.drawStatus(f)
		switch f.State {
		case game.StateGameOver:
			r.drawBanner(f, w, h, "GAME OVER", "r: restart   m: menu")
		case game.StateVictory:
			r.drawBanner(f, w, h, "VICTORY", "n: next level   m: menu")
		}
	}

	if notice != "" {
		r.text(0, h-1, notice, styleError)
	} else {
		r.text(0, h-1, helpLine(f.State), styleHelp)
	}
	r.screen.Show()
}

func helpLine(s game.GameState) string {
	switch s {
	case game.StateMenu:
		return "1-9: level   r: random   l: levels   q: quit"
	case game.StateLevelSelect:
		return "1-9: play   m: back"
	case game.StatePlaying:
		return "wasd/arrows: move   m: menu   ctrl-c: quit"
	}
	return "ctrl-c: quit"
}

func (r *Renderer) drawMenu(w, h int) {
	lines := []string{
		"M A Z E   C H A S E",
		"",
		"Reach the yellow exit before the enemies catch you.",
		"Swamps slow you down, traps drain your health.",
		"",
		fmt.Sprintf("%d levels, then endless random mazes", r.levelCount),
	}
	top := max(1, h/2-len(lines))
	for i, line := range lines {
		style := styleDefault
		if i == 0 {
			style = styleTitle
		}
		r.centered(w, top+i, line, style)
	}
}

func (r *Renderer) drawLevelSelect(w, h int) {
	r.centered(w, 1, "SELECT LEVEL", styleTitle)
	for i := 0; i < r.levelCount && i < 9 && 3+i < h-1; i++ {
		r.centered(w, 3+i, fmt.Sprintf("%d  Level %d", i+1, i+1), styleDefault)
	}
}

func (r *Renderer) drawStatus(f game.Frame) {
	status := fmt.Sprintf("Level %d   Time %.1fs", f.Level, float64(f.ElapsedMs)/1000)
	if f.Player != nil {
		status += fmt.Sprintf("   Health %.0f/%.0f", f.Player.Health, f.Player.MaxHealth)
		if f.InvincibleMs > 0 {
			status += fmt.Sprintf("   Invincible %.1fs", float64(f.InvincibleMs)/1000)
		}
	}
	r.text(0, 0, status, styleDefault)
}

func (r *Renderer) drawBanner(f game.Frame, w, h int, title, keys string) {
	mid := h / 2
	r.centered(w, mid-1, title, styleTitle)
	if f.Result != nil {
		detail := fmt.Sprintf("%s after %.1fs", f.Result.Outcome, f.Result.Elapsed.Seconds())
		if f.Result.Outcome == game.OutcomeVictory {
			detail = fmt.Sprintf("score %d in %.1fs", f.Result.Score, f.Result.Elapsed.Seconds())
		}
		r.centered(w, mid, detail, styleDefault)
	}
	r.centered(w, mid+1, keys, styleHelp)
}

// view maps arena coordinates onto the screen rows between the status and
// help lines.
type view struct {
	sx, sy float64
	rows   int
	cols   int
}

func newView(w, h int) view {
	rows := max(1, h-2)
	return view{
		sx:   float64(w) / game.ArenaWidth,
		sy:   float64(rows) / game.ArenaHeight,
		rows: rows,
		cols: w,
	}
}

// cells returns the half-open cell span covered by rc. Every rectangle
// covers at least one cell.
func (v view) cells(rc game.Rect) (x0, y0, x1, y1 int) {
	x0 = int(math.Floor(rc.Left() * v.sx))
	y0 = int(math.Floor(rc.Top() * v.sy))
	x1 = max(x0+1, int(math.Ceil(rc.Right()*v.sx)))
	y1 = max(y0+1, int(math.Ceil(rc.Bottom()*v.sy)))

	x0, x1 = max(0, x0), min(v.cols, x1)
	y0, y1 = max(0, y0), min(v.rows, y1)
	return x0, y0, x1, y1
}

func (r *Renderer) drawArena(f game.Frame, w, h int) {
	v := newView(w, h)

	for _, o := range f.Obstacles {
		ch, style := obstacleGlyph(o.Kind)
		r.fill(v, o.Rect, ch, style)
	}
	if f.Start != nil {
		r.fill(v, *f.Start, '·', styleStart)
	}
	if f.End != nil {
		r.fill(v, *f.End, 'E', styleEnd)
	}
	for _, e := range f.Enemies {
		ch, style := 'm', styleEnemy
		if e.Chasing {
			ch, style = 'M', styleChasing
		}
		r.fill(v, e.Rect, ch, style)
	}
	if p := f.Player; p != nil {
		style := stylePlayer
		if p.Invincible && (f.InvincibleMs/200)%2 == 1 {
			style = styleBlinking
		}
		ch := '>'
		if p.Facing == game.FacingLeft {
			ch = '<'
		}
		r.fill(v, p.Rect, '@', style)
		x0, y0, _, _ := v.cells(p.Rect)
		r.screen.SetContent(x0, y0+1, ch, nil, style)
	}
}

func obstacleGlyph(k game.ObstacleKind) (rune, tcell.Style) {
	switch k {
	case game.KindWall:
		return '█', styleWall
	case game.KindSwamp:
		return '~', styleSwamp
	case game.KindTrap:
		return '^', styleTrap
	}
	return '?', styleDefault
}

func (r *Renderer) fill(v view, rc game.Rect, ch rune, style tcell.Style) {
	x0, y0, x1, y1 := v.cells(rc)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			r.screen.SetContent(x, y+1, ch, nil, style)
		}
	}
}

func (r *Renderer) text(x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

func (r *Renderer) centered(w, y int, s string, style tcell.Style) {
	n := len([]rune(s))
	r.text(max(0, (w-n)/2), y, s, style)
}
