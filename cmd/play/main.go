package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/ugaemi/mazechase-server/internal/config"
	"github.com/ugaemi/mazechase-server/internal/game"
	"github.com/ugaemi/mazechase-server/internal/terminal"
)

func main() {
	cfg := config.Load()
	closeLog := setupLogger(cfg)
	defer closeLog()

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "play needs an interactive terminal")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	levels := game.PredefinedLevels()
	if cfg.LevelDir != "" {
		var err error
		if levels, err = game.LoadLevelDir(cfg.LevelDir); err != nil {
			return fmt.Errorf("load levels from %s: %w", cfg.LevelDir, err)
		}
	}

	interval := game.TickInterval
	if cfg.TickRate > 0 {
		interval = time.Second / time.Duration(cfg.TickRate)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	screen.SetStyle(tcell.StyleDefault.
		Background(tcell.ColorDefault).
		Foreground(tcell.ColorWhite))
	screen.HideCursor()
	screen.Clear()

	session := game.NewSession(levels, game.NewMazeGenerator(cfg.MazeSeed))
	app := terminal.NewApp(screen, session, interval)
	app.OnResult = func(res game.RunResult) {
		slog.Info("run result", "level", res.Level, "outcome", res.Outcome.String(), "score", res.Score)
	}
	return app.Run(ctx)
}

// setupLogger writes logs to LOG_FILE, since stdout belongs to the screen.
func setupLogger(cfg *config.Config) func() {
	var w io.Writer = io.Discard
	closer := func() {}
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open log file: %v\n", err)
		} else {
			w = f
			closer = func() { f.Close() }
		}
	}

	opts := &slog.HandlerOptions{}
	switch cfg.LogLevel {
	case "debug":
		opts.Level = slog.LevelDebug
	case "warn":
		opts.Level = slog.LevelWarn
	case "error":
		opts.Level = slog.LevelError
	default:
		opts.Level = slog.LevelInfo
	}

	var h slog.Handler
	switch cfg.LogFormat {
	case "json":
		h = slog.NewJSONHandler(w, opts)
	default:
		h = slog.NewTextHandler(w, opts)
	}

	slog.SetDefault(slog.New(h))
	return closer
}
