package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/websocket"
	"github.com/ugaemi/mazechase-server/internal/config"
	"github.com/ugaemi/mazechase-server/internal/game"
	"github.com/ugaemi/mazechase-server/internal/handler"
	"github.com/ugaemi/mazechase-server/internal/room"
	"github.com/ugaemi/mazechase-server/internal/store"
	"github.com/ugaemi/mazechase-server/internal/ws"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for development
	},
}

func main() {
	cfg := config.Load()
	setupLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	levels, err := loadLevels(cfg)
	if err != nil {
		return err
	}

	scores, err := openScoreStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer scores.Close()

	interval := game.TickInterval
	if cfg.TickRate > 0 {
		interval = time.Second / time.Duration(cfg.TickRate)
	}

	hub := ws.NewHub()
	rm := room.NewManager(interval)
	defer rm.StopAll()
	router := handler.NewRouter(rm, levels, cfg.MazeSeed, scores)

	hub.OnMessage = router.HandleMessage
	hub.OnDisconnect = router.HandleDisconnect

	go hub.Run(ctx)

	mux := http.NewServeMux()
	mux.HandleFunc("/health", handleHealth)
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		handleWebSocket(hub, w, r)
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", srv.Addr, "levels", len(levels), "tick", interval)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func loadLevels(cfg *config.Config) ([]game.LevelData, error) {
	if cfg.LevelDir == "" {
		return game.PredefinedLevels(), nil
	}
	levels, err := game.LoadLevelDir(cfg.LevelDir)
	if err != nil {
		return nil, fmt.Errorf("load levels from %s: %w", cfg.LevelDir, err)
	}
	return levels, nil
}

func openScoreStore(ctx context.Context, cfg *config.Config) (store.ScoreStore, error) {
	if cfg.DatabaseURL == "" {
		slog.Warn("DATABASE_URL not set, scores are kept in memory")
		return store.NewMemoryStore(), nil
	}
	pg, err := store.NewPostgresStore(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("open score store: %w", err)
	}
	return pg, nil
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func handleWebSocket(hub *ws.Hub, w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("websocket upgrade failed", "error", err)
		return
	}

	client := ws.NewClient(hub.NextClientID(), hub, conn)
	if !hub.Join(client) {
		conn.Close()
		return
	}

	go client.WritePump()
	go client.ReadPump()
}

func setupLogger(cfg *config.Config) {
	var h slog.Handler
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

	switch cfg.LogFormat {
	case "json":
		h = slog.NewJSONHandler(os.Stdout, opts)
	default:
		h = slog.NewTextHandler(os.Stdout, opts)
	}

	slog.SetDefault(slog.New(h))
}
