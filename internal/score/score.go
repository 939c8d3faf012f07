package score

import (
	"time"

	"github.com/google/uuid"

	"github.com/ugaemi/mazechase-server/internal/game"
)

// Record is one finished run on the score board.
type Record struct {
	ID        string    `json:"id"`
	RunID     string    `json:"run_id"`
	Nickname  string    `json:"nickname"`
	Level     int       `json:"level"`
	Score     int       `json:"score"`
	ElapsedMs int64     `json:"elapsed_ms"`
	Health    float64   `json:"health"`
	CreatedAt time.Time `json:"created_at"`
}

// NewRecord creates a score board entry for a finished run.
func NewRecord(nickname string, res game.RunResult) *Record {
	return &Record{
		ID:        uuid.New().String(),
		RunID:     res.RunID,
		Nickname:  nickname,
		Level:     res.Level,
		Score:     res.Score,
		ElapsedMs: res.Elapsed.Milliseconds(),
		Health:    res.Health,
		CreatedAt: time.Now(),
	}
}

// Less reports whether a ranks above b: higher score first, then the
// faster run, then the earlier entry.
func Less(a, b *Record) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	if a.ElapsedMs != b.ElapsedMs {
		return a.ElapsedMs < b.ElapsedMs
	}
	return a.CreatedAt.Before(b.CreatedAt)
}
