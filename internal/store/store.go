package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/ugaemi/mazechase-server/internal/score"
)

// DefaultTopLimit is used when a leaderboard request does not name a limit.
const DefaultTopLimit = 10

// MaxTopLimit caps how many entries one leaderboard request returns.
const MaxTopLimit = 100

// ErrInvalidRecord is returned by Save for records that cannot be ranked.
var ErrInvalidRecord = errors.New("invalid score record")

// ScoreStore persists finished runs and ranks them per level.
type ScoreStore interface {
	// Save inserts a finished run.
	Save(ctx context.Context, rec *score.Record) error
	// Top returns the best runs for level, best first.
	Top(ctx context.Context, level, limit int) ([]*score.Record, error)
	// Close releases storage resources.
	Close() error
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return DefaultTopLimit
	}
	return min(limit, MaxTopLimit)
}

func validate(rec *score.Record) error {
	switch {
	case rec == nil:
		return ErrInvalidRecord
	case rec.ID == "":
		return fmt.Errorf("%w: missing id", ErrInvalidRecord)
	case rec.Level < 1:
		return fmt.Errorf("%w: level %d", ErrInvalidRecord, rec.Level)
	}
	return nil
}
