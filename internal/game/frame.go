package game

// Frame is everything a renderer needs for one tick. Renderers read it and
// never write back into the session.
type Frame struct {
	State        GameState      `json:"state"`
	Level        int            `json:"level"`
	RunID        string         `json:"run_id,omitempty"`
	ElapsedMs    int64          `json:"elapsed_ms"`
	InvincibleMs int64          `json:"invincible_ms"` // remaining window
	Player       *PlayerView    `json:"player,omitempty"`
	Start        *Rect          `json:"start,omitempty"`
	End          *Rect          `json:"end,omitempty"`
	Obstacles    []ObstacleView `json:"obstacles,omitempty"`
	Enemies      []EnemyView    `json:"enemies,omitempty"`
	Result       *RunResult     `json:"result,omitempty"`
}

// PlayerView is the render-facing part of the player.
type PlayerView struct {
	Rect       Rect    `json:"rect"`
	Health     float64 `json:"health"`
	MaxHealth  float64 `json:"max_health"`
	Facing     Facing  `json:"facing"`
	Invincible bool    `json:"invincible"`
}

// ObstacleView is a static obstacle.
type ObstacleView struct {
	Rect Rect         `json:"rect"`
	Kind ObstacleKind `json:"kind"`
}

// EnemyView is an enemy's current position and heading.
type EnemyView struct {
	Rect    Rect   `json:"rect"`
	Facing  Facing `json:"facing"`
	Chasing bool   `json:"chasing"`
}

// Frame snapshots the session for rendering.
func (s *Session) Frame() Frame {
	f := Frame{
		State:     s.state,
		Level:     s.levelNum,
		RunID:     s.runID,
		ElapsedMs: s.clock.Elapsed().Milliseconds(),
		Result:    s.result,
	}
	if s.level == nil || s.player == nil {
		return f
	}

	if s.player.Invincible {
		f.InvincibleMs = max(0, (InvincibleDuration - s.clock.Elapsed()).Milliseconds())
	}
	f.Player = &PlayerView{
		Rect:       s.player.Rect,
		Health:     s.player.Health,
		MaxHealth:  s.player.MaxHealth,
		Facing:     s.player.Facing,
		Invincible: s.player.Invincible,
	}
	f.Start = &Rect{X: s.level.Start.X, Y: s.level.Start.Y, Width: StartMarkerSize, Height: StartMarkerSize}
	end := s.level.EndRect()
	f.End = &end

	for _, o := range s.level.Obstacles {
		if o.Enemy != nil {
			f.Enemies = append(f.Enemies, EnemyView{Rect: o.Rect, Facing: o.Enemy.Facing, Chasing: o.Enemy.Chasing})
			continue
		}
		f.Obstacles = append(f.Obstacles, ObstacleView{Rect: o.Rect, Kind: o.Kind})
	}
	return f
}
