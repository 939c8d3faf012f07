package game

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLevel(t *testing.T, obstacles ...*Obstacle) *Level {
	t.Helper()
	return &Level{
		Start:     Point{X: DefaultStartX, Y: DefaultStartY},
		End:       Point{X: DefaultEndX, Y: DefaultEndY},
		Obstacles: obstacles,
		Grid:      BuildGrid(obstacles, CellSize),
	}
}

func enemyAt(x, y float64) *Obstacle {
	return NewObstacle(Rect{X: x, Y: y, Width: EnemyWidth, Height: EnemyHeight}, KindEnemy,
		[]Point{{X: x, Y: y}, {X: x + 100, Y: y}})
}

func playerRectAt(x, y float64) Rect {
	return Rect{X: x, Y: y, Width: PlayerSize, Height: PlayerSize}
}

func TestPursue_DormantOutsideRange(t *testing.T) {
	e := enemyAt(100, 100)
	lvl := testLevel(t, e)

	e.Pursue(playerRectAt(800, 600), lvl, 0)

	assert.False(t, e.Enemy.Chasing)
	assert.Equal(t, Rect{X: 100, Y: 100, Width: EnemyWidth, Height: EnemyHeight}, e.Rect)
	assert.Empty(t, e.Enemy.Plan)
}

func TestPursue_DormantEnemyFacesPlayer(t *testing.T) {
	e := enemyAt(500, 100)
	lvl := testLevel(t, e)

	e.Pursue(playerRectAt(50, 700), lvl, 0)
	assert.False(t, e.Enemy.Chasing)
	assert.Equal(t, FacingLeft, e.Enemy.Facing)
	assert.Equal(t, 500.0, e.Rect.X, "idle enemies do not move")

	e.Pursue(playerRectAt(1000, 700), lvl, 0)
	assert.Equal(t, FacingRight, e.Enemy.Facing)
}

func TestPursue_FollowsPath(t *testing.T) {
	e := enemyAt(100, 100)
	lvl := testLevel(t, e)

	e.Pursue(playerRectAt(300, 90), lvl, 10*time.Millisecond)

	assert.True(t, e.Enemy.Chasing)
	assert.NotEmpty(t, e.Enemy.Plan)
	assert.Equal(t, 10*time.Millisecond, e.Enemy.LastReplan)
	assert.Greater(t, e.Rect.X, 100.0)
	assert.Equal(t, FacingRight, e.Enemy.Facing)
}

func TestPursue_ChaseRangeIsRecheckedEveryTick(t *testing.T) {
	e := enemyAt(100, 100)
	lvl := testLevel(t, e)

	e.Pursue(playerRectAt(300, 90), lvl, 0)
	require.True(t, e.Enemy.Chasing)
	moved := e.Rect

	e.Pursue(playerRectAt(1000, 700), lvl, 20*time.Millisecond)
	assert.False(t, e.Enemy.Chasing)
	assert.Equal(t, moved, e.Rect, "out of range enemies stay idle")
}

func TestPursue_ReplanThrottle(t *testing.T) {
	e := enemyAt(100, 100)
	lvl := testLevel(t, e)
	target := playerRectAt(300, 90)

	e.Pursue(target, lvl, 0)
	require.NotEmpty(t, e.Enemy.Plan)

	sentinel := Point{X: 1000, Y: 120}
	e.Enemy.Plan = []Point{sentinel}

	e.Pursue(target, lvl, ReplanInterval)
	assert.Equal(t, []Point{sentinel}, e.Enemy.Plan, "replans only once the interval is exceeded")
	assert.Equal(t, time.Duration(0), e.Enemy.LastReplan)

	e.Pursue(target, lvl, ReplanInterval+time.Millisecond)
	assert.NotEqual(t, []Point{sentinel}, e.Enemy.Plan)
	assert.Equal(t, ReplanInterval+time.Millisecond, e.Enemy.LastReplan)
}

func TestPursue_EmptyPlanReplansImmediately(t *testing.T) {
	e := enemyAt(100, 100)
	lvl := testLevel(t, e)
	e.Enemy.LastReplan = 5 * time.Millisecond

	e.Pursue(playerRectAt(300, 90), lvl, 6*time.Millisecond)

	assert.NotEmpty(t, e.Enemy.Plan)
	assert.Equal(t, 6*time.Millisecond, e.Enemy.LastReplan)
}

func TestPursue_PopsReachedWaypoint(t *testing.T) {
	e := enemyAt(100, 100)
	lvl := testLevel(t, e)
	c := e.Rect.Center()
	far := Point{X: c.X + 200, Y: c.Y}
	e.Enemy.Plan = []Point{{X: c.X + 3, Y: c.Y}, far}

	e.Pursue(playerRectAt(300, 90), lvl, 10*time.Millisecond)

	assert.Equal(t, []Point{far}, e.Enemy.Plan)
	assert.InDelta(t, 102.0, e.Rect.X, 1e-9)
}

func TestPursue_VerticalMoveKeepsFacing(t *testing.T) {
	e := enemyAt(100, 100)
	e.Enemy.Facing = FacingLeft
	lvl := testLevel(t, e)
	c := e.Rect.Center()
	e.Enemy.Plan = []Point{{X: c.X, Y: c.Y + 100}}

	e.Pursue(playerRectAt(95, 250), lvl, 10*time.Millisecond)

	assert.Equal(t, FacingLeft, e.Enemy.Facing)
	assert.InDelta(t, 102.0, e.Rect.Y, 1e-9)
}

func TestPursue_SwampSlowsEnemy(t *testing.T) {
	tests := []struct {
		name  string
		swamp bool
		speed float64
	}{
		{"open ground", false, ChaseSpeed},
		{"in swamp", true, EnemySlowSpeed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := enemyAt(100, 100)
			obstacles := []*Obstacle{e}
			if tt.swamp {
				obstacles = append(obstacles, NewObstacle(Rect{X: 90, Y: 90, Width: 100, Height: 100}, KindSwamp, nil))
			}
			lvl := testLevel(t, obstacles...)

			e.Pursue(playerRectAt(300, 90), lvl, 0)

			moved := math.Hypot(e.Rect.X-100, e.Rect.Y-100)
			assert.InDelta(t, tt.speed, moved, 1e-9)
			assert.Equal(t, tt.swamp, e.Enemy.InSwamp)
		})
	}
}

func TestPursue_DirectFallbackCrossesWalls(t *testing.T) {
	e := enemyAt(150, 100)
	divider := wall(200, 0, 20, ArenaHeight)
	lvl := testLevel(t, e, divider)

	e.Pursue(playerRectAt(260, 100), lvl, 0)

	require.True(t, e.Enemy.Chasing)
	assert.Empty(t, e.Enemy.Plan, "no route through the divider")
	assert.Greater(t, e.Rect.X, 150.0)
	assert.Equal(t, FacingRight, e.Enemy.Facing)

	for i := 1; i <= 60; i++ {
		e.Pursue(playerRectAt(260, 100), lvl, time.Duration(i)*TickInterval)
	}
	assert.True(t, e.Rect.Overlaps(divider.Rect) || e.Rect.Center().X > 220,
		"fallback pursuit is allowed to enter walls")
}

func TestPursue_IgnoresNonEnemies(t *testing.T) {
	trap := NewObstacle(Rect{X: 100, Y: 100, Width: 25, Height: 25}, KindTrap, nil)
	lvl := testLevel(t, trap)

	trap.Pursue(playerRectAt(110, 110), lvl, 0)

	assert.Nil(t, trap.Enemy)
	assert.Equal(t, Rect{X: 100, Y: 100, Width: 25, Height: 25}, trap.Rect)
}

func TestPursue_PatrolPathUntouched(t *testing.T) {
	e := enemyAt(100, 100)
	patrol := append([]Point(nil), e.Enemy.PatrolPath...)
	lvl := testLevel(t, e)

	for i := 0; i < 30; i++ {
		e.Pursue(playerRectAt(300, 90), lvl, time.Duration(i)*TickInterval)
	}

	assert.Equal(t, patrol, e.Enemy.PatrolPath)
}
