package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wall(x, y, w, h float64) *Obstacle {
	return NewObstacle(Rect{X: x, Y: y, Width: w, Height: h}, KindWall, nil)
}

func TestNewPlayer(t *testing.T) {
	p := NewPlayer(Point{X: 20, Y: 30}, PlayerSize)
	assert.Equal(t, Rect{X: 20, Y: 30, Width: 60, Height: 60}, p.Rect)
	assert.Equal(t, PlayerMaxHealth, p.Health)
	assert.Equal(t, PlayerSpeed, p.EffectiveSpeed())
	assert.Equal(t, FacingRight, p.Facing)
}

func TestPlayerMove_StaysInArena(t *testing.T) {
	t.Run("top-left corner", func(t *testing.T) {
		p := NewPlayer(Point{X: 1, Y: 0}, PlayerSize)
		p.Move(-1, -1, nil)
		assert.Equal(t, 0.0, p.Rect.Left())
		assert.Equal(t, 0.0, p.Rect.Top())
	})

	t.Run("bottom-right corner", func(t *testing.T) {
		p := NewPlayer(Point{X: ArenaWidth - PlayerSize - 1, Y: ArenaHeight - PlayerSize}, PlayerSize)
		p.Move(1, 1, nil)
		assert.Equal(t, float64(ArenaWidth), p.Rect.Right())
		assert.Equal(t, float64(ArenaHeight), p.Rect.Bottom())
	})
}

func TestPlayerMove_RandomWalkInvariants(t *testing.T) {
	levels := PredefinedLevels()
	lvl, err := NewLevel(levels[1])
	require.NoError(t, err)

	p := NewPlayer(lvl.Start, PlayerSize)
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 5000; i++ {
		p.InSwamp = rng.Intn(4) == 0
		p.Move(rng.Intn(3)-1, rng.Intn(3)-1, lvl.Obstacles)

		require.GreaterOrEqual(t, p.Rect.Left(), 0.0)
		require.GreaterOrEqual(t, p.Rect.Top(), 0.0)
		require.LessOrEqual(t, p.Rect.Right(), float64(ArenaWidth))
		require.LessOrEqual(t, p.Rect.Bottom(), float64(ArenaHeight))
		require.False(t, CollidesWithWall(p.Rect, lvl.Obstacles), "step %d: player inside a wall at %+v", i, p.Rect)
	}
}

func TestPlayerMove_SlidesAlongWall(t *testing.T) {
	p := NewPlayer(Point{X: 100, Y: 100}, 20)
	floor := wall(0, 121, 300, 20)

	p.Move(1, 1, []*Obstacle{floor})

	assert.Equal(t, 103.0, p.Rect.X, "horizontal part of a diagonal move should still apply")
	assert.Equal(t, 100.0, p.Rect.Y, "vertical part should be reverted")
}

func TestPlayerMove_RevertsWholeAxis(t *testing.T) {
	p := NewPlayer(Point{X: 78, Y: 0}, 20)
	p.Move(1, 0, []*Obstacle{wall(100, 0, 20, 100)})

	// A partial slide would leave the player flush at 80.
	assert.Equal(t, 78.0, p.Rect.X)
}

func TestPlayerMove_SwampHalvesSpeed(t *testing.T) {
	swamp := NewObstacle(Rect{X: 0, Y: 0, Width: 400, Height: 400}, KindSwamp, nil)
	obstacles := []*Obstacle{swamp}

	normal := NewPlayer(Point{X: 500, Y: 500}, PlayerSize)
	normal.Move(1, 0, obstacles)
	nominal := normal.Rect.X - 500

	slowed := NewPlayer(Point{X: 100, Y: 100}, PlayerSize)
	require.False(t, slowed.CheckObstacles(obstacles))
	require.True(t, slowed.InSwamp)
	slowed.Move(1, 0, obstacles)

	assert.Equal(t, PlayerSpeed, nominal)
	assert.Equal(t, nominal/2, slowed.Rect.X-100)
}

func TestPlayerMove_Facing(t *testing.T) {
	p := NewPlayer(Point{X: 500, Y: 500}, PlayerSize)

	p.Move(-1, 0, nil)
	assert.Equal(t, FacingLeft, p.Facing)

	p.Move(0, 1, nil)
	assert.Equal(t, FacingLeft, p.Facing, "vertical moves keep facing")

	p.Move(1, -1, nil)
	assert.Equal(t, FacingRight, p.Facing)
}

func TestPlayerMove_StopsFlushAgainstWall(t *testing.T) {
	lvl, err := NewLevel(LevelData{
		Start:     []float64{50, 50},
		End:       []float64{1000, 750},
		Obstacles: []ObstacleData{{X: 100, Y: 0, Width: 20, Height: 850, Type: int(KindWall)}},
	})
	require.NoError(t, err)

	p := NewPlayer(lvl.Start, 20)
	for i := 0; i < 30; i++ {
		p.Move(1, 0, lvl.Obstacles)
		require.LessOrEqual(t, p.Rect.Right(), 100.0)
	}
	assert.Equal(t, 100.0, p.Rect.Right())
}

func TestCheckObstacles_TrapDrain(t *testing.T) {
	trap := NewObstacle(Rect{X: 0, Y: 0, Width: 100, Height: 100}, KindTrap, nil)
	p := NewPlayer(Point{X: 10, Y: 10}, PlayerSize)

	prev := p.Health
	for i := 0; i < 250; i++ {
		assert.False(t, p.CheckObstacles([]*Obstacle{trap}))
		require.LessOrEqual(t, p.Health, prev)
		require.GreaterOrEqual(t, p.Health, 0.0)
		prev = p.Health
	}
	assert.Equal(t, 0.0, p.Health)
	assert.True(t, p.IsDead())
}

func TestCheckObstacles_SingleTickDrain(t *testing.T) {
	trap := NewObstacle(Rect{X: 0, Y: 0, Width: 100, Height: 100}, KindTrap, nil)
	p := NewPlayer(Point{X: 10, Y: 10}, PlayerSize)
	p.CheckObstacles([]*Obstacle{trap})
	assert.Equal(t, PlayerMaxHealth-TrapDrain, p.Health)
}

func TestCheckObstacles_SwampFlagResets(t *testing.T) {
	swamp := NewObstacle(Rect{X: 0, Y: 0, Width: 100, Height: 100}, KindSwamp, nil)
	p := NewPlayer(Point{X: 10, Y: 10}, PlayerSize)

	p.CheckObstacles([]*Obstacle{swamp})
	assert.True(t, p.InSwamp)

	p.Rect.X = 500
	p.CheckObstacles([]*Obstacle{swamp})
	assert.False(t, p.InSwamp)
}

func TestCheckObstacles_EnemyHitbox(t *testing.T) {
	p := NewPlayer(Point{X: 0, Y: 0}, 20)

	t.Run("outer rect only", func(t *testing.T) {
		enemy := NewObstacle(Rect{X: 15, Y: 15, Width: EnemyWidth, Height: EnemyHeight}, KindEnemy, nil)
		assert.True(t, p.Rect.Overlaps(enemy.Rect))
		assert.False(t, p.CheckObstacles([]*Obstacle{enemy}))
	})

	t.Run("inner hitbox", func(t *testing.T) {
		enemy := NewObstacle(Rect{X: 0, Y: 0, Width: EnemyWidth, Height: EnemyHeight}, KindEnemy, nil)
		assert.True(t, p.CheckObstacles([]*Obstacle{enemy}))
	})
}

func TestCheckObstacles_LethalShortCircuits(t *testing.T) {
	area := Rect{X: 0, Y: 0, Width: 100, Height: 100}
	obstacles := []*Obstacle{
		NewObstacle(area, KindEnemy, nil),
		NewObstacle(area, KindTrap, nil),
	}
	p := NewPlayer(Point{X: 10, Y: 10}, PlayerSize)

	assert.True(t, p.CheckObstacles(obstacles))
	assert.Equal(t, PlayerMaxHealth, p.Health, "obstacles after the lethal one are not checked")
}
