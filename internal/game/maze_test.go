package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countKinds(ld LevelData) map[ObstacleKind]int {
	counts := make(map[ObstacleKind]int)
	for _, o := range ld.Obstacles {
		counts[ObstacleKind(o.Type)]++
	}
	return counts
}

func TestGenerate_Counts(t *testing.T) {
	ld, err := NewMazeGenerator(42).Generate()
	require.NoError(t, err)

	counts := countKinds(ld)
	assert.Equal(t, GenWallCount, counts[KindWall])
	assert.Equal(t, GenSwampCount, counts[KindSwamp])
	assert.Equal(t, GenTrapCount, counts[KindTrap])
	assert.Equal(t, GenEnemyCount, counts[KindEnemy])
	assert.Equal(t, []float64{20, 20}, ld.Start)
	assert.Equal(t, []float64{1040, 790}, ld.End)
}

func TestGenerate_PlacementConstraints(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		ld, err := NewMazeGenerator(seed).Generate()
		require.NoError(t, err)

		for i, a := range ld.Obstacles {
			for _, m := range [][]float64{ld.Start, ld.End} {
				near := abs(a.X-m[0]) < GenMarkerMargin && abs(a.Y-m[1]) < GenMarkerMargin
				assert.False(t, near, "seed %d obstacle %d too close to marker", seed, i)
			}
			for j := i + 1; j < len(ld.Obstacles); j++ {
				assert.False(t, obstacleRect(a).Overlaps(obstacleRect(ld.Obstacles[j])),
					"seed %d obstacles %d and %d overlap", seed, i, j)
			}
		}
	}
}

func TestGenerate_CategoryOrder(t *testing.T) {
	ld, err := NewMazeGenerator(3).Generate()
	require.NoError(t, err)

	prev := 0
	for _, o := range ld.Obstacles {
		assert.GreaterOrEqual(t, o.Type, prev, "walls, swamps, traps, then enemies")
		prev = o.Type
	}
}

func TestGenerate_EnemyPatrolLoop(t *testing.T) {
	ld, err := NewMazeGenerator(9).Generate()
	require.NoError(t, err)

	for _, o := range ld.Obstacles {
		if o.Type != int(KindEnemy) {
			assert.Empty(t, o.Path)
			continue
		}
		assert.Equal(t, [][]float64{
			{o.X, o.Y},
			{o.X + 100, o.Y},
			{o.X + 100, o.Y + 50},
			{o.X, o.Y + 50},
		}, o.Path)
		assert.Equal(t, EnemyWidth, o.Width)
		assert.Equal(t, EnemyHeight, o.Height)
	}
}

func TestGenerate_SeedIsDeterministic(t *testing.T) {
	a, err := NewMazeGenerator(1234).Generate()
	require.NoError(t, err)
	b, err := NewMazeGenerator(1234).Generate()
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestGenerate_BuildsValidLevel(t *testing.T) {
	ld, err := NewMazeGenerator(77).Generate()
	require.NoError(t, err)

	lvl, err := NewLevel(ld)
	require.NoError(t, err)
	assert.Len(t, lvl.Enemies(), GenEnemyCount)
}

func TestGenerate_Starvation(t *testing.T) {
	g := NewMazeGenerator(1)
	g.width = 120
	g.height = 120
	g.maxAttempts = 50

	_, err := g.Generate()
	assert.ErrorIs(t, err, ErrGenerationStarvation)
	assert.ErrorContains(t, err, "wall")
}
