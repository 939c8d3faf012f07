package game

import (
	"fmt"
	"math/rand"
	"time"
)

// MazeGenerator lays out random levels by rejection sampling.
type MazeGenerator struct {
	rng         *rand.Rand
	width       int
	height      int
	maxAttempts int
}

// NewMazeGenerator creates a generator for the full arena. A zero seed picks
// one from the current time.
func NewMazeGenerator(seed int64) *MazeGenerator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &MazeGenerator{
		rng:         rand.New(rand.NewSource(seed)),
		width:       ArenaWidth,
		height:      ArenaHeight,
		maxAttempts: GenMaxAttempts,
	}
}

// Generate produces a level descriptor. Walls, swamps, traps and enemies are
// placed in that order; each candidate must not overlap anything accepted so
// far nor sit near the start or end marker. A category that cannot reach its
// count within the attempt cap fails with ErrGenerationStarvation.
func (g *MazeGenerator) Generate() (LevelData, error) {
	start := Point{X: GenStartX, Y: GenStartY}
	end := Point{X: float64(g.width) - GenEndInset, Y: float64(g.height) - GenEndInset}
	p := &placement{start: start, end: end}

	categories := []struct {
		kind  ObstacleKind
		count int
		draw  func() ObstacleData
	}{
		{KindWall, GenWallCount, g.drawWall},
		{KindSwamp, GenSwampCount, g.drawSwamp},
		{KindTrap, GenTrapCount, g.drawTrap},
		{KindEnemy, GenEnemyCount, g.drawEnemy},
	}
	for _, c := range categories {
		if err := p.fill(c.count, g.maxAttempts, c.draw); err != nil {
			return LevelData{}, fmt.Errorf("%s: %w", c.kind, err)
		}
	}

	return LevelData{
		Start:     []float64{start.X, start.Y},
		End:       []float64{end.X, end.Y},
		Obstacles: p.accepted,
	}, nil
}

// randInt returns a uniform integer in [lo, hi].
func (g *MazeGenerator) randInt(lo, hi int) float64 {
	return float64(lo + g.rng.Intn(hi-lo+1))
}

func (g *MazeGenerator) drawWall() ObstacleData {
	return ObstacleData{
		X:      g.randInt(0, g.width-100),
		Y:      g.randInt(0, g.height-50),
		Width:  g.randInt(20, 100),
		Height: g.randInt(20, 50),
		Type:   int(KindWall),
	}
}

func (g *MazeGenerator) drawSwamp() ObstacleData {
	return ObstacleData{
		X:      g.randInt(0, g.width-80),
		Y:      g.randInt(0, g.height-80),
		Width:  GenSwampSize,
		Height: GenSwampSize,
		Type:   int(KindSwamp),
	}
}

func (g *MazeGenerator) drawTrap() ObstacleData {
	return ObstacleData{
		X:      g.randInt(0, g.width-30),
		Y:      g.randInt(0, g.height-30),
		Width:  GenTrapSize,
		Height: GenTrapSize,
		Type:   int(KindTrap),
	}
}

func (g *MazeGenerator) drawEnemy() ObstacleData {
	x := g.randInt(100, g.width-200)
	y := g.randInt(100, g.height-200)
	return ObstacleData{
		X:      x,
		Y:      y,
		Width:  EnemyWidth,
		Height: EnemyHeight,
		Type:   int(KindEnemy),
		Path: [][]float64{
			{x, y},
			{x + GenPatrolWidth, y},
			{x + GenPatrolWidth, y + GenPatrolHeight},
			{x, y + GenPatrolHeight},
		},
	}
}

type placement struct {
	start, end Point
	accepted   []ObstacleData
}

func (p *placement) fill(count, maxAttempts int, draw func() ObstacleData) error {
	placed := 0
	for attempt := 0; placed < count; attempt++ {
		if attempt >= maxAttempts {
			return fmt.Errorf("%w: placed %d of %d after %d attempts",
				ErrGenerationStarvation, placed, count, maxAttempts)
		}
		cand := draw()
		if p.nearMarker(cand) || p.overlapsAccepted(cand) {
			continue
		}
		p.accepted = append(p.accepted, cand)
		placed++
	}
	return nil
}

func (p *placement) overlapsAccepted(cand ObstacleData) bool {
	r := obstacleRect(cand)
	for _, o := range p.accepted {
		if r.Overlaps(obstacleRect(o)) {
			return true
		}
	}
	return false
}

// nearMarker compares top-left corners against the markers on each axis.
func (p *placement) nearMarker(cand ObstacleData) bool {
	near := func(m Point) bool {
		return abs(cand.X-m.X) < GenMarkerMargin && abs(cand.Y-m.Y) < GenMarkerMargin
	}
	return near(p.start) || near(p.end)
}

func obstacleRect(o ObstacleData) Rect {
	return Rect{X: o.X, Y: o.Y, Width: o.Width, Height: o.Height}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
