package game

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"sort"
)

//go:embed levels/*.json
var levelFS embed.FS

// LevelData is the on-disk level descriptor.
type LevelData struct {
	Start     []float64      `json:"start,omitempty"`
	End       []float64      `json:"end,omitempty"`
	Obstacles []ObstacleData `json:"obstacles"`
}

// ObstacleData is one obstacle entry of a level descriptor.
type ObstacleData struct {
	X      float64     `json:"x"`
	Y      float64     `json:"y"`
	Width  float64     `json:"width"`
	Height float64     `json:"height"`
	Type   int         `json:"type"`
	Path   [][]float64 `json:"path,omitempty"`
}

// Level is the static layout of one run plus its live enemies.
type Level struct {
	Start     Point
	End       Point
	Obstacles []*Obstacle
	Grid      *GridMap
}

// ParseLevel decodes a JSON level descriptor.
func ParseLevel(data []byte) (LevelData, error) {
	var ld LevelData
	if err := json.Unmarshal(data, &ld); err != nil {
		return LevelData{}, fmt.Errorf("decode level: %w", err)
	}
	return ld, nil
}

// NewLevel builds a level from its descriptor. Missing start, end or
// obstacles fall back to defaults; an unknown obstacle type is an error.
func NewLevel(ld LevelData) (*Level, error) {
	start, err := markerOrDefault("start", ld.Start, Point{X: DefaultStartX, Y: DefaultStartY})
	if err != nil {
		return nil, err
	}
	end, err := markerOrDefault("end", ld.End, Point{X: DefaultEndX, Y: DefaultEndY})
	if err != nil {
		return nil, err
	}
	if ld.Obstacles == nil {
		slog.Warn("level descriptor missing field, using default", "field", "obstacles")
	}

	lvl := &Level{
		Start:     start,
		End:       end,
		Obstacles: make([]*Obstacle, 0, len(ld.Obstacles)),
	}
	for i, od := range ld.Obstacles {
		kind, err := ParseObstacleKind(od.Type)
		if err != nil {
			return nil, fmt.Errorf("obstacle %d: %w", i, err)
		}
		var patrol []Point
		if kind == KindEnemy {
			if patrol, err = parsePatrol(od.Path); err != nil {
				return nil, fmt.Errorf("obstacle %d: %w", i, err)
			}
		}
		r := Rect{X: od.X, Y: od.Y, Width: od.Width, Height: od.Height}
		lvl.Obstacles = append(lvl.Obstacles, NewObstacle(r, kind, patrol))
	}

	lvl.Grid = BuildGrid(lvl.Obstacles, CellSize)
	return lvl, nil
}

func markerOrDefault(field string, v []float64, fallback Point) (Point, error) {
	if v == nil {
		slog.Warn("level descriptor missing field, using default", "field", field,
			"x", fallback.X, "y", fallback.Y)
		return fallback, nil
	}
	if len(v) != 2 {
		return Point{}, fmt.Errorf("%s: want [x, y], got %d values", field, len(v))
	}
	return Point{X: v[0], Y: v[1]}, nil
}

func parsePatrol(waypoints [][]float64) ([]Point, error) {
	points := make([]Point, 0, len(waypoints))
	for i, wp := range waypoints {
		if len(wp) != 2 {
			return nil, fmt.Errorf("%w: waypoint %d has %d values", ErrInvalidPatrolPath, i, len(wp))
		}
		points = append(points, Point{X: wp[0], Y: wp[1]})
	}
	return points, nil
}

// EndRect is the exit marker the player must touch.
func (l *Level) EndRect() Rect {
	return Rect{X: l.End.X, Y: l.End.Y, Width: EndMarkerSize, Height: EndMarkerSize}
}

// Enemies returns the enemy obstacles in level order.
func (l *Level) Enemies() []*Obstacle {
	var enemies []*Obstacle
	for _, o := range l.Obstacles {
		if o.Kind == KindEnemy {
			enemies = append(enemies, o)
		}
	}
	return enemies
}

// PredefinedLevels returns the built-in level set in play order.
func PredefinedLevels() []LevelData {
	levels, err := loadLevels(levelFS, "levels")
	if err != nil {
		panic(fmt.Sprintf("embedded levels: %v", err))
	}
	return levels
}

// LoadLevelDir reads every *.json file in dir, ordered by file name.
func LoadLevelDir(dir string) ([]LevelData, error) {
	return loadLevels(os.DirFS(dir), ".")
}

func loadLevels(fsys fs.FS, dir string) ([]LevelData, error) {
	names, err := fs.Glob(fsys, path.Join(dir, "*.json"))
	if err != nil {
		return nil, err
	}
	sort.Strings(names)

	levels := make([]LevelData, 0, len(names))
	for _, name := range names {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, err
		}
		ld, err := ParseLevel(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		levels = append(levels, ld)
	}
	return levels, nil
}
