package game

import "math"

// Cell addresses one square of the pathfinding grid.
type Cell struct {
	Col, Row int
}

// GridMap is a walkability raster of the arena's walls.
type GridMap struct {
	cols, rows int
	cellSize   int
	walkable   []bool
}

// BuildGrid rasterizes wall obstacles into a grid of cellSize squares.
// A wall blocks every cell its edges fall in, with the right and bottom
// edges pushed one cell outward so thin walls are never missed.
func BuildGrid(obstacles []*Obstacle, cellSize int) *GridMap {
	cols := ArenaWidth / cellSize
	rows := ArenaHeight / cellSize
	g := &GridMap{
		cols:     cols,
		rows:     rows,
		cellSize: cellSize,
		walkable: make([]bool, cols*rows),
	}
	for i := range g.walkable {
		g.walkable[i] = true
	}

	for _, o := range obstacles {
		if o.Kind != KindWall {
			continue
		}
		startCol := int(o.Rect.Left()) / cellSize
		endCol := min(int(o.Rect.Right())/cellSize+1, cols)
		startRow := int(o.Rect.Top()) / cellSize
		endRow := min(int(o.Rect.Bottom())/cellSize+1, rows)

		for col := max(startCol, 0); col < endCol; col++ {
			for row := max(startRow, 0); row < endRow; row++ {
				g.walkable[g.index(col, row)] = false
			}
		}
	}
	return g
}

// Cols returns the grid width in cells.
func (g *GridMap) Cols() int { return g.cols }

// Rows returns the grid height in cells.
func (g *GridMap) Rows() int { return g.rows }

func (g *GridMap) index(col, row int) int {
	return row*g.cols + col
}

// InBounds reports whether c lies on the grid.
func (g *GridMap) InBounds(c Cell) bool {
	return c.Col >= 0 && c.Row >= 0 && c.Col < g.cols && c.Row < g.rows
}

// Walkable reports whether c is on the grid and not covered by a wall.
func (g *GridMap) Walkable(c Cell) bool {
	return g.InBounds(c) && g.walkable[g.index(c.Col, c.Row)]
}

// CellAt returns the cell containing the world point p.
func (g *GridMap) CellAt(p Point) Cell {
	cs := float64(g.cellSize)
	return Cell{Col: int(math.Floor(p.X / cs)), Row: int(math.Floor(p.Y / cs))}
}

// CellCenter returns the world coordinate of c's center.
func (g *GridMap) CellCenter(c Cell) Point {
	return Point{
		X: float64(c.Col*g.cellSize + g.cellSize/2),
		Y: float64(c.Row*g.cellSize + g.cellSize/2),
	}
}
