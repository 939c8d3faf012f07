package game

// neighborOffsets is the fixed expansion order of the search. Among paths of
// equal length the first one discovered in this order wins.
var neighborOffsets = [...]Cell{
	{Col: 0, Row: -1},  // up
	{Col: 1, Row: 0},   // right
	{Col: 0, Row: 1},   // down
	{Col: -1, Row: 0},  // left
	{Col: 1, Row: 1},   // down-right
	{Col: -1, Row: -1}, // up-left
	{Col: -1, Row: 1},  // down-left
	{Col: 1, Row: -1},  // up-right
}

// FindPath runs a breadth-first search over the 8-connected grid and returns
// the cell centers from the step after start up to and including goal.
// It returns nil when start equals goal or goal cannot be reached.
func FindPath(g *GridMap, start, goal Cell) []Point {
	if start == goal || !g.InBounds(start) || !g.Walkable(goal) {
		return nil
	}

	visited := make([]bool, g.cols*g.rows)
	parent := make([]int, g.cols*g.rows)
	startIdx := g.index(start.Col, start.Row)
	visited[startIdx] = true

	queue := []Cell{start}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current == goal {
			return tracePath(g, parent, startIdx, current)
		}

		curIdx := g.index(current.Col, current.Row)
		for _, d := range neighborOffsets {
			next := Cell{Col: current.Col + d.Col, Row: current.Row + d.Row}
			if !g.Walkable(next) {
				continue
			}
			nIdx := g.index(next.Col, next.Row)
			if visited[nIdx] {
				continue
			}
			visited[nIdx] = true
			parent[nIdx] = curIdx
			queue = append(queue, next)
		}
	}
	return nil
}

func tracePath(g *GridMap, parent []int, startIdx int, end Cell) []Point {
	var cells []Cell
	for idx := g.index(end.Col, end.Row); idx != startIdx; idx = parent[idx] {
		cells = append(cells, Cell{Col: idx % g.cols, Row: idx / g.cols})
	}

	path := make([]Point, len(cells))
	for i, c := range cells {
		path[len(cells)-1-i] = g.CellCenter(c)
	}
	return path
}
