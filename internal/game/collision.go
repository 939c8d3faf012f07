package game

import "math"

// Point is a world coordinate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect is an axis-aligned box with its top-left corner at (X, Y).
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (r Rect) Left() float64 { return r.X }
func (r Rect) Top() float64 { return r.Y }
func (r Rect) Right() float64 { return r.X + r.Width }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Overlaps reports whether two rectangles intersect. Touching edges do not count.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && r.Right() > o.X &&
		r.Y < o.Bottom() && r.Bottom() > o.Y
}

// Inset shrinks the rectangle by d on every side.
func (r Rect) Inset(d float64) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, Width: r.Width - 2*d, Height: r.Height - 2*d}
}

// ClampX keeps the rectangle horizontally inside the arena.
func ClampX(r Rect) Rect {
	if r.Left() < 0 {
		r.X = 0
	} else if r.Right() > ArenaWidth {
		r.X = ArenaWidth - r.Width
	}
	return r
}

// ClampY keeps the rectangle vertically inside the arena.
func ClampY(r Rect) Rect {
	if r.Top() < 0 {
		r.Y = 0
	} else if r.Bottom() > ArenaHeight {
		r.Y = ArenaHeight - r.Height
	}
	return r
}

// Distance calculates the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	dx := x1 - x2
	dy := y1 - y2
	return math.Sqrt(dx*dx + dy*dy)
}

// CollidesWithWall returns true if r overlaps any wall obstacle.
func CollidesWithWall(r Rect, obstacles []*Obstacle) bool {
	for _, o := range obstacles {
		if o.Kind == KindWall && r.Overlaps(o.Rect) {
			return true
		}
	}
	return false
}

// InSwamp returns true if r overlaps any swamp obstacle.
func InSwamp(r Rect, obstacles []*Obstacle) bool {
	for _, o := range obstacles {
		if o.Kind == KindSwamp && r.Overlaps(o.Rect) {
			return true
		}
	}
	return false
}
