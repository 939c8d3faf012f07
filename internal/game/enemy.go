package game

import (
	"math"
	"time"
)

// Pursue advances an enemy by one tick toward target, the player's rectangle.
// Chasing is re-evaluated from the current distance every tick. While chasing,
// the enemy follows a grid path that is recomputed every ReplanInterval (or
// whenever it runs out) and walks straight at the player when no path exists.
// Non-enemy obstacles are left untouched.
func (o *Obstacle) Pursue(target Rect, lvl *Level, now time.Duration) {
	e := o.Enemy
	if e == nil {
		return
	}

	e.InSwamp = InSwamp(o.Rect, lvl.Obstacles)
	speed := ChaseSpeed
	if e.InSwamp {
		speed = EnemySlowSpeed
	}

	from := o.Rect.Center()
	to := target.Center()
	e.Chasing = Distance(from.X, from.Y, to.X, to.Y) < ChaseRange
	if !e.Chasing {
		// Idle enemies stay put but keep facing the player.
		e.face(to.X - from.X)
		return
	}

	if now-e.LastReplan > ReplanInterval || len(e.Plan) == 0 {
		e.Plan = FindPath(lvl.Grid, lvl.Grid.CellAt(from), lvl.Grid.CellAt(to))
		e.LastReplan = now
	}

	if len(e.Plan) > 0 {
		if dist := o.steer(e.Plan[0], speed); dist < 2*speed {
			e.Plan = e.Plan[1:]
		}
		return
	}

	// No route: head straight for the player, even through walls.
	o.steer(to, speed)
}

// steer moves the enemy's center toward p by speed and returns the distance
// to p measured before the move (floored at 1).
func (o *Obstacle) steer(p Point, speed float64) float64 {
	c := o.Rect.Center()
	dx := p.X - c.X
	dy := p.Y - c.Y
	dist := math.Max(1, math.Hypot(dx, dy))

	o.Rect.X += dx / dist * speed
	o.Rect.Y += dy / dist * speed

	o.Enemy.face(dx)
	return dist
}

// face turns the enemy toward the sign of a horizontal offset. Zero keeps
// the current facing.
func (e *EnemyState) face(dx float64) {
	if dx > 0 {
		e.Facing = FacingRight
	} else if dx < 0 {
		e.Facing = FacingLeft
	}
}
