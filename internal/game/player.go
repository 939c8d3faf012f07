package game

// Player is the entity steered by the input collaborator.
type Player struct {
	Rect      Rect    `json:"rect"`
	Health    float64 `json:"health"`
	MaxHealth float64 `json:"max_health"`
	Speed     float64 `json:"speed"`
	Facing    Facing  `json:"facing"`
	InSwamp   bool    `json:"in_swamp"`

	Invincible bool `json:"invincible"`
}

// NewPlayer creates a square player with its top-left corner at p.
func NewPlayer(p Point, size float64) *Player {
	return &Player{
		Rect:      Rect{X: p.X, Y: p.Y, Width: size, Height: size},
		Health:    PlayerMaxHealth,
		MaxHealth: PlayerMaxHealth,
		Speed:     PlayerSpeed,
		Facing:    FacingRight,
	}
}

// EffectiveSpeed is the per-tick displacement, halved after a tick spent in a swamp.
func (p *Player) EffectiveSpeed() float64 {
	if p.InSwamp {
		return p.Speed / 2
	}
	return p.Speed
}

// Move applies a movement intent. dx and dy are in {-1, 0, 1}.
// Each axis is resolved on its own, horizontal first: displace, clamp to the
// arena, and revert the whole displacement if any wall now overlaps.
func (p *Player) Move(dx, dy int, obstacles []*Obstacle) {
	speed := p.EffectiveSpeed()

	if dx != 0 {
		if dx > 0 {
			p.Facing = FacingRight
		} else {
			p.Facing = FacingLeft
		}
		prev := p.Rect
		next := p.Rect
		next.X += float64(dx) * speed
		next = ClampX(next)
		if CollidesWithWall(next, obstacles) {
			next = prev
		}
		p.Rect = next
	}

	if dy != 0 {
		prev := p.Rect
		next := p.Rect
		next.Y += float64(dy) * speed
		next = ClampY(next)
		if CollidesWithWall(next, obstacles) {
			next = prev
		}
		p.Rect = next
	}
}

// CheckObstacles runs the per-tick contact pass. It refreshes InSwamp, drains
// health on traps and returns true as soon as an enemy hitbox is touched.
func (p *Player) CheckObstacles(obstacles []*Obstacle) bool {
	p.InSwamp = false
	for _, o := range obstacles {
		if o.Kind == KindEnemy {
			if o.LethalBox().Overlaps(p.Rect) {
				return true
			}
			continue
		}
		if !p.Rect.Overlaps(o.Rect) {
			continue
		}
		switch o.Kind {
		case KindSwamp:
			p.InSwamp = true
		case KindTrap:
			p.Damage(TrapDrain)
		}
	}
	return false
}

// Damage lowers health, never below zero.
func (p *Player) Damage(amount float64) {
	p.Health -= amount
	if p.Health < 0 {
		p.Health = 0
	}
}

// IsDead returns true once health is exhausted.
func (p *Player) IsDead() bool {
	return p.Health <= 0
}
