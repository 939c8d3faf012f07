package game

import (
	"encoding/json"
	"fmt"
	"time"
)

// ObstacleKind tags what an obstacle does to entities that overlap it.
type ObstacleKind int

// Values match the "type" field of the level file format.
const (
	KindWall  ObstacleKind = 1
	KindSwamp ObstacleKind = 2
	KindTrap  ObstacleKind = 3
	KindEnemy ObstacleKind = 4
)

func (k ObstacleKind) String() string {
	switch k {
	case KindWall:
		return "wall"
	case KindSwamp:
		return "swamp"
	case KindTrap:
		return "trap"
	case KindEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// MarshalJSON serializes ObstacleKind as a string.
func (k ObstacleKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// UnmarshalJSON parses the string form written by MarshalJSON.
func (k *ObstacleKind) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, k, []ObstacleKind{KindWall, KindSwamp, KindTrap, KindEnemy})
}

// ParseObstacleKind maps a level file type code to an ObstacleKind.
func ParseObstacleKind(code int) (ObstacleKind, error) {
	k := ObstacleKind(code)
	switch k {
	case KindWall, KindSwamp, KindTrap, KindEnemy:
		return k, nil
	}
	return 0, fmt.Errorf("%w: %d", ErrInvalidObstacleType, code)
}

// Obstacle is a placed rectangle in a level. Only enemies carry AI state.
type Obstacle struct {
	Rect  Rect
	Kind  ObstacleKind
	Enemy *EnemyState
}

// EnemyState is the pursuit state of a single enemy.
type EnemyState struct {
	// PatrolPath is set at load time and never mutated.
	PatrolPath []Point
	// Plan is replaced wholesale on replan and only ever shrinks from the front.
	Plan       []Point
	LastReplan time.Duration
	InSwamp    bool
	Chasing    bool
	Facing     Facing
}

// NewObstacle creates an obstacle. Enemies get a fresh AI state.
func NewObstacle(r Rect, kind ObstacleKind, patrol []Point) *Obstacle {
	o := &Obstacle{Rect: r, Kind: kind}
	if kind == KindEnemy {
		o.Enemy = &EnemyState{
			PatrolPath: append([]Point(nil), patrol...),
		}
	}
	return o
}

// LethalBox returns the shrunk hitbox used for enemy contact.
func (o *Obstacle) LethalBox() Rect {
	return o.Rect.Inset(EnemyHitInset)
}
