package game

import "time"

// Arena dimensions (pixels)
const (
	ArenaWidth  = 1100
	ArenaHeight = 850
)

// Player
const (
	PlayerSize      = 60.0
	PlayerSpeed     = 3.0 // pixels per tick
	PlayerMaxHealth = 100.0
	TrapDrain       = 0.5 // health per tick while overlapping a trap
)

// Enemy
const (
	EnemyWidth     = 50.0
	EnemyHeight    = 40.0
	EnemyHitInset  = 10.0  // shrinks the lethal hitbox on every side
	ChaseRange     = 300.0 // pixels, center to center
	ChaseSpeed     = 2.0   // pixels per tick
	EnemySlowSpeed = 1.0   // pixels per tick while in a swamp
	ReplanInterval = 50 * time.Millisecond
)

// Pathfinding
const (
	CellSize = 20
)

// Markers
const (
	StartMarkerSize = 30.0
	EndMarkerSize   = 40.0
)

// Run timing and scoring
const (
	InvincibleDuration = 2000 * time.Millisecond
	TimeBudget         = 30000 * time.Millisecond
	TickRate           = 60 // ticks per second
	TickInterval       = time.Second / TickRate
)

// Level defaults used when a descriptor omits start or end.
const (
	DefaultStartX = 50.0
	DefaultStartY = 50.0
	DefaultEndX   = float64(ArenaWidth) - 100
	DefaultEndY   = float64(ArenaHeight) - 100
)

// Procedural generation
const (
	GenWallCount    = 15
	GenSwampCount   = 8
	GenTrapCount    = 10
	GenEnemyCount   = 4
	GenMarkerMargin = 100.0 // exclusion box half-size around start/end
	GenMaxAttempts  = 10000 // draws per category before giving up
	GenStartX       = 20.0
	GenStartY       = 20.0
	GenEndInset     = 60.0
	GenSwampSize    = 60.0
	GenTrapSize     = 25.0
	GenPatrolWidth  = 100.0
	GenPatrolHeight = 50.0
)
