package game

import "errors"

var (
	ErrInvalidObstacleType  = errors.New("invalid obstacle type")
	ErrInvalidPatrolPath    = errors.New("invalid patrol path")
	ErrGenerationStarvation = errors.New("maze generation starved")
	ErrInvalidLevelNumber   = errors.New("invalid level number")
	ErrInvalidCommand       = errors.New("invalid command")
)
