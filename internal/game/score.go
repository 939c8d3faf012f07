package game

import "time"

// Score is the victory score for a run that took elapsed and ended with health.
func Score(elapsed time.Duration, health float64) int {
	remaining := max(0, (TimeBudget - elapsed).Milliseconds())
	timeBonus := int(remaining / 100)
	healthBonus := int(health * 10)
	return timeBonus + healthBonus
}
