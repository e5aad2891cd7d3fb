package harvest

import "math"

// LevelParams bundles every value the difficulty curve derives from a level.
type LevelParams struct {
	Level     int
	Goal      int     // Cumulative score needed to clear the level
	TimeLimit float64 // Countdown for the level, seconds
	SpawnBase float64 // Spawn interval at level start, seconds
	Obstacles int     // Scarecrows placed at level setup
}

// Curve returns the parameters for the given level.
func Curve(level int) LevelParams {
	level = max(level, 1)
	return LevelParams{
		Level:     level,
		Goal:      Goal(level),
		TimeLimit: TimeLimit(level),
		SpawnBase: SpawnBase(level),
		Obstacles: ObstacleCount(level),
	}
}

// Goal returns the cumulative score needed to clear a level.
// 50 at level 1, then +30 per level, with the step growing by 20 after
// level 5, by another 10 after level 10 and by another 5 after level 15.
func Goal(level int) int {
	level = max(level, 1)
	goal := 50 + (level-1)*30
	if level > 5 {
		goal += (level - 5) * 20
	}
	if level > 10 {
		goal += (level - 10) * 10
	}
	if level > 15 {
		goal += (level - 15) * 5
	}
	return goal
}

// TimeLimit returns the countdown for a level: 40s, 5s less per level, never under 20s.
func TimeLimit(level int) float64 {
	level = max(level, 1)
	return math.Max(20, 40-5*float64(level-1))
}

// SpawnBase returns the starting spawn interval: 0.9s, 0.1s less per level, never under 0.4s.
func SpawnBase(level int) float64 {
	level = max(level, 1)
	return math.Max(0.40, 0.9-0.1*float64(level-1))
}

// ObstacleCount returns how many scarecrows a level places: two at level 1, capped at six.
func ObstacleCount(level int) int {
	level = max(level, 1)
	return min(6, 1+level)
}
