package config

import "math"

// RampConfig defines how the spawn interval shrinks while a level goes on.
type RampConfig struct {
	Enabled   bool    `yaml:"enabled"`
	Floor     float64 `yaml:"floor"`     // Absolute minimum spawn interval, seconds
	Rate      float64 `yaml:"rate"`      // Target reduction per second of level time
	Smoothing float64 `yaml:"smoothing"` // Fraction of the remaining gap closed per frame
}

// SpawnRamp eases the spawn interval toward a target that falls linearly
// with the time spent in the current level.
type SpawnRamp struct {
	cfg RampConfig
}

// NewSpawnRamp creates a new spawn ramp.
func NewSpawnRamp(cfg RampConfig) *SpawnRamp {
	return &SpawnRamp{cfg: cfg}
}

// SetEnabled enables or disables the in-level ramp.
func (r *SpawnRamp) SetEnabled(enabled bool) {
	r.cfg.Enabled = enabled
}

// IsEnabled returns whether the ramp is active.
func (r *SpawnRamp) IsEnabled() bool {
	return r.cfg.Enabled
}

// Target returns the interval the ramp is heading for after elapsed seconds
// in a level whose base interval is base.
func (r *SpawnRamp) Target(base, elapsed float64) float64 {
	if !r.cfg.Enabled {
		return math.Max(r.cfg.Floor, base)
	}
	return math.Max(r.cfg.Floor, base-r.cfg.Rate*elapsed)
}

// Next moves current a fixed fraction of the way toward the target.
// It never jumps straight to the target and never goes below the floor.
func (r *SpawnRamp) Next(current, base, elapsed float64) float64 {
	target := r.Target(base, elapsed)
	next := current + (target-current)*r.cfg.Smoothing
	return math.Max(r.cfg.Floor, next)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultySteady DifficultyPreset = "steady"
)

// ParsePreset converts a CLI value to a preset. Unknown values map to "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultySteady:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// ApplyHarvestPreset modifies the config based on a difficulty preset.
// The level curve itself is never changed; presets only tune the farmer
// and the in-level spawn ramp.
func ApplyHarvestPreset(cfg *HarvestConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Ramp.Enabled = true
		cfg.Ramp.Rate = 0.005
		cfg.Farmer.Speed = 300
	case DifficultyNormal:
		cfg.Ramp.Enabled = true
	case DifficultyHard:
		cfg.Ramp.Enabled = true
		cfg.Ramp.Rate = 0.02
		cfg.Ramp.Smoothing = 0.2
		cfg.Farmer.Speed = 230
	case DifficultySteady:
		cfg.Ramp.Enabled = false
	}
}
