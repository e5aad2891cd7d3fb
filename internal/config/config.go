// Package config provides YAML-based game configuration loading and
// difficulty management for Harvest Rush.
package config

import (
	"errors"
	"fmt"
	"math"
)

// HarvestConfig contains all configuration for Harvest Rush.
type HarvestConfig struct {
	Field      FieldConfig     `yaml:"field"`
	Farmer     FarmerConfig    `yaml:"farmer"`
	Crops      CropConfig      `yaml:"crops"`
	Scarecrows ScarecrowConfig `yaml:"scarecrows"`
	Timing     TimingConfig    `yaml:"timing"`
	Ramp       RampConfig      `yaml:"ramp"`
}

// FieldConfig defines the playing field in world units.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Tile   float64 `yaml:"tile"` // Grid size for crop and scarecrow placement
}

// FarmerConfig defines the player character.
type FarmerConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`          // World units per second
	StartOffsetY float64 `yaml:"start_offset_y"` // Distance of the start position above the bottom edge
}

// CropConfig defines collectibles.
type CropConfig struct {
	Size    float64   `yaml:"size"`
	Weights CropTable `yaml:"weights"` // Relative spawn weights
	Points  CropTable `yaml:"points"`  // Score per collected crop
}

// CropTable holds one integer per crop kind.
type CropTable struct {
	Wheat       int `yaml:"wheat"`
	Pumpkin     int `yaml:"pumpkin"`
	GoldenApple int `yaml:"golden_apple"`
}

// Total returns the sum of all entries.
func (t CropTable) Total() int {
	return t.Wheat + t.Pumpkin + t.GoldenApple
}

// ScarecrowConfig defines obstacles.
type ScarecrowConfig struct {
	Size       float64 `yaml:"size"`
	SafeRadius float64 `yaml:"safe_radius"` // Minimum distance from the farmer start
}

// TimingConfig defines countdown and frame-step limits.
type TimingConfig struct {
	TimeCap float64 `yaml:"time_cap"` // Upper clamp for the level countdown, seconds
	MaxStep float64 `yaml:"max_step"` // Upper clamp for a single frame delta, seconds
}

// FarmerStart returns the farmer start position for this field.
func (c HarvestConfig) FarmerStart() (float64, float64) {
	return c.Field.Width/2 - c.Farmer.Width/2, c.Field.Height - c.Farmer.StartOffsetY
}

// GridSpan returns the number of placement cells along each axis.
// Cells are inset from the field edges by one tile.
func (c HarvestConfig) GridSpan() (float64, float64) {
	return (c.Field.Width - 2*c.Field.Tile) / c.Field.Tile,
		(c.Field.Height - 2*c.Field.Tile) / c.Field.Tile
}

// maxScarecrows is the highest scarecrow count any level asks for.
const maxScarecrows = 6

// minTimeCap is the longest level countdown any level asks for.
const minTimeCap = 40

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid harvest config")

// Validate checks that the configuration describes a playable field.
// It reports the first problem found.
func (c HarvestConfig) Validate() error {
	switch {
	case c.Field.Tile <= 0:
		return fmt.Errorf("%w: field.tile must be positive", ErrInvalidConfig)
	case c.Field.Width <= 2*c.Field.Tile || c.Field.Height <= 2*c.Field.Tile:
		return fmt.Errorf("%w: field must be larger than two tiles in each direction", ErrInvalidConfig)
	case c.Farmer.Width <= 0 || c.Farmer.Height <= 0:
		return fmt.Errorf("%w: farmer size must be positive", ErrInvalidConfig)
	case c.Farmer.Width > c.Field.Width || c.Farmer.Height > c.Field.Height:
		return fmt.Errorf("%w: farmer does not fit in the field", ErrInvalidConfig)
	case c.Farmer.Speed <= 0:
		return fmt.Errorf("%w: farmer.speed must be positive", ErrInvalidConfig)
	case c.Crops.Size <= 0:
		return fmt.Errorf("%w: crops.size must be positive", ErrInvalidConfig)
	case c.Crops.Weights.Wheat < 0 || c.Crops.Weights.Pumpkin < 0 || c.Crops.Weights.GoldenApple < 0:
		return fmt.Errorf("%w: crops.weights must not be negative", ErrInvalidConfig)
	case c.Crops.Weights.Total() == 0:
		return fmt.Errorf("%w: crops.weights must not all be zero", ErrInvalidConfig)
	case c.Crops.Points.Wheat < 0 || c.Crops.Points.Pumpkin < 0 || c.Crops.Points.GoldenApple < 0:
		return fmt.Errorf("%w: crops.points must not be negative", ErrInvalidConfig)
	case c.Scarecrows.Size <= 0:
		return fmt.Errorf("%w: scarecrows.size must be positive", ErrInvalidConfig)
	case c.Scarecrows.SafeRadius < 0:
		return fmt.Errorf("%w: scarecrows.safe_radius must not be negative", ErrInvalidConfig)
	case c.Timing.TimeCap < minTimeCap:
		return fmt.Errorf("%w: timing.time_cap must be at least %d", ErrInvalidConfig, minTimeCap)
	case c.Timing.MaxStep <= 0:
		return fmt.Errorf("%w: timing.max_step must be positive", ErrInvalidConfig)
	case c.Ramp.Floor <= 0:
		return fmt.Errorf("%w: ramp.floor must be positive", ErrInvalidConfig)
	case c.Ramp.Rate < 0:
		return fmt.Errorf("%w: ramp.rate must not be negative", ErrInvalidConfig)
	case c.Ramp.Smoothing <= 0 || c.Ramp.Smoothing > 1:
		return fmt.Errorf("%w: ramp.smoothing must be in (0, 1]", ErrInvalidConfig)
	}

	if free := c.freeScarecrowCells(); free < maxScarecrows {
		return fmt.Errorf("%w: only %d grid cells clear of the farmer start, need %d",
			ErrInvalidConfig, free, maxScarecrows)
	}
	return nil
}

// freeScarecrowCells counts placement cells outside the farmer safe radius.
func (c HarvestConfig) freeScarecrowCells() int {
	spanX, spanY := c.GridSpan()
	cols, rows := int(math.Ceil(spanX)), int(math.Ceil(spanY))
	startX, startY := c.FarmerStart()

	free := 0
	for col := range cols {
		for row := range rows {
			x := float64(col)*c.Field.Tile + c.Field.Tile
			y := float64(row)*c.Field.Tile + c.Field.Tile
			if math.Hypot(x-startX, y-startY) >= c.Scarecrows.SafeRadius {
				free++
			}
		}
	}
	return free
}
