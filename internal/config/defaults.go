package config

import (
	_ "embed"
)

//go:embed defaults/harvest.yaml
var defaultHarvestYAML []byte

// DefaultHarvestConfig returns the default Harvest Rush configuration.
func DefaultHarvestConfig() HarvestConfig {
	return HarvestConfig{
		Field: FieldConfig{
			Width:  900,
			Height: 540,
			Tile:   30,
		},
		Farmer: FarmerConfig{
			Width:        34,
			Height:       34,
			Speed:        260,
			StartOffsetY: 80,
		},
		Crops: CropConfig{
			Size: 36,
			Weights: CropTable{
				Wheat:       65,
				Pumpkin:     25,
				GoldenApple: 10,
			},
			Points: CropTable{
				Wheat:       1,
				Pumpkin:     3,
				GoldenApple: 5,
			},
		},
		Scarecrows: ScarecrowConfig{
			Size:       80,
			SafeRadius: 120,
		},
		Timing: TimingConfig{
			TimeCap: 999,
			MaxStep: 0.033,
		},
		Ramp: RampConfig{
			Enabled:   true,
			Floor:     0.25,
			Rate:      0.01,
			Smoothing: 0.1,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "harvest", "harvest_steady":
		return defaultHarvestYAML
	default:
		return nil
	}
}
