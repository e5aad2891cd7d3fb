package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := decodeHarvest(defaultHarvestYAML)
	if err != nil {
		t.Fatalf("embedded default failed to decode: %v", err)
	}
	if cfg != DefaultHarvestConfig() {
		t.Errorf("embedded YAML differs from DefaultHarvestConfig():\n got %+v\nwant %+v", cfg, DefaultHarvestConfig())
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultHarvestConfig().Validate(); err != nil {
		t.Errorf("default config should be valid, got %v", err)
	}
}

func TestLoadHarvestFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadHarvest("")
	if err != nil {
		t.Fatalf("LoadHarvest() failed: %v", err)
	}
	if cfg != DefaultHarvestConfig() {
		t.Errorf("expected embedded defaults, got %+v", cfg)
	}
}

func TestLoadHarvestUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".harvest", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "harvest.yaml"), []byte("farmer:\n  speed: 400\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadHarvest("")
	if err != nil {
		t.Fatalf("LoadHarvest() failed: %v", err)
	}
	if cfg.Farmer.Speed != 400 {
		t.Errorf("Farmer.Speed = %f, expected 400 from user config", cfg.Farmer.Speed)
	}
}

func TestLoadHarvestCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("ramp:\n  rate: 0.05\ncrops:\n  points:\n    golden_apple: 10\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadHarvest(path)
	if err != nil {
		t.Fatalf("LoadHarvest() failed: %v", err)
	}

	if cfg.Ramp.Rate != 0.05 {
		t.Errorf("Ramp.Rate = %f, expected 0.05", cfg.Ramp.Rate)
	}
	if cfg.Crops.Points.GoldenApple != 10 {
		t.Errorf("GoldenApple points = %d, expected 10", cfg.Crops.Points.GoldenApple)
	}
	// Untouched keys keep their defaults
	if cfg.Crops.Points.Wheat != 1 || cfg.Field.Width != 900 || cfg.Ramp.Floor != 0.25 {
		t.Errorf("defaults not preserved: %+v", cfg)
	}
}

func TestLoadHarvestCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadHarvest(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("field: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadHarvest(broken); err == nil {
		t.Error("expected error for malformed YAML")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("farmer:\n  speed: -1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadHarvest(invalid)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*HarvestConfig)
	}{
		{"zero tile", func(c *HarvestConfig) { c.Field.Tile = 0 }},
		{"field too small", func(c *HarvestConfig) { c.Field.Width = 50 }},
		{"zero farmer", func(c *HarvestConfig) { c.Farmer.Width = 0 }},
		{"farmer too wide", func(c *HarvestConfig) { c.Farmer.Width = 1000 }},
		{"zero speed", func(c *HarvestConfig) { c.Farmer.Speed = 0 }},
		{"zero crop size", func(c *HarvestConfig) { c.Crops.Size = 0 }},
		{"negative weight", func(c *HarvestConfig) { c.Crops.Weights.Pumpkin = -1 }},
		{"all weights zero", func(c *HarvestConfig) { c.Crops.Weights = CropTable{} }},
		{"negative points", func(c *HarvestConfig) { c.Crops.Points.Wheat = -1 }},
		{"zero scarecrow", func(c *HarvestConfig) { c.Scarecrows.Size = 0 }},
		{"negative radius", func(c *HarvestConfig) { c.Scarecrows.SafeRadius = -5 }},
		{"short time cap", func(c *HarvestConfig) { c.Timing.TimeCap = 30 }},
		{"zero max step", func(c *HarvestConfig) { c.Timing.MaxStep = 0 }},
		{"zero floor", func(c *HarvestConfig) { c.Ramp.Floor = 0 }},
		{"negative rate", func(c *HarvestConfig) { c.Ramp.Rate = -0.1 }},
		{"smoothing above one", func(c *HarvestConfig) { c.Ramp.Smoothing = 1.5 }},
		{"radius covers field", func(c *HarvestConfig) { c.Scarecrows.SafeRadius = 5000 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultHarvestConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestFarmerStartAndGrid(t *testing.T) {
	cfg := DefaultHarvestConfig()

	x, y := cfg.FarmerStart()
	if x != 433 || y != 460 {
		t.Errorf("FarmerStart() = (%f, %f), expected (433, 460)", x, y)
	}

	spanX, spanY := cfg.GridSpan()
	if spanX != 28 || spanY != 16 {
		t.Errorf("GridSpan() = (%f, %f), expected (28, 16)", spanX, spanY)
	}
}

func TestSpawnRampTarget(t *testing.T) {
	ramp := NewSpawnRamp(DefaultHarvestConfig().Ramp)

	tests := []struct {
		base, elapsed, expected float64
	}{
		{0.9, 0, 0.9},
		{0.9, 10, 0.8},
		{0.9, 60, 0.3},
		{0.9, 100, 0.25}, // floored
		{0.4, 1000, 0.25},
	}

	for _, tc := range tests {
		got := ramp.Target(tc.base, tc.elapsed)
		if math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("Target(%f, %f) = %f, expected %f", tc.base, tc.elapsed, got, tc.expected)
		}
	}
}

func TestSpawnRampSmoothing(t *testing.T) {
	ramp := NewSpawnRamp(DefaultHarvestConfig().Ramp)

	// Target is 0.8; one frame closes 10% of the 0.1 gap
	next := ramp.Next(0.9, 0.9, 10)
	if math.Abs(next-0.89) > 1e-9 {
		t.Errorf("Next() = %f, expected 0.89", next)
	}

	// Converges toward but never below the floor
	current := 0.9
	for range 10000 {
		current = ramp.Next(current, 0.9, 500)
		if current < 0.25 {
			t.Fatalf("interval dropped below floor: %f", current)
		}
	}
	if math.Abs(current-0.25) > 1e-6 {
		t.Errorf("interval should converge to floor, got %f", current)
	}
}

func TestSpawnRampDisabled(t *testing.T) {
	ramp := NewSpawnRamp(DefaultHarvestConfig().Ramp)
	ramp.SetEnabled(false)

	if ramp.IsEnabled() {
		t.Error("ramp should report disabled")
	}
	if got := ramp.Next(0.7, 0.7, 300); got != 0.7 {
		t.Errorf("disabled ramp should hold the base interval, got %f", got)
	}
}

func TestApplyHarvestPreset(t *testing.T) {
	cfg := DefaultHarvestConfig()
	ApplyHarvestPreset(&cfg, DifficultySteady)
	if cfg.Ramp.Enabled {
		t.Error("steady preset should disable the ramp")
	}

	cfg = DefaultHarvestConfig()
	ApplyHarvestPreset(&cfg, DifficultyHard)
	if cfg.Ramp.Rate <= DefaultHarvestConfig().Ramp.Rate {
		t.Error("hard preset should ramp faster")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("hard preset should stay valid: %v", err)
	}

	cfg = DefaultHarvestConfig()
	ApplyHarvestPreset(&cfg, DifficultyNormal)
	if cfg != DefaultHarvestConfig() {
		t.Error("normal preset should leave defaults untouched")
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("ParsePreset(hard) failed")
	}
	if ParsePreset("nightmare") != "" {
		t.Error("unknown preset should map to empty")
	}
}
