package harvest

import (
	"math/rand"

	"github.com/vovakirdan/harvest-rush/internal/config"
	"github.com/vovakirdan/harvest-rush/internal/core"
)

// Spawner emits crops at a fixed interval measured by an accumulator.
// Spawned crops are not checked against existing crops or scarecrows.
type Spawner struct {
	accum float64
	rng   *rand.Rand
	cfg   config.HarvestConfig
}

// NewSpawner creates a spawner with an empty accumulator.
func NewSpawner(rng *rand.Rand, cfg config.HarvestConfig) *Spawner {
	return &Spawner{rng: rng, cfg: cfg}
}

// Reset empties the accumulator.
func (s *Spawner) Reset() {
	s.accum = 0
}

// Pending returns the time accumulated toward the next spawn.
func (s *Spawner) Pending() float64 {
	return s.accum
}

// Advance adds dt to the accumulator and returns one crop for every full
// interval it now holds.
func (s *Spawner) Advance(dt, interval float64) []Crop {
	s.accum += dt
	if interval <= 0 {
		return nil
	}

	var spawned []Crop
	for s.accum >= interval {
		s.accum -= interval
		spawned = append(spawned, s.spawn())
	}
	return spawned
}

// spawn creates one crop of a random kind on a random grid cell.
func (s *Spawner) spawn() Crop {
	c := randomCell(s.rng, s.cfg)
	kind := drawKind(s.rng, s.cfg.Crops.Weights)
	size := s.cfg.Crops.Size
	return Crop{
		Box:    core.NewBox(c.X, c.Y, size, size),
		Kind:   kind,
		Points: kind.Points(s.cfg.Crops.Points),
	}
}

// drawKind picks a crop kind proportionally to the weights.
// With the default 65/25/10 table that is common, uncommon, rare.
func drawKind(rng *rand.Rand, weights config.CropTable) Kind {
	total := weights.Total()
	if total <= 0 {
		return KindWheat
	}
	r := rng.Intn(total)
	if r < weights.Wheat {
		return KindWheat
	}
	if r < weights.Wheat+weights.Pumpkin {
		return KindPumpkin
	}
	return KindGoldenApple
}
