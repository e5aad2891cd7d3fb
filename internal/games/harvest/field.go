package harvest

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/harvest-rush/internal/config"
	"github.com/vovakirdan/harvest-rush/internal/core"
)

// maxLayoutAttempts bounds the random search before the deterministic sweep.
const maxLayoutAttempts = 1000

// cell is a grid-aligned placement position.
type cell struct {
	X, Y float64
}

// randomCell picks a tile-aligned position inset one tile from every edge.
func randomCell(rng *rand.Rand, cfg config.HarvestConfig) cell {
	spanX, spanY := cfg.GridSpan()
	tile := cfg.Field.Tile
	return cell{
		X: math.Floor(rng.Float64()*spanX)*tile + tile,
		Y: math.Floor(rng.Float64()*spanY)*tile + tile,
	}
}

// layoutScarecrows places count scarecrows on distinct grid cells that keep
// the safe radius from the farmer start.
//
// Cells are drawn at random first. A rejected cell is never retried. If the
// random search runs out of attempts the remaining scarecrows go to the first
// free cells in grid order, so the count always matches for a valid config.
func layoutScarecrows(rng *rand.Rand, cfg config.HarvestConfig, count int) []Scarecrow {
	startX, startY := cfg.FarmerStart()
	size := cfg.Scarecrows.Size
	used := make(map[cell]bool, count*2)
	out := make([]Scarecrow, 0, count)

	accept := func(c cell) bool {
		if used[c] {
			return false
		}
		used[c] = true
		if math.Hypot(c.X-startX, c.Y-startY) < cfg.Scarecrows.SafeRadius {
			return false
		}
		out = append(out, Scarecrow{Box: core.NewBox(c.X, c.Y, size, size)})
		return true
	}

	for attempt := 0; len(out) < count && attempt < maxLayoutAttempts; attempt++ {
		accept(randomCell(rng, cfg))
	}

	if len(out) < count {
		spanX, spanY := cfg.GridSpan()
		tile := cfg.Field.Tile
		for col := 0; col < int(math.Ceil(spanX)) && len(out) < count; col++ {
			for row := 0; row < int(math.Ceil(spanY)) && len(out) < count; row++ {
				c := cell{X: float64(col)*tile + tile, Y: float64(row)*tile + tile}
				if !used[c] {
					accept(c)
				}
			}
		}
	}

	return out
}
