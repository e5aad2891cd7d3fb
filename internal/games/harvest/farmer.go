package harvest

import (
	"math"

	"github.com/vovakirdan/harvest-rush/internal/config"
	"github.com/vovakirdan/harvest-rush/internal/core"
)

// walkFPS is how often the walk animation flips between its two frames.
const walkFPS = 6

// Farmer is the player character.
type Farmer struct {
	Box    core.Box
	VX, VY float64 // Velocity in world units per second
	Speed  float64
	Facing Direction
	Frame  int // 0 idle, 1 and 2 while walking

	animTimer float64
}

// NewFarmer places a farmer at the configured start position, facing down.
func NewFarmer(cfg config.HarvestConfig) Farmer {
	x, y := cfg.FarmerStart()
	return Farmer{
		Box:    core.NewBox(x, y, cfg.Farmer.Width, cfg.Farmer.Height),
		Speed:  cfg.Farmer.Speed,
		Facing: FacingDown,
	}
}

// HandleInput sets the velocity from the held directions.
// Facing follows the dominant axis; with equal speeds the vertical axis wins.
func (f *Farmer) HandleInput(in core.InputFrame) {
	dx, dy := in.Axis()
	f.VX = float64(dx) * f.Speed
	f.VY = float64(dy) * f.Speed

	switch {
	case math.Abs(f.VX) > math.Abs(f.VY):
		if f.VX > 0 {
			f.Facing = FacingRight
		} else {
			f.Facing = FacingLeft
		}
	case f.VY > 0:
		f.Facing = FacingDown
	case f.VY < 0:
		f.Facing = FacingUp
	}
}

// Update moves the farmer by its velocity, keeping it inside the field and
// out of every scarecrow. The clamped target is committed only when it is
// clear; a blocked target leaves the farmer where it was.
func (f *Farmer) Update(dt float64, field config.FieldConfig, scarecrows []Scarecrow) {
	nx := core.ClampF(f.Box.X+f.VX*dt, 0, field.Width-f.Box.W)
	ny := core.ClampF(f.Box.Y+f.VY*dt, 0, field.Height-f.Box.H)

	if !blocked(f.Box.At(nx, ny), scarecrows) {
		f.Box.X, f.Box.Y = nx, ny
	}

	f.animate(dt)
}

// animate advances the walk cycle while moving and resets it when idle.
func (f *Farmer) animate(dt float64) {
	if f.VX == 0 && f.VY == 0 {
		f.Frame = 0
		f.animTimer = 0
		return
	}
	f.animTimer += dt
	f.Frame = 1 + int(math.Floor(f.animTimer*walkFPS))%2
}

// Drawable returns the render description of the farmer.
func (f Farmer) Drawable() Drawable {
	return Drawable{Kind: KindFarmer, Box: f.Box, Facing: f.Facing, Frame: f.Frame}
}

func blocked(b core.Box, scarecrows []Scarecrow) bool {
	for _, s := range scarecrows {
		if b.Overlaps(s.Box) {
			return true
		}
	}
	return false
}
