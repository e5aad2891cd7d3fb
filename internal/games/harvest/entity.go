package harvest

import (
	"github.com/vovakirdan/harvest-rush/internal/config"
	"github.com/vovakirdan/harvest-rush/internal/core"
)

// Kind tags every drawable entity on the field.
type Kind int

const (
	KindFarmer Kind = iota
	KindScarecrow
	KindWheat       // common crop
	KindPumpkin     // uncommon crop
	KindGoldenApple // rare crop
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindFarmer:
		return "farmer"
	case KindScarecrow:
		return "scarecrow"
	case KindWheat:
		return "wheat"
	case KindPumpkin:
		return "pumpkin"
	case KindGoldenApple:
		return "golden_apple"
	default:
		return "unknown"
	}
}

// IsCrop reports whether the kind is a collectible.
func (k Kind) IsCrop() bool {
	return k == KindWheat || k == KindPumpkin || k == KindGoldenApple
}

// Points returns the score a crop kind is worth under the given table.
func (k Kind) Points(table config.CropTable) int {
	switch k {
	case KindWheat:
		return table.Wheat
	case KindPumpkin:
		return table.Pumpkin
	case KindGoldenApple:
		return table.GoldenApple
	default:
		return 0
	}
}

// Direction is the way the farmer faces.
type Direction int

const (
	FacingDown Direction = iota
	FacingUp
	FacingLeft
	FacingRight
)

func (d Direction) String() string {
	switch d {
	case FacingUp:
		return "up"
	case FacingLeft:
		return "left"
	case FacingRight:
		return "right"
	default:
		return "down"
	}
}

// Crop is a collectible. Collected crops are marked dead and pruned in the same frame.
type Crop struct {
	Box    core.Box
	Kind   Kind
	Points int
	Dead   bool
}

// Scarecrow is a static obstacle, fixed from level setup until the next one.
type Scarecrow struct {
	Box core.Box
}

// Drawable is what the render surface receives for every live entity.
type Drawable struct {
	Kind   Kind
	Box    core.Box
	Facing Direction // Farmer only
	Frame  int       // Farmer only: 0 idle, 1 and 2 alternate while walking
}

// Surface receives one Draw call per live entity after each update pass.
type Surface interface {
	Draw(d Drawable)
}

// Sink receives HUD values after every change. Every field is optional.
type Sink struct {
	Score     func(score int)
	TimeLeft  func(seconds int) // Remaining time rounded up to whole seconds
	Goal      func(goal int)
	BestLevel func(level int)
	Status    func(text string)
}

func (s Sink) score(v int) {
	if s.Score != nil {
		s.Score(v)
	}
}

func (s Sink) timeLeft(v int) {
	if s.TimeLeft != nil {
		s.TimeLeft(v)
	}
}

func (s Sink) goal(v int) {
	if s.Goal != nil {
		s.Goal(v)
	}
}

func (s Sink) bestLevel(v int) {
	if s.BestLevel != nil {
		s.BestLevel(v)
	}
}

func (s Sink) status(v string) {
	if s.Status != nil {
		s.Status(v)
	}
}
