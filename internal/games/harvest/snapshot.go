package harvest

// Snapshot captures the controller state for tests and debug logging.
type Snapshot struct {
	State         RunState
	Level         int
	Score         int
	Goal          int
	BestLevel     int
	TimeLeft      float64
	SpawnInterval float64
	Pending       float64 // Spawn accumulator
	FarmerX       float64
	FarmerY       float64
	Crops         int
	Scarecrows    int
}

// Snapshot returns the current controller snapshot.
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		State:         c.state,
		Level:         c.level,
		Score:         c.score,
		Goal:          c.goal,
		BestLevel:     c.bestLevel,
		TimeLeft:      c.timeLeft,
		SpawnInterval: c.spawnInterval,
		Pending:       c.spawner.Pending(),
		FarmerX:       c.farmer.Box.X,
		FarmerY:       c.farmer.Box.Y,
		Crops:         len(c.crops),
		Scarecrows:    len(c.scarecrows),
	}
}
