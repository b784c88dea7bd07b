package auction

// SimulationConfig groups run-level parameters for NewSimulator.
type SimulationConfig struct {
	Seed   int64 // master seed for all random streams
	Rounds int   // number of independent rounds (must be > 0)
}

// NewSimulationConfig creates a SimulationConfig.
func NewSimulationConfig(seed int64, rounds int) SimulationConfig {
	return SimulationConfig{Seed: seed, Rounds: rounds}
}

// Validate rejects non-positive round counts up front so a run never starts
// with a broken configuration.
func (c SimulationConfig) Validate() error {
	if c.Rounds <= 0 {
		return ErrInvalidRounds
	}
	return nil
}

// BestResponseConfig groups approximator parameters shared by the Advised
// strategy and the best-response CLI.
type BestResponseConfig struct {
	GridPoints int // candidate bids spanning [0,1] (must be ≥ 2)
	Trials     int // simulated auctions per candidate (must be > 0)
	Workers    int // parallel trial workers per candidate (≤ 1 = sequential)
}

// NewBestResponseConfig creates a BestResponseConfig.
func NewBestResponseConfig(gridPoints, trials, workers int) BestResponseConfig {
	return BestResponseConfig{GridPoints: gridPoints, Trials: trials, Workers: workers}
}

// Validate surfaces approximator misconfiguration before any round runs.
func (c BestResponseConfig) Validate() error {
	if c.GridPoints < 2 {
		return ErrInvalidGrid
	}
	if c.Trials <= 0 {
		return ErrInvalidTrials
	}
	return nil
}
