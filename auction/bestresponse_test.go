package auction

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func brRNG(seed int64) *rand.Rand {
	return NewPartitionedRNG(NewSimulationKey(seed)).ForSubsystem(SubsystemBestResponse)
}

func TestUniformGrid(t *testing.T) {
	grid := UniformGrid(5)
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, grid)

	assert.Nil(t, UniformGrid(1))
	assert.Nil(t, UniformGrid(0))
}

func TestApproximate_InvalidInputs(t *testing.T) {
	approx := Approximator{}
	model := TruthfulUniformOpponents{Count: 2, Min: 0, Max: 1}

	_, err := approx.Approximate(0.5, nil, model, 100, brRNG(1))
	require.ErrorIs(t, err, ErrInvalidGrid)

	_, err = approx.Approximate(0.5, UniformGrid(11), model, 0, brRNG(1))
	require.ErrorIs(t, err, ErrInvalidTrials)

	_, err = approx.Approximate(0.5, UniformGrid(11), model, -3, brRNG(1))
	require.ErrorIs(t, err, ErrInvalidTrials)
}

func TestApproximate_DeterministicUnderSeed(t *testing.T) {
	approx := Approximator{}
	model := TruthfulUniformOpponents{Count: 2, Min: 0, Max: 1}
	grid := UniformGrid(21)

	est1, err := approx.Approximate(0.5, grid, model, 300, brRNG(42))
	require.NoError(t, err)
	est2, err := approx.Approximate(0.5, grid, model, 300, brRNG(42))
	require.NoError(t, err)

	assert.Equal(t, est1, est2)
}

func TestApproximate_ParallelDeterministicUnderSeed(t *testing.T) {
	approx := Approximator{Workers: 4}
	model := TruthfulUniformOpponents{Count: 2, Min: 0, Max: 1}
	grid := UniformGrid(21)

	est1, err := approx.Approximate(0.5, grid, model, 400, brRNG(42))
	require.NoError(t, err)
	est2, err := approx.Approximate(0.5, grid, model, 400, brRNG(42))
	require.NoError(t, err)

	// Partial sums are combined in worker-index order, so goroutine
	// scheduling cannot change the mean.
	assert.Equal(t, est1, est2)
}

func TestApproximate_ChosenBidDominatesGrid(t *testing.T) {
	approx := Approximator{}
	model := TruthfulUniformOpponents{Count: 2, Min: 0, Max: 1}
	grid := UniformGrid(21)

	estimates, err := approx.EstimateGrid(0.5, grid, model, 500, brRNG(7))
	require.NoError(t, err)
	est, err := approx.Approximate(0.5, grid, model, 500, brRNG(7))
	require.NoError(t, err)

	// Same seed, same trial batch: the chosen bid's estimate must be the
	// maximum over the surface.
	for i, payoff := range estimates {
		assert.LessOrEqual(t, payoff, est.ExpectedPayoff+1e-12,
			"grid point %v beats chosen bid %v", grid[i], est.Bid)
	}
}

func TestApproximate_DoesNotUnderbidBadly(t *testing.T) {
	// Against truthful U[0,1] opponents the payoff surface rises up to the
	// private value; a deep underbid leaves surplus on the table.
	approx := Approximator{}
	model := TruthfulUniformOpponents{Count: 2, Min: 0, Max: 1}

	est, err := approx.Approximate(0.5, UniformGrid(21), model, 2000, brRNG(11))
	require.NoError(t, err)

	assert.GreaterOrEqual(t, est.Bid, 0.25)
	assert.LessOrEqual(t, est.Bid, 1.0)
	assert.Greater(t, est.ExpectedPayoff, 0.0)
}

func TestApproximate_ZeroValueZeroPayoff(t *testing.T) {
	approx := Approximator{}
	model := TruthfulUniformOpponents{Count: 2, Min: 0, Max: 1}

	est, err := approx.Approximate(0, UniformGrid(11), model, 200, brRNG(3))
	require.NoError(t, err)

	// Nothing to win: every candidate estimates a zero payoff and the tie
	// breaks to the lowest bid.
	assert.Equal(t, 0.0, est.Bid)
	assert.Equal(t, 0.0, est.ExpectedPayoff)
}

func TestApproximate_TieBreakPrefersLowestBid(t *testing.T) {
	// A no-opponent model makes every candidate win at price 0, so all
	// estimates are identical and the lowest bid must be selected.
	approx := Approximator{}
	model := TruthfulUniformOpponents{Count: 0}

	grid := []float64{0.2, 0.5, 0.8}
	est, err := approx.Approximate(0.5, grid, model, 50, brRNG(5))
	require.NoError(t, err)

	assert.Equal(t, 0.2, est.Bid)
	assert.InDelta(t, 0.5, est.ExpectedPayoff, 1e-12)
}

func TestEstimateGrid_AlignedWithGrid(t *testing.T) {
	approx := Approximator{}
	model := TruthfulUniformOpponents{Count: 2, Min: 0, Max: 1}
	grid := UniformGrid(11)

	estimates, err := approx.EstimateGrid(0.8, grid, model, 200, brRNG(13))
	require.NoError(t, err)
	require.Len(t, estimates, len(grid))

	// Bidding 0 against two continuous opponents never wins.
	assert.Equal(t, 0.0, estimates[0])
}
