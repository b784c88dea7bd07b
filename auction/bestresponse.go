package auction

import (
	"math"
	"math/rand/v2"
	"strconv"

	"golang.org/x/sync/errgroup"
)

// trialBidderID identifies the modeled bidder inside simulated auctions.
// It sorts before the "rival_" IDs, so the modeled bidder wins exact ties,
// matching the stable-sort behavior the estimates were calibrated against.
const trialBidderID = "candidate"

// BestResponseEstimate is a Monte-Carlo point estimate of the payoff-maximizing
// bid for one private value. Transient; never persisted.
type BestResponseEstimate struct {
	Bid            float64
	ExpectedPayoff float64
}

// Approximator estimates best responses by simulating auctions over a grid
// of candidate bids. Cost is O(|grid| × trials × opponents); trials are
// independent, so Workers > 1 splits each candidate's trials across that
// many goroutines.
type Approximator struct {
	// Workers is the number of parallel trial workers per candidate.
	// Values ≤ 1 run sequentially. Parallel partial results are combined as
	// per-worker (sum over fixed chunk) in worker-index order, so the mean
	// is identical for a given seed regardless of goroutine scheduling.
	Workers int
}

// UniformGrid returns n evenly spaced candidate bids spanning [0, 1]
// (i/(n−1) for i in 0..n−1). Returns nil for n < 2; Approximate then
// rejects the grid with ErrInvalidGrid.
func UniformGrid(n int) []float64 {
	if n < 2 {
		return nil
	}
	grid := make([]float64, n)
	for i := range grid {
		grid[i] = float64(i) / float64(n-1)
	}
	return grid
}

// Approximate estimates the expected payoff of every candidate bid against
// the opponent model and returns the maximizer. Ties prefer the lowest bid,
// which minimizes overpayment risk. The estimate is exact only in the limit
// of grid resolution and trial count; it is deterministic for a given rng
// state.
func (a Approximator) Approximate(privateValue float64, grid []float64, model OpponentModel, trials int, rng *rand.Rand) (BestResponseEstimate, error) {
	estimates, err := a.EstimateGrid(privateValue, grid, model, trials, rng)
	if err != nil {
		return BestResponseEstimate{}, err
	}

	best := BestResponseEstimate{Bid: grid[0], ExpectedPayoff: estimates[0]}
	for i := 1; i < len(grid); i++ {
		if estimates[i] > best.ExpectedPayoff ||
			(estimates[i] == best.ExpectedPayoff && grid[i] < best.Bid) {
			best = BestResponseEstimate{Bid: grid[i], ExpectedPayoff: estimates[i]}
		}
	}
	return best, nil
}

// EstimateGrid returns the estimated expected payoff for each candidate bid,
// index-aligned with grid. Exposed so callers (and tests) can inspect the
// whole payoff surface, not just the argmax.
func (a Approximator) EstimateGrid(privateValue float64, grid []float64, model OpponentModel, trials int, rng *rand.Rand) ([]float64, error) {
	if len(grid) == 0 {
		return nil, ErrInvalidGrid
	}
	if trials <= 0 {
		return nil, ErrInvalidTrials
	}

	estimates := make([]float64, len(grid))
	for i, bid := range grid {
		mean, err := a.estimateCandidate(privateValue, bid, model, trials, rng)
		if err != nil {
			return nil, err
		}
		estimates[i] = mean
	}
	return estimates, nil
}

// estimateCandidate runs trials simulated auctions for one candidate bid and
// returns the mean realized payoff.
func (a Approximator) estimateCandidate(privateValue, bid float64, model OpponentModel, trials int, rng *rand.Rand) (float64, error) {
	workers := a.Workers
	if workers <= 1 || trials < 2 {
		sum, err := runTrials(privateValue, bid, model, trials, rng)
		if err != nil {
			return 0, err
		}
		return sum / float64(trials), nil
	}
	if workers > trials {
		workers = trials
	}

	// Derive every worker source from rng up front so the derivation order
	// is fixed; only the trial work itself runs concurrently.
	sources := make([]*rand.Rand, workers)
	for w := range sources {
		sources[w] = ChildSource(rng)
	}

	sums := make([]float64, workers)
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		chunk := trials / workers
		if w < trials%workers {
			chunk++
		}
		src := sources[w]
		g.Go(func() error {
			sum, err := runTrials(privateValue, bid, model, chunk, src)
			if err != nil {
				return err
			}
			sums[w] = sum
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	total := 0.0
	for _, s := range sums {
		total += s
	}
	return total / float64(trials), nil
}

// runTrials simulates trials auctions where the modeled bidder bids bid and
// opponents are drawn fresh each trial; returns the summed realized payoff.
func runTrials(privateValue, bid float64, model OpponentModel, trials int, rng *rand.Rand) (float64, error) {
	sum := 0.0
	for t := 0; t < trials; t++ {
		bids := BidSet{trialBidderID: bid}
		for j, rival := range model.SampleBids(rng) {
			bids["rival_"+strconv.Itoa(j)] = rival
		}
		result, err := Clear(bids)
		if err != nil {
			return 0, err
		}
		if result.WinnerID == trialBidderID {
			sum += math.Max(0, privateValue-result.ClearingPrice)
		}
	}
	return sum, nil
}
