package auction

import (
	"fmt"
	"math"
	"sort"
)

// RunningStat is an online (Welford) accumulator: count, mean, and variance
// in one pass without retaining samples. Updated once per completed round.
type RunningStat struct {
	count int64
	mean  float64
	m2    float64
}

// Update folds one observation into the accumulator.
func (s *RunningStat) Update(x float64) {
	s.count++
	delta := x - s.mean
	s.mean += delta / float64(s.count)
	s.m2 += delta * (x - s.mean)
}

// Count returns the number of observations.
func (s *RunningStat) Count() int64 { return s.count }

// Mean returns the running mean, 0 before any observation.
func (s *RunningStat) Mean() float64 { return s.mean }

// Variance returns the sample variance (n−1 denominator); 0 for fewer than
// two observations.
func (s *RunningStat) Variance() float64 {
	if s.count < 2 {
		return 0
	}
	return s.m2 / float64(s.count-1)
}

// StdErr returns the standard error of the mean.
func (s *RunningStat) StdErr() float64 {
	if s.count < 2 {
		return 0
	}
	return math.Sqrt(s.Variance() / float64(s.count))
}

// SimulationSummary is the finalized aggregate of a run.
type SimulationSummary struct {
	RunID  string
	Rounds int

	// MeanClearingPrice is the mean per-round clearing price, which for a
	// single-item auction is also the auctioneer's mean revenue.
	MeanClearingPrice   float64
	ClearingPriceStdErr float64

	MeanUtility  map[string]float64 // bidder ID -> mean payoff per round
	WinFrequency map[string]float64 // bidder ID -> fraction of rounds won

	// ClampedBids counts bids that had to be clamped to zero across the
	// whole run (negative or non-finite strategy output).
	ClampedBids int
}

// Print displays the summary at the end of a run, bidders in ID order.
func (s SimulationSummary) Print() {
	fmt.Println("=== Auction Simulation Summary ===")
	fmt.Printf("Run ID               : %s\n", s.RunID)
	fmt.Printf("Rounds Completed     : %d\n", s.Rounds)
	fmt.Printf("Mean Clearing Price  : %.4f (stderr %.4f)\n", s.MeanClearingPrice, s.ClearingPriceStdErr)
	for _, id := range s.bidderIDs() {
		fmt.Printf("  %-12s mean utility %.4f, win frequency %.3f\n", id, s.MeanUtility[id], s.WinFrequency[id])
	}
	if s.ClampedBids > 0 {
		fmt.Printf("Clamped Bids         : %d\n", s.ClampedBids)
	}
}

func (s SimulationSummary) bidderIDs() []string {
	ids := make([]string, 0, len(s.MeanUtility))
	for id := range s.MeanUtility {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
