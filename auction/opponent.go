package auction

import "math/rand/v2"

// OpponentModel samples one vector of opponent bids for a single simulated
// auction. The vector length is the number of modeled opponents. Models are
// used only inside best-response estimation; they are never disclosed to the
// modeled bidders.
type OpponentModel interface {
	SampleBids(rng *rand.Rand) []float64
}

// TruthfulUniformOpponents models opponents whose values are uniform on
// [Min, Max) and who bid their value. This is the classical benchmark
// population (truthful bidding is the dominant strategy under second-price).
type TruthfulUniformOpponents struct {
	Count int
	Min   float64
	Max   float64
}

func (t TruthfulUniformOpponents) SampleBids(rng *rand.Rand) []float64 {
	sampler := UniformSampler{Min: t.Min, Max: t.Max}
	bids := make([]float64, t.Count)
	for i := range bids {
		bids[i] = sampler.Sample(rng)
	}
	return bids
}

// ShadedUniformOpponents models opponents with uniform values on [Min, Max)
// who shade: bid = Factor × value.
type ShadedUniformOpponents struct {
	Count  int
	Factor float64
	Min    float64
	Max    float64
}

func (s ShadedUniformOpponents) SampleBids(rng *rand.Rand) []float64 {
	sampler := UniformSampler{Min: s.Min, Max: s.Max}
	bids := make([]float64, s.Count)
	for i := range bids {
		bids[i] = s.Factor * sampler.Sample(rng)
	}
	return bids
}

// EmpiricalOpponents resamples bids uniformly from an observed pool,
// e.g. bids collected from earlier rounds. Count bids per auction.
type EmpiricalOpponents struct {
	Observed []float64
	Count    int
}

func (e EmpiricalOpponents) SampleBids(rng *rand.Rand) []float64 {
	bids := make([]float64, e.Count)
	for i := range bids {
		bids[i] = e.Observed[rng.IntN(len(e.Observed))]
	}
	return bids
}
