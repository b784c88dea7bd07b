package auction

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// ValueSampler draws one private value per call. Implementations MUST draw
// exclusively from the supplied source so runs stay reproducible.
type ValueSampler interface {
	Sample(rng *rand.Rand) float64
}

// UniformSampler draws values uniformly from [Min, Max).
type UniformSampler struct {
	Min float64
	Max float64
}

func (u UniformSampler) Sample(rng *rand.Rand) float64 {
	d := distuv.Uniform{Min: u.Min, Max: u.Max, Src: rng}
	return d.Rand()
}

// NormalSampler draws values from N(Mu, Sigma²), clamped at 0 so private
// values stay non-negative.
type NormalSampler struct {
	Mu    float64
	Sigma float64
}

func (n NormalSampler) Sample(rng *rand.Rand) float64 {
	d := distuv.Normal{Mu: n.Mu, Sigma: n.Sigma, Src: rng}
	return math.Max(0, d.Rand())
}

// FixedSampler cycles through a fixed sequence of values. Used by scenario
// tests that need exact private values rather than draws.
type FixedSampler struct {
	Values []float64
	next   int
}

func (f *FixedSampler) Sample(_ *rand.Rand) float64 {
	v := f.Values[f.next%len(f.Values)]
	f.next++
	return v
}
