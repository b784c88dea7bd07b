package auction

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/stat"
)

func TestRunningStat_Empty(t *testing.T) {
	var s RunningStat
	assert.Equal(t, int64(0), s.Count())
	assert.Equal(t, 0.0, s.Mean())
	assert.Equal(t, 0.0, s.Variance())
	assert.Equal(t, 0.0, s.StdErr())
}

func TestRunningStat_SingleObservation(t *testing.T) {
	var s RunningStat
	s.Update(0.7)
	assert.Equal(t, int64(1), s.Count())
	assert.Equal(t, 0.7, s.Mean())
	assert.Equal(t, 0.0, s.Variance())
}

func TestRunningStat_MatchesBatchRecomputation(t *testing.T) {
	// The online accumulator must agree with gonum's batch statistics.
	samples := []float64{0.12, 0.9, 0.45, 0.3, 0.3, 0.77, 0.05, 0.61}

	var s RunningStat
	for _, x := range samples {
		s.Update(x)
	}

	assert.InDelta(t, stat.Mean(samples, nil), s.Mean(), 1e-12)
	assert.InDelta(t, stat.Variance(samples, nil), s.Variance(), 1e-12)

	wantStdErr := math.Sqrt(stat.Variance(samples, nil) / float64(len(samples)))
	assert.InDelta(t, wantStdErr, s.StdErr(), 1e-12)
}

func TestRunningStat_ConstantSeries(t *testing.T) {
	var s RunningStat
	for i := 0; i < 100; i++ {
		s.Update(0.4)
	}
	assert.InDelta(t, 0.4, s.Mean(), 1e-12)
	assert.InDelta(t, 0.0, s.Variance(), 1e-12)
}
