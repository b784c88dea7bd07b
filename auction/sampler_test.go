package auction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUniformSampler_Range(t *testing.T) {
	rng := NewPartitionedRNG(NewSimulationKey(42)).ForSubsystem(SubsystemValues)
	sampler := UniformSampler{Min: 0.25, Max: 0.75}

	for i := 0; i < 1000; i++ {
		v := sampler.Sample(rng)
		assert.GreaterOrEqual(t, v, 0.25)
		assert.Less(t, v, 0.75)
	}
}

func TestUniformSampler_Deterministic(t *testing.T) {
	rng1 := NewPartitionedRNG(NewSimulationKey(42)).ForSubsystem(SubsystemValues)
	rng2 := NewPartitionedRNG(NewSimulationKey(42)).ForSubsystem(SubsystemValues)
	sampler := UniformSampler{Min: 0, Max: 1}

	for i := 0; i < 100; i++ {
		assert.Equal(t, sampler.Sample(rng1), sampler.Sample(rng2))
	}
}

func TestNormalSampler_NonNegative(t *testing.T) {
	rng := NewPartitionedRNG(NewSimulationKey(42)).ForSubsystem(SubsystemValues)
	// Heavy mass below zero to exercise the clamp.
	sampler := NormalSampler{Mu: 0.1, Sigma: 1.0}

	clampedSeen := false
	for i := 0; i < 1000; i++ {
		v := sampler.Sample(rng)
		assert.GreaterOrEqual(t, v, 0.0)
		if v == 0 {
			clampedSeen = true
		}
	}
	assert.True(t, clampedSeen, "expected at least one clamped draw with mu=0.1 sigma=1.0")
}

func TestFixedSampler_Cycles(t *testing.T) {
	sampler := &FixedSampler{Values: []float64{0.9, 0.6, 0.3}}

	got := make([]float64, 6)
	for i := range got {
		got[i] = sampler.Sample(nil)
	}
	assert.Equal(t, []float64{0.9, 0.6, 0.3, 0.9, 0.6, 0.3}, got)
}
