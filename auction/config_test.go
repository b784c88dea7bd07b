package auction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSimulationConfig_FieldEquivalence(t *testing.T) {
	got := NewSimulationConfig(42, 1000)
	want := SimulationConfig{Seed: 42, Rounds: 1000}
	assert.Equal(t, want, got)
}

func TestSimulationConfig_Validate(t *testing.T) {
	require.NoError(t, NewSimulationConfig(0, 1).Validate())
	require.ErrorIs(t, NewSimulationConfig(0, 0).Validate(), ErrInvalidRounds)
	require.ErrorIs(t, NewSimulationConfig(0, -1).Validate(), ErrInvalidRounds)
}

func TestNewBestResponseConfig_FieldEquivalence(t *testing.T) {
	got := NewBestResponseConfig(101, 500, 4)
	want := BestResponseConfig{GridPoints: 101, Trials: 500, Workers: 4}
	assert.Equal(t, want, got)
}

func TestBestResponseConfig_Validate(t *testing.T) {
	require.NoError(t, NewBestResponseConfig(2, 1, 0).Validate())
	require.ErrorIs(t, NewBestResponseConfig(1, 500, 0).Validate(), ErrInvalidGrid)
	require.ErrorIs(t, NewBestResponseConfig(101, 0, 0).Validate(), ErrInvalidTrials)
}
