package auction

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Simulator runs N independent rounds and aggregates their outcomes online.
// It is the single writer of the running statistics; rounds do not share
// state with one another.
type Simulator struct {
	runner *RoundRunner
	rounds int

	// OnOutcome, when set, observes each RoundOutcome before it is
	// discarded. Hook for revenue-series capture or external presentation;
	// the simulator itself retains only derived scalars.
	OnOutcome func(RoundOutcome)

	price   RunningStat
	utility map[string]*RunningStat
	wins    map[string]int64
	clamped int
}

// NewSimulator validates the configuration and roster and wires a simulator.
// Configuration errors (bad round count, empty roster, duplicate IDs) are
// returned here, before any round begins.
func NewSimulator(cfg SimulationConfig, bidders []Bidder, sampler ValueSampler, factory OpponentFactory) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	runner, err := NewRoundRunner(runID, bidders, sampler, factory, NewPartitionedRNG(NewSimulationKey(cfg.Seed)))
	if err != nil {
		return nil, err
	}

	utility := make(map[string]*RunningStat, len(bidders))
	wins := make(map[string]int64, len(bidders))
	for _, b := range bidders {
		utility[b.ID] = &RunningStat{}
		wins[b.ID] = 0
	}

	return &Simulator{
		runner:  runner,
		rounds:  cfg.Rounds,
		utility: utility,
		wins:    wins,
	}, nil
}

// Run executes the configured number of rounds sequentially and finalizes
// the summary. A cancelled context stops the loop early; the summary still
// covers every completed round. With zero completed rounds there is nothing
// to summarize and ErrNoRoundsCompleted is returned.
func (s *Simulator) Run(ctx context.Context) (SimulationSummary, error) {
	completed := 0
	for round := 0; round < s.rounds; round++ {
		if err := ctx.Err(); err != nil {
			logrus.Warnf("run cancelled after %d of %d rounds: %v", completed, s.rounds, err)
			break
		}

		outcome, err := s.runner.RunRound(ctx, round)
		if err != nil {
			if completed == 0 {
				return SimulationSummary{}, fmt.Errorf("%w: %w", ErrNoRoundsCompleted, err)
			}
			// Fatal mid-run: abort further rounds but report what finished.
			return s.finalize(completed), err
		}

		s.observe(outcome)
		completed++
	}

	if completed == 0 {
		return SimulationSummary{}, ErrNoRoundsCompleted
	}
	return s.finalize(completed), nil
}

// observe folds one round outcome into the accumulators.
func (s *Simulator) observe(outcome RoundOutcome) {
	s.price.Update(outcome.Result.ClearingPrice)
	for id, payoff := range outcome.Payoffs {
		s.utility[id].Update(payoff)
	}
	s.wins[outcome.Result.WinnerID]++
	s.clamped += outcome.ClampedBids

	if s.OnOutcome != nil {
		s.OnOutcome(outcome)
	}
}

func (s *Simulator) finalize(completed int) SimulationSummary {
	meanUtility := make(map[string]float64, len(s.utility))
	winFreq := make(map[string]float64, len(s.wins))
	for id, st := range s.utility {
		meanUtility[id] = st.Mean()
	}
	for id, n := range s.wins {
		winFreq[id] = float64(n) / float64(completed)
	}
	return SimulationSummary{
		RunID:               s.runner.runID,
		Rounds:              completed,
		MeanClearingPrice:   s.price.Mean(),
		ClearingPriceStdErr: s.price.StdErr(),
		MeanUtility:         meanUtility,
		WinFrequency:        winFreq,
		ClampedBids:         s.clamped,
	}
}
