package auction

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Bidder pairs a roster identifier with its assigned strategy. The roster
// and assignment are fixed for a whole run; only values and bids vary.
type Bidder struct {
	ID       string
	Strategy BiddingStrategy
}

// OpponentFactory builds the opponent model handed to one bidder's strategy:
// a sampling stand-in for the `others` remaining bidders in the round.
type OpponentFactory func(bidderID string, others int) OpponentModel

// DefaultOpponentFactory models opponents as truthful bidders with uniform
// values on [0, 1), the benchmark population.
func DefaultOpponentFactory(_ string, others int) OpponentModel {
	return TruthfulUniformOpponents{Count: others, Min: 0, Max: 1}
}

// RoundOutcome is the immutable record of one cleared round. The simulator
// folds it into running statistics and discards it.
type RoundOutcome struct {
	RoundID     string
	Round       int
	Values      map[string]float64
	Bids        BidSet
	Rationales  map[string]string
	Result      ClearingResult
	Payoffs     map[string]float64
	ClampedBids int
}

// RoundRunner orchestrates one auction round over a fixed roster.
type RoundRunner struct {
	runID     string
	bidders   []Bidder
	sampler   ValueSampler
	opponents OpponentFactory
	rng       *PartitionedRNG
}

// NewRoundRunner validates the roster and wires a runner. The factory may be
// nil, in which case DefaultOpponentFactory is used.
func NewRoundRunner(runID string, bidders []Bidder, sampler ValueSampler, factory OpponentFactory, rng *PartitionedRNG) (*RoundRunner, error) {
	if len(bidders) == 0 {
		return nil, ErrEmptyRoster
	}
	seen := make(map[string]bool, len(bidders))
	for _, b := range bidders {
		if seen[b.ID] {
			return nil, fmt.Errorf("%w: duplicate bidder ID %q", ErrEmptyRoster, b.ID)
		}
		seen[b.ID] = true
	}
	if factory == nil {
		factory = DefaultOpponentFactory
	}
	return &RoundRunner{
		runID:     runID,
		bidders:   bidders,
		sampler:   sampler,
		opponents: factory,
		rng:       rng,
	}, nil
}

// RunRound executes one round: sample a private value per bidder, collect a
// bid from each strategy, clear, and score. Strategy errors are fatal to the
// run (they indicate misconfiguration, not bad luck); advisory trouble never
// reaches here because the Advised strategy absorbs it.
func (r *RoundRunner) RunRound(ctx context.Context, round int) (RoundOutcome, error) {
	values := make(map[string]float64, len(r.bidders))
	valueRNG := r.rng.ForSubsystem(SubsystemValues)
	for _, b := range r.bidders {
		values[b.ID] = r.sampler.Sample(valueRNG)
	}

	bids := make(BidSet, len(r.bidders))
	rationales := make(map[string]string, len(r.bidders))
	clamped := 0
	for _, b := range r.bidders {
		decision, err := b.Strategy.Decide(ctx, BidContext{
			BidderID:     b.ID,
			Round:        round,
			PrivateValue: values[b.ID],
			Opponents:    r.opponents(b.ID, len(r.bidders)-1),
			RNG:          r.rng.ForSubsystem(SubsystemBidder(b.ID)),
		})
		if err != nil {
			return RoundOutcome{}, fmt.Errorf("bidder %s round %d: %w", b.ID, round, err)
		}
		bids[b.ID] = decision.Bid
		rationales[b.ID] = decision.Rationale
		if decision.Clamped {
			clamped++
		}
	}

	result, err := Clear(bids)
	if err != nil {
		return RoundOutcome{}, fmt.Errorf("round %d: %w", round, err)
	}
	payoffs := Payoffs(values, result)

	logrus.Debugf("[round %06d] winner=%s price=%.4f bids=%v", round, result.WinnerID, result.ClearingPrice, bids)

	return RoundOutcome{
		RoundID:     fmt.Sprintf("%s_round_%d", r.runID, round),
		Round:       round,
		Values:      values,
		Bids:        bids,
		Rationales:  rationales,
		Result:      result,
		Payoffs:     payoffs,
		ClampedBids: clamped,
	}, nil
}

// Bidders returns the roster in its configured order.
func (r *RoundRunner) Bidders() []Bidder {
	return r.bidders
}
