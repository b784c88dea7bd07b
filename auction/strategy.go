package auction

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/sirupsen/logrus"
)

// BidContext carries everything a strategy may consult when deciding a bid.
// Strategies are stateless across rounds; per-round variation enters only
// through PrivateValue, Round, History, and the RNG stream.
type BidContext struct {
	BidderID     string
	Round        int
	PrivateValue float64

	// Opponents models the other bidders in the round; consumed only by
	// strategies that run best-response estimation.
	Opponents OpponentModel

	// History is a free-text summary of past outcomes, forwarded verbatim
	// to external advisors.
	History string

	// RNG is this bidder's isolated random stream.
	RNG *rand.Rand
}

// BidDecision is a strategy's output: the sanitized bid, an optional
// rationale, and whether the raw bid had to be clamped.
type BidDecision struct {
	Bid       float64
	Rationale string
	Clamped   bool
}

// BiddingStrategy turns a private value into a bid. Implementations must
// return non-negative finite bids; SanitizeBid enforces this at every exit
// so a misbehaving variant degrades to a zero bid instead of corrupting the
// round.
type BiddingStrategy interface {
	Decide(ctx context.Context, bc BidContext) (BidDecision, error)
}

// SanitizeBid clamps negative or non-finite bids to 0 and reports whether
// clamping occurred. Clamped bids are a flagged event, not a silent drop:
// callers log them and the simulator counts them in the summary.
func SanitizeBid(bid float64) (float64, bool) {
	if math.IsNaN(bid) || math.IsInf(bid, 0) || bid < 0 {
		return 0, true
	}
	return bid, false
}

// === Truthful ===

// Truthful bids the private value exactly. The dominant strategy under
// second-price; used as a baseline profile and by opponent calibration.
type Truthful struct{}

func (Truthful) Decide(_ context.Context, bc BidContext) (BidDecision, error) {
	bid, clamped := SanitizeBid(bc.PrivateValue)
	return BidDecision{Bid: bid, Rationale: "truthful", Clamped: clamped}, nil
}

// === HeuristicShading ===

// HeuristicShading bids Factor × value. FactorSignal, when set, can override
// the factor for individual rounds (an external adjustment hook); it is
// consulted once per decision.
type HeuristicShading struct {
	Factor       float64
	FactorSignal func(round int) (float64, bool)
}

func (h HeuristicShading) Decide(_ context.Context, bc BidContext) (BidDecision, error) {
	factor := h.Factor
	if h.FactorSignal != nil {
		if f, ok := h.FactorSignal(bc.Round); ok {
			factor = f
		}
	}
	bid, clamped := SanitizeBid(factor * bc.PrivateValue)
	if clamped {
		logrus.Warnf("bidder %s round %d: shading factor %v produced invalid bid, clamped to 0", bc.BidderID, bc.Round, factor)
	}
	return BidDecision{
		Bid:       bid,
		Rationale: fmt.Sprintf("shaded %.2f x value", factor),
		Clamped:   clamped,
	}, nil
}

// === Advised ===

// Advised always computes a best-response recommendation first, then defers
// the final bid to an external Advisor. Any advisor failure — call error,
// timeout, undecodable output, invalid bid — falls back to the tool
// recommendation. The fallback is a correctness requirement: the strategy
// must always produce a valid numeric bid, so advisor trouble is absorbed
// here and logged, never propagated.
type Advised struct {
	Approximator Approximator
	Grid         []float64
	Trials       int

	// Advisor is optional; when nil the recommendation is used directly.
	Advisor Advisor

	// Timeout bounds each advisor call. Zero means no deadline beyond the
	// caller's context.
	Timeout time.Duration
}

func (s Advised) Decide(ctx context.Context, bc BidContext) (BidDecision, error) {
	est, err := s.Approximator.Approximate(bc.PrivateValue, s.Grid, bc.Opponents, s.Trials, bc.RNG)
	if err != nil {
		// Grid/trials misconfiguration is fatal, not recoverable mid-run.
		return BidDecision{}, err
	}

	if s.Advisor == nil {
		return BidDecision{
			Bid:       est.Bid,
			Rationale: "best-response recommendation (no advisor configured)",
		}, nil
	}

	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	raw, err := s.Advisor.Advise(ctx, AdvisoryRequest{
		BidderID:       bc.BidderID,
		Round:          bc.Round,
		PrivateValue:   bc.PrivateValue,
		RecommendedBid: est.Bid,
		ExpectedPayoff: est.ExpectedPayoff,
		History:        bc.History,
	})
	if err != nil {
		logrus.Warnf("bidder %s round %d: advisor call failed (%v), using recommendation %.4f", bc.BidderID, bc.Round, err, est.Bid)
		return fallbackDecision(est), nil
	}

	advice, err := DecodeAdvice(raw)
	if err != nil {
		logrus.Warnf("bidder %s round %d: %v, using recommendation %.4f", bc.BidderID, bc.Round, err, est.Bid)
		return fallbackDecision(est), nil
	}

	bid, clamped := SanitizeBid(advice.Bid)
	if clamped {
		logrus.Warnf("bidder %s round %d: advisor bid %v invalid, clamped to 0", bc.BidderID, bc.Round, advice.Bid)
	}
	rationale := advice.Reasoning
	if rationale == "" {
		rationale = "advisor bid (no reasoning given)"
	}
	return BidDecision{Bid: bid, Rationale: rationale, Clamped: clamped}, nil
}

func fallbackDecision(est BestResponseEstimate) BidDecision {
	return BidDecision{
		Bid:       est.Bid,
		Rationale: fmt.Sprintf("fallback to best-response recommendation (expected payoff %.4f)", est.ExpectedPayoff),
	}
}
