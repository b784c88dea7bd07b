package auction

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// AdvisoryRequest is what the Advised strategy sends to an external
// reasoning collaborator: the bidder's situation plus the best-response
// tool's recommendation.
type AdvisoryRequest struct {
	BidderID       string  `json:"bidder_id"`
	Round          int     `json:"round"`
	PrivateValue   float64 `json:"private_value"`
	RecommendedBid float64 `json:"recommended_bid"`
	ExpectedPayoff float64 `json:"expected_payoff"`
	History        string  `json:"history,omitempty"`
}

// Advisor is an external reasoning collaborator (typically LLM-backed) that
// returns free-form text expected to contain a JSON bid. It is the only
// blocking-I/O surface of the engine: calls may fail, time out, or return
// garbage, and callers must degrade to the tool recommendation rather than
// halt the round.
type Advisor interface {
	Advise(ctx context.Context, req AdvisoryRequest) (string, error)
}

// Advice is the decoded form of an Advisor's output.
type Advice struct {
	BidderID  string  `json:"bidder_id"`
	Bid       float64 `json:"bid"`
	Reasoning string  `json:"reasoning"`
}

// rawAdvice tolerates the bid-field spelling drift seen in practice:
// collaborators emit either "bid" or "bid_amount".
type rawAdvice struct {
	BidderID  string   `json:"bidder_id"`
	Bid       *float64 `json:"bid"`
	BidAmount *float64 `json:"bid_amount"`
	Reasoning string   `json:"reasoning"`
}

// DecodeAdvice extracts a JSON object from free-form collaborator text and
// decodes it into an Advice. The text may surround the object with prose;
// the slice between the first '{' and the last '}' is parsed. Any failure,
// including a missing bid field, wraps ErrAdvisoryDecode.
func DecodeAdvice(text string) (Advice, error) {
	trimmed := strings.TrimSpace(text)
	start := strings.Index(trimmed, "{")
	end := strings.LastIndex(trimmed, "}")
	if start == -1 || end <= start {
		return Advice{}, fmt.Errorf("%w: no JSON object in %q", ErrAdvisoryDecode, truncate(trimmed, 80))
	}

	var raw rawAdvice
	if err := json.Unmarshal([]byte(trimmed[start:end+1]), &raw); err != nil {
		return Advice{}, fmt.Errorf("%w: %v", ErrAdvisoryDecode, err)
	}

	bid := raw.Bid
	if bid == nil {
		bid = raw.BidAmount
	}
	if bid == nil {
		return Advice{}, fmt.Errorf("%w: missing bid field", ErrAdvisoryDecode)
	}

	return Advice{BidderID: raw.BidderID, Bid: *bid, Reasoning: raw.Reasoning}, nil
}

// StaticAdvisor returns a canned output (or error) on every call. Test stub.
type StaticAdvisor struct {
	Output string
	Err    error
}

func (s StaticAdvisor) Advise(_ context.Context, _ AdvisoryRequest) (string, error) {
	return s.Output, s.Err
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
