package auction

import (
	"math"
	"sort"
)

// BidSet maps bidder ID to the bid that bidder submitted this round.
// Insertion order is irrelevant; clearing is defined only for non-empty sets.
type BidSet map[string]float64

// ClearingResult is the outcome of clearing one sealed-bid auction.
type ClearingResult struct {
	// WinnerID is the bidder receiving the item.
	WinnerID string

	// ClearingPrice is what the winner pays: the second-highest bid, or 0
	// when only one bid was submitted (standard Vickrey degenerate case).
	ClearingPrice float64

	// Revenue equals ClearingPrice for a single-item auction; kept explicit.
	Revenue float64
}

// Clear runs the second-price rule over a BidSet: the highest bidder wins
// and pays the second-highest bid.
//
// Determinism: when several bidders share the maximum bid, the lowest bidder
// ID (byte-wise) wins. With a single bid the clearing price is 0.
// Returns ErrEmptyBidSet for an empty set.
func Clear(bids BidSet) (ClearingResult, error) {
	if len(bids) == 0 {
		return ClearingResult{}, ErrEmptyBidSet
	}

	type entry struct {
		id  string
		bid float64
	}
	ranked := make([]entry, 0, len(bids))
	for id, bid := range bids {
		ranked = append(ranked, entry{id: id, bid: bid})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].bid != ranked[j].bid {
			return ranked[i].bid > ranked[j].bid
		}
		return ranked[i].id < ranked[j].id
	})

	price := 0.0
	if len(ranked) > 1 {
		price = ranked[1].bid
	}

	return ClearingResult{
		WinnerID:      ranked[0].id,
		ClearingPrice: price,
		Revenue:       price,
	}, nil
}

// Payoffs computes quasilinear payoffs for a cleared auction: the winner
// earns max(0, value − clearing price), everyone else earns 0. The clamp
// covers winners who overbid past their own value; with truthful or shaded
// bidding it never triggers.
func Payoffs(values map[string]float64, result ClearingResult) map[string]float64 {
	payoffs := make(map[string]float64, len(values))
	for id := range values {
		payoffs[id] = 0
	}
	if v, ok := values[result.WinnerID]; ok {
		payoffs[result.WinnerID] = math.Max(0, v-result.ClearingPrice)
	}
	return payoffs
}
