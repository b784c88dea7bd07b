// Package auction provides the core engine for repeated sealed-bid
// second-price (Vickrey) auction simulations.
//
// # Reading Guide
//
// Start with these three files to understand the engine:
//   - clearing.go: the clearing rule (winner, second price, payoffs)
//   - bestresponse.go: Monte-Carlo best-response estimation over a bid grid
//   - simulator.go: the round loop and online outcome aggregation
//
// # Architecture
//
// One simulation run is a fixed roster of bidders playing N independent
// rounds. Each round samples a private value per bidder, asks each bidder's
// BiddingStrategy for a bid, clears the auction, and folds the outcome into
// running statistics. Full RoundOutcomes are not retained; only derived
// scalars survive the round.
//
// # Key Interfaces
//
// The extension points are single-method capabilities:
//   - ValueSampler: draw a private value
//   - OpponentModel: draw one vector of simulated opponent bids
//   - BiddingStrategy: turn a private value into a bid
//   - Advisor: external reasoning collaborator consulted by the Advised
//     strategy (its output is advisory only; decode failures fall back to the
//     best-response recommendation)
//
// All randomness flows through explicitly seeded sources (see rng.go), so a
// run is reproducible bit for bit from its SimulationKey.
package auction
