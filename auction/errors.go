package auction

import "errors"

// Sentinel errors for the engine. Configuration-level errors (ErrEmptyBidSet
// surfacing from a misbuilt roster, ErrInvalidGrid, ErrInvalidTrials,
// ErrEmptyRoster, ErrInvalidRounds) are fatal and abort the run before or at
// the round where they occur. ErrAdvisoryDecode is absorbed locally by the
// Advised strategy's fallback and is never fatal.
var (
	// ErrEmptyBidSet is returned when clearing is attempted with no bids.
	ErrEmptyBidSet = errors.New("auction: clearing requires at least one bid")

	// ErrInvalidGrid is returned when the best-response candidate grid is empty.
	ErrInvalidGrid = errors.New("auction: candidate bid grid must be non-empty")

	// ErrInvalidTrials is returned when the best-response trial count is not positive.
	ErrInvalidTrials = errors.New("auction: trials must be positive")

	// ErrAdvisoryDecode marks malformed output from an external Advisor.
	ErrAdvisoryDecode = errors.New("auction: advisory output could not be decoded")

	// ErrEmptyRoster is returned when a simulation is configured with no bidders.
	ErrEmptyRoster = errors.New("auction: bidder roster must be non-empty")

	// ErrInvalidRounds is returned when a simulation is configured with a
	// non-positive round count.
	ErrInvalidRounds = errors.New("auction: rounds must be positive")

	// ErrNoRoundsCompleted is returned when a run produced no completed
	// rounds; the summary would be undefined.
	ErrNoRoundsCompleted = errors.New("auction: no rounds completed")
)
