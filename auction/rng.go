package auction

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
)

// === SimulationKey ===

// SimulationKey uniquely identifies a reproducible simulation run.
// Two runs with the same SimulationKey and identical configuration MUST
// produce identical summaries.
type SimulationKey int64

// NewSimulationKey creates a SimulationKey from a seed value.
func NewSimulationKey(seed int64) SimulationKey {
	return SimulationKey(seed)
}

// === Subsystem Constants ===

const (
	// SubsystemValues is the RNG subsystem for private-value sampling.
	// Uses the master seed directly so --seed alone pins the value draws.
	SubsystemValues = "values"

	// SubsystemBestResponse is the RNG subsystem for best-response trial
	// draws made outside any particular bidder's stream (the best-response
	// CLI subcommand).
	SubsystemBestResponse = "bestresponse"
)

// SubsystemBidder returns the subsystem name for one bidder's own draws
// (opponent-model sampling inside its strategy). Isolating bidders keeps a
// bidder's trial count from perturbing everyone else's streams.
func SubsystemBidder(id string) string {
	return fmt.Sprintf("bidder_%s", id)
}

// === PartitionedRNG ===

// PartitionedRNG provides deterministic, isolated RNG streams per subsystem.
//
// Derivation:
//   - SubsystemValues uses the master seed directly
//   - every other subsystem uses masterSeed XOR fnv1a64(subsystemName)
//
// Thread-safety: NOT thread-safe. Must be called from a single goroutine;
// parallel workers derive child sources via ChildSource instead of sharing.
type PartitionedRNG struct {
	key        SimulationKey
	subsystems map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG from a SimulationKey.
func NewPartitionedRNG(key SimulationKey) *PartitionedRNG {
	return &PartitionedRNG{
		key:        key,
		subsystems: make(map[string]*rand.Rand),
	}
}

// ForSubsystem returns a deterministically-seeded RNG for the named
// subsystem. The same name always returns the same *rand.Rand (cached).
// Never returns nil.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	if rng, ok := p.subsystems[name]; ok {
		return rng
	}

	derived := int64(p.key)
	if name != SubsystemValues {
		derived = int64(p.key) ^ fnv1a64(name)
	}

	rng := rand.New(rand.NewPCG(uint64(p.key), uint64(derived)))
	p.subsystems[name] = rng
	return rng
}

// Key returns the SimulationKey used to create this PartitionedRNG.
func (p *PartitionedRNG) Key() SimulationKey {
	return p.key
}

// ChildSource derives an independent seeded source from a parent RNG by
// drawing its seed material from the parent. Each call advances the parent,
// so a fixed sequence of calls yields a fixed sequence of children. Used to
// hand isolated streams to parallel trial workers.
func ChildSource(parent *rand.Rand) *rand.Rand {
	return rand.New(rand.NewPCG(parent.Uint64(), parent.Uint64()))
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
