package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/vickrey-sim/vickrey-sim/auction"
)

// Define structs for the YAML roster file
type RosterConfig struct {
	Bidders []BidderSpec `yaml:"bidders"`
}

type BidderSpec struct {
	ID       string  `yaml:"id"`
	Strategy string  `yaml:"strategy"` // heuristic, advised, truthful
	Factor   float64 `yaml:"factor"`   // shading factor (heuristic only)
}

// loadBidders builds the roster from a YAML file, or falls back to the
// built-in three-bidder roster (two heuristic shaders around one advised
// bidder) when no file is given.
func loadBidders(path string, brCfg auction.BestResponseConfig) ([]auction.Bidder, error) {
	if path == "" {
		return defaultRoster(brCfg), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading roster file: %w", err)
	}
	var cfg RosterConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing roster file: %w", err)
	}
	if len(cfg.Bidders) == 0 {
		return nil, auction.ErrEmptyRoster
	}

	bidders := make([]auction.Bidder, 0, len(cfg.Bidders))
	for _, spec := range cfg.Bidders {
		strategy, err := buildStrategy(spec, brCfg)
		if err != nil {
			return nil, err
		}
		bidders = append(bidders, auction.Bidder{ID: spec.ID, Strategy: strategy})
	}
	logrus.Infof("Loaded roster of %d bidders from %s", len(bidders), path)
	return bidders, nil
}

// buildStrategy maps one roster entry to a strategy variant.
func buildStrategy(spec BidderSpec, brCfg auction.BestResponseConfig) (auction.BiddingStrategy, error) {
	switch spec.Strategy {
	case "heuristic":
		factor := spec.Factor
		if factor == 0 {
			factor = 0.8
		}
		return auction.HeuristicShading{Factor: factor}, nil
	case "advised":
		return auction.Advised{
			Approximator: auction.Approximator{Workers: brCfg.Workers},
			Grid:         auction.UniformGrid(brCfg.GridPoints),
			Trials:       brCfg.Trials,
		}, nil
	case "truthful":
		return auction.Truthful{}, nil
	default:
		return nil, fmt.Errorf("unknown strategy %q for bidder %q", spec.Strategy, spec.ID)
	}
}

// defaultRoster mirrors the canonical experiment setup: two heuristic
// shaders (0.8 and 0.7) around one advised bidder.
func defaultRoster(brCfg auction.BestResponseConfig) []auction.Bidder {
	return []auction.Bidder{
		{ID: "B1", Strategy: auction.HeuristicShading{Factor: 0.8}},
		{ID: "B2", Strategy: auction.Advised{
			Approximator: auction.Approximator{Workers: brCfg.Workers},
			Grid:         auction.UniformGrid(brCfg.GridPoints),
			Trials:       brCfg.Trials,
		}},
		{ID: "B3", Strategy: auction.HeuristicShading{Factor: 0.7}},
	}
}

func errUnknownDistribution(name string) error {
	return fmt.Errorf("unknown distribution %q (want uniform or normal)", name)
}
