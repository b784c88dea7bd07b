package cmd

import (
	"context"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vickrey-sim/vickrey-sim/auction"
)

var (
	// CLI flags for the simulation run
	seed         int64  // Seed for all random streams
	rounds       int    // Number of auction rounds
	logLevel     string // Log verbosity level
	rosterPath   string // Optional YAML roster file
	distribution string // Private value distribution (uniform, normal)
	minValue     float64
	maxValue     float64
	valueMu      float64
	valueSigma   float64

	// CLI flags for the best-response approximator
	gridPoints int
	trials     int
	workers    int
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "vickrey-sim",
	Short: "Monte-Carlo simulator for repeated second-price auctions",
}

// runCmd executes a multi-round simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a repeated second-price auction simulation",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		sampler, err := buildSampler()
		if err != nil {
			logrus.Fatalf("Invalid value distribution: %v", err)
		}

		brCfg := auction.NewBestResponseConfig(gridPoints, trials, workers)
		if err := brCfg.Validate(); err != nil {
			logrus.Fatalf("Invalid best-response configuration: %v", err)
		}

		bidders, err := loadBidders(rosterPath, brCfg)
		if err != nil {
			logrus.Fatalf("Unable to build bidder roster: %v", err)
		}

		logrus.Infof("Starting simulation: seed=%d rounds=%d bidders=%d distribution=%s",
			seed, rounds, len(bidders), distribution)
		startTime := time.Now()

		sim, err := auction.NewSimulator(auction.NewSimulationConfig(seed, rounds), bidders, sampler, nil)
		if err != nil {
			logrus.Fatalf("Unable to configure simulation: %v", err)
		}

		summary, err := sim.Run(context.Background())
		if err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}
		summary.Print()

		logrus.Infof("Simulation complete in %v.", time.Since(startTime))
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// buildSampler constructs the private-value sampler selected by flags.
func buildSampler() (auction.ValueSampler, error) {
	switch distribution {
	case "uniform":
		return auction.UniformSampler{Min: minValue, Max: maxValue}, nil
	case "normal":
		return auction.NormalSampler{Mu: valueMu, Sigma: valueSigma}, nil
	default:
		return nil, errUnknownDistribution(distribution)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for all random streams")
	runCmd.Flags().IntVar(&rounds, "rounds", 1000, "Number of auction rounds")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&rosterPath, "roster", "", "YAML roster file (default: built-in 3-bidder roster)")

	// Private value distribution
	runCmd.Flags().StringVar(&distribution, "distribution", "uniform", "Private value distribution (uniform, normal)")
	runCmd.Flags().Float64Var(&minValue, "min-value", 0.0, "Minimum private value (uniform)")
	runCmd.Flags().Float64Var(&maxValue, "max-value", 1.0, "Maximum private value (uniform)")
	runCmd.Flags().Float64Var(&valueMu, "value-mu", 0.5, "Private value mean (normal)")
	runCmd.Flags().Float64Var(&valueSigma, "value-sigma", 0.15, "Private value stddev (normal)")

	// Best-response approximator (advised bidders)
	runCmd.Flags().IntVar(&gridPoints, "grid-points", 101, "Candidate bids on the [0,1] grid")
	runCmd.Flags().IntVar(&trials, "trials", 500, "Simulated auctions per candidate bid")
	runCmd.Flags().IntVar(&workers, "workers", 1, "Parallel trial workers per candidate")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
