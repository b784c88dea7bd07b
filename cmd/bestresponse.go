package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vickrey-sim/vickrey-sim/auction"
)

var (
	privateValue   float64
	numOpponents   int
	opponentShade  float64
	brSeed         int64
	brGridPoints   int
	brTrials       int
	brWorkers      int
	brShowEstimate bool
)

// bestResponseCmd surfaces the approximator directly: estimate the
// payoff-maximizing bid for one private value against a modeled population.
var bestResponseCmd = &cobra.Command{
	Use:   "best-response",
	Short: "Estimate the best-response bid for a private value",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		cfg := auction.NewBestResponseConfig(brGridPoints, brTrials, brWorkers)
		if err := cfg.Validate(); err != nil {
			logrus.Fatalf("Invalid best-response configuration: %v", err)
		}

		var model auction.OpponentModel
		if opponentShade >= 1.0 {
			model = auction.TruthfulUniformOpponents{Count: numOpponents, Min: 0, Max: 1}
		} else {
			model = auction.ShadedUniformOpponents{Count: numOpponents, Factor: opponentShade, Min: 0, Max: 1}
		}

		rng := auction.NewPartitionedRNG(auction.NewSimulationKey(brSeed)).ForSubsystem(auction.SubsystemBestResponse)
		approx := auction.Approximator{Workers: cfg.Workers}
		grid := auction.UniformGrid(cfg.GridPoints)

		est, err := approx.Approximate(privateValue, grid, model, cfg.Trials, rng)
		if err != nil {
			logrus.Fatalf("Approximation failed: %v", err)
		}

		fmt.Printf("best bid        : %.4f\n", est.Bid)
		fmt.Printf("expected payoff : %.4f\n", est.ExpectedPayoff)
		if brShowEstimate {
			// Re-run on a fresh stream for the full payoff surface.
			surfaceRNG := auction.NewPartitionedRNG(auction.NewSimulationKey(brSeed)).ForSubsystem(auction.SubsystemBestResponse)
			estimates, err := approx.EstimateGrid(privateValue, grid, model, cfg.Trials, surfaceRNG)
			if err != nil {
				logrus.Fatalf("Approximation failed: %v", err)
			}
			for i, b := range grid {
				fmt.Printf("  bid %.4f -> payoff %.4f\n", b, estimates[i])
			}
		}
	},
}

func init() {
	bestResponseCmd.Flags().Float64Var(&privateValue, "value", 0.5, "Private value to respond to")
	bestResponseCmd.Flags().IntVar(&numOpponents, "opponents", 2, "Number of modeled opponents")
	bestResponseCmd.Flags().Float64Var(&opponentShade, "opponent-shade", 1.0, "Opponent shading factor (1.0 = truthful)")
	bestResponseCmd.Flags().Int64Var(&brSeed, "seed", 0, "Seed for trial draws")
	bestResponseCmd.Flags().IntVar(&brGridPoints, "grid-points", 101, "Candidate bids on the [0,1] grid")
	bestResponseCmd.Flags().IntVar(&brTrials, "trials", 500, "Simulated auctions per candidate bid")
	bestResponseCmd.Flags().IntVar(&brWorkers, "workers", 1, "Parallel trial workers per candidate")
	bestResponseCmd.Flags().BoolVar(&brShowEstimate, "surface", false, "Print the full payoff surface")

	rootCmd.AddCommand(bestResponseCmd)
}
