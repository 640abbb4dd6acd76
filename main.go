package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"kuhn/agent"
	"kuhn/config"
	"kuhn/engine"
	"kuhn/evaluation"
	"kuhn/game"
)

var (
	trainCfg = config.DefaultTrain()
	evalCfg  = config.DefaultEval()
	logLevel = "info"
)

var rootCmd = &cobra.Command{
	Use:   "kuhn",
	Short: "Kuhn poker self-play trainer",
	Long: `Trains a tabular Monte Carlo agent for two-player Kuhn poker via
self-play with epsilon-greedy exploration, and evaluates the learned greedy
policies against a uniform-random opponent.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		bindFlags(cmd)
		level, err := zerolog.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		zerolog.SetGlobalLevel(level)
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		return nil
	},
}

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Run self-play training and print the learned outcome",
	RunE:  runTrain,
}

var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Train, then measure greedy policies against a random opponent",
	RunE:  runEval,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", logLevel, "Log level (debug, info, warn, error)")

	trainCmd.Flags().IntVar(&trainCfg.Episodes, "episodes", trainCfg.Episodes, "Training episodes")
	trainCmd.Flags().Float64Var(&trainCfg.Epsilon, "epsilon", trainCfg.Epsilon, "Initial exploration rate")
	trainCmd.Flags().Float64Var(&trainCfg.EpsilonDecay, "epsilon-decay", trainCfg.EpsilonDecay, "Multiplicative decay applied after each episode")
	trainCmd.Flags().Float64Var(&trainCfg.MinEpsilon, "minimum-epsilon", trainCfg.MinEpsilon, "Lower bound for epsilon")
	trainCmd.Flags().IntVar(&trainCfg.ReportEvery, "report-every", trainCfg.ReportEvery, "Progress report interval, 0 disables")
	trainCmd.Flags().Uint64Var(&trainCfg.Seed, "seed", trainCfg.Seed, "RNG seed, 0 derives one from the clock")

	evalCmd.Flags().IntVar(&evalCfg.Episodes, "episodes", evalCfg.Episodes, "Training episodes before evaluation")
	evalCmd.Flags().IntVar(&evalCfg.Games, "games", evalCfg.Games, "Evaluation games per seat")
	evalCmd.Flags().Uint64Var(&evalCfg.Seed, "seed", evalCfg.Seed, "RNG seed shared across training and evaluation")
	evalCmd.Flags().StringVar(&evalCfg.Out, "out", evalCfg.Out, "Directory for CSV result records, empty disables")

	rootCmd.AddCommand(trainCmd, evalCmd)

	viper.SetEnvPrefix("KUHN")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// bindFlags lets KUHN_* environment variables stand in for flags the user
// did not set explicitly.
func bindFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if !f.Changed && viper.IsSet(f.Name) {
			_ = cmd.Flags().Set(f.Name, fmt.Sprintf("%v", viper.Get(f.Name)))
		}
	})
}

func runTrain(cmd *cobra.Command, args []string) error {
	if err := trainCfg.Validate(); err != nil {
		return err
	}

	trainer := engine.NewTrainer(*trainCfg)
	result, err := trainer.Run()
	if err != nil {
		log.Fatal().Err(err).Msg("training failed")
	}

	fmt.Println("Training complete.")
	fmt.Printf("Final win counts -> Player 0: %d, Player 1: %d\n", result.Wins[0], result.Wins[1])

	// One hand between the two learned greedy policies.
	seed := trainCfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	policies := trainer.GreedyPolicies()
	hand, err := engine.PlayHand(game.NewEnv(seed), [2]agent.Actor{policies[0], policies[1]})
	if err != nil {
		log.Fatal().Err(err).Msg("sample hand failed")
	}
	fmt.Printf("Sample greedy hand winner: Player %d (history: %s)\n", hand.Winner, hand.History)
	return nil
}

func runEval(cmd *cobra.Command, args []string) error {
	if err := evalCfg.Validate(); err != nil {
		return err
	}

	cfg := *config.DefaultTrain()
	cfg.Episodes = evalCfg.Episodes
	cfg.ReportEvery = 0
	cfg.Seed = evalCfg.Seed

	trainer := engine.NewTrainer(cfg)
	if _, err := trainer.Run(); err != nil {
		log.Fatal().Err(err).Msg("training failed")
	}
	policies := trainer.GreedyPolicies()

	seat0, err := evaluation.VsRandom(policies[0], 0, evalCfg.Games, evalCfg.Seed*3)
	if err != nil {
		log.Fatal().Err(err).Msg("seat 0 evaluation failed")
	}
	seat1, err := evaluation.VsRandom(policies[1], 1, evalCfg.Games, evalCfg.Seed*5)
	if err != nil {
		log.Fatal().Err(err).Msg("seat 1 evaluation failed")
	}

	report := evaluation.NewReport(evalCfg.Episodes, evalCfg.Games, evalCfg.Seed, seat0, seat1)

	pterm.Info.Printfln("Evaluated %d games per seat after %d training episodes (seed=%d).",
		evalCfg.Games, evalCfg.Episodes, evalCfg.Seed)
	if err := pterm.DefaultTable.WithHasHeader().WithData(pterm.TableData{
		{"Seat", "Win rate vs random"},
		{"0", fmt.Sprintf("%.2f%%", seat0*100)},
		{"1", fmt.Sprintf("%.2f%%", seat1*100)},
		{"average", fmt.Sprintf("%.2f%%", report.Average()*100)},
	}).Render(); err != nil {
		return err
	}

	if evalCfg.Out != "" {
		writer, err := evaluation.NewWriter(evalCfg.Out)
		if err != nil {
			log.Fatal().Err(err).Msg("creating results writer failed")
		}
		if err := writer.WriteReport(report); err != nil {
			log.Fatal().Err(err).Msg("writing results failed")
		}
		log.Info().Str("dir", writer.Dir()).Str("run_id", report.RunID.String()).Msg("wrote evaluation results")
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
