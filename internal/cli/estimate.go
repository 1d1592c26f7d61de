package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/hal-29/hyperon-miner/internal/abstraction"
	"github.com/hal-29/hyperon-miner/internal/estimator"
	"github.com/hal-29/hyperon-miner/internal/facts"
	"github.com/hal-29/hyperon-miner/internal/harness"
	"github.com/hal-29/hyperon-miner/internal/partition"
)

// EstimateOptions holds flags for the estimate command.
type EstimateOptions struct {
	*RootOptions
	Database string // fact store path
	Parallel int    // partition evaluation parallelism
}

// EstimateResult is the estimate command's output payload.
type EstimateResult struct {
	Name       string  `json:"name,omitempty"`
	Strength   float64 `json:"strength"`
	Confidence float64 `json:"confidence"`
}

// NewEstimateCommand creates the estimate command.
func NewEstimateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EstimateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "estimate <pattern.cue>",
		Short: "Estimate a pattern's truth value against a fact base",
		Long: `Compile a CUE pattern document and estimate its truth value
against the facts stored in a SQLite database.

The estimate averages over the pattern's independence hypotheses,
weighting each by the probability that its blocks agree on shared
variables.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEstimate(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "fact store path (required)")
	cmd.Flags().IntVar(&opts.Parallel, "parallel", 1, "partition evaluation parallelism")
	cmd.MarkFlagRequired("db")

	return cmd
}

func runEstimate(opts *EstimateOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	def, err := harness.LoadPattern(path)
	if err != nil {
		formatter.Error(ErrCodeCompileFailed, err.Error(), nil)
		return WrapExitError(ExitCommandError, "load pattern", err)
	}

	if _, err := os.Stat(opts.Database); os.IsNotExist(err) {
		message := fmt.Sprintf("fact store not found: %s", opts.Database)
		formatter.Error(ErrCodeNotFound, message, nil)
		return NewExitError(ExitCommandError, message)
	}

	store, err := facts.Open(opts.Database)
	if err != nil {
		formatter.Error(ErrCodeDatabase, err.Error(), nil)
		return WrapExitError(ExitCommandError, "open fact store", err)
	}
	defer store.Close()

	logLevel := slog.LevelWarn
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: logLevel}))

	est := estimator.New(store, partition.NewGenerator(), abstraction.NewSubsumptionOracle(),
		estimator.WithParallelism(opts.Parallel),
		estimator.WithLogger(logger),
	)

	tv, err := est.Estimate(cmd.Context(), def.Pattern)
	if err != nil {
		formatter.Error(ErrCodeEstimate, err.Error(), nil)
		return WrapExitError(ExitFailure, "estimate", err)
	}

	result := EstimateResult{
		Name:       def.Name,
		Strength:   tv.Strength,
		Confidence: tv.Confidence,
	}

	if opts.Format == "json" {
		return formatter.Success(result)
	}
	return formatter.Success(fmt.Sprintf("strength=%v confidence=%v", tv.Strength, tv.Confidence))
}
