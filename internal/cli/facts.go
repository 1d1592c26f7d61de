package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hal-29/hyperon-miner/internal/facts"
)

// FactsOptions holds flags shared by the facts subcommands.
type FactsOptions struct {
	*RootOptions
	Database string // fact store path
}

// FactsLoadResult is the facts load command's output payload.
type FactsLoadResult struct {
	Loaded int   `json:"loaded"`
	Size   int64 `json:"size"`
}

// FactsInfoResult is the facts info command's output payload.
type FactsInfoResult struct {
	Size int64 `json:"size"`
}

// NewFactsCommand creates the facts command group.
func NewFactsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &FactsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "facts",
		Short: "Manage the SQLite fact store",
	}

	cmd.PersistentFlags().StringVar(&opts.Database, "db", "", "fact store path (required)")
	cmd.MarkPersistentFlagRequired("db")

	cmd.AddCommand(newFactsLoadCommand(opts))
	cmd.AddCommand(newFactsInfoCommand(opts))

	return cmd
}

func newFactsLoadCommand(opts *FactsOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "load <facts.yaml>",
		Short: "Load a YAML fact fixture into the store",
		Long: `Insert every fact listed in a YAML document into the store.
Loading is idempotent: facts already present are skipped.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFactsLoad(opts, args[0], cmd)
		},
	}
}

func newFactsInfoCommand(opts *FactsOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "info",
		Short:         "Show fact store statistics",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFactsInfo(opts, cmd)
		},
	}
}

func runFactsLoad(opts *FactsOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	f, err := os.Open(path)
	if err != nil {
		message := fmt.Sprintf("facts file not found: %s", path)
		formatter.Error(ErrCodeNotFound, message, nil)
		return WrapExitError(ExitCommandError, message, err)
	}
	defer f.Close()

	store, err := facts.Open(opts.Database)
	if err != nil {
		formatter.Error(ErrCodeDatabase, err.Error(), nil)
		return WrapExitError(ExitCommandError, "open fact store", err)
	}
	defer store.Close()

	loaded, err := store.LoadYAML(cmd.Context(), f)
	if err != nil {
		formatter.Error(ErrCodeDatabase, err.Error(), nil)
		return WrapExitError(ExitFailure, "load facts", err)
	}

	size, err := store.Size(cmd.Context())
	if err != nil {
		formatter.Error(ErrCodeDatabase, err.Error(), nil)
		return WrapExitError(ExitFailure, "database size", err)
	}

	formatter.VerboseLog("Loaded %d fact(s) from %s", loaded, path)

	result := FactsLoadResult{Loaded: loaded, Size: size}
	if opts.Format == "json" {
		return formatter.Success(result)
	}
	return formatter.Success(fmt.Sprintf("loaded %d fact(s); store holds %d", loaded, size))
}

func runFactsInfo(opts *FactsOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
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

	size, err := store.Size(cmd.Context())
	if err != nil {
		formatter.Error(ErrCodeDatabase, err.Error(), nil)
		return WrapExitError(ExitFailure, "database size", err)
	}

	result := FactsInfoResult{Size: size}
	if opts.Format == "json" {
		return formatter.Success(result)
	}
	return formatter.Success(fmt.Sprintf("%d fact(s)", size))
}
