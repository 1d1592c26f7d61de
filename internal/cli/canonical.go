package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hal-29/hyperon-miner/internal/harness"
	"github.com/hal-29/hyperon-miner/internal/pattern"
)

// CanonicalOptions holds flags for the canonical command.
type CanonicalOptions struct {
	*RootOptions
	Alias bool // alias repeated variable names to one placeholder
	Named bool // additionally render the canonical form back through the name pool
}

// CanonicalResult is the canonical command's output payload.
type CanonicalResult struct {
	Name    string   `json:"name,omitempty"`
	Clauses []string `json:"clauses"`
	Named   []string `json:"named,omitempty"`
	Hash    string   `json:"hash"`
}

// NewCanonicalCommand creates the canonical command.
func NewCanonicalCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CanonicalOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "canonical <pattern.cue>",
		Short: "Render a pattern's canonical form and content hash",
		Long: `Compile a CUE pattern document and render its naming-independent
canonical form, where variables become positional placeholders.

The content hash identifies the pattern up to variable renaming.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCanonical(opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Alias, "alias", false, "alias repeated variable names to one placeholder")
	cmd.Flags().BoolVar(&opts.Named, "named", false, "also render the canonical form back through the name pool")

	return cmd
}

func runCanonical(opts *CanonicalOptions, path string, cmd *cobra.Command) error {
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

	var canonOpts []pattern.CanonicalizerOption
	if opts.Alias {
		canonOpts = append(canonOpts, pattern.WithAliasByName())
	}
	canonicalizer := pattern.NewCanonicalizer(canonOpts...)
	canonical := canonicalizer.ToCanonical(def.Pattern)

	hash, err := pattern.Hash(def.Pattern)
	if err != nil {
		formatter.Error(ErrCodeGeneric, err.Error(), nil)
		return WrapExitError(ExitFailure, "hash pattern", err)
	}

	result := CanonicalResult{
		Name:    def.Name,
		Clauses: make([]string, 0, len(canonical)),
		Hash:    hash,
	}
	for _, clause := range canonical {
		result.Clauses = append(result.Clauses, clause.String())
	}

	if opts.Named {
		named, err := canonicalizer.FromCanonical(canonical)
		if err != nil {
			formatter.Error(ErrCodeGeneric, err.Error(), nil)
			return WrapExitError(ExitFailure, "name canonical form", err)
		}
		for _, clause := range named {
			result.Named = append(result.Named, clause.String())
		}
	}

	if opts.Format == "json" {
		return formatter.Success(result)
	}
	return formatter.Success(renderCanonicalText(result))
}

func renderCanonicalText(result CanonicalResult) string {
	var b strings.Builder
	if result.Name != "" {
		fmt.Fprintf(&b, "pattern: %s\n", result.Name)
	}
	for _, clause := range result.Clauses {
		fmt.Fprintf(&b, "  %s\n", clause)
	}
	if len(result.Named) > 0 {
		b.WriteString("named:\n")
		for _, clause := range result.Named {
			fmt.Fprintf(&b, "  %s\n", clause)
		}
	}
	fmt.Fprintf(&b, "hash: %s", result.Hash)
	return b.String()
}
