package estimator

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/hal-29/hyperon-miner/internal/abstraction"
	"github.com/hal-29/hyperon-miner/internal/partition"
	"github.com/hal-29/hyperon-miner/internal/pattern"
)

// IndependenceDamping scales a partition's confidence below the first
// block's raw empirical confidence, reflecting the extra uncertainty
// the independence assumption introduces.
const IndependenceDamping = 0.1

// Estimator computes joint-independent truth-value estimates over an
// immutable knowledge-base snapshot.
//
// The estimator holds no mutable state between calls; a fresh support
// cache is created per Estimate invocation, so a single Estimator may
// serve concurrent callers as long as its collaborators allow
// concurrent reads.
type Estimator struct {
	kb          KnowledgeBase
	partitioner Partitioner
	oracle      abstraction.Oracle
	tokens      TokenGenerator
	logger      *slog.Logger
	parallelism int
}

// Option configures an Estimator.
type Option func(*Estimator)

// WithParallelism dispatches partition evaluation across up to n
// goroutines. The default of 1 keeps evaluation sequential; results
// are identical either way because the final step is a commutative
// average and each partition is evaluated against the same read-only
// snapshot.
func WithParallelism(n int) Option {
	return func(e *Estimator) {
		if n > 0 {
			e.parallelism = n
		}
	}
}

// WithTokenGenerator replaces the run-token generator, e.g. with a
// fixed sequence in tests.
func WithTokenGenerator(g TokenGenerator) Option {
	return func(e *Estimator) {
		e.tokens = g
	}
}

// WithLogger replaces the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Estimator) {
		e.logger = l
	}
}

// New creates an Estimator over the given collaborators.
func New(kb KnowledgeBase, p Partitioner, oracle abstraction.Oracle, opts ...Option) *Estimator {
	e := &Estimator{
		kb:          kb,
		partitioner: p,
		oracle:      oracle,
		tokens:      UUIDv7Generator{},
		logger:      slog.Default(),
		parallelism: 1,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Estimate computes the joint-independent truth-value estimate for a
// pattern.
//
// A pattern with no candidate partitions yields the neutral zero value
// without error; callers must treat a zero-partition pattern as a
// no-op. All other failures surface unmodified as *EstimateError.
func (e *Estimator) Estimate(ctx context.Context, p pattern.Pattern) (pattern.TruthValue, error) {
	if len(p) == 0 {
		return pattern.TruthValue{}, NewDegenerateInputError("empty pattern", p)
	}

	size, err := e.kb.Size(ctx)
	if err != nil {
		return pattern.TruthValue{}, NewCollaboratorError("database_size", err)
	}
	if size <= 0 {
		return pattern.TruthValue{}, NewDegenerateInputError(
			fmt.Sprintf("database size %d", size), p)
	}

	parts, err := e.partitioner.Partitions(p)
	if err != nil {
		return pattern.TruthValue{}, NewCollaboratorError("generate_partitions", err)
	}

	token := e.tokens.Generate()
	e.logger.Debug("estimation started",
		"run", token, "clauses", len(p), "partitions", len(parts), "db_size", size)

	if len(parts) == 0 {
		e.logger.Debug("estimation neutral", "run", token)
		return pattern.TruthValue{}, nil
	}

	r := newResolver(e.kb, e.oracle)
	results := make([]pattern.TruthValue, len(parts))

	if e.parallelism > 1 {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(e.parallelism)
		for i, part := range parts {
			i, part := i, part
			g.Go(func() error {
				tv, err := e.estimatePartition(gctx, r, part, size)
				if err != nil {
					return err
				}
				results[i] = tv
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return pattern.TruthValue{}, err
		}
	} else {
		for i, part := range parts {
			tv, err := e.estimatePartition(ctx, r, part, size)
			if err != nil {
				return pattern.TruthValue{}, err
			}
			results[i] = tv
		}
	}

	// Simple mean of each component independently across partitions.
	var out pattern.TruthValue
	for _, tv := range results {
		out.Strength += tv.Strength
		out.Confidence += tv.Confidence
	}
	out.Strength /= float64(len(results))
	out.Confidence /= float64(len(results))

	e.logger.Debug("estimation finished",
		"run", token, "strength", out.Strength, "confidence", out.Confidence)
	return out, nil
}

// estimatePartition combines one partition's independent block
// strengths with its joint-consistency probability.
func (e *Estimator) estimatePartition(ctx context.Context, r *resolver, part pattern.Partition, dbSize int64) (pattern.TruthValue, error) {
	tvs, err := e.kb.EmpiricalTruthValues(ctx, []pattern.Block(part))
	if err != nil {
		return pattern.TruthValue{}, NewCollaboratorError("empirical_truth_value", err)
	}
	if len(tvs) != len(part) {
		return pattern.TruthValue{}, NewCollaboratorError("empirical_truth_value",
			fmt.Errorf("got %d truth values for %d blocks", len(tvs), len(part)))
	}
	for i, tv := range tvs {
		if err := tv.Validate(); err != nil {
			return pattern.TruthValue{}, NewCollaboratorError("empirical_truth_value",
				fmt.Errorf("block %d: %w", i, err))
		}
	}

	independent := 0.0
	for _, tv := range tvs {
		independent += tv.Strength
	}
	independent /= float64(len(tvs))

	joint := partition.AllJointVariables(part)
	consistency, err := jointConsistency(ctx, r, part, joint, dbSize)
	if err != nil {
		return pattern.TruthValue{}, err
	}

	return pattern.TruthValue{
		Strength:   independent * consistency,
		Confidence: tvs[0].Confidence * IndependenceDamping,
	}, nil
}
