package estimator

import (
	"context"

	"github.com/hal-29/hyperon-miner/internal/pattern"
)

// KnowledgeBase is the read-only fact-store surface the estimator
// consumes. Implemented by facts.Store (production) and
// testutil.StubKB (tests).
//
// Implementations must be safe for concurrent reads when the estimator
// runs with WithParallelism greater than one.
type KnowledgeBase interface {
	// SupportCount returns the number of distinct matches for a clause.
	// A negative count is out of contract.
	SupportCount(ctx context.Context, clause pattern.Clause) (int64, error)

	// EmpiricalTruthValues returns one measured (Strength, Confidence)
	// pair per block, in block order.
	EmpiricalTruthValues(ctx context.Context, blocks []pattern.Block) ([]pattern.TruthValue, error)

	// Size returns the total size of the fact store, used as the
	// fallback domain bound. Must be positive for estimation to proceed.
	Size(ctx context.Context) (int64, error)
}

// Partitioner enumerates candidate partitions of a pattern into
// independence-assumed blocks. Implemented by partition.Generator
// (production) and testutil.StubPartitioner (tests).
type Partitioner interface {
	Partitions(p pattern.Pattern) ([]pattern.Partition, error)
}
