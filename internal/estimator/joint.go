package estimator

import (
	"context"

	"github.com/hal-29/hyperon-miner/internal/partition"
	"github.com/hal-29/hyperon-miner/internal/pattern"
)

// jointConsistency estimates the probability that every joint variable
// of the partition simultaneously takes a mutually consistent value
// across the blocks that share it.
//
// For each joint variable the blocks referencing it are flattened into
// one ordered clause sequence (blocks in partition order, clauses in
// block order) and fed through the equality-probability chain; the
// chain results multiply into one accumulator. Processing order over
// the variables does not matter - the arithmetic is commutative.
func jointConsistency(ctx context.Context, r *resolver, part pattern.Partition, joint []pattern.Variable, dbSize int64) (float64, error) {
	acc := 1.0
	for _, v := range joint {
		var seq []pattern.Clause
		for _, block := range partition.ConnectedBlocks(part, v) {
			seq = append(seq, block...)
		}

		prob, err := chainProbability(ctx, r, seq, dbSize)
		if err != nil {
			return 0, err
		}
		acc *= prob
	}
	return acc, nil
}
