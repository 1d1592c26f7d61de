// Package partition enumerates independence hypotheses over a pattern's
// clauses and answers structural questions about them.
//
// A partition groups the pattern's clauses into disjoint, ordered
// blocks. Enumeration is deterministic: partitions are produced in
// restricted-growth-string order, blocks are ordered by the position of
// their first clause, and clauses keep pattern order within a block.
// Determinism matters because the estimator averages over partitions
// and tests snapshot the enumeration.
package partition

import "github.com/hal-29/hyperon-miner/internal/pattern"

// Generator enumerates candidate partitions for a pattern.
//
// Only PROPER partitions (two or more blocks) are generated: the
// single-block partition restates the joint query the estimator is
// trying to avoid, so it carries no independence hypothesis. A pattern
// with fewer than two clauses therefore has no candidate partitions.
type Generator struct{}

// NewGenerator returns the default proper-partition enumerator.
func NewGenerator() Generator {
	return Generator{}
}

// Partitions returns every proper partition of p's clause list.
// Deterministic: restricted growth strings are enumerated in ascending
// order, so the all-singletons partition is always last.
func (Generator) Partitions(p pattern.Pattern) ([]pattern.Partition, error) {
	n := len(p)
	if n < 2 {
		return nil, nil
	}

	var out []pattern.Partition

	// Restricted growth string: rgs[i] is the block index of clause i,
	// with rgs[i] <= max(rgs[0..i-1]) + 1. Every assignment enumerated
	// exactly once.
	rgs := make([]int, n)
	var walk func(i, maxUsed int)
	walk = func(i, maxUsed int) {
		if i == n {
			blocks := maxUsed + 1
			if blocks < 2 {
				return // trivial single-block partition carries no hypothesis
			}
			part := make(pattern.Partition, blocks)
			for pos, b := range rgs {
				part[b] = append(part[b], p[pos])
			}
			out = append(out, part)
			return
		}
		for b := 0; b <= maxUsed+1; b++ {
			rgs[i] = b
			next := maxUsed
			if b > maxUsed {
				next = b
			}
			walk(i+1, next)
		}
	}
	rgs[0] = 0
	walk(1, 0)

	return out, nil
}
