package estimator

import (
	"context"

	"github.com/hal-29/hyperon-miner/internal/pattern"
)

// chainProbability estimates P(X1 = X2 = ... = Xn), the probability
// that a variable takes a consistent value across an ordered clause
// sequence, as the product of 1/M(Xj) for j >= 2.
//
// M(Xj) is the MAXIMUM of the resolver's candidate domain sizes for
// clause j. The maximum is the most informative bound: "most abstract"
// means largest domain, so picking the largest candidate selects the
// tightest upper bound the abstraction ordering can justify. When no
// candidate is present, or the maximum is not strictly positive, M
// falls back to the full database size.
//
// The fold is an explicit loop with an accumulator, not a recursion:
// a single-clause sequence returns the accumulated probability
// unchanged. dbSize >= 1 is a precondition enforced by the estimator,
// so division by zero cannot occur.
func chainProbability(ctx context.Context, r *resolver, clauses []pattern.Clause, dbSize int64) (float64, error) {
	prob := 1.0
	for j := 1; j < len(clauses); j++ {
		candidates, err := r.Candidates(ctx, clauses, j, j)
		if err != nil {
			return 0, err
		}

		m, present := maxPresent(candidates)
		if !present || m <= 0 {
			m = float64(dbSize)
		}
		prob /= m
	}
	return prob, nil
}

// maxPresent returns the largest present candidate, if any.
func maxPresent(candidates []Candidate) (float64, bool) {
	var best float64
	found := false
	for _, c := range candidates {
		if !c.OK {
			continue
		}
		if !found || c.Size > best {
			best = c.Size
			found = true
		}
	}
	return best, found
}
