package estimator

import (
	"context"
	"fmt"
	"math"

	"github.com/hal-29/hyperon-miner/internal/pattern"
)

// DomainSize approximates how many distinct values a single free
// variable of the clause can take, as sqrt(support_count).
//
// The true number of distinct values is bounded by, but generally much
// smaller than, the clause's total match count; the square root is a
// fixed, arity-agnostic approximation. The exponent stays a constant
// 0.5 rather than 1/variable-count; generalizing it is an open
// modeling question, not an implemented feature.
func DomainSize(ctx context.Context, kb KnowledgeBase, clause pattern.Clause) (float64, error) {
	n, err := kb.SupportCount(ctx, clause)
	if err != nil {
		return 0, NewCollaboratorError("support_count", err)
	}
	if n < 0 {
		return 0, NewCollaboratorError("support_count",
			fmt.Errorf("negative count %d for clause %s", n, clause))
	}
	return math.Sqrt(float64(n)), nil
}
