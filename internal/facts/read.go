package facts

import (
	"context"
	"fmt"

	"github.com/hal-29/hyperon-miner/internal/pattern"
)

// Size returns the total number of facts in the store.
// Implements estimator.KnowledgeBase.
func (s *Store) Size(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM facts").Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("database size: %w", err)
	}
	return n, nil
}

// SupportCount returns the number of facts matching a single clause
// template. Implements estimator.KnowledgeBase.
func (s *Store) SupportCount(ctx context.Context, clause pattern.Clause) (int64, error) {
	return s.matchCount(ctx, []pattern.Clause{clause})
}

// EmpiricalTruthValues measures one (Strength, Confidence) pair per
// block. Strength is the block's satisfying-assignment count over the
// database size, clamped to 1 because self-joined blocks can match more
// assignments than there are facts. Confidence grows with database
// size as size/(size+1), so larger fact bases yield estimates closer
// to full confidence.
//
// Implements estimator.KnowledgeBase.
func (s *Store) EmpiricalTruthValues(ctx context.Context, blocks []pattern.Block) ([]pattern.TruthValue, error) {
	size, err := s.Size(ctx)
	if err != nil {
		return nil, err
	}
	if size <= 0 {
		return nil, fmt.Errorf("empirical truth value: empty fact base")
	}

	confidence := float64(size) / float64(size+1)

	out := make([]pattern.TruthValue, 0, len(blocks))
	for _, block := range blocks {
		matches, err := s.matchCount(ctx, []pattern.Clause(block))
		if err != nil {
			return nil, err
		}

		strength := float64(matches) / float64(size)
		if strength > 1 {
			strength = 1
		}
		out = append(out, pattern.TruthValue{Strength: strength, Confidence: confidence})
	}
	return out, nil
}

// matchCount runs the compiled match query for a clause sequence.
func (s *Store) matchCount(ctx context.Context, clauses []pattern.Clause) (int64, error) {
	query, params, err := buildMatchQuery(clauses)
	if err != nil {
		return 0, err
	}

	var n int64
	if err := s.db.QueryRowContext(ctx, query, params...).Scan(&n); err != nil {
		return 0, fmt.Errorf("match count: %w", err)
	}
	return n, nil
}
