package estimator

import (
	"context"
	"sync"

	"github.com/hal-29/hyperon-miner/internal/abstraction"
	"github.com/hal-29/hyperon-miner/internal/pattern"
)

// Candidate is an optional domain-size estimate produced by the
// conditional domain resolver. OK is false when the scanned clause is
// not more abstract than the target ("not applicable"); an explicit
// marker is used instead of a sentinel value so selection stays honest
// about absence.
type Candidate struct {
	Size float64
	OK   bool
}

// resolver scans a pattern's earlier clauses for ones that are more
// abstract than a target clause and yields their domain-size estimates.
//
// Domain sizes are memoized per estimation call, keyed by the clause's
// alias-by-name content hash, so repeated chains over the same clauses
// query the knowledge base once. The alias-preserving hash matters: a
// clause repeating a variable and its free-variable counterpart have
// different support counts, so they must not share a cache entry even
// though the per-occurrence encoding renders them identically. The
// cache is guarded by a mutex because partitions may be evaluated
// concurrently.
type resolver struct {
	kb     KnowledgeBase
	oracle abstraction.Oracle

	mu    sync.Mutex
	sizes map[string]float64
}

func newResolver(kb KnowledgeBase, oracle abstraction.Oracle) *resolver {
	return &resolver{
		kb:     kb,
		oracle: oracle,
		sizes:  make(map[string]float64),
	}
}

// Candidates scans the lookback clauses preceding clauses[target] in
// scan order and returns exactly lookback entries: a present domain
// size where the scanned clause is more abstract than the target, an
// absent marker where it is not.
func (r *resolver) Candidates(ctx context.Context, clauses []pattern.Clause, target, lookback int) ([]Candidate, error) {
	out := make([]Candidate, 0, lookback)
	for i := target - lookback; i < target; i++ {
		if !r.oracle.MoreAbstract(clauses[i], clauses[target]) {
			out = append(out, Candidate{})
			continue
		}
		size, err := r.domainSize(ctx, clauses[i])
		if err != nil {
			return nil, err
		}
		out = append(out, Candidate{Size: size, OK: true})
	}
	return out, nil
}

// domainSize returns the memoized domain-size estimate for a clause.
func (r *resolver) domainSize(ctx context.Context, clause pattern.Clause) (float64, error) {
	key, err := pattern.HashClauseAliased(clause)
	if err != nil {
		return 0, NewCollaboratorError("clause_hash", err)
	}

	r.mu.Lock()
	size, ok := r.sizes[key]
	r.mu.Unlock()
	if ok {
		return size, nil
	}

	size, err = DomainSize(ctx, r.kb, clause)
	if err != nil {
		return 0, err
	}

	r.mu.Lock()
	r.sizes[key] = size
	r.mu.Unlock()
	return size, nil
}
