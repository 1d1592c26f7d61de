package testutil

import (
	"context"
	"fmt"
	"sync"

	"github.com/hal-29/hyperon-miner/internal/pattern"
)

// StubKB is a map-backed estimator.KnowledgeBase for tests.
//
// Supports and truth values are keyed by alias-by-name content hashes,
// so fixtures registered with one variable naming are found under any
// alpha-equivalent naming while repeated-variable clauses stay distinct
// from their free-variable counterparts, matching the production
// store's behavior (its SQL adds self-equality constraints for
// repeated variables, so the two shapes count differently).
//
// Thread-safety: all methods are safe for concurrent use via an
// internal mutex; the estimator queries stubs concurrently when run
// with parallelism above one.
type StubKB struct {
	mu       sync.Mutex
	size     int64
	supports map[string]int64
	tvs      map[string]pattern.TruthValue

	// Injectable failures. When non-nil, the corresponding method
	// returns the error instead of consulting the maps.
	SizeErr    error
	SupportErr error
	TVErr      error
}

// NewStubKB creates a stub knowledge base reporting the given size.
func NewStubKB(size int64) *StubKB {
	return &StubKB{
		size:     size,
		supports: make(map[string]int64),
		tvs:      make(map[string]pattern.TruthValue),
	}
}

// SetSupport registers the support count for a clause. Clauses without
// a registered count report zero support.
func (s *StubKB) SetSupport(clause pattern.Clause, count int64) {
	key, err := pattern.HashClauseAliased(clause)
	if err != nil {
		panic(err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.supports[key] = count
}

// SetTruthValue registers the empirical truth value for a block.
func (s *StubKB) SetTruthValue(block pattern.Block, tv pattern.TruthValue) {
	key := blockKey(block)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tvs[key] = tv
}

// SupportCount implements estimator.KnowledgeBase.
func (s *StubKB) SupportCount(_ context.Context, clause pattern.Clause) (int64, error) {
	if s.SupportErr != nil {
		return 0, s.SupportErr
	}
	key, err := pattern.HashClauseAliased(clause)
	if err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.supports[key], nil
}

// EmpiricalTruthValues implements estimator.KnowledgeBase. Blocks with
// no registered truth value fail loudly so fixture gaps surface as
// test failures rather than silent zeros.
func (s *StubKB) EmpiricalTruthValues(_ context.Context, blocks []pattern.Block) ([]pattern.TruthValue, error) {
	if s.TVErr != nil {
		return nil, s.TVErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]pattern.TruthValue, 0, len(blocks))
	for i, block := range blocks {
		tv, ok := s.tvs[blockKey(block)]
		if !ok {
			return nil, fmt.Errorf("no truth value registered for block %d", i)
		}
		out = append(out, tv)
	}
	return out, nil
}

// Size implements estimator.KnowledgeBase.
func (s *StubKB) Size(_ context.Context) (int64, error) {
	if s.SizeErr != nil {
		return 0, s.SizeErr
	}
	return s.size, nil
}

func blockKey(block pattern.Block) string {
	key, err := pattern.HashAliased(pattern.Pattern(block))
	if err != nil {
		panic(err)
	}
	return key
}

// StubPartitioner returns a fixed partition list (or a fixed error)
// regardless of the input pattern.
type StubPartitioner struct {
	Parts []pattern.Partition
	Err   error
}

// Partitions implements estimator.Partitioner.
func (s *StubPartitioner) Partitions(pattern.Pattern) ([]pattern.Partition, error) {
	return s.Parts, s.Err
}

// TableOracle answers MoreAbstract from an explicit table of ordered
// clause pairs, keyed by alias-by-name content hash. Pairs not in the
// table are not ordered.
type TableOracle struct {
	mu    sync.Mutex
	pairs map[string]struct{}
}

// NewTableOracle creates an empty oracle table.
func NewTableOracle() *TableOracle {
	return &TableOracle{pairs: make(map[string]struct{})}
}

// Allow registers that a is strictly more abstract than b.
func (o *TableOracle) Allow(a, b pattern.Clause) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.pairs[pairKey(a, b)] = struct{}{}
}

// MoreAbstract implements abstraction.Oracle.
func (o *TableOracle) MoreAbstract(a, b pattern.Clause) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	_, ok := o.pairs[pairKey(a, b)]
	return ok
}

func pairKey(a, b pattern.Clause) string {
	ha, err := pattern.HashClauseAliased(a)
	if err != nil {
		panic(err)
	}
	hb, err := pattern.HashClauseAliased(b)
	if err != nil {
		panic(err)
	}
	return ha + "|" + hb
}
