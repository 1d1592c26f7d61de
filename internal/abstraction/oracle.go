// Package abstraction provides the clause abstraction ordering consumed
// by the conditional domain resolver.
//
// The ordering is modeled as an injected strategy so alternative
// orderings are substitutable and testable in isolation; the estimator
// only consumes yes/no answers.
package abstraction

import "github.com/hal-29/hyperon-miner/internal/pattern"

// Oracle answers whether one clause is more abstract than another.
// Implementations must be safe for concurrent use: the estimator may
// evaluate partitions in parallel.
type Oracle interface {
	// MoreAbstract reports whether a's constraints are a strict
	// generalization of b's.
	MoreAbstract(a, b pattern.Clause) bool
}

// SubsumptionOracle is the default ordering: clause A is more abstract
// than clause B when A structurally subsumes B (same relation and
// arity, every ground slot of A equal in B, repeated variables in A
// bound consistently) and B does not subsume A back.
type SubsumptionOracle struct{}

// NewSubsumptionOracle returns the default structural ordering.
func NewSubsumptionOracle() SubsumptionOracle {
	return SubsumptionOracle{}
}

// MoreAbstract implements Oracle. Strictness comes from requiring
// subsumption in one direction only; alpha-variant clauses are equally
// abstract and therefore not ordered.
func (SubsumptionOracle) MoreAbstract(a, b pattern.Clause) bool {
	return subsumesClause(a, b) && !subsumesClause(b, a)
}

// subsumesClause reports whether a generalizes b, threading a variable
// binding so repeated variables in a must match equal subterms of b.
func subsumesClause(a, b pattern.Clause) bool {
	if a.Relation != b.Relation || len(a.Args) != len(b.Args) {
		return false
	}
	bindings := make(map[pattern.Variable]pattern.Term)
	for i := range a.Args {
		if !subsumesTerm(a.Args[i], b.Args[i], bindings) {
			return false
		}
	}
	return true
}

func subsumesTerm(a, b pattern.Term, bindings map[pattern.Variable]pattern.Term) bool {
	switch ta := a.(type) {
	case pattern.Variable:
		bound, ok := bindings[ta]
		if !ok {
			bindings[ta] = b
			return true
		}
		return equalTerm(bound, b)
	case pattern.Constant:
		tb, ok := b.(pattern.Constant)
		return ok && ta == tb
	case pattern.CanonicalVar:
		tb, ok := b.(pattern.CanonicalVar)
		return ok && ta == tb
	case pattern.Compound:
		tb, ok := b.(pattern.Compound)
		if !ok || ta.Functor != tb.Functor || len(ta.Args) != len(tb.Args) {
			return false
		}
		for i := range ta.Args {
			if !subsumesTerm(ta.Args[i], tb.Args[i], bindings) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func equalTerm(a, b pattern.Term) bool {
	switch ta := a.(type) {
	case pattern.Variable:
		tb, ok := b.(pattern.Variable)
		return ok && ta == tb
	case pattern.Constant:
		tb, ok := b.(pattern.Constant)
		return ok && ta == tb
	case pattern.CanonicalVar:
		tb, ok := b.(pattern.CanonicalVar)
		return ok && ta == tb
	case pattern.Compound:
		tb, ok := b.(pattern.Compound)
		if !ok || ta.Functor != tb.Functor || len(ta.Args) != len(tb.Args) {
			return false
		}
		for i := range ta.Args {
			if !equalTerm(ta.Args[i], tb.Args[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
