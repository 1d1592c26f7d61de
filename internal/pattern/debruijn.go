package pattern

import "fmt"

// DefaultNamePool is the bounded pool of fresh variable names consumed
// by FromCanonical. Patterns whose canonical form carries more
// placeholder occurrences than the pool has slots are out of contract.
var DefaultNamePool = []string{"x", "y", "z", "u", "v", "w", "s", "t"}

// CapacityError reports a canonical decoding that needs more fresh
// names than the pool provides.
type CapacityError struct {
	Occurrences int // placeholder occurrences encountered so far, 1-based
	Pool        int // pool size
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("canonical name pool exhausted: occurrence %d exceeds pool of %d", e.Occurrences, e.Pool)
}

// Canonicalizer converts between named patterns and their positional
// (De Bruijn-style) canonical form.
//
// The default encoding assigns a fresh index to every variable
// OCCURRENCE, not to every distinct variable name: a variable repeated
// in two slots receives two different canonical indices, and the
// inverse likewise assigns two different fresh names. The conversion
// round-trips without contradiction but does not preserve aliasing
// across repeated occurrences. That behavior is the default here;
// WithAliasByName switches to first-occurrence-per-name indexing, which
// restores alpha-equivalence for patterns with repeated variables.
type Canonicalizer struct {
	aliasByName bool
	pool        []string
}

// CanonicalizerOption configures a Canonicalizer.
type CanonicalizerOption func(*Canonicalizer)

// WithAliasByName maps variables by first occurrence per name instead
// of per occurrence, preserving variable identity across repeats.
func WithAliasByName() CanonicalizerOption {
	return func(c *Canonicalizer) {
		c.aliasByName = true
	}
}

// WithNamePool replaces the fresh-name pool used by FromCanonical.
func WithNamePool(names ...string) CanonicalizerOption {
	return func(c *Canonicalizer) {
		c.pool = names
	}
}

// NewCanonicalizer returns a Canonicalizer with the default
// per-occurrence behavior and an 8-slot name pool.
func NewCanonicalizer(opts ...CanonicalizerOption) *Canonicalizer {
	c := &Canonicalizer{pool: DefaultNamePool}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ToCanonical replaces every variable in p with a position-derived
// placeholder. Traversal is depth-first, left to right, recursing into
// compound arguments before continuing with siblings. Constants do not
// advance the index. The conversion is a pure function of p's structure.
func (c *Canonicalizer) ToCanonical(p Pattern) Pattern {
	next := 0
	byName := make(map[Variable]int)

	var walk func(t Term) Term
	walk = func(t Term) Term {
		switch term := t.(type) {
		case Variable:
			if c.aliasByName {
				idx, ok := byName[term]
				if !ok {
					idx = next
					byName[term] = idx
					next++
				}
				return CanonicalVar(idx)
			}
			idx := next
			next++
			return CanonicalVar(idx)
		case Compound:
			args := make([]Term, len(term.Args))
			for i, a := range term.Args {
				args[i] = walk(a)
			}
			return Compound{Functor: term.Functor, Args: args}
		default:
			// Constants and already-canonical placeholders pass through.
			return t
		}
	}

	out := make(Pattern, len(p))
	for i, clause := range p {
		args := make([]Term, len(clause.Args))
		for j, a := range clause.Args {
			args[j] = walk(a)
		}
		out[i] = Clause{Relation: clause.Relation, Args: args}
	}
	return out
}

// FromCanonical substitutes canonical placeholders with fresh names from
// the bounded pool, consuming placeholders in the same depth-first
// order ToCanonical emits them. In the default per-occurrence mode one
// pool slot is consumed per placeholder ENCOUNTERED, not per distinct
// index; in alias-by-name mode one slot is consumed per distinct index.
// Returns a *CapacityError when the pool runs out.
func (c *Canonicalizer) FromCanonical(p Pattern) (Pattern, error) {
	used := 0
	byIndex := make(map[CanonicalVar]Variable)

	take := func() (Variable, error) {
		if used >= len(c.pool) {
			return "", &CapacityError{Occurrences: used + 1, Pool: len(c.pool)}
		}
		name := Variable(c.pool[used])
		used++
		return name, nil
	}

	var walk func(t Term) (Term, error)
	walk = func(t Term) (Term, error) {
		switch term := t.(type) {
		case CanonicalVar:
			if c.aliasByName {
				if name, ok := byIndex[term]; ok {
					return name, nil
				}
				name, err := take()
				if err != nil {
					return nil, err
				}
				byIndex[term] = name
				return name, nil
			}
			name, err := take()
			if err != nil {
				return nil, err
			}
			return name, nil
		case Compound:
			args := make([]Term, len(term.Args))
			for i, a := range term.Args {
				sub, err := walk(a)
				if err != nil {
					return nil, err
				}
				args[i] = sub
			}
			return Compound{Functor: term.Functor, Args: args}, nil
		default:
			return t, nil
		}
	}

	out := make(Pattern, len(p))
	for i, clause := range p {
		args := make([]Term, len(clause.Args))
		for j, a := range clause.Args {
			sub, err := walk(a)
			if err != nil {
				return nil, err
			}
			args[j] = sub
		}
		out[i] = Clause{Relation: clause.Relation, Args: args}
	}
	return out, nil
}
