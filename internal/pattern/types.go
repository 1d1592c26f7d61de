package pattern

import (
	"fmt"
	"strings"
)

// Term is a sealed interface over the argument forms a clause can carry.
// Only Variable, Constant, Compound, and CanonicalVar implement it.
type Term interface {
	term() // Sealed - only these types implement it.
	String() string
}

// Variable is a named free variable, scoped to one pattern. Every
// occurrence of the same name within a pattern denotes the same bound
// value.
type Variable string

func (Variable) term() {}

// String renders the variable with a $ sigil, e.g. "$x".
func (v Variable) String() string { return "$" + string(v) }

// Constant is a ground atom argument.
type Constant string

func (Constant) term() {}

func (c Constant) String() string { return string(c) }

// Compound is a nested functional term, e.g. succ(succ(0)).
type Compound struct {
	Functor string
	Args    []Term
}

func (Compound) term() {}

func (c Compound) String() string {
	parts := make([]string, len(c.Args))
	for i, a := range c.Args {
		parts[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", c.Functor, strings.Join(parts, ", "))
}

// CanonicalVar is a position-derived placeholder produced by ToCanonical.
// Index zero renders as "0"; successive indices are successor-encoded,
// e.g. CanonicalVar(2) renders as "succ(succ(0))".
type CanonicalVar int

func (CanonicalVar) term() {}

func (v CanonicalVar) String() string {
	s := "0"
	for i := 0; i < int(v); i++ {
		s = "succ(" + s + ")"
	}
	return s
}

// Clause is a typed relation template with zero or more argument slots.
type Clause struct {
	Relation string
	Args     []Term
}

func (c Clause) String() string {
	parts := make([]string, len(c.Args))
	for i, a := range c.Args {
		parts[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", c.Relation, strings.Join(parts, ", "))
}

// Variables returns the clause's distinct variables in first-occurrence
// order, descending into compound arguments.
func (c Clause) Variables() []Variable {
	var out []Variable
	seen := make(map[Variable]bool)
	var walk func(t Term)
	walk = func(t Term) {
		switch term := t.(type) {
		case Variable:
			if !seen[term] {
				seen[term] = true
				out = append(out, term)
			}
		case Compound:
			for _, a := range term.Args {
				walk(a)
			}
		}
	}
	for _, a := range c.Args {
		walk(a)
	}
	return out
}

// Pattern is an ordered, non-empty conjunction of clauses. Order is
// significant for the abstraction-ordering heuristic, not for logical
// meaning.
type Pattern []Clause

func (p Pattern) String() string {
	parts := make([]string, len(p))
	for i, c := range p {
		parts[i] = c.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Variables returns the pattern's distinct variables in first-occurrence
// order across clauses.
func (p Pattern) Variables() []Variable {
	var out []Variable
	seen := make(map[Variable]bool)
	for _, c := range p {
		for _, v := range c.Variables() {
			if !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		}
	}
	return out
}

// Block is an ordered sub-sequence of a pattern's clauses.
type Block []Clause

// Variables returns the block's distinct variables in first-occurrence order.
func (b Block) Variables() []Variable {
	return Pattern(b).Variables()
}

// References reports whether any clause in the block mentions v.
func (b Block) References(v Variable) bool {
	for _, got := range b.Variables() {
		if got == v {
			return true
		}
	}
	return false
}

// Partition groups a pattern's clauses into disjoint, ordered blocks.
// The blocks' union is exactly the pattern's clause set; each partition
// represents one independence hypothesis.
type Partition []Block

// Clauses flattens the partition back into one ordered clause sequence
// (blocks in partition order, clauses in block order).
func (p Partition) Clauses() []Clause {
	var out []Clause
	for _, b := range p {
		out = append(out, b...)
	}
	return out
}

// TruthValue is a (Strength, Confidence) pair. Strength is the estimated
// probability the pattern holds; Confidence is the estimate's reliability.
// Both components lie in [0, 1].
type TruthValue struct {
	Strength   float64 `json:"strength"`
	Confidence float64 `json:"confidence"`
}

// Validate reports an error when either component is outside [0, 1]
// or is not a number.
func (tv TruthValue) Validate() error {
	if !(tv.Strength >= 0 && tv.Strength <= 1) {
		return fmt.Errorf("strength %v outside [0,1]", tv.Strength)
	}
	if !(tv.Confidence >= 0 && tv.Confidence <= 1) {
		return fmt.Errorf("confidence %v outside [0,1]", tv.Confidence)
	}
	return nil
}
