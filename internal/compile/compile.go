package compile

import (
	"fmt"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"

	"github.com/hal-29/hyperon-miner/internal/pattern"
)

// Definition pairs a pattern with its declared name.
type Definition struct {
	Name    string
	Pattern pattern.Pattern
}

// CompileDefinition parses a CUE value into a named pattern definition.
// Uses CUE SDK's Go API directly (not CLI subprocess).
//
// The CUE value should be the pattern struct itself, e.g.:
//
//	ctx := cuecontext.New()
//	v := ctx.CompileString(`pattern: { name: "ugly-man", clauses: [...] }`)
//	def, err := CompileDefinition(v.LookupPath(cue.ParsePath("pattern")))
func CompileDefinition(v cue.Value) (*Definition, error) {
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	def := &Definition{}

	nameVal := v.LookupPath(cue.ParsePath("name"))
	if nameVal.Exists() {
		name, err := nameVal.String()
		if err != nil {
			return nil, formatCUEError(err)
		}
		def.Name = name
	}

	clausesVal := v.LookupPath(cue.ParsePath("clauses"))
	if !clausesVal.Exists() {
		return nil, &CompileError{
			Field:   "clauses",
			Message: "clauses is required",
			Pos:     v.Pos(),
		}
	}

	p, err := CompilePattern(clausesVal)
	if err != nil {
		return nil, err
	}
	def.Pattern = p

	return def, nil
}

// CompilePattern parses a CUE list of clause structs into a Pattern.
// At least one clause is required.
func CompilePattern(v cue.Value) (pattern.Pattern, error) {
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	iter, err := v.List()
	if err != nil {
		return nil, formatCUEError(err)
	}

	var p pattern.Pattern
	for iter.Next() {
		clause, err := compileClause(iter.Value())
		if err != nil {
			return nil, err
		}
		p = append(p, clause)
	}

	if len(p) == 0 {
		return nil, &CompileError{
			Field:   "clauses",
			Message: "at least one clause is required",
			Pos:     v.Pos(),
		}
	}

	return p, nil
}

// compileClause parses one clause struct: { relation: "...", args: [...] }.
func compileClause(v cue.Value) (pattern.Clause, error) {
	var clause pattern.Clause

	relVal := v.LookupPath(cue.ParsePath("relation"))
	if !relVal.Exists() {
		return clause, &CompileError{
			Field:   "relation",
			Message: "relation is required",
			Pos:     v.Pos(),
		}
	}
	relation, err := relVal.String()
	if err != nil {
		return clause, formatCUEError(err)
	}
	if relation == "" {
		return clause, &CompileError{
			Field:   "relation",
			Message: "relation must be non-empty",
			Pos:     relVal.Pos(),
		}
	}
	clause.Relation = relation

	argsVal := v.LookupPath(cue.ParsePath("args"))
	if argsVal.Exists() {
		iter, err := argsVal.List()
		if err != nil {
			return clause, formatCUEError(err)
		}
		for iter.Next() {
			term, err := compileTerm(iter.Value())
			if err != nil {
				return clause, err
			}
			clause.Args = append(clause.Args, term)
		}
	}

	return clause, nil
}

// compileTerm parses one argument. Strings with a $ sigil become
// variables, other strings become constants, and structs of the form
// { fn: "succ", args: [...] } become compound terms.
func compileTerm(v cue.Value) (pattern.Term, error) {
	if str, err := v.String(); err == nil {
		if strings.HasPrefix(str, "$") {
			name := strings.TrimPrefix(str, "$")
			if name == "" {
				return nil, &CompileError{
					Field:   "args",
					Message: "variable needs a name after $",
					Pos:     v.Pos(),
				}
			}
			return pattern.Variable(name), nil
		}
		return pattern.Constant(str), nil
	}

	fnVal := v.LookupPath(cue.ParsePath("fn"))
	if fnVal.Exists() {
		fn, err := fnVal.String()
		if err != nil {
			return nil, formatCUEError(err)
		}

		compound := pattern.Compound{Functor: fn}
		argsVal := v.LookupPath(cue.ParsePath("args"))
		if argsVal.Exists() {
			iter, err := argsVal.List()
			if err != nil {
				return nil, formatCUEError(err)
			}
			for iter.Next() {
				arg, err := compileTerm(iter.Value())
				if err != nil {
					return nil, err
				}
				compound.Args = append(compound.Args, arg)
			}
		}
		return compound, nil
	}

	return nil, &CompileError{
		Field:   "args",
		Message: "argument must be a string or a { fn, args } struct",
		Pos:     v.Pos(),
	}
}

// CompileError reports a pattern document that does not fit the
// expected shape, with CUE source position when known.
type CompileError struct {
	Field   string
	Message string
	Pos     token.Pos
}

func (e *CompileError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s",
			e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(),
			e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// formatCUEError extracts position info from CUE errors.
func formatCUEError(err error) error {
	if err == nil {
		return nil
	}

	// CUE errors may contain multiple errors
	errs := errors.Errors(err)
	if len(errs) == 0 {
		return err
	}

	firstErr := errs[0]
	positions := errors.Positions(firstErr)
	if len(positions) > 0 {
		return &CompileError{
			Field:   "cue",
			Message: firstErr.Error(),
			Pos:     positions[0],
		}
	}

	return err
}
