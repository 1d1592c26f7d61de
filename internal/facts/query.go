package facts

import (
	"fmt"
	"strings"

	"github.com/hal-29/hyperon-miner/internal/pattern"
)

// occurrence locates one variable use: which clause's table alias and
// which argument position.
type occurrence struct {
	table int
	pos   int
}

// buildMatchQuery compiles a clause sequence into one parameterized
// COUNT query over self-joined facts tables.
//
// Each clause binds one table alias. Relation and arity become equality
// constraints; constant arguments constrain their position with
// json_extract; a variable appearing more than once becomes
// cross-position equality constraints tying every later occurrence to
// its first.
//
// Values are never interpolated into the SQL text - only structural
// pieces (aliases, argument indices) are formatted in, and those are
// derived from slice positions, not caller input.
func buildMatchQuery(clauses []pattern.Clause) (string, []any, error) {
	if len(clauses) == 0 {
		return "", nil, fmt.Errorf("compile match query: empty clause list")
	}

	var (
		tables []string
		where  []string
		params []any
		occs   = make(map[pattern.Variable][]occurrence)
		order  []pattern.Variable
	)

	for ti, clause := range clauses {
		alias := fmt.Sprintf("f%d", ti)
		tables = append(tables, "facts "+alias)
		where = append(where, alias+".relation = ?", alias+".arity = ?")
		params = append(params, clause.Relation, len(clause.Args))

		for pi, arg := range clause.Args {
			switch term := arg.(type) {
			case pattern.Variable:
				if _, seen := occs[term]; !seen {
					order = append(order, term)
				}
				occs[term] = append(occs[term], occurrence{table: ti, pos: pi})
			case pattern.Constant:
				where = append(where, positionConstraint(alias, pi))
				params = append(params, string(term))
			case pattern.Compound:
				// Ground compounds are stored as their rendered text;
				// compounds with variables inside have no positional
				// encoding in the facts table.
				if len(pattern.Clause{Args: []pattern.Term{term}}.Variables()) > 0 {
					return "", nil, fmt.Errorf(
						"compile match query: compound with variables not supported: %s", term)
				}
				where = append(where, positionConstraint(alias, pi))
				params = append(params, term.String())
			default:
				return "", nil, fmt.Errorf(
					"compile match query: unsupported argument type %T", arg)
			}
		}
	}

	// Tie every later occurrence of a variable to its first.
	for _, v := range order {
		uses := occs[v]
		first := uses[0]
		for _, use := range uses[1:] {
			where = append(where, fmt.Sprintf("%s = %s",
				positionRef(first), positionRef(use)))
		}
	}

	sql := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s",
		strings.Join(tables, ", "),
		strings.Join(where, " AND "))

	return sql, params, nil
}

func positionConstraint(alias string, pos int) string {
	return fmt.Sprintf("json_extract(%s.args, '$[%d]') = ?", alias, pos)
}

func positionRef(o occurrence) string {
	return fmt.Sprintf("json_extract(f%d.args, '$[%d]')", o.table, o.pos)
}
