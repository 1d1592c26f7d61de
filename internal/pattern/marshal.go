package pattern

import (
	"bytes"
	"encoding/json"
	"fmt"

	"golang.org/x/text/unicode/norm"
)

// MarshalCanonical produces canonical JSON for content hashing.
// This is the ONLY serialization that should be used for
// content-addressed identity computation.
//
// Properties:
//  1. Object keys emitted in a fixed order per node type
//  2. No HTML escaping (< > & are NOT escaped)
//  3. Strings are NFC normalized at the serialization boundary
//  4. No floats anywhere in the term encoding
//
// Terms encode as tagged objects:
//
//	Variable("x")      -> {"var":"x"}
//	Constant("man")    -> {"const":"man"}
//	CanonicalVar(2)    -> {"idx":2}
//	Compound           -> {"args":[...],"fn":"succ"}
//
// Clauses encode as {"args":[...],"relation":"Inheritance"} and a
// pattern as {"clauses":[...]}.
func MarshalCanonical(p Pattern) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"clauses":[`)
	for i, c := range p {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := marshalClause(&buf, c); err != nil {
			return nil, fmt.Errorf("clause[%d]: %w", i, err)
		}
	}
	buf.WriteString(`]}`)
	return buf.Bytes(), nil
}

func marshalClause(buf *bytes.Buffer, c Clause) error {
	buf.WriteString(`{"args":[`)
	for i, a := range c.Args {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := marshalTerm(buf, a); err != nil {
			return fmt.Errorf("arg[%d]: %w", i, err)
		}
	}
	buf.WriteString(`],"relation":`)
	rel, err := marshalCanonicalString(c.Relation)
	if err != nil {
		return err
	}
	buf.Write(rel)
	buf.WriteByte('}')
	return nil
}

func marshalTerm(buf *bytes.Buffer, t Term) error {
	switch term := t.(type) {
	case Variable:
		s, err := marshalCanonicalString(string(term))
		if err != nil {
			return err
		}
		buf.WriteString(`{"var":`)
		buf.Write(s)
		buf.WriteByte('}')
		return nil
	case Constant:
		s, err := marshalCanonicalString(string(term))
		if err != nil {
			return err
		}
		buf.WriteString(`{"const":`)
		buf.Write(s)
		buf.WriteByte('}')
		return nil
	case CanonicalVar:
		fmt.Fprintf(buf, `{"idx":%d}`, int(term))
		return nil
	case Compound:
		buf.WriteString(`{"args":[`)
		for i, a := range term.Args {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := marshalTerm(buf, a); err != nil {
				return fmt.Errorf("arg[%d]: %w", i, err)
			}
		}
		buf.WriteString(`],"fn":`)
		fn, err := marshalCanonicalString(term.Functor)
		if err != nil {
			return err
		}
		buf.Write(fn)
		buf.WriteByte('}')
		return nil
	case nil:
		return fmt.Errorf("nil term is forbidden in canonical JSON")
	default:
		return fmt.Errorf("unsupported term type for canonical JSON: %T", t)
	}
}

// marshalCanonicalString produces a canonical JSON string with NFC
// normalization and HTML escaping disabled.
func marshalCanonicalString(s string) ([]byte, error) {
	// NFC normalize at serialization boundary
	normalized := norm.NFC.String(s)

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false) // <, >, & must NOT be escaped
	if err := enc.Encode(normalized); err != nil {
		return nil, err
	}

	// json.Encoder adds a trailing newline, remove it
	result := buf.Bytes()
	if len(result) > 0 && result[len(result)-1] == '\n' {
		result = result[:len(result)-1]
	}
	return result, nil
}
