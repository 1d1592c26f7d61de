// Package facts stores the ground-atom knowledge base in SQLite and
// measures clause support counts and empirical block truth values
// against it.
//
// Facts are (relation, args) rows with args kept as a JSON array of
// strings. Clause templates compile to parameterized COUNT queries:
// constants pin argument positions with json_extract, repeated
// variables add cross-position equality constraints, and multi-clause
// blocks self-join one facts alias per clause.
//
// The Store satisfies estimator.KnowledgeBase.
package facts
