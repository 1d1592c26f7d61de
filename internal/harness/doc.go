// Package harness runs conformance scenarios against the pattern
// pipeline and compares their structural output to golden files.
//
// A scenario is a YAML file naming a CUE pattern document. Running it
// compiles the document, derives the canonical form, and enumerates
// candidate partitions; the golden snapshot records clause renderings
// and partition layout, which are fully deterministic.
//
// Golden files live in testdata/golden/ and are regenerated with
// go test ./internal/harness -update.
package harness
