// Package pattern provides the term and pattern representation for the
// truth-value estimation engine.
//
// This package contains type definitions plus the naming-independent
// canonical encoding. All other internal packages import pattern;
// pattern imports nothing internal. This keeps the term layer
// foundational with no circular dependencies.
//
// Key design constraints:
//   - Terms form a sealed interface: Variable, Constant, Compound, CanonicalVar
//   - Patterns, blocks, and partitions are immutable inputs; nothing here
//     mutates shared state
//   - Canonical conversion is a pure function of pattern structure
//   - Content hashes are computed over canonical JSON with domain separation
package pattern
