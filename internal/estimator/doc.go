// Package estimator implements joint-independent truth-value estimation
// (JITVE) for conjunctive patterns.
//
// The estimator approximates how likely a multi-clause pattern is to
// hold without evaluating the full joint query. For each candidate
// partition of the pattern into independence-assumed blocks it:
//
//  1. Averages the blocks' empirical strengths (the "independent"
//     estimate, as if blocks did not share variables).
//  2. Corrects that estimate by the probability that every joint
//     variable takes a mutually consistent value across the blocks
//     that share it (the equality-probability chain, 1/M per clause,
//     where M is a domain-size bound from the abstraction ordering
//     with the database size as fallback).
//  3. Damps the first block's empirical confidence by a fixed factor,
//     reflecting the uncertainty the independence assumption adds.
//
// The final estimate is the arithmetic mean over all partitions. A
// pattern with no candidate partitions yields a neutral value.
//
// ARCHITECTURE:
//
// The engine is purely functional over a read-only knowledge-base
// snapshot: no component mutates shared state and all accumulator
// recursions are expressed as explicit loops. Partitions are evaluated
// independently, so evaluation may be dispatched across goroutines
// (WithParallelism) provided the knowledge-base client is safe for
// concurrent reads; no ordering guarantee is needed because the final
// step is a commutative average. Support counts are memoized per
// estimation call, keyed by naming-independent clause hashes.
package estimator
