package pattern

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Domain prefixes for content-addressed identity.
// Version suffix enables future algorithm migration.
const (
	DomainPattern = "miner/pattern/v1"
	DomainClause  = "miner/clause/v1"
)

// hashWithDomain computes SHA-256 hash with domain separation.
// Format: SHA256(domain + 0x00 + data)
// The null byte separator prevents domain/data boundary ambiguity.
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// Hash computes a content-addressed, naming-independent identity for a
// pattern. The pattern is canonicalized (per-occurrence positional
// encoding) before marshaling, so two patterns differing only by
// variable naming hash identically. Returns an error if the pattern
// cannot be canonically marshaled.
func Hash(p Pattern) (string, error) {
	canonical, err := MarshalCanonical(NewCanonicalizer().ToCanonical(p))
	if err != nil {
		return "", fmt.Errorf("pattern hash: %w", err)
	}
	return hashWithDomain(DomainPattern, canonical), nil
}

// HashAliased computes a pattern identity using alias-by-name
// canonicalization. Like Hash it is invariant under variable renaming,
// but a pattern repeating a variable stays distinct from its
// free-variable counterpart, which Hash conflates.
func HashAliased(p Pattern) (string, error) {
	canonical, err := MarshalCanonical(NewCanonicalizer(WithAliasByName()).ToCanonical(p))
	if err != nil {
		return "", fmt.Errorf("pattern hash: %w", err)
	}
	return hashWithDomain(DomainPattern, canonical), nil
}

// HashClause computes a naming-independent identity for a single clause
// using the per-occurrence encoding, so a clause repeating a variable
// hashes the same as its free-variable counterpart.
func HashClause(c Clause) (string, error) {
	canonical, err := MarshalCanonical(NewCanonicalizer().ToCanonical(Pattern{c}))
	if err != nil {
		return "", fmt.Errorf("clause hash: %w", err)
	}
	return hashWithDomain(DomainClause, canonical), nil
}

// HashClauseAliased computes a clause identity using alias-by-name
// canonicalization: renaming-invariant, but keeps repeated-variable
// clauses apart from free-variable ones. Support counts differ between
// the two shapes, so caches of per-clause measurements key with this
// hash rather than HashClause.
func HashClauseAliased(c Clause) (string, error) {
	canonical, err := MarshalCanonical(NewCanonicalizer(WithAliasByName()).ToCanonical(Pattern{c}))
	if err != nil {
		return "", fmt.Errorf("clause hash: %w", err)
	}
	return hashWithDomain(DomainClause, canonical), nil
}

// MustHash is like Hash but panics on error.
// Use only in tests or when inputs are known to be valid.
func MustHash(p Pattern) string {
	h, err := Hash(p)
	if err != nil {
		panic(err)
	}
	return h
}
