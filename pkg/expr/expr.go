package expr

import (
	"hash/fnv"
)

type ExprType string

const (
	INTEGER_EXPR  = "INTEGER"
	RATIONAL_EXPR = "RATIONAL"
	REAL_EXPR     = "REAL"
	COMPLEX_EXPR  = "COMPLEX"
	SYMBOL_EXPR   = "SYMBOL"
	CALL_EXPR     = "CALL"
	SPECIAL_EXPR  = "SPECIAL"

	// Canonical symbol names
	PiName          = "Pi"
	EName           = "E"
	GoldenRatioName = "GoldenRatio"
	IName           = "I"
)

// Expr is the expression representation handed back and forth with the host
// evaluation engine. Exact variants (Integer, Rational, Symbol, Call over
// exact leaves) carry no rounding error; Real and Complex carry an explicit
// working precision. Exactness is never lost implicitly: only an explicit
// precision request (engine.N) produces an inexact value from an exact one.
type Expr interface {
	Type() ExprType
	Inspect() string
	Hash() uint32
	Equal(other Expr) bool
}

// Helper for hashing strings
func hashString(s string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(s))
	return h.Sum32()
}

func hashCombine(parts ...uint32) uint32 {
	var h uint32 = 2166136261
	for _, p := range parts {
		h ^= p
		h *= 16777619
	}
	return h
}
